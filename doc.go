// Package winpathtools provides tools for working with Windows local paths and
// UNC network paths expressed in their four textual schemes: plain native text,
// file:// URIs, and the short and long provider-prefixed forms.
//
// The library consists of six primary packages:
//
//   - parser: classify a path string and build its structured representation
//   - validator: validate path strings, fragments, and individual file names
//   - formatter: render a structured path back to text
//   - converter: reformat a path string into another type/scheme combination
//   - joiner: join ordered path fragments onto a base path
//   - resolver: apply "." and ".." segment resolution
//
// # Quick Start
//
// Parse a path:
//
//	import "github.com/jmharte/winpathtools/parser"
//
//	result := parser.Parse(`\\fileserver.corp\c$\logs\app\`)
//	fmt.Println(result.Type)   // UNC
//	fmt.Println(result.Scheme) // plain
//
// Reformat a path into another scheme:
//
//	import "github.com/jmharte/winpathtools/converter"
//
//	result, err := converter.ConvertWithOptions(`c:\logs\app`,
//		converter.WithTargetScheme(parser.SchemeFileURI))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Formatted) // file:///c:/logs/app
//
// Join fragments onto a base:
//
//	import "github.com/jmharte/winpathtools/joiner"
//
//	result, err := joiner.Join(`c:\logs`, `app/`, `today\`)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Formatted) // c:\logs\app\today\
//
// # Supported Grammar
//
// Eight combinations of path type and scheme are recognized:
//
//	c:\local\path
//	file:///c:/local/path
//	FileSystem::c:\local\path
//	Microsoft.PowerShell.Core\FileSystem::c:\local\path
//	\\domain.name\c$\local\path
//	file://domain.name/c$/local/path
//	FileSystem::\\domain.name\c$\local\path
//	Microsoft.PowerShell.Core\FileSystem::\\domain.name\c$\local\path
//
// Anything else is classified as Unknown and treated as an opaque delimited
// token list; when the text carried a delimiter, that list still round-trips
// through the formatter.
//
// # Error Handling
//
// All failure modes are local and recoverable. Operations return structured
// errors from the patherrors package that support errors.Is and errors.As;
// see that package for the error taxonomy.
//
// # Concurrency
//
// Every operation is a pure transformation over its own inputs. All functions
// are safe for concurrent use; reusable instances (parser.Parser, joiner.Joiner)
// hold configuration only and are likewise safe once configured.
//
// # Command-Line Interface
//
// In addition to the library packages, winpathtools provides a CLI:
//
//	# Classify and inspect a path
//	winpathtools parse 'file:///c:/local/path'
//
//	# Reformat between type/scheme combinations
//	winpathtools convert -scheme file-uri 'c:\local\path'
//
//	# Join fragments
//	winpathtools join 'c:\logs' 'app' 'today\'
//
// Install the CLI:
//
//	go install github.com/jmharte/winpathtools/cmd/winpathtools@latest
package winpathtools
