// Package parser classifies Windows and UNC path text and builds its
// structured representation.
//
// # Quick Start
//
// Parse a path string:
//
//	result := parser.Parse(`\\fileserver.corp\c$\logs\`)
//	fmt.Println(result.Type)   // UNC
//	fmt.Println(result.Scheme) // plain
//
//	if unc := result.UNC(); unc != nil {
//	    fmt.Println(unc.DomainName)  // fileserver.corp
//	    fmt.Println(unc.DriveLetter) // c
//	    fmt.Println(unc.Segments)    // [logs]
//	}
//
// Or use functional options:
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithPath(`c:\logs\app`),
//	    parser.WithLogger(parser.NewSlogAdapter(nil)),
//	)
//
// # Classification
//
// Classification never fails. A string that validates as a Windows
// drive-letter path yields a [WindowsPath]; one that validates as a UNC
// network path yields a [UNCPath]; everything else — including the
// defensive Ambiguous case — is kept as an [UnknownPath], an opaque
// token list that still round-trips through the formatter.
//
// Type and scheme are classified independently: ClassifyType inspects the
// prefix-stripped structure, while ClassifyScheme recognizes the textual
// wrapping (plain, file URI, short or long provider prefix).
//
// # Related Packages
//
// The parser integrates with the other winpathtools packages:
//   - [github.com/jmharte/winpathtools/validator] - validate path text and report reasons
//   - [github.com/jmharte/winpathtools/formatter] - render parsed objects back to text
//   - [github.com/jmharte/winpathtools/converter] - reformat between type/scheme combinations
//   - [github.com/jmharte/winpathtools/joiner] - join fragments onto a parsed base
//   - [github.com/jmharte/winpathtools/resolver] - apply "."/".." resolution
package parser
