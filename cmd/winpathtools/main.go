package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmharte/winpathtools"
	"github.com/jmharte/winpathtools/converter"
	"github.com/jmharte/winpathtools/internal/cliutil"
	"github.com/jmharte/winpathtools/internal/mcpserver"
	"github.com/jmharte/winpathtools/joiner"
	"github.com/jmharte/winpathtools/parser"
	"github.com/jmharte/winpathtools/resolver"
	"github.com/jmharte/winpathtools/validator"
	"go.yaml.in/yaml/v4"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("winpathtools v%s\n", winpathtools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "classify":
		if err := handleClassify(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "parse":
		if err := handleParse(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "validate":
		if err := handleValidate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "convert":
		if err := handleConvert(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "join":
		if err := handleJoin(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "resolve":
		if err := handleResolve(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := handleMCP(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean %q?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// Output format constants
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func validateOutputFormat(format string) error {
	if format != formatText && format != formatJSON && format != formatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, formatText, formatJSON, formatYAML)
	}
	return nil
}

// outputStructured marshals data as json or yaml to stdout.
func outputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case formatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case formatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// classifyFlags contains flags for the classify command
type classifyFlags struct {
	format string
}

func setupClassifyFlags() (*flag.FlagSet, *classifyFlags) {
	fs := flag.NewFlagSet("classify", flag.ContinueOnError)
	flags := &classifyFlags{}

	fs.StringVar(&flags.format, "format", formatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: winpathtools classify [flags] <path>\n\n")
		cliutil.Writef(output, "Classify path text as Windows, UNC, or Unknown and report its scheme.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  winpathtools classify 'c:\\local\\path'\n")
		cliutil.Writef(output, "  winpathtools classify --format json 'file:///c:/local/path'\n")
	}

	return fs, flags
}

func handleClassify(args []string) error {
	fs, flags := setupClassifyFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("classify command requires exactly one path")
	}
	if err := validateOutputFormat(flags.format); err != nil {
		return err
	}

	result := parser.Parse(fs.Arg(0))

	if flags.format != formatText {
		return outputStructured(struct {
			Path   string `json:"path"   yaml:"path"`
			Type   string `json:"type"   yaml:"type"`
			Scheme string `json:"scheme" yaml:"scheme"`
		}{fs.Arg(0), string(result.Type), string(result.Scheme)}, flags.format)
	}

	fmt.Printf("Path:   %s\n", fs.Arg(0))
	fmt.Printf("Type:   %s\n", result.Type)
	fmt.Printf("Scheme: %s\n", result.Scheme)
	return nil
}

// parseCmdFlags contains flags for the parse command
type parseCmdFlags struct {
	format string
}

func setupParseFlags() (*flag.FlagSet, *parseCmdFlags) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	flags := &parseCmdFlags{}

	fs.StringVar(&flags.format, "format", formatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: winpathtools parse [flags] <path>\n\n")
		cliutil.Writef(output, "Parse path text into its structural parts.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  winpathtools parse 'c:\\local\\path'\n")
		cliutil.Writef(output, "  winpathtools parse --format yaml '\\\\domain.name\\c$\\local\\path'\n")
	}

	return fs, flags
}

// parseReport is the structured output of the parse command.
type parseReport struct {
	Path          string   `json:"path"                   yaml:"path"`
	Type          string   `json:"type"                   yaml:"type"`
	Scheme        string   `json:"scheme"                 yaml:"scheme"`
	DriveLetter   string   `json:"drive_letter,omitempty" yaml:"drive_letter,omitempty"`
	DomainName    string   `json:"domain_name,omitempty"  yaml:"domain_name,omitempty"`
	Delimiter     string   `json:"delimiter,omitempty"    yaml:"delimiter,omitempty"`
	Segments      []string `json:"segments,omitempty"     yaml:"segments,omitempty"`
	TrailingSlash bool     `json:"trailing_slash"         yaml:"trailing_slash"`
}

func buildParseReport(path string, result *parser.Result) parseReport {
	report := parseReport{
		Path:   path,
		Type:   string(result.Type),
		Scheme: string(result.Scheme),
	}
	switch obj := result.Object.(type) {
	case *parser.WindowsPath:
		report.DriveLetter = obj.DriveLetter
		report.Segments = obj.Segments
		report.TrailingSlash = obj.TrailingSlash
	case *parser.UNCPath:
		report.DomainName = obj.DomainName
		report.DriveLetter = obj.DriveLetter
		report.Segments = obj.Segments
		report.TrailingSlash = obj.TrailingSlash
	case *parser.UnknownPath:
		if obj.Delimiter != 0 {
			report.Delimiter = string(obj.Delimiter)
		}
		report.Segments = obj.Segments
		report.TrailingSlash = obj.TrailingSlash
	}
	return report
}

func handleParse(args []string) error {
	fs, flags := setupParseFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("parse command requires exactly one path")
	}
	if err := validateOutputFormat(flags.format); err != nil {
		return err
	}

	path := fs.Arg(0)
	report := buildParseReport(path, parser.Parse(path))

	if flags.format != formatText {
		return outputStructured(report, flags.format)
	}

	fmt.Printf("Path:   %s\n", report.Path)
	fmt.Printf("Type:   %s\n", report.Type)
	fmt.Printf("Scheme: %s\n", report.Scheme)
	if report.DriveLetter != "" {
		fmt.Printf("Drive:  %s\n", report.DriveLetter)
	}
	if report.DomainName != "" {
		fmt.Printf("Domain: %s\n", report.DomainName)
	}
	if len(report.Segments) > 0 {
		fmt.Printf("Segments:\n")
		for _, segment := range report.Segments {
			fmt.Printf("  - %s\n", segment)
		}
	}
	fmt.Printf("Trailing Slash: %v\n", report.TrailingSlash)
	return nil
}

// validateCmdFlags contains flags for the validate command
type validateCmdFlags struct {
	format string
	quiet  bool
}

func setupValidateFlags() (*flag.FlagSet, *validateCmdFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &validateCmdFlags{}

	fs.StringVar(&flags.format, "format", formatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.quiet, "quiet", false, "suppress output; signal validity via the exit code only")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: winpathtools validate [flags] <path>\n\n")
		cliutil.Writef(output, "Validate path text against the Windows and UNC shapes.\n")
		cliutil.Writef(output, "Exits non-zero when the path validates as neither.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  winpathtools validate 'c:\\local\\path'\n")
		cliutil.Writef(output, "  winpathtools validate --quiet 'c:\\logs\\PRN.txt' && echo ok\n")
	}

	return fs, flags
}

func handleValidate(args []string) error {
	fs, flags := setupValidateFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("validate command requires exactly one path")
	}
	if err := validateOutputFormat(flags.format); err != nil {
		return err
	}

	result := validator.Validate(fs.Arg(0))

	if !flags.quiet {
		if flags.format != formatText {
			if err := outputStructured(result, flags.format); err != nil {
				return err
			}
		} else {
			fmt.Printf("Path:  %s\n", result.Path)
			fmt.Printf("Type:  %s\n", result.Type)
			fmt.Printf("Valid: %v\n", result.Valid)
			if result.WindowsReason != "" {
				fmt.Printf("  not Windows: %s\n", result.WindowsReason)
			}
			if result.UNCReason != "" {
				fmt.Printf("  not UNC:     %s\n", result.UNCReason)
			}
		}
	}

	if !result.Valid {
		os.Exit(1)
	}
	return nil
}

// convertCmdFlags contains flags for the convert command
type convertCmdFlags struct {
	targetType   string
	targetScheme string
}

func setupConvertFlags() (*flag.FlagSet, *convertCmdFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &convertCmdFlags{}

	fs.StringVar(&flags.targetType, "t", "", "target path type: Windows, UNC, or Unknown (default: keep)")
	fs.StringVar(&flags.targetType, "type", "", "target path type: Windows, UNC, or Unknown (default: keep)")
	fs.StringVar(&flags.targetScheme, "s", "", "target scheme: plain, file-uri, short-prefixed, or long-prefixed (default: keep)")
	fs.StringVar(&flags.targetScheme, "scheme", "", "target scheme: plain, file-uri, short-prefixed, or long-prefixed (default: keep)")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: winpathtools convert [flags] <path>\n\n")
		cliutil.Writef(output, "Re-render path text as another type and/or scheme.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  winpathtools convert -t Windows '\\\\domain.name\\c$\\local\\path'\n")
		cliutil.Writef(output, "  winpathtools convert -s file-uri 'c:\\local\\path'\n")
		cliutil.Writef(output, "  winpathtools convert -t UNC -s plain 'file://domain.name/local/path'\n")
	}

	return fs, flags
}

func handleConvert(args []string) error {
	fs, flags := setupConvertFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("convert command requires exactly one path")
	}

	var opts []converter.Option
	if flags.targetType != "" {
		opts = append(opts, converter.WithTargetType(parser.FilePathType(flags.targetType)))
	}
	if flags.targetScheme != "" {
		opts = append(opts, converter.WithTargetScheme(parser.Scheme(flags.targetScheme)))
	}

	result, err := converter.ConvertWithOptions(fs.Arg(0), opts...)
	if err != nil {
		return err
	}
	fmt.Println(result.Formatted)
	return nil
}

func setupJoinFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("join", flag.ContinueOnError)

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: winpathtools join <fragment> [fragment...]\n\n")
		cliutil.Writef(output, "Concatenate path fragments. The first fragment fixes the type,\n")
		cliutil.Writef(output, "scheme, and delimiter; the last decides the trailing slash.\n\n")
		cliutil.Writef(output, "Examples:\n")
		cliutil.Writef(output, "  winpathtools join 'c:\\logs' app '2026\\'\n")
		cliutil.Writef(output, "  winpathtools join '\\\\domain.name' 'path\\' segment/\n")
	}

	return fs
}

func handleJoin(args []string) error {
	fs := setupJoinFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("join command requires at least one fragment")
	}

	result, err := joiner.Join(fs.Args()...)
	if err != nil {
		return err
	}
	fmt.Println(result.Formatted)
	return nil
}

func setupResolveFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: winpathtools resolve <path>\n\n")
		cliutil.Writef(output, "Lexically eliminate \".\" and \"..\" segments from path text.\n\n")
		cliutil.Writef(output, "Examples:\n")
		cliutil.Writef(output, "  winpathtools resolve 'c:\\logs\\..\\data\\.\\sets'\n")
	}

	return fs
}

func handleResolve(args []string) error {
	fs := setupResolveFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("resolve command requires exactly one path")
	}

	out, err := resolver.Resolve(fs.Arg(0))
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func handleMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}

var commandNames = []string{
	"classify", "parse", "validate", "convert", "join", "resolve", "mcp", "version", "help",
}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDistance := 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDistance {
			best = name
			bestDistance = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	cliutil.Writef(os.Stdout, `winpathtools v%s - Windows and UNC path text tools

Usage: winpathtools <command> [flags] [args]

Commands:
  classify  Classify path text as Windows, UNC, or Unknown
  parse     Parse path text into its structural parts
  validate  Validate path text against the Windows and UNC shapes
  convert   Re-render path text as another type and/or scheme
  join      Concatenate path fragments
  resolve   Eliminate "." and ".." segments lexically
  mcp       Run the MCP server over stdio
  version   Print the version
  help      Print this help

Run 'winpathtools <command> -h' for command-specific flags.

Examples:
  winpathtools classify 'c:\local\path'
  winpathtools convert -t Windows '\\domain.name\c$\local\path'
  winpathtools join '\\domain.name' 'path\' segment/
  winpathtools resolve 'c:\logs\..\data'
`, winpathtools.Version())
}
