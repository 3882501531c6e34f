package cmdline

import (
	"github.com/MonetDB/cmdline/core"
	"github.com/MonetDB/cmdline/display"
)

// Parser accumulates argument definitions and parses an argument vector
// against them.
//
// Usage:
//
//	cmd := cmdline.New(os.Args)
//
//	cmd.StringDefault("host", 'h', "127.0.0.1", "host_name", "The host name or IP address.")
//	cmd.IntDefault("port", 'p', 50000, "port", "The server port.")
//	cmd.Operand("database", "The name of the database to connect to.")
//	cmd.Option("help", '?', "Display the usage instructions.")
//	cmd.RestrictOperands()
//
//	args, err := cmd.Parse()
//	if err != nil {
//		fmt.Fprintln(os.Stderr, err) // positioned diagnostic
//		os.Exit(1)
//	}
//	if args.IsHelpRequested() {
//		doc, _ := cmd.Doc('|', false)
//		fmt.Print(doc)
//		os.Exit(0)
//	}
type Parser = core.Parser

// Arguments is the read accessor over a completed parse: typed values by
// long name, activated options, and positional operands in encounter order.
type Arguments = core.Arguments

// NonBreakingSpace can be embedded in descriptions wherever a space must
// render without ever becoming a line-break point.
const NonBreakingSpace = display.NonBreakingSpace

// New creates a Parser over an argument vector. Pass os.Args; the first
// element is recorded as the program name. Definitions are registered with
// the Option, Operand, String, Int and Double families of methods, then a
// single Parse call consumes the vector.
func New(args []string) *Parser {
	return core.NewParser(args)
}
