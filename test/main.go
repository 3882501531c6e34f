package main

import (
	"fmt"
	"os"

	"github.com/MonetDB/cmdline"
)

// Demo client surface: every definition kind, attribute markers and soft
// hyphens ('|') in the descriptions, restricted operands.
func setup(cmd *cmdline.Parser) error {
	steps := []error{
		cmd.StringDefault("host", 'h', "127.0.0.1", "host_name",
			"The host name or IP add|ress of the \x1b[1mMonetDB server\x1b[0m."),
		cmd.IntDefault("port", 'p', 50000, "port",
			"The port of the \x1b[1mMonetDB server\x1b[0m."),
		cmd.StringDefault("user", 'u', "monetdb", "user_name",
			"User name for the database login."),
		cmd.StringDefault("password", 'P', "monetdb", "password",
			"User password for the database login."),
		cmd.Operand("database", "The name of the data|base to connect to."),
		cmd.Option("unix-domain-socket", 'x',
			"Use a unix domain socket for con|nect|ing to the \x1b[1mMonetDB server\x1b[0m, "+
				"instead of con|nect|ing through TCP/IP. If pro|vi|ded, then the host and "+
				"port ar|gu|ments are ig|no|red."),
		cmd.Option("file-transfer", 't',
			"Enable the file trans|fer pro|to|col for the con|nec|tion."),
		cmd.StringDefault("auth-algo", 'a', "SHA1", "algo",
			"The hash al|go|rithm to be used for the 'salted hashing'. The "+
				"\x1b[1mMonetDB server\x1b[0m has to support it. This is typi|cally a weaker "+
				"hash al|go|rithm, which is used to|gether with a stron|ger 'pass|word "+
				"hash' that is currently SHA512."),
		cmd.Option("help", '?', "Display the usage instructions."),
	}
	for _, err := range steps {
		if err != nil {
			return err
		}
	}
	cmd.RestrictOperands()
	return nil
}

func main() {
	cmd := cmdline.New(os.Args)
	if err := setup(cmd); err != nil {
		// Broken declarations are a bug in this program, not user input.
		panic(err)
	}

	args, err := cmd.Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "\n%v\n\n", err)
		os.Exit(1)
	}

	if args.IsHelpRequested() {
		fmt.Print("\nMonet-Explorer\n\n")

		intro, err := cmd.WrapText(
			"This application helps you to experiment with the text-based "+
				"\x1b[1mMAPI protocol\x1b[0m that is used by client applications "+
				"to communicate with MonetDB.", 2, 2, '|', false)
		if err != nil {
			panic(err)
		}
		fmt.Print(intro)

		doc, err := cmd.Doc('|', false)
		if err != nil {
			panic(err)
		}
		fmt.Print(doc)
		os.Exit(0)
	}

	host, _ := args.String("host")
	port, _ := args.Int("port")
	user, _ := args.String("user")
	fmt.Printf("Would connect to %s:%d as %s, database %v (file transfer: %v)\n",
		host, port, user, args.Operands(), args.IsSet("file-transfer"))
}
