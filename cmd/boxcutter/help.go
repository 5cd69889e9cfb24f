package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"
)

const generalHelp = "unknown command"

var helpTexts = map[string][]string{
	generalHelp: {
		"Usage: boxcutter <command> [options]",
		"",
		"Commands:",
		"  get <key>           print the value stored at key",
		"  set <key> <value>   store value at key and save the manifest",
		"  help [command]      show help for a command",
		"",
		"Keys are dotted paths with optional array indices, e.g.",
		"  version, config.test, array[0]",
	},
	"get": {
		"Usage: boxcutter get <key>",
		"",
		"Print the value stored at key in the nearest package.json.",
		"Objects and arrays are printed as indented JSON, other values as",
		"plain text. Nothing is printed if the key does not exist.",
		"",
		"Examples:",
		"  boxcutter get version",
		"  boxcutter get config.test",
		"  boxcutter get array[0]",
	},
	"set": {
		"Usage: boxcutter set [-json] [-dry-run] [-diff] <key> <value>",
		"",
		"Store value at key in the nearest package.json and save it.",
		"Missing intermediate objects are created. The value is stored as a",
		"string unless -json is given.",
		"",
		"Examples:",
		"  boxcutter set version 1.0.1",
		"  boxcutter set config.test BAR",
		"  boxcutter set -json config.retries 3",
	},
}

func help(cfg *HelpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Help.Parse(cc, args)
	if err != nil {
		cfg.Help.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	runHelp(newPrinter(cfg.MainConfig), cc.Out, args)
	return nil
}

// runHelp prints the help for the subject in args. Asking for help on an
// unknown subject prints the general help to stderr but is not an error.
func runHelp(p *printer, w io.Writer, args []string) {
	if len(args) == 0 || args[0] == "" {
		writeLines(w, helpTexts[generalHelp])
		return
	}

	subject := args[0]
	text, found := helpTexts[subject]
	if !found || subject == generalHelp {
		p.errorf("Unknown command: %s", subject)
		writeLines(p.errOut, helpTexts[generalHelp])
		return
	}
	writeLines(w, text)
}

func writeLines(w io.Writer, lines []string) {
	fmt.Fprintln(w, strings.Join(lines, "\n"))
}
