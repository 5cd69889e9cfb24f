package main

import (
	"fmt"
	"io"

	"github.com/gopasspw/boxcutter"
	"github.com/gopasspw/gopass/pkg/debug"
	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return runGet(cfg, cc.Out, args)
}

func runGet(cfg *GetConfig, w io.Writer, args []string) error {
	p := newPrinter(cfg.MainConfig)
	if len(args) == 0 || args[0] == "" {
		p.errorf("You must specify a key to get.")
		return cli.ExitCodeErr(1)
	}
	key := args[0]

	doc, err := cfg.load()
	if err != nil {
		p.errorf("%s", err)
		return cli.ExitCodeErr(1)
	}

	v, found := doc.Get(key)
	if !found {
		// absence is a valid answer, not a failure
		debug.Log("%q not found in %s", key, doc.Path())
		return nil
	}

	return writeValue(w, v, cfg.indent())
}

// writeValue prints objects and arrays as indented JSON and scalars as
// plain text.
func writeValue(w io.Writer, v *boxcutter.Node, indent int) error {
	if v.IsScalar() {
		_, err := fmt.Fprintln(w, v.Text())
		return err
	}
	buf, err := boxcutter.EncodeJSON(v, indent)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", buf)
	return err
}
