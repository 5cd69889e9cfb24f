package main

import (
	"io"
	"strings"

	"github.com/gopasspw/boxcutter"
	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return runSet(cfg, cc.Out, args)
}

func runSet(cfg *SetConfig, w io.Writer, args []string) error {
	p := newPrinter(cfg.MainConfig)
	if len(args) == 0 || args[0] == "" {
		p.errorf("You must specify a key to set.")
		return cli.ExitCodeErr(1)
	}
	key := args[0]

	var raw string
	if len(args) > 1 {
		raw = args[1]
	}
	var value any = raw
	if cfg.JSON {
		n, err := boxcutter.DecodeJSON(strings.NewReader(raw))
		if err != nil {
			p.errorf("invalid json value %q: %s", raw, err)
			return cli.ExitCodeErr(1)
		}
		value = n
	}

	doc, err := cfg.load()
	if err != nil {
		p.errorf("%s", err)
		return cli.ExitCodeErr(1)
	}

	before, after, err := doc.Diff(func(d *boxcutter.Document) error {
		return d.Set(key, value)
	})
	if err != nil {
		p.errorf("%s", err)
		return cli.ExitCodeErr(1)
	}

	if cfg.Diff {
		p.diff(w, string(before), string(after))
	}

	if cfg.DryRun {
		return nil
	}

	if err := doc.Write(); err != nil {
		p.errorf("%s", err)
		return cli.ExitCodeErr(1)
	}
	return nil
}
