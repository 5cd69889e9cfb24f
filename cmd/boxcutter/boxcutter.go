package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gopasspw/boxcutter"
	"github.com/gopasspw/gopass/pkg/debug"
	"github.com/scott-cotton/cli"
)

func bcMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		cfg.Main.Usage(cc, cli.ErrNoCommandProvided)
		return cli.ExitCodeErr(1)
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		newPrinter(cfg).errorf("Unknown command: %s", args[0])
		return cli.ExitCodeErr(1)
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		return cli.ExitCodeErr(sub.Exit(cc, err))
	}
	return err
}

// load finds and loads the manifest the commands operate on.
func (cfg *MainConfig) load() (*boxcutter.Document, error) {
	fn := cfg.File
	if fn == "" {
		dir := cfg.Dir
		if dir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("can not determine working directory: %w", err)
			}
			dir = wd
		}
		found, err := boxcutter.FindManifest(dir, cfg.settings.Manifest)
		if err != nil {
			return nil, err
		}
		fn = found
	}

	doc, err := boxcutter.Load(fn)
	if err != nil {
		return nil, err
	}
	doc.SetIndent(cfg.indent())

	debug.Log("operating on %s", fn)

	return doc, nil
}
