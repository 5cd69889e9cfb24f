package main

import (
	"io"
	"os"

	"github.com/gopasspw/boxcutter"
	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	File   string `cli:"name=f aliases=file desc='manifest file to use instead of searching for one'"`
	Dir    string `cli:"name=C desc='directory to start the manifest search in (default: working directory)'"`
	Indent int    `cli:"name=indent desc='indentation of json output'"`
	Color  bool   `cli:"name=color desc='color diagnostics even if stderr is not a terminal'"`

	Main *cli.Command

	settings boxcutter.Settings
	errOut   io.Writer
}

// indent returns the -indent flag if it was given, the configured
// indentation otherwise.
func (cfg *MainConfig) indent() int {
	if cfg.Main == nil {
		if cfg.Indent > 0 {
			return cfg.Indent
		}
		return cfg.settings.Indent
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "indent" {
			continue
		}
		if opt.Value != nil {
			return cfg.Indent
		}
		break
	}
	return cfg.settings.Indent
}

func (cfg *MainConfig) useColor() bool {
	if cfg.Color {
		return true
	}
	f, ok := cfg.errOut.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	JSON   bool `cli:"name=j aliases=json desc='parse the value as json instead of storing a string'"`
	DryRun bool `cli:"name=n aliases=dry-run desc='do not write the manifest'"`
	Diff   bool `cli:"name=d aliases=diff desc='print the changes to the manifest'"`

	Set *cli.Command
}

type HelpConfig struct {
	*MainConfig

	Help *cli.Command
}
