package main

import (
	"os"

	"github.com/gopasspw/boxcutter"
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{
		settings: boxcutter.LoadSettings(),
		errOut:   os.Stderr,
	}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Main, "boxcutter").
		WithSynopsis("boxcutter [opts] command [opts]").
		WithDescription("boxcutter reads and writes values in the nearest package.json.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return bcMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			SetCommand(cfg),
			HelpCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <key>").
		WithDescription("print the value stored at key").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Set, "set").
		WithAliases("s").
		WithSynopsis("set [opts] <key> <value>").
		WithDescription("store value at key and save the manifest").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
}

func HelpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &HelpConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Help, "help").
		WithSynopsis("help [command]").
		WithDescription("show help for a command").
		WithRun(func(cc *cli.Context, args []string) error {
			return help(cfg, cc, args)
		})
}
