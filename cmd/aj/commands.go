package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output dialect: json/j, json5/5, hjson/h",
			Type:        cli.NamedFuncOpt(cfg.dialectFunc(&cfg.OutDialect), "(dialect)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "aj").
		WithSynopsis("aj [opts] command [opts]").
		WithDescription("aj is a tool for viewing structured data as annotated json.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ajMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			DialectsCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [opts] [files]").
		WithDescription("view data files as annotated json in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func DialectsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DialectsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Dialects, "dialects").
		WithAliases("dia").
		WithSynopsis("dialects").
		WithDescription("list output dialects with their file suffixes").
		WithRun(func(cc *cli.Context, args []string) error {
			return dialects(cfg, cc, args)
		})
}
