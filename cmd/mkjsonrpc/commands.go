package main

import (
	"github.com/mattias-p/mkjson/rpc"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{ID: rpc.IDOmit}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "m",
			Aliases:     []string{"method"},
			Description: "method of the call (required)",
			Type:        cli.NamedFuncOpt(cfg.methodOpt, "(method)"),
		},
		&cli.Opt{
			Name:        "i",
			Aliases:     []string{"id"},
			Description: "id of the call: a string, a number, ':null', ':omit' or ':uuid' (default ':omit')",
			Type:        cli.NamedFuncOpt(cfg.idOpt, "(id)"),
		},
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "mkjsonrpc").
		WithSynopsis("mkjsonrpc -m method [opts] [directive...]").
		WithDescription("mkjsonrpc composes path assignment directives into the params of a JSON-RPC 2.0 call.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mkjsonrpc(cfg, cc, args)
		})
}
