package main

import (
	"fmt"
	"io"
	"os"
	rtdebug "runtime/debug"

	"github.com/mattias-p/mkjson/compose"
	"github.com/mattias-p/mkjson/debug"
	"github.com/mattias-p/mkjson/encode"
	"github.com/mattias-p/mkjson/rpc"

	"github.com/scott-cotton/cli"
)

func mkjsonrpc(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Version {
		return printVersion(cc)
	}
	if !cfg.optSet("m") {
		return fmt.Errorf("%w: -m is required", cli.ErrUsage)
	}
	method, err := rpc.ParseMethod(cfg.Method)
	if err != nil {
		return fmt.Errorf("%w: -m: %v", cli.ErrUsage, err)
	}
	id, err := rpc.ParseID(cfg.ID)
	if err != nil {
		return fmt.Errorf("%w: -i: %v", cli.ErrUsage, err)
	}
	params, err := compose.Compose(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "input error: %v\n", err)
		return cli.ExitCodeErr(2)
	}
	call := rpc.Envelope(method, id, params)
	if debug.Encode() {
		debug.Logf("encode: %v\n", call)
	}
	w := cc.Out
	if err := encode.Encode(call, w, cfg.encOpts(w)...); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

func printVersion(cc *cli.Context) error {
	version := "(devel)"
	if info, ok := rtdebug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	_, err := fmt.Fprintln(cc.Out, version)
	return err
}
