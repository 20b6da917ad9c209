package main

import (
	"fmt"
	"io"
	"os"
	rtdebug "runtime/debug"

	"github.com/mattias-p/mkjson/compose"
	"github.com/mattias-p/mkjson/debug"
	"github.com/mattias-p/mkjson/encode"

	"github.com/scott-cotton/cli"
)

func mkjson(cfg *MainConfig, cc *cli.Context, args []string) error {
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
	doc, err := compose.Compose(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "input error: %v\n", err)
		return cli.ExitCodeErr(2)
	}
	if doc == nil {
		return nil
	}
	if debug.Encode() {
		debug.Logf("encode: %v\n", doc)
	}
	w := cc.Out
	if err := encode.Encode(doc, w, cfg.encOpts(w)...); err != nil {
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
