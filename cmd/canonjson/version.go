package main

import (
	"fmt"
	"runtime/debug"

	"github.com/scott-cotton/cli"
)

func version(cc *cli.Context) error {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		fmt.Fprintln(cc.Out, "canonjson (unknown build)")
		return nil
	}
	v := bi.Main.Version
	if v == "" {
		v = "(devel)"
	}
	fmt.Fprintf(cc.Out, "canonjson %s %s\n", v, bi.GoVersion)
	return nil
}
