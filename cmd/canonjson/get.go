package main

import (
	"fmt"
	"io"

	"github.com/keon-runtime/canonjson/encode"
	"github.com/keon-runtime/canonjson/eval"
	"github.com/keon-runtime/canonjson/parse"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: get requires -e <expr>", cli.ErrUsage)
	}
	files := args
	if len(files) == 0 {
		files = []string{"-"}
	}
	for i, file := range files {
		if err := getFile(cfg, cc.Out, file); err != nil {
			return fmt.Errorf("error querying %s: %w", displayName(file), err)
		}
		if i < len(files)-1 {
			if _, err := cc.Out.Write([]byte("\n")); err != nil {
				return err
			}
		}
	}
	finishOut(cc.Out)
	return nil
}

func getFile(cfg *GetConfig, w io.Writer, file string) error {
	in, err := readArg(file)
	if err != nil {
		return err
	}
	node, err := parse.Parse(in, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	res, err := eval.Query(node, cfg.Expr)
	if err != nil {
		return err
	}
	return encode.Encode(res, w, cfg.encOpts(w)...)
}
