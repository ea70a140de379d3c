package main

import (
	"fmt"

	"github.com/keon-runtime/canonjson"
	"github.com/keon-runtime/canonjson/debug"
	"github.com/keon-runtime/canonjson/libdiff"

	"github.com/scott-cotton/cli"
)

func validate(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		return err
	}
	files := args
	if len(files) == 0 {
		files = []string{"-"}
	}
	bad := 0
	for _, file := range files {
		ok, err := validateFile(cfg, cc, file)
		if err != nil {
			return err
		}
		if !ok {
			bad++
		}
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func validateFile(cfg *ValidateConfig, cc *cli.Context, file string) (bool, error) {
	in, err := readArg(file)
	if err != nil {
		return false, err
	}
	if canonjson.ValidateIntegrity(in) {
		fmt.Fprintf(cc.Out, "%s: canonical\n", displayName(file))
		return true, nil
	}
	fmt.Fprintf(cc.Out, "%s: not canonical\n", displayName(file))
	if !cfg.ShowDiff {
		return false, nil
	}
	canon, err := canonjson.CanonicalizeBytes(in)
	if err != nil {
		fmt.Fprintf(cc.Out, "  cannot canonicalize: %v\n", err)
		return false, nil
	}
	diffs := libdiff.Texts(string(in), string(canon))
	if debug.Diff() {
		debug.Logf("%s: %d diff spans\n", displayName(file), len(diffs))
	}
	fmt.Fprintf(cc.Out, "%s\n", libdiff.Render(diffs, cfg.useColor(cc.Out)))
	return false, nil
}
