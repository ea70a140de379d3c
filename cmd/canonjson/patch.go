package main

import (
	"fmt"
	"io"

	"github.com/keon-runtime/canonjson"
	"github.com/keon-runtime/canonjson/debug"
	"github.com/keon-runtime/canonjson/parse"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.PatchFile == "" && cfg.MergeFile == "" {
		return fmt.Errorf("%w: patch requires -p <patchfile> or -m <mergefile>", cli.ErrUsage)
	}
	if cfg.PatchFile != "" && cfg.MergeFile != "" {
		return fmt.Errorf("%w: -p and -m are mutually exclusive", cli.ErrUsage)
	}

	patchArg := cfg.PatchFile
	if patchArg == "" {
		patchArg = cfg.MergeFile
	}
	// Patch files go through the same parse pipeline as documents, so a
	// YAML-authored patch works with -y.
	patchRaw, err := readArg(patchArg)
	if err != nil {
		return err
	}
	patchNode, err := parse.Parse(patchRaw, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", displayName(patchArg), err)
	}
	patchJSON, err := canonjson.Canonicalize(patchNode)
	if err != nil {
		return fmt.Errorf("error encoding patch %s: %w", displayName(patchArg), err)
	}

	var ops jsonpatch.Patch
	if cfg.PatchFile != "" {
		ops, err = jsonpatch.DecodePatch(patchJSON)
		if err != nil {
			return fmt.Errorf("error decoding patch %s: %w", displayName(patchArg), err)
		}
	}

	files := args
	if len(files) == 0 {
		files = []string{"-"}
	}
	for i, file := range files {
		if err := patchFile(cfg, cc.Out, file, ops, patchJSON); err != nil {
			return fmt.Errorf("error patching %s: %w", displayName(file), err)
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

func patchFile(cfg *PatchConfig, w io.Writer, file string, ops jsonpatch.Patch, mergeJSON []byte) error {
	in, err := readArg(file)
	if err != nil {
		return err
	}
	node, err := parse.Parse(in, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	docJSON, err := canonjson.Canonicalize(node)
	if err != nil {
		return err
	}

	var out []byte
	if cfg.PatchFile != "" {
		out, err = ops.Apply(docJSON)
	} else {
		out, err = jsonpatch.MergePatch(docJSON, mergeJSON)
	}
	if err != nil {
		return err
	}
	if debug.Patch() {
		debug.Logf("patched %s: %s\n", displayName(file), string(out))
	}

	// the patch library does not emit canonical bytes
	canon, err := canonjson.CanonicalizeBytes(out)
	if err != nil {
		return err
	}
	_, err = w.Write(canon)
	return err
}
