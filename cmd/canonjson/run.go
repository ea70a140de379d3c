package main

import (
	"fmt"
	"io"
	"os"

	"github.com/keon-runtime/canonjson/debug"
	"github.com/keon-runtime/canonjson/encode"
	"github.com/keon-runtime/canonjson/parse"

	"github.com/mattn/go-isatty"
)

func canonFiles(cfg *MainConfig, w io.Writer, files []string) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for i, file := range files {
		if err := canonFile(cfg, w, file); err != nil {
			return fmt.Errorf("error processing %s: %w", displayName(file), err)
		}
		if i < len(files)-1 {
			if _, err := w.Write([]byte("\n")); err != nil {
				return err
			}
		}
	}
	finishOut(w)
	return nil
}

func canonFile(cfg *MainConfig, w io.Writer, file string) error {
	in, err := readArg(file)
	if err != nil {
		return err
	}
	node, err := parse.Parse(in, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	if debug.Parse() {
		debug.Logf("parsed %s\n", node)
	}
	return encode.Encode(node, w, cfg.encOpts(w)...)
}

// readArg reads a file argument in full; "-" means stdin.
func readArg(file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(os.Stdin)
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	defer f.Close()
	return io.ReadAll(f)
}

func displayName(file string) string {
	if file == "-" {
		return "stdin"
	}
	return file
}

// finishOut ends terminal output with a newline. Piped output carries none:
// canonical bytes have no trailing newline.
func finishOut(w io.Writer) {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		fmt.Fprintln(w)
	}
}
