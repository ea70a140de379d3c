package main

import (
	"fmt"
	"io"
	"os"

	"github.com/keon-runtime/canonjson/encode"
	"github.com/keon-runtime/canonjson/format"
	"github.com/keon-runtime/canonjson/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='render with color (viewing aid, not canonical bytes)'"`

	J bool `cli:"name=j aliases=json desc='read input as json'"`
	Y bool `cli:"name=y aliases=yaml desc='read input as yaml'"`

	MaxDepth int `cli:"name=depth desc='max nesting depth (default 512)'"`

	InFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	fmat := format.JSONFormat
	if cfg.Y {
		fmat = format.YAMLFormat
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return []parse.ParseOption{parse.ParseFormat(fmat)}
}

// useColor reports whether to colorize output on w: yes with -color, no
// with -color=false, otherwise only on a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.MaxDepth > 0 {
		res = append(res, encode.EncodeMaxDepth(cfg.MaxDepth))
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ValidateConfig struct {
	*MainConfig
	ShowDiff bool `cli:"name=diff desc='show a character diff against the canonical form'"`

	Validate *cli.Command
}

type GetConfig struct {
	*MainConfig
	Expr string `cli:"name=e aliases=expr desc='expression to evaluate'"`

	Get *cli.Command
}

type PatchConfig struct {
	*MainConfig
	PatchFile string `cli:"name=p aliases=patch desc='JSON Patch (RFC 6902) file'"`
	MergeFile string `cli:"name=m aliases=merge desc='merge patch (RFC 7386) file'"`

	Patch *cli.Command
}
