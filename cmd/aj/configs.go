package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/annotate-format/go-annotate/dialect"
	"github.com/signadot/annotate-format/go-annotate/encode"
	"github.com/signadot/annotate-format/go-annotate/num"
	"github.com/signadot/annotate-format/go-annotate/paint"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Compact bool `cli:"name=c aliases=compact desc='encode each document on a single line'"`
	Hex     bool `cli:"name=x aliases=hex desc='render hex-based integers as hex literals'"`
	Big     bool `cli:"name=big desc='render integers beyond double precision unquoted'"`

	J bool `cli:"name=j aliases=json desc='read input as json (the default)'"`
	Y bool `cli:"name=y aliases=yaml desc='read input as yaml'"`

	Indent int `cli:"name=i aliases=indent desc='spaces per indent level (default 2)'"`

	OutDialect *dialect.Dialect

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) dialectFunc(dps ...**dialect.Dialect) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		d, err := dialect.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, dp := range dps {
			*dp = &d
		}
		return d, nil
	})
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.Option {
	res := []encode.Option{}
	if cfg.OutDialect != nil {
		res = append(res, encode.As(*cfg.OutDialect))
	}
	if cfg.Compact {
		res = append(res, encode.Compact(true))
	}
	if cfg.Hex {
		res = append(res, encode.Literals(num.Hex))
	}
	if cfg.Big {
		res = append(res, encode.StrictNumericLimits(false))
	}
	// distinguish -i 0 from no -i at all
	indentSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "i" {
			continue
		}
		indentSet = opt.Value != nil
		break
	}
	if indentSet {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.Color {
		res = append(res, encode.Colors(paint.Colored()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.Colors(paint.Colored()))
		return res
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	Expr  string `cli:"name=e aliases=expr desc='render the result of evaluating an expression against each document'"`
	Patch string `cli:"name=mp aliases=mergepatch desc='apply a json merge patch file to each document'"`

	View *cli.Command
}

type DialectsConfig struct {
	*MainConfig

	Dialects *cli.Command
}
