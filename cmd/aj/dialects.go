package main

import (
	"fmt"

	"github.com/signadot/annotate-format/go-annotate/dialect"

	"github.com/scott-cotton/cli"
)

func dialects(cfg *DialectsConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Dialects.Parse(cc, args); err != nil {
		return err
	}
	for _, d := range dialect.All() {
		fmt.Fprintf(cc.Out, "%s\t%s\n", d, d.Suffix())
	}
	return nil
}
