package main

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/signadot/format-json/format"

	"github.com/scott-cotton/cli"
)

const usageLine = "Usage: format_json FILE"

func formatJSON(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		usage(cc.Out)
		return cli.ExitCodeErr(1)
	}
	// the parser keeps the "--" separator as an argument.
	if i := slices.Index(args, "--"); i >= 0 {
		args = slices.Delete(args, i, i+1)
	}
	err = run(cc.Out, args)
	if errors.Is(err, cli.ErrUsage) {
		return cli.ExitCodeErr(1)
	}
	return err
}

// run formats the single file named in args.  With any other number of
// arguments it prints the usage line to w and touches nothing.
func run(w io.Writer, args []string) error {
	if len(args) != 1 {
		usage(w)
		return fmt.Errorf("%w: expected 1 argument, got %d", cli.ErrUsage, len(args))
	}
	return format.File(args[0])
}

func usage(w io.Writer) {
	fmt.Fprintln(w, usageLine)
}
