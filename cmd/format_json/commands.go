package main

import (
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Main *cli.Command
}

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	return cli.NewCommandAt(&cfg.Main, "format_json").
		WithSynopsis("format_json FILE").
		WithDescription("format_json rewrites a JSON file in place with sorted keys, " +
			"one space after colons, no line wrapping, and without object fields " +
			"whose value is an empty object.").
		WithRun(func(cc *cli.Context, args []string) error {
			return formatJSON(cfg, cc, args)
		})
}
