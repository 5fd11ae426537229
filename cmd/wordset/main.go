package main

import (
	"github.com/alecthomas/kong"

	"github.com/triekit/wordset/pkg/cli"
)

func main() {
	ctx := kong.Parse(&cli.CLI, kong.UsageOnError())
	logger := cli.NewLogger(cli.CLI.Verbose)
	if err := ctx.Run(cli.NewContext(logger)); err != nil {
		logger.Fatal().Err(err).Msg("command failed")
	}
}
