package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/altintakip/goldtrack/renderer"
)

type priceCmd struct{}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "show the current gram gold price" }
func (*priceCmd) Usage() string {
	return `gtk price

  Shows the current gram gold price in TRY, resolved from the configured
  sources. When all sources are unavailable the last cached price is shown,
  marked with its age.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {}

func (c *priceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	res, err := AppTracker().Refresh(ctx)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.PriceMarkdown(res))
	return subcommands.ExitSuccess
}
