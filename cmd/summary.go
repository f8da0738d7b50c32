package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/altintakip/goldtrack"
	"github.com/altintakip/goldtrack/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the position, its value and profit" }
func (*summaryCmd) Usage() string {
	return `gtk summary

  Shows the gold position with its average cost, market value at the
  current price, and realized and unrealized profit. When no price can be
  resolved the position is still shown, unvalued.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := DecodeLedger(ctx)
	if err != nil {
		return fail(err)
	}

	var res goldtrack.Result
	res, rerr := AppTracker().Refresh(ctx)
	if rerr != nil {
		fmt.Fprintln(os.Stderr, "warning: no price available:", rerr)
	}
	printMarkdown(renderer.SummaryMarkdown(l.State(), res, rerr == nil))
	return subcommands.ExitSuccess
}
