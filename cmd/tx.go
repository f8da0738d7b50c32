package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/altintakip/goldtrack/renderer"
)

type txCmd struct{}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list all transactions in the ledger" }
func (*txCmd) Usage() string {
	return `gtk tx

  Lists all recorded transactions in chronological order.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {}

func (c *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := DecodeLedger(ctx)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.TransactionsMarkdown(l))
	return subcommands.ExitSuccess
}
