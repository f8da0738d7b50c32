package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/altintakip/goldtrack"
)

type sellCmd struct {
	grams string
	price string
	fee   string
	date  string
	memo  string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale of gram gold" }
func (*sellCmd) Usage() string {
	return `gtk sell -g <grams> -p <unit_price> [-fee <fee>] [-date <date>] [-memo <text>]

  Records a sale. Selling more grams than currently held is rejected.

Usage Examples:
$ gtk sell -g 5 -p 4500

`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.grams, "g", "", "Quantity sold, in grams.")
	f.StringVar(&c.price, "p", "", "Unit price, in TRY per gram.")
	f.StringVar(&c.fee, "fee", "0", "Transaction fee, in TRY.")
	f.StringVar(&c.date, "date", "", "Transaction date (2006-01-02 or RFC3339). Defaults to now.")
	f.StringVar(&c.memo, "memo", "", "Free-form note attached to the transaction.")
}

func (c *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, err := parseTransaction(goldtrack.NewSell, c.grams, c.price, c.fee, c.date, c.memo)
	if err != nil {
		return fail(err)
	}
	return appendTransaction(ctx, tx)
}
