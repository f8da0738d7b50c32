package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"

	"github.com/altintakip/goldtrack"
)

type buyCmd struct {
	grams string
	price string
	fee   string
	date  string
	memo  string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase of gram gold" }
func (*buyCmd) Usage() string {
	return `gtk buy -g <grams> -p <unit_price> [-fee <fee>] [-date <date>] [-memo <text>]

  Records a purchase. Quantities are grams, prices are TRY per gram.

Usage Examples:
# 10 grams at 4000 TRY/g with a 15 TRY fee.
$ gtk buy -g 10 -p 4000 -fee 15 -memo "quarter coins"

`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.grams, "g", "", "Quantity bought, in grams.")
	f.StringVar(&c.price, "p", "", "Unit price, in TRY per gram.")
	f.StringVar(&c.fee, "fee", "0", "Transaction fee, in TRY.")
	f.StringVar(&c.date, "date", "", "Transaction date (2006-01-02 or RFC3339). Defaults to now.")
	f.StringVar(&c.memo, "memo", "", "Free-form note attached to the transaction.")
}

func (c *buyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, err := parseTransaction(goldtrack.NewBuy, c.grams, c.price, c.fee, c.date, c.memo)
	if err != nil {
		return fail(err)
	}
	return appendTransaction(ctx, tx)
}

// parseTransaction builds a transaction from the common buy/sell flags,
// preserving the full precision the user typed.
func parseTransaction(build func(time.Time, string, goldtrack.Quantity, goldtrack.Money, goldtrack.Money) goldtrack.Transaction,
	grams, price, fee, date, memo string) (goldtrack.Transaction, error) {

	var zero goldtrack.Transaction
	q, err := goldtrack.ParseQuantity(grams)
	if err != nil {
		return zero, fmt.Errorf("invalid grams %q: %w", grams, err)
	}
	p, err := goldtrack.ParseMoney(price)
	if err != nil {
		return zero, fmt.Errorf("invalid unit price %q: %w", price, err)
	}
	fe, err := goldtrack.ParseMoney(fee)
	if err != nil {
		return zero, fmt.Errorf("invalid fee %q: %w", fee, err)
	}
	at, err := parseDate(date)
	if err != nil {
		return zero, err
	}
	return build(at, memo, q, p, fe), nil
}

// parseDate accepts a bare day or a full RFC3339 timestamp. Empty means now.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// appendTransaction validates tx against the ledger and persists it.
func appendTransaction(ctx context.Context, tx goldtrack.Transaction) subcommands.ExitStatus {
	l, err := DecodeLedger(ctx)
	if err != nil {
		return fail(err)
	}
	if err := l.Append(tx); err != nil {
		return fail(err)
	}
	if err := EncodeLedger(ctx, l); err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded %s of %s g (id %s).\n", tx.Kind, tx.Grams.StringFixed(), tx.ID)
	return subcommands.ExitSuccess
}
