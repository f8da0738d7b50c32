package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/altintakip/goldtrack"
)

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a transaction from the ledger" }
func (*deleteCmd) Usage() string {
	return `gtk delete <id>

  Deletes the transaction with the given id. Any unambiguous id prefix is
  accepted, so the abbreviated ids shown by 'gtk tx' work as-is.
  Transactions are immutable: fixing a mistaken entry means deleting it and
  recording it again.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail(fmt.Errorf("expected exactly one transaction id, got %d arguments", f.NArg()))
	}
	prefix := f.Arg(0)

	l, err := DecodeLedger(ctx)
	if err != nil {
		return fail(err)
	}
	id, err := resolveID(l, prefix)
	if err != nil {
		return fail(err)
	}
	l.Delete(id)
	if err := EncodeLedger(ctx, l); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted transaction %s.\n", id)
	return subcommands.ExitSuccess
}

// resolveID expands an id prefix to the unique matching transaction id.
func resolveID(l *goldtrack.Ledger, prefix string) (string, error) {
	var matches []string
	for _, tx := range l.Transactions() {
		if strings.HasPrefix(tx.ID, prefix) {
			matches = append(matches, tx.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no transaction with id %q", prefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("id %q is ambiguous, %d transactions match", prefix, len(matches))
	}
}
