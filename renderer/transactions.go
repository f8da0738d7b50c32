package renderer

import (
	"github.com/altintakip/goldtrack"
)

// TransactionsMarkdown renders the ledger as a markdown table in
// chronological order.
func TransactionsMarkdown(l *goldtrack.Ledger) string {
	r := newRenderer()
	r.Printf("# Transactions\n\n")
	if l.Len() == 0 {
		r.Printf("No transactions recorded.\n")
		return r.String()
	}

	r.Printf("| Date | Kind | Grams | Unit Price | Fee | Total | Memo | ID |\n")
	r.Printf("|:---|:---|---:|---:|---:|---:|:---|:---|\n")
	for _, tx := range l.Transactions() {
		r.Printf("| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			tx.Time.Local().Format("2006-01-02 15:04"),
			tx.Kind,
			tx.Grams.StringFixed(),
			tx.Price,
			tx.Fee,
			tx.Cost(),
			tx.Memo,
			shortID(tx.ID),
		)
	}
	return r.String()
}

// shortID abbreviates a uuid for display. Delete still takes any unambiguous
// prefix, so the abbreviated form remains usable as an argument.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
