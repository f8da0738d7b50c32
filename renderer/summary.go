package renderer

import (
	"github.com/altintakip/goldtrack"
)

// SummaryMarkdown renders the position and its valuation at the given
// price. A stale price result still produces a full report, with the same
// warning the price report carries.
func SummaryMarkdown(state goldtrack.LedgerState, res goldtrack.Result, priceAvailable bool) string {
	r := newRenderer()
	cur := goldtrack.DefaultCurrency

	r.Printf("# Position Summary\n\n")

	gramPrice := goldtrack.TRY(0)
	if priceAvailable {
		gramPrice = goldtrack.TRY(res.Price.GramPrice)
	}
	v := state.Value(gramPrice)

	r.Printf("| | |\n")
	r.Printf("|:---|---:|\n")
	r.Printf("| Position | %s g |\n", state.Position.StringFixed())
	r.Printf("| Average cost | %s |\n", state.AverageCost())
	r.Printf("| Cost basis | %s |\n", state.CostBasis)
	if priceAvailable {
		r.Printf("| Gram price | %.2f %s |\n", res.Price.GramPrice, cur)
		r.Printf("| Market value | %s |\n", v.MarketValue)
		r.Printf("| Unrealized P&L | %s |\n", v.Unrealized.SignedString())
	} else {
		r.Printf("| Gram price | unavailable |\n")
	}
	r.Printf("| Realized P&L | %s |\n", v.Realized.SignedString())
	r.Printf("| Total P&L | %s |\n", v.Total.SignedString())

	if priceAvailable && res.Stale {
		r.Printf("\n> ⚠ valued at a cached price from %s\n",
			res.Price.Time.Local().Format("2006-01-02 15:04:05"))
	}
	return r.String()
}
