package renderer

import (
	"fmt"
	"time"

	"github.com/altintakip/goldtrack"
)

// PriceMarkdown renders a resolved price as a markdown report. A stale
// result carries an explicit warning naming the cache timestamp, so a
// reader can never mistake a cached price for a live one.
func PriceMarkdown(res goldtrack.Result) string {
	r := newRenderer()
	p := res.Price

	r.Printf("# Gram Gold %s\n\n", goldtrack.DefaultCurrency)
	r.Printf("**%.2f %s/g**\n\n", p.GramPrice, goldtrack.DefaultCurrency)
	if res.Stale {
		r.Printf("> ⚠ sources unavailable, showing cached price from %s (%s old)\n\n",
			p.Time.Local().Format("2006-01-02 15:04:05"), formatAge(p.Age(time.Now())))
	}

	r.Printf("| | |\n")
	r.Printf("|:---|---:|\n")
	r.Printf("| Ounce price | %.2f %s |\n", p.OuncePrice(), goldtrack.DefaultCurrency)
	if p.XAUUSD > 0 {
		r.Printf("| XAU/USD | %.2f |\n", p.XAUUSD)
	}
	if p.USDTRY > 0 {
		r.Printf("| USD/%s | %.4f |\n", goldtrack.DefaultCurrency, p.USDTRY)
	}
	r.Printf("| Source | %s |\n", p.Source)
	r.Printf("| Time | %s |\n", p.Time.Local().Format("2006-01-02 15:04:05"))
	return r.String()
}

// PriceLine renders a resolved price as a one-line ticker, used by watch.
func PriceLine(res goldtrack.Result) string {
	note := ""
	if res.Stale {
		note = fmt.Sprintf(" (cached, %s old)", formatAge(res.Price.Age(time.Now())))
	}
	return fmt.Sprintf("%s  %.2f %s/g  [%s]%s",
		res.Price.Time.Local().Format("15:04:05"),
		res.Price.GramPrice, goldtrack.DefaultCurrency, res.Price.Source, note)
}

// formatAge formats a price age with a single coarse unit.
func formatAge(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}
