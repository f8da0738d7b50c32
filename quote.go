package goldtrack

import "time"

// OunceToGram is the weight of a troy ounce in grams.
const OunceToGram = 31.1035

// DefaultCurrency is the local currency every price and amount is expressed in.
const DefaultCurrency = "TRY"

// Quote holds the ounce price of gold in the local currency as returned by a
// single source. It is ephemeral: produced by an adapter call and consumed
// immediately by the resolver.
//
// When the quote was composed from two independent legs (metal in USD times
// USD in TRY), the legs are carried along for display.
type Quote struct {
	Value  float64 // ounce price in local currency
	XAUUSD float64 // metal leg, zero for a direct pair source
	USDTRY float64 // currency leg, zero for a direct pair source
	Source string
	At     time.Time
}

// ResolvedPrice is the per-gram local currency price derived from a
// successful quote. The price cache holds at most one persisted copy,
// overwritten on every successful resolution.
type ResolvedPrice struct {
	GramPrice float64   `json:"gramPrice"`
	XAUUSD    float64   `json:"xauusd,omitempty"`
	USDTRY    float64   `json:"usdtry,omitempty"`
	Source    string    `json:"source"`
	Time      time.Time `json:"time"`
}

// resolved converts an ounce-denominated quote to a per-gram price.
func resolved(q Quote) ResolvedPrice {
	return ResolvedPrice{
		GramPrice: q.Value / OunceToGram,
		XAUUSD:    q.XAUUSD,
		USDTRY:    q.USDTRY,
		Source:    q.Source,
		Time:      q.At,
	}
}

// OuncePrice returns the troy ounce price the gram price was derived from.
func (p ResolvedPrice) OuncePrice() float64 { return p.GramPrice * OunceToGram }

// Age returns how old the price is relative to now. Whether an age makes the
// price "stale" is the presenter's call, the core enforces no threshold.
func (p ResolvedPrice) Age(now time.Time) time.Duration { return now.Sub(p.Time) }
