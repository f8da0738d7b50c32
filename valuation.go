package goldtrack

// Valuation combines a ledger state with a gram price. It has no state of
// its own and is recomputed on every ledger or price change.
type Valuation struct {
	MarketValue Money
	Unrealized  Money
	Realized    Money
	Total       Money
}

// Value prices the position at gramPrice. A non-positive price means "price
// unavailable": the market value is zero and no unrealized profit or loss
// is attributed. Realized profit and loss is carried over regardless.
func (s LedgerState) Value(gramPrice Money) Valuation {
	v := Valuation{
		MarketValue: TRY(0),
		Unrealized:  TRY(0),
		Realized:    s.Realized,
	}
	if gramPrice.IsPositive() {
		v.MarketValue = gramPrice.Mul(s.Position)
		if s.Position.IsPositive() {
			v.Unrealized = gramPrice.Sub(s.AverageCost()).Mul(s.Position)
		}
	}
	v.Total = v.Realized.Add(v.Unrealized)
	return v
}
