package goldtrack

import (
	"errors"
	"fmt"
	"iter"
	"sort"

	"github.com/shopspring/decimal"
)

// ErrInsufficientPosition is returned when a sell would dispose of more gold
// than the ledger holds. The ledger is left unmodified.
var ErrInsufficientPosition = errors.New("insufficient position")

// sellEpsilon is the tolerance applied when comparing a requested sell
// quantity against the current position, so that a sell of the exact
// position never fails on representation noise.
var sellEpsilon = decimal.New(1, -9)

// Ledger exclusively owns the collection of gold transactions.
//
// In a Ledger transactions are always in chronological order: ascending
// time, ties broken by insertion order. Accounting never depends on the
// order records happen to be stored in.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// LedgerState is the derived accounting state of the ledger. It is never
// persisted: it is always recomputed from the transactions, so it cannot
// drift from them.
type LedgerState struct {
	Position  Quantity // grams held, never negative for validated input
	CostBasis Money    // total cost of the surviving position
	Realized  Money    // realized profit and loss over all disposals
}

// AverageCost is the weighted average cost per gram of the surviving
// position, or zero when the position is flat.
func (s LedgerState) AverageCost() Money {
	if !s.Position.IsPositive() {
		return TRY(0)
	}
	return s.CostBasis.Div(s.Position)
}

// ComputeState replays transactions in ascending time order (ties by input
// order) and returns the resulting state. It is a pure function: no side
// effects, deterministic for a given input, and it never fails. A sell
// replayed against an empty position contributes nothing; that models a
// data-entry inconsistency in out-of-band-edited data. Entry-time
// validation in Append is the authoritative guard, this skip is defensive
// only.
//
// The recurrence is the textbook weighted-average-cost method: on every
// disposal the average cost is recomputed from the cost basis accumulated
// by the surviving holdings, with no per-lot tracking.
func ComputeState(transactions []Transaction) LedgerState {
	ordered := make([]Transaction, len(transactions))
	copy(ordered, transactions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Time.Before(ordered[j].Time)
	})

	state := LedgerState{Position: Q(0), CostBasis: TRY(0), Realized: TRY(0)}
	for _, tx := range ordered {
		switch tx.Kind {
		case KindBuy:
			state.Position = state.Position.Add(tx.Grams)
			state.CostBasis = state.CostBasis.Add(tx.Price.Mul(tx.Grams)).Add(tx.Fee)
		case KindSell:
			if !state.Position.IsPositive() {
				continue
			}
			avg := state.CostBasis.Div(state.Position)
			state.Realized = state.Realized.Add(tx.Price.Sub(avg).Mul(tx.Grams)).Sub(tx.Fee)
			state.Position = state.Position.Sub(tx.Grams)
			state.CostBasis = state.CostBasis.Sub(avg.Mul(tx.Grams))
		}
	}
	return state
}

// State replays the whole ledger.
func (l *Ledger) State() LedgerState {
	return ComputeState(l.transactions)
}

// Position returns the grams currently held.
func (l *Ledger) Position() Quantity {
	return l.State().Position
}

// Append validates tx against the current state and appends it, maintaining
// the chronological order of transactions. On a validation failure the
// ledger is left untouched.
func (l *Ledger) Append(tx Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	if tx.Kind == KindSell {
		position := l.Position()
		if tx.Grams.Sub(position).GreaterThan(Q(sellEpsilon)) {
			return fmt.Errorf("%w: cannot sell %sg, only %sg held", ErrInsufficientPosition, tx.Grams, position)
		}
	}
	l.transactions = append(l.transactions, tx)
	l.stableSort()
	return nil
}

// Delete removes the transaction with the given id. It reports whether a
// transaction was removed.
func (l *Ledger) Delete(id string) bool {
	for i, tx := range l.transactions {
		if tx.ID == id {
			l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the transaction with the given id, or false.
func (l *Ledger) Get(id string) (Transaction, bool) {
	for _, tx := range l.transactions {
		if tx.ID == id {
			return tx, true
		}
	}
	return Transaction{}, false
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns an iterator over the transactions in chronological
// order.
func (l *Ledger) Transactions() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// stableSort sorts the ledger by transaction time. The sort is stable, so
// transactions at the same instant keep their insertion order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Time.Before(l.transactions[j].Time)
	})
}
