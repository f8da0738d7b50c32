package goldtrack

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind is a typed string identifying the side of a transaction.
type Kind string

const (
	KindBuy  Kind = "buy"
	KindSell Kind = "sell"
)

// Transaction records a single purchase or disposal of gram gold. A
// transaction is immutable once created; it can be deleted by id but never
// updated in place.
type Transaction struct {
	ID    string    `json:"id"`
	Kind  Kind      `json:"kind"`
	Time  time.Time `json:"time"`
	Grams Quantity  `json:"grams"`
	Price Money     `json:"price"` // unit price per gram
	Fee   Money     `json:"fee"`
	Memo  string    `json:"memo,omitempty"`
}

// NewBuy creates a buy transaction with a fresh id.
func NewBuy(at time.Time, memo string, grams Quantity, price, fee Money) Transaction {
	return newTransaction(KindBuy, at, memo, grams, price, fee)
}

// NewSell creates a sell transaction with a fresh id.
func NewSell(at time.Time, memo string, grams Quantity, price, fee Money) Transaction {
	return newTransaction(KindSell, at, memo, grams, price, fee)
}

func newTransaction(kind Kind, at time.Time, memo string, grams Quantity, price, fee Money) Transaction {
	if at.IsZero() {
		at = time.Now()
	}
	return Transaction{
		ID:    uuid.NewString(),
		Kind:  kind,
		Time:  at.UTC(),
		Grams: grams,
		Price: price,
		Fee:   fee,
		Memo:  memo,
	}
}

// Cost is the total cash amount of the transaction: grams*price plus fee for
// a buy, grams*price minus fee for a sell.
func (t Transaction) Cost() Money {
	gross := t.Price.Mul(t.Grams)
	if t.Kind == KindSell {
		return gross.Sub(t.Fee)
	}
	return gross.Add(t.Fee)
}

func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Kind == o.Kind &&
		t.Time.Equal(o.Time) &&
		t.Grams.Equal(o.Grams) &&
		t.Price.Equal(o.Price) &&
		t.Fee.Equal(o.Fee) &&
		t.Memo == o.Memo
}

// Validate checks the transaction's own fields. Position-dependent checks
// (enough gold to sell) belong to the ledger.
func (t Transaction) Validate() error {
	switch t.Kind {
	case KindBuy, KindSell:
	default:
		return fmt.Errorf("unknown transaction kind %q", t.Kind)
	}
	if t.ID == "" {
		return fmt.Errorf("transaction id is missing")
	}
	if t.Time.IsZero() {
		return fmt.Errorf("transaction time is missing")
	}
	if !t.Grams.IsPositive() {
		return fmt.Errorf("%s quantity must be positive, got %s", t.Kind, t.Grams)
	}
	if !t.Price.IsPositive() {
		return fmt.Errorf("%s unit price must be positive, got %s", t.Kind, t.Price)
	}
	if t.Fee.IsNegative() {
		return fmt.Errorf("%s fee cannot be negative, got %s", t.Kind, t.Fee)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface, keeping a stable
// field order in the persisted ledger.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("kind", t.Kind)
	w.Append("time", t.Time.UTC().Format(time.RFC3339Nano))
	w.Append("grams", t.Grams)
	w.Append("price", t.Price)
	w.Append("fee", t.Fee)
	w.Optional("memo", t.Memo)
	return w.MarshalJSON()
}
