package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/altintakip/goldtrack"
)

func TestParseTransaction(t *testing.T) {
	tx, err := parseTransaction(goldtrack.NewBuy, "2.5", "4100.50", "15", "2026-08-01", "coins")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if tx.Kind != goldtrack.KindBuy {
		t.Errorf("kind = %s", tx.Kind)
	}
	if !tx.Grams.Equal(goldtrack.Q(2.5)) {
		t.Errorf("grams = %s", tx.Grams)
	}
	if got := tx.Time.Format("2006-01-02"); got != "2026-08-01" {
		t.Errorf("time = %s", got)
	}
	if tx.Memo != "coins" {
		t.Errorf("memo = %q", tx.Memo)
	}
}

func TestParseTransaction_Invalid(t *testing.T) {
	testCases := []struct {
		name                    string
		grams, price, fee, date string
	}{
		{"bad grams", "ten", "4000", "0", ""},
		{"bad price", "10", "", "0", ""},
		{"bad fee", "10", "4000", "x", ""},
		{"bad date", "10", "4000", "0", "yesterday"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseTransaction(goldtrack.NewBuy, tc.grams, tc.price, tc.fee, tc.date, ""); err == nil {
				t.Error("invalid input parsed without error")
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	if at, err := parseDate(""); err != nil || !at.IsZero() {
		t.Errorf("empty date: %v %v, want zero time", at, err)
	}
	if at, err := parseDate("2026-08-29T10:15:00Z"); err != nil || at.Hour() != 10 {
		t.Errorf("rfc3339 date: %v %v", at, err)
	}
}

func TestResolveID(t *testing.T) {
	l := goldtrack.NewLedger()
	tx := goldtrack.NewBuy(time.Now(), "", goldtrack.Q(1), goldtrack.TRY(4000), goldtrack.TRY(0))
	if err := l.Append(tx); err != nil {
		t.Fatal(err)
	}

	id, err := resolveID(l, tx.ID[:8])
	if err != nil {
		t.Fatalf("prefix resolution failed: %v", err)
	}
	if id != tx.ID {
		t.Errorf("resolved %q, want %q", id, tx.ID)
	}

	if _, err := resolveID(l, "zzzz"); err == nil || !strings.Contains(err.Error(), "no transaction") {
		t.Errorf("unknown prefix: %v", err)
	}

	other := goldtrack.NewBuy(time.Now(), "", goldtrack.Q(1), goldtrack.TRY(4000), goldtrack.TRY(0))
	if err := l.Append(other); err != nil {
		t.Fatal(err)
	}
	if _, err := resolveID(l, ""); err == nil || !strings.Contains(err.Error(), "ambiguous") {
		t.Errorf("ambiguous prefix: %v", err)
	}
}
