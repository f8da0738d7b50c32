package goldtrack

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestEncodeTransaction_FieldOrder(t *testing.T) {
	tx := Transaction{
		ID:    "a1",
		Kind:  KindBuy,
		Time:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Grams: Q(10),
		Price: TRY(4100.5),
		Fee:   TRY(15),
		Memo:  "quarter coin",
	}
	var buf bytes.Buffer
	if err := EncodeTransaction(&buf, tx); err != nil {
		t.Fatal(err)
	}
	want := `{"id":"a1","kind":"buy","time":"2026-08-01T12:00:00Z","grams":10,"price":4100.5,"fee":15,"memo":"quarter coin"}` + "\n"
	if buf.String() != want {
		t.Errorf("encoded:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestEncodeTransaction_OmitsEmptyMemo(t *testing.T) {
	tx := NewSell(time.Now(), "", Q(1), TRY(4000), TRY(0))
	var buf bytes.Buffer
	if err := EncodeTransaction(&buf, tx); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "memo") {
		t.Errorf("empty memo serialized: %s", buf.String())
	}
}

func TestDecodeLedger(t *testing.T) {
	// Lines deliberately out of order, with a blank line in between.
	jsonl := `{"id":"b","kind":"sell","time":"2026-08-02T00:00:00Z","grams":5,"price":4200,"fee":0}

{"id":"a","kind":"buy","time":"2026-08-01T00:00:00Z","grams":10,"price":4000,"fee":0}
`
	l, err := DecodeLedger(strings.NewReader(jsonl))
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 2 {
		t.Fatalf("decoded %d transactions, want 2", l.Len())
	}
	first, _ := l.Get("a")
	for i, tx := range l.Transactions() {
		if i == 0 && !tx.Equal(first) {
			t.Errorf("ledger not chronologically sorted, first tx is %s", tx.ID)
		}
	}
	state := l.State()
	if !state.Position.Equal(Q(5)) {
		t.Errorf("position = %s, want 5", state.Position)
	}
	if !state.Realized.Equal(TRY(1000)) {
		t.Errorf("realized = %v, want 1000", state.Realized)
	}
}

func TestDecodeLedger_MalformedLine(t *testing.T) {
	if _, err := DecodeLedger(strings.NewReader("{oops\n")); err == nil {
		t.Error("malformed line decoded without error")
	}
}

func TestLedger_StoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	l := NewLedger()
	if err := l.Append(NewBuy(time.Now(), "first", Q(2.5), TRY(4100), TRY(10))); err != nil {
		t.Fatal(err)
	}
	if err := SaveLedger(ctx, store, l); err != nil {
		t.Fatal(err)
	}

	got, err := LoadLedger(ctx, store)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 1 {
		t.Fatalf("reloaded %d transactions, want 1", got.Len())
	}
	for _, tx := range got.Transactions() {
		orig, _ := l.Get(tx.ID)
		if !tx.Equal(orig) {
			t.Errorf("reloaded %+v, want %+v", tx, orig)
		}
	}
}

func TestLoadLedger_Absent(t *testing.T) {
	l, err := LoadLedger(context.Background(), NewMemStore())
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 0 {
		t.Errorf("absent record produced %d transactions, want an empty ledger", l.Len())
	}
}
