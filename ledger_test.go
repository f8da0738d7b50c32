package goldtrack

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

func at(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("bad test time %q: %v", s, err)
	}
	return ts
}

func TestComputeState_WeightedAverageCost(t *testing.T) {
	// Buy 10g @ 100, buy 10g @ 200, sell 5g @ 180, all without fees.
	txs := []Transaction{
		NewBuy(at(t, "2025-01-01T10:00:00Z"), "", Q(10), TRY(100), TRY(0)),
		NewBuy(at(t, "2025-01-02T10:00:00Z"), "", Q(10), TRY(200), TRY(0)),
		NewSell(at(t, "2025-01-03T10:00:00Z"), "", Q(5), TRY(180), TRY(0)),
	}

	checkpoints := []struct {
		name         string
		upTo         int
		wantPosition Quantity
		wantCost     Money
		wantRealized Money
		wantAvg      Money
	}{
		{"after first buy", 1, Q(10), TRY(1000), TRY(0), TRY(100)},
		{"after second buy", 2, Q(20), TRY(3000), TRY(0), TRY(150)},
		{"after sell", 3, Q(15), TRY(2250), TRY(150), TRY(150)},
	}

	for _, tc := range checkpoints {
		t.Run(tc.name, func(t *testing.T) {
			state := ComputeState(txs[:tc.upTo])
			if !state.Position.Equal(tc.wantPosition) {
				t.Errorf("position = %s, want %s", state.Position, tc.wantPosition)
			}
			if !state.CostBasis.Equal(tc.wantCost) {
				t.Errorf("cost basis = %s, want %s", state.CostBasis, tc.wantCost)
			}
			if !state.Realized.Equal(tc.wantRealized) {
				t.Errorf("realized = %s, want %s", state.Realized, tc.wantRealized)
			}
			if !state.AverageCost().Equal(tc.wantAvg) {
				t.Errorf("average cost = %s, want %s", state.AverageCost(), tc.wantAvg)
			}
		})
	}
}

func TestComputeState_Fees(t *testing.T) {
	txs := []Transaction{
		NewBuy(at(t, "2025-01-01T10:00:00Z"), "", Q(10), TRY(100), TRY(25)),
		NewSell(at(t, "2025-01-02T10:00:00Z"), "", Q(10), TRY(120), TRY(10)),
	}
	state := ComputeState(txs)
	// Cost basis includes the buy fee: avg = 1025/10 = 102.50.
	// Realized = (120 - 102.50)*10 - 10 = 165.
	if !state.Realized.Equal(TRY(165)) {
		t.Errorf("realized = %s, want %s", state.Realized, TRY(165))
	}
	if !state.Position.IsZero() {
		t.Errorf("position = %s, want 0", state.Position)
	}
	if !state.AverageCost().IsZero() {
		t.Errorf("average cost on flat position = %s, want 0", state.AverageCost())
	}
}

func TestComputeState_StorageOrderIndependent(t *testing.T) {
	txs := []Transaction{
		NewBuy(at(t, "2025-01-01T10:00:00Z"), "", Q(10), TRY(100), TRY(0)),
		NewBuy(at(t, "2025-01-02T10:00:00Z"), "", Q(10), TRY(200), TRY(0)),
		NewSell(at(t, "2025-01-03T10:00:00Z"), "", Q(5), TRY(180), TRY(0)),
		NewBuy(at(t, "2025-01-04T10:00:00Z"), "", Q(2), TRY(210), TRY(5)),
		NewSell(at(t, "2025-01-05T10:00:00Z"), "", Q(1), TRY(220), TRY(1)),
	}
	want := ComputeState(txs)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]Transaction, len(txs))
		copy(shuffled, txs)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := ComputeState(shuffled)
		if !got.Position.Equal(want.Position) || !got.CostBasis.Equal(want.CostBasis) || !got.Realized.Equal(want.Realized) {
			t.Fatalf("permutation %d: state %+v, want %+v", i, got, want)
		}
	}
}

func TestComputeState_Idempotent(t *testing.T) {
	txs := []Transaction{
		NewBuy(at(t, "2025-01-01T10:00:00Z"), "", Q(10), TRY(100), TRY(0)),
		NewSell(at(t, "2025-01-02T10:00:00Z"), "", Q(4), TRY(150), TRY(0)),
	}
	first := ComputeState(txs)
	second := ComputeState(txs)
	if !first.Position.Equal(second.Position) || !first.CostBasis.Equal(second.CostBasis) || !first.Realized.Equal(second.Realized) {
		t.Fatalf("replay is not idempotent: %+v then %+v", first, second)
	}
}

func TestComputeState_SkipsSellAgainstEmptyPosition(t *testing.T) {
	// A sell replayed with no position contributes nothing. This mirrors
	// hand-edited data; Append would have rejected it.
	txs := []Transaction{
		NewSell(at(t, "2025-01-01T10:00:00Z"), "", Q(5), TRY(100), TRY(0)),
		NewBuy(at(t, "2025-01-02T10:00:00Z"), "", Q(10), TRY(100), TRY(0)),
	}
	state := ComputeState(txs)
	if !state.Position.Equal(Q(10)) {
		t.Errorf("position = %s, want 10", state.Position)
	}
	if !state.Realized.IsZero() {
		t.Errorf("realized = %s, want 0", state.Realized)
	}
}

func TestLedger_Append_InsufficientPosition(t *testing.T) {
	ledger := NewLedger()
	if err := ledger.Append(NewBuy(at(t, "2025-01-01T10:00:00Z"), "", Q(10), TRY(100), TRY(0))); err != nil {
		t.Fatalf("buy failed: %v", err)
	}

	oversell := NewSell(at(t, "2025-01-02T10:00:00Z"), "", Q(10.0000001), TRY(120), TRY(0))
	err := ledger.Append(oversell)
	if !errors.Is(err, ErrInsufficientPosition) {
		t.Fatalf("oversell err = %v, want ErrInsufficientPosition", err)
	}
	if ledger.Len() != 1 {
		t.Fatalf("ledger mutated by rejected sell: %d transactions", ledger.Len())
	}

	// Selling the exact position succeeds and leaves it flat.
	if err := ledger.Append(NewSell(at(t, "2025-01-02T10:00:00Z"), "", Q(10), TRY(120), TRY(0))); err != nil {
		t.Fatalf("exact sell failed: %v", err)
	}
	if !ledger.Position().IsZero() {
		t.Errorf("position = %s, want 0", ledger.Position())
	}
}

func TestLedger_Append_Validation(t *testing.T) {
	base := at(t, "2025-01-01T10:00:00Z")
	testCases := []struct {
		name string
		tx   Transaction
	}{
		{"zero quantity", NewBuy(base, "", Q(0), TRY(100), TRY(0))},
		{"negative quantity", NewBuy(base, "", Q(-1), TRY(100), TRY(0))},
		{"zero price", NewBuy(base, "", Q(1), TRY(0), TRY(0))},
		{"negative price", NewSell(base, "", Q(1), TRY(-5), TRY(0))},
		{"negative fee", NewBuy(base, "", Q(1), TRY(100), TRY(-1))},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ledger := NewLedger()
			if err := ledger.Append(tc.tx); err == nil {
				t.Errorf("Append(%s) accepted an invalid transaction", tc.name)
			}
			if ledger.Len() != 0 {
				t.Errorf("ledger mutated by invalid transaction")
			}
		})
	}
}

func TestLedger_Delete(t *testing.T) {
	ledger := NewLedger()
	tx := NewBuy(at(t, "2025-01-01T10:00:00Z"), "", Q(10), TRY(100), TRY(0))
	if err := ledger.Append(tx); err != nil {
		t.Fatalf("buy failed: %v", err)
	}

	if !ledger.Delete(tx.ID) {
		t.Fatalf("Delete(%q) = false, want true", tx.ID)
	}
	if ledger.Delete(tx.ID) {
		t.Error("second Delete reported success")
	}
	if ledger.Len() != 0 {
		t.Errorf("ledger has %d transactions after delete, want 0", ledger.Len())
	}
}

func TestLedger_ChronologicalOrder(t *testing.T) {
	// Appended out of order, iterated in time order.
	ledger := NewLedger()
	second := NewBuy(at(t, "2025-02-01T10:00:00Z"), "", Q(1), TRY(200), TRY(0))
	first := NewBuy(at(t, "2025-01-01T10:00:00Z"), "", Q(1), TRY(100), TRY(0))
	for _, tx := range []Transaction{second, first} {
		if err := ledger.Append(tx); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	var ids []string
	for _, tx := range ledger.Transactions() {
		ids = append(ids, tx.ID)
	}
	if len(ids) != 2 || ids[0] != first.ID || ids[1] != second.ID {
		t.Errorf("iteration order %v, want [%s %s]", ids, first.ID, second.ID)
	}
}
