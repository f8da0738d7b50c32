package goldtrack

import (
	"context"
	"testing"
	"time"
)

func TestPriceCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	cache := NewPriceCache(NewMemStore())

	want := ResolvedPrice{
		GramPrice: 5000.12,
		XAUUSD:    3250,
		USDTRY:    41,
		Source:    "composed",
		Time:      time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
	}
	if err := cache.Write(ctx, want); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	got, ok := cache.Read(ctx)
	if !ok {
		t.Fatal("read missed after write")
	}
	if got != want {
		t.Errorf("read %+v, want %+v", got, want)
	}
}

func TestPriceCache_Miss(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	cache := NewPriceCache(store)

	testCases := []struct {
		name string
		raw  string // empty means no record at all
	}{
		{name: "absent"},
		{name: "malformed json", raw: `{gramPrice: oops`},
		{name: "wrong shape", raw: `[1,2,3]`},
		{name: "non-positive price", raw: `{"gramPrice":0,"source":"x"}`},
		{name: "negative price", raw: `{"gramPrice":-5,"source":"x"}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.raw != "" {
				if err := store.Set(ctx, KeyPriceCache, tc.raw); err != nil {
					t.Fatal(err)
				}
			}
			if _, ok := cache.Read(ctx); ok {
				t.Error("got a hit, want a miss")
			}
		})
	}
}
