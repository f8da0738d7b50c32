package goldtrack

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
)

// PriceCache is the single persisted slot holding the last successfully
// resolved price. It is not a history: every write replaces the previous
// record. The store has no expiry logic; staleness is derived by the caller
// from the record's timestamp.
type PriceCache struct {
	store Store
}

func NewPriceCache(store Store) *PriceCache { return &PriceCache{store: store} }

// Read returns the cached price, if any. An absent or malformed record is
// treated as a cache miss, never as an error: a corrupt cache must not take
// the tracker down.
func (c *PriceCache) Read(ctx context.Context) (ResolvedPrice, bool) {
	raw, ok, err := c.store.Get(ctx, KeyPriceCache)
	if err != nil {
		log.Printf("price cache read err (treated as miss): %v", err)
		return ResolvedPrice{}, false
	}
	if !ok {
		return ResolvedPrice{}, false
	}
	var p ResolvedPrice
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		log.Printf("malformed price cache (treated as miss): %v", err)
		return ResolvedPrice{}, false
	}
	if p.GramPrice <= 0 {
		log.Printf("malformed price cache (treated as miss): non-positive gram price %v", p.GramPrice)
		return ResolvedPrice{}, false
	}
	return p, true
}

// Write replaces the cached price with p. Last write wins, no versioning.
func (c *PriceCache) Write(ctx context.Context, p ResolvedPrice) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("could not encode price cache: %w", err)
	}
	return c.store.Set(ctx, KeyPriceCache, string(raw))
}
