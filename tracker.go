package goldtrack

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultPollInterval is the reference polling period.
const DefaultPollInterval = 60 * time.Second

// Result is the outcome of one refresh cycle.
type Result struct {
	Price ResolvedPrice
	// Stale is true when resolution failed and Price came from the cache.
	Stale bool
}

// Tracker drives the refresh cycle: resolve the price, persist it, run the
// alarm check, and fall back to the cached record on total failure.
// Overlapping refreshes are collapsed into one in-flight resolution, so a
// poll tick never races a manual refresh on the cache slot.
type Tracker struct {
	Resolver *Resolver
	Cache    *PriceCache
	Alarm    *AlarmEngine // may be nil

	group singleflight.Group
}

// NewTracker wires a tracker from its collaborators.
func NewTracker(resolver *Resolver, cache *PriceCache, alarm *AlarmEngine) *Tracker {
	return &Tracker{Resolver: resolver, Cache: cache, Alarm: alarm}
}

// Refresh performs one cycle. On resolution success the fresh price is
// returned (the resolver already wrote the cache). On total failure the
// last cached price is returned marked stale; ErrAllSourcesUnavailable
// escapes only when there is no cache to fall back to. The alarm check
// runs on whichever price is presented, fresh or cached.
func (t *Tracker) Refresh(ctx context.Context) (Result, error) {
	v, err, _ := t.group.Do("refresh", func() (any, error) {
		res, err := t.refresh(ctx)
		if err != nil {
			return Result{}, err
		}
		return res, nil
	})
	if err != nil {
		return Result{}, err
	}
	return v.(Result), nil
}

func (t *Tracker) refresh(ctx context.Context) (Result, error) {
	res := Result{}
	p, err := t.Resolver.Resolve(ctx)
	if err != nil {
		cached, ok := t.Cache.Read(ctx)
		if !ok {
			return Result{}, err
		}
		log.Printf("price resolution failed, showing cached price from %s: %v", cached.Time.Format(time.RFC3339), err)
		res = Result{Price: cached, Stale: true}
	} else {
		res = Result{Price: p}
	}
	if t.Alarm != nil {
		if _, aerr := t.Alarm.Check(ctx, res.Price.GramPrice); aerr != nil {
			log.Printf("alarm check err (ignored): %v", aerr)
		}
	}
	return res, nil
}

// Watch refreshes immediately, then on every tick of the interval, invoking
// onResult after each cycle, until the context is cancelled. A cycle's
// result settles before the next tick is honored, so cycles never overlap.
func (t *Tracker) Watch(ctx context.Context, interval time.Duration, onResult func(Result, error)) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	onResult(t.Refresh(ctx))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			onResult(t.Refresh(ctx))
		}
	}
}
