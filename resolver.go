package goldtrack

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// ErrSourceUnavailable marks the failure of a single rate source: network
// error, timeout, non-success status or a response missing the expected
// numeric field. It is recovered locally by trying the next source.
var ErrSourceUnavailable = errors.New("source unavailable")

// ErrAllSourcesUnavailable is returned by Resolve only when every configured
// source failed in that pass. Callers fall back to the price cache.
var ErrAllSourcesUnavailable = errors.New("all sources unavailable")

// Source is a single rate source able to quote the ounce price of gold in
// the local currency. Implementations encode exactly one upstream endpoint
// and must not retry internally: retries are the resolver's responsibility
// through source ordering.
type Source interface {
	Name() string
	FetchQuote(ctx context.Context) (Quote, error)
}

// firstQuote tries sources in priority order and returns the first
// successful quote. A failing source is logged and skipped; the aggregate
// error is returned only when all of them failed.
func firstQuote(ctx context.Context, sources []Source) (Quote, error) {
	var errs error
	for _, s := range sources {
		q, err := s.FetchQuote(ctx)
		if err != nil {
			log.Printf("source %s skipped: %v", s.Name(), err)
			errs = errors.Join(errs, err)
			continue
		}
		return q, nil
	}
	if errs == nil {
		errs = errors.New("no sources configured")
	}
	return Quote{}, errs
}

// ComposedSource derives the ounce TRY price from two independent legs:
// the metal leg (XAU/USD) and the currency leg (USD/TRY). Each leg is its
// own primary/secondary fallback chain; the two legs run in parallel and
// are joined before the product is formed. To the resolver the whole
// composition counts as one source.
type ComposedSource struct {
	Metal []Source // XAU/USD chain
	Local []Source // USD/TRY chain
}

func (s *ComposedSource) Name() string { return "composed XAUUSD×USDTRY" }

func (s *ComposedSource) FetchQuote(ctx context.Context) (Quote, error) {
	var metal, local Quote
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q, err := firstQuote(gctx, s.Metal)
		metal = q
		return err
	})
	g.Go(func() error {
		q, err := firstQuote(gctx, s.Local)
		local = q
		return err
	})
	if err := g.Wait(); err != nil {
		return Quote{}, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, s.Name(), err)
	}
	return Quote{
		Value:  metal.Value * local.Value,
		XAUUSD: metal.Value,
		USDTRY: local.Value,
		Source: metal.Source + " × " + local.Source,
		At:     metal.At,
	}, nil
}

// Resolver tries an ordered list of sources until one succeeds and converts
// the ounce quote into a per-gram price. The order is data, not control
// flow: adding or reordering sources is a configuration change.
type Resolver struct {
	Sources []Source
	Cache   *PriceCache // last successful result is persisted here; may be nil
}

// NewResolver creates a resolver over the given priority-ordered sources.
func NewResolver(cache *PriceCache, sources ...Source) *Resolver {
	return &Resolver{Sources: sources, Cache: cache}
}

// DefaultSources returns the production priority order: the direct XAU/TRY
// pair first, then the two-leg composition with its per-leg fallbacks.
func DefaultSources(client *http.Client) []Source {
	host := &RateHost{Client: client}
	frank := &Frankfurter{Client: client}
	return []Source{
		&ConvertSource{Host: host, From: "XAU", To: DefaultCurrency},
		&ComposedSource{
			Metal: []Source{
				&ConvertSource{Host: host, From: "XAU", To: "USD"},
				&InvertSource{Host: host, Base: "USD", Symbol: "XAU"},
			},
			Local: []Source{
				&ConvertSource{Host: host, From: "USD", To: DefaultCurrency},
				&FrankfurterSource{Host: frank, From: "USD", To: DefaultCurrency},
			},
		},
	}
}

// Resolve walks the sources in priority order and returns the first
// successful quote converted to a per-gram price. Individual source
// failures never escape; only total failure does, as
// ErrAllSourcesUnavailable. On success the result replaces the cached
// price (last write wins). On failure the resolver does not read the
// cache: that fallback belongs to the caller.
func (r *Resolver) Resolve(ctx context.Context) (ResolvedPrice, error) {
	q, err := firstQuote(ctx, r.Sources)
	if err != nil {
		return ResolvedPrice{}, fmt.Errorf("%w: %v", ErrAllSourcesUnavailable, err)
	}
	p := resolved(q)
	if r.Cache != nil {
		if err := r.Cache.Write(ctx, p); err != nil {
			// A failed cache write does not invalidate a fresh price.
			log.Printf("price cache write err (ignored): %v", err)
		}
	}
	return p, nil
}
