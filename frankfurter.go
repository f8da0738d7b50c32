package goldtrack

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Frankfurter is a client for the api.frankfurter.app latest-rates endpoint.
// It only serves fiat pairs, so it backs the USD/TRY leg, not the metal leg.
type Frankfurter struct {
	Client  *http.Client
	BaseURL string
	Timeout time.Duration
}

func (h *Frankfurter) base() string {
	if h.BaseURL != "" {
		return h.BaseURL
	}
	return "https://api.frankfurter.app"
}

// Latest returns the from→to rate.
func (h *Frankfurter) Latest(ctx context.Context, from, to string) (float64, error) {
	addr := fmt.Sprintf("%s/latest?from=%s&to=%s", h.base(), from, to)
	var jobj any
	if err := fetchJSON(ctx, h.Client, addr, h.Timeout, &jobj); err != nil {
		return 0, err
	}
	val, err := jsonNumber(jobj, "$.rates."+to)
	if err != nil {
		return 0, fmt.Errorf("%w: %s/%s: %v", ErrSourceUnavailable, from, to, err)
	}
	return val, nil
}

// FrankfurterSource quotes a fiat pair from frankfurter.app.
type FrankfurterSource struct {
	Host     *Frankfurter
	From, To string
}

func (s *FrankfurterSource) Name() string { return "frankfurter.app " + s.From + s.To }

func (s *FrankfurterSource) FetchQuote(ctx context.Context) (Quote, error) {
	val, err := s.Host.Latest(ctx, s.From, s.To)
	if err != nil {
		return Quote{}, err
	}
	if val <= 0 {
		return Quote{}, fmt.Errorf("%w: %s: non-positive rate %v", ErrSourceUnavailable, s.Name(), val)
	}
	return Quote{Value: val, Source: s.Name(), At: time.Now()}, nil
}
