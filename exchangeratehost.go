package goldtrack

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// RateHost is a client for the api.exchangerate.host quote endpoints.
type RateHost struct {
	Client  *http.Client
	BaseURL string        // defaults to the public endpoint
	Timeout time.Duration // per-call bound, defaults to defaultFetchTimeout
}

func (h *RateHost) base() string {
	if h.BaseURL != "" {
		return h.BaseURL
	}
	return "https://api.exchangerate.host"
}

// Convert returns the from→to rate from the /convert endpoint.
func (h *RateHost) Convert(ctx context.Context, from, to string) (float64, error) {
	addr := fmt.Sprintf("%s/convert?from=%s&to=%s", h.base(), from, to)
	var jobj any
	if err := fetchJSON(ctx, h.Client, addr, h.Timeout, &jobj); err != nil {
		return 0, err
	}
	val, err := jsonNumber(jobj, "$.result")
	if err != nil {
		return 0, fmt.Errorf("%w: %s/%s: %v", ErrSourceUnavailable, from, to, err)
	}
	return val, nil
}

// Latest returns the base→symbol rate from the /latest endpoint.
func (h *RateHost) Latest(ctx context.Context, base, symbol string) (float64, error) {
	addr := fmt.Sprintf("%s/latest?base=%s&symbols=%s", h.base(), base, symbol)
	var jobj any
	if err := fetchJSON(ctx, h.Client, addr, h.Timeout, &jobj); err != nil {
		return 0, err
	}
	val, err := jsonNumber(jobj, "$.rates."+symbol)
	if err != nil {
		return 0, fmt.Errorf("%w: %s/%s: %v", ErrSourceUnavailable, base, symbol, err)
	}
	return val, nil
}

// ConvertSource quotes a currency pair through the convert endpoint.
// One endpoint, one response shape; retries belong to the resolver.
type ConvertSource struct {
	Host     *RateHost
	From, To string
}

func (s *ConvertSource) Name() string { return "exchangerate.host " + s.From + s.To }

func (s *ConvertSource) FetchQuote(ctx context.Context) (Quote, error) {
	val, err := s.Host.Convert(ctx, s.From, s.To)
	if err != nil {
		return Quote{}, err
	}
	if val <= 0 {
		return Quote{}, fmt.Errorf("%w: %s: non-positive rate %v", ErrSourceUnavailable, s.Name(), val)
	}
	return Quote{Value: val, Source: s.Name(), At: time.Now()}, nil
}

// InvertSource quotes a pair by fetching the opposite direction from the
// latest endpoint and inverting it. The reference deployment uses it as the
// secondary XAU/USD leg: latest?base=USD&symbols=XAU gives XAU per USD.
type InvertSource struct {
	Host         *RateHost
	Base, Symbol string
}

func (s *InvertSource) Name() string { return "exchangerate.host " + s.Symbol + s.Base + " (inverted)" }

func (s *InvertSource) FetchQuote(ctx context.Context) (Quote, error) {
	rate, err := s.Host.Latest(ctx, s.Base, s.Symbol)
	if err != nil {
		return Quote{}, err
	}
	if rate <= 0 {
		return Quote{}, fmt.Errorf("%w: %s: non-positive rate %v", ErrSourceUnavailable, s.Name(), rate)
	}
	return Quote{Value: 1 / rate, Source: s.Name(), At: time.Now()}, nil
}
