package goldtrack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// contains http utils to deal with remote rate services

// defaultFetchTimeout bounds a single upstream call. On expiry the in-flight
// request is cancelled and the source counts as unavailable.
const defaultFetchTimeout = 10 * time.Second

// fetchJSON performs an HTTP GET bounded by timeout and unmarshals the JSON
// response into the provided data structure. Network errors, non-success
// statuses and undecodable bodies all wrap ErrSourceUnavailable.
func fetchJSON(ctx context.Context, client *http.Client, addr string, timeout time.Duration, data any) error {
	if client == nil {
		client = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return fmt.Errorf("%w: invalid request %q: %v", ErrSourceUnavailable, addr, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %q: %v", ErrSourceUnavailable, addr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: GET %v/%v: %v", ErrSourceUnavailable, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return fmt.Errorf("%w: reading %q: %v", ErrSourceUnavailable, addr, err)
	}
	if err := json.Unmarshal(buf.Bytes(), data); err != nil {
		return fmt.Errorf("%w: decoding %q: %v", ErrSourceUnavailable, addr, err)
	}
	return nil
}

// jsonNumber extracts a numeric field from a parsed JSON document using a
// jsonpath expression. Some upstreams return numbers as strings with comma
// decimal separators, those are parsed too.
func jsonNumber(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("no value at %q: %w", path, err)
	}
	// jsonpath may return a list of one answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	switch v := jval.(type) {
	case float64:
		return v, nil
	case string:
		s := strings.ReplaceAll(v, ",", ".")
		s = strings.ReplaceAll(s, " ", "")
		val, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN(), fmt.Errorf("value at %q is an invalid string %q: %w", path, v, err)
		}
		return val, nil
	default:
		return math.NaN(), fmt.Errorf("value at %q is neither a float nor a string: %v", path, jval)
	}
}
