// Package cmd implements the CLI application to track gram gold.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"github.com/altintakip/goldtrack"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&priceCmd{}, "price")
	c.Register(&watchCmd{}, "price")

	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&deleteCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")
	c.Register(&summaryCmd{}, "transactions")

	c.Register(&alarmCmd{}, "alarm")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&assistCmd{}, "assistant")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var dataDir = flag.String("data-dir", defaultDataDir(), "Path to the data directory holding the ledger, price cache and alarm settings")
var redisAddr = flag.String("redis", "", "Redis address to use instead of the data directory")
var toastOnly = flag.Bool("toast", false, "Print alarm notifications to the terminal instead of the desktop notification service")

func defaultDataDir() string {
	if dir := os.Getenv("GOLDTRACK_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".goldtrack"
	}
	return filepath.Join(home, ".goldtrack")
}

// AppStore is the central function to open the configured store backend.
func AppStore() goldtrack.Store {
	if *redisAddr != "" {
		return goldtrack.NewRedisStore(*redisAddr)
	}
	return &goldtrack.FileStore{Dir: *dataDir}
}

// AppNotifier returns the alarm notifier: the desktop notification service
// when present, a terminal toast otherwise (or always, with -toast).
func AppNotifier() goldtrack.Notifier {
	if *toastOnly {
		return goldtrack.ToastNotifier{W: os.Stderr}
	}
	return goldtrack.NewSystemNotifier(os.Stderr)
}

// AppAlarm returns the alarm engine over the configured store.
func AppAlarm() *goldtrack.AlarmEngine {
	return goldtrack.NewAlarmEngine(AppStore(), AppNotifier())
}

// AppTracker wires the production tracker: the default source chain, the
// price cache and the alarm engine, all over the configured store.
func AppTracker() *goldtrack.Tracker {
	store := AppStore()
	cache := goldtrack.NewPriceCache(store)
	resolver := goldtrack.NewResolver(cache, goldtrack.DefaultSources(http.DefaultClient)...)
	alarm := goldtrack.NewAlarmEngine(store, AppNotifier())
	return goldtrack.NewTracker(resolver, cache, alarm)
}

// DecodeLedger loads the ledger from the configured store.
func DecodeLedger(ctx context.Context) (*goldtrack.Ledger, error) {
	return goldtrack.LoadLedger(ctx, AppStore())
}

// EncodeLedger persists the whole ledger back to the configured store.
func EncodeLedger(ctx context.Context, l *goldtrack.Ledger) error {
	return goldtrack.SaveLedger(ctx, AppStore(), l)
}

// fail prints an error and returns the failure status, to keep Execute
// bodies short.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
