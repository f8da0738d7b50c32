package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/subcommands"

	"github.com/altintakip/goldtrack"
	"github.com/altintakip/goldtrack/renderer"
)

type watchCmd struct {
	interval time.Duration
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "continuously watch the gram gold price" }
func (*watchCmd) Usage() string {
	return `gtk watch [-interval <duration>]

  Refreshes the gram gold price on a fixed interval and prints a one-line
  ticker per cycle. The price alarm is checked on every cycle. Stop with
  Ctrl+C.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.interval, "interval", goldtrack.DefaultPollInterval, "Refresh interval.")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	AppTracker().Watch(ctx, c.interval, func(res goldtrack.Result, err error) {
		if err != nil {
			fmt.Fprintln(os.Stderr, "refresh failed:", err)
			return
		}
		fmt.Println(renderer.PriceLine(res))
	})
	return subcommands.ExitSuccess
}
