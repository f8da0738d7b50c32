package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/altintakip/goldtrack"
	"github.com/altintakip/goldtrack/renderer"
)

type alarmCmd struct {
	target float64
	dir    string
	once   bool
	off    bool
	status bool
	test   bool
}

func (*alarmCmd) Name() string     { return "alarm" }
func (*alarmCmd) Synopsis() string { return "set, inspect or disable the price alarm" }
func (*alarmCmd) Usage() string {
	return `gtk alarm -target <price> [-dir above|below] [-once]
gtk alarm -status | -off | -test

  Arms an alarm that notifies when the gram price crosses the target. The
  alarm is edge-triggered: it fires on the crossing, not while the price
  sits past the target. A repeating alarm re-arms after each crossing;
  with -once it disarms after the first one.

Usage Examples:
$ gtk alarm -target 5000
$ gtk alarm -target 4200 -dir below -once
$ gtk alarm -off

`
}

func (c *alarmCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.target, "target", 0, "Target gram price, in TRY.")
	f.StringVar(&c.dir, "dir", "above", "Crossing direction to notify on: above or below.")
	f.BoolVar(&c.once, "once", false, "Disarm after the first notification.")
	f.BoolVar(&c.off, "off", false, "Disable the alarm, keeping its settings.")
	f.BoolVar(&c.status, "status", false, "Show the alarm configuration.")
	f.BoolVar(&c.test, "test", false, "Send a test notification.")
}

func (c *alarmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	engine := AppAlarm()

	switch {
	case c.status:
		printMarkdown(renderer.AlarmMarkdown(engine.Config(ctx)))
		return subcommands.ExitSuccess

	case c.test:
		notifier := AppNotifier()
		if err := notifier.Notify("gtk test", "notifications are working"); err != nil {
			return fail(err)
		}
		if !notifier.RequestPermission() {
			fmt.Println("No desktop notification service found, alarms will print to the terminal.")
		}
		return subcommands.ExitSuccess

	case c.off:
		if err := engine.Disable(ctx); err != nil {
			return fail(err)
		}
		fmt.Println("Alarm disabled.")
		return subcommands.ExitSuccess

	case c.target > 0:
		direction := goldtrack.Side(strings.ToUpper(c.dir))
		// Seed the crossing detector from the last known price, so a price
		// already past the target does not fire immediately.
		lastPrice := 0.0
		if cached, ok := goldtrack.NewPriceCache(AppStore()).Read(ctx); ok {
			lastPrice = cached.GramPrice
		}
		if err := engine.Arm(ctx, c.target, direction, !c.once, lastPrice); err != nil {
			return fail(err)
		}
		fmt.Printf("Alarm armed: notify when the price goes %s %.2f %s/g.\n",
			strings.ToLower(string(direction)), c.target, goldtrack.DefaultCurrency)
		return subcommands.ExitSuccess

	default:
		fmt.Fprint(flag.CommandLine.Output(), c.Usage())
		return subcommands.ExitUsageError
	}
}
