// Command gtk tracks the gram gold price in TRY, keeps a ledger of buys
// and sells, and rings an alarm on price crossings.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/altintakip/goldtrack/cmd"
)

func main() {
	// Shell completion, active only when invoked by the completion hooks.
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() {
	gtk := &complete.Command{
		Flags: map[string]complete.Predictor{
			"data-dir": predict.Dirs("*"),
			"redis":    predict.Nothing,
			"toast":    predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"price": {},
			"watch": {Flags: map[string]complete.Predictor{"interval": predict.Something}},
			"buy": {Flags: map[string]complete.Predictor{
				"g": predict.Something, "p": predict.Something,
				"fee": predict.Something, "date": predict.Something, "memo": predict.Something,
			}},
			"sell": {Flags: map[string]complete.Predictor{
				"g": predict.Something, "p": predict.Something,
				"fee": predict.Something, "date": predict.Something, "memo": predict.Something,
			}},
			"delete":  {},
			"tx":      {},
			"summary": {},
			"alarm": {Flags: map[string]complete.Predictor{
				"target": predict.Something,
				"dir":    predict.Set{"above", "below"},
				"once":   predict.Nothing,
				"off":    predict.Nothing,
				"status": predict.Nothing,
				"test":   predict.Nothing,
			}},
			"topic":  {Args: predict.Set{"readme", "pricing", "ledger", "alarm", "storage", "*"}},
			"assist": {},
		},
	}
	gtk.Complete("gtk")
}
