package cmd

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/altintakip/goldtrack/agent"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `gtk assist [<question>]

  Starts an interactive session with the AI assistant. The assistant can
  read the current price, your position and profit, the transaction list
  and the alarm settings. Requires a GEMINI_API_KEY environment variable.
`
}

func (c *assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return fail(err)
	}

	analyst := agent.NewAnalyst(AppTracker(), AppStore(), AppAlarm())
	a := agent.New(os.Stdout, os.Stdin, analyst)
	if err := a.Run(ctx, client, initialPrompt); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
