package agent

import (
	"context"

	"google.golang.org/genai"

	"github.com/altintakip/goldtrack"
	"github.com/altintakip/goldtrack/renderer"
)

const model = "gemini-2.5-pro"

// NewAnalyst creates the gold analyst expert. Its tools read the live
// price, the ledger and the alarm through the given collaborators; the
// model never sees the raw storage.
func NewAnalyst(tracker *goldtrack.Tracker, store goldtrack.Store, alarm *goldtrack.AlarmEngine) *Expert {
	lib := []Function{
		currentPriceFunc(tracker),
		positionSummaryFunc(tracker, store),
		listTransactionsFunc(store),
		alarmStatusFunc(alarm),
	}
	return &Expert{
		Name: "Analyst",
		Description: `The gold analyst. Knows the user's gram gold position,
		its cost basis and profit, the current price and the alarm settings.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a precise assistant for a private gram gold tracker.
			All amounts are Turkish lira, all quantities are grams.
			Use the tools to ground every figure you state: the current
			gram price, the user's position and profit, the transaction
			history and the alarm configuration. Never invent numbers.
			Profit figures follow the weighted average cost method. Keep
			answers short and concrete.
		`}}},
		},
		Library: NewLibrary(lib),
	}
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func textResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func currentPriceFunc(tracker *goldtrack.Tracker) Function {
	const name = "current_price"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: "Returns the current gram gold price in TRY, its source, and whether it is a cached (stale) value.",
		},
		Fn: func(ctx context.Context, id string, _ map[string]any) *genai.FunctionResponse {
			res, err := tracker.Refresh(ctx)
			if err != nil {
				return errResponse(id, name, err)
			}
			return textResponse(id, name, renderer.PriceMarkdown(res))
		},
	}
}

func positionSummaryFunc(tracker *goldtrack.Tracker, store goldtrack.Store) Function {
	const name = "position_summary"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: "Returns the user's gold position: grams held, average cost, market value, realized and unrealized profit in TRY.",
		},
		Fn: func(ctx context.Context, id string, _ map[string]any) *genai.FunctionResponse {
			l, err := goldtrack.LoadLedger(ctx, store)
			if err != nil {
				return errResponse(id, name, err)
			}
			res, rerr := tracker.Refresh(ctx)
			return textResponse(id, name, renderer.SummaryMarkdown(l.State(), res, rerr == nil))
		},
	}
}

func listTransactionsFunc(store goldtrack.Store) Function {
	const name = "list_transactions"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: "Returns the full list of the user's gold buy and sell transactions in chronological order.",
		},
		Fn: func(ctx context.Context, id string, _ map[string]any) *genai.FunctionResponse {
			l, err := goldtrack.LoadLedger(ctx, store)
			if err != nil {
				return errResponse(id, name, err)
			}
			return textResponse(id, name, renderer.TransactionsMarkdown(l))
		},
	}
}

func alarmStatusFunc(alarm *goldtrack.AlarmEngine) Function {
	const name = "alarm_status"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: "Returns the current price alarm configuration: target, direction, mode and state.",
		},
		Fn: func(ctx context.Context, id string, _ map[string]any) *genai.FunctionResponse {
			return textResponse(id, name, renderer.AlarmMarkdown(alarm.Config(ctx)))
		},
	}
}
