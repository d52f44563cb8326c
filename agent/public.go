package agent

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/roitrk/roitrack"
	"github.com/roitrk/roitrack/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name: "Facilitator",
		// Used by facilitators to know what they can expected from the expert
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand how his past trades performed: profit,
			return on investment, holding periods, annualized rates.

			Devise a plan of questions to ask to each experts and come up with the best response to the user's request.

			The user will assume that you know about his trades, check the trade book first to understand what they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

func NewTrader() *Expert {
	return &Expert{
		Name: "Trader",
		Description: `This is an expert trader,
		Very well aware of all the financial products and institutions,
		about the latest news about the different funds or companies.
		Ask the Trader whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a expert in Trading, you can search and find about anything related to
			financial institutions, companies, markets, funds etc. You Leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latests news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewAnalyst creates the expert in charge of the user's trade book.
func NewAnalyst() *Expert {

	lib := []Function{TradeBook, Performance}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He is in charge of reading the user's trade book.
		He can list the recorded trades with their profit and return figures, and compute
		aggregate performance for the whole book or a single symbol.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's trade book.
				You know how to use the Tools to extract relevant information about the user's trades
				and their performance. You are part of a team of experts, yours is everything about
				the user's trade book. They might ask you questions about it, pardon their
				approximative language and figure out what they meant.

				Use the available tools to get information about the user's trades
				  - the list of recorded trades with per-trade figures
				  - aggregate performance, for the whole book or one symbol
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// The following implementation is not scalable, it will do for the MVP not further.

var TradeBook = &Func{

	Decl: &genai.FunctionDeclaration{
		Name: "TradeBook",
		Description: `TradeBook lists all recorded trades with their per-trade figures:
		cost, quantity, sale price, profit, return, annualized return and holding period.
		`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"ticker": {
					Type:        genai.TypeString,
					Description: "Optional ticker fragment to filter on, case-insensitive. Empty lists everything.",
				},
			},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted table of the recorded trades with average and total rows.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		book, err := DecodeBook()
		if err != nil {
			return errorResponse(id, "TradeBook", err)
		}
		trades := book.Filter(tickerArg(args))
		return &genai.FunctionResponse{
			ID:   id,
			Name: "TradeBook",
			Response: map[string]any{
				"output": renderer.TradesMarkdown("Trades", trades),
			},
		}
	},
}

var Performance = &Func{

	Decl: &genai.FunctionDeclaration{
		Name: "Performance",
		Description: `Performance computes the aggregate performance of the trade book:
		totals, averages, and the capital-weighted return.
		`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"ticker": {
					Type:        genai.TypeString,
					Description: "Optional ticker fragment to filter on, case-insensitive. Empty aggregates everything.",
				},
			},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted table of aggregate figures.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		book, err := DecodeBook()
		if err != nil {
			return errorResponse(id, "Performance", err)
		}
		s := roitrack.Summarize(book.Filter(tickerArg(args)))
		return &genai.FunctionResponse{
			ID:   id,
			Name: "Performance",
			Response: map[string]any{
				"output": renderer.SummaryMarkdown("Performance", s),
			},
		}
	},
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func tickerArg(args map[string]any) string {
	iticker, ok := args["ticker"]
	if !ok {
		return ""
	}
	ticker, ok := iticker.(string)
	if !ok {
		return ""
	}
	return ticker
}

// DecodeBook decodes the trade book from the application's default file.
// If the file does not exist, it returns a new empty book.
func DecodeBook() (*roitrack.Portfolio, error) {
	tradesFile := "trades.jsonl"
	// temp
	f, err := os.Open(tradesFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// If the file doesn't exist, it's an empty book.
			return roitrack.NewPortfolio(), nil
		}
		return nil, fmt.Errorf("could not open trade book %q: %w", tradesFile, err)
	}
	defer f.Close()

	book, err := roitrack.DecodeTrades(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode trade book %q: %w", tradesFile, err)
	}
	return book, nil
}
