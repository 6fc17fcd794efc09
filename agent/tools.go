package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/etnz/marketrisk"
	"github.com/etnz/marketrisk/docs"
	"google.golang.org/genai"
)

// Data is what the tools compute on.
type Data struct {
	Market   *marketrisk.Market
	Holdings marketrisk.HoldingStore
	Currency string
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

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// stringArg returns the optional string argument name.
func stringArg(args map[string]any, name string) (string, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q is not a string as expected but %T", name, v)
	}
	return s, nil
}

// numberArg returns the optional number argument name, or def.
func numberArg(args map[string]any, name string, def float64) (float64, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return def, nil
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("argument %q is not a number as expected but %T", name, v)
	}
	return f, nil
}

// boolArg returns the optional boolean argument name.
func boolArg(args map[string]any, name string) (bool, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("argument %q is not a boolean as expected but %T", name, v)
	}
	return b, nil
}

// jsonOutput is the output of a tool: the JSON form of v.
func jsonOutput(v any) (string, error) {
	data, err := json.Marshal(v)
	return string(data), err
}

// newTool declares a function whose result is returned as its JSON form.
func newTool(decl *genai.FunctionDeclaration, run func(args map[string]any) (any, error)) *Func {
	return &Func{
		Decl: decl,
		Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			v, err := run(args)
			if err == nil {
				var out string
				if out, err = jsonOutput(v); err == nil {
					return outputResponse(id, decl.Name, out)
				}
			}
			return errorResponse(id, decl.Name, err)
		},
	}
}

var symbolSchema = &genai.Schema{
	Type:        genai.TypeString,
	Description: "The ticker symbol. Can be omitted when the market has a single symbol.",
}

// Tools returns the functions computing on d.
func (d *Data) Tools() []Function {
	return []Function{d.riskMetrics(), d.portfolioSummary(), d.marketSnapshot()}
}

func (d *Data) riskMetrics() *Func {
	return newTool(&genai.FunctionDeclaration{
		Name: "risk_metrics",
		Description: `risk_metrics computes the risk statistics of the closes of a symbol.

		` + must(docs.GetTopic("risk")),
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"symbol":     symbolSchema,
				"confidence": {Type: genai.TypeNumber, Description: "Confidence level of the value-at-risk in [0, 1), 0.95 by default."},
			},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A JSON object with volatility_annual, max_drawdown, the value-at-risk keyed by its confidence (var_95) and the equity_curve.",
		},
	}, func(args map[string]any) (any, error) {
		symbol, err := stringArg(args, "symbol")
		if err != nil {
			return nil, err
		}
		opts := marketrisk.DefaultOptions()
		if opts.Confidence, err = numberArg(args, "confidence", opts.Confidence); err != nil {
			return nil, err
		}
		s, err := d.Market.Series(symbol)
		if err != nil {
			return nil, err
		}
		return marketrisk.Analyze(s, opts)
	})
}

func (d *Data) portfolioSummary() *Func {
	return newTool(&genai.FunctionDeclaration{
		Name: "portfolio_summary",
		Description: `portfolio_summary values the user's holdings.

		` + must(docs.GetTopic("portfolio")),
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"symbol":    symbolSchema,
				"by_symbol": {Type: genai.TypeBoolean, Description: "Value each holding at the latest close of its own symbol instead of a uniform price."},
			},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A JSON object with total_invested, current_value, profit_loss and profit_loss_pct.",
		},
	}, func(args map[string]any) (any, error) {
		symbol, err := stringArg(args, "symbol")
		if err != nil {
			return nil, err
		}
		bySymbol, err := boolArg(args, "by_symbol")
		if err != nil {
			return nil, err
		}
		holdings := d.Holdings.List()
		if bySymbol {
			return marketrisk.ValuateBySymbol(holdings, d.Market, d.Currency)
		}
		s, err := d.Market.Series(symbol)
		if err != nil {
			return nil, err
		}
		last, ok := s.Latest()
		if !ok {
			return nil, fmt.Errorf("no close for %s: %w", s.Symbol(), marketrisk.ErrInsufficientData)
		}
		price, err := marketrisk.NewMoney(last.Close, d.Currency)
		if err != nil {
			return nil, err
		}
		return marketrisk.Valuate(holdings, price)
	})
}

func (d *Data) marketSnapshot() *Func {
	return newTool(&genai.FunctionDeclaration{
		Name:        "market_snapshot",
		Description: `market_snapshot returns the latest close of a symbol and its change from the previous close.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"symbol": symbolSchema,
			},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A JSON object with symbol, date, close, change and change_pct.",
		},
	}, func(args map[string]any) (any, error) {
		symbol, err := stringArg(args, "symbol")
		if err != nil {
			return nil, err
		}
		s, err := d.Market.Series(symbol)
		if err != nil {
			return nil, err
		}
		return marketrisk.NewMarketSnapshot(s)
	})
}
