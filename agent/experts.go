package agent

import (
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// instruction returns a system instruction made of text.
func instruction(text string) *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{Text: text}}}
}

// newFacilitator creates the expert in charge of the conversation with the user.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: instruction(`
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here to understand the risk of the instruments in their price file and
			the value of their holdings.
			Devise a plan of questions to ask to each experts and come up with the best response to the user's request.
			Figures come from the Analyst, never make them up.
		`),
		},
		Library: NewLibrary(experts),
	}
}

// NewTrader creates an expert grounded on Google Search for news and context.
func NewTrader() *Expert {
	return &Expert{
		Name: "Trader",
		Description: `This is an expert trader,
		Very well aware of all the financial products and institutions,
		about the latest news about the different indices or companies.
		Ask the Trader whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: instruction(`
			You are a expert in Trading, you can search and find about anything related to
			financial institutions, companies, markets, indices etc. You Leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latests news too, and you know how to relate them to the user's request.
		`),
		},
	}
}

// NewAnalyst creates the expert computing on the user's prices and holdings.
func NewAnalyst(d *Data) *Expert {
	lib := d.Tools()
	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. It is in charge of the user's price file and holdings.
		It computes the risk metrics of a symbol, its latest change, and the valuation of the holdings.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: instruction(`
			You are a risk analyst in charge of the user's price series and holdings.
			You know how to use the Tools to compute:
			  - the volatility, max drawdown, value-at-risk and equity curve of a symbol
			  - the latest close of a symbol and its daily change
			  - the total invested, current value and profit and loss of the holdings
			Fractions returned by the tools (volatility, drawdown, value-at-risk) are to be read
			as percentages: -0.1 is -10%.
		`),
		},
		Library: NewLibrary(lib),
	}
}
