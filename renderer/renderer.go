package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// RiskRenderOptions holds configuration for rendering a risk report.
type RiskRenderOptions struct {
	SkipCurve bool // Do not render the equity curve table.
}

// RenderRisk renders the Risk struct to a markdown string.
func RenderRisk(r *Risk, opts RiskRenderOptions) string {
	partials := map[string]string{
		"risk_metrics": "risk_metrics.md",
		"equity_curve": "equity_curve.md",
	}
	// An empty file name results in an empty template.
	if opts.SkipCurve {
		partials["equity_curve"] = ""
	}
	return renderTemplate("risk", "risk.md", partials, r)
}

// RenderSummary renders the Summary struct to a markdown string.
func RenderSummary(s *Summary) string {
	partials := map[string]string{
		"summary_totals": "summary_totals.md",
		"holdings_table": "holdings_table.md",
	}
	return renderTemplate("summary", "summary.md", partials, s)
}

// RenderHoldings renders the Holdings struct to a markdown string.
func RenderHoldings(h *Holdings) string {
	partials := map[string]string{
		"holdings_table": "holdings_table.md",
	}
	return renderTemplate("holdings", "holdings.md", partials, h)
}

// RenderMarket renders the Market struct to a markdown string.
func RenderMarket(m *Market) string {
	return renderTemplate("market", "market.md", nil, m)
}

// RenderHistory renders the History struct to a markdown string.
func RenderHistory(h *History) string {
	return renderTemplate("history", "history.md", nil, h)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
