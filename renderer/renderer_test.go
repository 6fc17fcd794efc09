package renderer

import (
	"embed"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/marketrisk"
	"github.com/etnz/marketrisk/date"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

//go:embed testdata/*.json
var testcasesFS embed.FS

//go:embed testdata/*.md
var testcasesGoldenFS embed.FS

var fixGolden = flag.Bool("fix-golden", false, "if true, update failing test case .md files with the received output")

func TestFixGoldenIsOff(t *testing.T) {
	if *fixGolden {
		t.Fatal("-fix-golden is enabled. This flag should only be used for updating test fixtures and must be disabled for regular tests.")
	}
}

func TestReportRendering(t *testing.T) {
	testCases := []struct {
		name       string
		structFile string
		goldenFile string
		dataType   any
		renderFunc func(data any) string
	}{
		{
			name:       "risk",
			structFile: "testdata/risk.json",
			goldenFile: "testdata/risk_assembly.md",
			dataType:   &Risk{},
			renderFunc: func(data any) string { return RenderRisk(data.(*Risk), RiskRenderOptions{}) },
		},
		{
			name:       "risk_skip_curve",
			structFile: "testdata/risk.json",
			goldenFile: "testdata/risk_skip_curve.md",
			dataType:   &Risk{},
			renderFunc: func(data any) string { return RenderRisk(data.(*Risk), RiskRenderOptions{SkipCurve: true}) },
		},
		{
			name:       "summary",
			structFile: "testdata/summary.json",
			goldenFile: "testdata/summary_assembly.md",
			dataType:   &Summary{},
			renderFunc: func(data any) string { return RenderSummary(data.(*Summary)) },
		},
		{
			name:       "holdings",
			structFile: "testdata/holdings.json",
			goldenFile: "testdata/holdings_assembly.md",
			dataType:   &Holdings{},
			renderFunc: func(data any) string { return RenderHoldings(data.(*Holdings)) },
		},
		{
			name:       "holdings_empty",
			structFile: "testdata/holdings_empty.json",
			goldenFile: "testdata/holdings_empty_assembly.md",
			dataType:   &Holdings{},
			renderFunc: func(data any) string { return RenderHoldings(data.(*Holdings)) },
		},
		{
			name:       "market",
			structFile: "testdata/market.json",
			goldenFile: "testdata/market_assembly.md",
			dataType:   &Market{},
			renderFunc: func(data any) string { return RenderMarket(data.(*Market)) },
		},
		{
			name:       "history",
			structFile: "testdata/history.json",
			goldenFile: "testdata/history_assembly.md",
			dataType:   &History{},
			renderFunc: func(data any) string { return RenderHistory(data.(*History)) },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			jsonData, err := testcasesFS.ReadFile(tc.structFile)
			if err != nil {
				t.Fatalf("failed to read struct file %q: %v", tc.structFile, err)
			}
			if err := json.Unmarshal(jsonData, tc.dataType); err != nil {
				t.Fatalf("failed to unmarshal struct data from %q: %v", tc.structFile, err)
			}

			got := tc.renderFunc(tc.dataType)

			goldenData, err := testcasesGoldenFS.ReadFile(tc.goldenFile)
			if err != nil && !*fixGolden {
				t.Fatalf("failed to read golden file %q: %v", tc.goldenFile, err)
			}
			want := string(goldenData)
			if got == want {
				return
			}
			if *fixGolden {
				if err := os.WriteFile(filepath.FromSlash(tc.goldenFile), []byte(got), 0644); err != nil {
					t.Fatalf("failed to write updated golden file %q: %v", tc.goldenFile, err)
				}
				t.Logf("updated golden file %s", tc.goldenFile)
				return
			}
			t.Errorf("output mismatch for %s:\n--- want\n+++ got\n%s", tc.name, createDiff(want, got))
		})
	}
}

func createDiff(want, got string) string {
	// A simple diff-like representation for clearer test failures.
	return fmt.Sprintf("-%s\n+%s", strings.ReplaceAll(want, "\n", "\n-"), strings.ReplaceAll(got, "\n", "\n+"))
}

// fixture returns the risk metrics of the 100, 110, 99, 121 closes.
func fixture(t *testing.T) (marketrisk.PriceSeries, marketrisk.RiskMetrics) {
	t.Helper()
	var points []marketrisk.PricePoint
	for i, c := range []float64{100, 110, 99, 121} {
		points = append(points, marketrisk.PricePoint{Date: date.New(2025, 1, 1+i), Close: c})
	}
	s, err := marketrisk.NewPriceSeries("NIFTY", points...)
	if err != nil {
		t.Fatalf("NewPriceSeries() error = %v", err)
	}
	m, err := marketrisk.Analyze(s, marketrisk.DefaultOptions())
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	return s, m
}

func TestNewRisk(t *testing.T) {
	_, m := fixture(t)
	r := NewRisk(m)
	testCases := []struct {
		field, got, want string
	}{
		{"From", r.From, "2025-01-01"},
		{"To", r.To, "2025-01-04"},
		{"MaxDrawdown", r.MaxDrawdown, "-10.00%"},
		{"Confidence", r.Confidence, "95.00%"},
		{"ValueAtRisk", r.ValueAtRisk, "-8.00%"},
		{"StartValue", r.StartValue, "100000.00"},
		{"EndValue", r.EndValue, "121000.00"},
		{"EquityReturn", r.EquityReturn, "+21.00%"},
	}
	for _, tc := range testCases {
		if tc.got != tc.want {
			t.Errorf("NewRisk().%s = %q, want %q", tc.field, tc.got, tc.want)
		}
	}
	if r.Points != 4 || len(r.Curve) != 4 || r.Curve[2].Value != "99000.00" {
		t.Errorf("NewRisk().Curve = %v, want 4 rows", r.Curve)
	}
}

func TestNewHistory(t *testing.T) {
	s, _ := fixture(t)
	h := NewHistory(s)
	want := []PriceRow{
		{Date: "2025-01-01", Close: "100.00"},
		{Date: "2025-01-02", Close: "110.00", Change: "+10.00%"},
		{Date: "2025-01-03", Close: "99.00", Change: "-10.00%"},
		{Date: "2025-01-04", Close: "121.00", Change: "+22.22%"},
	}
	if len(h.Prices) != len(want) {
		t.Fatalf("NewHistory() has %d rows, want %d", len(h.Prices), len(want))
	}
	for i := range want {
		if h.Prices[i] != want[i] {
			t.Errorf("NewHistory().Prices[%d] = %v, want %v", i, h.Prices[i], want[i])
		}
	}
}

func TestNewMarket(t *testing.T) {
	s, _ := fixture(t)
	snap, err := marketrisk.NewMarketSnapshot(s)
	if err != nil {
		t.Fatalf("NewMarketSnapshot() error = %v", err)
	}
	m := NewMarket(snap)
	want := Snapshot{Symbol: "NIFTY", Date: "2025-01-04", Close: "121.00", Change: "+22.00", ChangePct: "+22.22%"}
	if len(m.Snapshots) != 1 || m.Snapshots[0] != want {
		t.Errorf("NewMarket() = %v, want [%v]", m.Snapshots, want)
	}
}

func TestNewSummary(t *testing.T) {
	store, _ := marketrisk.NewMemoryStore()
	store.Add(marketrisk.HoldingInput{Symbol: "TCS", Quantity: 10, BuyPrice: 100})
	s, err := marketrisk.Valuate(store.List(), marketrisk.M(120, "INR"))
	if err != nil {
		t.Fatalf("Valuate() error = %v", err)
	}
	view := NewSummary(s, "a uniform price", store.List())
	if view.Currency != "INR" || view.ProfitLossPct != "+20.00%" || view.Pricing != "a uniform price" {
		t.Errorf("NewSummary() = %+v, want INR, +20.00%%", view)
	}
	if len(view.Holdings) != 1 || view.Holdings[0].ID != 1 || view.Holdings[0].Quantity != "10" {
		t.Errorf("NewSummary().Holdings = %v, want holding #1 of 10 TCS", view.Holdings)
	}
}

// TestRenderedTitles checks that every report parses as markdown starting with a level 1 heading.
func TestRenderedTitles(t *testing.T) {
	s, m := fixture(t)
	snap, _ := marketrisk.NewMarketSnapshot(s)
	reports := map[string]string{
		"risk":     RenderRisk(NewRisk(m), RiskRenderOptions{}),
		"history":  RenderHistory(NewHistory(s)),
		"market":   RenderMarket(NewMarket(snap)),
		"holdings": RenderHoldings(NewHoldings("INR", nil)),
	}
	for name, report := range reports {
		source := []byte(report)
		doc := goldmark.New().Parser().Parse(text.NewReader(source))
		h, ok := doc.FirstChild().(*ast.Heading)
		if !ok || h.Level != 1 {
			t.Errorf("%s report does not start with a level 1 heading:\n%s", name, report)
		}
	}
}
