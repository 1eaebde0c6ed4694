// Package pagegrp maintains the group of handlers that render the dashboard
// pages.
package pagegrp

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"maps"
	"net/http"
	"slices"

	"github.com/ardanlabs/scalability/business/core/calculator"
	"github.com/ardanlabs/scalability/business/core/catalog"
	"github.com/ardanlabs/scalability/foundation/units"
	"github.com/ardanlabs/scalability/foundation/web"
	"github.com/yuin/goldmark"
)

//go:embed views/*.html
var views embed.FS

//go:embed overview.md
var overview []byte

// Set of page names.
const (
	PageIndex      = "index"
	PageComparison = "comparison"
	PageLayer2     = "layer2"
	PageSharding   = "sharding"
	PageHybrid     = "hybrid"
)

// Paper describes the research the dashboard presents.
type Paper struct {
	Title  string
	Author string
}

// Handlers manages the set of page endpoints.
type Handlers struct {
	build    string
	paper    Paper
	abstract template.HTML
	pages    map[string]*template.Template
}

// New parses the page templates and renders the abstract.
func New(build string, paper Paper) (*Handlers, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert(overview, &buf); err != nil {
		return nil, fmt.Errorf("rendering overview: %w", err)
	}

	funcs := template.FuncMap{
		"number": func(v float64) string { return units.FormatNumber(v, 1) },
		"gwei":   func(v float64) string { return units.FormatCurrency(v, units.GWEI) },
	}

	pages := make(map[string]*template.Template)
	for _, name := range []string{PageIndex, PageComparison, PageLayer2, PageSharding, PageHybrid} {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(views, "views/layout.html", "views/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing %s page: %w", name, err)
		}
		pages[name] = tmpl
	}

	h := Handlers{
		build:    build,
		paper:    paper,
		abstract: template.HTML(buf.String()),
		pages:    pages,
	}

	return &h, nil
}

// Index renders the landing page.
func (h *Handlers) Index(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	bases := catalog.BaseLayers()

	rows := make([]solutionRow, 0, len(bases))
	for _, id := range catalog.BaseLayerIDs() {
		b := bases[id]
		rows = append(rows, newSolutionRow(id, b.Name, b.TPS, b.SecurityScore, b.DecentralizationScore))
	}

	data := struct {
		Abstract template.HTML
		Bases    []solutionRow
		Colors   map[string]string
	}{
		Abstract: h.abstract,
		Bases:    rows,
		Colors:   catalog.ChartColors(),
	}

	return h.render(ctx, w, PageIndex, "Overview", data)
}

// Comparison renders the side by side comparison of every approach.
func (h *Handlers) Comparison(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	cmp, err := calculator.CompareAll(calculator.DefaultTxVolume)
	if err != nil {
		return err
	}

	summaries := catalog.Comparison()
	approaches := slices.Sorted(maps.Keys(summaries))

	rows := make([]summaryRow, 0, len(approaches))
	for _, approach := range approaches {
		rows = append(rows, summaryRow{Approach: approach, Summary: summaries[approach]})
	}

	profiles := catalog.Trilemma()
	designs := slices.Sorted(maps.Keys(profiles))

	scores := make([]trilemmaRow, 0, len(designs))
	for _, design := range designs {
		p := profiles[design]
		ts, err := calculator.Trilemma(float64(p.Scalability), float64(p.Security), float64(p.Decentralization))
		if err != nil {
			return err
		}
		scores = append(scores, trilemmaRow{Design: design, Profile: p, Score: ts})
	}

	data := struct {
		Volume    float64
		Result    calculator.Comparison
		Summaries []summaryRow
		Trilemma  []trilemmaRow
	}{
		Volume:    calculator.DefaultTxVolume,
		Result:    cmp,
		Summaries: rows,
		Trilemma:  scores,
	}

	return h.render(ctx, w, PageComparison, "Comparison", data)
}

// Layer2 renders the layer 2 solutions and the rollup model.
func (h *Handlers) Layer2(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	res, err := calculator.Layer2(calculator.DefaultTxVolume, calculator.DefaultBatchSize, calculator.DefaultGasPrice)
	if err != nil {
		return err
	}

	solutions := catalog.Layer2Solutions()

	rows := make([]layer2Row, 0, len(solutions))
	for _, id := range catalog.Layer2IDs() {
		s := solutions[id]
		rows = append(rows, layer2Row{
			solutionRow: newSolutionRow(id, s.Name, s.TPS, s.SecurityScore, s.DecentralizationScore),
			Layer2:      s,
			Cost:        units.FormatCurrency(s.AvgTransactionCostUSD, units.USD),
		})
	}

	data := struct {
		Solutions []layer2Row
		Model     calculator.Layer2Result
		Threats   map[string]catalog.Threat
	}{
		Solutions: rows,
		Model:     res,
		Threats:   catalog.SecurityVectors()["layer2_zk"],
	}

	return h.render(ctx, w, PageLayer2, "Layer 2", data)
}

// Sharding renders the sharding implementations and the sharding model.
func (h *Handlers) Sharding(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	res, err := calculator.Sharding(calculator.DefaultTxVolume, calculator.DefaultShardingShards, calculator.DefaultTPSPerShard)
	if err != nil {
		return err
	}

	solutions := catalog.ShardingSolutions()

	rows := make([]shardingRow, 0, len(solutions))
	for _, id := range catalog.ShardingIDs() {
		s := solutions[id]
		rows = append(rows, shardingRow{
			solutionRow: newSolutionRow(id, s.Name, s.TotalTPS, s.SecurityScore, s.DecentralizationScore),
			Sharding:    s,
		})
	}

	data := struct {
		Solutions []shardingRow
		Model     calculator.ShardingResult
		Threats   map[string]catalog.Threat
	}{
		Solutions: rows,
		Model:     res,
		Threats:   catalog.SecurityVectors()["sharding"],
	}

	return h.render(ctx, w, PageSharding, "Sharding", data)
}

// Hybrid renders the hybrid model.
func (h *Handlers) Hybrid(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	res, err := calculator.Hybrid(calculator.DefaultTxVolume, calculator.DefaultHybridShards, calculator.DefaultLayer2Multiplier)
	if err != nil {
		return err
	}

	p := catalog.Trilemma()["hybrid_model"]
	ts, err := calculator.Trilemma(float64(p.Scalability), float64(p.Security), float64(p.Decentralization))
	if err != nil {
		return err
	}

	data := struct {
		Model    calculator.HybridResult
		Gain     units.Gain
		Trilemma calculator.TrilemmaScore
		Color    string
	}{
		Model:    res,
		Gain:     units.Improvement(calculator.BaseLayerTPS, res.TotalHybridTPS),
		Trilemma: ts,
		Color:    units.PerformanceColor(res.TotalHybridTPS),
	}

	return h.render(ctx, w, PageHybrid, "Hybrid Model", data)
}

// =============================================================================

// render executes the named page into a buffer so a template failure never
// leaves a partial page on the wire.
func (h *Handlers) render(ctx context.Context, w http.ResponseWriter, name string, title string, data any) error {
	tmpl, exists := h.pages[name]
	if !exists {
		return fmt.Errorf("page %q not registered", name)
	}

	page := struct {
		Title string
		Paper Paper
		Build string
		Data  any
	}{
		Title: title,
		Paper: h.paper,
		Build: h.build,
		Data:  data,
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("executing %s page: %w", name, err)
	}

	return web.RespondHTML(ctx, w, buf.Bytes(), http.StatusOK)
}
