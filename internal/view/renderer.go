package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"stock-dashboard/internal/dto"
	"stock-dashboard/internal/page"
	"stock-dashboard/pkg/common"
	"stock-dashboard/pkg/utils"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer builds the HTML fragments the dashboard swaps into its containers.
type Renderer struct {
	templates *template.Template
	now       func() time.Time
}

// TopStocksView is the data behind the top stocks section. A non-empty
// Error replaces the tables; the tab bar and refresh control stay.
type TopStocksView struct {
	Active      dto.Timeframe
	GeneratedAt string
	Tables      map[dto.Timeframe]template.HTML
	Error       template.HTML
}

type tableView struct {
	Timeframe dto.Timeframe
	Stocks    []dto.StockSummary
}

type consensusView struct {
	Result *dto.ConsensusResult
	Panels map[string]bool
}

type indexView struct {
	Page      *page.Page
	LoadingID string
}

// Entry is one key/value pair of a backend map, in display order.
type Entry struct {
	Key   string
	Value string
}

func NewRenderer() (*Renderer, error) {
	return NewRendererWithClock(time.Now)
}

// NewRendererWithClock uses now for relative timestamps.
func NewRendererWithClock(now func() time.Time) (*Renderer, error) {
	r := &Renderer{now: now}

	tmpl, err := template.New("dashboard").Funcs(r.funcMap()).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.templates = tmpl
	return r, nil
}

func (r *Renderer) funcMap() template.FuncMap {
	return template.FuncMap{
		"price":       FormatPrice,
		"change":      FormatChange,
		"changeClass": ChangeClass,
		"scoreTier":   ScoreTier,
		"score":       FormatScore,
		"points":      FormatSignedPoints,
		"ratio":       FormatRatio,
		"barWidth":    BarWidth,
		"summary":     FormatSummary,
		"sentiment":   SentimentStyle,
		"decision":    DecisionStyle,
		"movement":    MovementStyle,
		"verdict":     VerdictStyle,
		"humanize":    HumanizeKey,
		"orDefault":   orDefault,
		"capitalize":  utils.CapitalizeSentence,
		"upper":       strings.ToUpper,
		"rank":        func(i int) int { return i + 1 },
		"timeframes":  dto.Timeframes,
		"timestamp": func(raw string) string {
			return FormatTimestamp(raw, r.now())
		},
		"panel": func(panels map[string]bool, id string) page.PanelState {
			return page.NewPanelState(id, panels[id])
		},
		"interpretation": InterpretationEntries,
		"steps":          AlgorithmSteps,
		"llmComponent":   LLMComponent,
		"container": func(p *page.Page, name string) template.HTML {
			return p.Content(name)
		},
	}
}

func (r *Renderer) execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render template %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// TopStocksTable renders one timeframe as a ranked table plus a card list
// for narrow screens. An empty list renders a single placeholder.
func (r *Renderer) TopStocksTable(tf dto.Timeframe, stocks []dto.StockSummary) (template.HTML, error) {
	return r.execute("top_stocks_table", tableView{Timeframe: tf, Stocks: stocks})
}

func (r *Renderer) TopStocksSection(v TopStocksView) (template.HTML, error) {
	return r.execute("top_stocks_section", v)
}

func (r *Renderer) StockDetail(detail *dto.StockDetail) (template.HTML, error) {
	return r.execute("stock_detail", detail)
}

// Consensus renders a consensus result with the given panel visibility.
func (r *Renderer) Consensus(result *dto.ConsensusResult, panels map[string]bool) (template.HTML, error) {
	return r.execute("consensus", consensusView{Result: result, Panels: panels})
}

func (r *Renderer) Methodology(m *dto.Methodology) (template.HTML, error) {
	return r.execute("methodology", m)
}

func (r *Renderer) ErrorBanner(message string) template.HTML {
	return template.HTML(`<div class="alert alert-error">` + template.HTMLEscapeString(message) + `</div>`)
}

func (r *Renderer) Index(p *page.Page) (template.HTML, error) {
	return r.execute("index", indexView{Page: p, LoadingID: common.CONTAINER_LOADING})
}

// InterpretationEntries orders score ranges like "80-100" from the highest
// lower bound down.
func InterpretationEntries(m map[string]string) []Entry {
	entries := make([]Entry, 0, len(m))
	for k, v := range m {
		entries = append(entries, Entry{Key: k, Value: v})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		li, iok := leadingNumber(entries[i].Key)
		lj, jok := leadingNumber(entries[j].Key)
		if iok != jok {
			return iok
		}
		if iok && li != lj {
			return li > lj
		}
		return entries[i].Key < entries[j].Key
	})
	return entries
}

func leadingNumber(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
	if end == -1 {
		end = len(s)
	}
	n, err := strconv.Atoi(s[:end])
	return n, err == nil
}

// Step is one entry of an algorithm walkthrough, in display order.
type Step struct {
	Number int
	Title  string
	dto.AlgorithmStep
}

// AlgorithmSteps orders steps keyed like "step_3_tokenize_input" by their
// step number and derives a title from the rest of the key.
func AlgorithmSteps(steps map[string]dto.AlgorithmStep) []Step {
	keys := make([]string, 0, len(steps))
	for k := range steps {
		keys = append(keys, k)
	}
	sort.SliceStable(keys, func(i, j int) bool {
		ni, iok := leadingNumber(strings.TrimPrefix(keys[i], "step_"))
		nj, jok := leadingNumber(strings.TrimPrefix(keys[j], "step_"))
		if iok && jok && ni != nj {
			return ni < nj
		}
		return keys[i] < keys[j]
	})

	out := make([]Step, 0, len(keys))
	for i, k := range keys {
		out = append(out, Step{Number: i + 1, Title: StepTitle(k), AlgorithmStep: steps[k]})
	}
	return out
}

// StepTitle turns "step_3_tokenize_input" into "TOKENIZE INPUT".
func StepTitle(key string) string {
	title := strings.TrimPrefix(key, "step_")
	if n := strings.IndexFunc(title, func(r rune) bool { return !unicode.IsDigit(r) }); n > 0 {
		title = strings.TrimPrefix(title[n:], "_")
	}
	return strings.ToUpper(strings.ReplaceAll(title, "_", " "))
}

// LLMComponent returns the first component that lists integrated models.
func LLMComponent(components []dto.MethodComponent) *dto.MethodComponent {
	for i := range components {
		if strings.Contains(components[i].Name, "LLM") && len(components[i].LLMsIntegrated) > 0 {
			return &components[i]
		}
	}
	return nil
}
