package page

import (
	"html/template"
	"sync"

	"stock-dashboard/internal/dto"
	"stock-dashboard/pkg/common"
)

// Token identifies one in-flight load of a container. Only the most
// recently issued token of a container may commit content.
type Token struct {
	Container  string
	Generation uint64
}

type PanelState struct {
	ID      string
	Visible bool
	Glyph   string
}

type container struct {
	content    template.HTML
	loading    bool
	generation uint64
}

// Page is the dashboard state of one browser session.
type Page struct {
	mu sync.Mutex

	containers map[string]*container
	topStocks  *dto.TopStocks
	activeTab  dto.Timeframe
	consensus  *dto.ConsensusResult
	panels     map[string]bool
}

func New() *Page {
	p := &Page{
		containers: make(map[string]*container),
		activeTab:  dto.TimeframeShort,
		panels:     common.GetDefaultPanels(),
	}
	for _, name := range common.GetContainerList() {
		p.containers[name] = &container{}
	}
	return p
}

func (p *Page) container(name string) *container {
	c, ok := p.containers[name]
	if !ok {
		c = &container{}
		p.containers[name] = c
	}
	return c
}

// Begin starts a new load of the named container and shows its loading
// indicator. Any token issued earlier for the container becomes stale.
func (p *Page) Begin(name string) Token {
	p.mu.Lock()
	defer p.mu.Unlock()

	c := p.container(name)
	c.generation++
	c.loading = true
	return Token{Container: name, Generation: c.generation}
}

func (p *Page) current(tok Token) bool {
	c, ok := p.containers[tok.Container]
	return ok && c.generation == tok.Generation
}

// Commit replaces the container content if tok is still current.
func (p *Page) Commit(tok Token, content template.HTML) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.current(tok) {
		return false
	}
	p.containers[tok.Container].content = content
	return true
}

// CommitTopStocks stores the fetched dataset together with the rendered
// content of each timeframe container.
func (p *Page) CommitTopStocks(tok Token, data *dto.TopStocks, content template.HTML, tabs map[dto.Timeframe]template.HTML) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.current(tok) {
		return false
	}
	p.containers[tok.Container].content = content
	p.topStocks = data
	for tf, html := range tabs {
		p.container(string(tf)).content = html
	}
	return true
}

// CommitConsensus stores a new consensus result and restores the default
// panel visibility.
func (p *Page) CommitConsensus(tok Token, result *dto.ConsensusResult, content template.HTML) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.current(tok) {
		return false
	}
	p.containers[tok.Container].content = content
	p.consensus = result
	p.panels = common.GetDefaultPanels()
	return true
}

// Replace sets container content outside of a load, e.g. when a view is
// redrawn from state the page already holds. Loads in flight still win.
func (p *Page) Replace(name string, content template.HTML) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.container(name).content = content
}

// Finish hides the loading indicator unless a newer load has started.
func (p *Page) Finish(tok Token) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current(tok) {
		p.containers[tok.Container].loading = false
	}
}

func (p *Page) Content(name string) template.HTML {
	p.mu.Lock()
	defer p.mu.Unlock()

	if c, ok := p.containers[name]; ok {
		return c.content
	}
	return ""
}

func (p *Page) Loading(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	c, ok := p.containers[name]
	return ok && c.loading
}

func (p *Page) TopStocks() *dto.TopStocks {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.topStocks
}

func (p *Page) ActiveTab() dto.Timeframe {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.activeTab
}

func (p *Page) SetActiveTab(tf dto.Timeframe) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeTab = tf
}

func (p *Page) Consensus() *dto.ConsensusResult {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.consensus
}

// Panels returns a copy of the panel visibility map.
func (p *Page) Panels() map[string]bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make(map[string]bool, len(p.panels))
	for id, visible := range p.panels {
		out[id] = visible
	}
	return out
}

// Toggle flips the visibility of a known panel.
func (p *Page) Toggle(id string) (PanelState, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	visible, ok := p.panels[id]
	if !ok {
		return PanelState{}, false
	}
	p.panels[id] = !visible
	return NewPanelState(id, !visible), true
}

func NewPanelState(id string, visible bool) PanelState {
	glyph := common.GLYPH_PANEL_CLOSED
	if visible {
		glyph = common.GLYPH_PANEL_OPEN
	}
	return PanelState{ID: id, Visible: visible, Glyph: glyph}
}
