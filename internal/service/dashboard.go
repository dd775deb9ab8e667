package service

import (
	"context"
	"errors"
	"html/template"

	"stock-dashboard/internal/dto"
	"stock-dashboard/internal/metrics"
	"stock-dashboard/internal/page"
	"stock-dashboard/internal/repository"
	"stock-dashboard/internal/view"
	"stock-dashboard/pkg/common"
	"stock-dashboard/pkg/logger"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrStaleResponse is returned when a newer load of the same container
	// started before this one finished. Its content was discarded.
	ErrStaleResponse = errors.New("stale response discarded")
	// ErrNoContent means there is nothing to redraw yet.
	ErrNoContent    = errors.New("nothing to render")
	ErrUnknownPanel = errors.New("unknown panel")
)

type DashboardService interface {
	LoadTopStocks(ctx context.Context, p *page.Page) (template.HTML, error)
	ShowTab(ctx context.Context, p *page.Page, tf dto.Timeframe) (template.HTML, error)
	SearchStock(ctx context.Context, p *page.Page, ticker string) (template.HTML, error)
	AnalyzeStock(ctx context.Context, p *page.Page, ticker string) (template.HTML, error)
	LoadMethodology(ctx context.Context, p *page.Page) (template.HTML, error)
	TogglePanel(ctx context.Context, p *page.Page, id string) (template.HTML, error)
	LoadInitial(ctx context.Context, p *page.Page) error
}

type dashboardService struct {
	log      *logger.Logger
	repo     repository.DashboardRepository
	renderer *view.Renderer
}

func NewDashboardService(log *logger.Logger, repo repository.DashboardRepository, renderer *view.Renderer) DashboardService {
	return &dashboardService{
		log:      log,
		repo:     repo,
		renderer: renderer,
	}
}

// loader describes one fetch-and-render cycle of a container.
type loader[T any] struct {
	container string
	fetch     func(ctx context.Context) (T, error)
	render    func(data T) (template.HTML, error)
	// failure turns an error into the banner text shown in the container.
	failure func(err error) string
	// frame places the error banner in the container; defaults to the bare banner.
	frame func(banner template.HTML) template.HTML
	// commit stores successful content; defaults to Page.Commit.
	commit func(tok page.Token, data T, content template.HTML) bool
}

func load[T any](ctx context.Context, s *dashboardService, p *page.Page, l loader[T]) (template.HTML, error) {
	tok := p.Begin(l.container)
	defer p.Finish(tok)

	data, err := l.fetch(ctx)
	var content template.HTML
	if err == nil {
		content, err = l.render(data)
	}

	outcome := "success"
	var committed bool
	switch {
	case err != nil:
		outcome = "error"
		content = s.renderer.ErrorBanner(l.failure(err))
		if l.frame != nil {
			content = l.frame(content)
		}
		committed = p.Commit(tok, content)
	case l.commit != nil:
		committed = l.commit(tok, data, content)
	default:
		committed = p.Commit(tok, content)
	}

	if !committed {
		metrics.Renders.WithLabelValues(l.container, "stale").Inc()
		s.log.DebugContext(ctx, "Discarded stale response",
			logger.StringField("container", l.container),
			logger.Field("generation", tok.Generation))
		return "", ErrStaleResponse
	}

	metrics.Renders.WithLabelValues(l.container, outcome).Inc()
	return content, nil
}

// describe prefers the backend supplied message over the Go error text.
func describe(err error) string {
	if apiErr, ok := dto.IsAPIError(err); ok {
		return apiErr.Error()
	}
	return err.Error()
}

func errorMessage(err error) string {
	if _, ok := dto.IsAPIError(err); ok {
		return describe(err)
	}
	return "Error: " + err.Error()
}

func (s *dashboardService) LoadTopStocks(ctx context.Context, p *page.Page) (template.HTML, error) {
	var tables map[dto.Timeframe]template.HTML
	return load(ctx, s, p, loader[*dto.TopStocks]{
		container: common.CONTAINER_TOP_STOCKS,
		fetch:     s.repo.GetTopStocks,
		render: func(data *dto.TopStocks) (template.HTML, error) {
			var (
				section template.HTML
				err     error
			)
			section, tables, err = s.renderTopStocks(data, p.ActiveTab())
			return section, err
		},
		failure: func(err error) string {
			if apiErr, ok := dto.IsAPIError(err); ok {
				return "Failed to load stock data: " + apiErr.Error()
			}
			s.log.ErrorContext(ctx, "Error loading stocks", logger.ErrorField(err))
			return "Error loading stocks: " + err.Error()
		},
		frame: func(banner template.HTML) template.HTML {
			return s.topStocksFailure(ctx, p.ActiveTab(), banner)
		},
		commit: func(tok page.Token, data *dto.TopStocks, content template.HTML) bool {
			return p.CommitTopStocks(tok, data, content, tables)
		},
	})
}

func (s *dashboardService) renderTopStocks(data *dto.TopStocks, active dto.Timeframe) (template.HTML, map[dto.Timeframe]template.HTML, error) {
	tables := make(map[dto.Timeframe]template.HTML, len(dto.Timeframes()))
	for _, tf := range dto.Timeframes() {
		table, err := s.renderer.TopStocksTable(tf, data.ByTimeframe(tf))
		if err != nil {
			return "", nil, err
		}
		tables[tf] = table
	}

	var generatedAt string
	if data != nil {
		generatedAt = data.GeneratedAt
	}
	section, err := s.renderer.TopStocksSection(view.TopStocksView{
		Active:      active,
		GeneratedAt: generatedAt,
		Tables:      tables,
	})
	if err != nil {
		return "", nil, err
	}
	return section, tables, nil
}

// topStocksFailure shows banner inside the section so the tabs and the
// refresh control stay usable.
func (s *dashboardService) topStocksFailure(ctx context.Context, active dto.Timeframe, banner template.HTML) template.HTML {
	section, err := s.renderer.TopStocksSection(view.TopStocksView{Active: active, Error: banner})
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to render top stocks section", logger.ErrorField(err))
		return banner
	}
	return section
}

// ShowTab redraws the top stocks section from the dataset the page holds.
// Without a dataset the section is loaded first.
func (s *dashboardService) ShowTab(ctx context.Context, p *page.Page, tf dto.Timeframe) (template.HTML, error) {
	p.SetActiveTab(tf)

	data := p.TopStocks()
	if data == nil {
		return s.LoadTopStocks(ctx, p)
	}

	section, tables, err := s.renderTopStocks(data, tf)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to render top stocks tab",
			logger.StringField("timeframe", string(tf)),
			logger.ErrorField(err))
		section = s.topStocksFailure(ctx, tf, s.renderer.ErrorBanner("Error loading stocks: "+err.Error()))
	}

	for name, table := range tables {
		p.Replace(string(name), table)
	}
	p.Replace(common.CONTAINER_TOP_STOCKS, section)
	metrics.Renders.WithLabelValues(common.CONTAINER_TOP_STOCKS, "redraw").Inc()
	return section, nil
}

func (s *dashboardService) SearchStock(ctx context.Context, p *page.Page, ticker string) (template.HTML, error) {
	return load(ctx, s, p, loader[*dto.StockDetail]{
		container: common.CONTAINER_SEARCH,
		fetch: func(ctx context.Context) (*dto.StockDetail, error) {
			return s.repo.SearchStock(ctx, ticker)
		},
		render:  s.renderer.StockDetail,
		failure: errorMessage,
	})
}

func (s *dashboardService) AnalyzeStock(ctx context.Context, p *page.Page, ticker string) (template.HTML, error) {
	return load(ctx, s, p, loader[*dto.ConsensusResult]{
		container: common.CONTAINER_STOCK_SCORE,
		fetch: func(ctx context.Context) (*dto.ConsensusResult, error) {
			return s.repo.GetStockScore(ctx, ticker)
		},
		render: func(result *dto.ConsensusResult) (template.HTML, error) {
			return s.renderer.Consensus(result, common.GetDefaultPanels())
		},
		failure: errorMessage,
		commit: func(tok page.Token, result *dto.ConsensusResult, content template.HTML) bool {
			return p.CommitConsensus(tok, result, content)
		},
	})
}

func (s *dashboardService) LoadMethodology(ctx context.Context, p *page.Page) (template.HTML, error) {
	return load(ctx, s, p, loader[*dto.Methodology]{
		container: common.CONTAINER_METHODOLOGY,
		fetch:     s.repo.GetMethodology,
		render:    s.renderer.Methodology,
		failure: func(err error) string {
			s.log.ErrorContext(ctx, "Error loading methodology", logger.ErrorField(err))
			return "Error loading methodology: " + describe(err)
		},
	})
}

// TogglePanel flips one consensus panel and redraws the consensus the
// page already holds.
func (s *dashboardService) TogglePanel(ctx context.Context, p *page.Page, id string) (template.HTML, error) {
	result := p.Consensus()
	if result == nil {
		return "", ErrNoContent
	}

	state, ok := p.Toggle(id)
	if !ok {
		return "", ErrUnknownPanel
	}
	s.log.DebugContext(ctx, "Toggled panel",
		logger.StringField("panel", state.ID),
		logger.Field("visible", state.Visible))

	content, err := s.renderer.Consensus(result, p.Panels())
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to render consensus", logger.ErrorField(err))
		content = s.renderer.ErrorBanner(errorMessage(err))
	}
	p.Replace(common.CONTAINER_STOCK_SCORE, content)
	metrics.Renders.WithLabelValues(common.CONTAINER_STOCK_SCORE, "redraw").Inc()
	return content, nil
}

// LoadInitial fills the sections shown on first page load concurrently.
func (s *dashboardService) LoadInitial(ctx context.Context, p *page.Page) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := s.LoadTopStocks(gctx, p)
		return ignoreStale(err)
	})
	g.Go(func() error {
		_, err := s.LoadMethodology(gctx, p)
		return ignoreStale(err)
	})
	return g.Wait()
}

func ignoreStale(err error) error {
	if errors.Is(err, ErrStaleResponse) {
		return nil
	}
	return err
}
