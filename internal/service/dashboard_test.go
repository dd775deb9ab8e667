package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"stock-dashboard/internal/dto"
	"stock-dashboard/internal/page"
	"stock-dashboard/internal/view"
	"stock-dashboard/pkg/common"
	"stock-dashboard/pkg/logger"
	"stock-dashboard/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDashboardRepository is a mock for repository.DashboardRepository
type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) GetTopStocks(ctx context.Context) (*dto.TopStocks, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TopStocks), args.Error(1)
}

func (m *MockDashboardRepository) SearchStock(ctx context.Context, ticker string) (*dto.StockDetail, error) {
	args := m.Called(ctx, ticker)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StockDetail), args.Error(1)
}

func (m *MockDashboardRepository) GetStockScore(ctx context.Context, ticker string) (*dto.ConsensusResult, error) {
	args := m.Called(ctx, ticker)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ConsensusResult), args.Error(1)
}

func (m *MockDashboardRepository) GetMethodology(ctx context.Context) (*dto.Methodology, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Methodology), args.Error(1)
}

func newTestService(t *testing.T) (DashboardService, *MockDashboardRepository) {
	t.Helper()
	renderer, err := view.NewRenderer()
	require.NoError(t, err)
	repo := new(MockDashboardRepository)
	return NewDashboardService(logger.NewNop(), repo, renderer), repo
}

func topStocksFixture() *dto.TopStocks {
	return &dto.TopStocks{
		ShortTerm: []dto.StockSummary{{
			Ticker:          "ABC",
			CurrentPrice:    utils.ToPointer(100.0),
			ShortTerm:       &dto.Prediction{PredictedPrice: utils.ToPointer(110.0)},
			PredictionScore: utils.ToPointer(65.0),
		}},
		MidTerm: []dto.StockSummary{{
			Ticker:       "MID",
			CurrentPrice: utils.ToPointer(50.0),
			MidTerm:      &dto.Prediction{PredictedPrice: utils.ToPointer(55.0)},
		}},
		GeneratedAt: "2024-01-01T00:00:00Z",
	}
}

func TestDashboardService_LoadTopStocks(t *testing.T) {
	svc, repo := newTestService(t)
	p := page.New()
	data := topStocksFixture()
	repo.On("GetTopStocks", mock.Anything).Return(data, nil).Once()

	out, err := svc.LoadTopStocks(context.Background(), p)
	require.NoError(t, err)

	assert.Contains(t, string(out), "ABC")
	assert.Equal(t, out, p.Content(common.CONTAINER_TOP_STOCKS))
	assert.Same(t, data, p.TopStocks())
	assert.Contains(t, string(p.Content(common.CONTAINER_SHORT)), "ABC")
	assert.Contains(t, string(p.Content(common.CONTAINER_LONG)), "No stocks available for this timeframe.")
	assert.False(t, p.Loading(common.CONTAINER_TOP_STOCKS))
	repo.AssertExpectations(t)
}

func TestDashboardService_LoadTopStocksFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"backend reported failure", &dto.APIError{Message: "screener offline"}, "Failed to load stock data: screener offline"},
		{"transport failure", errors.New("connection refused"), "Error loading stocks: connection refused"},
		{"backend failure without message", &dto.APIError{}, "Failed to load stock data: unknown error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService(t)
			p := page.New()
			repo.On("GetTopStocks", mock.Anything).Return(nil, tt.err)

			out, err := svc.LoadTopStocks(context.Background(), p)
			require.NoError(t, err)

			assert.Contains(t, string(out), `class="alert alert-error"`)
			assert.Contains(t, string(out), tt.want)
			assert.Contains(t, string(out), `data-get="/ui/top-stocks"`, "refresh control stays available")
			assert.Contains(t, string(out), `data-get="/ui/top-stocks/tabs/mid"`)
			assert.NotContains(t, string(out), `class="tab-content`)
			assert.Nil(t, p.TopStocks())
			assert.False(t, p.Loading(common.CONTAINER_TOP_STOCKS))
		})
	}
}

func TestDashboardService_ShowTabUsesStoredDataset(t *testing.T) {
	svc, repo := newTestService(t)
	p := page.New()
	repo.On("GetTopStocks", mock.Anything).Return(topStocksFixture(), nil).Once()

	_, err := svc.LoadTopStocks(context.Background(), p)
	require.NoError(t, err)

	out, err := svc.ShowTab(context.Background(), p, dto.TimeframeMid)
	require.NoError(t, err)

	assert.Equal(t, dto.TimeframeMid, p.ActiveTab())
	assert.Contains(t, string(out), `<div id="mid" class="tab-content active">`)
	assert.Contains(t, string(out), "MID")
	assert.Equal(t, out, p.Content(common.CONTAINER_TOP_STOCKS))
	repo.AssertNumberOfCalls(t, "GetTopStocks", 1)
}

func TestDashboardService_ShowTabWithoutDatasetLoads(t *testing.T) {
	svc, repo := newTestService(t)
	p := page.New()
	repo.On("GetTopStocks", mock.Anything).Return(topStocksFixture(), nil).Once()

	out, err := svc.ShowTab(context.Background(), p, dto.TimeframeLong)
	require.NoError(t, err)

	assert.Contains(t, string(out), `<div id="long" class="tab-content active">`)
	assert.NotNil(t, p.TopStocks())
	repo.AssertExpectations(t)
}

func TestDashboardService_SearchStockFailureReplacesContent(t *testing.T) {
	svc, repo := newTestService(t)
	p := page.New()
	repo.On("SearchStock", mock.Anything, "ABC").Return(&dto.StockDetail{
		StockSummary: dto.StockSummary{Ticker: "ABC", CompanyName: "ABC Corp"},
	}, nil)
	repo.On("SearchStock", mock.Anything, "XYZ").Return(nil, &dto.APIError{Message: "ticker not found"})

	_, err := svc.SearchStock(context.Background(), p, "ABC")
	require.NoError(t, err)
	require.Contains(t, string(p.Content(common.CONTAINER_SEARCH)), "ABC Corp")

	out, err := svc.SearchStock(context.Background(), p, "XYZ")
	require.NoError(t, err)

	assert.Equal(t, `<div class="alert alert-error">ticker not found</div>`, string(out))
	assert.Equal(t, out, p.Content(common.CONTAINER_SEARCH))
	assert.NotContains(t, string(p.Content(common.CONTAINER_SEARCH)), "ABC Corp")
}

func TestDashboardService_SearchStockTransportError(t *testing.T) {
	svc, repo := newTestService(t)
	p := page.New()
	repo.On("SearchStock", mock.Anything, "ABC").Return(nil, errors.New("backend returned status 502"))

	out, err := svc.SearchStock(context.Background(), p, "ABC")
	require.NoError(t, err)
	assert.Equal(t, `<div class="alert alert-error">Error: backend returned status 502</div>`, string(out))
}

func TestDashboardService_StaleResponseDiscarded(t *testing.T) {
	svc, repo := newTestService(t)
	p := page.New()

	started := make(chan struct{})
	release := make(chan struct{})
	repo.On("SearchStock", mock.Anything, "ABC").Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return(&dto.StockDetail{StockSummary: dto.StockSummary{Ticker: "ABC", CompanyName: "Slow Corp"}}, nil)
	repo.On("SearchStock", mock.Anything, "XYZ").
		Return(&dto.StockDetail{StockSummary: dto.StockSummary{Ticker: "XYZ", CompanyName: "Fast Corp"}}, nil)

	slowErr := make(chan error, 1)
	go func() {
		_, err := svc.SearchStock(context.Background(), p, "ABC")
		slowErr <- err
	}()
	<-started

	_, err := svc.SearchStock(context.Background(), p, "XYZ")
	require.NoError(t, err)
	close(release)

	assert.ErrorIs(t, <-slowErr, ErrStaleResponse)
	content := string(p.Content(common.CONTAINER_SEARCH))
	assert.Contains(t, content, "Fast Corp")
	assert.NotContains(t, content, "Slow Corp")
	assert.False(t, p.Loading(common.CONTAINER_SEARCH))
}

func consensusFixture(ticker string) *dto.ConsensusResult {
	return &dto.ConsensusResult{
		Ticker:       ticker,
		CurrentPrice: utils.ToPointer(100.0),
		ConsolidatedSummary: dto.ConsolidatedSummary{
			OverallVerdict: "BULLISH",
			Summary:        "Solid quarter.",
		},
	}
}

func TestDashboardService_AnalyzeStockAndTogglePanels(t *testing.T) {
	svc, repo := newTestService(t)
	p := page.New()
	repo.On("GetStockScore", mock.Anything, "ABC").Return(consensusFixture("ABC"), nil)

	out, err := svc.AnalyzeStock(context.Background(), p, "ABC")
	require.NoError(t, err)
	assert.Contains(t, string(out), `<div id="fingpt-details" class="panel-body" hidden>`)
	require.NotNil(t, p.Consensus())

	out, err = svc.TogglePanel(context.Background(), p, common.PANEL_FINGPT_DETAILS)
	require.NoError(t, err)
	assert.Contains(t, string(out), `<div id="fingpt-details" class="panel-body">`)
	assert.Contains(t, string(out), `id="fingpt-details-icon" class="panel-glyph">▼</span>`)
	assert.Equal(t, out, p.Content(common.CONTAINER_STOCK_SCORE))

	out, err = svc.TogglePanel(context.Background(), p, common.PANEL_FINGPT_DETAILS)
	require.NoError(t, err)
	assert.Contains(t, string(out), `<div id="fingpt-details" class="panel-body" hidden>`)
	assert.Contains(t, string(out), `id="fingpt-details-icon" class="panel-glyph">▶</span>`)

	// a new result starts from the default panel layout
	svc.TogglePanel(context.Background(), p, common.PANEL_FINMA_DETAILS)
	_, err = svc.AnalyzeStock(context.Background(), p, "ABC")
	require.NoError(t, err)
	assert.Equal(t, common.GetDefaultPanels(), p.Panels())
}

func TestDashboardService_TogglePanelErrors(t *testing.T) {
	svc, repo := newTestService(t)
	p := page.New()

	_, err := svc.TogglePanel(context.Background(), p, common.PANEL_FINGPT_DETAILS)
	assert.ErrorIs(t, err, ErrNoContent)
	assert.Equal(t, common.GetDefaultPanels(), p.Panels())

	repo.On("GetStockScore", mock.Anything, "ABC").Return(consensusFixture("ABC"), nil)
	_, err = svc.AnalyzeStock(context.Background(), p, "ABC")
	require.NoError(t, err)

	_, err = svc.TogglePanel(context.Background(), p, "unknown-details")
	assert.ErrorIs(t, err, ErrUnknownPanel)
}

func TestDashboardService_LoadMethodologyFailure(t *testing.T) {
	svc, repo := newTestService(t)
	p := page.New()
	repo.On("GetMethodology", mock.Anything).Return(nil, errors.New("timeout"))

	out, err := svc.LoadMethodology(context.Background(), p)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Error loading methodology: timeout")
}

func TestDashboardService_EmptyBackendMessage(t *testing.T) {
	svc, repo := newTestService(t)
	p := page.New()
	repo.On("GetMethodology", mock.Anything).Return(nil, &dto.APIError{})
	repo.On("SearchStock", mock.Anything, "ABC").Return(nil, &dto.APIError{})

	out, err := svc.LoadMethodology(context.Background(), p)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Error loading methodology: unknown error")

	out, err = svc.SearchStock(context.Background(), p, "ABC")
	require.NoError(t, err)
	assert.Equal(t, `<div class="alert alert-error">unknown error</div>`, string(out))
}

func TestDashboardService_LoadInitial(t *testing.T) {
	svc, repo := newTestService(t)
	p := page.New()
	repo.On("GetTopStocks", mock.Anything).Return(topStocksFixture(), nil)
	repo.On("GetMethodology", mock.Anything).Return(&dto.Methodology{Description: "multi-factor", Disclaimer: "not advice"}, nil)

	require.NoError(t, svc.LoadInitial(context.Background(), p))

	assert.Contains(t, string(p.Content(common.CONTAINER_TOP_STOCKS)), "ABC")
	assert.True(t, strings.Contains(string(p.Content(common.CONTAINER_METHODOLOGY)), "not advice"))
	repo.AssertExpectations(t)
}
