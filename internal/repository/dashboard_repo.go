package repository

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"stock-dashboard/config"
	"stock-dashboard/internal/dto"
	"stock-dashboard/internal/metrics"
	"stock-dashboard/pkg/httpclient"
	"stock-dashboard/pkg/logger"

	"golang.org/x/time/rate"
)

const (
	endpointTopStocks   = "top_stocks"
	endpointSearch      = "search"
	endpointStockScore  = "stockscore"
	endpointMethodology = "methodology"

	maxLoggedBody = 512
)

// DashboardRepository reads the view models the dashboard renders from
// the analysis backend.
type DashboardRepository interface {
	GetTopStocks(ctx context.Context) (*dto.TopStocks, error)
	SearchStock(ctx context.Context, ticker string) (*dto.StockDetail, error)
	GetStockScore(ctx context.Context, ticker string) (*dto.ConsensusResult, error)
	GetMethodology(ctx context.Context) (*dto.Methodology, error)
}

type dashboardRepository struct {
	httpClient     httpclient.HTTPClient
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

func NewDashboardRepository(cfg *config.Config, client httpclient.HTTPClient, log *logger.Logger) DashboardRepository {
	limit := rate.Inf
	burst := 1
	if cfg.Backend.MaxRequestPerMin > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.Backend.MaxRequestPerMin))
		burst = max(1, cfg.Backend.MaxRequestPerMin/10)
	}

	return &dashboardRepository{
		httpClient:     client,
		logger:         log,
		requestLimiter: rate.NewLimiter(limit, burst),
	}
}

func (r *dashboardRepository) GetTopStocks(ctx context.Context) (*dto.TopStocks, error) {
	var result dto.TopStocks
	if err := r.get(ctx, endpointTopStocks, "/api/top-stocks", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *dashboardRepository) SearchStock(ctx context.Context, ticker string) (*dto.StockDetail, error) {
	var result dto.StockDetail
	if err := r.get(ctx, endpointSearch, "/api/search/"+url.PathEscape(ticker), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *dashboardRepository) GetStockScore(ctx context.Context, ticker string) (*dto.ConsensusResult, error) {
	var result dto.ConsensusResult
	if err := r.get(ctx, endpointStockScore, "/api/stockscore/"+url.PathEscape(ticker), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *dashboardRepository) GetMethodology(ctx context.Context) (*dto.Methodology, error) {
	var result dto.Methodology
	if err := r.get(ctx, endpointMethodology, "/api/methodology", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *dashboardRepository) get(ctx context.Context, name, path string, out interface{}) error {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("backend request limiter: %w", err)
	}

	start := time.Now()
	resp, err := r.httpClient.Get(ctx, path, nil, nil, nil)
	metrics.BackendLatency.WithLabelValues(name).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.BackendRequests.WithLabelValues(name, "error").Inc()
		r.logger.ErrorContext(ctx, "Backend request failed",
			logger.StringField("path", path),
			logger.ErrorField(err))
		return fmt.Errorf("failed to fetch %s: %w", path, err)
	}

	if err := dto.DecodeEnvelope(resp.Body, out); err != nil {
		if apiErr, ok := dto.IsAPIError(err); ok {
			metrics.BackendRequests.WithLabelValues(name, "api_error").Inc()
			r.logger.WarnContext(ctx, "Backend reported failure",
				logger.StringField("path", path),
				logger.IntField("status_code", resp.StatusCode),
				logger.StringField("error", apiErr.Message))
			return apiErr
		}

		metrics.BackendRequests.WithLabelValues(name, "error").Inc()
		body := string(resp.Body)
		if len(body) > maxLoggedBody {
			body = body[:maxLoggedBody]
		}
		r.logger.ErrorContext(ctx, "Backend returned an unreadable response",
			logger.StringField("path", path),
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("body", body),
			logger.ErrorField(err))
		return fmt.Errorf("backend returned status %d: %w", resp.StatusCode, err)
	}

	metrics.BackendRequests.WithLabelValues(name, "success").Inc()
	return nil
}
