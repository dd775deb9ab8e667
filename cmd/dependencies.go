package cmd

import (
	"context"

	"stock-dashboard/config"
	"stock-dashboard/internal/delivery/http"
	"stock-dashboard/internal/metrics"
	"stock-dashboard/internal/page"
	"stock-dashboard/internal/view"
	"stock-dashboard/pkg/logger"
	"stock-dashboard/pkg/middleware"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type AppDependency struct {
	cfg       *config.Config
	log       *logger.Logger
	validator *goValidator.Validate
	echo      *echo.Echo
	renderer  *view.Renderer
	store     *page.Store
}

func NewAppDependency(ctx context.Context) (*AppDependency, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return nil, err
	}

	validator, err := http.NewValidator()
	if err != nil {
		log.Error("Failed to create validator", zap.Error(err))
		return nil, err
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Error("Failed to parse templates", zap.Error(err))
		return nil, err
	}

	metrics.Init()

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.NewRequestLoggerMiddleware(log))
	e.Use(middleware.NewRateLimiterMiddleware(cfg.RateLimit))

	return &AppDependency{
		cfg:       cfg,
		log:       log,
		validator: validator,
		echo:      e,
		renderer:  renderer,
		store:     page.NewStore(cfg),
	}, nil
}

func (d *AppDependency) Close() error {
	d.log.Info("Closing app dependency")
	_ = d.log.Sync()
	return nil
}
