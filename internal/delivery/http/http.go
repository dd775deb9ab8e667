package http

import (
	"context"
	"net/http"

	"stock-dashboard/config"
	"stock-dashboard/internal/metrics"
	"stock-dashboard/internal/page"
	"stock-dashboard/internal/service"
	"stock-dashboard/internal/view"
	"stock-dashboard/pkg/logger"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type HttpAPIHandler struct {
	ctx       context.Context
	echo      *echo.Echo
	validator *goValidator.Validate
	service   *service.Service
	renderer  *view.Renderer
	store     *page.Store
	cfg       *config.Config
	log       *logger.Logger
}

func NewHttpAPIHandler(
	ctx context.Context,
	echo *echo.Echo,
	validator *goValidator.Validate,
	service *service.Service,
	renderer *view.Renderer,
	store *page.Store,
	cfg *config.Config,
	log *logger.Logger,
) *HttpAPIHandler {
	return &HttpAPIHandler{
		ctx:       ctx,
		echo:      echo,
		validator: validator,
		service:   service,
		renderer:  renderer,
		store:     store,
		cfg:       cfg,
		log:       log,
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	h.echo.GET("/healthz", h.Health)
	h.echo.GET("/metrics", metrics.Handler())

	session := SessionMiddleware(h.cfg.Session, h.store, h.log)
	h.echo.GET("/", h.Index, session)

	ui := h.echo.Group("/ui", session)
	h.SetupUI(ui)
}

func (h *HttpAPIHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
