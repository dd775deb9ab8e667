package http

import (
	"errors"
	"html/template"
	"net/http"

	"stock-dashboard/internal/dto"
	"stock-dashboard/internal/service"
	"stock-dashboard/pkg/common"
	"stock-dashboard/pkg/logger"
	"stock-dashboard/pkg/utils"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const (
	msgTickerRequired = "Please enter a stock ticker"
	msgTickerInvalid  = "Invalid stock ticker: "
	msgBadTimeframe   = "Unknown timeframe"
	msgBadPanel       = "Unknown panel"
	msgRenderFailed   = "Something went wrong while rendering this section"
)

func (h *HttpAPIHandler) SetupUI(ui *echo.Group) {
	ui.GET("/top-stocks", h.TopStocks)
	ui.GET("/top-stocks/tabs/:timeframe", h.TopStocksTab)
	ui.GET("/search", h.SearchStock)
	ui.GET("/stockscore", h.StockScore)
	ui.GET("/methodology", h.Methodology)
	ui.POST("/panels/:id/toggle", h.TogglePanel)
}

// Index renders the full dashboard. The first visit of a session loads the
// top stocks and the methodology before the page is drawn.
func (h *HttpAPIHandler) Index(c echo.Context) error {
	ctx := c.Request().Context()
	p := pageFrom(c)

	if p.TopStocks() == nil {
		if err := h.service.DashboardService.LoadInitial(ctx, p); err != nil {
			h.log.WarnContext(ctx, "Initial load incomplete", logger.ErrorField(err))
		}
	}

	content, err := h.renderer.Index(p)
	if err != nil {
		h.log.ErrorContext(ctx, "Failed to render index", logger.ErrorField(err))
		return c.String(http.StatusInternalServerError, msgRenderFailed)
	}
	return c.HTML(http.StatusOK, string(content))
}

func (h *HttpAPIHandler) TopStocks(c echo.Context) error {
	content, err := h.service.DashboardService.LoadTopStocks(c.Request().Context(), pageFrom(c))
	return h.fragment(c, content, err)
}

func (h *HttpAPIHandler) TopStocksTab(c echo.Context) error {
	req := new(dto.TabRequest)
	if err := c.Bind(req); err != nil {
		return h.banner(c, http.StatusBadRequest, msgBadTimeframe)
	}
	if err := h.validator.Struct(req); err != nil {
		return h.banner(c, http.StatusBadRequest, msgBadTimeframe)
	}

	tf, _ := dto.ParseTimeframe(req.Timeframe)
	content, err := h.service.DashboardService.ShowTab(c.Request().Context(), pageFrom(c), tf)
	return h.fragment(c, content, err)
}

func (h *HttpAPIHandler) SearchStock(c echo.Context) error {
	req, msg := h.bindTicker(c)
	if msg != "" {
		return h.rejectTicker(c, common.CONTAINER_SEARCH, msg)
	}

	content, err := h.service.DashboardService.SearchStock(c.Request().Context(), pageFrom(c), req.Ticker)
	return h.fragment(c, content, err)
}

func (h *HttpAPIHandler) StockScore(c echo.Context) error {
	req, msg := h.bindTicker(c)
	if msg != "" {
		return h.rejectTicker(c, common.CONTAINER_STOCK_SCORE, msg)
	}

	content, err := h.service.DashboardService.AnalyzeStock(c.Request().Context(), pageFrom(c), req.Ticker)
	return h.fragment(c, content, err)
}

func (h *HttpAPIHandler) Methodology(c echo.Context) error {
	content, err := h.service.DashboardService.LoadMethodology(c.Request().Context(), pageFrom(c))
	return h.fragment(c, content, err)
}

func (h *HttpAPIHandler) TogglePanel(c echo.Context) error {
	req := new(dto.PanelRequest)
	if err := c.Bind(req); err != nil {
		return h.banner(c, http.StatusBadRequest, msgBadPanel)
	}
	if err := h.validator.Struct(req); err != nil {
		return h.banner(c, http.StatusBadRequest, msgBadPanel)
	}

	content, err := h.service.DashboardService.TogglePanel(c.Request().Context(), pageFrom(c), req.ID)
	return h.fragment(c, content, err)
}

// bindTicker normalizes the ticker query and returns a banner message when
// it cannot be used.
func (h *HttpAPIHandler) bindTicker(c echo.Context) (*dto.TickerRequest, string) {
	req := new(dto.TickerRequest)
	if err := c.Bind(req); err != nil {
		return nil, msgTickerRequired
	}
	req.Ticker = utils.NormalizeTicker(req.Ticker)

	if err := h.validator.Struct(req); err != nil {
		var verrs goValidator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Tag() == "required" {
			return nil, msgTickerRequired
		}
		return nil, msgTickerInvalid + req.Ticker
	}
	return req, ""
}

// rejectTicker shows the validation message in the target container so a
// full page reload keeps it.
func (h *HttpAPIHandler) rejectTicker(c echo.Context, container, msg string) error {
	banner := h.renderer.ErrorBanner(msg)
	pageFrom(c).Replace(container, banner)
	return c.HTML(http.StatusBadRequest, string(banner))
}

// fragment writes a container update. Responses that must not replace what
// the browser shows are answered with 204.
func (h *HttpAPIHandler) fragment(c echo.Context, content template.HTML, err error) error {
	switch {
	case errors.Is(err, service.ErrStaleResponse), errors.Is(err, service.ErrNoContent):
		return c.NoContent(http.StatusNoContent)
	case errors.Is(err, service.ErrUnknownPanel):
		return h.banner(c, http.StatusBadRequest, msgBadPanel)
	case err != nil:
		h.log.ErrorContext(c.Request().Context(), "Failed to render fragment",
			logger.StringField("path", c.Path()),
			logger.ErrorField(err))
		return h.banner(c, http.StatusInternalServerError, msgRenderFailed)
	}
	return c.HTML(http.StatusOK, string(content))
}

func (h *HttpAPIHandler) banner(c echo.Context, status int, msg string) error {
	return c.HTML(status, string(h.renderer.ErrorBanner(msg)))
}
