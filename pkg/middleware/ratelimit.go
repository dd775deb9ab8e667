package middleware

import (
	"html/template"
	"net/http"

	"stock-dashboard/config"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const (
	msgRateLimited  = "Too many requests: Rate limit exceeded. Please try again later"
	msgLimiterError = "Access forbidden: Rate limiter error occurred"
)

// NewRateLimiterMiddleware limits requests per client IP. Denials are
// answered with an alert fragment so they render inside the target container.
func NewRateLimiterMiddleware(cfg config.RateLimit) echo.MiddlewareFunc {
	limiterConfig := middleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/healthz" || c.Path() == "/metrics"
		},
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(cfg.RequestPerSecond),
				Burst:     cfg.Burst,
				ExpiresIn: cfg.ExpiresIn,
			},
		),

		IdentifierExtractor: func(ctx echo.Context) (string, error) {
			id := ctx.RealIP()
			return id, nil
		},

		ErrorHandler: func(context echo.Context, err error) error {
			return alert(context, http.StatusForbidden, msgLimiterError)
		},

		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return alert(context, http.StatusTooManyRequests, msgRateLimited)
		},
	}

	return middleware.RateLimiterWithConfig(limiterConfig)
}

func alert(c echo.Context, status int, msg string) error {
	return c.HTML(status, `<div class="alert alert-error">`+template.HTMLEscapeString(msg)+`</div>`)
}
