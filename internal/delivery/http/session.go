package http

import (
	"net/http"

	"stock-dashboard/config"
	"stock-dashboard/internal/page"
	"stock-dashboard/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const pageContextKey = "dashboard_page"

// SessionMiddleware attaches the session Page and a session scoped logger to
// the request, issuing a session cookie to browsers that do not carry a
// valid one.
func SessionMiddleware(cfg config.Session, store *page.Store, log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var sessionID string
			if cookie, err := c.Cookie(cfg.CookieName); err == nil {
				if _, err := uuid.Parse(cookie.Value); err == nil {
					sessionID = cookie.Value
				}
			}

			if sessionID == "" {
				sessionID = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     cfg.CookieName,
					Value:    sessionID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			req := c.Request()
			ctx := logger.NewContext(req.Context(), log.With(logger.StringField("session_id", sessionID)))
			c.SetRequest(req.WithContext(ctx))

			c.Set(pageContextKey, store.GetOrCreate(sessionID))
			return next(c)
		}
	}
}

func pageFrom(c echo.Context) *page.Page {
	if p, ok := c.Get(pageContextKey).(*page.Page); ok {
		return p
	}
	return page.New()
}
