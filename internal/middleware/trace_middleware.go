package middleware

import (
	"msaRecommender/business/reco"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TraceID assigns a request trace id, stows it in the request context
// for the service layer's logging and echoes it back in a header.
func TraceID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tid := uuid.NewString()

			ctx := reco.WithTraceID(c.Request().Context(), tid)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set("X-Trace-ID", tid)

			return next(c)
		}
	}
}
