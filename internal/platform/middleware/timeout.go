package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// RequestTimeout sets a deadline on each request context. The handler runs on
// the calling goroutine; when it fails with context.DeadlineExceeded the error
// becomes a 504. A handler that ignores its context finishes normally. A zero
// timeout disables the middleware.
func RequestTimeout(timeout time.Duration) echo.MiddlewareFunc {
	if timeout <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return echomw.ContextTimeoutWithConfig(echomw.ContextTimeoutConfig{
		Timeout:      timeout,
		ErrorHandler: timeoutError,
	})
}

func timeoutError(err error, c echo.Context) error {
	if errors.Is(err, context.DeadlineExceeded) && !c.Response().Committed {
		return echo.NewHTTPError(http.StatusGatewayTimeout,
			"request processing exceeded the allowed time limit").WithInternal(err)
	}
	return err
}
