package apperr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type validationBody struct {
	Errors FieldErrors `json:"errors"`
}

type messageBody struct {
	Error string `json:"error"`
}

// Handler returns an echo.HTTPErrorHandler that renders *Error values by kind.
// Storage failures are logged with the request id and answered with a generic
// message; echo's own *echo.HTTPError values keep their status and message.
func Handler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := render(err)
		if status >= http.StatusInternalServerError {
			rid, _ := c.Get("request_id").(string)
			logger.Error().
				Err(err).
				Str("request_id", rid).
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Msg("request failed")
		}

		if Is(err, KindUnauthorized) {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Token")
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(status)
		} else {
			werr = c.JSON(status, body)
		}
		if werr != nil {
			logger.Error().Err(werr).Msg("write error response")
		}
	}
}

func render(err error) (int, interface{}) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg, ok := he.Message.(string)
		if !ok {
			msg = http.StatusText(he.Code)
		}
		return he.Code, messageBody{Error: msg}
	}

	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError, messageBody{Error: "an internal server error occurred"}
	}

	switch e.Kind {
	case KindValidation:
		return e.Kind.Status(), validationBody{Errors: e.Fields}
	case KindStorage:
		return e.Kind.Status(), messageBody{Error: "an internal server error occurred"}
	}
	return e.Kind.Status(), messageBody{Error: e.Message}
}
