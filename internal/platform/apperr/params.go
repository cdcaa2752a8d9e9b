package apperr

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Bind decodes the request into v. A body cut off by the size limit keeps
// its 413; any other decoding failure is a bad request.
func Bind(c echo.Context, v interface{}) error {
	if err := c.Bind(v); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code == http.StatusRequestEntityTooLarge {
			return he
		}
		return BadRequest("malformed request body")
	}
	return nil
}

// ParseID parses raw as an entity identifier, reporting failures against field.
func ParseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, Validation(field, "must be a valid identifier")
	}
	return id, nil
}

// ParseOptionalID is ParseID for optional parameters; an empty raw yields nil.
func ParseOptionalID(field, raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := ParseID(field, raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// ParseOptionalBool parses an optional boolean query parameter.
func ParseOptionalBool(field, raw string) (*bool, error) {
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, Validation(field, "must be true or false")
	}
	return &b, nil
}
