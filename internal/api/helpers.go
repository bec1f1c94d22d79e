package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/labstack/echo/v5"
)

const requestIDKey = "request_id"

// requestID tags every request and response with an X-Request-Id,
// reusing the client's value when it sends one.
func requestID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		id := c.Request().Header.Get(echo.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Response().Header().Set(echo.HeaderXRequestID, id)
		c.Set(requestIDKey, id)
		return next(c)
	}
}

func writeJSON(c *echo.Context, status int, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Blob(status, echo.MIMEApplicationJSON, b)
}

func writeError(c *echo.Context, status int, errType, msg, param string) error {
	return writeJSON(c, status, ErrorBody{Error: ResponseError{Message: msg, Type: errType, Param: param}})
}

func writeBadRequest(c *echo.Context, msg string) error {
	return writeError(c, http.StatusBadRequest, "invalid_request_error", msg, "")
}

func writeNotFound(c *echo.Context, msg string) error {
	return writeError(c, http.StatusNotFound, "not_found_error", msg, "")
}

// writeFailure maps handler errors onto HTTP statuses.
func writeFailure(c *echo.Context, err error) error {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return writeError(c, http.StatusRequestEntityTooLarge, "request_too_large",
			fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit), "")
	case errors.Is(err, ErrInvalidRequest):
		return writeBadRequest(c, err.Error())
	case errors.Is(err, ErrNotFound):
		return writeNotFound(c, err.Error())
	}
	return writeError(c, http.StatusInternalServerError, "server_error", err.Error(), "")
}

// readBody reads the whole request body, refusing more than limit bytes.
func readBody(c *echo.Context, limit int64) ([]byte, error) {
	body := http.MaxBytesReader(c.Response(), c.Request().Body, limit)
	defer func() { _ = body.Close() }()
	return io.ReadAll(body)
}
