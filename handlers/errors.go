package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/Madhav-Gupta-28/catalog-backend-go/errs"
)

// ErrorHandler is the centralized echo.HTTPErrorHandler. Failures are answered
// in plain text; the status code carries the primary signal.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		status  int
		message string
		he      *echo.HTTPError
	)
	if errors.As(err, &he) {
		status = he.Code
		message = fmt.Sprint(he.Message)
		if he.Internal != nil {
			err = he.Internal
		}
	} else {
		status = errs.GetErrorStatusCode(err)
		message = errs.PublicMessage(err)
	}

	logger := log.Ctx(c.Request().Context())
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("component", "ErrorHandler").Int("status", status).Msg("request failed")
	} else {
		logger.Debug().Err(err).Str("component", "ErrorHandler").Int("status", status).Msg("request rejected")
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.String(status, message)
	}
	if writeErr != nil {
		logger.Error().Err(writeErr).Str("component", "ErrorHandler").Msg("write error response")
	}
}

// NotSupported answers verbs a path deliberately does not implement.
func NotSupported(c echo.Context) error {
	return errs.Unsupported("%s operation not supported on %s", c.Request().Method, c.Request().URL.Path)
}

// Preflight answers OPTIONS with a bare 200 once the CORS gate has set its headers.
func Preflight(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}
