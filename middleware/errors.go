package middleware

import "github.com/labstack/echo/v4"

// CommitError renders a returned error through the server's HTTPErrorHandler
// as soon as the route chain unwinds, so the access log, the tracing span and
// the metrics middleware all observe the final status code. The error is still
// returned; the handler skips responses that are already committed.
func CommitError(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)
		if err != nil && !c.Response().Committed {
			c.Error(err)
		}
		return err
	}
}
