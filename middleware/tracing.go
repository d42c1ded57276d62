package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/Madhav-Gupta-28/catalog-backend-go/utils"
)

// Tracing opens one server span per request, continuing an inbound W3C trace
// context when present. Without a configured provider the global no-op tracer
// is used.
func Tracing(next echo.HandlerFunc) echo.HandlerFunc {
	tracer := otel.Tracer(utils.ServiceName)
	return func(c echo.Context) error {
		req := c.Request()
		ctx := otel.GetTextMapPropagator().Extract(req.Context(), propagation.HeaderCarrier(req.Header))
		ctx, span := tracer.Start(ctx, fmt.Sprintf("[%s] %s", req.Method, c.Path()), trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()

		c.SetRequest(req.WithContext(ctx))

		err := next(c)
		if err != nil {
			// Render now so the recorded status is the one the client gets.
			if !c.Response().Committed {
				c.Error(err)
			}
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.SetAttributes(attribute.Int("http.status_code", c.Response().Status))
		return err
	}
}
