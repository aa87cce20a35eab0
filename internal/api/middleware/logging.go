package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const TraceIDHeader = "X-Trace-ID"
const traceParentHeader = "traceparent"

// RequestLogger logs one structured line per request with a trace id attached.
// The trace id comes from the W3C traceparent header, the X-Trace-ID header,
// or is generated. The sub-logger is injected into the request context so
// handlers can log with the same trace id via zerolog.Ctx.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			traceID := extractTraceID(c)
			c.Set("trace_id", traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)

			logger := log.With().Str("trace_id", traceID).Logger()
			c.SetRequest(req.WithContext(logger.WithContext(req.Context())))

			// Render errors here so the logged status reflects what the
			// client actually received.
			if err := next(c); err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			event := logger.Info()
			if status >= 400 {
				event = logger.Error()
			}
			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", status).
				Dur("duration", time.Since(start)).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			return nil
		}
	}
}

// extractTraceID pulls the trace id from traceparent (version-trace_id-parent_id-flags),
// falls back to X-Trace-ID, and otherwise generates a fresh one.
func extractTraceID(c echo.Context) string {
	if tp := c.Request().Header.Get(traceParentHeader); tp != "" {
		parts := strings.Split(tp, "-")
		if len(parts) >= 2 && parts[1] != "" {
			return parts[1]
		}
	}
	if id := c.Request().Header.Get(TraceIDHeader); id != "" {
		return id
	}
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
