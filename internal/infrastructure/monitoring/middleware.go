package monitoring

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/opsdemo/items-api/internal/infrastructure/logging"
	"github.com/opsdemo/items-api/internal/shared/id"
)

// contextKey is the gin context key holding the resolved request id.
const contextKey = "request_id"

type ctxKey struct{}

// Middleware creates the request-context middleware: it resolves the
// correlation id, times the downstream handler chain, records metrics,
// stamps the x-request-id response header, and emits one structured log
// line per request.
//
// Register it before Recovery so that a panicking handler is converted to
// a 500 response before the status is observed here; the metrics and log
// line happen for every request, faults included.
func Middleware(metrics *Metrics, logger *logging.Logger, resolver *id.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := resolver.FromHeader(c.Request.Header)
		c.Set(contextKey, requestID)
		c.Request = c.Request.WithContext(
			context.WithValue(c.Request.Context(), ctxKey{}, requestID),
		)

		// Stamp the header before the handler writes the response;
		// headers are flushed on first write.
		c.Header(id.Header, requestID)

		start := time.Now()
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		// Label by route template to bound cardinality; unmatched routes
		// fall back to the raw path.
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		metrics.RecordHTTPRequest(method, path, strconv.Itoa(status), latency)

		logger.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Float64("latency_ms", roundMillis(latency)),
		)
	}
}

// RequestID returns the correlation id resolved for this request, or ""
// when the middleware did not run.
func RequestID(c *gin.Context) string {
	return c.GetString(contextKey)
}

// RequestIDFromContext reads the correlation id threaded through the
// request context, for code below the gin layer.
func RequestIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(ctxKey{}).(string)
	return v
}

// roundMillis converts a duration to milliseconds rounded to 3 decimals.
func roundMillis(d time.Duration) float64 {
	ms := float64(d.Nanoseconds()) / 1e6
	return math.Round(ms*1000) / 1000
}
