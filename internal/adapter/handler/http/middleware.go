package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jvillalobos/ventasapi/internal/adapter/metrics"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"
const requestIDKey = "request_id"

// requestID tags every request with an id, echoing a caller-supplied
// one when present.
func requestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		rid := ctx.GetHeader(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		ctx.Set(requestIDKey, rid)
		ctx.Writer.Header().Set(requestIDHeader, rid)

		ctx.Next()
	}
}

// accessLog writes one structured line per request and feeds the
// request counter.
func accessLog(logger *zap.Logger, m *metrics.Metrics) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		status := ctx.Writer.Status()
		m.HTTPRequests.WithLabelValues(
			ctx.Request.Method,
			ctx.FullPath(),
			strconv.Itoa(status),
		).Inc()

		logger.Info("request",
			zap.String(requestIDKey, ctx.GetString(requestIDKey)),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}
