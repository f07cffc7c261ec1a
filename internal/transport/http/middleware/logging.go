package middleware

import (
	"context"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/you-humble/stock-dashboard/platform/logger"
)

type InfoLogger interface {
	Info(ctx context.Context, msg string, fields ...logger.Field)
}

// Logging copies the chi request id into the logging context and writes one
// line per served request. It must run after chimw.RequestID.
func Logging(l InfoLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if id := chimw.GetReqID(ctx); id != "" {
				ctx = logger.WithRequestID(ctx, id)
				r = r.WithContext(ctx)
			}

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			l.Info(ctx, "http request served",
				logger.String("method", r.Method),
				logger.String("path", r.URL.Path),
				logger.Int("status", ww.Status()),
				logger.Int("bytes", ww.BytesWritten()),
				logger.Duration("duration", time.Since(start)),
			)
		})
	}
}
