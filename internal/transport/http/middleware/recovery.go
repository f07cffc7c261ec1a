package middleware

import (
	"context"
	"net/http"

	"github.com/you-humble/stock-dashboard/platform/logger"
)

type ErrorLogger interface {
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

func Recovery(l ErrorLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler { //nolint:errorlint
					panic(rec)
				}

				l.Error(r.Context(), "recovered from panic in request handler",
					logger.String("path", r.URL.Path),
					logger.Any("panic", rec),
				)
				writeError(w, http.StatusInternalServerError, "internal error")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
