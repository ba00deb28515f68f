package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/goldsaver/memberkit/pkg/clientip"
	"github.com/goldsaver/memberkit/pkg/logger"
	"github.com/goldsaver/memberkit/pkg/ratelimiter"
)

// requestLogger logs one line per request once the handler has returned.
// Server errors are logged at error level, client errors at warn.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			level := slog.LevelInfo
			switch {
			case status >= http.StatusInternalServerError:
				level = slog.LevelError
			case status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}

			pattern := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				pattern = rctx.RoutePattern()
			}
			log.LogAttrs(r.Context(), level, "http request",
				slog.String("method", r.Method),
				logger.Handler(pattern),
				logger.Status(status),
				slog.Int("bytes", ww.BytesWritten()),
				logger.Duration(time.Since(start)),
			)
		})
	}
}

// limitBody caps request bodies at n bytes.
func limitBody(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, n)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// fieldRateLimit keys the bucket by client address and answers denied
// requests with the JSON envelope.
func fieldRateLimit(b *ratelimiter.Bucket, log *slog.Logger) func(http.Handler) http.Handler {
	return ratelimiter.Middleware(b,
		func(r *http.Request) string { return clientip.FromContext(r.Context()) },
		ratelimiter.WithDeniedHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, r, log, ErrTooManyRequests)
		})),
		ratelimiter.WithErrorHook(func(r *http.Request, err error) {
			log.WarnContext(r.Context(), "rate limiter unavailable", logger.Error(err))
		}),
	)
}
