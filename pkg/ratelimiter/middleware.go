package ratelimiter

import (
	"net/http"
	"strconv"
	"time"
)

// KeyFunc derives the bucket key of a request. An empty key bypasses the
// limiter.
type KeyFunc func(r *http.Request) string

type middlewareOptions struct {
	denied  http.Handler
	onError func(r *http.Request, err error)
	now     func() time.Time
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareOptions)

// WithDeniedHandler renders the response for requests over the limit. The
// rate limit headers are already set when it runs.
func WithDeniedHandler(h http.Handler) MiddlewareOption {
	return func(o *middlewareOptions) {
		if h != nil {
			o.denied = h
		}
	}
}

// WithErrorHook is called when the store fails. The request is let through.
func WithErrorHook(fn func(r *http.Request, err error)) MiddlewareOption {
	return func(o *middlewareOptions) { o.onError = fn }
}

// Middleware limits requests per key and sets X-RateLimit-* headers.
func Middleware(b *Bucket, key KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	o := &middlewareOptions{
		denied: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, err := b.Allow(r.Context(), k)
			if err != nil {
				if o.onError != nil {
					o.onError(r, err)
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(res.Remaining, 0)))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				seconds := int((res.RetryAfter(o.now()) + time.Second - 1) / time.Second)
				w.Header().Set("Retry-After", strconv.Itoa(max(seconds, 1)))
				o.denied.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
