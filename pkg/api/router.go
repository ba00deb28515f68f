package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/goldsaver/memberkit/pkg/clientip"
	"github.com/goldsaver/memberkit/pkg/enrollment"
	"github.com/goldsaver/memberkit/pkg/httpserver"
	"github.com/goldsaver/memberkit/pkg/logger"
	"github.com/goldsaver/memberkit/pkg/ratelimiter"
	"github.com/goldsaver/memberkit/pkg/requestid"
)

const defaultMaxBodyBytes = 64 << 10

type options struct {
	logger       *slog.Logger
	checks       map[string]httpserver.Check
	readyTimeout time.Duration
	maxBodyBytes int64
	ipHeaders    []string
	fieldLimiter *ratelimiter.Bucket
}

// Option configures the router.
type Option func(*options)

// WithLogger sets the logger used for request and error logs.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithReadinessCheck adds a named check to GET /health/ready.
func WithReadinessCheck(name string, check httpserver.Check) Option {
	return func(o *options) {
		if check != nil {
			o.checks[name] = check
		}
	}
}

// WithReadyTimeout bounds the readiness checks of one request.
func WithReadyTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.readyTimeout = d
		}
	}
}

// WithMaxBodyBytes caps request body size. Larger bodies get 413.
func WithMaxBodyBytes(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBodyBytes = n
		}
	}
}

// WithTrustedIPHeaders lists the proxy headers consulted for the client
// address, in order.
func WithTrustedIPHeaders(headers ...string) Option {
	return func(o *options) {
		o.ipHeaders = headers
	}
}

// WithFieldRateLimit throttles POST /v1/enrollment/fields/{field} per client
// address. Clients over the limit get 429.
func WithFieldRateLimit(b *ratelimiter.Bucket) Option {
	return func(o *options) {
		o.fieldLimiter = b
	}
}

// NewRouter returns the HTTP API backed by svc:
//
//	POST /v1/enrollment/validate?step=personal|scheme
//	POST /v1/enrollment/fields/{field}
//	GET  /v1/pincodes/{pincode}/cities
//	GET  /health/live
//	GET  /health/ready
func NewRouter(svc *enrollment.Service, opts ...Option) http.Handler {
	o := &options{
		logger:       slog.New(slog.DiscardHandler),
		checks:       make(map[string]httpserver.Check),
		readyTimeout: 2 * time.Second,
		maxBodyBytes: defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(o)
	}
	log := o.logger.With(logger.Component("api"))
	h := &handlers{svc: svc, logger: log}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware(o.ipHeaders...))
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, log, ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, log, ErrMethodNotAllowed)
	})

	r.Get("/health/live", httpserver.Liveness())
	r.Get("/health/ready", httpserver.Readiness(log, o.readyTimeout, o.checks))

	r.Route("/v1", func(r chi.Router) {
		r.Use(limitBody(o.maxBodyBytes))
		r.Post("/enrollment/validate", h.validateStep)
		if o.fieldLimiter != nil {
			r.With(fieldRateLimit(o.fieldLimiter, log)).Post("/enrollment/fields/{field}", h.validateField)
		} else {
			r.Post("/enrollment/fields/{field}", h.validateField)
		}
		r.Get("/pincodes/{pincode}/cities", h.cities)
	})

	return r
}
