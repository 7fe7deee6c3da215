package http

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/aretw0/workshop/internal/metrics"
	"github.com/aretw0/workshop/pkg/greeting"
	"github.com/go-chi/chi/v5"
)

type handlerConfig struct {
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// Option configures the handler built by NewHandler.
type Option func(*handlerConfig)

// WithMetrics counts and times requests to the root route.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *handlerConfig) {
		c.metrics = m
	}
}

// WithLogger sets the logger used to report failed writes.
func WithLogger(logger *slog.Logger) Option {
	return func(c *handlerConfig) {
		c.logger = logger
	}
}

// NewHandler creates the HTTP handler for the workshop app.
// It registers GET / only; every other path or method gets chi's 404 or 405.
func NewHandler(opts ...Option) http.Handler {
	cfg := handlerConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	var root http.Handler = getRoot(cfg.logger)
	if cfg.metrics != nil {
		root = cfg.metrics.Instrument(root)
	}

	r := chi.NewRouter()
	r.Method(http.MethodGet, "/", root)
	return r
}

// getRoot handles GET / with the workshop greeting and the default content type.
func getRoot(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.WriteString(w, greeting.WorkshopMessage); err != nil {
			logger.Debug("GetRoot: write failed", "error", err)
		}
	}
}
