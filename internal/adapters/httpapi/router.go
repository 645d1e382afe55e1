package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/console-catalog/catalog-api/internal/platform/logger"
)

type RouterOptions struct {
	// Logger defaults to the process-wide logger.
	Logger logger.Logger
	// Registry enables /metrics and request metrics when set.
	Registry *prometheus.Registry
}

// NewRouter constructs the API HTTP router.
func NewRouter(s *Server) http.Handler {
	return NewRouterWithOptions(s, RouterOptions{})
}

func NewRouterWithOptions(s *Server, opts RouterOptions) http.Handler {
	l := opts.Logger
	if l == nil {
		l = logger.GetDefault()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(l))
	r.Use(middleware.Recoverer)
	if opts.Registry != nil {
		r.Use(NewMetrics(opts.Registry).Middleware)
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/branding", s.GetBranding)

		r.Route("/catalog/tasks", func(r chi.Router) {
			r.Get("/", s.ListTaskItems)
			r.Post("/", s.ImportTasks)
			r.Delete("/{kind}/{name}", s.DeleteTask)
		})
	})

	// Method checking is done by the handler so non-GET requests get the JSON error body.
	r.HandleFunc("/custom-logo", s.CustomLogo)

	return r
}
