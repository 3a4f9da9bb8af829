package httpapi

import (
	"net/http"
	"time"

	"tagsmith/internal/http/handlers"
	"tagsmith/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Options configures the middleware stack around the handlers.
type Options struct {
	AllowedOrigins  []string
	RateLimitPerMin int
	CountryLookup   middleware.CountryLookup
	MetricsHandler  http.Handler
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimw.RealIP,
		middleware.RequestID,
		middleware.Country(opts.CountryLookup),
		middleware.Logger(app.Logger),
		chimw.Recoverer,
		middleware.CORS(opts.AllowedOrigins),
	)

	// Health
	r.Get("/health", app.Health)
	r.Get("/v1/healthz", app.Healthz)
	if opts.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", opts.MetricsHandler)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(opts.RateLimitPerMin, time.Minute))

		r.Route("/api", func(r chi.Router) {
			r.Post("/generate-tags", app.GenerateTags)
			r.Get("/generate-tags", app.GenerateTags)
			r.Get("/categories", app.Categories)
		})
		r.Post("/generate-tags", app.GenerateTags)
	})

	return r
}
