package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/incident-desk/internal/config"
	"github.com/heartmarshall/incident-desk/internal/transport/middleware"
)

// RouterDeps holds everything NewRouter mounts.
type RouterDeps struct {
	Logger    *slog.Logger
	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig
	Limiter   middleware.Limiter
	Tokens    middleware.TokenValidator
	Health    *HealthHandler
	Auth      *AuthHandler
	Reports   *ReportHandler
	Classify  *ClassifyHandler
	Locations *LocationHandler
}

// NewRouter builds the HTTP API.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.ClientIP(d.RateLimit.TrustProxy),
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.CORS(d.CORS),
		middleware.Auth(d.Tokens),
	)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	limit := func(scope string, perMinute int) func(http.Handler) http.Handler {
		return middleware.RateLimit(d.Limiter, scope, perMinute, d.Logger)
	}

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)

	r.Route("/auth", func(r chi.Router) {
		r.With(limit("login", d.RateLimit.LoginPerMinute)).Post("/register", d.Auth.Register)
		r.With(limit("login", d.RateLimit.LoginPerMinute)).Post("/login", d.Auth.Login)
		r.With(middleware.RequireOperator).Get("/me", d.Auth.Me)
	})

	r.Route("/reports", func(r chi.Router) {
		submit := r.With(limit("submit", d.RateLimit.SubmitPerMinute))
		submit.Post("/", d.Reports.Submit)
		submit.Post("/create", d.Reports.Submit)

		r.With(middleware.RequireOperator).Get("/", d.Reports.List)

		r.Route("/{reportId}", func(r chi.Router) {
			r.Get("/", d.Reports.Get)
			r.Get("/details", d.Reports.Get)
			r.Get("/image", d.Reports.Image)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireOperator)
				r.Get("/history", d.Reports.History)
				r.Patch("/", d.Reports.Transition)
			})
		})
	})

	r.With(limit("classify", d.RateLimit.ClassifyPerMinute)).Post("/images/classify", d.Classify.Classify)
	r.With(limit("resolve", d.RateLimit.ResolvePerMinute)).Post("/locations/resolve", d.Locations.Resolve)

	return r
}
