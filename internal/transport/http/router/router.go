package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"userservice/internal/metrics"
	"userservice/internal/transport/http/handlers"
	"userservice/internal/transport/http/middleware"
)

// Deps carries everything the route table needs.
type Deps struct {
	Users    *handlers.UserHandler
	Health   *handlers.HealthHandler
	Verifier middleware.TokenVerifier
	Loader   middleware.UserLoader
}

// New mounts the full route table.
func New(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID())
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics())
	r.Use(chimw.Timeout(60 * time.Second))

	r.Get("/healthz", d.Health.Check)
	r.Get("/metrics", metrics.Handler().ServeHTTP)

	gate := middleware.Auth(d.Verifier, d.Loader)
	reactivateGate := middleware.AuthAllowInactive(d.Verifier, d.Loader)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", d.Users.Register)
			r.Post("/login", d.Users.Login)
			r.With(gate).Get("/validate", d.Users.ValidateToken)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", d.Users.Register)

			r.Group(func(pr chi.Router) {
				pr.Use(gate)
				pr.Get("/", d.Users.List)
				pr.Get("/me", d.Users.Me)
				pr.Get("/{id}", d.Users.GetByID)
				pr.Put("/{id}", d.Users.Update)
				pr.Delete("/{id}", d.Users.Delete)
			})

			// The owner of a deactivated account still needs to reach this.
			r.With(reactivateGate).Post("/{id}/reactivate", d.Users.Reactivate)
		})
	})

	return r
}
