package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter assembles the public HTTP API. Auth endpoints and the ping probe
// are open; everything else requires a Bearer token.
func NewRouter(authHandler *AuthHandler, locationHandler *LocationHandler, secretKey []byte) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.SignUp)
			r.Post("/signin", authHandler.SignIn)
		})

		r.Group(func(r chi.Router) {
			r.Use(RequireAuth(secretKey))

			r.Route("/locations", func(r chi.Router) {
				r.Get("/", locationHandler.List)
				r.Get("/nearby", locationHandler.Nearby)
				r.Get("/{locationID}", locationHandler.Get)
			})
			r.Get("/categories", locationHandler.Categories)
		})
	})

	return r
}
