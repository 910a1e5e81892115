package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withSession)

	router.Route("/asknow", func(r chi.Router) {
		r.Get("/demo", h.demo)

		// The JSON endpoint is also consumed cross-origin by other demo
		// front ends.
		r.Group(func(r chi.Router) {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: []string{"*"},
				AllowedMethods: []string{http.MethodGet},
			}))
			r.Get("/json", h.answerJSON)
		})

		r.Get("/signup", h.signUpForm)
		r.Post("/signup", h.signUp)
		r.Get("/login", h.loginForm)
		r.Post("/login", h.login)
		r.Get("/logout", h.logout)
	})

	return router
}
