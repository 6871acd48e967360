package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRecovery)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
		r.Get("/articles", h.listArticles)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/articles", h.submitArticle)
	})

	// an unmatched path and an unmatched method on a known path both
	// fall through to the same structured 404
	router.NotFound(routeNotFound)
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		routeNotFound(w, r)
	})

	return router
}
