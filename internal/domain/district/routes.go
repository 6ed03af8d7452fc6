package district

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns district router
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	// Public routes
	r.Get("/", h.List)
	r.Get("/state/{stateName}", h.ListByState)
	r.Get("/slug/{slug}", h.GetBySlug)
	r.Get("/{id}", h.GetByID)
	r.Get("/{id}/images", h.ListImages)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
		r.Post("/{id}/images", h.AddImage)
		r.Delete("/images/{id}", h.DeleteImage)
	})

	return r
}
