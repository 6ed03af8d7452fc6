package state

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns state router
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	// Public routes
	r.Get("/", h.List)
	r.Get("/{key}", h.Get)
	r.Get("/{key}/images", h.ListImages)
	r.Get("/{key}/history", h.ListHistory)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/", h.Create)
		r.Put("/{key}", h.Update)
		r.Delete("/{key}", h.Delete)

		r.Post("/{key}/images", h.AddImage)
		r.Delete("/images/{id}", h.DeleteImage)

		r.Post("/{key}/history", h.AddHistory)
		r.Put("/history/{id}", h.UpdateHistory)
		r.Delete("/history/{id}", h.DeleteHistory)
	})

	return r
}
