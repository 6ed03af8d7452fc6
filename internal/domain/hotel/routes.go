package hotel

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns hotel router
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	// Public routes
	r.Get("/", h.List)
	r.Get("/category/{category}", h.ListByCategory)
	r.Get("/slug/{slug}", h.GetBySlug)
	r.Get("/rooms/{roomId}", h.GetRoom)
	r.Get("/{id}", h.GetByID)
	r.Get("/{id}/rooms", h.ListRooms)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
		r.Post("/{id}/rooms", h.CreateRoom)
		r.Put("/rooms/{roomId}", h.UpdateRoom)
		r.Delete("/rooms/{roomId}", h.DeleteRoom)
	})

	return r
}
