package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns booking router. Guests may check availability and book;
// reading and managing bookings requires an admin token.
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	// Public routes
	r.Get("/availability", h.Availability)
	r.Post("/", h.Create)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.List)
		r.Get("/{id}", h.GetByID)
		r.Patch("/{id}/status", h.UpdateStatus)
		r.Patch("/{id}/payment", h.UpdatePayment)
	})

	return r
}
