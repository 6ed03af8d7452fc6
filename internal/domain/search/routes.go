package search

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) Routes(limiter func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.With(limiter).Get("/", h.Search)
	return r
}
