package culture

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/devbhoomi/tourism-api/internal/pkg/errorhandler"
	"github.com/devbhoomi/tourism-api/internal/pkg/request"
	"github.com/devbhoomi/tourism-api/internal/pkg/response"
	"github.com/devbhoomi/tourism-api/internal/pkg/slug"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload"
)

type Handler struct {
	service *Service
	files   *upload.Handler
}

func NewHandler(service *Service, files *upload.Handler) *Handler {
	return &Handler{service: service, files: files}
}

// List handles GET /culture?category=&state=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, Filter{
		Category:  request.QueryString(r, "category"),
		StateName: request.QueryString(r, "state"),
	})
}

// ListByCategory handles GET /culture/category/{category}
func (h *Handler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	h.list(w, r, Filter{Category: &category})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, filter Filter) {
	items, err := h.service.List(r.Context(), filter)
	if err != nil {
		errorhandler.Internal(r.Context(), w, err)
		return
	}

	out := make([]*InfoResponse, len(items))
	for i, info := range items {
		out[i] = InfoResponseFromEntity(info, h.files)
	}
	response.OK(w, out)
}

// GetByID handles GET /culture/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid ID")
		return
	}

	info, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, InfoResponseFromEntity(info, h.files))
}

// GetBySlug handles GET /culture/slug/{slug}
func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	info, err := h.service.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, InfoResponseFromEntity(info, h.files))
}

// Create handles POST /culture
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateInfoRequest
	image, err := request.Bind(r, &req)
	if err != nil {
		request.WriteBindError(w, err)
		return
	}

	info, err := h.service.Create(r.Context(), &req, image)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.Created(w, InfoResponseFromEntity(info, h.files))
}

// Update handles PUT /culture/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid ID")
		return
	}

	var req UpdateInfoRequest
	image, err := request.Bind(r, &req)
	if err != nil {
		request.WriteBindError(w, err)
		return
	}

	info, err := h.service.Update(r.Context(), id, &req, image)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, InfoResponseFromEntity(info, h.files))
}

// Delete handles DELETE /culture/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	response.Message(w, "Cultural info deleted")
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInfoNotFound):
		response.NotFound(w, "Cultural info not found")
	case errors.Is(err, ErrSlugTaken):
		response.Conflict(w, "Slug already in use")
	case errors.Is(err, slug.ErrEmpty):
		response.BadRequest(w, "Title cannot be converted to a slug")
	case errors.Is(err, upload.ErrRejected):
		response.BadRequest(w, err.Error())
	default:
		errorhandler.Internal(r.Context(), w, err)
	}
}
