package state

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

// Handler handles state HTTP requests
type Handler struct {
	service *Service
	files   *upload.Handler
}

// NewHandler creates state handler
func NewHandler(service *Service, files *upload.Handler) *Handler {
	return &Handler{service: service, files: files}
}

// List handles GET /states
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	states, err := h.service.List(r.Context())
	if err != nil {
		errorhandler.Internal(r.Context(), w, err)
		return
	}

	items := make([]*StateResponse, len(states))
	for i, s := range states {
		items[i] = StateResponseFromEntity(s, h.files)
	}
	response.OK(w, items)
}

// Get handles GET /states/{key}; key is an id, a slug or a name
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	st, err := h.service.Get(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, StateResponseFromEntity(st, h.files))
}

// Create handles POST /states
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateStateRequest
	image, err := request.Bind(r, &req)
	if err != nil {
		request.WriteBindError(w, err)
		return
	}

	st, err := h.service.Create(r.Context(), &req, image)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.Created(w, StateResponseFromEntity(st, h.files))
}

// Update handles PUT /states/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "key")
	if err != nil {
		response.BadRequest(w, "Invalid state ID")
		return
	}

	var req UpdateStateRequest
	image, err := request.Bind(r, &req)
	if err != nil {
		request.WriteBindError(w, err)
		return
	}

	st, err := h.service.Update(r.Context(), id, &req, image)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, StateResponseFromEntity(st, h.files))
}

// Delete handles DELETE /states/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "key")
	if err != nil {
		response.BadRequest(w, "Invalid state ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	response.Message(w, "State and related data deleted")
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrStateNotFound):
		response.NotFound(w, "State not found")
	case errors.Is(err, ErrImageNotFound):
		response.NotFound(w, "State image not found")
	case errors.Is(err, ErrHistoryNotFound):
		response.NotFound(w, "History entry not found")
	case errors.Is(err, ErrSlugTaken):
		response.Conflict(w, "Slug already in use")
	case errors.Is(err, ErrNameTaken):
		response.Conflict(w, "State name already in use")
	case errors.Is(err, ErrImageRequired):
		response.BadRequest(w, "Image file is required")
	case errors.Is(err, slug.ErrEmpty):
		response.BadRequest(w, "Name cannot be converted to a slug")
	case errors.Is(err, upload.ErrRejected):
		response.BadRequest(w, err.Error())
	default:
		errorhandler.Internal(r.Context(), w, err)
	}
}
