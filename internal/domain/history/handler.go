package history

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

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.List(r.Context())
	if err != nil {
		errorhandler.Internal(r.Context(), w, err)
		return
	}

	items := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		items[i] = EntryResponseFromEntity(e, h.files)
	}
	response.OK(w, items)
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid ID")
		return
	}

	entry, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, EntryResponseFromEntity(entry, h.files))
}

func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	entry, err := h.service.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, EntryResponseFromEntity(entry, h.files))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateEntryRequest
	image, err := request.Bind(r, &req)
	if err != nil {
		request.WriteBindError(w, err)
		return
	}

	entry, err := h.service.Create(r.Context(), &req, image)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.Created(w, EntryResponseFromEntity(entry, h.files))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid ID")
		return
	}

	var req UpdateEntryRequest
	image, err := request.Bind(r, &req)
	if err != nil {
		request.WriteBindError(w, err)
		return
	}

	entry, err := h.service.Update(r.Context(), id, &req, image)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, EntryResponseFromEntity(entry, h.files))
}

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
	response.Message(w, "History entry deleted")
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrEntryNotFound):
		response.NotFound(w, "History entry not found")
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
