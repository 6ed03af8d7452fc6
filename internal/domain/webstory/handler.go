package webstory

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
	stories, err := h.service.List(r.Context())
	if err != nil {
		errorhandler.Internal(r.Context(), w, err)
		return
	}

	items := make([]*StoryResponse, len(stories))
	for i, s := range stories {
		items[i] = StoryResponseFromEntity(s, h.files)
	}
	response.OK(w, items)
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid ID")
		return
	}

	story, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, StoryResponseFromEntity(story, h.files))
}

func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	story, err := h.service.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, StoryResponseFromEntity(story, h.files))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateStoryRequest
	cover, err := request.Bind(r, &req)
	if err != nil {
		request.WriteBindError(w, err)
		return
	}

	story, err := h.service.Create(r.Context(), &req, cover)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.Created(w, StoryResponseFromEntity(story, h.files))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid ID")
		return
	}

	var req UpdateStoryRequest
	cover, err := request.Bind(r, &req)
	if err != nil {
		request.WriteBindError(w, err)
		return
	}

	story, err := h.service.Update(r.Context(), id, &req, cover)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, StoryResponseFromEntity(story, h.files))
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
	response.Message(w, "Web story deleted")
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrStoryNotFound):
		response.NotFound(w, "Web story not found")
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
