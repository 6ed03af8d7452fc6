package attraction

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

// List handles GET /attractions?district_id=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	districtID, err := request.QueryInt64(r, "district_id")
	if err != nil {
		response.BadRequest(w, "Invalid district_id")
		return
	}
	h.list(w, r, districtID)
}

// ListByDistrict handles GET /attractions/district/{districtId}
func (h *Handler) ListByDistrict(w http.ResponseWriter, r *http.Request) {
	districtID, err := request.ParseID(r, "districtId")
	if err != nil {
		response.BadRequest(w, "Invalid district ID")
		return
	}
	h.list(w, r, &districtID)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, districtID *int64) {
	items, err := h.service.List(r.Context(), districtID)
	if err != nil {
		errorhandler.Internal(r.Context(), w, err)
		return
	}

	out := make([]*AttractionResponse, len(items))
	for i, a := range items {
		out[i] = AttractionResponseFromEntity(a, h.files)
	}
	response.OK(w, out)
}

// GetByID handles GET /attractions/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid attraction ID")
		return
	}

	a, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, AttractionResponseFromEntity(a, h.files))
}

// GetBySlug handles GET /attractions/slug/{slug}
func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	a, err := h.service.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, AttractionResponseFromEntity(a, h.files))
}

// Create handles POST /attractions
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAttractionRequest
	image, err := request.Bind(r, &req)
	if err != nil {
		request.WriteBindError(w, err)
		return
	}

	a, err := h.service.Create(r.Context(), &req, image)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.Created(w, AttractionResponseFromEntity(a, h.files))
}

// Update handles PUT /attractions/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid attraction ID")
		return
	}

	var req UpdateAttractionRequest
	image, err := request.Bind(r, &req)
	if err != nil {
		request.WriteBindError(w, err)
		return
	}

	a, err := h.service.Update(r.Context(), id, &req, image)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, AttractionResponseFromEntity(a, h.files))
}

// Delete handles DELETE /attractions/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid attraction ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	response.Message(w, "Attraction deleted")
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrAttractionNotFound):
		response.NotFound(w, "Attraction not found")
	case errors.Is(err, ErrUnknownDistrict):
		response.BadRequest(w, "District does not exist")
	case errors.Is(err, ErrSlugTaken):
		response.Conflict(w, "Slug already in use")
	case errors.Is(err, slug.ErrEmpty):
		response.BadRequest(w, "Name cannot be converted to a slug")
	case errors.Is(err, upload.ErrRejected):
		response.BadRequest(w, err.Error())
	default:
		errorhandler.Internal(r.Context(), w, err)
	}
}
