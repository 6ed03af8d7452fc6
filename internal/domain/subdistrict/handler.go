package subdistrict

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

// Handler handles subdistrict HTTP requests
type Handler struct {
	service *Service
	files   *upload.Handler
}

// NewHandler creates subdistrict handler
func NewHandler(service *Service, files *upload.Handler) *Handler {
	return &Handler{service: service, files: files}
}

// List handles GET /subdistricts?district_id=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	districtID, err := request.QueryInt64(r, "district_id")
	if err != nil {
		response.BadRequest(w, "Invalid district_id")
		return
	}
	h.list(w, r, districtID)
}

// ListByDistrict handles GET /subdistricts/district/{districtId}
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

	out := make([]*SubdistrictResponse, len(items))
	for i, s := range items {
		out[i] = SubdistrictResponseFromEntity(s, h.files)
	}
	response.OK(w, out)
}

// GetByID handles GET /subdistricts/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid subdistrict ID")
		return
	}

	s, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, SubdistrictResponseFromEntity(s, h.files))
}

// GetBySlug handles GET /subdistricts/slug/{slug}
func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	s, err := h.service.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, SubdistrictResponseFromEntity(s, h.files))
}

// Create handles POST /subdistricts
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSubdistrictRequest
	image, err := request.Bind(r, &req)
	if err != nil {
		request.WriteBindError(w, err)
		return
	}

	s, err := h.service.Create(r.Context(), &req, image)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.Created(w, SubdistrictResponseFromEntity(s, h.files))
}

// Update handles PUT /subdistricts/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid subdistrict ID")
		return
	}

	var req UpdateSubdistrictRequest
	image, err := request.Bind(r, &req)
	if err != nil {
		request.WriteBindError(w, err)
		return
	}

	s, err := h.service.Update(r.Context(), id, &req, image)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, SubdistrictResponseFromEntity(s, h.files))
}

// Delete handles DELETE /subdistricts/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid subdistrict ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	response.Message(w, "Subdistrict deleted")
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrSubdistrictNotFound):
		response.NotFound(w, "Subdistrict not found")
	case errors.Is(err, ErrUnknownDistrict):
		response.BadRequest(w, "District does not exist")
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
