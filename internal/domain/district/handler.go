package district

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

// Handler handles district HTTP requests
type Handler struct {
	service *Service
	files   *upload.Handler
}

// NewHandler creates district handler
func NewHandler(service *Service, files *upload.Handler) *Handler {
	return &Handler{service: service, files: files}
}

// List handles GET /districts
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var (
		districts []*District
		err       error
	)
	if state := request.QueryString(r, "state"); state != nil {
		districts, err = h.service.ListByState(r.Context(), *state)
	} else {
		districts, err = h.service.List(r.Context())
	}
	if err != nil {
		errorhandler.Internal(r.Context(), w, err)
		return
	}
	h.writeList(w, districts)
}

// ListByState handles GET /districts/state/{stateName}
func (h *Handler) ListByState(w http.ResponseWriter, r *http.Request) {
	districts, err := h.service.ListByState(r.Context(), chi.URLParam(r, "stateName"))
	if err != nil {
		errorhandler.Internal(r.Context(), w, err)
		return
	}
	h.writeList(w, districts)
}

// GetByID handles GET /districts/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid district ID")
		return
	}

	d, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, DistrictResponseFromEntity(d, h.files))
}

// GetBySlug handles GET /districts/slug/{slug}
func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	d, err := h.service.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, DistrictResponseFromEntity(d, h.files))
}

// Create handles POST /districts
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateDistrictRequest
	image, err := request.Bind(r, &req)
	if err != nil {
		request.WriteBindError(w, err)
		return
	}

	d, err := h.service.Create(r.Context(), &req, image)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.Created(w, DistrictResponseFromEntity(d, h.files))
}

// Update handles PUT /districts/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid district ID")
		return
	}

	var req UpdateDistrictRequest
	image, err := request.Bind(r, &req)
	if err != nil {
		request.WriteBindError(w, err)
		return
	}

	d, err := h.service.Update(r.Context(), id, &req, image)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, DistrictResponseFromEntity(d, h.files))
}

// Delete handles DELETE /districts/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid district ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	response.Message(w, "District deleted")
}

// ListImages handles GET /districts/{id}/images
func (h *Handler) ListImages(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid district ID")
		return
	}

	images, err := h.service.ListImages(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	items := make([]*ImageResponse, len(images))
	for i, img := range images {
		items[i] = ImageResponseFromEntity(img, h.files)
	}
	response.OK(w, items)
}

// AddImage handles POST /districts/{id}/images
func (h *Handler) AddImage(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid district ID")
		return
	}

	var req CreateImageRequest
	image, err := request.Bind(r, &req)
	if err != nil {
		request.WriteBindError(w, err)
		return
	}

	img, err := h.service.AddImage(r.Context(), id, &req, image)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.Created(w, ImageResponseFromEntity(img, h.files))
}

// DeleteImage handles DELETE /districts/images/{id}
func (h *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid image ID")
		return
	}

	if err := h.service.DeleteImage(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	response.Message(w, "Image deleted")
}

func (h *Handler) writeList(w http.ResponseWriter, districts []*District) {
	items := make([]*DistrictResponse, len(districts))
	for i, d := range districts {
		items[i] = DistrictResponseFromEntity(d, h.files)
	}
	response.OK(w, items)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrDistrictNotFound):
		response.NotFound(w, "District not found")
	case errors.Is(err, ErrImageNotFound):
		response.NotFound(w, "Image not found")
	case errors.Is(err, ErrUnknownState):
		response.BadRequest(w, "State does not exist")
	case errors.Is(err, ErrSlugTaken):
		response.Conflict(w, "Slug already in use")
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
