package gallery

import (
	"errors"
	"net/http"

	"github.com/devbhoomi/tourism-api/internal/pkg/errorhandler"
	"github.com/devbhoomi/tourism-api/internal/pkg/request"
	"github.com/devbhoomi/tourism-api/internal/pkg/response"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload"
)

type Handler struct {
	service *Service
	files   *upload.Handler
}

func NewHandler(service *Service, files *upload.Handler) *Handler {
	return &Handler{service: service, files: files}
}

// List handles GET /gallery?category=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	images, err := h.service.List(r.Context(), request.QueryString(r, "category"))
	if err != nil {
		errorhandler.Internal(r.Context(), w, err)
		return
	}

	items := make([]*ImageResponse, len(images))
	for i, img := range images {
		items[i] = ImageResponseFromEntity(img, h.files)
	}
	response.OK(w, items)
}

// GetByID handles GET /gallery/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid image ID")
		return
	}

	img, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, ImageResponseFromEntity(img, h.files))
}

// Create handles POST /gallery
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateImageRequest
	image, err := request.Bind(r, &req)
	if err != nil {
		request.WriteBindError(w, err)
		return
	}

	img, err := h.service.Create(r.Context(), &req, image)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.Created(w, ImageResponseFromEntity(img, h.files))
}

// Update handles PUT /gallery/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid image ID")
		return
	}

	var req UpdateImageRequest
	image, err := request.Bind(r, &req)
	if err != nil {
		request.WriteBindError(w, err)
		return
	}

	img, err := h.service.Update(r.Context(), id, &req, image)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, ImageResponseFromEntity(img, h.files))
}

// Delete handles DELETE /gallery/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid image ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	response.Message(w, "Image deleted")
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrImageNotFound):
		response.NotFound(w, "Image not found")
	case errors.Is(err, ErrImageRequired):
		response.BadRequest(w, "Image file is required")
	case errors.Is(err, upload.ErrRejected):
		response.BadRequest(w, err.Error())
	default:
		errorhandler.Internal(r.Context(), w, err)
	}
}
