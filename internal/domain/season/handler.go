package season

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

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

// List handles GET /seasons?season=&territory_id=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	territoryID, err := request.QueryInt64(r, "territory_id")
	if err != nil {
		response.BadRequest(w, "Invalid territory_id")
		return
	}
	h.list(w, r, Filter{Season: request.QueryString(r, "season"), TerritoryID: territoryID})
}

// ListBySeason handles GET /seasons/season/{season}
func (h *Handler) ListBySeason(w http.ResponseWriter, r *http.Request) {
	name := strings.ToLower(chi.URLParam(r, "season"))
	h.list(w, r, Filter{Season: &name})
}

// ListByTerritory handles GET /seasons/territory/{territoryId}
func (h *Handler) ListByTerritory(w http.ResponseWriter, r *http.Request) {
	territoryID, err := request.ParseID(r, "territoryId")
	if err != nil {
		response.BadRequest(w, "Invalid territory ID")
		return
	}
	h.list(w, r, Filter{TerritoryID: &territoryID, Season: request.QueryString(r, "season")})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, filter Filter) {
	images, err := h.service.List(r.Context(), filter)
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

// GetByID handles GET /seasons/{id}
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

// Create handles POST /seasons
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

// Update handles PUT /seasons/{id}
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

// Delete handles DELETE /seasons/{id}
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
	response.Message(w, "Season image deleted")
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrImageNotFound):
		response.NotFound(w, "Season image not found")
	case errors.Is(err, ErrImageRequired):
		response.BadRequest(w, "Image file is required")
	case errors.Is(err, ErrUnknownTerritory):
		response.BadRequest(w, "Territory does not exist")
	case errors.Is(err, upload.ErrRejected):
		response.BadRequest(w, err.Error())
	default:
		errorhandler.Internal(r.Context(), w, err)
	}
}
