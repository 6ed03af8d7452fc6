package village

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

// Handler handles village HTTP requests
type Handler struct {
	service *Service
	files   *upload.Handler
}

// NewHandler creates village handler
func NewHandler(service *Service, files *upload.Handler) *Handler {
	return &Handler{service: service, files: files}
}

// List handles GET /villages?territory_id=&subdistrict_id=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var (
		filter Filter
		err    error
	)
	if filter.TerritoryID, err = request.QueryInt64(r, "territory_id"); err != nil {
		response.BadRequest(w, "Invalid territory_id")
		return
	}
	if filter.SubdistrictID, err = request.QueryInt64(r, "subdistrict_id"); err != nil {
		response.BadRequest(w, "Invalid subdistrict_id")
		return
	}

	villages, err := h.service.List(r.Context(), filter)
	if err != nil {
		errorhandler.Internal(r.Context(), w, err)
		return
	}

	items := make([]*VillageResponse, len(villages))
	for i, v := range villages {
		items[i] = VillageResponseFromEntity(v, h.files)
	}
	response.OK(w, items)
}

// GetByID handles GET /villages/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid village ID")
		return
	}

	v, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, VillageResponseFromEntity(v, h.files))
}

// GetBySlug handles GET /villages/slug/{slug}
func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	v, err := h.service.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, VillageResponseFromEntity(v, h.files))
}

// Create handles POST /villages
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateVillageRequest
	image, err := request.Bind(r, &req)
	if err != nil {
		request.WriteBindError(w, err)
		return
	}

	v, err := h.service.Create(r.Context(), &req, image)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.Created(w, VillageResponseFromEntity(v, h.files))
}

// Update handles PUT /villages/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid village ID")
		return
	}

	var req UpdateVillageRequest
	image, err := request.Bind(r, &req)
	if err != nil {
		request.WriteBindError(w, err)
		return
	}

	v, err := h.service.Update(r.Context(), id, &req, image)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, VillageResponseFromEntity(v, h.files))
}

// Delete handles DELETE /villages/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid village ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	response.Message(w, "Village deleted")
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrVillageNotFound):
		response.NotFound(w, "Village not found")
	case errors.Is(err, ErrUnknownParent):
		response.BadRequest(w, "Territory or subdistrict does not exist")
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
