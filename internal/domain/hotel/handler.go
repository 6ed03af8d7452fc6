package hotel

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

// Handler handles hotel HTTP requests
type Handler struct {
	service *Service
	files   *upload.Handler
}

// NewHandler creates hotel handler
func NewHandler(service *Service, files *upload.Handler) *Handler {
	return &Handler{service: service, files: files}
}

// List handles GET /hotels?category=&district_id=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	districtID, err := request.QueryInt64(r, "district_id")
	if err != nil {
		response.BadRequest(w, "Invalid district_id")
		return
	}
	h.list(w, r, Filter{Category: request.QueryString(r, "category"), DistrictID: districtID})
}

// ListByCategory handles GET /hotels/category/{category}
func (h *Handler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	h.list(w, r, Filter{Category: &category})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, filter Filter) {
	hotels, err := h.service.List(r.Context(), filter)
	if err != nil {
		errorhandler.Internal(r.Context(), w, err)
		return
	}

	items := make([]*HotelResponse, len(hotels))
	for i, hotel := range hotels {
		items[i] = HotelResponseFromEntity(hotel, h.files)
	}
	response.OK(w, items)
}

// GetByID handles GET /hotels/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid hotel ID")
		return
	}

	hotel, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, HotelResponseFromEntity(hotel, h.files))
}

// GetBySlug handles GET /hotels/slug/{slug}
func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.service.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, HotelResponseFromEntity(hotel, h.files))
}

// Create handles POST /hotels
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateHotelRequest
	image, err := request.Bind(r, &req)
	if err != nil {
		request.WriteBindError(w, err)
		return
	}

	hotel, err := h.service.Create(r.Context(), &req, image)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.Created(w, HotelResponseFromEntity(hotel, h.files))
}

// Update handles PUT /hotels/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid hotel ID")
		return
	}

	var req UpdateHotelRequest
	image, err := request.Bind(r, &req)
	if err != nil {
		request.WriteBindError(w, err)
		return
	}

	hotel, err := h.service.Update(r.Context(), id, &req, image)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, HotelResponseFromEntity(hotel, h.files))
}

// Delete handles DELETE /hotels/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid hotel ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	response.Message(w, "Hotel deleted")
}

// ListRooms handles GET /hotels/{id}/rooms
func (h *Handler) ListRooms(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid hotel ID")
		return
	}

	rooms, err := h.service.ListRooms(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	items := make([]*RoomResponse, len(rooms))
	for i, room := range rooms {
		items[i] = RoomResponseFromEntity(room)
	}
	response.OK(w, items)
}

// GetRoom handles GET /hotels/rooms/{roomId}
func (h *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "roomId")
	if err != nil {
		response.BadRequest(w, "Invalid room ID")
		return
	}

	room, err := h.service.GetRoom(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, RoomResponseFromEntity(room))
}

// CreateRoom handles POST /hotels/{id}/rooms
func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid hotel ID")
		return
	}

	var req CreateRoomRequest
	if _, err := request.Bind(r, &req); err != nil {
		request.WriteBindError(w, err)
		return
	}

	room, err := h.service.CreateRoom(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.Created(w, RoomResponseFromEntity(room))
}

// UpdateRoom handles PUT /hotels/rooms/{roomId}
func (h *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "roomId")
	if err != nil {
		response.BadRequest(w, "Invalid room ID")
		return
	}

	var req UpdateRoomRequest
	if _, err := request.Bind(r, &req); err != nil {
		request.WriteBindError(w, err)
		return
	}

	room, err := h.service.UpdateRoom(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, RoomResponseFromEntity(room))
}

// DeleteRoom handles DELETE /hotels/rooms/{roomId}
func (h *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "roomId")
	if err != nil {
		response.BadRequest(w, "Invalid room ID")
		return
	}

	if err := h.service.DeleteRoom(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	response.Message(w, "Room deleted")
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrHotelNotFound):
		response.NotFound(w, "Hotel not found")
	case errors.Is(err, ErrRoomNotFound):
		response.NotFound(w, "Room not found")
	case errors.Is(err, ErrUnknownDistrict):
		response.BadRequest(w, "District does not exist")
	case errors.Is(err, ErrRoomHasBookings):
		response.BadRequest(w, "Room has bookings and cannot be deleted")
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
