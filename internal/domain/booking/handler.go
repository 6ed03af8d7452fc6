package booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/devbhoomi/tourism-api/internal/pkg/errorhandler"
	"github.com/devbhoomi/tourism-api/internal/pkg/request"
	"github.com/devbhoomi/tourism-api/internal/pkg/response"
)

// Handler handles booking HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates booking handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /bookings?room_id=&status=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	roomID, err := request.QueryInt64(r, "room_id")
	if err != nil {
		response.BadRequest(w, "Invalid room_id")
		return
	}

	bookings, err := h.service.List(r.Context(), Filter{RoomID: roomID, Status: request.QueryString(r, "status")})
	if err != nil {
		errorhandler.Internal(r.Context(), w, err)
		return
	}

	items := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = BookingResponseFromEntity(b)
	}
	response.OK(w, items)
}

// GetByID handles GET /bookings/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	b, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, BookingResponseFromEntity(b))
}

// Availability handles GET /bookings/availability?room_id=&check_in=&check_out=
func (h *Handler) Availability(w http.ResponseWriter, r *http.Request) {
	roomID, err := request.QueryInt64(r, "room_id")
	if err != nil || roomID == nil {
		response.BadRequest(w, "room_id is required")
		return
	}

	q := r.URL.Query()
	available, in, out, err := h.service.IsAvailable(r.Context(), *roomID, q.Get("check_in"), q.Get("check_out"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.OK(w, AvailabilityResponse{
		RoomID:       *roomID,
		CheckInDate:  in.Format(time.DateOnly),
		CheckOutDate: out.Format(time.DateOnly),
		Nights:       Nights(in, out),
		Available:    available,
	})
}

// Create handles POST /bookings
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if _, err := request.Bind(r, &req); err != nil {
		request.WriteBindError(w, err)
		return
	}

	b, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.Created(w, BookingResponseFromEntity(b))
}

// UpdateStatus handles PATCH /bookings/{id}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	var req UpdateStatusRequest
	if _, err := request.Bind(r, &req); err != nil {
		request.WriteBindError(w, err)
		return
	}

	b, err := h.service.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, BookingResponseFromEntity(b))
}

// UpdatePayment handles PATCH /bookings/{id}/payment
func (h *Handler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	var req UpdatePaymentRequest
	if _, err := request.Bind(r, &req); err != nil {
		request.WriteBindError(w, err)
		return
	}

	b, err := h.service.UpdatePaymentStatus(r.Context(), id, req.PaymentStatus)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response.OK(w, BookingResponseFromEntity(b))
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrBookingNotFound):
		response.NotFound(w, "Booking not found")
	case errors.Is(err, ErrRoomNotFound):
		response.NotFound(w, "Room not found")
	case errors.Is(err, ErrRoomUnavailable):
		response.Conflict(w, "Room is already booked for the selected dates")
	case errors.Is(err, ErrInvalidDateRange):
		response.BadRequest(w, "Check-out date must be after check-in date (YYYY-MM-DD)")
	case errors.Is(err, ErrCapacityExceeded):
		response.BadRequest(w, "Number of guests exceeds room capacity")
	default:
		errorhandler.Internal(r.Context(), w, err)
	}
}
