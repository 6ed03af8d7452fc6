package booking

import (
	"time"
)

type CreateBookingRequest struct {
	RoomID          int64   `json:"room_id" form:"room_id" validate:"required,gt=0"`
	GuestName       string  `json:"guest_name" form:"guest_name" validate:"required,min=2,max=255"`
	GuestEmail      string  `json:"guest_email" form:"guest_email" validate:"required,email,max=255"`
	GuestPhone      *string `json:"guest_phone" form:"guest_phone" validate:"omitempty,max=50"`
	CheckInDate     string  `json:"check_in_date" form:"check_in_date" validate:"required,date"`
	CheckOutDate    string  `json:"check_out_date" form:"check_out_date" validate:"required,date"`
	Guests          int     `json:"guests" form:"guests" validate:"omitempty,min=1,max=50"`
	SpecialRequests *string `json:"special_requests" form:"special_requests" validate:"omitempty,max=2000"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" form:"status" validate:"required,oneof=pending confirmed cancelled"`
}

type UpdatePaymentRequest struct {
	PaymentStatus string `json:"payment_status" form:"payment_status" validate:"required,oneof=unpaid paid refunded"`
}

type BookingResponse struct {
	ID              int64     `json:"id"`
	RoomID          int64     `json:"room_id"`
	GuestName       string    `json:"guest_name"`
	GuestEmail      string    `json:"guest_email"`
	GuestPhone      *string   `json:"guest_phone"`
	CheckInDate     string    `json:"check_in_date"`
	CheckOutDate    string    `json:"check_out_date"`
	Nights          int       `json:"nights"`
	Guests          int       `json:"guests"`
	TotalPrice      float64   `json:"total_price"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"payment_status"`
	SpecialRequests *string   `json:"special_requests"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AvailabilityResponse struct {
	RoomID       int64  `json:"room_id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Nights       int    `json:"nights"`
	Available    bool   `json:"available"`
}

func BookingResponseFromEntity(b *Booking) *BookingResponse {
	return &BookingResponse{
		ID:              b.ID,
		RoomID:          b.RoomID,
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		GuestPhone:      b.GuestPhone,
		CheckInDate:     b.CheckInDate.Format(time.DateOnly),
		CheckOutDate:    b.CheckOutDate.Format(time.DateOnly),
		Nights:          b.Nights(),
		Guests:          b.Guests,
		TotalPrice:      b.TotalPrice,
		Status:          b.Status,
		PaymentStatus:   b.PaymentStatus,
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
