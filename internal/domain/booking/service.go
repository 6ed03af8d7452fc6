package booking

import (
	"context"
	"errors"
	"time"

	"github.com/devbhoomi/tourism-api/internal/pkg/logger"
	"github.com/devbhoomi/tourism-api/internal/pkg/metrics"
)

const defaultGuests = 1

// Service handles booking business logic
type Service struct {
	repo Repository
}

// NewService creates booking service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filter Filter) ([]*Booking, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

// IsAvailable reports whether no active booking of the room overlaps [checkIn, checkOut)
func (s *Service) IsAvailable(ctx context.Context, roomID int64, checkIn, checkOut string) (bool, time.Time, time.Time, error) {
	in, out, err := ParseRange(checkIn, checkOut)
	if err != nil {
		return false, in, out, err
	}
	available, err := s.repo.IsAvailable(ctx, roomID, in, out)
	return available, in, out, err
}

// Create books a room in pending state. The price is nights times the room rate.
func (s *Service) Create(ctx context.Context, req *CreateBookingRequest) (*Booking, error) {
	in, out, err := ParseRange(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	b := &Booking{
		RoomID:          req.RoomID,
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		CheckInDate:     in,
		CheckOutDate:    out,
		Guests:          req.Guests,
		Status:          StatusPending,
		PaymentStatus:   PaymentUnpaid,
		SpecialRequests: req.SpecialRequests,
	}
	if b.Guests == 0 {
		b.Guests = defaultGuests
	}

	if err := s.repo.Create(ctx, b); err != nil {
		s.observeConflict(ctx, b.RoomID, err)
		return nil, err
	}

	logger.FromContext(ctx).Info().
		Int64("booking_id", b.ID).
		Int64("room_id", b.RoomID).
		Str("check_in", day(in)).
		Str("check_out", day(out)).
		Msg("Booking created")
	return b, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*Booking, error) {
	b, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		s.observeConflict(ctx, 0, err)
		return nil, err
	}
	return b, nil
}

func (s *Service) UpdatePaymentStatus(ctx context.Context, id int64, paymentStatus string) (*Booking, error) {
	return s.repo.UpdatePaymentStatus(ctx, id, paymentStatus)
}

func (s *Service) observeConflict(ctx context.Context, roomID int64, err error) {
	if !errors.Is(err, ErrRoomUnavailable) {
		return
	}
	metrics.ObserveBookingConflict()
	logger.FromContext(ctx).Warn().Int64("room_id", roomID).Msg("Booking rejected, dates overlap")
}

// ParseRange parses YYYY-MM-DD dates and requires check-out after check-in
func ParseRange(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := time.Parse(time.DateOnly, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	out, err := time.Parse(time.DateOnly, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	if !out.After(in) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return in, out, nil
}
