package booking

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/devbhoomi/tourism-api/internal/pkg/database"
)

// Repository defines booking data access interface
type Repository interface {
	List(ctx context.Context, filter Filter) ([]*Booking, error)
	GetByID(ctx context.Context, id int64) (*Booking, error)
	IsAvailable(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error)
	// Create locks the room, rejects overlapping stays, prices and inserts the booking atomically
	Create(ctx context.Context, b *Booking) error
	UpdateStatus(ctx context.Context, id int64, status string) (*Booking, error)
	UpdatePaymentStatus(ctx context.Context, id int64, paymentStatus string) (*Booking, error)
}

type repository struct {
	db *sqlx.DB
}

const columns = `
	id, room_id, guest_name, guest_email, guest_phone, check_in_date, check_out_date,
	guests, total_price, status, payment_status, special_requests, created_at, updated_at
`

// Two stays collide when existing.check_in < new.check_out AND existing.check_out > new.check_in
const overlapQuery = `
	SELECT EXISTS(
		SELECT 1 FROM bookings
		WHERE room_id = $1
		  AND status <> 'cancelled'
		  AND check_in_date < $3::DATE
		  AND check_out_date > $2::DATE
		  AND id <> $4
	)
`

type roomInfo struct {
	PricePerNight float64 `db:"price_per_night"`
	Capacity      int     `db:"capacity"`
}

// NewRepository creates booking repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, filter Filter) ([]*Booking, error) {
	bookings := []*Booking{}
	err := r.db.SelectContext(ctx, &bookings, `
		SELECT `+columns+` FROM bookings
		WHERE ($1::BIGINT IS NULL OR room_id = $1)
		  AND ($2::TEXT IS NULL OR status = $2)
		ORDER BY check_in_date DESC, id DESC
	`, filter.RoomID, filter.Status)
	return bookings, err
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	var b Booking
	err := r.db.GetContext(ctx, &b, `SELECT `+columns+` FROM bookings WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) IsAvailable(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM rooms WHERE id = $1)`, roomID); err != nil {
		return false, err
	}
	if !exists {
		return false, ErrRoomNotFound
	}

	taken, err := overlapExists(ctx, r.db, roomID, checkIn, checkOut, 0)
	if err != nil {
		return false, err
	}
	return !taken, nil
}

func (r *repository) Create(ctx context.Context, b *Booking) error {
	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		room, err := lockRoom(ctx, tx, b.RoomID)
		if err != nil {
			return err
		}
		if b.Guests > room.Capacity {
			return ErrCapacityExceeded
		}

		taken, err := overlapExists(ctx, tx, b.RoomID, b.CheckInDate, b.CheckOutDate, 0)
		if err != nil {
			return err
		}
		if taken {
			return ErrRoomUnavailable
		}

		b.TotalPrice = math.Round(float64(b.Nights())*room.PricePerNight*100) / 100
		return tx.QueryRowxContext(ctx, `
			INSERT INTO bookings (
				room_id, guest_name, guest_email, guest_phone, check_in_date, check_out_date,
				guests, total_price, status, payment_status, special_requests
			) VALUES ($1, $2, $3, $4, $5::DATE, $6::DATE, $7, $8, $9, $10, $11)
			RETURNING id, created_at, updated_at
		`,
			b.RoomID, b.GuestName, b.GuestEmail, b.GuestPhone,
			day(b.CheckInDate), day(b.CheckOutDate),
			b.Guests, b.TotalPrice, b.Status, b.PaymentStatus, b.SpecialRequests,
		).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	})
	if database.IsExclusionViolation(err) {
		return ErrRoomUnavailable
	}
	return err
}

// UpdateStatus changes the booking status; moving a cancelled booking back
// to an active status re-checks the room for overlapping stays.
func (r *repository) UpdateStatus(ctx context.Context, id int64, status string) (*Booking, error) {
	var updated Booking
	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var current Booking
		err := tx.GetContext(ctx, &current, `SELECT `+columns+` FROM bookings WHERE id = $1 FOR UPDATE`, id)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBookingNotFound
		}
		if err != nil {
			return err
		}

		if current.Status == StatusCancelled && status != StatusCancelled {
			if _, err := lockRoom(ctx, tx, current.RoomID); err != nil {
				return err
			}
			taken, err := overlapExists(ctx, tx, current.RoomID, current.CheckInDate, current.CheckOutDate, current.ID)
			if err != nil {
				return err
			}
			if taken {
				return ErrRoomUnavailable
			}
		}

		return tx.GetContext(ctx, &updated, `
			UPDATE bookings SET status = $2, updated_at = NOW()
			WHERE id = $1
			RETURNING `+columns, id, status)
	})
	if database.IsExclusionViolation(err) {
		return nil, ErrRoomUnavailable
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *repository) UpdatePaymentStatus(ctx context.Context, id int64, paymentStatus string) (*Booking, error) {
	var b Booking
	err := r.db.GetContext(ctx, &b, `
		UPDATE bookings SET payment_status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+columns, id, paymentStatus)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func lockRoom(ctx context.Context, q sqlx.QueryerContext, roomID int64) (*roomInfo, error) {
	var room roomInfo
	err := sqlx.GetContext(ctx, q, &room, `SELECT price_per_night, capacity FROM rooms WHERE id = $1 FOR UPDATE`, roomID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func overlapExists(ctx context.Context, q sqlx.QueryerContext, roomID int64, checkIn, checkOut time.Time, excludeID int64) (bool, error) {
	var taken bool
	err := sqlx.GetContext(ctx, q, &taken, overlapQuery, roomID, day(checkIn), day(checkOut), excludeID)
	return taken, err
}

func day(t time.Time) string {
	return t.Format(time.DateOnly)
}
