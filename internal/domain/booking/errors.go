package booking

import "errors"

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomUnavailable  = errors.New("room is already booked for the selected dates")
	ErrInvalidDateRange = errors.New("check-out date must be after check-in date")
	ErrCapacityExceeded = errors.New("number of guests exceeds room capacity")
)
