package hotel

import "errors"

var (
	ErrHotelNotFound   = errors.New("hotel not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrUnknownDistrict = errors.New("district does not exist")
	ErrSlugTaken       = errors.New("slug already in use")
	ErrRoomHasBookings = errors.New("room has bookings")
)
