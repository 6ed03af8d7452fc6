package hotel

import (
	"context"
	"strings"
	"time"
)

type fakeRepo struct {
	nextID int64
	rows   map[int64]*Hotel
	rooms  map[int64]*Room
	booked map[int64]bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: map[int64]*Hotel{}, rooms: map[int64]*Room{}, booked: map[int64]bool{}}
}

func (f *fakeRepo) Create(ctx context.Context, h *Hotel) error {
	f.nextID++
	h.ID = f.nextID
	h.CreatedAt = time.Now()
	cp := *h
	f.rows[h.ID] = &cp
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*Hotel, error) {
	if h, ok := f.rows[id]; ok {
		cp := *h
		return &cp, nil
	}
	return nil, ErrHotelNotFound
}

func (f *fakeRepo) GetBySlug(ctx context.Context, slug string) (*Hotel, error) {
	for _, h := range f.rows {
		if h.Slug == slug {
			cp := *h
			return &cp, nil
		}
	}
	return nil, ErrHotelNotFound
}

func (f *fakeRepo) List(ctx context.Context, filter Filter) ([]*Hotel, error) {
	out := []*Hotel{}
	for _, h := range f.rows {
		if filter.Category != nil && (h.Category == nil || !strings.EqualFold(*h.Category, *filter.Category)) {
			continue
		}
		if filter.DistrictID != nil && (h.DistrictID == nil || *h.DistrictID != *filter.DistrictID) {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

func (f *fakeRepo) Update(ctx context.Context, id int64, req *UpdateHotelRequest, featuredImage *string) (*Hotel, error) {
	h, ok := f.rows[id]
	if !ok {
		return nil, ErrHotelNotFound
	}
	if req.Name != nil {
		h.Name = *req.Name
	}
	if req.Amenities != nil {
		h.Amenities = req.Amenities
	}
	if req.Price != nil {
		h.Price = req.Price
	}
	if featuredImage != nil {
		h.FeaturedImage = featuredImage
	}
	cp := *h
	return &cp, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) (*string, error) {
	h, ok := f.rows[id]
	if !ok {
		return nil, ErrHotelNotFound
	}
	for roomID, room := range f.rooms {
		if room.HotelID == id && f.booked[roomID] {
			return nil, ErrRoomHasBookings
		}
	}
	delete(f.rows, id)
	for roomID, room := range f.rooms {
		if room.HotelID == id {
			delete(f.rooms, roomID)
		}
	}
	return h.FeaturedImage, nil
}

func (f *fakeRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	_, err := f.GetBySlug(ctx, slug)
	return err == nil, nil
}

func (f *fakeRepo) ListRooms(ctx context.Context, hotelID int64) ([]*Room, error) {
	out := []*Room{}
	for _, room := range f.rooms {
		if room.HotelID == hotelID {
			out = append(out, room)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetRoom(ctx context.Context, id int64) (*Room, error) {
	if room, ok := f.rooms[id]; ok {
		cp := *room
		return &cp, nil
	}
	return nil, ErrRoomNotFound
}

func (f *fakeRepo) CreateRoom(ctx context.Context, room *Room) error {
	f.nextID++
	room.ID = f.nextID
	room.CreatedAt = time.Now()
	cp := *room
	f.rooms[room.ID] = &cp
	return nil
}

func (f *fakeRepo) UpdateRoom(ctx context.Context, id int64, req *UpdateRoomRequest) (*Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, ErrRoomNotFound
	}
	if req.PricePerNight != nil {
		room.PricePerNight = *req.PricePerNight
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	cp := *room
	return &cp, nil
}

func (f *fakeRepo) DeleteRoom(ctx context.Context, id int64) error {
	if _, ok := f.rooms[id]; !ok {
		return ErrRoomNotFound
	}
	if f.booked[id] {
		return ErrRoomHasBookings
	}
	delete(f.rooms, id)
	return nil
}
