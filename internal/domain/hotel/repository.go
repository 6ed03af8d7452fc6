package hotel

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/devbhoomi/tourism-api/internal/pkg/database"
)

// Repository defines hotel and room data access interface
type Repository interface {
	Create(ctx context.Context, h *Hotel) error
	GetByID(ctx context.Context, id int64) (*Hotel, error)
	GetBySlug(ctx context.Context, slug string) (*Hotel, error)
	List(ctx context.Context, filter Filter) ([]*Hotel, error)
	Update(ctx context.Context, id int64, req *UpdateHotelRequest, featuredImage *string) (*Hotel, error)
	Delete(ctx context.Context, id int64) (*string, error)
	SlugExists(ctx context.Context, slug string) (bool, error)

	ListRooms(ctx context.Context, hotelID int64) ([]*Room, error)
	GetRoom(ctx context.Context, id int64) (*Room, error)
	CreateRoom(ctx context.Context, room *Room) error
	UpdateRoom(ctx context.Context, id int64, req *UpdateRoomRequest) (*Room, error)
	DeleteRoom(ctx context.Context, id int64) error
}

type repository struct {
	db *sqlx.DB
}

const hotelColumns = `
	id, name, slug, description, location, category, district_id, price, star_rating,
	amenities, contact_phone, contact_email, featured_image,
	meta_title, meta_description, meta_keywords, created_at, updated_at
`

const roomColumns = `
	id, hotel_id, name, room_type, description, price_per_night, capacity, created_at, updated_at
`

// NewRepository creates hotel repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, h *Hotel) error {
	if h.Amenities == nil {
		h.Amenities = pq.StringArray{}
	}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO hotels (
			name, slug, description, location, category, district_id, price, star_rating,
			amenities, contact_phone, contact_email, featured_image,
			meta_title, meta_description, meta_keywords
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at
	`,
		h.Name, h.Slug, h.Description, h.Location, h.Category, h.DistrictID, h.Price, h.StarRating,
		h.Amenities, h.ContactPhone, h.ContactEmail, h.FeaturedImage,
		h.MetaTitle, h.MetaDescription, h.MetaKeywords,
	).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
	return mapWriteError(err)
}

func (r *repository) get(ctx context.Context, where string, arg interface{}) (*Hotel, error) {
	var h Hotel
	err := r.db.GetContext(ctx, &h, `SELECT `+hotelColumns+` FROM hotels WHERE `+where, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHotelNotFound
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Hotel, error) {
	return r.get(ctx, "id = $1", id)
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Hotel, error) {
	return r.get(ctx, "slug = $1", slug)
}

func (r *repository) List(ctx context.Context, filter Filter) ([]*Hotel, error) {
	hotels := []*Hotel{}
	err := r.db.SelectContext(ctx, &hotels, `
		SELECT `+hotelColumns+` FROM hotels
		WHERE ($1::TEXT IS NULL OR LOWER(category) = LOWER($1))
		  AND ($2::BIGINT IS NULL OR district_id = $2)
		ORDER BY name ASC
	`, filter.Category, filter.DistrictID)
	return hotels, err
}

func (r *repository) Update(ctx context.Context, id int64, req *UpdateHotelRequest, featuredImage *string) (*Hotel, error) {
	var amenities interface{}
	if req.Amenities != nil {
		amenities = pq.StringArray(req.Amenities)
	}

	var h Hotel
	err := r.db.GetContext(ctx, &h, `
		UPDATE hotels SET
			name = COALESCE($2, name),
			slug = COALESCE($3, slug),
			description = COALESCE($4, description),
			location = COALESCE($5, location),
			category = COALESCE($6, category),
			district_id = COALESCE($7, district_id),
			price = COALESCE($8, price),
			star_rating = COALESCE($9, star_rating),
			amenities = COALESCE($10::TEXT[], amenities),
			contact_phone = COALESCE($11, contact_phone),
			contact_email = COALESCE($12, contact_email),
			featured_image = COALESCE($13, featured_image),
			meta_title = COALESCE($14, meta_title),
			meta_description = COALESCE($15, meta_description),
			meta_keywords = COALESCE($16, meta_keywords),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+hotelColumns,
		id, req.Name, req.Slug, req.Description, req.Location, req.Category, req.DistrictID,
		req.Price, req.StarRating, amenities, req.ContactPhone, req.ContactEmail, featuredImage,
		req.MetaTitle, req.MetaDescription, req.MetaKeywords,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHotelNotFound
	}
	if err := mapWriteError(err); err != nil {
		return nil, err
	}
	return &h, nil
}

// Delete removes the hotel; rooms and their bookings cascade
func (r *repository) Delete(ctx context.Context, id int64) (*string, error) {
	var image sql.NullString
	err := r.db.GetContext(ctx, &image, `DELETE FROM hotels WHERE id = $1 RETURNING featured_image`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHotelNotFound
	}
	if database.IsForeignKeyViolation(err) {
		return nil, ErrRoomHasBookings
	}
	if err != nil {
		return nil, err
	}
	if !image.Valid {
		return nil, nil
	}
	return &image.String, nil
}

func (r *repository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM hotels WHERE slug = $1)`, slug)
	return exists, err
}

func (r *repository) ListRooms(ctx context.Context, hotelID int64) ([]*Room, error) {
	rooms := []*Room{}
	err := r.db.SelectContext(ctx, &rooms, `
		SELECT `+roomColumns+` FROM rooms
		WHERE hotel_id = $1
		ORDER BY price_per_night ASC, id ASC
	`, hotelID)
	return rooms, err
}

func (r *repository) GetRoom(ctx context.Context, id int64) (*Room, error) {
	var room Room
	err := r.db.GetContext(ctx, &room, `SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *repository) CreateRoom(ctx context.Context, room *Room) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO rooms (hotel_id, name, room_type, description, price_per_night, capacity)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, room.HotelID, room.Name, room.RoomType, room.Description, room.PricePerNight, room.Capacity,
	).Scan(&room.ID, &room.CreatedAt, &room.UpdatedAt)
	if database.IsForeignKeyViolation(err) {
		return ErrHotelNotFound
	}
	return err
}

func (r *repository) UpdateRoom(ctx context.Context, id int64, req *UpdateRoomRequest) (*Room, error) {
	var room Room
	err := r.db.GetContext(ctx, &room, `
		UPDATE rooms SET
			name = COALESCE($2, name),
			room_type = COALESCE($3, room_type),
			description = COALESCE($4, description),
			price_per_night = COALESCE($5, price_per_night),
			capacity = COALESCE($6, capacity),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+roomColumns,
		id, req.Name, req.RoomType, req.Description, req.PricePerNight, req.Capacity,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *repository) DeleteRoom(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if database.IsForeignKeyViolation(err) {
		return ErrRoomHasBookings
	}
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrRoomNotFound
	}
	return nil
}

func mapWriteError(err error) error {
	switch {
	case err == nil:
		return nil
	case database.IsUniqueViolation(err, "hotels_slug_key"):
		return ErrSlugTaken
	case database.IsForeignKeyViolation(err):
		return ErrUnknownDistrict
	default:
		return err
	}
}
