package places

import (
	"context"
	"errors"
	"time"
)

var (
	ErrPlaceNotFound     = errors.New("place not found")
	ErrInvalidTransition = errors.New("place status cannot change that way")
	QueryTimeoutDuration = time.Second * 5
)

type Category string

const (
	CategoryRestaurant Category = "restaurant"
	CategoryCafe       Category = "cafe"
	CategoryMuseum     Category = "museum"
	CategoryHotel      Category = "hotel"
	CategoryFastFood   Category = "fast_food"
)

var Categories = []Category{
	CategoryRestaurant,
	CategoryCafe,
	CategoryMuseum,
	CategoryHotel,
	CategoryFastFood,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

const (
	DefaultOpeningTime = "09:00"
	DefaultClosingTime = "18:00"
)

// Place is a point of interest submitted by a user.
type Place struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      Category  `json:"category"`
	ImageURLs     []string  `json:"image_urls"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	PhoneNumber   string    `json:"phone_number"`
	OpeningTime   string    `json:"opening_time"`
	ClosingTime   string    `json:"closing_time"`
	CreatedBy     int64     `json:"created_by"`
	Status        Status    `json:"status"`
	ModeratorID   *int64    `json:"moderator_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	AverageRating float64   `json:"average_rating"`
}

// SearchFilter narrows approved places. An empty Query matches every name.
type SearchFilter struct {
	Query    string
	Category *Category
}

type Store interface {
	Create(ctx context.Context, place *Place) error
	GetByID(ctx context.Context, placeID int64) (*Place, error)
	GetByIDs(ctx context.Context, placeIDs []int64) ([]Place, error)
	ListByStatus(ctx context.Context, status Status) ([]Place, error)
	ListApprovedByModerator(ctx context.Context, moderatorID int64) ([]Place, error)
	ListByCreator(ctx context.Context, userID int64) ([]Place, error)
	Search(ctx context.Context, filter SearchFilter) ([]Place, error)
	SetStatus(ctx context.Context, placeID int64, status Status, moderatorID int64) error
	UpdateAverageRating(ctx context.Context, placeID int64, average float64) error
	AddPhotoURL(ctx context.Context, placeID int64, photoURL string) error
	Delete(ctx context.Context, placeID int64) error
}
