package reviews

import (
	"context"
	"errors"
	"time"
)

var (
	ErrReviewNotFound    = errors.New("review not found")
	ErrReplyAlreadySet   = errors.New("review already has a reply")
	QueryTimeoutDuration = time.Second * 5
)

type Review struct {
	ID         int64     `json:"id"`
	PlaceID    int64     `json:"place_id"`
	AuthorID   int64     `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Body       string    `json:"body"`
	Score      int       `json:"score"` // 1-5, checked by the API only
	CreatedAt  time.Time `json:"created_at"`
	Reply      string    `json:"reply"`
}

type Store interface {
	Create(ctx context.Context, review *Review) error
	GetByID(ctx context.Context, reviewID int64) (*Review, error)
	ListByPlace(ctx context.Context, placeID int64) ([]Review, error)
	SetReply(ctx context.Context, reviewID int64, reply string) error
}
