package services

import (
	"context"
	"strings"

	"unilocal/internal/domain/places"
	"unilocal/internal/domain/reviews"
	"unilocal/internal/domain/users"
	"unilocal/internal/rating"

	"go.uber.org/zap"
)

type ReviewService struct {
	reviews reviews.Store
	places  places.Store
	logger  *zap.SugaredLogger
}

func NewReviewService(reviewsStore reviews.Store, placesStore places.Store, logger *zap.SugaredLogger) *ReviewService {
	return &ReviewService{reviews: reviewsStore, places: placesStore, logger: logger}
}

// AddReview stores a review by author and refreshes the place's average.
// A failed refresh is logged and does not fail the call.
func (s *ReviewService) AddReview(ctx context.Context, author *users.User, placeID int64, body string, score int) (*reviews.Review, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrBlankText
	}
	if _, err := s.places.GetByID(ctx, placeID); err != nil {
		return nil, err
	}

	review := &reviews.Review{
		PlaceID:    placeID,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Body:       body,
		Score:      score,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	s.recomputeAverage(ctx, placeID)
	return review, nil
}

func (s *ReviewService) recomputeAverage(ctx context.Context, placeID int64) {
	list, err := s.reviews.ListByPlace(ctx, placeID)
	if err != nil {
		s.logger.Warnw("could not read reviews for rating", "place_id", placeID, "error", err)
		return
	}

	scores := make([]int, 0, len(list))
	for _, r := range list {
		scores = append(scores, r.Score)
	}

	avg, ok := rating.Average(scores)
	if !ok {
		return
	}

	if err := s.places.UpdateAverageRating(ctx, placeID, avg); err != nil {
		s.logger.Warnw("could not store average rating", "place_id", placeID, "error", err)
	}
}

// ReconcileRatings recomputes the average of every approved place and
// reports how many were visited.
func (s *ReviewService) ReconcileRatings(ctx context.Context) (int, error) {
	approved, err := s.places.ListByStatus(ctx, places.StatusApproved)
	if err != nil {
		return 0, err
	}
	for _, p := range approved {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		s.recomputeAverage(ctx, p.ID)
	}
	return len(approved), nil
}

// ListByPlace returns the reviews of a place, newest first.
func (s *ReviewService) ListByPlace(ctx context.Context, placeID int64) []reviews.Review {
	list, err := s.reviews.ListByPlace(ctx, placeID)
	if err != nil {
		s.logger.Errorw("listing reviews failed", "place_id", placeID, "error", err)
		return []reviews.Review{}
	}
	return list
}

// Reply attaches the one allowed reply to a review. Only the place's creator
// or a moderator may reply.
func (s *ReviewService) Reply(ctx context.Context, actor *users.User, placeID, reviewID int64, reply string) (*reviews.Review, error) {
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return nil, ErrBlankText
	}
	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.PlaceID != placeID {
		return nil, reviews.ErrReviewNotFound
	}

	place, err := s.places.GetByID(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if place.CreatedBy != actor.ID && !actor.IsModerator() {
		return nil, ErrForbidden
	}

	if err := s.reviews.SetReply(ctx, reviewID, reply); err != nil {
		return nil, err
	}
	review.Reply = reply
	return review, nil
}
