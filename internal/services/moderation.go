package services

import (
	"context"

	"unilocal/internal/domain/places"

	"go.uber.org/zap"
)

// Notifier tells a place's creator about a moderation decision.
type Notifier interface {
	PlaceDecided(ctx context.Context, place *places.Place) error
}

type ModerationService struct {
	places   places.Store
	notifier Notifier
	logger   *zap.SugaredLogger
}

func NewModerationService(placesStore places.Store, notifier Notifier, logger *zap.SugaredLogger) *ModerationService {
	return &ModerationService{places: placesStore, notifier: notifier, logger: logger}
}

func (s *ModerationService) ListByStatus(ctx context.Context, status places.Status) []places.Place {
	list, err := s.places.ListByStatus(ctx, status)
	if err != nil {
		s.logger.Errorw("listing places by status failed", "status", status, "error", err)
		return []places.Place{}
	}
	return list
}

func (s *ModerationService) ListApprovedBy(ctx context.Context, moderatorID int64) []places.Place {
	list, err := s.places.ListApprovedByModerator(ctx, moderatorID)
	if err != nil {
		s.logger.Errorw("listing approved places failed", "moderator_id", moderatorID, "error", err)
		return []places.Place{}
	}
	return list
}

func (s *ModerationService) Approve(ctx context.Context, moderatorID, placeID int64) (*places.Place, error) {
	return s.decide(ctx, moderatorID, placeID, places.StatusApproved)
}

func (s *ModerationService) Reject(ctx context.Context, moderatorID, placeID int64) (*places.Place, error) {
	return s.decide(ctx, moderatorID, placeID, places.StatusRejected)
}

func (s *ModerationService) decide(ctx context.Context, moderatorID, placeID int64, to places.Status) (*places.Place, error) {
	place, err := s.places.GetByID(ctx, placeID)
	if err != nil {
		return nil, err
	}

	from := place.Status
	if !places.CanTransition(from, to) {
		return nil, places.ErrInvalidTransition
	}

	if err := s.places.SetStatus(ctx, placeID, to, moderatorID); err != nil {
		return nil, err
	}
	place.Status = to
	place.ModeratorID = &moderatorID

	if from != to && s.notifier != nil {
		if err := s.notifier.PlaceDecided(ctx, place); err != nil {
			s.logger.Warnw("moderation notification not sent", "place_id", placeID, "error", err)
		}
	}
	return place, nil
}
