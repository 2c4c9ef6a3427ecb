package services

import (
	"context"

	"unilocal/internal/domain/places"
	"unilocal/internal/domain/users"

	"go.uber.org/zap"
)

type FavoriteService struct {
	users  users.Store
	places places.Store
	logger *zap.SugaredLogger
}

func NewFavoriteService(usersStore users.Store, placesStore places.Store, logger *zap.SugaredLogger) *FavoriteService {
	return &FavoriteService{users: usersStore, places: placesStore, logger: logger}
}

func (s *FavoriteService) Add(ctx context.Context, user *users.User, placeID int64) error {
	if _, err := s.places.GetByID(ctx, placeID); err != nil {
		return err
	}
	if err := s.users.AddFavorite(ctx, user.ID, placeID); err != nil {
		return err
	}
	if !user.HasFavorite(placeID) {
		user.Favorites = append(user.Favorites, placeID)
	}
	return nil
}

func (s *FavoriteService) Remove(ctx context.Context, user *users.User, placeID int64) error {
	if err := s.users.RemoveFavorite(ctx, user.ID, placeID); err != nil {
		return err
	}
	kept := user.Favorites[:0]
	for _, id := range user.Favorites {
		if id != placeID {
			kept = append(kept, id)
		}
	}
	user.Favorites = kept
	return nil
}

// Toggle flips placeID in the user's favorites and reports whether it is a
// favorite afterwards.
func (s *FavoriteService) Toggle(ctx context.Context, user *users.User, placeID int64) (bool, error) {
	if user.HasFavorite(placeID) {
		return false, s.Remove(ctx, user, placeID)
	}
	if err := s.Add(ctx, user, placeID); err != nil {
		return false, err
	}
	return true, nil
}

// List resolves the user's favorites. Places deleted since are skipped.
func (s *FavoriteService) List(ctx context.Context, user *users.User) []places.Place {
	list, err := s.places.GetByIDs(ctx, user.Favorites)
	if err != nil {
		s.logger.Errorw("listing favorites failed", "user_id", user.ID, "error", err)
		return []places.Place{}
	}
	return list
}
