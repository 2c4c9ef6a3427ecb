package services

import (
	"context"
	"fmt"
	"io"

	"unilocal/internal/domain/places"
	"unilocal/internal/images"

	"go.uber.org/zap"
)

// MaxPlaceImages caps the photos accepted when a place is created.
const MaxPlaceImages = 7

type ImageUpload struct {
	Reader      io.Reader
	Size        int64
	ContentType string
}

type PlaceService struct {
	places places.Store
	images images.Store
	logger *zap.SugaredLogger
}

func NewPlaceService(placesStore places.Store, imageStore images.Store, logger *zap.SugaredLogger) *PlaceService {
	return &PlaceService{places: placesStore, images: imageStore, logger: logger}
}

// Create uploads the images in order and then stores the place as pending,
// owned by creatorID. Images already uploaded are removed again if a later
// step fails.
func (s *PlaceService) Create(ctx context.Context, creatorID int64, place *places.Place, uploads []ImageUpload) error {
	if len(uploads) > MaxPlaceImages {
		return fmt.Errorf("maximum %d images allowed", MaxPlaceImages)
	}

	urls := make([]string, 0, len(uploads))
	for _, up := range uploads {
		url, err := s.images.Upload(ctx, up.Reader, up.Size, up.ContentType)
		if err != nil {
			s.discardImages(ctx, urls)
			return fmt.Errorf("upload image: %w", err)
		}
		urls = append(urls, url)
	}

	if place.OpeningTime == "" {
		place.OpeningTime = places.DefaultOpeningTime
	}
	if place.ClosingTime == "" {
		place.ClosingTime = places.DefaultClosingTime
	}
	place.ImageURLs = urls
	place.CreatedBy = creatorID
	place.Status = places.StatusPending
	place.ModeratorID = nil

	if err := s.places.Create(ctx, place); err != nil {
		s.discardImages(ctx, urls)
		return err
	}
	return nil
}

func (s *PlaceService) Get(ctx context.Context, placeID int64) (*places.Place, error) {
	return s.places.GetByID(ctx, placeID)
}

func (s *PlaceService) ListApproved(ctx context.Context) []places.Place {
	return s.orEmpty(s.places.ListByStatus(ctx, places.StatusApproved))
}

func (s *PlaceService) Search(ctx context.Context, filter places.SearchFilter) []places.Place {
	return s.orEmpty(s.places.Search(ctx, filter))
}

func (s *PlaceService) ListMine(ctx context.Context, userID int64) []places.Place {
	return s.orEmpty(s.places.ListByCreator(ctx, userID))
}

// Delete removes a place owned by userID together with its reviews, then
// tries to remove its images.
func (s *PlaceService) Delete(ctx context.Context, userID, placeID int64) error {
	place, err := s.places.GetByID(ctx, placeID)
	if err != nil {
		return err
	}
	if place.CreatedBy != userID {
		return ErrForbidden
	}

	if err := s.places.Delete(ctx, placeID); err != nil {
		return err
	}
	s.discardImages(ctx, place.ImageURLs)
	return nil
}

func (s *PlaceService) AddPhoto(ctx context.Context, userID, placeID int64, up ImageUpload) (string, error) {
	place, err := s.places.GetByID(ctx, placeID)
	if err != nil {
		return "", err
	}
	if place.CreatedBy != userID {
		return "", ErrForbidden
	}

	url, err := s.images.Upload(ctx, up.Reader, up.Size, up.ContentType)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	if err := s.places.AddPhotoURL(ctx, placeID, url); err != nil {
		s.discardImages(ctx, []string{url})
		return "", err
	}
	return url, nil
}

// UploadImage stores a standalone image and returns its URL.
func (s *PlaceService) UploadImage(ctx context.Context, up ImageUpload) (string, error) {
	return s.images.Upload(ctx, up.Reader, up.Size, up.ContentType)
}

func (s *PlaceService) discardImages(ctx context.Context, urls []string) {
	for _, url := range urls {
		if err := s.images.Delete(ctx, url); err != nil {
			s.logger.Warnw("failed to delete image", "url", url, "error", err)
		}
	}
}

func (s *PlaceService) orEmpty(list []places.Place, err error) []places.Place {
	if err != nil {
		s.logger.Errorw("listing places failed", "error", err)
		return []places.Place{}
	}
	return list
}
