package services

import (
	"context"
	"strings"
	"testing"

	"unilocal/internal/domain/places"
	"unilocal/internal/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreatePlaceIsPendingWithImagesAndDefaults(t *testing.T) {
	ps := storetest.NewPlaces()
	imgs := &storetest.Images{}
	svc := NewPlaceService(ps, imgs, zap.NewNop().Sugar())

	place := &places.Place{Name: "Museo del Oro", Category: places.CategoryMuseum}
	err := svc.Create(context.Background(), 7, place, []ImageUpload{upload("a"), upload("b")})
	require.NoError(t, err)

	assert.NotZero(t, place.ID)
	assert.Equal(t, places.StatusPending, place.Status)
	assert.Equal(t, int64(7), place.CreatedBy)
	assert.Nil(t, place.ModeratorID)
	assert.Equal(t, places.DefaultOpeningTime, place.OpeningTime)
	assert.Equal(t, places.DefaultClosingTime, place.ClosingTime)
	assert.Equal(t, imgs.Uploaded, place.ImageURLs)
}

func TestCreatePlaceRejectsTooManyImages(t *testing.T) {
	imgs := &storetest.Images{}
	svc := NewPlaceService(storetest.NewPlaces(), imgs, zap.NewNop().Sugar())

	uploads := make([]ImageUpload, MaxPlaceImages+1)
	for i := range uploads {
		uploads[i] = upload("x")
	}
	err := svc.Create(context.Background(), 1, &places.Place{Name: "x"}, uploads)
	assert.Error(t, err)
	assert.Empty(t, imgs.Uploaded)
}

func TestCreatePlaceCleansUpAfterFailedUpload(t *testing.T) {
	ps := storetest.NewPlaces()
	imgs := &storetest.Images{FailAfter: 1}
	svc := NewPlaceService(ps, imgs, zap.NewNop().Sugar())

	err := svc.Create(context.Background(), 1, &places.Place{Name: "x"}, []ImageUpload{upload("a"), upload("b")})
	assert.Error(t, err)
	assert.Equal(t, imgs.Uploaded, imgs.Deleted)
	assert.Empty(t, ps.ByID)
}

func TestSearchApprovedOnly(t *testing.T) {
	cafe := places.CategoryCafe
	ps := storetest.NewPlaces(
		&places.Place{ID: 1, Name: "Café Juan Valdez", Category: places.CategoryCafe, Status: places.StatusApproved},
		&places.Place{ID: 2, Name: "Juanita's Burgers", Category: places.CategoryFastFood, Status: places.StatusApproved},
		&places.Place{ID: 3, Name: "Juan's Pending", Category: places.CategoryCafe, Status: places.StatusPending},
	)
	svc := NewPlaceService(ps, &storetest.Images{}, zap.NewNop().Sugar())

	got := svc.Search(context.Background(), places.SearchFilter{Query: "JUAN"})
	assert.Len(t, got, 2)

	got = svc.Search(context.Background(), places.SearchFilter{Query: "juan", Category: &cafe})
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	ps.ListErr = storetest.ErrStoreDown
	assert.Empty(t, svc.Search(context.Background(), places.SearchFilter{Query: "juan"}))
	assert.Empty(t, svc.ListApproved(context.Background()))
	assert.Empty(t, svc.ListMine(context.Background(), 1))
}

func TestDeletePlaceOwnerOnly(t *testing.T) {
	ps := storetest.NewPlaces(&places.Place{ID: 1, CreatedBy: 5, ImageURLs: []string{"https://img.test/1.jpg"}})
	imgs := &storetest.Images{}
	svc := NewPlaceService(ps, imgs, zap.NewNop().Sugar())

	err := svc.Delete(context.Background(), 6, 1)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Empty(t, ps.Deleted)

	require.NoError(t, svc.Delete(context.Background(), 5, 1))
	assert.Equal(t, []int64{1}, ps.Deleted)
	assert.Equal(t, []string{"https://img.test/1.jpg"}, imgs.Deleted)

	err = svc.Delete(context.Background(), 5, 1)
	assert.ErrorIs(t, err, places.ErrPlaceNotFound)
}

func TestAddPhoto(t *testing.T) {
	ps := storetest.NewPlaces(&places.Place{ID: 1, CreatedBy: 5})
	svc := NewPlaceService(ps, &storetest.Images{}, zap.NewNop().Sugar())

	_, err := svc.AddPhoto(context.Background(), 4, 1, upload("p"))
	assert.ErrorIs(t, err, ErrForbidden)

	url, err := svc.AddPhoto(context.Background(), 5, 1, upload("p"))
	require.NoError(t, err)
	assert.Equal(t, []string{url}, ps.ByID[1].ImageURLs)
}

func upload(content string) ImageUpload {
	return ImageUpload{Reader: strings.NewReader(content), Size: int64(len(content)), ContentType: "image/jpeg"}
}
