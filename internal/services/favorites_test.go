package services

import (
	"context"
	"testing"

	"unilocal/internal/domain/places"
	"unilocal/internal/domain/users"
	"unilocal/internal/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestToggleFavorite(t *testing.T) {
	user := &users.User{ID: 1, Favorites: []int64{}}
	us := storetest.NewUsers(user)
	ps := storetest.NewPlaces(&places.Place{ID: 10}, &places.Place{ID: 11})
	svc := NewFavoriteService(us, ps, zap.NewNop().Sugar())
	ctx := context.Background()

	on, err := svc.Toggle(ctx, user, 10)
	require.NoError(t, err)
	assert.True(t, on)
	assert.Equal(t, []int64{10}, user.Favorites)

	on, err = svc.Toggle(ctx, user, 10)
	require.NoError(t, err)
	assert.False(t, on)
	assert.Empty(t, user.Favorites)
}

func TestAddFavoriteIsASet(t *testing.T) {
	user := &users.User{ID: 1, Favorites: []int64{}}
	us := storetest.NewUsers(user)
	svc := NewFavoriteService(us, storetest.NewPlaces(&places.Place{ID: 10}), zap.NewNop().Sugar())

	require.NoError(t, svc.Add(context.Background(), user, 10))
	require.NoError(t, svc.Add(context.Background(), user, 10))
	assert.Equal(t, []int64{10}, user.Favorites)

	err := svc.Add(context.Background(), user, 99)
	assert.ErrorIs(t, err, places.ErrPlaceNotFound)
}

func TestListFavoritesSkipsDeletedPlaces(t *testing.T) {
	user := &users.User{ID: 1, Favorites: []int64{11, 404, 10}}
	ps := storetest.NewPlaces(&places.Place{ID: 10, Name: "a"}, &places.Place{ID: 11, Name: "b"})
	svc := NewFavoriteService(storetest.NewUsers(user), ps, zap.NewNop().Sugar())

	list := svc.List(context.Background(), user)
	require.Len(t, list, 2)
	assert.Equal(t, int64(11), list[0].ID)
	assert.Equal(t, int64(10), list[1].ID)

	ps.ListErr = storetest.ErrStoreDown
	assert.Empty(t, svc.List(context.Background(), user))
}
