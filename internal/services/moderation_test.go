package services

import (
	"context"
	"testing"

	"unilocal/internal/domain/places"
	"unilocal/internal/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestModerationTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    places.Status
		approve bool
		wantErr error
	}{
		{"approve pending", places.StatusPending, true, nil},
		{"reject pending", places.StatusPending, false, nil},
		{"approve again", places.StatusApproved, true, nil},
		{"reject again", places.StatusRejected, false, nil},
		{"reject approved", places.StatusApproved, false, places.ErrInvalidTransition},
		{"approve rejected", places.StatusRejected, true, places.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := storetest.NewPlaces(&places.Place{ID: 1, Status: tt.from, CreatedBy: 3})
			svc := NewModerationService(ps, &storetest.Notifier{}, zap.NewNop().Sugar())

			decide := svc.Reject
			want := places.StatusRejected
			if tt.approve {
				decide = svc.Approve
				want = places.StatusApproved
			}

			place, err := decide(context.Background(), 50, 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.from, ps.ByID[1].Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, want, place.Status)
			assert.Equal(t, want, ps.ByID[1].Status)
			require.NotNil(t, ps.ByID[1].ModeratorID)
			assert.Equal(t, int64(50), *ps.ByID[1].ModeratorID)
		})
	}
}

func TestModerationNotifiesOnlyOnChange(t *testing.T) {
	ps := storetest.NewPlaces(&places.Place{ID: 1, Status: places.StatusPending, CreatedBy: 3})
	n := &storetest.Notifier{}
	svc := NewModerationService(ps, n, zap.NewNop().Sugar())

	_, err := svc.Approve(context.Background(), 50, 1)
	require.NoError(t, err)
	_, err = svc.Approve(context.Background(), 50, 1)
	require.NoError(t, err)

	require.Len(t, n.Decided, 1)
	assert.Equal(t, places.StatusApproved, n.Decided[0].Status)
}

func TestModerationSwallowsNotifierFailure(t *testing.T) {
	ps := storetest.NewPlaces(&places.Place{ID: 1, Status: places.StatusPending})
	svc := NewModerationService(ps, &storetest.Notifier{Err: storetest.ErrStoreDown}, zap.NewNop().Sugar())

	_, err := svc.Reject(context.Background(), 50, 1)
	assert.NoError(t, err)
}

func TestModerationUnknownPlace(t *testing.T) {
	svc := NewModerationService(storetest.NewPlaces(), nil, zap.NewNop().Sugar())

	_, err := svc.Approve(context.Background(), 1, 404)
	assert.ErrorIs(t, err, places.ErrPlaceNotFound)
}

func TestModerationListings(t *testing.T) {
	mod := int64(50)
	other := int64(51)
	ps := storetest.NewPlaces(
		&places.Place{ID: 1, Status: places.StatusPending},
		&places.Place{ID: 2, Status: places.StatusApproved, ModeratorID: &mod},
		&places.Place{ID: 3, Status: places.StatusApproved, ModeratorID: &other},
		&places.Place{ID: 4, Status: places.StatusRejected, ModeratorID: &mod},
	)
	svc := NewModerationService(ps, nil, zap.NewNop().Sugar())

	pending := svc.ListByStatus(context.Background(), places.StatusPending)
	require.Len(t, pending, 1)
	assert.Equal(t, int64(1), pending[0].ID)

	mine := svc.ListApprovedBy(context.Background(), mod)
	require.Len(t, mine, 1)
	assert.Equal(t, int64(2), mine[0].ID)

	ps.ListErr = storetest.ErrStoreDown
	assert.Empty(t, svc.ListByStatus(context.Background(), places.StatusPending))
}
