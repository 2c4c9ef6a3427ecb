package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"unilocal/internal/domain/passwordreset"
	"unilocal/internal/domain/users"
	"unilocal/internal/mailer"
	"unilocal/internal/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAccounts(us *storetest.Users) (*AccountService, *storetest.ResetTokens, *storetest.Mailer) {
	resets := &storetest.ResetTokens{}
	mail := &storetest.Mailer{}
	svc := NewAccountService(us, resets, mail, zap.NewNop().Sugar(), time.Hour, "https://unilocal.app/")
	return svc, resets, mail
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc, _, _ := newAccounts(storetest.NewUsers())
	ctx := context.Background()

	user, err := svc.Register(ctx, Registration{
		Name: "Ana", Username: "ana", Email: " Ana@Mail.com ", City: "Armenia", Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, users.RoleRegular, user.Role)
	assert.Equal(t, "ana@mail.com", user.Email)

	got, err := svc.Authenticate(ctx, "ana@mail.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.Authenticate(ctx, "ana@mail.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@mail.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _, _ := newAccounts(storetest.NewUsers(&users.User{ID: 1, Username: "ana", Email: "a@x.com"}))

	_, err := svc.Register(context.Background(), Registration{Username: "ana", Email: "b@x.com", Password: "secret123"})
	assert.ErrorIs(t, err, users.ErrDuplicateUsername)
}

func TestUpdateProfile(t *testing.T) {
	ana := &users.User{ID: 1, Name: "Ana", Username: "ana", Email: "a@x.com"}
	us := storetest.NewUsers(ana, &users.User{ID: 2, Username: "luis", Email: "l@x.com"})
	svc, _, _ := newAccounts(us)

	taken := "luis"
	_, err := svc.UpdateProfile(context.Background(), ana, ProfileUpdate{Username: &taken})
	assert.ErrorIs(t, err, users.ErrDuplicateUsername)

	name, city, same := "Ana María", "Pereira", "ana"
	got, err := svc.UpdateProfile(context.Background(), ana, ProfileUpdate{Name: &name, City: &city, Username: &same})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", got.Name)
	assert.Equal(t, "Pereira", got.City)
	assert.Equal(t, "ana", got.Username)
}

func TestPasswordResetFlow(t *testing.T) {
	ana := &users.User{ID: 1, Name: "Ana", Username: "ana", Email: "ana@x.com"}
	require.NoError(t, ana.Password.Set("old-password"))
	us := storetest.NewUsers(ana)
	svc, resets, mail := newAccounts(us)
	ctx := context.Background()

	require.NoError(t, svc.RequestPasswordReset(ctx, "ana@x.com"))
	require.Len(t, mail.Sent, 1)
	assert.Equal(t, mailer.ResetPasswordTemplate, mail.Sent[0].Template)
	assert.Equal(t, "ana@x.com", mail.Sent[0].Email)

	data := mail.Sent[0].Data.(resetEmail)
	assert.True(t, strings.HasPrefix(data.ResetURL, "https://unilocal.app/reset-password?token="))
	token := strings.TrimPrefix(data.ResetURL, "https://unilocal.app/reset-password?token=")
	assert.Contains(t, resets.Tokens, token)

	require.NoError(t, svc.ResetPassword(ctx, token, "new-password"))
	assert.NoError(t, us.ByID[1].Password.Compare("new-password"))
	assert.Equal(t, []int64{1}, us.RevokedRefresh)

	err := svc.ResetPassword(ctx, token, "again")
	assert.ErrorIs(t, err, passwordreset.ErrTokenNotFound)
}

func TestPasswordResetUnknownEmailIsSilent(t *testing.T) {
	svc, resets, mail := newAccounts(storetest.NewUsers())

	require.NoError(t, svc.RequestPasswordReset(context.Background(), "ghost@x.com"))
	assert.Empty(t, mail.Sent)
	assert.Empty(t, resets.Tokens)
}
