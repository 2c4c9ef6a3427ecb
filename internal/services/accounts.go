package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"unilocal/internal/domain/passwordreset"
	"unilocal/internal/domain/users"
	"unilocal/internal/mailer"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AccountService struct {
	users    users.Store
	resets   passwordreset.Store
	mailer   mailer.Client
	logger   *zap.SugaredLogger
	resetTTL time.Duration
	resetURL string
}

func NewAccountService(
	usersStore users.Store,
	resets passwordreset.Store,
	mail mailer.Client,
	logger *zap.SugaredLogger,
	resetTTL time.Duration,
	resetURL string,
) *AccountService {
	return &AccountService{
		users:    usersStore,
		resets:   resets,
		mailer:   mail,
		logger:   logger,
		resetTTL: resetTTL,
		resetURL: strings.TrimRight(resetURL, "/"),
	}
}

type Registration struct {
	Name     string
	Username string
	Email    string
	City     string
	Password string
}

// Register creates a regular user. The username is checked up front and
// again by the unique index.
func (s *AccountService) Register(ctx context.Context, in Registration) (*users.User, error) {
	taken, err := s.users.UsernameExists(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if taken {
		return nil, users.ErrDuplicateUsername
	}

	user := &users.User{
		Name:     in.Name,
		Username: in.Username,
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		City:     in.City,
		Role:     users.RoleRegular,
	}
	if err := user.Password.Set(in.Password); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*users.User, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := user.Password.Compare(password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *AccountService) CurrentUser(ctx context.Context, userID int64) (*users.User, error) {
	return s.users.GetByID(ctx, userID)
}

// ProfileUpdate carries the editable profile fields; nil means unchanged.
type ProfileUpdate struct {
	Name     *string
	Username *string
	City     *string
}

func (s *AccountService) UpdateProfile(ctx context.Context, user *users.User, in ProfileUpdate) (*users.User, error) {
	updates := map[string]any{}

	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.City != nil {
		updates["city"] = *in.City
	}
	if in.Username != nil && *in.Username != user.Username {
		taken, err := s.users.UsernameExists(ctx, *in.Username)
		if err != nil {
			return nil, fmt.Errorf("check username: %w", err)
		}
		if taken {
			return nil, users.ErrDuplicateUsername
		}
		updates["username"] = *in.Username
	}

	if len(updates) == 0 {
		return user, nil
	}

	if err := s.users.UpdateUser(ctx, user.ID, updates); err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, user.ID)
}

type resetEmail struct {
	Username string
	ResetURL string
	ValidFor string
}

// RequestPasswordReset emails a single-use reset link. Unknown addresses are
// accepted silently so the endpoint does not reveal who is registered.
func (s *AccountService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			s.logger.Infow("password reset requested for unknown email")
			return nil
		}
		return err
	}

	token := uuid.NewString()
	if err := s.resets.Save(ctx, token, user.ID, s.resetTTL); err != nil {
		return err
	}

	data := resetEmail{
		Username: user.Name,
		ResetURL: fmt.Sprintf("%s/reset-password?token=%s", s.resetURL, token),
		ValidFor: s.resetTTL.String(),
	}
	if err := s.mailer.Send(mailer.ResetPasswordTemplate, user.Name, user.Email, data); err != nil {
		return fmt.Errorf("send reset email: %w", err)
	}
	return nil
}

// ResetPassword sets a new password for the owner of token and signs them
// out of every session.
func (s *AccountService) ResetPassword(ctx context.Context, token, newPassword string) error {
	userID, err := s.resets.Consume(ctx, token)
	if err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := user.Password.Set(newPassword); err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, user); err != nil {
		return err
	}

	if err := s.users.DeleteRefreshToken(ctx, user.ID); err != nil {
		s.logger.Warnw("could not revoke refresh token after reset", "user_id", user.ID, "error", err)
	}
	return nil
}
