package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"unilocal/internal/auth"
	"unilocal/internal/domain/places"
	"unilocal/internal/domain/storage"
	"unilocal/internal/domain/users"
	"unilocal/internal/ratelimiter"
	"unilocal/internal/services"
	"unilocal/internal/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	regularID   int64 = 1
	moderatorID int64 = 2
)

type testApp struct {
	*application
	places   *storetest.Places
	reviews  *storetest.Reviews
	users    *storetest.Users
	images   *storetest.Images
	notifier *storetest.Notifier
}

func newTestApplication(t *testing.T, cfg config, seed ...*places.Place) *testApp {
	t.Helper()

	logger := zap.NewNop().Sugar()

	placeStore := storetest.NewPlaces(seed...)
	reviewStore := storetest.NewReviews()
	userStore := storetest.NewUsers(
		&users.User{ID: regularID, Name: "Ana", Username: "ana", Email: "ana@example.com", Role: users.RoleRegular},
		&users.User{ID: moderatorID, Name: "Mod", Username: "mod", Email: "mod@example.com", Role: users.RoleModerator},
	)
	notifier := &storetest.Notifier{}
	imageStore := &storetest.Images{}

	if cfg.rateLimiter.RequestsPerTimeFrame == 0 {
		cfg.rateLimiter.RequestsPerTimeFrame = 100
		cfg.rateLimiter.TimeFrame = time.Minute
	}

	app := &application{
		config: cfg,
		store: &storage.Container{
			Users:       userStore,
			Places:      placeStore,
			Reviews:     reviewStore,
			PushTokens:  storetest.NewPushTokens(),
			ResetTokens: &storetest.ResetTokens{},
		},
		logger:        logger,
		authenticator: auth.NewJWTAuthenticator("access-secret", "refresh-secret", "unilocal", "unilocal", time.Hour, 2*time.Hour),
		rateLimiter:   ratelimiter.NewFixedWindowLimiter(cfg.rateLimiter.RequestsPerTimeFrame, cfg.rateLimiter.TimeFrame),
		turnstile:     newTurnstileClient(),
		accounts:      services.NewAccountService(userStore, &storetest.ResetTokens{}, &storetest.Mailer{}, logger, time.Hour, "http://localhost:3000"),
		places:        services.NewPlaceService(placeStore, imageStore, logger),
		reviews:       services.NewReviewService(reviewStore, placeStore, logger),
		favorites:     services.NewFavoriteService(userStore, placeStore, logger),
		moderation:    services.NewModerationService(placeStore, notifier, logger),
	}

	return &testApp{application: app, places: placeStore, reviews: reviewStore, users: userStore, images: imageStore, notifier: notifier}
}

func (ta *testApp) bearer(t *testing.T, userID int64, role users.Role) string {
	t.Helper()
	access, _, err := ta.authenticator.GenerateTokens(userID, string(role))
	require.NoError(t, err)
	return "Bearer " + access
}

func executeRequest(req *http.Request, mux http.Handler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func newRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.RemoteAddr = "10.0.0.1:4242"
	return req
}

func decodeData(t *testing.T, rr *httptest.ResponseRecorder, into any) {
	t.Helper()
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	require.NoError(t, json.Unmarshal(env.Data, into))
}

func approvedPlace(id int64, name string, category places.Category) *places.Place {
	return &places.Place{
		ID:          id,
		Name:        name,
		Category:    category,
		CreatedBy:   regularID,
		Status:      places.StatusApproved,
		OpeningTime: "00:00",
		ClosingTime: "23:59",
		ImageURLs:   []string{},
	}
}

func TestHealthRequiresBasicAuth(t *testing.T) {
	cfg := config{env: "test"}
	cfg.auth.basic = basicConfig{user: "admin", pass: "secret"}
	ta := newTestApplication(t, cfg)
	mux := ta.mount()

	t.Run("missing header", func(t *testing.T) {
		rr := executeRequest(newRequest(t, http.MethodGet, "/v1/health", nil), mux)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("WWW-Authenticate"))
	})

	t.Run("wrong password", func(t *testing.T) {
		req := newRequest(t, http.MethodGet, "/v1/health", nil)
		req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("admin:nope")))
		assert.Equal(t, http.StatusUnauthorized, executeRequest(req, mux).Code)
	})

	t.Run("valid credentials", func(t *testing.T) {
		req := newRequest(t, http.MethodGet, "/v1/health", nil)
		req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("admin:secret")))
		rr := executeRequest(req, mux)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"env":"test"`)
	})
}

func TestAuthTokenMiddleware(t *testing.T) {
	ta := newTestApplication(t, config{})
	mux := ta.mount()

	t.Run("no token", func(t *testing.T) {
		rr := executeRequest(newRequest(t, http.MethodGet, "/v1/users/me", nil), mux)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := newRequest(t, http.MethodGet, "/v1/users/me", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, executeRequest(req, mux).Code)
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		_, refresh, err := ta.authenticator.GenerateTokens(regularID, string(users.RoleRegular))
		require.NoError(t, err)
		req := newRequest(t, http.MethodGet, "/v1/users/me", nil)
		req.Header.Set("Authorization", "Bearer "+refresh)
		assert.Equal(t, http.StatusUnauthorized, executeRequest(req, mux).Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		req := newRequest(t, http.MethodGet, "/v1/users/me", nil)
		req.Header.Set("Authorization", ta.bearer(t, 999, users.RoleRegular))
		assert.Equal(t, http.StatusUnauthorized, executeRequest(req, mux).Code)
	})

	t.Run("valid token", func(t *testing.T) {
		req := newRequest(t, http.MethodGet, "/v1/users/me", nil)
		req.Header.Set("Authorization", ta.bearer(t, regularID, users.RoleRegular))
		rr := executeRequest(req, mux)
		require.Equal(t, http.StatusOK, rr.Code)

		var me users.User
		decodeData(t, rr, &me)
		assert.Equal(t, "ana", me.Username)
		assert.NotContains(t, rr.Body.String(), "password")
	})
}

func TestModerationRequiresModeratorRole(t *testing.T) {
	ta := newTestApplication(t, config{})
	mux := ta.mount()

	// The role claim in the token is ignored; the stored role decides.
	req := newRequest(t, http.MethodGet, "/v1/moderation/places", nil)
	req.Header.Set("Authorization", ta.bearer(t, regularID, users.RoleModerator))
	assert.Equal(t, http.StatusForbidden, executeRequest(req, mux).Code)

	req = newRequest(t, http.MethodGet, "/v1/moderation/places", nil)
	req.Header.Set("Authorization", ta.bearer(t, moderatorID, users.RoleModerator))
	assert.Equal(t, http.StatusOK, executeRequest(req, mux).Code)
}

func TestRateLimiterMiddleware(t *testing.T) {
	cfg := config{rateLimiter: ratelimiter.Config{RequestsPerTimeFrame: 2, TimeFrame: time.Minute, Enabled: true}}
	ta := newTestApplication(t, cfg)
	mux := ta.mount()

	for i := 0; i < 2; i++ {
		rr := executeRequest(newRequest(t, http.MethodGet, "/v1/places", nil), mux)
		require.Equal(t, http.StatusOK, rr.Code)
	}

	rr := executeRequest(newRequest(t, http.MethodGet, "/v1/places", nil), mux)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("Retry-After"))
}

func TestRateLimiterDisabled(t *testing.T) {
	cfg := config{rateLimiter: ratelimiter.Config{RequestsPerTimeFrame: 1, TimeFrame: time.Minute, Enabled: false}}
	mux := newTestApplication(t, cfg).mount()

	for i := 0; i < 5; i++ {
		rr := executeRequest(newRequest(t, http.MethodGet, "/v1/places", nil), mux)
		assert.Equal(t, http.StatusOK, rr.Code)
	}
}
