package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newSiteverifyServer(t *testing.T, calls *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		if !assert.NoError(t, r.ParseForm()) {
			return
		}
		assert.Equal(t, "turnstile-secret", r.PostForm.Get("secret"))

		resp := map[string]any{"success": false, "hostname": "unilocal.app"}
		if r.PostForm.Get("response") == "good-token" {
			resp["success"] = true
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestTurnstileGuardsSignUpInProduction(t *testing.T) {
	var calls int32
	srv := newSiteverifyServer(t, &calls)

	cfg := config{env: "production"}
	cfg.turnstile = turnstileConfig{secretKey: "turnstile-secret", verifyURL: srv.URL, expectedHostname: "unilocal.app"}
	mux := newTestApplication(t, cfg).mount()

	signUp := func(username, token string) int {
		body := map[string]string{
			"name": "Eva", "username": username, "email": username + "@example.com", "password": "secret1",
		}
		if token != "" {
			body["cf_turnstile_response"] = token
		}
		return executeRequest(newRequest(t, http.MethodPost, "/v1/authentication/user", body), mux).Code
	}

	assert.Equal(t, http.StatusBadRequest, signUp("eva1", ""))
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls), "missing token is refused locally")

	assert.Equal(t, http.StatusBadRequest, signUp("eva2", "bad-token"))
	assert.Equal(t, http.StatusCreated, signUp("eva3", "good-token"))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestTurnstileGuardsPasswordResetInProduction(t *testing.T) {
	var calls int32
	srv := newSiteverifyServer(t, &calls)

	cfg := config{env: "production"}
	cfg.turnstile = turnstileConfig{secretKey: "turnstile-secret", verifyURL: srv.URL}
	mux := newTestApplication(t, cfg).mount()

	rr := executeRequest(newRequest(t, http.MethodPost, "/v1/authentication/password-reset", map[string]string{
		"email": "ana@example.com", "cf_turnstile_response": "bad-token",
	}), mux)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = executeRequest(newRequest(t, http.MethodPost, "/v1/authentication/password-reset", map[string]string{
		"email": "ana@example.com", "cf_turnstile_response": "good-token",
	}), mux)
	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestTurnstileHostnameMismatch(t *testing.T) {
	var calls int32
	srv := newSiteverifyServer(t, &calls)

	cfg := config{env: "production"}
	cfg.turnstile = turnstileConfig{secretKey: "turnstile-secret", verifyURL: srv.URL, expectedHostname: "other.app"}
	ta := newTestApplication(t, cfg)

	_, err := ta.verifyTurnstile(context.Background(), "good-token", "10.0.0.1")
	assert.ErrorIs(t, err, ErrTurnstileFailed)
}

func TestTurnstileSkippedOutsideProduction(t *testing.T) {
	cfg := config{env: "development"}
	cfg.turnstile = turnstileConfig{verifyURL: "http://127.0.0.1:1"}
	mux := newTestApplication(t, cfg).mount()

	rr := executeRequest(newRequest(t, http.MethodPost, "/v1/authentication/user", map[string]string{
		"name": "Eva", "username": "eva", "email": "eva@example.com", "password": "secret1",
	}), mux)
	assert.Equal(t, http.StatusCreated, rr.Code)
}
