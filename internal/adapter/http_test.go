// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AkwaabaHomes

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akwaabahomes/passcheck/internal/config"
	"github.com/akwaabahomes/passcheck/internal/logger"
	"github.com/akwaabahomes/passcheck/internal/strength"
	"github.com/akwaabahomes/passcheck/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJ1c2VyX2lkIjoxfQ.signature"

// newTestAdapter returns an httpServerAdapter pointed at serverURL.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── FetchPolicy ─────────────────────────────────────────────────────────────

func TestFetchPolicy_Success(t *testing.T) {
	policy := strength.DefaultPolicy()
	policy.MinLength = 14

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/password/policy", r.URL.Path)
		writeJSON(t, w, http.StatusOK, policy)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).FetchPolicy(context.Background())

	require.NoError(t, err)
	assert.Equal(t, policy, got)
}

func TestFetchPolicy_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).FetchPolicy(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Evaluate ────────────────────────────────────────────────────────────────

func TestEvaluate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/password/strength", r.URL.Path)

		var req models.EvaluateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Tr0ub4dor&3xyz", req.Password)
		assert.Equal(t, "kofi@example.com", req.Email)

		writeJSON(t, w, http.StatusOK, models.NewEvaluateResponse(strength.Result{Score: 3, MeetsRequirements: true}))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Evaluate(context.Background(), models.EvaluateRequest{
		Password: "Tr0ub4dor&3xyz",
		Email:    "kofi@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, got.Score)
	assert.Equal(t, "Strong", got.Label)
	assert.Equal(t, "green", got.Color)
	assert.True(t, got.MeetsRequirements)
}

func TestEvaluate_TooManyRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Evaluate(context.Background(), models.EvaluateRequest{Password: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooManyRequests)
	assert.Contains(t, err.Error(), "30s")
}

// ── Generate ────────────────────────────────────────────────────────────────

func TestGenerate_SendsLength(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/password/generate", r.URL.Path)

		var req models.GenerateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 24, req.Length)

		writeJSON(t, w, http.StatusOK, models.GenerateResponse{Password: "abc", Length: 24, Score: 4, Label: "Very Strong"})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Generate(context.Background(), 24)

	require.NoError(t, err)
	assert.Equal(t, 24, got.Length)
	assert.Equal(t, "Very Strong", got.Label)
}

func TestGenerate_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid data provided", http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Generate(context.Background(), 9000)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/user/register", r.URL.Path)

		w.Header().Set("Authorization", "Bearer "+testToken)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Register(context.Background(), models.RegisterRequest{Login: "ama@example.com", Password: "x"})

	require.NoError(t, err)
	assert.Equal(t, testToken, a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "login already exists", http.StatusConflict)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Register(context.Background(), models.RegisterRequest{Login: "ama@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Empty(t, a.Token())
}

func TestRegister_PolicyViolation(t *testing.T) {
	violation := models.PolicyViolation{
		Error: "password does not meet the password policy",
		Result: strength.Result{
			Score:    1,
			Feedback: []string{"Password must be at least 12 characters long"},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnprocessableEntity, violation)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).Register(context.Background(), models.RegisterRequest{Login: "ama@example.com", Password: "short"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPolicyViolation)

	var ve *ViolationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, violation.Result, ve.Result)
	assert.Equal(t, violation.Error, ve.Error())
}

func TestRegister_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).Register(context.Background(), models.RegisterRequest{Login: "ama@example.com"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bearer token")
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/login", r.URL.Path)
		w.Header().Set("Authorization", "Bearer "+testToken)
		writeJSON(t, w, http.StatusOK, models.LoginResponse{PasswordExpired: true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.LoginRequest{Login: "ama@example.com", Password: "x"})

	require.NoError(t, err)
	assert.True(t, got.PasswordExpired)
	assert.Equal(t, testToken, a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid login/password", http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.LoginRequest{Login: "ama@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogin_BadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.LoginRequest{Login: "ama@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadGateway)
}

// ── ChangePassword ──────────────────────────────────────────────────────────

func TestChangePassword_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/user/password", r.URL.Path)
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))

		var req models.ChangePasswordRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "old", req.CurrentPassword)
		assert.Equal(t, "new", req.NewPassword)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(testToken)

	err := a.ChangePassword(context.Background(), models.ChangePasswordRequest{CurrentPassword: "old", NewPassword: "new"})
	require.NoError(t, err)
}

func TestChangePassword_NotLoggedIn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected without a token")
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).ChangePassword(context.Background(), models.ChangePasswordRequest{})
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestChangePassword_Reused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "password was used recently", http.StatusConflict)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(testToken)

	err := a.ChangePassword(context.Background(), models.ChangePasswordRequest{CurrentPassword: "old", NewPassword: "old"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "used recently")
}

// ── Version ─────────────────────────────────────────────────────────────────

func TestVersion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.VersionResponse{Version: "v1.2.0", BuildDate: "2026-10-01", BuildCommit: "abc123"})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "v1.2.0", got.Version)
	assert.Equal(t, "abc123", got.BuildCommit)
}

// ── token ───────────────────────────────────────────────────────────────────

func TestSetToken_Trims(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:8080")
	a.SetToken("  abc  ")
	assert.Equal(t, "abc", a.Token())
}

// ── mapHTTPError ────────────────────────────────────────────────────────────

func TestDecodeViolation_MalformedBody(t *testing.T) {
	err := decodeViolation([]byte("not json"))

	assert.ErrorIs(t, err, ErrPolicyViolation)
	assert.Equal(t, ErrPolicyViolation.Error(), err.Error())
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.LoginRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

// ── normalizeBaseURL ────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "  "}, logger.Nop())
	require.Error(t, err)
}
