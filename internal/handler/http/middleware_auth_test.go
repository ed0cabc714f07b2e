package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akwaabahomes/passcheck/internal/service"
	"github.com/akwaabahomes/passcheck/internal/utils"
	"github.com/akwaabahomes/passcheck/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := injectNopLogger(httptest.NewRequest(http.MethodPut, "/api/user/password", nil))
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		parseErr error
		parsed   bool
		wantBody string
	}{
		{name: "missing header", header: "", wantBody: ErrEmptyAuthorizationHeader.Error()},
		{name: "no scheme", header: "abc.def.ghi", wantBody: utils.ErrInvalidAuthorizationHeader.Error()},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantBody: utils.ErrInvalidAuthorizationHeader.Error()},
		{name: "empty token", header: "Bearer ", wantBody: utils.ErrInvalidAuthorizationHeader.Error()},
		{name: "expired", header: "Bearer old.token", parseErr: service.ErrTokenIsExpired, parsed: true, wantBody: service.ErrTokenIsExpired.Error()},
		{name: "invalid", header: "Bearer bad.token", parseErr: errors.New("signature is invalid"), parsed: true, wantBody: http.StatusText(http.StatusUnauthorized)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newMockedHandler(t)
			if tt.parsed {
				mocks.auth.EXPECT().ParseToken(gomock.Any(), gomock.Any()).Return(models.Token{}, tt.parseErr)
			}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { nextCalled = true })

			rr := executeAuth(h, tt.header, next)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantBody)
			assert.False(t, nextCalled)
		})
	}
}

func TestAuth_StoresUserID(t *testing.T) {
	h, mocks := newMockedHandler(t)
	mocks.auth.EXPECT().ParseToken(gomock.Any(), "good.token").Return(models.Token{UserID: 42}, nil)

	var gotID int64
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, ok = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	rr := executeAuth(h, "bearer good.token", next)

	require.Equal(t, http.StatusNoContent, rr.Code)
	require.True(t, ok)
	assert.Equal(t, int64(42), gotID)
}
