package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akwaabahomes/passcheck/internal/config"
	"github.com/akwaabahomes/passcheck/internal/logger"
	"github.com/akwaabahomes/passcheck/internal/mock"
	"github.com/akwaabahomes/passcheck/internal/service"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	strength *mock.MockStrengthService
	auth     *mock.MockAuthService
	appInfo  *mock.MockAppInfoService
}

// newMockedHandler builds a Handler backed by gomock services, without a rate
// limiter or metrics.
func newMockedHandler(t *testing.T) (*Handler, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := serviceMocks{
		strength: mock.NewMockStrengthService(ctrl),
		auth:     mock.NewMockAuthService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		StrengthService: m.strength,
		AuthService:     m.auth,
		AppInfoService:  m.appInfo,
	}, nil, nil, config.Server{}, logger.Nop())

	return h, m
}

// injectNopLogger puts a nop logger into the request context the way
// withTraceID does.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

// serve sends the request through the full router.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}
