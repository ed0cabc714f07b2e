package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akwaabahomes/passcheck/internal/logger"
	"github.com/akwaabahomes/passcheck/internal/metrics"
	"github.com/akwaabahomes/passcheck/internal/mock"
	"github.com/akwaabahomes/passcheck/internal/strength"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRotationSvc(ctrl *gomock.Controller, maxAgeDays int) (*rotationService, *mock.MockUserRepository, *metrics.Metrics) {
	users := mock.NewMockUserRepository(ctrl)
	m := metrics.New("test")

	policy := strength.DefaultPolicy()
	policy.MaxAgeDays = maxAgeDays

	svc := NewRotationService(users, policy, m, logger.Nop()).(*rotationService)
	svc.now = func() time.Time { return fixedNow }
	return svc, users, m
}

func TestRotationService_MarkExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, m := newTestRotationSvc(ctrl, 90)
	ctx := context.Background()

	users.EXPECT().MarkExpiredPasswords(ctx, fixedNow.Add(-90*24*time.Hour)).Return(int64(3), nil)

	n, err := svc.MarkExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ExpiredFlagged))
}

func TestRotationService_MarkExpired_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestRotationSvc(ctrl, 0)

	// no repository call is expected
	n, err := svc.MarkExpired(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRotationService_MarkExpired_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, m := newTestRotationSvc(ctrl, 30)
	ctx := context.Background()

	users.EXPECT().MarkExpiredPasswords(ctx, gomock.Any()).Return(int64(0), errors.New("db down"))

	_, err := svc.MarkExpired(ctx)
	assert.ErrorContains(t, err, "flagging expired passwords failed")
	assert.Zero(t, testutil.ToFloat64(m.ExpiredFlagged))
}
