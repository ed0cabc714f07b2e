package store

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("x"), false},
		{"bad conn", fmt.Errorf("wrapped: %w", driver.ErrBadConn), true},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), true},
		{"serialization", pgError(pgerrcode.SerializationFailure), true},
		{"deadlock", pgError(pgerrcode.DeadlockDetected), true},
		{"starting up", pgError(pgerrcode.CannotConnectNow), true},
		{"unique violation", pgError(pgerrcode.UniqueViolation), false},
		{"syntax", fmt.Errorf("%w: %w", ErrExecutingQuery, pgError(pgerrcode.SyntaxError)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}
