package store

import (
	"context"
	"database/sql/driver"
	"errors"

	"github.com/jackc/pgerrcode"
)

// IsRetryable reports whether err is a transient database failure that a
// later attempt may not hit: lost connections, serialization failures,
// deadlocks and a server that is starting up.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	switch code := postgresError(err); {
	case pgerrcode.IsConnectionException(code):
		return true
	case code == pgerrcode.SerializationFailure,
		code == pgerrcode.DeadlockDetected,
		code == pgerrcode.TransactionRollback,
		code == pgerrcode.CannotConnectNow:
		return true
	}

	return false
}
