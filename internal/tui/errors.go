// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AkwaabaHomes

package tui

import (
	"errors"
	"strings"

	"github.com/akwaabahomes/passcheck/internal/adapter"
	"github.com/akwaabahomes/passcheck/internal/app"
)

func isServerUnavailable(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}

// humanizeError turns an adapter error into a message for the user. Callers
// map conflicts themselves since their meaning depends on the page.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case isServerUnavailable(err):
		return app.MsgServerUnavailable
	case errors.Is(err, adapter.ErrTooManyRequests):
		return app.MsgRateLimited
	case errors.Is(err, adapter.ErrUnauthorized):
		return app.MsgInvalidLoginPassword
	case errors.Is(err, adapter.ErrNotLoggedIn):
		return app.MsgLoginRequired
	case errors.Is(err, adapter.ErrPolicyViolation):
		return app.MsgPasswordTooWeak
	}

	return err.Error()
}

// violationResult returns the server's evaluation carried by err, if any.
func violationResult(err error) (*adapter.ViolationError, bool) {
	var ve *adapter.ViolationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
