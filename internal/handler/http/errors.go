// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AkwaabaHomes

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request has no "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoUserInContext means an authenticated route ran without the auth
	// middleware in front of it.
	ErrNoUserInContext = errors.New("no user id in request context")
)
