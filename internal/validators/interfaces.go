// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AkwaabaHomes

// Package validators checks the shape of incoming request bodies: required
// fields, email format and length bounds. Password strength is not judged
// here; that is the strength package's job once a body is well-formed.
package validators

import "context"

// Validator validates a request value. When fields are given, only those
// struct fields are checked, so one request model can serve several
// endpoints.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
