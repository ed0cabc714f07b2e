// Package workers runs the server's periodic background jobs: the password
// expiry sweep and the cleanup of idle in-memory rate limit buckets.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
