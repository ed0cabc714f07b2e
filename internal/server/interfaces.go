package server

import "context"

// Server defines the lifecycle contract for transport servers managed by this
// package.
type Server interface {
	// RunServer serves requests until ctx is cancelled, a termination signal
	// arrives or the listener fails. It shuts down gracefully before
	// returning.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting connections and waits for in-flight requests
	// until ctx expires.
	Shutdown(ctx context.Context) error
}
