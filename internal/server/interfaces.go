package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// RunServer starts serving requests and blocks until ctx is cancelled
	// or a transport fails. A clean shutdown returns nil.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server, forcing it once ctx expires.
	Shutdown(ctx context.Context) error
}
