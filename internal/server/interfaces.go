package server

import "context"

// Server defines the lifecycle contract for the transport servers managed
// by this package.
type Server interface {
	// RunServer serves requests until ctx is cancelled or a listener fails,
	// then shuts every transport down.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the servers and frees associated resources.
	Shutdown()
}

type transport interface {
	run() error
	shutdown()
}
