// Package server wires and runs the footy-tipping transport servers.
//
// It owns the HTTP and gRPC listener lifecycles: startup, signal handling
// and graceful shutdown of every enabled transport.
package server
