// Package server runs the transport servers of the contact store.
//
// It starts the HTTP and gRPC servers that are configured, waits for a stop
// signal and shuts both down gracefully.
package server
