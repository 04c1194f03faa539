// Package server wires and runs the HTTP transport that serves the resolved
// configuration.
//
// It covers startup, signal handling and graceful shutdown.
package server
