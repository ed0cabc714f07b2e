// Package server runs the passcheck HTTP API.
//
// It owns the listener lifecycle: startup, signal handling, and graceful
// shutdown with a bounded drain period.
package server
