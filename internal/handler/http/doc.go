// Package http implements the HTTP transport layer of passcheck.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Tracing, access logging, metrics, rate limiting, response compression
// and authentication are handled in this package before requests are
// delegated to the service layer.
package http
