// Package http implements the HTTP transport layer of the identity service.
//
// It exposes route wiring, request handlers and middleware for the REST API.
// Authentication, request tracing, access logging, metrics and compression
// are handled here before requests are delegated to the service layer. Service
// errors are translated to status codes in one place, errors_mapper.go.
package http
