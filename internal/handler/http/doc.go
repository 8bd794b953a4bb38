// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the JSON API. Session resolution, admin authorization, logging,
// tracing, metrics and compression are handled at this layer before
// requests are forwarded to the service layer.
package http
