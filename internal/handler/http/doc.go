// Package http implements the HTTP transport layer of the authentication
// server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as bearer authentication, request tracing
// and access logging are handled in this package before requests are
// delegated to the service layer. Translation of service errors into status
// codes happens only here, in errors_mapper.go.
package http
