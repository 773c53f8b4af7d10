// Package http implements the HTTP transport layer of the shop API.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as bearer authentication, request tracing,
// access logging, CORS, compression and Prometheus metrics are handled in
// this package before requests are delegated to the service layer. Every
// failed request is answered by one error translator (see writeError).
package http
