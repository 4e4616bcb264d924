// Package http implements the REST transport of the media server.
//
// It wires the chi router, the request handlers of the auth, users and media
// resources, and the middleware chain that runs in front of them: real IP
// resolution, request tracing, access logging, panic recovery, metrics,
// security headers, CORS, rate limiting, bearer authentication and request
// body validation. Every response body is JSON.
package http
