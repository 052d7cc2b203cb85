// Package middleware holds the net/http middleware mounted by the router:
// request and correlation IDs, the per-request lookup memo, panic recovery,
// tracing with server metrics, and access logging.
//
// Status capture relies on chi's WrapResponseWriter, and request deadlines
// use chi's Timeout middleware directly.
package middleware
