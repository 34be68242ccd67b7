// Package middleware provides the HTTP middleware stack: panic recovery,
// request IDs, access logging, CORS, rate limiting and bearer-token auth.
package middleware

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// Chain composes middleware left to right: Chain(a, b)(h) yields a(b(h)),
// so the first middleware in the list runs outermost.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}
