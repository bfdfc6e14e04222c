package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines middleware so that the first one given runs first:
// Chain(a, b)(h) is a(b(h)).
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// Protected guards a route with auth. Path values named in ids are
// validated first, so a malformed id is reported even without a token.
func Protected(auth Middleware, ids ...string) Middleware {
	mws := make([]Middleware, 0, len(ids)+1)
	for _, name := range ids {
		mws = append(mws, PathID(name))
	}
	return Chain(append(mws, auth)...)
}
