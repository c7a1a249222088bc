package middlewares

import "net/http"

// Middleware wraps an http.Handler with additional behaviour.
type Middleware interface {
	Handle(next http.Handler) http.Handler
}

// Chain applies the middlewares so that the first one is the outermost.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i].Handle(h)
	}

	return h
}
