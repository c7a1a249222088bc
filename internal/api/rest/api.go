package rest

import (
	"net/http"

	"github.com/CameronXie/storefront-auth/internal/api/rest/middlewares"
	"github.com/CameronXie/storefront-auth/internal/api/rest/response"
)

const (
	SignInPath = "/api/signin"
	HealthPath = "/healthz"
)

type RouterConfig struct {
	SignInHandler http.Handler
	HealthHandler http.Handler
	Middlewares   []middlewares.Middleware
}

// NewMuxWithHandlers initializes a new HTTP handler with routes defined by the given RouterConfig.
// The sign-in route accepts every method so the authenticator can reject non-POST requests itself.
func NewMuxWithHandlers(cfg *RouterConfig) http.Handler {
	router := http.NewServeMux()

	router.Handle(SignInPath, cfg.SignInHandler)
	router.Handle("GET "+HealthPath, cfg.HealthHandler)
	router.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		response.JSONErrorResponse(w, http.StatusNotFound, "not found")
	})

	return middlewares.Chain(router, cfg.Middlewares...)
}
