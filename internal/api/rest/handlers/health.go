package handlers

import (
	"net/http"

	"github.com/CameronXie/storefront-auth/internal/api/rest/response"
)

// UserCounter reports how many users the directory holds.
type UserCounter interface {
	Len() int
}

// HealthResponse is the body served by HealthHandler.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Users   int    `json:"users"`
}

// HealthHandler reports liveness along with the build version and directory size.
type HealthHandler struct {
	users   UserCounter
	version string
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	response.JSONResponse(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: h.version,
		Users:   h.users.Len(),
	})
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(users UserCounter, version string) http.Handler {
	return &HealthHandler{users: users, version: version}
}
