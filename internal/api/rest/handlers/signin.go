package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/CameronXie/storefront-auth/internal/api/rest/middlewares"
	"github.com/CameronXie/storefront-auth/internal/api/rest/response"
	"github.com/CameronXie/storefront-auth/internal/authn"
)

const (
	DefaultMaxBodyBytes        = 1 << 20
	internalServerErrorMessage = "internal server error"
)

// SignInService is the credential check behind the sign-in endpoint.
type SignInService interface {
	Handle(method string, body []byte) (*authn.Response, error)
}

// SignInHandler adapts SignInService to HTTP and owns the mapping from
// authentication failures to status codes.
type SignInHandler struct {
	service      SignInService
	maxBodyBytes int64
	logger       *slog.Logger
}

// ServeHTTP reads the request body, runs the sign-in check and writes the
// profile or the error as JSON.
func (h *SignInHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := middlewares.RequestIDFromContext(r.Context())

	// Other methods are rejected without reading the body.
	var body []byte
	if r.Method == http.MethodPost {
		var readErr error
		body, readErr = io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
		if readErr != nil {
			h.logger.WarnContext(r.Context(), "failed to read request body", "request_id", requestID, "error", readErr)
			response.JSONErrorResponse(w, http.StatusBadRequest, authn.MissingCredentialsMessage)
			return
		}
	}

	resp, err := h.service.Handle(r.Method, body)
	if err != nil {
		h.writeError(w, r, requestID, err)
		return
	}

	h.logger.InfoContext(r.Context(), "user signed in", "request_id", requestID, "user_id", resp.User.ID)
	response.JSONResponse(w, http.StatusOK, resp)
}

func (h *SignInHandler) writeError(w http.ResponseWriter, r *http.Request, requestID string, err error) {
	var authErr *authn.Error
	if !errors.As(err, &authErr) {
		h.logger.ErrorContext(r.Context(), "failed to sign in", "request_id", requestID, "error", err)
		response.JSONErrorResponse(w, http.StatusInternalServerError, internalServerErrorMessage)
		return
	}

	status := StatusFor(authErr.Kind)
	if status == http.StatusMethodNotAllowed {
		w.Header().Set("Allow", http.MethodPost)
	}

	h.logger.WarnContext(
		r.Context(),
		"sign-in rejected",
		"request_id", requestID,
		"kind", authErr.Kind.String(),
		"error", err,
	)
	response.JSONErrorResponse(w, status, authErr.Kind.Message())
}

// StatusFor maps an authentication failure kind to its HTTP status code.
func StatusFor(kind authn.Kind) int {
	switch kind {
	case authn.KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case authn.KindBadRequest:
		return http.StatusBadRequest
	case authn.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// NewSignInHandler creates the sign-in handler. A non-positive maxBodyBytes
// falls back to DefaultMaxBodyBytes.
func NewSignInHandler(service SignInService, maxBodyBytes int64, logger *slog.Logger) http.Handler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}

	return &SignInHandler{
		service:      service,
		maxBodyBytes: maxBodyBytes,
		logger:       logger,
	}
}
