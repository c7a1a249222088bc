package middlewares

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type contextKey string

const (
	RequestIDHeader               = "X-Request-ID"
	requestIDContextKey contextKey = "request_id"
	maxRequestIDLength            = 128
)

// RequestIDMiddleware assigns every request an id, echoes it in the response
// and logs the completed request.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// Handle propagates a sane incoming X-Request-ID or generates a new UUID.
func (m *RequestIDMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(sw, r.WithContext(context.WithValue(r.Context(), requestIDContextKey, id)))

		m.logger.InfoContext(
			r.Context(),
			"request completed",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", time.Since(start),
		)
	})
}

// RequestIDFromContext returns the id set by RequestIDMiddleware, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}

type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(status int) {
	if !w.wroteHeader {
		w.status = status
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(status)
}

// NewRequestIDMiddleware returns a RequestIDMiddleware logging to logger.
func NewRequestIDMiddleware(logger *slog.Logger) Middleware {
	return &RequestIDMiddleware{logger: logger}
}
