package middlewares

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Handle(t *testing.T) {
	cases := map[string]struct {
		incomingID   string
		generateNew  bool
		handlerCode  int
		expectedCode int
	}{
		"PropagatesIncomingID": {
			incomingID:   "abc-123",
			handlerCode:  http.StatusUnauthorized,
			expectedCode: http.StatusUnauthorized,
		},
		"GeneratesMissingID": {
			generateNew:  true,
			handlerCode:  http.StatusOK,
			expectedCode: http.StatusOK,
		},
		"ReplacesOversizedID": {
			incomingID:   strings.Repeat("x", maxRequestIDLength+1),
			generateNew:  true,
			handlerCode:  http.StatusBadRequest,
			expectedCode: http.StatusBadRequest,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			middleware := NewRequestIDMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)))

			var seenID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenID = RequestIDFromContext(r.Context())
				w.WriteHeader(tc.handlerCode)
			})

			request := httptest.NewRequest(http.MethodPost, "/api/signin", http.NoBody)
			if tc.incomingID != "" {
				request.Header.Set(RequestIDHeader, tc.incomingID)
			}
			w := httptest.NewRecorder()

			middleware.Handle(next).ServeHTTP(w, request)

			assert.Equal(t, tc.expectedCode, w.Code)
			assert.Equal(t, seenID, w.Header().Get(RequestIDHeader))
			if tc.generateNew {
				_, err := uuid.Parse(seenID)
				require.NoError(t, err)
			} else {
				assert.Equal(t, tc.incomingID, seenID)
			}

			log := buf.String()
			assert.Contains(t, log, fmt.Sprintf("%q:%q", "msg", "request completed"))
			assert.Contains(t, log, fmt.Sprintf("%q:%q", "request_id", seenID))
			assert.Contains(t, log, fmt.Sprintf("%q:%d", "status", tc.expectedCode))
		})
	}
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	assert.Empty(t, RequestIDFromContext(request.Context()))
}

type headerMiddleware string

func (m headerMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("X-Order", string(m))
		next.ServeHTTP(w, r)
	})
}

func TestChain(t *testing.T) {
	h := Chain(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}),
		headerMiddleware("first"),
		headerMiddleware("second"),
	)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []string{"first", "second"}, w.Header().Values("X-Order"))
}
