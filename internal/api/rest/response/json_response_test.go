package response

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJSONResponse(t *testing.T) {
	cases := map[string]struct {
		status   int
		data     any
		expected string
	}{
		"Struct": {http.StatusOK, struct{ Name string }{Name: "test"}, `{"Name":"test"}`},
		"String": {http.StatusOK, "test", `"test"`},
		"Map":    {http.StatusCreated, map[string]int{"n": 1}, `{"n":1}`},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			JSONResponse(rr, tc.status, tc.data)
			checkResponse(t, rr, tc.status, tc.expected)
		})
	}
}

func TestJSONErrorResponse(t *testing.T) {
	cases := map[string]struct {
		status   int
		message  string
		expected string
	}{
		"Unauthorized": {http.StatusUnauthorized, "Invalid credentials", `{"error":"Invalid credentials"}`},
		"NotAllowed":   {http.StatusMethodNotAllowed, "Method not allowed", `{"error":"Method not allowed"}`},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			JSONErrorResponse(rr, tc.status, tc.message)
			checkResponse(t, rr, tc.status, tc.expected)
		})
	}
}

func checkResponse(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedBody string) {
	result := rr.Result()
	defer result.Body.Close()

	body, _ := io.ReadAll(result.Body)

	if result.StatusCode != expectedStatus {
		t.Errorf("Expected response code %v. Got %v", expectedStatus, result.StatusCode)
	}
	if string(body) != expectedBody+"\n" {
		t.Errorf("Expected response %s. Got %s", expectedBody, string(body))
	}
	if ct := result.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected content type application/json. Got %s", ct)
	}
	if cc := result.Header.Get("Cache-Control"); cc != "no-store" {
		t.Errorf("Expected cache control no-store. Got %s", cc)
	}
}
