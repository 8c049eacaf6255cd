package httpapi

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func TestRequestLoggerPreservesResponse(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Classroom not found"}`))
	})
	rec := httptest.NewRecorder()
	RequestLogger(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/classrooms/missing", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if rec.Body.String() != `{"error":"Classroom not found"}` {
		t.Errorf("body = %q", rec.Body.String())
	}
	if !strings.Contains(buf.String(), "GET /api/classrooms/missing -> 404") {
		t.Errorf("log line = %q, want method, path and status", buf.String())
	}
}

func TestResponseTrackerDefaults(t *testing.T) {
	tracker := &responseTracker{ResponseWriter: httptest.NewRecorder()}
	n, err := tracker.Write([]byte("ok"))
	if err != nil || n != 2 {
		t.Fatalf("Write() = (%d, %v)", n, err)
	}
	if tracker.status != http.StatusOK {
		t.Errorf("implicit status = %d, want %d", tracker.status, http.StatusOK)
	}
	if tracker.wrote != 2 {
		t.Errorf("wrote = %d, want 2", tracker.wrote)
	}

	tracker.WriteHeader(http.StatusInternalServerError)
	if tracker.status != http.StatusOK {
		t.Errorf("status after late WriteHeader = %d, want first value kept", tracker.status)
	}
}
