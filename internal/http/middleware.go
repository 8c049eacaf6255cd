package httpapi

import (
	"log"
	"net/http"
	"time"
)

// responseTracker captures what the handler wrote so the request log line can
// carry the final status and payload size. The first WriteHeader wins; later
// calls keep the recorded status.
type responseTracker struct {
	http.ResponseWriter
	status int
	wrote  int
}

func (t *responseTracker) WriteHeader(code int) {
	if t.status == 0 {
		t.status = code
	}
	t.ResponseWriter.WriteHeader(code)
}

func (t *responseTracker) Write(p []byte) (int, error) {
	if t.status == 0 {
		t.status = http.StatusOK
	}
	n, err := t.ResponseWriter.Write(p)
	t.wrote += n
	return n, err
}

// RequestLogger writes one line per request: method, path, final status,
// response size and elapsed time.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		tracker := &responseTracker{ResponseWriter: w}
		next.ServeHTTP(tracker, r)
		status := tracker.status
		if status == 0 {
			status = http.StatusOK
		}
		log.Printf("%s %s -> %d (%d bytes, %s)", r.Method, r.URL.Path, status, tracker.wrote, time.Since(started).Round(time.Millisecond))
	})
}
