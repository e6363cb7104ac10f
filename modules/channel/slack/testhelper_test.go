package slack

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// capturedRequest is one request received by a recordingServer.
type capturedRequest struct {
	Path          string
	ContentType   string
	Authorization string
	Body          string
}

// recordingServer answers every request with a fixed status and body and
// records what it received.
type recordingServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []capturedRequest
}

func newRecordingServer(t *testing.T, status int, body string) *recordingServer {
	t.Helper()
	rs := &recordingServer{}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		rs.mu.Lock()
		rs.requests = append(rs.requests, capturedRequest{
			Path:          r.URL.Path,
			ContentType:   r.Header.Get("Content-Type"),
			Authorization: r.Header.Get("Authorization"),
			Body:          string(b),
		})
		rs.mu.Unlock()
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(rs.Close)
	return rs
}

func (rs *recordingServer) Requests() []capturedRequest {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	out := make([]capturedRequest, len(rs.requests))
	copy(out, rs.requests)
	return out
}

func (rs *recordingServer) only(t *testing.T) capturedRequest {
	t.Helper()
	reqs := rs.Requests()
	if len(reqs) != 1 {
		t.Fatalf("server received %d requests, want 1", len(reqs))
	}
	return reqs[0]
}
