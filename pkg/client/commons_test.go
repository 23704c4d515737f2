package client

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

// newTestClient points a client at a scripted test server.
func newTestClient(t *testing.T, handler http.Handler) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{ApiKey: "test-key", Url: srv.URL, Timeout: 5 * time.Second})
}

// script replays canned JSON bodies in order, counting requests. The last
// body repeats once the script runs out.
type script struct {
	mu        sync.Mutex
	calls     int
	responses []string
}

func (s *script) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.calls
	if idx >= len(s.responses) {
		idx = len(s.responses) - 1
	}
	s.calls++
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(s.responses[idx]))
}

func (s *script) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func statusBody(state string) string {
	return fmt.Sprintf(`{"success":true,"data":{"status":%q}}`, state)
}

const completedBody = `{"success":true,"data":{"status":"completed","content":"Generated article text","blogTopic":"AI in Business"}}`

const failedBody = `{"success":true,"data":{"status":"failed","error":"content policy violation"}}`
