package handlers

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	models "io.winapps.portfolio/internal/models/portfolio"
)

// streamRecorder lets the test read the body while the handler is still
// writing to it.
type streamRecorder struct {
	*httptest.ResponseRecorder
	mu sync.Mutex
}

func (r *streamRecorder) Write(b []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ResponseRecorder.Write(b)
}

func (r *streamRecorder) WriteString(s string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ResponseRecorder.WriteString(s)
}

func (r *streamRecorder) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ResponseRecorder.Flush()
}

func (r *streamRecorder) body() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ResponseRecorder.Body.String()
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestSubscribeStreamsSnapshots(t *testing.T) {
	ts := newTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/subscribe/hobbies", nil).WithContext(ctx)
	rec := &streamRecorder{ResponseRecorder: httptest.NewRecorder()}

	done := make(chan struct{})
	go func() {
		ts.router.ServeHTTP(rec, req)
		close(done)
	}()

	waitFor(t, "initial snapshot", func() bool {
		return strings.Count(rec.body(), "event:snapshot") == 1
	})
	if !strings.Contains(rec.body(), "data:[]") {
		t.Errorf("initial snapshot = %q, want an empty list", rec.body())
	}

	if _, err := ts.store.AddHobby(context.Background(), models.Hobby{Title: "Climbing", Description: "Bouldering"}); err != nil {
		t.Fatalf("AddHobby() error = %v", err)
	}
	waitFor(t, "snapshot after change", func() bool {
		return strings.Count(rec.body(), "event:snapshot") == 2
	})
	if !strings.Contains(rec.body(), "Climbing") {
		t.Errorf("stream = %q, want the new hobby", rec.body())
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not end after the client left")
	}
	if n := ts.hub.Subscribers("hobbies"); n != 0 {
		t.Errorf("subscribers after disconnect = %d, want 0", n)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestSubscribeUnknownCollection(t *testing.T) {
	ts := newTestServer(t)
	if w := ts.do(http.MethodGet, "/api/v1/subscribe/secrets", nil, nil); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestServerShutdownEndsOpenStreams(t *testing.T) {
	ts := newTestServer(t)

	srv := httptest.NewUnstartedServer(ts.router)
	srv.Config.RegisterOnShutdown(ts.subscribe.Shutdown)
	srv.Start()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/subscribe/projects")
	if err != nil {
		t.Fatalf("GET stream error = %v", err)
	}
	defer resp.Body.Close()

	reader := bufio.NewReader(resp.Body)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			t.Fatalf("reading stream: %v", err)
		}
		if strings.HasPrefix(line, "event:snapshot") {
			break
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	start := time.Now()
	if err := srv.Config.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error = %v after %s, want the stream to end", err, time.Since(start))
	}
	if n := ts.hub.Subscribers("projects"); n != 0 {
		t.Errorf("subscribers after shutdown = %d, want 0", n)
	}
}
