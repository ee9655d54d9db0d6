package preview

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/mvhagen/patternbook/internal/metrics"
)

// Hub manages SSE clients for rebuild broadcasts.
type Hub struct {
	mu       sync.RWMutex
	nextID   int
	clients  map[int]chan string
	recorder metrics.Recorder
	closed   bool
	lastRev  string
}

// NewHub creates a live-reload hub.
func NewHub(recorder metrics.Recorder) *Hub {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &Hub{clients: map[int]chan string{}, recorder: recorder}
}

// ServeHTTP implements the SSE endpoint at /livereload.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	closed := h.closed
	last := h.lastRev
	h.mu.RUnlock()
	if closed {
		http.Error(w, "livereload shutting down", http.StatusServiceUnavailable)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "stream unsupported", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan string, 8)
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.clients[id] = ch
	h.mu.Unlock()
	defer h.remove(id)

	if _, err := fmt.Fprintf(w, ": connected\n\n"); err != nil {
		return
	}
	if last != "" {
		fmt.Fprintf(w, "data: %s\n\n", last)
	}
	flusher.Flush()

	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-heartbeat.C:
			if _, err := fmt.Fprintf(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case rev, ok := <-ch:
			if !ok {
				return
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", rev); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

// Broadcast notifies every connected client of a new site revision. Slow
// clients are skipped rather than blocked on.
func (h *Hub) Broadcast(rev string) {
	h.mu.Lock()
	h.lastRev = rev
	// Sends are non-blocking, so holding the lock keeps Broadcast from
	// racing a concurrent Close over the same channels.
	for _, ch := range h.clients {
		select {
		case ch <- rev:
		default:
			slog.Debug("livereload client lagging, dropping event")
		}
	}
	h.mu.Unlock()

	h.recorder.IncReloadBroadcast()
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close rejects new clients and disconnects existing ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for id, ch := range h.clients {
		close(ch)
		delete(h.clients, id)
	}
}

func (h *Hub) remove(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if ch, ok := h.clients[id]; ok {
		delete(h.clients, id)
		close(ch)
	}
}
