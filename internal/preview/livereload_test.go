package preview

import (
	"bufio"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHub_BroadcastReachesConnectedClient(t *testing.T) {
	hub := NewHub(nil)
	defer hub.Close()

	srv := httptest.NewServer(hub)
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	// Wait for registration before broadcasting.
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 },
		time.Second, 10*time.Millisecond)

	hub.Broadcast("rev-42")

	reader := bufio.NewReader(resp.Body)
	deadline := time.After(2 * time.Second)
	got := make(chan string, 1)
	go func() {
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				return
			}
			if strings.HasPrefix(line, "data: ") {
				got <- strings.TrimSpace(strings.TrimPrefix(line, "data: "))
				return
			}
		}
	}()

	select {
	case rev := <-got:
		require.Equal(t, "rev-42", rev)
	case <-deadline:
		t.Fatal("no broadcast received")
	}
}

func TestHub_LateClientGetsLastRevision(t *testing.T) {
	hub := NewHub(nil)
	defer hub.Close()
	hub.Broadcast("rev-7")

	srv := httptest.NewServer(hub)
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	reader := bufio.NewReader(resp.Body)
	for {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		if strings.HasPrefix(line, "data: ") {
			require.Equal(t, "rev-7", strings.TrimSpace(strings.TrimPrefix(line, "data: ")))
			return
		}
	}
}

func TestHub_ClosedHubRejectsClients(t *testing.T) {
	hub := NewHub(nil)
	hub.Close()

	srv := httptest.NewServer(hub)
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, 503, resp.StatusCode)
}

func TestDebouncer_CoalescesBursts(t *testing.T) {
	d := newDebouncer()
	defer d.Stop()

	for i := 0; i < 10; i++ {
		d.Trigger()
	}

	select {
	case <-d.C():
	case <-time.After(2 * time.Second):
		t.Fatal("debouncer never fired")
	}

	// Only one coalesced event for the burst.
	select {
	case <-d.C():
		t.Fatal("debouncer fired twice for one burst")
	case <-time.After(2 * debounceWindow):
	}
}
