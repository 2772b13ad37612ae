package tui

import (
	"io"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dungeon/internal/config"
	"github.com/vovakirdan/tui-dungeon/internal/runner"
)

func newTestSSHServer(t *testing.T, addr string) *SSHServer {
	t.Helper()
	cfg := SSHServerConfig{
		Address:     addr,
		HostKeyPath: filepath.Join(t.TempDir(), "host_key"),
		IdleTimeout: time.Minute,
	}
	r := runner.New(config.DefaultLevelConfig(), "", nil, nil)
	srv, err := NewSSHServer(cfg, r, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer failed: %v", err)
	}
	return srv
}

func TestSSHServerReturnsListenError(t *testing.T) {
	// Hold the port so the server cannot bind it
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	srv := newTestSSHServer(t, ln.Addr().String())

	result := make(chan error, 1)
	go func() {
		result <- srv.serveUntil(make(chan os.Signal))
	}()

	select {
	case err := <-result:
		if err == nil {
			t.Error("expected a listen error for a port in use")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server kept waiting after the listener failed")
	}
}

func TestSSHServerStopsOnSignal(t *testing.T) {
	srv := newTestSSHServer(t, "127.0.0.1:0")

	stop := make(chan os.Signal, 1)
	result := make(chan error, 1)
	go func() {
		result <- srv.serveUntil(stop)
	}()
	stop <- os.Interrupt

	select {
	case err := <-result:
		if err != nil {
			t.Errorf("expected clean shutdown, got %v", err)
		}
	case <-time.After(15 * time.Second):
		t.Fatal("server did not stop")
	}
}
