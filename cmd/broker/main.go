// Command broker listens on a Unix domain socket and serves the Vietnamese
// composition engine over the framed request/response protocol in
// internal/ipc: one Engine per accepted connection, running until the
// listener fails or the process receives SIGINT/SIGTERM.
package main

import (
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/username/vikey/internal/engine"
	"github.com/username/vikey/internal/ipc"
	"github.com/username/vikey/internal/vietnamese"
)

// socketPath follows the XDG_RUNTIME_DIR convention, falling back to /tmp
// when the environment doesn't set it (e.g. a bare systemd unit or a
// development shell outside a full desktop session).
func socketPath() string {
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "vikey-broker.sock")
}

// newEngine builds one Engine with the Vietnamese plugin registered and
// Telex selected by default, for a single accepted connection.
func newEngine() *engine.Engine {
	cfg := engine.DefaultConfig()
	e := engine.NewWithConfig(cfg)
	p := vietnamese.NewWithConfig(cfg.Orthography, cfg.AllowZFWJConsonants)
	if err := e.Register(p); err != nil {
		// vietnamese.NewWithConfig is the only plugin registered; a
		// duplicate-ID error here would mean the plugin package itself is
		// broken.
		panic(err)
	}
	if err := e.SetLanguage("vietnamese"); err != nil {
		panic(err)
	}
	return e
}

func main() {
	path := socketPath()

	logger := log.New(os.Stderr, "[vikey-broker] ", log.LstdFlags)

	// A stale socket file from a previous unclean shutdown prevents
	// net.Listen from binding; remove it if present before listening.
	if _, err := os.Stat(path); err == nil {
		if err := os.Remove(path); err != nil {
			logger.Fatalf("removing stale socket %s: %v", path, err)
		}
	}

	listener, err := net.Listen("unix", path)
	if err != nil {
		logger.Fatalf("listen on %s: %v", path, err)
	}
	defer listener.Close()
	defer os.Remove(path)

	server := ipc.NewServer(listener, newEngine, logger)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	fmt.Printf("vikey-broker listening on %s\n", path)

	// Windows named-pipe support (the equivalent transport
	// vikey-windows-tsf/src/ipc.rs speaks to) is left unimplemented: Go's
	// named-pipe story runs through golang.org/x/sys/windows cgo-adjacent
	// APIs that don't belong in this Unix-socket-first build.

	select {
	case sig := <-sigChan:
		logger.Printf("received %s, shutting down", sig)
	case err := <-serveErr:
		if err != nil {
			logger.Printf("serve error: %v", err)
		}
	}
}
