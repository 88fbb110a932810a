package ipc

import (
	"errors"
	"io"
	"log"
	"net"

	"github.com/username/vikey/internal/engine"
	"github.com/username/vikey/internal/plugin"
)

// EngineFactory builds a fresh, fully configured Engine for one accepted
// connection. The broker supplies this so internal/ipc never has to know
// which language plugins are registered.
type EngineFactory func() *engine.Engine

// Server accepts connections on a Unix domain socket and speaks the
// framed request/response protocol on each one.
type Server struct {
	listener  net.Listener
	newEngine EngineFactory
	logger    *log.Logger
}

// NewServer wraps an already-listening socket. Callers typically obtain
// listener via net.Listen("unix", path).
func NewServer(listener net.Listener, newEngine EngineFactory, logger *log.Logger) *Server {
	return &Server{listener: listener, newEngine: newEngine, logger: logger}
}

// Serve accepts connections until the listener is closed, handling each
// one in its own goroutine with its own Engine instance.
func (s *Server) Serve() error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}
		go s.handleConn(conn)
	}
}

// handleConn owns one Engine exclusively for the lifetime of conn, so
// requests on this connection never race with any other connection's
// engine state.
func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()
	eng := s.newEngine()

	for {
		var req Request
		if err := readFrame(conn, &req); err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			s.logf("malformed frame from %s: %v", conn.RemoteAddr(), err)
			// A length-prefix desync is unrecoverable without closing the
			// connection; anything else (bad gob payload with an intact
			// frame boundary) could in principle be skipped, but we can't
			// tell them apart here, so close either way.
			return
		}

		resp := s.process(eng, req)
		if err := writeFrame(conn, resp); err != nil {
			s.logf("write failed for %s: %v", conn.RemoteAddr(), err)
			return
		}
	}
}

func (s *Server) process(eng *engine.Engine, req Request) Response {
	switch req.Kind {
	case ProcessKey:
		return Response{Kind: ResponseAction, Action: toWireAction(eng.Process(req.Key))}
	case ProcessBackspace:
		return Response{Kind: ResponseAction, Action: toWireAction(eng.ProcessBackspace())}
	case Reset:
		eng.Reset()
		return Response{Kind: ResponseAction, Action: WireAction{Kind: WireDoNothing}}
	case Ping:
		return Response{Kind: ResponsePong}
	default:
		return Response{Kind: ResponseError, Message: "unknown request kind"}
	}
}

// toWireAction encodes a plugin.Action for the wire. Commit carries its
// Delete through unchanged, same as Replace: a commit whose in-progress
// render was already showing needs to delete it, exactly like any other
// keystroke's Replace would.
func toWireAction(a plugin.Action) WireAction {
	switch a.Kind {
	case plugin.Replace, plugin.Commit:
		return WireAction{Kind: WireReplace, Delete: a.Delete, Insert: a.Insert}
	default:
		return WireAction{Kind: WireDoNothing}
	}
}

func (s *Server) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
