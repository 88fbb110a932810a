package ipc

import (
	"net"
	"testing"

	"github.com/username/vikey/internal/engine"
	"github.com/username/vikey/internal/plugin"
	"github.com/username/vikey/internal/vietnamese"
)

func newTestEngine() *engine.Engine {
	e := engine.New()
	e.Register(vietnamese.New())
	e.SetLanguage("vietnamese")
	return e
}

func TestServerPing(t *testing.T) {
	client, serverConn := net.Pipe()
	s := &Server{newEngine: newTestEngine}

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.handleConn(serverConn)
	}()

	if err := writeFrame(client, Request{Kind: Ping}); err != nil {
		t.Fatalf("writeFrame: %v", err)
	}
	var resp Response
	if err := readFrame(client, &resp); err != nil {
		t.Fatalf("readFrame: %v", err)
	}
	if resp.Kind != ResponsePong {
		t.Fatalf("resp.Kind = %v, want ResponsePong", resp.Kind)
	}
	client.Close()
	<-done
}

func TestServerProcessKeySequenceProducesReplace(t *testing.T) {
	client, serverConn := net.Pipe()
	s := &Server{newEngine: newTestEngine}

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.handleConn(serverConn)
	}()

	var last Response
	for _, ch := range "as" {
		writeFrame(client, Request{Kind: ProcessKey, Key: ch})
		if err := readFrame(client, &last); err != nil {
			t.Fatalf("readFrame: %v", err)
		}
	}
	if last.Kind != ResponseAction {
		t.Fatalf("last.Kind = %v, want ResponseAction", last.Kind)
	}
	if last.Action.Insert != "á" {
		t.Fatalf("last.Action.Insert = %q, want á", last.Action.Insert)
	}
	client.Close()
	<-done
}

func TestServerResetClearsEngine(t *testing.T) {
	client, serverConn := net.Pipe()
	s := &Server{newEngine: newTestEngine}

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.handleConn(serverConn)
	}()

	var resp Response
	writeFrame(client, Request{Kind: ProcessKey, Key: 'a'})
	readFrame(client, &resp)

	writeFrame(client, Request{Kind: Reset})
	// gob does not transmit zero-valued fields, so decode into a fresh
	// Response rather than one still holding the previous reply.
	resp = Response{}
	if err := readFrame(client, &resp); err != nil {
		t.Fatalf("readFrame: %v", err)
	}
	if resp.Action.Kind != WireDoNothing {
		t.Fatalf("reset response = %+v, want WireDoNothing", resp.Action)
	}
	client.Close()
	<-done
}

func TestServerClosesOnClientDisconnect(t *testing.T) {
	client, serverConn := net.Pipe()
	s := &Server{newEngine: newTestEngine}

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.handleConn(serverConn)
	}()

	client.Close()
	<-done // handleConn must return once the client goes away
}

func TestToWireActionMapsCommit(t *testing.T) {
	a := toWireAction(plugin.CommitAction(0, "á"))
	if a.Kind != WireReplace || a.Insert != "á" || a.Delete != 0 {
		t.Fatalf("toWireAction(commit) = %+v", a)
	}
}

func TestToWireActionPassesThroughDelete(t *testing.T) {
	a := toWireAction(plugin.ReplaceAction(3, "á "))
	if a.Kind != WireReplace || a.Insert != "á " || a.Delete != 3 {
		t.Fatalf("toWireAction(replace) = %+v, want Delete: 3", a)
	}
}

func TestToWireActionPassesThroughDeleteForCommit(t *testing.T) {
	a := toWireAction(plugin.CommitAction(1, "á "))
	if a.Kind != WireReplace || a.Insert != "á " || a.Delete != 1 {
		t.Fatalf("toWireAction(commit) = %+v, want Delete: 1", a)
	}
}

// applyToDocument simulates a frontend applying a over doc: doc =
// doc[:len(doc)-Delete] + Insert.
func applyToDocument(doc string, a WireAction) string {
	runes := []rune(doc)
	if a.Delete > 0 && a.Delete <= len(runes) {
		runes = runes[:len(runes)-a.Delete]
	}
	return string(runes) + a.Insert
}

// TestServerSeparatorCommitAppliesCleanlyToDocument exercises the
// "Separator commits" property across the full wire protocol: replaying
// every response's Delete/Insert against a simulated document must leave
// exactly the rendered word plus the separator, not a duplicate of the
// in-progress render.
func TestServerSeparatorCommitAppliesCleanlyToDocument(t *testing.T) {
	client, serverConn := net.Pipe()
	s := &Server{newEngine: newTestEngine}

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.handleConn(serverConn)
	}()

	var doc string
	var resp Response
	for _, ch := range "as " {
		if err := writeFrame(client, Request{Kind: ProcessKey, Key: ch}); err != nil {
			t.Fatalf("writeFrame: %v", err)
		}
		if err := readFrame(client, &resp); err != nil {
			t.Fatalf("readFrame: %v", err)
		}
		doc = applyToDocument(doc, resp.Action)
	}
	if doc != "á " {
		t.Fatalf("document after separator commit = %q, want %q", doc, "á ")
	}
	client.Close()
	<-done
}
