package ipc

import (
	"bytes"
	"testing"
)

func TestWriteReadFrameRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	req := Request{Kind: ProcessKey, Key: 'a'}
	if err := writeFrame(&buf, req); err != nil {
		t.Fatalf("writeFrame: %v", err)
	}

	var got Request
	if err := readFrame(&buf, &got); err != nil {
		t.Fatalf("readFrame: %v", err)
	}
	if got != req {
		t.Fatalf("got %+v, want %+v", got, req)
	}
}

func TestReadFrameRejectsOversizedLength(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0x7f, 0xff, 0xff, 0xff}) // huge length, no body
	var req Request
	if err := readFrame(&buf, &req); err == nil {
		t.Fatal("expected error for oversized frame length")
	}
}

func TestReadFrameShortHeader(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0x00, 0x01})
	var req Request
	if err := readFrame(&buf, &req); err == nil {
		t.Fatal("expected error for truncated header")
	}
}

func TestMultipleFramesInSequence(t *testing.T) {
	var buf bytes.Buffer
	writeFrame(&buf, Response{Kind: ResponsePong})
	writeFrame(&buf, Response{Kind: ResponseError, Message: "bad"})

	var r1, r2 Response
	if err := readFrame(&buf, &r1); err != nil {
		t.Fatalf("readFrame 1: %v", err)
	}
	if err := readFrame(&buf, &r2); err != nil {
		t.Fatalf("readFrame 2: %v", err)
	}
	if r1.Kind != ResponsePong {
		t.Fatalf("r1.Kind = %v, want ResponsePong", r1.Kind)
	}
	if r2.Message != "bad" {
		t.Fatalf("r2.Message = %q, want bad", r2.Message)
	}
}
