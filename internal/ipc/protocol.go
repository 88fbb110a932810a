// Package ipc defines the wire protocol between an input-method frontend
// and the broker that owns the composition engine, and the framed-socket
// server loop that speaks it.
package ipc

// RequestKind discriminates the four request shapes a frontend can send.
type RequestKind int

const (
	ProcessKey RequestKind = iota
	ProcessBackspace
	Reset
	Ping
)

// Request is the frontend-to-broker message. Key is only meaningful when
// Kind is ProcessKey.
type Request struct {
	Kind RequestKind
	Key  rune
}

// ResponseKind discriminates the three response shapes the broker sends
// back.
type ResponseKind int

const (
	ResponseAction ResponseKind = iota
	ResponsePong
	ResponseError
)

// WireActionKind mirrors plugin.ActionKind across the wire, independent of
// that package's internal representation so the protocol doesn't break if
// plugin.ActionKind's values are ever renumbered.
type WireActionKind int

const (
	WireDoNothing WireActionKind = iota
	WireReplace
)

// WireAction is the encoded form of a plugin.Action. Both Replace and
// Commit collapse to WireReplace, since the frontend on this wire treats
// the whole preedit/commit surface as one flat document and only needs
// to know what to delete and what to insert; Delete carries through
// unchanged from whichever action produced it, including a Commit whose
// in-progress render was already on screen.
type WireAction struct {
	Kind   WireActionKind
	Delete int
	Insert string
}

// Response is the broker-to-frontend message.
type Response struct {
	Kind    ResponseKind
	Action  WireAction
	Message string // set when Kind is ResponseError
}
