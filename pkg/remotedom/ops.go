package remotedom

// OpCode is the type of DOM operation streamed to the client.
type OpCode uint8

const (
	OpCreateElement OpCode = 0x01 // Create a detached element
	OpCreateText    OpCode = 0x02 // Create a detached text node
	OpCreateRaw     OpCode = 0x03 // Create a detached raw-HTML node
	OpSetAttr       OpCode = 0x04 // Set/update attribute
	OpAppend        OpCode = 0x05 // Append node to parent
	OpPrepend       OpCode = 0x06 // Insert node as parent's first child
	OpRemove        OpCode = 0x07 // Detach node
	OpListen        OpCode = 0x08 // Attach event listener
)

// String returns the string representation of the OpCode.
func (op OpCode) String() string {
	switch op {
	case OpCreateElement:
		return "CreateElement"
	case OpCreateText:
		return "CreateText"
	case OpCreateRaw:
		return "CreateRaw"
	case OpSetAttr:
		return "SetAttr"
	case OpAppend:
		return "Append"
	case OpPrepend:
		return "Prepend"
	case OpRemove:
		return "Remove"
	case OpListen:
		return "Listen"
	default:
		return "Unknown"
	}
}

// Op is a single DOM operation. Fields are populated per code:
// creates carry Tag or Text, SetAttr carries Key/Value, attach ops
// carry Parent, Listen carries Event.
type Op struct {
	Code   OpCode `json:"op"`
	ID     string `json:"id"`
	Tag    string `json:"tag,omitempty"`
	Text   string `json:"text,omitempty"`
	Key    string `json:"key,omitempty"`
	Value  string `json:"value,omitempty"`
	Parent string `json:"parent,omitempty"`
	Event  string `json:"event,omitempty"`
}

// Frame is one WebSocket message in either direction.
type Frame struct {
	Type string `json:"type"` // "ops" outbound, "event" inbound

	// Outbound
	Ops []Op `json:"ops,omitempty"`

	// Inbound
	Event string `json:"event,omitempty"`
	ID    string `json:"id,omitempty"`
}

// Sink receives operation batches, in order. WriteOps may be called
// from multiple goroutines; implementations serialize writes.
type Sink interface {
	WriteOps(ops []Op) error
}
