package vdds

import "github.com/nodebus/vdds/internal/fabric"

// EnvelopeSize is the wire size of Envelope in bytes.
const EnvelopeSize = fabric.EnvelopeSize

// Envelope is the fixed-size message container that moves through the
// fabric. User message types embed Envelope and nothing else, reaching
// their own fields through an accessor that reinterprets Plain as their
// payload struct, so a concrete message type is always exactly
// EnvelopeSize bytes — the typed facade in typed.go relies on that.
type Envelope = fabric.Envelope

// Shared is a reference-counted handle to an out-of-band payload too large
// to fit in Envelope.Plain. Copying an Envelope via Clone bumps the
// refcount; Drop releases it.
type Shared = fabric.Shared

// NewShared wraps payload in a Shared handle with an initial refcount of 1.
// release, if non-nil, runs exactly once, when the last reference is
// dropped.
func NewShared(payload any, release func(any)) *Shared {
	return fabric.NewShared(payload, release)
}
