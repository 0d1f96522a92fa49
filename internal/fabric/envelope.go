package fabric

import "sync/atomic"

// EnvelopeSize is the wire size of Envelope, fixed at four cache lines on
// most CPUs. A test in this package asserts unsafe.Sizeof(Envelope{})
// equals this constant.
const EnvelopeSize = 256

// Shared is a reference-counted handle to an out-of-band payload (a DMA
// buffer, a large frame, anything too big to live in Envelope.Plain). It is
// the Go stand-in for the original's std::shared_ptr<shared_t>: every
// SubscriberQueue that receives a copy of an Envelope holding a Shared bumps
// the refcount on copy and drops it on consumption, so the underlying
// payload is released exactly when the last holder is done with it.
type Shared struct {
	refs    atomic.Int64
	payload any
	release func(any)
}

// NewShared wraps payload in a Shared handle with an initial refcount of 1.
// release, if non-nil, is called exactly once, when the refcount reaches
// zero.
func NewShared(payload any, release func(any)) *Shared {
	s := &Shared{payload: payload, release: release}
	s.refs.Store(1)
	return s
}

// Payload returns the wrapped value.
func (s *Shared) Payload() any { return s.payload }

// UseCount reports the current refcount, mirroring shared_ptr::use_count in
// the tests that assert exact refcount conservation across fan-out.
func (s *Shared) UseCount() int64 { return s.refs.Load() }

// Retain bumps the refcount and returns s, for call sites that want to hand
// out another reference (e.g. Topic.Push copying the envelope into every
// matching subscriber's queue).
func (s *Shared) Retain() *Shared {
	s.refs.Add(1)
	return s
}

// Release drops one reference; when the count reaches zero the release
// callback runs.
func (s *Shared) Release() {
	if s.refs.Add(-1) == 0 && s.release != nil {
		s.release(s.payload)
	}
}

// Envelope is the fixed-size message container that moves through rings,
// SubscriberQueues and PublisherHandles. User message types are defined by
// embedding Envelope and nothing else, reaching their own fields through an
// accessor that reinterprets Plain as their payload struct, so every
// concrete message is byte-identical in size to Envelope.
type Envelope struct {
	Seqno     uint64
	Timestamp uint64
	Shared    *Shared
	Plain     [EnvelopeSize - 8 - 8 - 8]byte
}

// Clone returns a copy of e with Shared's refcount bumped, matching a
// shared_ptr copy: every queue the envelope is fanned out to owns an
// independent reference that must be released on pop/drop.
func (e Envelope) Clone() Envelope {
	if e.Shared != nil {
		e.Shared.Retain()
	}
	return e
}

// Drop releases e's Shared reference, if any. SubscriberQueue.Push calls it
// for an envelope the full ring rejects, and Topic.Push calls it for the
// caller's own copy after fan-out. Envelopes still queued when a subscriber
// is unsubscribed are not dropped, so their Shared references are not
// released.
func (e Envelope) Drop() {
	if e.Shared != nil {
		e.Shared.Release()
	}
}
