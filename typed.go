package vdds

import (
	"fmt"
	"unsafe"

	"github.com/nodebus/vdds/internal/notify"
)

// Message is the constraint a typed Publisher/Subscriber payload type must
// satisfy. M's underlying type must additionally be exactly EnvelopeSize
// bytes — Go generics can't express that as a type constraint, so
// NewPublisher/NewSubscriber check it at construction with unsafe.Sizeof and
// return ErrSizeMismatch instead of panicking, the way NewDomain-adjacent
// constructors in this package report construction errors rather than
// throwing (C++'s static_assert has no generics-time Go equivalent).
//
// A conforming M is conventionally defined by embedding Envelope and using
// the unused tail of its Plain field for M's own fields — the same overlay
// relationship pub<T>/sub<T> have with vdds::data in the original design.
type Message interface {
	// DataTypeName returns the data type name used for topic type-checking.
	// It is called on the zero value of M, so it must not depend on any
	// field state.
	DataTypeName() string
}

// Publisher is a typed publish handle bound to one topic. Construct with
// NewPublisher.
type Publisher[M Message] struct {
	topic  *Topic
	handle *PublisherHandle
}

// NewPublisher creates topicName under d (if needed, via Domain.CreateTopic,
// validating M's data type against any existing topic of that name) and
// registers pubName as a publisher on it.
func NewPublisher[M Message](d *Domain, pubName, topicName string) (*Publisher[M], error) {
	var zero M
	if unsafe.Sizeof(zero) != EnvelopeSize {
		return nil, fmt.Errorf("%w: %T is %d bytes, want %d", ErrSizeMismatch, zero, unsafe.Sizeof(zero), EnvelopeSize)
	}

	topic, err := d.CreateTopic(topicName, zero.DataTypeName())
	if err != nil {
		return nil, err
	}
	handle, err := topic.Publish(pubName)
	if err != nil {
		return nil, err
	}
	return &Publisher[M]{topic: topic, handle: handle}, nil
}

// Push overlays m onto an Envelope and pushes it to every current
// subscriber of the publisher's topic.
func (p *Publisher[M]) Push(m M) {
	e := *(*Envelope)(unsafe.Pointer(&m))
	p.topic.Push(p.handle, e)
}

// Close unpublishes p from its topic.
func (p *Publisher[M]) Close() {
	p.topic.Unpublish(p.handle)
}

// Subscriber is a typed subscribe handle bound to one topic. Construct with
// NewSubscriber.
type Subscriber[M Message] struct {
	topic *Topic
	queue *SubscriberQueue
}

// SubscribeOption configures a Subscriber created by NewSubscriber.
type SubscribeOption func(*subscribeOptions)

type subscribeOptions struct {
	qsize    int
	notifier notify.Notifier
}

// WithQueueSize sets the subscriber queue's capacity. The default is 16.
func WithQueueSize(n int) SubscribeOption {
	return func(o *subscribeOptions) { o.qsize = n }
}

// WithNotifier attaches a shared Notifier to the subscriber queue so its
// consumer can block in WaitFor between pops instead of polling.
func WithNotifier(n notify.Notifier) SubscribeOption {
	return func(o *subscribeOptions) { o.notifier = n }
}

func resolveOptions(opts []SubscribeOption) subscribeOptions {
	o := subscribeOptions{qsize: 16}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewSubscriber creates topicName under d (if needed) and registers
// subName as a subscriber on it.
func NewSubscriber[M Message](d *Domain, subName, topicName string, opts ...SubscribeOption) (*Subscriber[M], error) {
	var zero M
	if unsafe.Sizeof(zero) != EnvelopeSize {
		return nil, fmt.Errorf("%w: %T is %d bytes, want %d", ErrSizeMismatch, zero, unsafe.Sizeof(zero), EnvelopeSize)
	}

	topic, err := d.CreateTopic(topicName, zero.DataTypeName())
	if err != nil {
		return nil, err
	}

	o := resolveOptions(opts)
	queue, err := topic.Subscribe(subName, o.qsize, o.notifier)
	if err != nil {
		return nil, err
	}
	return &Subscriber[M]{topic: topic, queue: queue}, nil
}

// Pop removes and returns the oldest message queued for the subscriber, if
// any.
func (s *Subscriber[M]) Pop() (M, bool) {
	e, ok := s.topic.Pop(s.queue)
	if !ok {
		var zero M
		return zero, false
	}
	return *(*M)(unsafe.Pointer(&e)), true
}

// Flush pops every currently queued message and discards it, draining the
// subscriber's backlog. Returns the number of messages discarded.
func (s *Subscriber[M]) Flush() int {
	n := 0
	for {
		if _, ok := s.Pop(); !ok {
			return n
		}
		n++
	}
}

// Close unsubscribes s from its topic.
func (s *Subscriber[M]) Close() {
	s.topic.Unsubscribe(s.queue)
}

// Queue exposes the underlying SubscriberQueue, e.g. to share a Notifier's
// WaitFor loop across several typed subscribers.
func (s *Subscriber[M]) Queue() *SubscriberQueue { return s.queue }
