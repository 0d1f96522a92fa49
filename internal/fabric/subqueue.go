package fabric

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/nodebus/vdds/internal/notify"
	"github.com/nodebus/vdds/internal/ring"
	"github.com/nodebus/vdds/internal/strcache"
)

// SubscriberQueue is the per-subscriber fan-out target: one bounded ring, a
// push/drop counter pair, and an optional shared Notifier. It is allocated
// once per Topic.Subscribe call and lives until the matching Unsubscribe.
type SubscriberQueue struct {
	name     string
	dataType string
	fifo     *ring.Ring[Envelope]

	pushCount atomic.Uint32
	dropCount atomic.Uint32

	notifier notify.Notifier
	mu       sync.Mutex // guards Push when a topic has more than one publisher

	traceFmt string
}

// NewSubscriberQueue creates a subscriber queue of the given capacity,
// optionally backed by a shared Notifier (nil means "no wakeup, caller must
// poll").
func NewSubscriberQueue(name, topicName, dataType string, capacity int, n notify.Notifier) *SubscriberQueue {
	if capacity <= 0 {
		capacity = 16
	}
	return &SubscriberQueue{
		name:     name,
		dataType: dataType,
		fifo:     ring.New[Envelope](capacity),
		notifier: n,
		traceFmt: strcache.Push("vdds-pop " + topicName + " " + name),
	}
}

// Name returns the subscriber's name.
func (q *SubscriberQueue) Name() string { return q.name }

// DataType returns the topic's data type name.
func (q *SubscriberQueue) DataType() string { return q.dataType }

// TraceFmt returns the cached trace format string for this queue, set at
// construction time so the hot push/pop path never formats a string.
func (q *SubscriberQueue) TraceFmt() string { return q.traceFmt }

// Capacity returns the queue's usable capacity.
func (q *SubscriberQueue) Capacity() int { return q.fifo.Capacity() }

// Size returns the number of envelopes currently queued.
func (q *SubscriberQueue) Size() int { return q.fifo.Size() }

// PushCount returns the number of Push calls made against this queue,
// successful or not.
func (q *SubscriberQueue) PushCount() uint32 { return q.pushCount.Load() }

// DropCount returns the number of Push calls that found the ring full.
func (q *SubscriberQueue) DropCount() uint32 { return q.dropCount.Load() }

// Kick wakes this queue's notifier, if any, without pushing data. Used by
// Domain.Kick/Topic's wildcard wakeups.
func (q *SubscriberQueue) Kick() {
	if q.notifier != nil {
		q.notifier.Notify()
	}
}

// Push enqueues e. needLock is true when the owning topic currently has
// more than one live publisher, in which case concurrent Push calls must be
// serialized; the push/drop counters are always updated, and Kick always
// runs outside the lock so a slow notifier never holds up a concurrent
// publisher.
func (q *SubscriberQueue) Push(e Envelope, needLock bool) {
	if needLock {
		q.mu.Lock()
	}

	q.pushCount.Add(1)
	ok := q.fifo.Push(e)
	if !ok {
		q.dropCount.Add(1)
	}

	if needLock {
		q.mu.Unlock()
	}

	if !ok {
		e.Drop()
	}
	q.Kick()
}

// Pop removes and returns the oldest envelope, if any.
func (q *SubscriberQueue) Pop() (Envelope, bool) {
	return q.fifo.Pop()
}

// Shutdown forwards to the queue's notifier, latching forcedTimeout so any
// consumer currently or later blocked in WaitFor returns promptly.
func (q *SubscriberQueue) Shutdown(forcedTimeout time.Duration) {
	if q.notifier != nil {
		q.notifier.Shutdown(forcedTimeout)
	}
}
