package fabric

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nodebus/vdds/internal/notify"
)

// Topic is the fan-out core of the fabric: a named, typed channel holding a
// set of subscriber queues and publisher handles. Push and Pop never block
// on Subscribe/Unsubscribe/Publish/Unpublish; membership changes go through
// the RCU snapshot in cache.go instead of a read/write lock shared with the
// data path.
type Topic struct {
	domain   string
	name     string
	dataType string

	log *slog.Logger

	nextSeqno atomic.Uint64
	cache     *snapshotCache
	mu        sync.Mutex // serializes Subscribe/Unsubscribe/Publish/Unpublish
}

// NewTopic creates a topic named name carrying dataType envelopes within
// domain (used only for logging attribution).
func NewTopic(domain, name, dataType string) *Topic {
	return &Topic{
		domain:   domain,
		name:     name,
		dataType: dataType,
		log:      slog.Default().With("domain", domain, "topic", name),
		cache:    newSnapshotCache(),
	}
}

// Domain, Name and DataType return the topic's identity.
func (t *Topic) Domain() string   { return t.domain }
func (t *Topic) Name() string     { return t.name }
func (t *Topic) DataType() string { return t.dataType }

// Subscribe registers a new subscriber queue on the topic and returns it.
// Subscriber names are not required to be unique; two queues with the same
// name are independent entries, matching topic::subscribe in the original
// design.
func (t *Topic) Subscribe(name string, qsize int, n notify.Notifier) (*SubscriberQueue, error) {
	q := NewSubscriberQueue(name, t.name, t.dataType, qsize, n)

	t.mu.Lock()
	defer t.mu.Unlock()

	old := t.cache.get()
	next := old.copy()
	t.cache.put(old)

	next.subs = append(next.subs, q)
	t.log.Debug("add-sub", "sub", name, "qcap", q.Capacity())
	t.cache.swap(next)

	return q, nil
}

// Unsubscribe removes q from the topic's subscriber snapshot. It is a
// no-op if q does not belong to this topic.
func (t *Topic) Unsubscribe(q *SubscriberQueue) {
	t.mu.Lock()
	defer t.mu.Unlock()

	old := t.cache.get()
	next := old.copy()
	t.cache.put(old)

	idx := -1
	for i, s := range next.subs {
		if s == q {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	next.subs = append(next.subs[:idx], next.subs[idx+1:]...)
	t.log.Debug("del-sub", "sub", q.Name())
	t.cache.swap(next)
}

// Publish registers a new publisher handle on the topic. Publisher names
// are not required to be unique, matching topic::publish in the original
// design.
func (t *Topic) Publish(name string) (*PublisherHandle, error) {
	p := NewPublisherHandle(name)

	t.mu.Lock()
	defer t.mu.Unlock()

	old := t.cache.get()
	next := old.copy()
	t.cache.put(old)

	next.pubs = append(next.pubs, p)
	t.log.Debug("add-pub", "pub", name)
	t.cache.swap(next)

	return p, nil
}

// Unpublish removes p from the topic's publisher snapshot. It is a no-op
// if p does not belong to this topic.
func (t *Topic) Unpublish(p *PublisherHandle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	old := t.cache.get()
	next := old.copy()
	t.cache.put(old)

	idx := -1
	for i, h := range next.pubs {
		if h == p {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	next.pubs = append(next.pubs[:idx], next.pubs[idx+1:]...)
	t.log.Debug("del-pub", "pub", p.Name())
	t.cache.swap(next)
}

// Push fans e out to every current subscriber. The seqno field is
// overwritten with the topic's next sequence number. Locking between
// concurrent publishers on the same subscriber queue is only taken when
// this topic currently has more than one publisher, matching the original
// need_lock optimization for the common single-publisher case.
func (t *Topic) Push(ph *PublisherHandle, e Envelope) {
	e.Seqno = t.nextSeqno.Add(1) - 1

	snap := t.cache.get()
	defer t.cache.put(snap)

	needLock := len(snap.pubs) > 1

	for _, q := range snap.subs {
		q.Push(e.Clone(), needLock)
	}
	// The envelope handed to Push is the caller's own reference; once every
	// subscriber holds its own clone, drop the caller's copy of any shared
	// payload.
	e.Drop()
}

// Pop removes and returns the oldest envelope queued for q.
func (t *Topic) Pop(q *SubscriberQueue) (Envelope, bool) {
	return q.Pop()
}

// Kick wakes every current subscriber's notifier without pushing data.
func (t *Topic) Kick() {
	snap := t.cache.get()
	defer t.cache.put(snap)
	for _, q := range snap.subs {
		q.Kick()
	}
}

// Shutdown forwards to every current subscriber's notifier, latching
// forcedTimeout on each.
func (t *Topic) Shutdown(forcedTimeout time.Duration) {
	snap := t.cache.get()
	defer t.cache.put(snap)
	for _, q := range snap.subs {
		q.Shutdown(forcedTimeout)
	}
}

// Query fills ti with a snapshot of the topic's current state. ti is reset
// with ClearTopicInfo first, so a caller that preallocated ti's Subs/Pubs
// via InitTopicInfo and reuses it across repeated calls pays no allocation
// as long as membership stays within the preallocated capacity.
func (t *Topic) Query(ti *TopicInfo) {
	snap := t.cache.get()
	defer t.cache.put(snap)

	ClearTopicInfo(ti)
	ti.Name = t.name
	ti.DataType = t.dataType
	ti.PushCount = t.nextSeqno.Load()

	for _, q := range snap.subs {
		ti.Subs = append(ti.Subs, SubInfo{
			Name:      q.Name(),
			PushCount: q.PushCount(),
			DropCount: q.DropCount(),
			QCapacity: uint32(q.Capacity()),
			QSize:     uint32(q.Size()),
		})
	}
	for _, p := range snap.pubs {
		ti.Pubs = append(ti.Pubs, PubInfo{Name: p.Name()})
	}
}

// Dump logs the topic's current state at info level, mirroring topic::dump.
func (t *Topic) Dump() {
	snap := t.cache.get()
	defer t.cache.put(snap)

	t.log.Info("topic", "nsubs", len(snap.subs), "npubs", len(snap.pubs), "seqno", t.nextSeqno.Load())
	for _, q := range snap.subs {
		t.log.Info("sub", "name", q.Name(), "qcap", q.Capacity(), "qsize", q.Size(),
			"pushes", q.PushCount(), "drops", q.DropCount())
	}
	for _, p := range snap.pubs {
		t.log.Info("pub", "name", p.Name())
	}
}
