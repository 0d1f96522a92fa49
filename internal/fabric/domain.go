package fabric

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Domain is the top-level registry of topics. Topic names are unique within
// a domain; topics are never deleted for the domain's lifetime, only
// created or reused, matching the original's "topics live as long as the
// domain" rule.
type Domain struct {
	name string
	log  *slog.Logger

	mu     sync.RWMutex
	topics []*Topic
}

// NewDomain creates an (initially empty) domain. name is typically an
// all-caps identifier, by convention, not by enforcement.
func NewDomain(name string) *Domain {
	return &Domain{
		name: name,
		log:  slog.Default().With("domain", name),
	}
}

// Name returns the domain's name.
func (d *Domain) Name() string { return d.name }

// CreateTopic returns the topic named name, creating it with dataType if it
// doesn't exist yet. If a topic with that name already exists under a
// different data type, CreateTopic returns ErrTypeMismatch and a nil topic,
// logging the collision.
func (d *Domain) CreateTopic(name, dataType string) (*Topic, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, t := range d.topics {
		if t.Name() == name {
			if t.DataType() == dataType {
				return t, nil
			}
			d.log.Error("topic already exists with different data-type",
				"topic", name, "existing", t.DataType(), "requested", dataType)
			return nil, fmt.Errorf("%w: topic %s has %s, requested %s", ErrTypeMismatch, name, t.DataType(), dataType)
		}
	}

	t := NewTopic(d.name, name, dataType)
	d.topics = append(d.topics, t)
	d.log.Info("new-topic", "topic", name, "data-type", dataType)
	return t, nil
}

// visit calls fn for every topic matching f, under a read lock.
func (d *Domain) visit(f Filter, fn func(*Topic)) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, t := range d.topics {
		if !f.Match(t.Name(), t.DataType()) {
			continue
		}
		fn(t)
	}
}

// Dump logs every topic matching f at info level.
func (d *Domain) Dump(f Filter) {
	d.mu.RLock()
	n := len(d.topics)
	d.mu.RUnlock()
	d.log.Info("domain", "ntopics", n)
	d.visit(f, func(t *Topic) { t.Dump() })
}

// Query fills di with a snapshot of every topic matching f. If di was
// preallocated with InitDomainInfo and reused across repeated calls, each
// topic slot's Subs/Pubs keep their prior capacity instead of being
// reallocated, so a caller that polls Query on a fixed topic set pays no
// hot-path allocation.
func (d *Domain) Query(di *DomainInfo, f Filter) {
	ClearDomainInfo(di)
	di.Name = d.name

	d.visit(f, func(t *Topic) {
		di.Topics = growTopicInfo(di.Topics)
		t.Query(&di.Topics[len(di.Topics)-1])
	})
}

// Kick wakes every subscriber notifier on every topic matching f, without
// pushing data. Used to break a subscriber out of a long WaitFor, e.g.
// after a membership change the caller wants observed promptly.
func (d *Domain) Kick(f Filter) {
	d.visit(f, func(t *Topic) { t.Kick() })
}

// Shutdown forwards to Topic.Shutdown on every topic matching f, latching
// forcedTimeout on every matching subscriber's notifier.
func (d *Domain) Shutdown(forcedTimeout time.Duration, f Filter) {
	d.visit(f, func(t *Topic) { t.Shutdown(forcedTimeout) })
}
