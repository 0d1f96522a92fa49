package fabric

import "sync/atomic"

// membership is the RCU-managed snapshot of a Topic's subscriber and
// publisher lists. Readers (Push/Pop) never take a lock: they pin the
// current snapshot, iterate over it, and unpin. Writers (Subscribe,
// Unsubscribe, Publish, Unpublish) copy the snapshot, mutate the copy under
// the topic's mutex, then atomically swap it in and wait for readers of the
// old snapshot to finish before discarding it.
type membership struct {
	subs []*SubscriberQueue
	pubs []*PublisherHandle
}

func (m *membership) copy() *membership {
	n := &membership{
		subs: make([]*SubscriberQueue, len(m.subs)),
		pubs: make([]*PublisherHandle, len(m.pubs)),
	}
	copy(n.subs, m.subs)
	copy(n.pubs, m.pubs)
	return n
}

// snapshotCache holds the atomic pointer plus the pinned-reader refcount
// that cache_swap drains before freeing a superseded snapshot. Go's garbage
// collector means freeing is really just "stop holding a reference", but the
// drain is still needed: without it, a reader pinned to the old snapshot
// could still be mid-iteration when unsubscribe() deletes the very
// SubscriberQueue it's about to push into.
type snapshotCache struct {
	ptr    atomic.Pointer[membership]
	refcnt atomic.Int32
}

func newSnapshotCache() *snapshotCache {
	c := &snapshotCache{}
	c.ptr.Store(&membership{})
	return c
}

// get pins and returns the current snapshot. Callers must call put exactly
// once when done reading it.
func (c *snapshotCache) get() *membership {
	c.refcnt.Add(1)
	return c.ptr.Load()
}

// put releases a pin taken by get.
func (c *snapshotCache) put(*membership) {
	c.refcnt.Add(-1)
}

// swap installs n as the current snapshot and busy-waits for every reader
// pinned to the previous snapshot to call put, mirroring cache_swap's
// while (refcnt.load() != 0) drain.
func (c *snapshotCache) swap(n *membership) *membership {
	old := c.ptr.Swap(n)
	for c.refcnt.Load() != 0 {
		// spin: readers are expected to pin briefly (one push/pop pass)
	}
	return old
}
