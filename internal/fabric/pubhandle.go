package fabric

// PublisherHandle identifies one registered publisher on a Topic. It carries
// no queue of its own — publishers only push, they never receive — so the
// handle is little more than a name plus the identity Topic.Push needs to
// find the right entry in the publisher snapshot.
type PublisherHandle struct {
	name string
}

// NewPublisherHandle creates a handle for name.
func NewPublisherHandle(name string) *PublisherHandle {
	return &PublisherHandle{name: name}
}

// Name returns the publisher's name.
func (h *PublisherHandle) Name() string { return h.name }
