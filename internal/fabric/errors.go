package fabric

import "errors"

// Sentinel errors returned by the fabric. Callers compare with errors.Is,
// matching the framebus ErrBusClosed naming style.
var (
	// ErrTypeMismatch is returned by Domain.CreateTopic when the topic
	// already exists under a different data type name.
	ErrTypeMismatch = errors.New("vdds: topic exists with a different data type")
	// ErrSizeMismatch is returned by the typed facade when a message type's
	// size does not match EnvelopeSize.
	ErrSizeMismatch = errors.New("vdds: message type size does not match envelope size")
)
