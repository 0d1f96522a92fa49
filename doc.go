// Package vdds implements an in-process publish/subscribe fabric for
// fixed-size 256-byte message envelopes.
//
// A Domain owns a registry of Topics; each Topic fans a published Envelope
// out to every currently subscribed SubscriberQueue. Delivery is
// best-effort: once a subscriber's queue is full, further pushes are
// dropped and counted rather than blocking the publisher or evicting
// anything already queued. There is no persistence, no
// network transport, and no schema beyond the opaque 256-byte envelope —
// this package is purely an in-process fan-out primitive, the kind of thing
// a process wires once at startup and shares across goroutines for the
// rest of its life.
//
// Use NewDomain to create a domain, Domain.CreateTopic to create or reuse a
// topic, and either the low-level Topic.Subscribe/Publish/Push/Pop API or
// the generic NewSubscriber/NewPublisher facade to move typed messages
// through it.
package vdds
