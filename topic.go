package vdds

import "github.com/nodebus/vdds/internal/fabric"

// Topic fans a published Envelope out to every currently subscribed
// SubscriberQueue. Obtain one from Domain.CreateTopic; Subscribe, Publish,
// Push and Pop are its public API.
type Topic = fabric.Topic

// SubscriberQueue is a subscriber's per-topic inbound queue, returned by
// Topic.Subscribe.
type SubscriberQueue = fabric.SubscriberQueue

// PublisherHandle identifies a registered publisher on a Topic, returned by
// Topic.Publish.
type PublisherHandle = fabric.PublisherHandle
