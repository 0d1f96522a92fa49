package vdds

import "github.com/nodebus/vdds/internal/notify"

// Notifier wakes a subscriber's consumer loop between queue pops. Share one
// Notifier across every SubscriberQueue a consumer owns; Domain.Shutdown
// and Domain.Kick reach it through the queues it's attached to.
type Notifier = notify.Notifier

// NewPolling returns a Notifier whose WaitFor always sleeps out its full
// timeout; Notify and Shutdown have no effect on it. Cheap and
// adequate for a consumer that polls at a fixed rate.
func NewPolling() *notify.Polling { return notify.NewPolling() }

// NewCond returns a condition-variable Notifier: WaitFor blocks until
// Notify/Shutdown wakes it or its timeout elapses, and Shutdown latches a
// forced timeout for every future WaitFor call.
func NewCond() *notify.Cond { return notify.NewCond() }
