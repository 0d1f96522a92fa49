package fabric

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/nodebus/vdds/internal/notify"
)

func TestTopicSubscribePublishPushPop(t *testing.T) {
	topic := NewTopic("D", "/t", "dt")

	q, err := topic.Subscribe("SUB0", 4, nil)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	p, err := topic.Publish("PUB0")
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}

	var e Envelope
	e.Plain[0] = 42
	topic.Push(p, e)

	got, ok := topic.Pop(q)
	if !ok {
		t.Fatal("Pop() = false, want true")
	}
	if got.Plain[0] != 42 {
		t.Errorf("Plain[0] = %d, want 42", got.Plain[0])
	}
	if got.Seqno != 0 {
		t.Errorf("Seqno = %d, want 0 (first push)", got.Seqno)
	}
}

// TestTopicSubscribePublishAllowDuplicateNames mirrors topic.cc's permissive
// subscribe/publish: a repeated name registers a second, independent entry
// rather than failing.
func TestTopicSubscribePublishAllowDuplicateNames(t *testing.T) {
	topic := NewTopic("D", "/t", "dt")

	q0, err := topic.Subscribe("SUB0", 4, nil)
	if err != nil {
		t.Fatalf("first Subscribe: %v", err)
	}
	q1, err := topic.Subscribe("SUB0", 4, nil)
	if err != nil {
		t.Fatalf("second Subscribe with duplicate name: %v", err)
	}
	if q0 == q1 {
		t.Fatal("second Subscribe returned the same queue as the first")
	}

	p0, err := topic.Publish("PUB0")
	if err != nil {
		t.Fatalf("first Publish: %v", err)
	}
	p1, err := topic.Publish("PUB0")
	if err != nil {
		t.Fatalf("second Publish with duplicate name: %v", err)
	}
	if p0 == p1 {
		t.Fatal("second Publish returned the same handle as the first")
	}

	var ti TopicInfo
	topic.Query(&ti)
	if len(ti.Subs) != 2 || len(ti.Pubs) != 2 {
		t.Errorf("Query() subs/pubs = %d/%d, want 2/2", len(ti.Subs), len(ti.Pubs))
	}
}

// TestTopicFanOut mirrors the Fan-out seed scenario: one push reaches every
// current subscriber.
func TestTopicFanOut(t *testing.T) {
	topic := NewTopic("D", "/t", "dt")
	p, _ := topic.Publish("PUB0")

	const n = 5
	qs := make([]*SubscriberQueue, n)
	for i := range qs {
		qs[i], _ = topic.Subscribe(string(rune('A'+i)), 4, nil)
	}

	topic.Push(p, Envelope{})

	for i, q := range qs {
		if _, ok := topic.Pop(q); !ok {
			t.Errorf("subscriber %d: Pop() = false, want true", i)
		}
	}
}

// TestTopicOverflowDropsAndCounts mirrors the Overflow seed scenario:
// pushing past a subscriber's capacity increments drop_count without
// blocking the publisher.
func TestTopicOverflowDropsAndCounts(t *testing.T) {
	topic := NewTopic("D", "/t", "dt")
	p, _ := topic.Publish("PUB0")
	q, _ := topic.Subscribe("SUB0", 2, nil)

	for i := 0; i < 5; i++ {
		topic.Push(p, Envelope{})
	}

	if got := q.PushCount(); got != 5 {
		t.Errorf("PushCount() = %d, want 5", got)
	}
	if got := q.DropCount(); got != 3 {
		t.Errorf("DropCount() = %d, want 3", got)
	}
	if got := q.Size(); got != 2 {
		t.Errorf("Size() = %d, want 2 (capacity)", got)
	}
}

// TestTopicMultiPublisherSerializesPerQueue spins up several publishers
// pushing concurrently into one subscriber queue and checks every push is
// accounted for exactly once, matching multi-test.cc's concurrent
// publisher scenario.
func TestTopicMultiPublisherSerializesPerQueue(t *testing.T) {
	defer goleak.VerifyNone(t)

	topic := NewTopic("D", "/t", "dt")
	q, _ := topic.Subscribe("SUB0", 10000, nil)

	const npub = 8
	const perPub = 500
	pubs := make([]*PublisherHandle, npub)
	for i := range pubs {
		pubs[i], _ = topic.Publish(string(rune('A' + i)))
	}

	var wg sync.WaitGroup
	for _, p := range pubs {
		wg.Add(1)
		go func(p *PublisherHandle) {
			defer wg.Done()
			for i := 0; i < perPub; i++ {
				topic.Push(p, Envelope{})
			}
		}(p)
	}
	wg.Wait()

	want := uint32(npub * perPub)
	if got := q.PushCount(); got != want {
		t.Errorf("PushCount() = %d, want %d", got, want)
	}
	if got := q.DropCount(); got != 0 {
		t.Errorf("DropCount() = %d, want 0 (queue large enough)", got)
	}
}

// TestTopicSubscribeUnsubscribeDuringPushIsAtomic verifies every push sees
// either the complete old subscriber set or the complete new one, never a
// partial one, despite concurrent Subscribe/Unsubscribe churn: a subscriber
// present in every snapshot, old or new, must receive every push.
func TestTopicSubscribeUnsubscribeDuringPushIsAtomic(t *testing.T) {
	defer goleak.VerifyNone(t)

	const npush = 2000
	topic := NewTopic("D", "/t", "dt")
	p, _ := topic.Publish("PUB0")
	stable, _ := topic.Subscribe("stable", npush, nil)

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			q, err := topic.Subscribe("churn", 4, nil)
			if err == nil {
				topic.Unsubscribe(q)
			}
		}
	}()

	for i := 0; i < npush; i++ {
		topic.Push(p, Envelope{})
	}
	close(stop)
	wg.Wait()

	if got := stable.PushCount(); got != npush {
		t.Errorf("stable PushCount() = %d, want %d", got, npush)
	}
	if got := stable.DropCount(); got != 0 {
		t.Errorf("stable DropCount() = %d, want 0", got)
	}
}

func TestTopicShutdownLatchesSubscriberNotifiers(t *testing.T) {
	topic := NewTopic("D", "/t", "dt")
	n := notify.NewCond()
	_, _ = topic.Subscribe("SUB0", 4, n)

	start := time.Now()
	topic.Shutdown(time.Millisecond)
	n.WaitFor(time.Hour)
	if elapsed := time.Since(start); elapsed > 200*time.Millisecond {
		t.Fatalf("WaitFor after topic Shutdown blocked for %v, want near-immediate", elapsed)
	}
}

func TestTopicQueryReflectsState(t *testing.T) {
	topic := NewTopic("D", "/t", "dt")
	p, _ := topic.Publish("PUB0")
	q, _ := topic.Subscribe("SUB0", 4, nil)
	topic.Push(p, Envelope{})
	topic.Pop(q)

	var ti TopicInfo
	topic.Query(&ti)

	if ti.Name != "/t" || ti.DataType != "dt" {
		t.Errorf("Query() name/type = %q/%q, want /t/dt", ti.Name, ti.DataType)
	}
	if len(ti.Subs) != 1 || ti.Subs[0].Name != "SUB0" {
		t.Errorf("Query() subs = %+v, want one SUB0", ti.Subs)
	}
	if len(ti.Pubs) != 1 || ti.Pubs[0].Name != "PUB0" {
		t.Errorf("Query() pubs = %+v, want one PUB0", ti.Pubs)
	}
	if ti.PushCount != 1 {
		t.Errorf("Query() push_count = %d, want 1", ti.PushCount)
	}
}
