package ring

import (
	"sync"
	"testing"

	"go.uber.org/goleak"
)

func TestPushPopOrder(t *testing.T) {
	r := New[int](4)
	for i := 0; i < 4; i++ {
		if !r.Push(i) {
			t.Fatalf("Push(%d) rejected, want accepted", i)
		}
	}
	for i := 0; i < 4; i++ {
		v, ok := r.Pop()
		if !ok {
			t.Fatalf("Pop() empty at i=%d, want value", i)
		}
		if v != i {
			t.Errorf("Pop() = %d, want %d", v, i)
		}
	}
}

func TestPushRejectsWhenFull(t *testing.T) {
	r := New[int](2)
	if !r.Push(1) {
		t.Fatal("first Push rejected, want accepted")
	}
	if !r.Push(2) {
		t.Fatal("second Push rejected, want accepted")
	}
	if r.Push(3) {
		t.Fatal("third Push accepted, want rejected (ring full)")
	}
	if _, ok := r.Pop(); !ok {
		t.Fatal("Pop() empty, want a value freed by the rejected push")
	}
	if !r.Push(3) {
		t.Fatal("Push after Pop rejected, want accepted")
	}
}

func TestPopEmpty(t *testing.T) {
	r := New[int](4)
	if _, ok := r.Pop(); ok {
		t.Fatal("Pop() on empty ring returned ok=true")
	}
}

func TestCapacityExcludesSlackSlot(t *testing.T) {
	r := New[int](8)
	if got := r.Capacity(); got != 8 {
		t.Errorf("Capacity() = %d, want 8", got)
	}
}

func TestSizeAndWriteAvailable(t *testing.T) {
	r := New[int](4)
	if r.Size() != 0 || !r.Empty() {
		t.Fatalf("new ring not empty: size=%d empty=%v", r.Size(), r.Empty())
	}
	r.Push(1)
	r.Push(2)
	if got := r.Size(); got != 2 {
		t.Errorf("Size() = %d, want 2", got)
	}
	if got := r.WriteAvailable(); got != 2 {
		t.Errorf("WriteAvailable() = %d, want 2", got)
	}
	r.Pop()
	if got := r.Size(); got != 1 {
		t.Errorf("Size() = %d, want 1", got)
	}
}

// TestConcurrentSPSC drives one producer and one consumer goroutine
// concurrently and checks every value survives the crossing exactly once,
// in order, mirroring the wait-free usage contract one SubscriberQueue
// relies on.
func TestConcurrentSPSC(t *testing.T) {
	defer goleak.VerifyNone(t)

	const n = 100000
	r := New[int](64)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			for !r.Push(i) {
				// ring full, retry (overflow is the SubscriberQueue's concern,
				// not the ring's)
			}
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			var v int
			var ok bool
			for {
				v, ok = r.Pop()
				if ok {
					break
				}
			}
			if v != i {
				t.Errorf("Pop() = %d, want %d", v, i)
			}
		}
	}()

	wg.Wait()
}
