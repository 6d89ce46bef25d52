package feed

import (
	"sync"
	"testing"
	"time"
)

func TestRegisterUnregister(t *testing.T) {
	f := New()

	s1 := f.Register("h1")
	s2 := f.Register("h1")

	if got := f.SubscriberCount("h1"); got != 2 {
		t.Fatalf("expected 2 subscribers, got %d", got)
	}

	f.Unregister("h1", s1)

	if got := f.SubscriberCount("h1"); got != 1 {
		t.Fatalf("expected 1 subscriber after unregister, got %d", got)
	}

	f.Unregister("h1", s2)

	if got := f.SubscriberCount("h1"); got != 0 {
		t.Fatalf("expected 0 subscribers, got %d", got)
	}
}

func TestDoubleUnregister(t *testing.T) {
	f := New()
	s := f.Register("h1")
	f.Unregister("h1", s)
	// Should not panic
	f.Unregister("h1", s)

	if got := f.SubscriberCount("h1"); got != 0 {
		t.Fatalf("expected 0 subscribers, got %d", got)
	}
}

func TestNotifyReachesAllSlots(t *testing.T) {
	f := New()

	s1 := f.Register("h1")
	s2 := f.Register("h1")

	f.Notify("h1")

	for i, s := range []*Slot{s1, s2} {
		select {
		case <-s.C():
		case <-time.After(100 * time.Millisecond):
			t.Fatalf("slot %d: timeout waiting for signal", i)
		}
	}
}

func TestNotifyScopedToHousehold(t *testing.T) {
	f := New()

	s1 := f.Register("h1")
	s2 := f.Register("h2")

	f.Notify("h1")

	select {
	case <-s1.C():
	case <-time.After(100 * time.Millisecond):
		t.Fatal("timeout waiting for h1 signal")
	}

	select {
	case <-s2.C():
		t.Fatal("h2 slot should not be signaled by an h1 change")
	default:
	}
}

func TestNotifyCoalesces(t *testing.T) {
	f := New()
	s := f.Register("h1")

	for i := 0; i < 10; i++ {
		f.Notify("h1")
	}

	// Exactly one pending signal covers all ten changes
	<-s.C()

	select {
	case <-s.C():
		t.Fatal("expected signals to coalesce into one")
	default:
	}
}

func TestNotifyEmptyFeed(t *testing.T) {
	f := New()
	// Should not panic
	f.Notify("nobody")
}

func TestConcurrentAccess(t *testing.T) {
	f := New()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := f.Register("h1")
			f.Notify("h1")
			f.Unregister("h1", s)
		}()
	}

	wg.Wait()

	if got := f.SubscriberCount("h1"); got != 0 {
		t.Errorf("expected 0 subscribers after concurrent test, got %d", got)
	}
}
