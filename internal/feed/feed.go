// Package feed fans out per-household change signals to subscribers.
// It carries no payload: a signal means "the household document changed,
// re-read it". Signals coalesce — a subscriber that has not consumed a
// pending signal does not accumulate more, so a stalled consumer sees at
// most one wakeup covering any number of rapid changes.
package feed

import "sync"

// Slot is one subscriber's registration with a Feed. The signal channel
// holds at most one pending notification.
type Slot struct {
	ch chan struct{}
}

// C returns the signal channel. It is never closed by the Feed; a
// subscriber stops by unregistering.
func (s *Slot) C() <-chan struct{} {
	return s.ch
}

// Feed maintains the set of registered slots per household.
type Feed struct {
	mu    sync.RWMutex
	slots map[string]map[*Slot]struct{}
}

func New() *Feed {
	return &Feed{
		slots: make(map[string]map[*Slot]struct{}),
	}
}

// Register adds a subscriber slot for the given household.
func (f *Feed) Register(householdID string) *Slot {
	s := &Slot{ch: make(chan struct{}, 1)}

	f.mu.Lock()
	set, ok := f.slots[householdID]
	if !ok {
		set = make(map[*Slot]struct{})
		f.slots[householdID] = set
	}
	set[s] = struct{}{}
	f.mu.Unlock()

	return s
}

// Unregister removes a slot. Safe to call more than once.
func (f *Feed) Unregister(householdID string, s *Slot) {
	f.mu.Lock()
	if set, ok := f.slots[householdID]; ok {
		delete(set, s)
		if len(set) == 0 {
			delete(f.slots, householdID)
		}
	}
	f.mu.Unlock()
}

// Notify signals every slot registered for the household. A slot with a
// signal already pending is left as-is; the pending signal covers this
// change too.
func (f *Feed) Notify(householdID string) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for s := range f.slots[householdID] {
		select {
		case s.ch <- struct{}{}:
		default:
		}
	}
}

// SubscriberCount returns the number of slots registered for the household.
func (f *Feed) SubscriberCount(householdID string) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.slots[householdID])
}
