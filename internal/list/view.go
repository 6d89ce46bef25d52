package list

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gustavor29/Tablon/internal/model"
	"github.com/gustavor29/Tablon/internal/store"
)

// ListState is what a UI client renders at any moment.
type ListState struct {
	Loading      bool         `json:"loading"`
	Err          string       `json:"error,omitempty"`
	Items        []model.Item `json:"items"`
	Suggestions  []string     `json:"suggestions,omitempty"`
	LastUsedUnit string       `json:"last_used_unit,omitempty"`
}

// unitPulse is how long a selected suggestion's last-used unit stays
// visible; it is a one-shot hint, not persistent state.
const unitPulse = 200 * time.Millisecond

// minQueryRunes gates suggestion search: queries of one character or
// less clear the suggestion list instead of hitting the store.
const minQueryRunes = 2

// View composes a household's live list subscription with transient UI
// state. It starts in the loading state, clears loading on the first
// snapshot, and surfaces subscription errors. One View per client
// session; Close releases the underlying listener.
type View struct {
	svc    *Service
	users  *store.UserStore
	userID string
	logger *slog.Logger
	pulse  time.Duration

	cancel context.CancelFunc
	done   chan struct{}

	mu          sync.Mutex
	householdID string
	state       ListState
	changed     chan struct{}
	pulseTimer  *time.Timer
}

func NewView(svc *Service, users *store.UserStore, userID string, logger *slog.Logger) *View {
	return &View{
		svc:     svc,
		users:   users,
		userID:  userID,
		logger:  logger,
		pulse:   unitPulse,
		state:   ListState{Loading: true},
		changed: make(chan struct{}, 1),
	}
}

// Start resolves the user's household and begins observing its list.
// Resolution and observation run in the background; progress is
// reported through State and Changed.
func (v *View) Start(ctx context.Context) {
	ctx, v.cancel = context.WithCancel(ctx)
	v.done = make(chan struct{})
	go v.run(ctx)
}

func (v *View) run(ctx context.Context) {
	defer close(v.done)

	u, err := v.users.Get(v.userID)
	if err != nil {
		v.update(func(st *ListState) {
			st.Loading = false
			st.Err = err.Error()
		})
		return
	}
	if u == nil || u.HouseholdID == "" {
		v.update(func(st *ListState) {
			st.Loading = false
			st.Err = "no household linked to this user"
		})
		return
	}

	v.mu.Lock()
	v.householdID = u.HouseholdID
	v.mu.Unlock()

	sub := v.svc.Subscribe(ctx, u.HouseholdID)
	defer sub.Close()

	for items := range sub.Snapshots() {
		v.update(func(st *ListState) {
			st.Loading = false
			st.Err = ""
			st.Items = items
		})
	}

	if err := sub.Err(); err != nil {
		v.update(func(st *ListState) {
			st.Loading = false
			st.Err = err.Error()
		})
	}
}

// Close stops observation and releases the list subscription. A no-op
// when the view was never started.
func (v *View) Close() {
	if v.cancel == nil {
		return
	}
	v.cancel()
	<-v.done

	v.mu.Lock()
	if v.pulseTimer != nil {
		v.pulseTimer.Stop()
	}
	v.mu.Unlock()
}

// State returns the current UI state.
func (v *View) State() ListState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Changed signals that State has a new value. Signals coalesce; read
// State after each wakeup.
func (v *View) Changed() <-chan struct{} {
	return v.changed
}

// HouseholdID returns the resolved household, or "" before resolution.
func (v *View) HouseholdID() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.householdID
}

func (v *View) update(fn func(*ListState)) {
	v.mu.Lock()
	fn(&v.state)
	v.mu.Unlock()

	select {
	case v.changed <- struct{}{}:
	default:
	}
}

// AddItem issues the add intent. No-op before the household resolves.
func (v *View) AddItem(name string, quantity float64, unit, description string) {
	hid := v.HouseholdID()
	if hid == "" {
		return
	}
	v.svc.AddItem(hid, name, quantity, unit, description)
}

func (v *View) UpdateItem(item model.Item) {
	hid := v.HouseholdID()
	if hid == "" {
		return
	}
	v.svc.UpdateItem(hid, item)
}

func (v *View) RemoveItem(item model.Item) {
	hid := v.HouseholdID()
	if hid == "" {
		return
	}
	v.svc.RemoveItem(hid, item)
}

// Archive snapshots the items this view last observed. An empty view is
// a no-op. Archive failures, unlike item mutations, are returned.
func (v *View) Archive() error {
	hid := v.HouseholdID()
	items := v.State().Items
	if hid == "" || len(items) == 0 {
		return nil
	}
	_, err := v.svc.Archive(hid, items)
	return err
}

// SearchSuggestions refreshes the suggestion list for the query. Short
// queries clear it.
func (v *View) SearchSuggestions(query string) {
	if len([]rune(strings.TrimSpace(query))) < minQueryRunes {
		v.update(func(st *ListState) { st.Suggestions = nil })
		return
	}

	names, err := v.svc.SearchSuggestions(query)
	if err != nil {
		v.logger.Error("search suggestions", "query", query, "error", err)
		return
	}
	v.update(func(st *ListState) { st.Suggestions = names })
}

// SelectSuggestion surfaces the last-used unit for the chosen product
// name and clears the suggestion list. The unit hint clears itself
// after the pulse window.
func (v *View) SelectSuggestion(name string) {
	sg, err := v.svc.LastUnit(name)
	if err != nil {
		v.logger.Error("lookup last unit", "name", name, "error", err)
		return
	}
	var unit string
	if sg != nil {
		unit = sg.LastUsedUnit
	}

	v.update(func(st *ListState) {
		st.LastUsedUnit = unit
		st.Suggestions = nil
	})

	v.mu.Lock()
	if v.pulseTimer != nil {
		v.pulseTimer.Stop()
	}
	v.pulseTimer = time.AfterFunc(v.pulse, func() {
		v.update(func(st *ListState) { st.LastUsedUnit = "" })
	})
	v.mu.Unlock()
}
