// Package store holds the quote tab state for one editing session and the
// closed command protocol that is the only way to mutate it.
package store

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// StateVersion tags persisted snapshots so future schema changes can be
// detected on hydration.
const StateVersion = "1.0"

// Tab is a single unit of quoting work. Inputs is the live edit buffer;
// CommittedInputs is the last validated value set and the only input state
// the calculators and exports ever read.
type Tab struct {
	ID              string            `json:"id"`
	Label           string            `json:"label"`
	QuoteName       string            `json:"quoteName"`
	ServiceType     string            `json:"serviceType"`
	Inputs          map[string]string `json:"inputs"`
	CommittedInputs map[string]string `json:"committedInputs"`
	IsDirty         bool              `json:"isDirty"`
	LastCommitError string            `json:"lastCommitError"`
}

// State is the root snapshot: an ordered tab collection plus the active tab.
// The collection is never empty and ActiveTabID always refers to an existing
// tab.
type State struct {
	Version     string `json:"version"`
	Tabs        []Tab  `json:"tabs"`
	ActiveTabID string `json:"activeTabId"`
}

// ImportedTab is the tab shape accepted by the ImportQuotes command. Inputs
// become both the live and the committed values of the rebuilt tab.
type ImportedTab struct {
	Label       string
	QuoteName   string
	ServiceType string
	Inputs      map[string]string
}

// Command is the closed set of state mutations. Each dispatch ends with a
// synchronous notification of all subscribers.
type Command interface{ isCommand() }

type AddTab struct{}

type RemoveTab struct{ TabID string }

type SetActiveTab struct{ TabID string }

type SetServiceType struct {
	TabID       string
	ServiceType string
}

type SetQuoteName struct {
	TabID string
	Name  string
}

type UpdateField struct {
	TabID   string
	FieldID string
	Value   string
}

type CommitInputs struct{ TabID string }

type SetTabError struct {
	TabID   string
	Message string
}

type ImportQuotes struct{ Tabs []ImportedTab }

type ClearAllQuotes struct{}

func (AddTab) isCommand()         {}
func (RemoveTab) isCommand()      {}
func (SetActiveTab) isCommand()   {}
func (SetServiceType) isCommand() {}
func (SetQuoteName) isCommand()   {}
func (UpdateField) isCommand()    {}
func (CommitInputs) isCommand()   {}
func (SetTabError) isCommand()    {}
func (ImportQuotes) isCommand()   {}
func (ClearAllQuotes) isCommand() {}

// Listener receives a deep-copied state snapshot after every dispatch.
type Listener func(State)

// Store owns the application state. Request handlers touch it concurrently,
// so a mutex guards every entry point.
type Store struct {
	mu            sync.Mutex
	state         State
	nextTabNumber int
	listeners     []*listenerEntry
}

type listenerEntry struct {
	fn Listener
}

var tabIDPattern = regexp.MustCompile(`tab-(\d+)`)

// New returns a store initialized with one fresh empty tab.
func New() *Store {
	s := &Store{}
	s.state = s.initialState()
	return s
}

func (s *Store) newTab() Tab {
	id := "tab-" + strconv.Itoa(s.nextTabNumber)
	t := Tab{
		ID:              id,
		Label:           "Quote " + strconv.Itoa(s.nextTabNumber),
		Inputs:          map[string]string{},
		CommittedInputs: map[string]string{},
	}
	s.nextTabNumber++
	return t
}

func (s *Store) initialState() State {
	s.nextTabNumber = 1
	first := s.newTab()
	return State{
		Version:     StateVersion,
		Tabs:        []Tab{first},
		ActiveTabID: first.ID,
	}
}

// State returns a deep copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneState(s.state)
}

// Subscribe registers a listener and returns a function that removes it.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := &listenerEntry{fn: fn}
	s.listeners = append(s.listeners, entry)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		kept := s.listeners[:0]
		for _, e := range s.listeners {
			if e != entry {
				kept = append(kept, e)
			}
		}
		s.listeners = kept
	}
}

// Hydrate replaces the state with a previously persisted snapshot. Invalid or
// empty snapshots fall back to a fresh initial state. Tabs without a
// recognizable tab-N id, and tabs whose id collides with an already recovered
// one, get a freshly assigned id past the highest recovered number so ids stay
// unique. Old commit errors are not resurrected and the tab counter resumes
// past everything recovered or assigned.
func (s *Store) Hydrate(snapshot State) {
	s.mu.Lock()
	if len(snapshot.Tabs) == 0 {
		s.state = s.initialState()
		st := cloneState(s.state)
		listeners := s.snapshotListeners()
		s.mu.Unlock()
		notify(listeners, st)
		return
	}

	// First pass finds the highest recovered number; fresh ids start past it
	// so they can never collide with a recovered id later in the list.
	maxNum := 0
	for _, t := range snapshot.Tabs {
		if m := tabIDPattern.FindStringSubmatch(strings.TrimSpace(t.ID)); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > maxNum {
				maxNum = n
			}
		}
	}

	rebuilt := make([]Tab, 0, len(snapshot.Tabs))
	seen := make(map[string]bool, len(snapshot.Tabs))
	next := maxNum + 1
	for _, t := range snapshot.Tabs {
		id := strings.TrimSpace(t.ID)
		num := 0
		if m := tabIDPattern.FindStringSubmatch(id); m != nil {
			num, _ = strconv.Atoi(m[1])
		}
		if num == 0 || seen[id] {
			num = next
			next++
			id = "tab-" + strconv.Itoa(num)
		}
		seen[id] = true

		label := strings.TrimSpace(t.Label)
		if label == "" {
			label = "Quote " + strconv.Itoa(num)
		}

		committed := t.CommittedInputs
		if committed == nil {
			committed = t.Inputs
		}
		rebuilt = append(rebuilt, Tab{
			ID:              id,
			Label:           label,
			QuoteName:       t.QuoteName,
			ServiceType:     t.ServiceType,
			Inputs:          cloneInputs(t.Inputs),
			CommittedInputs: cloneInputs(committed),
			IsDirty:         t.IsDirty,
		})
	}

	activeID := snapshot.ActiveTabID
	if !hasTab(rebuilt, activeID) {
		activeID = rebuilt[0].ID
	}

	version := snapshot.Version
	if version == "" {
		version = StateVersion
	}

	s.state = State{Version: version, Tabs: rebuilt, ActiveTabID: activeID}
	s.nextTabNumber = next

	st := cloneState(s.state)
	listeners := s.snapshotListeners()
	s.mu.Unlock()
	notify(listeners, st)
}

// Dispatch applies a command and synchronously notifies all subscribers with
// the resulting snapshot. Unknown tab ids make the command a no-op (the
// notification still fires).
func (s *Store) Dispatch(cmd Command) {
	s.mu.Lock()
	s.apply(cmd)
	st := cloneState(s.state)
	listeners := s.snapshotListeners()
	s.mu.Unlock()
	notify(listeners, st)
}

func (s *Store) apply(cmd Command) {
	switch c := cmd.(type) {
	case AddTab:
		t := s.newTab()
		s.state.Tabs = append(s.state.Tabs, t)
		s.state.ActiveTabID = t.ID

	case RemoveTab:
		// Removing the last remaining tab is a full reset; the
		// collection must never become empty.
		if len(s.state.Tabs) <= 1 {
			s.state = s.initialState()
			return
		}
		index := -1
		for i, t := range s.state.Tabs {
			if t.ID == c.TabID {
				index = i
				break
			}
		}
		if index == -1 {
			return
		}
		removedActive := s.state.ActiveTabID == c.TabID
		s.state.Tabs = append(s.state.Tabs[:index], s.state.Tabs[index+1:]...)
		if removedActive {
			fallback := index - 1
			if fallback < 0 {
				fallback = 0
			}
			s.state.ActiveTabID = s.state.Tabs[fallback].ID
		}

	case SetActiveTab:
		s.state.ActiveTabID = c.TabID

	case SetServiceType:
		s.updateTab(c.TabID, func(t *Tab) {
			t.ServiceType = c.ServiceType
			t.Inputs = map[string]string{}
			t.CommittedInputs = map[string]string{}
			t.IsDirty = false
			t.LastCommitError = ""
		})

	case SetQuoteName:
		s.updateTab(c.TabID, func(t *Tab) {
			t.QuoteName = c.Name
		})

	case UpdateField:
		s.updateTab(c.TabID, func(t *Tab) {
			t.Inputs[c.FieldID] = c.Value
			t.IsDirty = true
		})

	case CommitInputs:
		// Validation is the caller's job; the store copies verbatim.
		s.updateTab(c.TabID, func(t *Tab) {
			t.CommittedInputs = cloneInputs(t.Inputs)
			t.IsDirty = false
			t.LastCommitError = ""
		})

	case SetTabError:
		s.updateTab(c.TabID, func(t *Tab) {
			t.LastCommitError = c.Message
		})

	case ImportQuotes:
		if len(c.Tabs) == 0 {
			return
		}
		s.nextTabNumber = 1
		tabs := make([]Tab, 0, len(c.Tabs))
		for i, src := range c.Tabs {
			t := s.newTab()
			if strings.TrimSpace(src.Label) != "" {
				t.Label = src.Label
			} else {
				t.Label = "Quote " + strconv.Itoa(i+1)
			}
			t.QuoteName = src.QuoteName
			t.ServiceType = src.ServiceType
			t.Inputs = cloneInputs(src.Inputs)
			t.CommittedInputs = cloneInputs(src.Inputs)
			tabs = append(tabs, t)
		}
		s.state.Tabs = tabs
		s.state.ActiveTabID = tabs[0].ID

	case ClearAllQuotes:
		s.state = s.initialState()
	}
}

func (s *Store) updateTab(tabID string, fn func(*Tab)) {
	for i := range s.state.Tabs {
		if s.state.Tabs[i].ID == tabID {
			fn(&s.state.Tabs[i])
			return
		}
	}
}

func (s *Store) snapshotListeners() []Listener {
	out := make([]Listener, 0, len(s.listeners))
	for _, e := range s.listeners {
		out = append(out, e.fn)
	}
	return out
}

func notify(listeners []Listener, st State) {
	for _, fn := range listeners {
		fn(st)
	}
}

// ActiveTab returns the active tab from a snapshot, or false when the id is
// not present (only possible transiently during reset).
func (st State) ActiveTab() (Tab, bool) {
	for _, t := range st.Tabs {
		if t.ID == st.ActiveTabID {
			return t, true
		}
	}
	return Tab{}, false
}

// FindTab returns the tab with the given id from a snapshot.
func (st State) FindTab(tabID string) (Tab, bool) {
	for _, t := range st.Tabs {
		if t.ID == tabID {
			return t, true
		}
	}
	return Tab{}, false
}

func hasTab(tabs []Tab, id string) bool {
	for _, t := range tabs {
		if t.ID == id {
			return true
		}
	}
	return false
}

func cloneState(st State) State {
	out := State{
		Version:     st.Version,
		ActiveTabID: st.ActiveTabID,
		Tabs:        make([]Tab, len(st.Tabs)),
	}
	for i, t := range st.Tabs {
		t.Inputs = cloneInputs(t.Inputs)
		t.CommittedInputs = cloneInputs(t.CommittedInputs)
		out.Tabs[i] = t
	}
	return out
}

func cloneInputs(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
