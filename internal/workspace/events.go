package workspace

// EventKind names the slice of state a notification covers. Subscribers
// re-read the relevant view rather than receiving a payload; the state tree
// is the single source of truth.
type EventKind string

const (
	EventLayout       EventKind = "layout"
	EventMobile       EventKind = "mobile"
	EventChats        EventKind = "chats"
	EventTabs         EventKind = "tabs"
	EventPorts        EventKind = "ports"
	EventFiles        EventKind = "files"
	EventActivity     EventKind = "activity"
	EventSettings     EventKind = "settings"
	EventIntegrations EventKind = "integrations"
	EventProject      EventKind = "project"
	EventHydrated     EventKind = "hydrated"
)

// Event is a change notification emitted after a transition commits.
type Event struct {
	Kind EventKind `json:"kind"`
}

// Subscribe registers a change listener and returns its cancel func.
// Listeners are invoked synchronously after each transition; keep them
// short and hand off to a channel or goroutine for slow work.
func (m *Manager) Subscribe(fn func(Event)) func() {
	m.subMu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.subMu.Unlock()

	return func() {
		m.subMu.Lock()
		delete(m.subs, id)
		m.subMu.Unlock()
	}
}

func (m *Manager) emit(kind EventKind) {
	m.subMu.Lock()
	fns := make([]func(Event), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.subMu.Unlock()

	ev := Event{Kind: kind}
	for _, fn := range fns {
		fn(ev)
	}
}
