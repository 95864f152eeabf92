package session

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/Light-Brands/local-ide-sub000/internal/types"
)

// TabManager owns the terminal tab list. Tabs are kept sorted by their
// explicit index rather than insertion order, so layouts are deterministic
// across reloads.
type TabManager struct {
	mu       sync.RWMutex
	tabs     []*types.TerminalTab
	activeID string
}

// NewTabManager creates an empty tab manager.
func NewTabManager() *TabManager {
	return &TabManager{}
}

// Open inserts a tab at the given index and marks it active. An empty name
// gets the next "Terminal N" auto-name; freed numbers are not reused.
func (m *TabManager) Open(backendID string, index int, name string) types.TerminalTab {
	m.mu.Lock()
	defer m.mu.Unlock()

	if name == "" {
		name = m.nextNameLocked()
	}
	tab := &types.TerminalTab{
		ID:        uuid.New().String(),
		BackendID: backendID,
		Name:      name,
		Index:     index,
	}
	m.tabs = append(m.tabs, tab)
	m.sortLocked()
	m.activeID = tab.ID
	return *tab
}

func (m *TabManager) nextNameLocked() string {
	next := 1
	for _, t := range m.tabs {
		var n int
		if _, err := fmt.Sscanf(t.Name, "Terminal %d", &n); err == nil && n >= next {
			next = n + 1
		}
	}
	return fmt.Sprintf("Terminal %d", next)
}

func (m *TabManager) sortLocked() {
	sort.SliceStable(m.tabs, func(i, j int) bool {
		return m.tabs[i].Index < m.tabs[j].Index
	})
}

// Close removes a tab. If it was active, the first remaining tab in index
// order becomes active, or the pointer clears.
func (m *TabManager) Close(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexLocked(id)
	if idx < 0 {
		return false
	}
	m.tabs = append(m.tabs[:idx], m.tabs[idx+1:]...)
	if m.activeID == id {
		if len(m.tabs) > 0 {
			m.activeID = m.tabs[0].ID
		} else {
			m.activeID = ""
		}
	}
	return true
}

// Activate points the active pointer at an existing tab.
func (m *TabManager) Activate(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexLocked(id) < 0 {
		return false
	}
	m.activeID = id
	return true
}

// Active returns a copy of the active tab, if any.
func (m *TabManager) Active() (types.TerminalTab, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	idx := m.indexLocked(m.activeID)
	if idx < 0 {
		return types.TerminalTab{}, false
	}
	return *m.tabs[idx], true
}

// ActiveID returns the active tab id, or "".
func (m *TabManager) ActiveID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.activeID
}

// List returns copies of all tabs in index order.
func (m *TabManager) List() []types.TerminalTab {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]types.TerminalTab, 0, len(m.tabs))
	for _, t := range m.tabs {
		out = append(out, *t)
	}
	return out
}

// SetMeta records the workspace and branch a tab is attached to.
func (m *TabManager) SetMeta(id, workspace, branch string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexLocked(id)
	if idx < 0 {
		return false
	}
	m.tabs[idx].Workspace = workspace
	m.tabs[idx].Branch = branch
	return true
}

// Reset drops every tab and clears the active pointer.
func (m *TabManager) Reset() {
	m.mu.Lock()
	m.tabs = nil
	m.activeID = ""
	m.mu.Unlock()
}

// Restore replaces the tab list from a persisted snapshot, re-sorting by
// index. The active id is kept only if it resolves.
func (m *TabManager) Restore(tabs []types.TerminalTab, activeID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tabs = make([]*types.TerminalTab, 0, len(tabs))
	for i := range tabs {
		t := tabs[i]
		m.tabs = append(m.tabs, &t)
	}
	m.sortLocked()
	m.activeID = ""
	if m.indexLocked(activeID) >= 0 {
		m.activeID = activeID
	} else if len(m.tabs) > 0 {
		m.activeID = m.tabs[0].ID
	}
}

func (m *TabManager) indexLocked(id string) int {
	if id == "" {
		return -1
	}
	for i, t := range m.tabs {
		if t.ID == id {
			return i
		}
	}
	return -1
}
