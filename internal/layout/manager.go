package layout

import (
	"fmt"
	"sync"

	"github.com/Light-Brands/local-ide-sub000/internal/types"
)

// MaxVisible caps how many panes may be shown at once.
const MaxVisible = 5

// defaultWidth is the initial resize hint for every pane, in pixels.
const defaultWidth = 480

// Manager owns visibility, ordering and sizing for the fixed pane set.
// Panes are created once at startup and only ever hidden, never destroyed.
type Manager struct {
	mu         sync.RWMutex
	order      []types.PaneID
	visible    map[types.PaneID]bool
	widths     map[types.PaneID]int
	capReached bool
}

// NewManager creates a layout with the default arrangement: editor, chat and
// preview shown, everything else collapsed.
func NewManager() *Manager {
	m := &Manager{
		order:   types.AllPanes(),
		visible: make(map[types.PaneID]bool),
		widths:  make(map[types.PaneID]int),
	}
	for _, id := range m.order {
		m.widths[id] = defaultWidth
	}
	m.visible[types.PaneEditor] = true
	m.visible[types.PaneChat] = true
	m.visible[types.PanePreview] = true
	return m
}

// Toggle flips visibility for a pane. Showing a pane when MaxVisible are
// already visible is rejected: no state changes except the cap flag, which
// drives UI feedback. Hiding always succeeds and clears the flag.
func (m *Manager) Toggle(id types.PaneID) bool {
	if !id.Valid() {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.visible[id] && m.visibleCountLocked() >= MaxVisible {
		m.capReached = true
		return false
	}

	m.visible[id] = !m.visible[id]
	m.capReached = false
	return true
}

// CapReached reports whether the last rejected Toggle hit the visible cap.
func (m *Manager) CapReached() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.capReached
}

// Reorder replaces the total order. The new order must be a permutation of
// the full pane set; visibility is untouched.
func (m *Manager) Reorder(ids []types.PaneID) error {
	if len(ids) != len(types.AllPanes()) {
		return fmt.Errorf("order must list all %d panes, got %d", len(types.AllPanes()), len(ids))
	}
	seen := make(map[types.PaneID]bool, len(ids))
	for _, id := range ids {
		if !id.Valid() || seen[id] {
			return fmt.Errorf("order is not a permutation of the pane set")
		}
		seen[id] = true
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.order = append([]types.PaneID(nil), ids...)
	return nil
}

// SetWidth stores a desktop resize hint. It is not validated against the
// viewport; rendering clamps as needed.
func (m *Manager) SetWidth(id types.PaneID, px int) {
	if !id.Valid() || px <= 0 {
		return
	}
	m.mu.Lock()
	m.widths[id] = px
	m.mu.Unlock()
}

// Visible reports whether a pane is currently shown.
func (m *Manager) Visible(id types.PaneID) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.visible[id]
}

// VisibleCount returns the number of panes currently shown.
func (m *Manager) VisibleCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.visibleCountLocked()
}

func (m *Manager) visibleCountLocked() int {
	n := 0
	for _, shown := range m.visible {
		if shown {
			n++
		}
	}
	return n
}

// Order returns the current total order over all pane ids.
func (m *Manager) Order() []types.PaneID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]types.PaneID(nil), m.order...)
}

// Width returns the stored resize hint for a pane.
func (m *Manager) Width(id types.PaneID) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.widths[id]
}

// Edges computes the collapsed rails: hidden panes strictly before the first
// visible pane form the leading rail, hidden panes strictly after the last
// visible one form the trailing rail. The legacy pane never appears in either.
// With nothing visible every collapsed pane lands on the leading rail.
func (m *Manager) Edges() (leading, trailing []types.PaneID) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var rotation []types.PaneID
	for _, id := range m.order {
		if id == types.PaneLegacy {
			continue
		}
		rotation = append(rotation, id)
	}

	first, last := -1, -1
	for i, id := range rotation {
		if m.visible[id] {
			if first < 0 {
				first = i
			}
			last = i
		}
	}

	if first < 0 {
		leading = append(leading, rotation...)
		return leading, nil
	}

	for i, id := range rotation {
		if m.visible[id] {
			continue
		}
		switch {
		case i < first:
			leading = append(leading, id)
		case i > last:
			trailing = append(trailing, id)
		}
	}
	return leading, trailing
}

// Legacy derives the pre-rework layout shape from canonical state.
func (m *Manager) Legacy() types.LegacyPaneView {
	m.mu.RLock()
	defer m.mu.RUnlock()

	view := types.LegacyPaneView{
		ShowEditor:   m.visible[types.PaneEditor],
		ShowChat:     m.visible[types.PaneChat],
		ShowTerminal: m.visible[types.PaneTerminal],
		ShowPreview:  m.visible[types.PanePreview] || m.visible[types.PaneLegacy],
		ShowDatabase: m.visible[types.PaneDatabase],
	}
	for _, id := range m.order {
		if id == types.PaneLegacy {
			continue
		}
		view.PaneOrder = append(view.PaneOrder, id.String())
	}
	return view
}

// Snapshot captures the layout for persistence.
func (m *Manager) Snapshot() types.LayoutSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := types.LayoutSnapshot{
		Order:   append([]types.PaneID(nil), m.order...),
		Visible: make(map[types.PaneID]bool, len(m.visible)),
		Widths:  make(map[types.PaneID]int, len(m.widths)),
	}
	for id, shown := range m.visible {
		snap.Visible[id] = shown
	}
	for id, px := range m.widths {
		snap.Widths[id] = px
	}
	return snap
}

// Restore applies a persisted layout. Unknown pane ids are dropped and panes
// missing from the stored order are appended, so documents from older schema
// versions load without faulting.
func (m *Manager) Restore(snap types.LayoutSnapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var order []types.PaneID
	seen := make(map[types.PaneID]bool)
	for _, id := range snap.Order {
		if !id.Valid() || seen[id] {
			continue
		}
		order = append(order, id)
		seen[id] = true
	}
	for _, id := range types.AllPanes() {
		if !seen[id] {
			order = append(order, id)
		}
	}
	m.order = order

	visible := make(map[types.PaneID]bool)
	shown := 0
	for _, id := range m.order {
		if snap.Visible[id] && shown < MaxVisible {
			visible[id] = true
			shown++
		}
	}
	m.visible = visible

	widths := make(map[types.PaneID]int)
	for _, id := range m.order {
		if px, ok := snap.Widths[id]; ok && px > 0 {
			widths[id] = px
		} else {
			widths[id] = defaultWidth
		}
	}
	m.widths = widths
	m.capReached = false
}
