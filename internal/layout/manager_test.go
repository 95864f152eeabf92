package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Light-Brands/local-ide-sub000/internal/types"
)

func TestToggleNeverExceedsCap(t *testing.T) {
	m := NewManager()

	// Show everything we can.
	for _, id := range types.AllPanes() {
		m.Toggle(id)
		assert.LessOrEqual(t, m.VisibleCount(), MaxVisible)
	}

	// Drive an arbitrary toggle sequence and re-check the invariant.
	seq := []types.PaneID{
		types.PaneEditor, types.PaneDeploy, types.PaneEditor, types.PaneDatabase,
		types.PaneTerminal, types.PaneChat, types.PanePreview, types.PaneDeploy,
	}
	for _, id := range seq {
		m.Toggle(id)
		assert.LessOrEqual(t, m.VisibleCount(), MaxVisible)
	}
}

func TestToggleAtCapSetsFlag(t *testing.T) {
	m := NewManager()

	// Default shows 3; bring it to the cap.
	require.True(t, m.Toggle(types.PaneTerminal))
	require.True(t, m.Toggle(types.PaneDatabase))
	require.Equal(t, MaxVisible, m.VisibleCount())
	require.False(t, m.CapReached())

	ok := m.Toggle(types.PaneDeploy)
	assert.False(t, ok)
	assert.True(t, m.CapReached())
	assert.False(t, m.Visible(types.PaneDeploy))
	assert.Equal(t, MaxVisible, m.VisibleCount())
}

func TestToggleVisibleAlwaysSucceeds(t *testing.T) {
	m := NewManager()
	require.True(t, m.Toggle(types.PaneTerminal))
	require.True(t, m.Toggle(types.PaneDatabase))

	// Force the cap flag on.
	require.False(t, m.Toggle(types.PaneDeploy))
	require.True(t, m.CapReached())

	// Hiding a visible pane is never rejected and clears the flag.
	assert.True(t, m.Toggle(types.PaneChat))
	assert.False(t, m.Visible(types.PaneChat))
	assert.False(t, m.CapReached())
}

func TestReorderKeepsVisibility(t *testing.T) {
	m := NewManager()
	before := make(map[types.PaneID]bool)
	for _, id := range types.AllPanes() {
		before[id] = m.Visible(id)
	}

	newOrder := []types.PaneID{
		types.PaneDeploy, types.PaneDatabase, types.PanePreview,
		types.PaneTerminal, types.PaneChat, types.PaneEditor,
	}
	require.NoError(t, m.Reorder(newOrder))
	assert.Equal(t, newOrder, m.Order())
	for _, id := range types.AllPanes() {
		assert.Equal(t, before[id], m.Visible(id))
	}
}

func TestReorderRejectsNonPermutation(t *testing.T) {
	m := NewManager()
	assert.Error(t, m.Reorder([]types.PaneID{types.PaneEditor}))
	assert.Error(t, m.Reorder([]types.PaneID{
		types.PaneEditor, types.PaneEditor, types.PaneChat,
		types.PaneTerminal, types.PanePreview, types.PaneDatabase,
	}))
	assert.Equal(t, types.AllPanes(), m.Order())
}

func TestEdges(t *testing.T) {
	m := NewManager()
	// Order: editor chat terminal preview database deploy.
	// Hide editor and database; visible: chat, preview (terminal default-hidden).
	require.True(t, m.Toggle(types.PaneEditor))

	leading, trailing := m.Edges()
	assert.Equal(t, []types.PaneID{types.PaneEditor}, leading)
	assert.Equal(t, []types.PaneID{types.PaneDatabase}, trailing)

	// Terminal sits between chat and preview: belongs to neither rail.
	for _, id := range leading {
		assert.NotEqual(t, types.PaneTerminal, id)
	}
	for _, id := range trailing {
		assert.NotEqual(t, types.PaneTerminal, id)
	}
}

func TestEdgesExcludeLegacyPane(t *testing.T) {
	m := NewManager()
	// Legacy pane is hidden and last in order, but never rails.
	_, trailing := m.Edges()
	for _, id := range trailing {
		assert.NotEqual(t, types.PaneLegacy, id)
	}

	// Even with nothing visible it stays out.
	for _, id := range types.AllPanes() {
		if m.Visible(id) {
			m.Toggle(id)
		}
	}
	leading, trailing := m.Edges()
	assert.Empty(t, trailing)
	assert.NotContains(t, leading, types.PaneLegacy)
	assert.Len(t, leading, len(types.AllPanes())-1)
}

func TestLegacyViewDerivation(t *testing.T) {
	m := NewManager()
	view := m.Legacy()
	assert.True(t, view.ShowEditor)
	assert.True(t, view.ShowChat)
	assert.True(t, view.ShowPreview)
	assert.False(t, view.ShowTerminal)
	assert.NotContains(t, view.PaneOrder, types.PaneLegacy.String())

	// The legacy deploy surface maps onto preview.
	m.Toggle(types.PanePreview)
	assert.False(t, m.Legacy().ShowPreview)
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	m := NewManager()
	m.Toggle(types.PaneTerminal)
	m.SetWidth(types.PaneChat, 321)
	require.NoError(t, m.Reorder([]types.PaneID{
		types.PaneChat, types.PaneEditor, types.PaneTerminal,
		types.PanePreview, types.PaneDatabase, types.PaneDeploy,
	}))
	snap := m.Snapshot()

	restored := NewManager()
	restored.Restore(snap)
	assert.Equal(t, m.Order(), restored.Order())
	assert.Equal(t, 321, restored.Width(types.PaneChat))
	for _, id := range types.AllPanes() {
		assert.Equal(t, m.Visible(id), restored.Visible(id))
	}
}

func TestRestoreToleratesPartialSnapshot(t *testing.T) {
	m := NewManager()
	m.Restore(types.LayoutSnapshot{
		Order:   []types.PaneID{types.PaneChat, types.PaneID(42)},
		Visible: map[types.PaneID]bool{types.PaneChat: true},
	})

	order := m.Order()
	assert.Len(t, order, len(types.AllPanes()))
	assert.Equal(t, types.PaneChat, order[0])
	assert.True(t, m.Visible(types.PaneChat))
	assert.Equal(t, defaultWidth, m.Width(types.PaneEditor))
}
