package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Light-Brands/local-ide-sub000/internal/types"
)

func TestOpenKeepsIndexOrder(t *testing.T) {
	m := NewTabManager()
	m.Open("be-2", 2, "")
	m.Open("be-0", 0, "")
	m.Open("be-1", 1, "")

	tabs := m.List()
	require.Len(t, tabs, 3)
	assert.Equal(t, []string{"be-0", "be-1", "be-2"}, []string{
		tabs[0].BackendID, tabs[1].BackendID, tabs[2].BackendID,
	})
}

func TestOpenAutoNames(t *testing.T) {
	m := NewTabManager()
	assert.Equal(t, "Terminal 1", m.Open("a", 0, "").Name)
	assert.Equal(t, "Terminal 2", m.Open("b", 1, "").Name)
	assert.Equal(t, "build", m.Open("c", 2, "build").Name)
	assert.Equal(t, "Terminal 3", m.Open("d", 3, "").Name)
}

func TestCloseActiveReassigns(t *testing.T) {
	m := NewTabManager()
	first := m.Open("a", 0, "")
	second := m.Open("b", 1, "")
	require.Equal(t, second.ID, m.ActiveID())

	require.True(t, m.Close(second.ID))
	assert.Equal(t, first.ID, m.ActiveID())

	require.True(t, m.Close(first.ID))
	assert.Empty(t, m.ActiveID())
	_, ok := m.Active()
	assert.False(t, ok)
}

func TestSetMeta(t *testing.T) {
	m := NewTabManager()
	tab := m.Open("a", 0, "")
	require.True(t, m.SetMeta(tab.ID, "feature-ws", "feat/ports"))
	assert.False(t, m.SetMeta("missing", "x", "y"))

	got := m.List()[0]
	assert.Equal(t, "feature-ws", got.Workspace)
	assert.Equal(t, "feat/ports", got.Branch)
}

func TestTabRestoreSortsAndResolvesActive(t *testing.T) {
	m := NewTabManager()
	m.Restore([]types.TerminalTab{
		{ID: "t2", BackendID: "b2", Name: "Terminal 2", Index: 5},
		{ID: "t1", BackendID: "b1", Name: "Terminal 1", Index: 1},
	}, "t2")

	tabs := m.List()
	assert.Equal(t, "t1", tabs[0].ID)
	assert.Equal(t, "t2", m.ActiveID())

	m.Restore([]types.TerminalTab{{ID: "t1", Index: 0}}, "gone")
	assert.Equal(t, "t1", m.ActiveID())
}
