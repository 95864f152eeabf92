package persist

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Light-Brands/local-ide-sub000/internal/types"
)

func TestLoadMissingFileIsFreshInstall(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "state.json"))
	snap, ok, err := s.Load()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, snap)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nested", "state.json"))

	in := &types.Snapshot{
		Version: types.SnapshotVersion,
		SavedAt: time.Now().UTC().Truncate(time.Second),
		Layout: types.LayoutSnapshot{
			Order:   types.AllPanes(),
			Visible: map[types.PaneID]bool{types.PaneEditor: true},
			Widths:  map[types.PaneID]int{types.PaneEditor: 640},
		},
		Mobile: types.MobileState{
			View:     types.ViewPreview,
			Sheet:    types.SheetHalf,
			SheetTab: types.TabChat,
			Unread:   map[types.SheetTab]int{types.TabTerminal: 2},
		},
		Sessions: []types.ChatSession{
			{ID: "s1", Name: "Chat 1", Messages: []types.ChatMessage{{Role: "user", Content: "hi"}}},
		},
		ActiveSession:  "s1",
		Settings:       types.DefaultSettings(),
		OnboardingDone: true,
	}
	require.NoError(t, s.Save(in))

	out, ok, err := s.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, in.Layout, out.Layout)
	assert.Equal(t, in.Mobile, out.Mobile)
	assert.Equal(t, in.Sessions[0].ID, out.Sessions[0].ID)
	assert.Equal(t, in.Settings, out.Settings)
	assert.True(t, out.OnboardingDone)
}

func TestLoadToleratesSchemaDrift(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	// Version 1 document: unknown field, missing sections.
	doc := `{"version":1,"layout":{"order":[1,0]},"retired_field":{"deep":true}}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	snap, ok, err := NewFileStore(path).Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, snap.Version)
	assert.Equal(t, []types.PaneID{types.PaneChat, types.PaneEditor}, snap.Layout.Order)
	assert.Empty(t, snap.Sessions)
	assert.False(t, snap.OnboardingDone)
}

func TestLoadCorruptDocumentReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, ok, err := NewFileStore(path).Load()
	assert.Error(t, err)
	assert.False(t, ok)
}
