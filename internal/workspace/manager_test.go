package workspace

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Light-Brands/local-ide-sub000/internal/types"
)

func newTestManager() *Manager {
	return NewManager(Options{HomePort: 3000, MessageTail: 3, QueryTail: 2})
}

func TestResetProjectStateKeepsDurablePreferences(t *testing.T) {
	m := newTestManager()

	settings := types.Settings{Theme: "light", EditorFontSize: 16, TerminalFontSize: 12, AutoSave: false, Keymap: "vim"}
	m.UpdateSettings(settings)
	m.SetIntegrations(map[string]types.IntegrationStatus{
		"github":   {Connected: true, Metadata: map[string]string{"login": "octocat"}},
		"database": {Connected: false},
	})

	settingsBefore, err := sonic.Marshal(m.Settings())
	require.NoError(t, err)
	integrationsBefore, err := sonic.Marshal(m.Integrations())
	require.NoError(t, err)

	m.CreateChat()
	m.OpenTab("", 0, "")
	m.MarkPortStarted(5173, "vite", nil)
	m.OpenEditorFile("main.go")
	m.RecordActivity("build", "ok")
	m.SelectDeployTarget("production")
	m.RecordMigration("0001 applied")

	m.ResetProjectState()

	assert.Empty(t, m.Chats())
	assert.Empty(t, m.Tabs())
	view := m.View()
	assert.Empty(t, view.OpenFiles)
	assert.Empty(t, view.Activities)
	assert.Empty(t, view.DeployTarget)
	assert.Empty(t, view.Migrations)

	// Home port survives; everything else in the registry is gone.
	ports := m.Ports()
	require.Len(t, ports, 1)
	assert.Equal(t, 3000, ports[0].Port)

	settingsAfter, err := sonic.Marshal(m.Settings())
	require.NoError(t, err)
	integrationsAfter, err := sonic.Marshal(m.Integrations())
	require.NoError(t, err)
	assert.Equal(t, settingsBefore, settingsAfter)
	assert.Equal(t, integrationsBefore, integrationsAfter)
}

func TestObserveProjectResetsOnlyOnChange(t *testing.T) {
	m := newTestManager()
	m.CreateChat()

	// First observation after startup never wipes.
	assert.False(t, m.ObserveProject("acme", "shop"))
	assert.Len(t, m.Chats(), 1)

	// Same project again: no wipe.
	assert.False(t, m.ObserveProject("acme", "shop"))
	assert.Len(t, m.Chats(), 1)

	// Different project: wipe.
	assert.True(t, m.ObserveProject("acme", "blog"))
	assert.Empty(t, m.Chats())

	// Losing the project identity (empty ref) is not a switch.
	m.CreateChat()
	assert.False(t, m.ObserveProject("", ""))
	assert.Len(t, m.Chats(), 1)
}

func TestSnapshotRoundTripTrimsTails(t *testing.T) {
	m := newTestManager()

	chat := m.CreateChat()
	for _, content := range []string{"one", "two", "three", "four", "five"} {
		m.AppendChatMessage(chat.ID, types.ChatMessage{Role: "user", Content: content})
	}
	m.OpenTab("backend-7", 2, "build")
	m.TogglePane(types.PaneTerminal)
	m.MobileSwipeVertical(80)
	m.RecordQuery("select 1")
	m.RecordQuery("select 2")
	m.RecordQuery("select 3")
	m.UpdateSettings(types.Settings{Theme: "light", EditorFontSize: 15, TerminalFontSize: 13, AutoSave: true})
	m.SetOnboardingDone(true)

	snap := m.Snapshot()
	assert.Equal(t, types.SnapshotVersion, snap.Version)
	require.Len(t, snap.Sessions, 1)
	require.Len(t, snap.Sessions[0].Messages, 3)
	assert.Equal(t, "three", snap.Sessions[0].Messages[0].Content)
	assert.Equal(t, "five", snap.Sessions[0].Messages[2].Content)
	require.Len(t, snap.QueryHistory, 2)
	assert.Equal(t, "select 2", snap.QueryHistory[0].Query)

	// Clear into a fresh manager and restore.
	restored := newTestManager()
	assert.False(t, restored.Hydrated())
	restored.Hydrate(snap)
	assert.True(t, restored.Hydrated())

	assert.Equal(t, m.LegacyLayout(), restored.LegacyLayout())
	assert.Equal(t, m.MobileState(), restored.MobileState())
	assert.Equal(t, snap.Settings, restored.Settings())
	assert.Equal(t, chat.ID, restored.ActiveChatID())

	chats := restored.Chats()
	require.Len(t, chats, 1)
	assert.Equal(t, chat.Name, chats[0].Name)
	assert.Len(t, chats[0].Messages, 3)

	tabs := restored.Tabs()
	require.Len(t, tabs, 1)
	assert.Equal(t, "build", tabs[0].Name)
	assert.Equal(t, 2, tabs[0].Index)
}

func TestHydrateNilMarksComplete(t *testing.T) {
	m := newTestManager()

	var kinds []EventKind
	cancel := m.Subscribe(func(ev Event) { kinds = append(kinds, ev.Kind) })
	defer cancel()

	m.Hydrate(nil)

	assert.True(t, m.Hydrated())
	assert.Contains(t, kinds, EventHydrated)
	// Default state still intact.
	assert.Empty(t, m.Chats())
	assert.Equal(t, types.DefaultSettings(), m.Settings())
}

func TestCloseTabReleasesStartedPort(t *testing.T) {
	m := newTestManager()

	tab := m.OpenTab("", 0, "")
	m.MarkPortStarted(5173, "dev server", &tab.ID)
	m.SelectPort(5173)

	require.True(t, m.CloseTab(tab.ID))

	for _, e := range m.Ports() {
		assert.NotEqual(t, 5173, e.Port)
	}
	// Selection falls back to home.
	assert.Equal(t, 3000, m.SelectedPort())
}

func TestAssistantMessagesCountUnreadOnMobile(t *testing.T) {
	m := newTestManager()
	chat := m.CreateChat()

	// Secondary zone starts on the terminal tab, so assistant content is
	// unread; the user's own message never counts.
	m.AppendChatMessage(chat.ID, types.ChatMessage{Role: "user", Content: "hi"})
	m.AppendChatMessage(chat.ID, types.ChatMessage{Role: "assistant", Content: "hello"})
	m.AppendChatMessage(chat.ID, types.ChatMessage{Role: "assistant", Content: "again"})

	assert.Equal(t, 2, m.MobileState().Unread[types.TabChat])

	m.MobileFocusTab(types.TabChat)
	assert.Zero(t, m.MobileState().Unread[types.TabChat])
}

func TestSubscribeCancelStopsDelivery(t *testing.T) {
	m := newTestManager()

	var count int
	cancel := m.Subscribe(func(Event) { count++ })

	m.TogglePane(types.PaneTerminal)
	seen := count
	assert.Positive(t, seen)

	cancel()
	m.TogglePane(types.PaneTerminal)
	assert.Equal(t, seen, count)
}

func TestViewReflectsTransitions(t *testing.T) {
	m := newTestManager()
	m.ObserveProject("acme", "shop")
	m.OpenEditorFile("main.go")
	m.MarkFileDirty("main.go", true)
	m.SetFileTree([]types.FileNode{{Path: "main.go"}})

	v := m.View()
	assert.Equal(t, "acme/shop", v.Project.String())
	require.Len(t, v.OpenFiles, 1)
	assert.True(t, v.OpenFiles[0].Dirty)
	require.Len(t, v.FileTree, 1)
	assert.Equal(t, 3000, v.SelectedPort)
	assert.False(t, v.Hydrated)
}
