package workspace

import (
	"sync"
	"time"

	"github.com/Light-Brands/local-ide-sub000/internal/layout"
	"github.com/Light-Brands/local-ide-sub000/internal/logging"
	"github.com/Light-Brands/local-ide-sub000/internal/mobile"
	"github.com/Light-Brands/local-ide-sub000/internal/monitoring"
	"github.com/Light-Brands/local-ide-sub000/internal/portal"
	"github.com/Light-Brands/local-ide-sub000/internal/ports"
	"github.com/Light-Brands/local-ide-sub000/internal/session"
	"github.com/Light-Brands/local-ide-sub000/internal/types"
)

// maxActivities bounds the in-memory activity log. The log is ephemeral and
// never persisted.
const maxActivities = 200

// Options configures a workspace manager.
type Options struct {
	Backend     session.Backend // may be nil
	HomePort    int
	MessageTail int
	QueryTail   int
	Logger      *logging.Logger
	Metrics     *monitoring.Metrics // may be nil
}

// Manager is the single ownership point over the whole workspace state tree.
// External callers never mutate fields directly; they request one of the
// named transitions below, each of which applies atomically and notifies
// subscribers.
type Manager struct {
	layout *layout.Manager
	portal *portal.Registry
	mobile *mobile.Surface
	chats  *session.ChatManager
	tabs   *session.TabManager
	ports  *ports.Registry

	mu             sync.RWMutex
	project        types.ProjectRef
	openFiles      []types.OpenFile
	fileTree       []types.FileNode
	activities     []types.Activity
	queryHistory   []types.QueryRecord
	deployTarget   string
	migrations     []string
	settings       types.Settings
	integrations   map[string]types.IntegrationStatus
	onboardingDone bool
	hydrated       bool

	subMu   sync.Mutex
	subs    map[int]func(Event)
	nextSub int

	messageTail int
	queryTail   int
	log         *logging.Logger
	metrics     *monitoring.Metrics
}

// NewManager creates a workspace in its default empty state. The default
// state is valid on its own; persisted values arrive later via Hydrate.
func NewManager(opts Options) *Manager {
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	if opts.HomePort <= 0 {
		opts.HomePort = 3000
	}
	if opts.MessageTail <= 0 {
		opts.MessageTail = 50
	}
	if opts.QueryTail <= 0 {
		opts.QueryTail = 25
	}

	return &Manager{
		layout:       layout.NewManager(),
		portal:       portal.NewRegistry(),
		mobile:       mobile.NewSurface(),
		chats:        session.NewChatManager(opts.Backend, opts.Logger),
		tabs:         session.NewTabManager(),
		ports:        ports.NewRegistry(opts.HomePort),
		settings:     types.DefaultSettings(),
		integrations: make(map[string]types.IntegrationStatus),
		subs:         make(map[int]func(Event)),
		messageTail:  opts.MessageTail,
		queryTail:    opts.QueryTail,
		log:          opts.Logger,
		metrics:      opts.Metrics,
	}
}

// --- pane layout transitions ---

// TogglePane flips a pane's visibility, honoring the visible cap.
func (m *Manager) TogglePane(id types.PaneID) bool {
	ok := m.layout.Toggle(id)
	if ok {
		m.record("pane_toggle")
	} else if m.metrics != nil && m.layout.CapReached() {
		m.metrics.CapRejections.Inc()
	}
	m.updateGauges()
	m.emit(EventLayout)
	return ok
}

// PaneCapReached reports whether the last rejected toggle hit the cap.
func (m *Manager) PaneCapReached() bool { return m.layout.CapReached() }

// ReorderPanes replaces the pane total order.
func (m *Manager) ReorderPanes(ids []types.PaneID) error {
	if err := m.layout.Reorder(ids); err != nil {
		return err
	}
	m.record("pane_reorder")
	m.emit(EventLayout)
	return nil
}

// SetPaneWidth stores a desktop resize hint.
func (m *Manager) SetPaneWidth(id types.PaneID, px int) {
	m.layout.SetWidth(id, px)
	m.emit(EventLayout)
}

// CollapsedEdges returns the leading and trailing collapsed rails.
func (m *Manager) CollapsedEdges() (leading, trailing []types.PaneID) {
	return m.layout.Edges()
}

// LegacyLayout derives the pre-rework layout shape.
func (m *Manager) LegacyLayout() types.LegacyPaneView { return m.layout.Legacy() }

// --- portal transitions ---

// RegisterContainer claims a pane for a physical container.
func (m *Manager) RegisterContainer(pane types.PaneID, containerID string) {
	m.portal.Register(pane, containerID)
	m.emit(EventLayout)
}

// UnregisterContainer releases a pane claim on unmount.
func (m *Manager) UnregisterContainer(pane types.PaneID, containerID string) {
	m.portal.Unregister(pane, containerID)
	m.emit(EventLayout)
}

// ResolvePane returns where a pane's content renders right now: its bound
// container, or the off-screen holder while hidden or unclaimed.
func (m *Manager) ResolvePane(pane types.PaneID) string {
	return m.portal.Resolve(pane, m.layout.Visible(pane))
}

// --- mobile transitions ---

// MobileState returns the current mobile surface state.
func (m *Manager) MobileState() types.MobileState { return m.mobile.State() }

// MobileSwipeVertical applies a vertical drag to the secondary zone.
func (m *Manager) MobileSwipeVertical(distance float64) {
	m.mobile.SwipeVertical(distance)
	m.record("mobile_sheet")
	m.emit(EventMobile)
}

// MobileSwipeHorizontal navigates between primary views.
func (m *Manager) MobileSwipeHorizontal(distance float64) {
	m.mobile.SwipeHorizontal(distance)
	m.record("mobile_view")
	m.emit(EventMobile)
}

// MobileDoubleTap toggles the secondary zone fullscreen/half.
func (m *Manager) MobileDoubleTap() {
	m.mobile.DoubleTap()
	m.emit(EventMobile)
}

// MobileStep raises or lowers the secondary zone one tier.
func (m *Manager) MobileStep(up bool) {
	if up {
		m.mobile.StepUp()
	} else {
		m.mobile.StepDown()
	}
	m.emit(EventMobile)
}

// MobileSetView jumps to a primary view.
func (m *Manager) MobileSetView(view types.PrimaryView) {
	m.mobile.SetView(view)
	m.emit(EventMobile)
}

// MobileFocusTab focuses a secondary-zone tab, clearing its unread count.
func (m *Manager) MobileFocusTab(tab types.SheetTab) {
	m.mobile.FocusTab(tab)
	m.emit(EventMobile)
}

// NotifyTerminalOutput records terminal activity for unread tracking.
func (m *Manager) NotifyTerminalOutput() {
	m.mobile.NotifyTab(types.TabTerminal)
	m.emit(EventMobile)
}

// --- chat transitions ---

// CreateChat starts a new chat session and makes it active.
func (m *Manager) CreateChat() types.ChatSession {
	s := m.chats.Create()
	m.record("chat_create")
	m.addActivity("chat", "created "+s.Name)
	m.updateGauges()
	m.emit(EventChats)
	return s
}

// DeleteChat removes a session locally and dispatches remote teardown.
func (m *Manager) DeleteChat(id string) bool {
	ok := m.chats.Delete(id)
	if ok {
		m.record("chat_delete")
		m.updateGauges()
		m.emit(EventChats)
	}
	return ok
}

// ActivateChat points the active-session pointer.
func (m *Manager) ActivateChat(id string) bool {
	ok := m.chats.Activate(id)
	if ok {
		m.emit(EventChats)
	}
	return ok
}

// AppendChatMessage adds to a session transcript. Assistant content counts
// toward the mobile chat tab's unread counter.
func (m *Manager) AppendChatMessage(id string, msg types.ChatMessage) bool {
	ok := m.chats.Append(id, msg)
	if ok {
		if msg.Role != "user" {
			m.mobile.NotifyTab(types.TabChat)
		}
		m.emit(EventChats)
	}
	return ok
}

// RenameChat sets a session display name.
func (m *Manager) RenameChat(id, name string) bool {
	ok := m.chats.Rename(id, name)
	if ok {
		m.emit(EventChats)
	}
	return ok
}

// AttachChatBackend records a backend-confirmed session id; idempotent.
func (m *Manager) AttachChatBackend(localID, backendID string) {
	m.chats.AttachBackend(localID, backendID)
	m.emit(EventChats)
}

// ReconcileChats applies a session backend listing.
func (m *Manager) ReconcileChats(remote []types.RemoteSession) {
	m.chats.Reconcile(remote)
	m.emit(EventChats)
}

// Chats returns all chat sessions; ActiveChatID the active pointer.
func (m *Manager) Chats() []types.ChatSession { return m.chats.List() }

// ActiveChatID returns the active chat session id, or "".
func (m *Manager) ActiveChatID() string { return m.chats.ActiveID() }

// --- terminal tab transitions ---

// OpenTab inserts a terminal tab at the given index.
func (m *Manager) OpenTab(backendID string, index int, name string) types.TerminalTab {
	tab := m.tabs.Open(backendID, index, name)
	m.record("tab_open")
	m.addActivity("terminal", "opened "+tab.Name)
	m.updateGauges()
	m.emit(EventTabs)
	return tab
}

// CloseTab removes a tab and releases any port it explicitly started.
func (m *Manager) CloseTab(id string) bool {
	for _, e := range m.ports.List() {
		if e.TabID != nil && *e.TabID == id {
			m.ports.ClearStarted(e.Port)
		}
	}
	ok := m.tabs.Close(id)
	if ok {
		m.record("tab_close")
		m.updateGauges()
		m.emit(EventTabs)
		m.emit(EventPorts)
	}
	return ok
}

// ActivateTab points the active-tab pointer.
func (m *Manager) ActivateTab(id string) bool {
	ok := m.tabs.Activate(id)
	if ok {
		m.emit(EventTabs)
	}
	return ok
}

// SetTabMeta records the workspace/branch a tab is attached to.
func (m *Manager) SetTabMeta(id, workspace, branch string) bool {
	ok := m.tabs.SetMeta(id, workspace, branch)
	if ok {
		m.emit(EventTabs)
	}
	return ok
}

// Tabs returns all terminal tabs in index order.
func (m *Manager) Tabs() []types.TerminalTab { return m.tabs.List() }

// ActiveTabID returns the active tab id, or "".
func (m *Manager) ActiveTabID() string { return m.tabs.ActiveID() }

// --- port transitions ---

// ReconcilePorts applies a complete scanner snapshot. Implements scan.Sink.
func (m *Manager) ReconcilePorts(listening []int) {
	m.ports.Reconcile(listening)
	m.updateGauges()
	m.emit(EventPorts)
}

// MarkPortStarted records an explicit start event from a terminal tab.
func (m *Manager) MarkPortStarted(port int, label string, tabID *string) {
	m.ports.MarkStarted(port, label, tabID)
	m.record("port_start")
	m.updateGauges()
	m.emit(EventPorts)
}

// ClearPortStarted removes an explicitly started port on its stop event.
func (m *Manager) ClearPortStarted(port int) {
	m.ports.ClearStarted(port)
	m.updateGauges()
	m.emit(EventPorts)
}

// SelectPort chooses the previewed port.
func (m *Manager) SelectPort(port int) bool {
	ok := m.ports.Select(port)
	if ok {
		m.emit(EventPorts)
	}
	return ok
}

// Ports returns all registry entries; SelectedPort the preview choice.
func (m *Manager) Ports() []types.PortEntry { return m.ports.List() }

// SelectedPort returns the previewed port, or 0.
func (m *Manager) SelectedPort() int { return m.ports.Selected() }

// --- files, activity, queries ---

// OpenEditorFile adds a file to the open set; re-opening is a no-op.
func (m *Manager) OpenEditorFile(path string) {
	m.mu.Lock()
	for _, f := range m.openFiles {
		if f.Path == path {
			m.mu.Unlock()
			return
		}
	}
	m.openFiles = append(m.openFiles, types.OpenFile{Path: path})
	m.mu.Unlock()
	m.emit(EventFiles)
}

// CloseEditorFile drops a file from the open set.
func (m *Manager) CloseEditorFile(path string) {
	m.mu.Lock()
	for i, f := range m.openFiles {
		if f.Path == path {
			m.openFiles = append(m.openFiles[:i], m.openFiles[i+1:]...)
			break
		}
	}
	m.mu.Unlock()
	m.emit(EventFiles)
}

// MarkFileDirty flags unsaved editor changes.
func (m *Manager) MarkFileDirty(path string, dirty bool) {
	m.mu.Lock()
	for i, f := range m.openFiles {
		if f.Path == path {
			m.openFiles[i].Dirty = dirty
			break
		}
	}
	m.mu.Unlock()
	m.emit(EventFiles)
}

// SetFileTree replaces the fetched file tree; a late fetch result simply
// overwrites an earlier one.
func (m *Manager) SetFileTree(tree []types.FileNode) {
	m.mu.Lock()
	m.fileTree = tree
	m.mu.Unlock()
	m.emit(EventFiles)
}

// RecordActivity appends to the bounded activity log.
func (m *Manager) RecordActivity(kind, detail string) {
	m.addActivity(kind, detail)
	m.emit(EventActivity)
}

func (m *Manager) addActivity(kind, detail string) {
	m.mu.Lock()
	m.activities = append(m.activities, types.Activity{Time: time.Now(), Kind: kind, Detail: detail})
	if len(m.activities) > maxActivities {
		m.activities = m.activities[len(m.activities)-maxActivities:]
	}
	m.mu.Unlock()
}

// RecordQuery appends to the database query history.
func (m *Manager) RecordQuery(query string) {
	m.mu.Lock()
	m.queryHistory = append(m.queryHistory, types.QueryRecord{Query: query, RanAt: time.Now()})
	m.mu.Unlock()
	m.emit(EventActivity)
}

// --- durable preferences ---

// UpdateSettings replaces user preferences.
func (m *Manager) UpdateSettings(s types.Settings) {
	m.mu.Lock()
	m.settings = s
	m.mu.Unlock()
	m.emit(EventSettings)
}

// Settings returns current user preferences.
func (m *Manager) Settings() types.Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings
}

// SetIntegrations applies a background status fetch result.
func (m *Manager) SetIntegrations(status map[string]types.IntegrationStatus) {
	m.mu.Lock()
	m.integrations = status
	m.mu.Unlock()
	m.emit(EventIntegrations)
}

// Integrations returns a copy of the integration connection records.
func (m *Manager) Integrations() map[string]types.IntegrationStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]types.IntegrationStatus, len(m.integrations))
	for k, v := range m.integrations {
		out[k] = v
	}
	return out
}

// SetOnboardingDone records onboarding completion.
func (m *Manager) SetOnboardingDone(done bool) {
	m.mu.Lock()
	m.onboardingDone = done
	m.mu.Unlock()
	m.emit(EventSettings)
}

// SelectDeployTarget records the chosen deployment target.
func (m *Manager) SelectDeployTarget(target string) {
	m.mu.Lock()
	m.deployTarget = target
	m.mu.Unlock()
	m.emit(EventActivity)
}

// RecordMigration appends a database migration result.
func (m *Manager) RecordMigration(result string) {
	m.mu.Lock()
	m.migrations = append(m.migrations, result)
	m.mu.Unlock()
	m.emit(EventActivity)
}

func (m *Manager) record(kind string) {
	if m.metrics != nil {
		m.metrics.RecordTransition(kind)
	}
}

func (m *Manager) updateGauges() {
	if m.metrics == nil {
		return
	}
	m.metrics.PanesVisible.Set(float64(m.layout.VisibleCount()))
	m.metrics.ChatSessions.Set(float64(len(m.chats.List())))
	m.metrics.TerminalTabs.Set(float64(len(m.tabs.List())))
	m.metrics.PortsDetected.Set(float64(len(m.ports.List())))
}
