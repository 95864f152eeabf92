package workspace

import "github.com/Light-Brands/local-ide-sub000/internal/types"

// StateView is the full read model served to rendering clients.
type StateView struct {
	Layout       types.LayoutSnapshot               `json:"layout"`
	CapReached   bool                               `json:"cap_reached"`
	EdgesLeading []types.PaneID                     `json:"edges_leading"`
	EdgesTrail   []types.PaneID                     `json:"edges_trailing"`
	Mobile       types.MobileState                  `json:"mobile"`
	Sessions     []types.ChatSession                `json:"sessions"`
	ActiveChat   string                             `json:"active_chat,omitempty"`
	Tabs         []types.TerminalTab                `json:"tabs"`
	ActiveTab    string                             `json:"active_tab,omitempty"`
	Ports        []types.PortEntry                  `json:"ports"`
	SelectedPort int                                `json:"selected_port"`
	Project      types.ProjectRef                   `json:"project"`
	OpenFiles    []types.OpenFile                   `json:"open_files"`
	FileTree     []types.FileNode                   `json:"file_tree,omitempty"`
	Activities   []types.Activity                   `json:"activities,omitempty"`
	QueryHistory []types.QueryRecord                `json:"query_history,omitempty"`
	DeployTarget string                             `json:"deploy_target,omitempty"`
	Migrations   []string                           `json:"migrations,omitempty"`
	Settings     types.Settings                     `json:"settings"`
	Integrations map[string]types.IntegrationStatus `json:"integrations"`
	Onboarding   bool                               `json:"onboarding_done"`
	Hydrated     bool                               `json:"hydrated"`
}

// View assembles the current read model. Each section is read under its own
// lock; a view taken mid-burst is a valid state from some interleaving.
func (m *Manager) View() StateView {
	leading, trailing := m.layout.Edges()

	m.mu.RLock()
	v := StateView{
		Project:      m.project,
		OpenFiles:    append([]types.OpenFile(nil), m.openFiles...),
		FileTree:     m.fileTree,
		Activities:   append([]types.Activity(nil), m.activities...),
		QueryHistory: append([]types.QueryRecord(nil), m.queryHistory...),
		DeployTarget: m.deployTarget,
		Migrations:   append([]string(nil), m.migrations...),
		Settings:     m.settings,
		Onboarding:   m.onboardingDone,
		Hydrated:     m.hydrated,
	}
	v.Integrations = make(map[string]types.IntegrationStatus, len(m.integrations))
	for k, s := range m.integrations {
		v.Integrations[k] = s
	}
	m.mu.RUnlock()

	v.Layout = m.layout.Snapshot()
	v.CapReached = m.layout.CapReached()
	v.EdgesLeading = leading
	v.EdgesTrail = trailing
	v.Mobile = m.mobile.State()
	v.Sessions = m.chats.List()
	v.ActiveChat = m.chats.ActiveID()
	v.Tabs = m.tabs.List()
	v.ActiveTab = m.tabs.ActiveID()
	v.Ports = m.ports.List()
	v.SelectedPort = m.ports.Selected()
	return v
}
