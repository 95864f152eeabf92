package workspace

import (
	"go.uber.org/zap"

	"github.com/Light-Brands/local-ide-sub000/internal/types"
)

// Project returns the currently observed project reference.
func (m *Manager) Project() types.ProjectRef {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.project
}

// ObserveProject records the project the workspace is bound to. When both
// the previous and new references are non-empty and differ, all ephemeral
// project state is wiped first. The first observation after startup never
// wipes; restored state belongs to whichever project the client reopens.
// Returns true when a wipe happened.
func (m *Manager) ObserveProject(owner, repo string) bool {
	next := types.ProjectRef{Owner: owner, Repo: repo}

	m.mu.Lock()
	prev := m.project
	m.project = next
	m.mu.Unlock()

	wiped := false
	if !prev.Empty() && !next.Empty() && prev != next {
		m.log.Info("project changed, wiping ephemeral state",
			zap.String("from", prev.String()),
			zap.String("to", next.String()))
		m.ResetProjectState()
		wiped = true
	}
	m.emit(EventProject)
	return wiped
}

// ResetProjectState wipes everything scoped to a single project: chat
// sessions, terminal tabs, discovered ports, open files, the file tree,
// the activity log, the deployment selection and migration results.
// Settings, integrations and onboarding completion are untouched.
func (m *Manager) ResetProjectState() {
	m.chats.Reset()
	m.tabs.Reset()
	m.ports.Reset()
	m.mobile.Reset()
	m.portal.Reset()

	m.mu.Lock()
	m.openFiles = nil
	m.fileTree = nil
	m.activities = nil
	m.deployTarget = ""
	m.migrations = nil
	m.mu.Unlock()

	if m.metrics != nil {
		m.metrics.ProjectResets.Inc()
	}
	m.updateGauges()
	m.emit(EventProject)
}
