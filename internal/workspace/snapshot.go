package workspace

import (
	"time"

	"github.com/Light-Brands/local-ide-sub000/internal/types"
)

// Snapshot produces the durable subset of state. Per-session transcripts are
// trimmed to the retained tail and query history likewise; full transcripts,
// file contents and activity history are recomputable and excluded.
func (m *Manager) Snapshot() *types.Snapshot {
	sessions := m.chats.List()
	for i := range sessions {
		if n := len(sessions[i].Messages); n > m.messageTail {
			tail := make([]types.ChatMessage, m.messageTail)
			copy(tail, sessions[i].Messages[n-m.messageTail:])
			sessions[i].Messages = tail
		}
	}

	m.mu.RLock()
	queries := m.queryHistory
	if n := len(queries); n > m.queryTail {
		queries = queries[n-m.queryTail:]
	}
	queries = append([]types.QueryRecord(nil), queries...)
	settings := m.settings
	integrations := make(map[string]types.IntegrationStatus, len(m.integrations))
	for k, v := range m.integrations {
		integrations[k] = v
	}
	onboarding := m.onboardingDone
	m.mu.RUnlock()

	return &types.Snapshot{
		Version:        types.SnapshotVersion,
		SavedAt:        time.Now(),
		Layout:         m.layout.Snapshot(),
		Mobile:         m.mobile.State(),
		Sessions:       sessions,
		ActiveSession:  m.chats.ActiveID(),
		Tabs:           m.tabs.List(),
		ActiveTab:      m.tabs.ActiveID(),
		QueryHistory:   queries,
		Settings:       settings,
		Integrations:   integrations,
		OnboardingDone: onboarding,
	}
}

// Hydrate applies a persisted snapshot. The default state stays in place for
// anything the document lacks; unknown or invalid values are sanitized by
// each sub-restore. A nil snapshot (fresh install) only marks hydration
// complete. Hydrate is expected once, shortly after startup, but arriving
// late is fine: it overwrites whatever transitions raced ahead of it,
// matching last-write-wins everywhere else.
func (m *Manager) Hydrate(snap *types.Snapshot) {
	if snap != nil {
		m.layout.Restore(snap.Layout)
		m.mobile.Restore(snap.Mobile)
		m.chats.Restore(snap.Sessions, snap.ActiveSession)
		m.tabs.Restore(snap.Tabs, snap.ActiveTab)

		m.mu.Lock()
		if len(snap.QueryHistory) > 0 {
			m.queryHistory = append([]types.QueryRecord(nil), snap.QueryHistory...)
		}
		if snap.Settings != (types.Settings{}) {
			m.settings = snap.Settings
		}
		if len(snap.Integrations) > 0 {
			m.integrations = make(map[string]types.IntegrationStatus, len(snap.Integrations))
			for k, v := range snap.Integrations {
				m.integrations[k] = v
			}
		}
		m.onboardingDone = snap.OnboardingDone
		m.mu.Unlock()

		if m.metrics != nil {
			m.metrics.SnapshotsRestored.Inc()
		}
	}

	m.mu.Lock()
	m.hydrated = true
	m.mu.Unlock()

	m.updateGauges()
	m.emit(EventHydrated)
}

// Hydrated reports whether startup hydration has completed. The default
// empty state is valid on its own before that.
func (m *Manager) Hydrated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hydrated
}
