package types

import "time"

// SnapshotVersion is the current schema version of the persisted document.
// Older documents decode with unknown fields ignored and missing fields
// zero-valued; there is no migration step.
const SnapshotVersion = 2

// Snapshot is the durable subset of workspace state. Full transcripts, file
// contents and activity history are recomputable and deliberately excluded.
type Snapshot struct {
	Version        int                          `json:"version"`
	SavedAt        time.Time                    `json:"saved_at"`
	Layout         LayoutSnapshot               `json:"layout"`
	Mobile         MobileState                  `json:"mobile"`
	Sessions       []ChatSession                `json:"sessions"`
	ActiveSession  string                       `json:"active_session,omitempty"`
	Tabs           []TerminalTab                `json:"tabs"`
	ActiveTab      string                       `json:"active_tab,omitempty"`
	QueryHistory   []QueryRecord                `json:"query_history,omitempty"`
	Settings       Settings                     `json:"settings"`
	Integrations   map[string]IntegrationStatus `json:"integrations,omitempty"`
	OnboardingDone bool                         `json:"onboarding_done"`
}
