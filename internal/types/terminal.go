package types

// TerminalTab is a terminal surface tab. Index gives deterministic ordering
// independent of insertion order.
type TerminalTab struct {
	ID        string  `json:"id"`
	BackendID string  `json:"backend_id"`
	Name      string  `json:"name"`
	Index     int     `json:"index"`
	Workspace string  `json:"workspace,omitempty"`
	Branch    string  `json:"branch,omitempty"`
	OwnedPort *int    `json:"owned_port,omitempty"`
}
