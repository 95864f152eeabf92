package types

import "time"

// ProjectRef identifies the repository a workspace is bound to.
type ProjectRef struct {
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
}

// Empty reports whether no project is bound.
func (p ProjectRef) Empty() bool {
	return p.Owner == "" && p.Repo == ""
}

func (p ProjectRef) String() string {
	if p.Empty() {
		return ""
	}
	return p.Owner + "/" + p.Repo
}

// OpenFile is a file open in the editor. Contents are never persisted.
type OpenFile struct {
	Path  string `json:"path"`
	Dirty bool   `json:"dirty"`
}

// FileNode is one entry of the fetched file tree.
type FileNode struct {
	Path     string     `json:"path"`
	Dir      bool       `json:"dir"`
	Children []FileNode `json:"children,omitempty"`
}

// Activity is one entry of the workspace activity log.
type Activity struct {
	Time   time.Time `json:"time"`
	Kind   string    `json:"kind"`
	Detail string    `json:"detail,omitempty"`
}

// QueryRecord is one entry of the database query history.
type QueryRecord struct {
	Query string    `json:"query"`
	RanAt time.Time `json:"ran_at"`
}

// IntegrationStatus is the connection state of one external service.
type IntegrationStatus struct {
	Connected bool              `json:"connected"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// Settings are durable user preferences. They survive project switches.
type Settings struct {
	Theme            string `json:"theme"`
	EditorFontSize   int    `json:"editor_font_size"`
	TerminalFontSize int    `json:"terminal_font_size"`
	AutoSave         bool   `json:"auto_save"`
	Keymap           string `json:"keymap,omitempty"`
}

// DefaultSettings returns the out-of-box preferences.
func DefaultSettings() Settings {
	return Settings{
		Theme:            "dark",
		EditorFontSize:   14,
		TerminalFontSize: 13,
		AutoSave:         true,
	}
}
