package types

// PaneID identifies one of the fixed workspace surfaces.
type PaneID int

const (
	PaneEditor PaneID = iota
	PaneChat
	PaneTerminal
	PanePreview
	PaneDatabase
	PaneDeploy
)

// PaneLegacy is kept in the id space so old layouts keep decoding, but its
// surface was folded into the preview pane and it never joins the visible
// rotation or the collapsed rails.
const PaneLegacy = PaneDeploy

// AllPanes returns every known pane id in declaration order.
func AllPanes() []PaneID {
	return []PaneID{PaneEditor, PaneChat, PaneTerminal, PanePreview, PaneDatabase, PaneDeploy}
}

// Valid reports whether id belongs to the closed pane set.
func (id PaneID) Valid() bool {
	return id >= PaneEditor && id <= PaneDeploy
}

func (id PaneID) String() string {
	switch id {
	case PaneEditor:
		return "editor"
	case PaneChat:
		return "chat"
	case PaneTerminal:
		return "terminal"
	case PanePreview:
		return "preview"
	case PaneDatabase:
		return "database"
	case PaneDeploy:
		return "deploy"
	default:
		return "unknown"
	}
}

// ParsePane resolves a pane name to its id.
func ParsePane(name string) (PaneID, bool) {
	for _, id := range AllPanes() {
		if id.String() == name {
			return id, true
		}
	}
	return 0, false
}

// LayoutSnapshot is the persisted form of the pane layout.
type LayoutSnapshot struct {
	Order   []PaneID        `json:"order"`
	Visible map[PaneID]bool `json:"visible"`
	Widths  map[PaneID]int  `json:"widths,omitempty"`
}

// LegacyPaneView is the pre-rework layout shape some consumers still read.
// It is derived from canonical state on demand and never stored.
type LegacyPaneView struct {
	ShowEditor   bool     `json:"show_editor"`
	ShowChat     bool     `json:"show_chat"`
	ShowTerminal bool     `json:"show_terminal"`
	ShowPreview  bool     `json:"show_preview"`
	ShowDatabase bool     `json:"show_database"`
	PaneOrder    []string `json:"pane_order"`
}
