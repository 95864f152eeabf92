package types

// SheetHeight is the height tier of the mobile secondary zone.
type SheetHeight string

const (
	SheetCollapsed  SheetHeight = "collapsed"
	SheetHalf       SheetHeight = "half"
	SheetExpanded   SheetHeight = "expanded"
	SheetFullscreen SheetHeight = "fullscreen"
)

// PrimaryView is the single surface shown on mobile.
type PrimaryView string

const (
	ViewEditor   PrimaryView = "editor"
	ViewPreview  PrimaryView = "preview"
	ViewDatabase PrimaryView = "database"
	ViewDeploy   PrimaryView = "deploy"
)

// SheetTab is one of the two tabs hosted by the secondary zone.
type SheetTab string

const (
	TabTerminal SheetTab = "terminal"
	TabChat     SheetTab = "chat"
)

// MobileState is the complete mobile surface state.
type MobileState struct {
	View     PrimaryView      `json:"view"`
	Sheet    SheetHeight      `json:"sheet"`
	SheetTab SheetTab         `json:"sheet_tab"`
	Unread   map[SheetTab]int `json:"unread"`
}
