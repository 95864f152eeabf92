package types

import "time"

// PortSource records how a listening port entered the registry.
type PortSource string

const (
	// PortStarted entries come from explicit start events out of the
	// terminal subsystem and always win over scan results.
	PortStarted PortSource = "started"
	// PortScanned entries come from the periodic scanner and are removed
	// when a later scan no longer sees them.
	PortScanned PortSource = "scanned"
	// PortStatic marks the home port, which is always present.
	PortStatic PortSource = "static"
)

// PortEntry describes one locally listening port.
type PortEntry struct {
	Port       int        `json:"port"`
	DetectedAt time.Time  `json:"detected_at"`
	Source     PortSource `json:"source"`
	Label      string     `json:"label,omitempty"`
	TabID      *string    `json:"tab_id,omitempty"`
}
