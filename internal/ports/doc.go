// Package ports tracks locally listening ports, reconciling periodic scan
// snapshots with explicit start/stop events from the terminal subsystem.
package ports
