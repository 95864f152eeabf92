// Package portal routes pane content to whichever physical container
// currently claims it, keeping unclaimed content mounted off screen so
// expensive subsystems survive layout changes.
package portal
