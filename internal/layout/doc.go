// Package layout manages visibility, ordering and sizing for the fixed set
// of workspace panes, enforcing the maximum concurrently-visible count.
package layout
