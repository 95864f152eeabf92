package ports

import (
	"sort"
	"sync"
	"time"

	"github.com/Light-Brands/local-ide-sub000/internal/types"
)

// Registry merges explicit start/stop events and periodic scan snapshots
// into one authoritative map of listening ports. Explicitly started entries
// always win over scan results for the same port; the home port is always
// present regardless of what the scanner reports.
type Registry struct {
	mu       sync.RWMutex
	entries  map[int]types.PortEntry
	home     int
	selected int
	now      func() time.Time
}

// NewRegistry creates a registry seeded with the home port.
func NewRegistry(home int) *Registry {
	r := &Registry{
		entries: make(map[int]types.PortEntry),
		home:    home,
		now:     time.Now,
	}
	r.entries[home] = r.homeEntry()
	return r
}

func (r *Registry) homeEntry() types.PortEntry {
	return types.PortEntry{
		Port:       r.home,
		DetectedAt: r.now(),
		Source:     types.PortStatic,
		Label:      "workspace",
	}
}

// Reconcile applies a complete scan snapshot. Scan-sourced entries missing
// from the snapshot are dropped (never the home port), new ports are added
// as scanned, and started entries are left untouched. If nothing is selected
// for preview yet, selection defaults to the home port.
func (r *Registry) Reconcile(listening []int) {
	seen := make(map[int]bool, len(listening))
	for _, p := range listening {
		seen[p] = true
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for port, e := range r.entries {
		if e.Source == types.PortScanned && !seen[port] && port != r.home {
			delete(r.entries, port)
		}
	}
	for port := range seen {
		if _, ok := r.entries[port]; !ok {
			r.entries[port] = types.PortEntry{
				Port:       port,
				DetectedAt: r.now(),
				Source:     types.PortScanned,
			}
		}
	}
	if r.selected == 0 {
		r.selected = r.home
	}
}

// MarkStarted records an explicit start event from the terminal subsystem,
// taking over any scan-sourced entry for the port. The home port keeps its
// static source.
func (r *Registry) MarkStarted(port int, label string, tabID *string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if port == r.home {
		return
	}
	r.entries[port] = types.PortEntry{
		Port:       port,
		DetectedAt: r.now(),
		Source:     types.PortStarted,
		Label:      label,
		TabID:      tabID,
	}
}

// ClearStarted removes an explicitly started entry on its stop event. If the
// scanner still sees the port, the next reconcile re-adds it as scanned.
func (r *Registry) ClearStarted(port int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[port]; ok && e.Source == types.PortStarted {
		delete(r.entries, port)
		if r.selected == port {
			r.selected = r.home
		}
	}
}

// Select chooses the port previewed by the workspace.
func (r *Registry) Select(port int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[port]; !ok {
		return false
	}
	r.selected = port
	return true
}

// Selected returns the previewed port, or 0 when none is chosen yet.
func (r *Registry) Selected() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.selected
}

// Get returns the entry for a port.
func (r *Registry) Get(port int) (types.PortEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[port]
	return e, ok
}

// List returns all entries sorted by port number.
func (r *Registry) List() []types.PortEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]types.PortEntry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Port < out[j].Port })
	return out
}

// Reset drops everything except the home port and clears the selection.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.entries = map[int]types.PortEntry{r.home: r.homeEntry()}
	r.selected = 0
	r.mu.Unlock()
}
