package portal

import (
	"sync"

	"github.com/Light-Brands/local-ide-sub000/internal/types"
)

// Offscreen is the holder a pane's content renders into when no visible
// container claims it. Content parked there stays mounted and alive.
const Offscreen = "offscreen"

// Registry maps pane ids to the physical container currently claiming them.
// Bindings are weak: containers register on mount and unregister on unmount,
// and an absent binding is the normal hidden state, not an error.
type Registry struct {
	mu       sync.RWMutex
	bindings map[types.PaneID]string
}

// NewRegistry creates an empty binding registry.
func NewRegistry() *Registry {
	return &Registry{bindings: make(map[types.PaneID]string)}
}

// Register claims a pane for a container. A second registration for the same
// pane wins over the first; that is a caller bug, not a runtime fault, and is
// not otherwise guarded.
func (r *Registry) Register(pane types.PaneID, containerID string) {
	if !pane.Valid() || containerID == "" {
		return
	}
	r.mu.Lock()
	r.bindings[pane] = containerID
	r.mu.Unlock()
}

// Unregister drops a binding, but only if containerID is still the holder.
// A stale unmount arriving after a newer container registered must not evict
// the newer binding.
func (r *Registry) Unregister(pane types.PaneID, containerID string) {
	r.mu.Lock()
	if r.bindings[pane] == containerID {
		delete(r.bindings, pane)
	}
	r.mu.Unlock()
}

// Resolve returns the container a pane's content should render into. Content
// is always instantiated; with no registered container, or while the pane is
// hidden, it goes to the off-screen holder so live subsystems survive layout
// changes.
func (r *Registry) Resolve(pane types.PaneID, visible bool) string {
	r.mu.RLock()
	container, ok := r.bindings[pane]
	r.mu.RUnlock()

	if !ok || !visible {
		return Offscreen
	}
	return container
}

// Bound reports the current holder of a pane, if any.
func (r *Registry) Bound(pane types.PaneID) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	container, ok := r.bindings[pane]
	return container, ok
}

// Reset drops every binding. Containers re-register as they remount.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.bindings = make(map[types.PaneID]string)
	r.mu.Unlock()
}
