package portal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Light-Brands/local-ide-sub000/internal/types"
)

func TestResolveUnboundIsOffscreen(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, Offscreen, r.Resolve(types.PaneChat, true))
	assert.Equal(t, Offscreen, r.Resolve(types.PaneChat, false))
}

func TestResolveBoundRespectsVisibility(t *testing.T) {
	r := NewRegistry()
	r.Register(types.PaneTerminal, "dock-main")

	assert.Equal(t, "dock-main", r.Resolve(types.PaneTerminal, true))
	// Hidden pane stays mounted but renders off screen.
	assert.Equal(t, Offscreen, r.Resolve(types.PaneTerminal, false))
}

func TestRegisterLastWins(t *testing.T) {
	r := NewRegistry()
	r.Register(types.PaneChat, "sidebar")
	r.Register(types.PaneChat, "sheet")
	assert.Equal(t, "sheet", r.Resolve(types.PaneChat, true))
}

func TestUnregisterOnlyEvictsHolder(t *testing.T) {
	r := NewRegistry()
	r.Register(types.PaneChat, "sidebar")
	r.Register(types.PaneChat, "sheet")

	// Stale unmount from the replaced container must not evict the new one.
	r.Unregister(types.PaneChat, "sidebar")
	assert.Equal(t, "sheet", r.Resolve(types.PaneChat, true))

	r.Unregister(types.PaneChat, "sheet")
	assert.Equal(t, Offscreen, r.Resolve(types.PaneChat, true))
}

func TestReset(t *testing.T) {
	r := NewRegistry()
	r.Register(types.PaneEditor, "main")
	r.Reset()
	_, ok := r.Bound(types.PaneEditor)
	assert.False(t, ok)
}
