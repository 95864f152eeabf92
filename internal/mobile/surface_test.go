package mobile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Light-Brands/local-ide-sub000/internal/types"
)

func TestSheetSteppingClampsAtEnds(t *testing.T) {
	s := NewSurface()
	assert.Equal(t, types.SheetCollapsed, s.State().Sheet)

	// Swipe down from collapsed stays collapsed.
	s.SwipeVertical(-120)
	assert.Equal(t, types.SheetCollapsed, s.State().Sheet)

	s.SwipeVertical(80)
	assert.Equal(t, types.SheetHalf, s.State().Sheet)
	s.SwipeVertical(80)
	assert.Equal(t, types.SheetExpanded, s.State().Sheet)
	s.SwipeVertical(80)
	assert.Equal(t, types.SheetFullscreen, s.State().Sheet)

	// Swipe up from fullscreen stays fullscreen.
	s.SwipeVertical(80)
	assert.Equal(t, types.SheetFullscreen, s.State().Sheet)
}

func TestSwipeBelowThresholdIgnored(t *testing.T) {
	s := NewSurface()
	s.SwipeVertical(SwipeThreshold - 1)
	assert.Equal(t, types.SheetCollapsed, s.State().Sheet)

	s.SwipeHorizontal(-(SwipeThreshold - 1))
	assert.Equal(t, types.ViewEditor, s.State().View)
}

func TestDoubleTapTogglesFullscreenHalf(t *testing.T) {
	s := NewSurface()

	// From any non-fullscreen tier it jumps straight to fullscreen.
	s.DoubleTap()
	assert.Equal(t, types.SheetFullscreen, s.State().Sheet)
	s.DoubleTap()
	assert.Equal(t, types.SheetHalf, s.State().Sheet)
	s.StepUp()
	s.DoubleTap()
	assert.Equal(t, types.SheetFullscreen, s.State().Sheet)
}

func TestPrimaryViewSwipeNavigation(t *testing.T) {
	s := NewSurface()

	// Leftward swipe advances; clamped at the last view.
	s.SwipeHorizontal(-80)
	assert.Equal(t, types.ViewPreview, s.State().View)
	s.SwipeHorizontal(-80)
	s.SwipeHorizontal(-80)
	assert.Equal(t, types.ViewDeploy, s.State().View)
	s.SwipeHorizontal(-80)
	assert.Equal(t, types.ViewDeploy, s.State().View)

	// Rightward swipe goes back; clamped at the first view.
	for i := 0; i < 5; i++ {
		s.SwipeHorizontal(80)
	}
	assert.Equal(t, types.ViewEditor, s.State().View)
}

func TestUnreadCounting(t *testing.T) {
	s := NewSurface()
	assert.Equal(t, types.TabTerminal, s.State().SheetTab)

	// Content for the non-focused tab accumulates.
	s.NotifyTab(types.TabChat)
	s.NotifyTab(types.TabChat)
	assert.Equal(t, 2, s.State().Unread[types.TabChat])

	// Content for the focused tab is already visible.
	s.NotifyTab(types.TabTerminal)
	assert.Equal(t, 0, s.State().Unread[types.TabTerminal])

	// Focusing a tab zeroes its counter.
	s.FocusTab(types.TabChat)
	assert.Equal(t, 0, s.State().Unread[types.TabChat])

	s.NotifyTab(types.TabTerminal)
	assert.Equal(t, 1, s.State().Unread[types.TabTerminal])
	s.FocusTab(types.TabTerminal)
	assert.Equal(t, 0, s.State().Unread[types.TabTerminal])
}

func TestRestoreSanitizes(t *testing.T) {
	s := NewSurface()
	s.Restore(types.MobileState{
		View:     types.PrimaryView("bogus"),
		Sheet:    types.SheetHalf,
		SheetTab: types.TabChat,
		Unread:   map[types.SheetTab]int{types.TabTerminal: 3, "bogus": 9},
	})

	state := s.State()
	assert.Equal(t, types.ViewEditor, state.View)
	assert.Equal(t, types.SheetHalf, state.Sheet)
	assert.Equal(t, types.TabChat, state.SheetTab)
	assert.Equal(t, 3, state.Unread[types.TabTerminal])
	assert.NotContains(t, state.Unread, types.SheetTab("bogus"))
}
