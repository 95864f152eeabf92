package mobile

import (
	"sync"

	"github.com/Light-Brands/local-ide-sub000/internal/types"
)

// SwipeThreshold is the drag distance, in pixels, a gesture must cover
// before it acts. Shorter drags are treated as taps by the renderer and
// ignored here.
const SwipeThreshold = 50.0

var sheetOrder = []types.SheetHeight{
	types.SheetCollapsed,
	types.SheetHalf,
	types.SheetExpanded,
	types.SheetFullscreen,
}

var viewOrder = []types.PrimaryView{
	types.ViewEditor,
	types.ViewPreview,
	types.ViewDatabase,
	types.ViewDeploy,
}

// Surface is the single-active-pane mobile state machine: one primary view
// plus a collapsible secondary zone hosting the terminal and chat tabs.
type Surface struct {
	mu    sync.Mutex
	state types.MobileState
}

// NewSurface starts on the editor with the secondary zone collapsed.
func NewSurface() *Surface {
	return &Surface{state: types.MobileState{
		View:     types.ViewEditor,
		Sheet:    types.SheetCollapsed,
		SheetTab: types.TabTerminal,
		Unread:   map[types.SheetTab]int{},
	}}
}

// State returns a copy of the current mobile state.
func (s *Surface) State() types.MobileState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLocked()
}

func (s *Surface) copyLocked() types.MobileState {
	out := s.state
	out.Unread = make(map[types.SheetTab]int, len(s.state.Unread))
	for tab, n := range s.state.Unread {
		out.Unread[tab] = n
	}
	return out
}

// StepUp raises the secondary zone one height tier, clamped at fullscreen.
func (s *Surface) StepUp() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := sheetIndex(s.state.Sheet); i < len(sheetOrder)-1 {
		s.state.Sheet = sheetOrder[i+1]
	}
}

// StepDown lowers the secondary zone one height tier, clamped at collapsed.
func (s *Surface) StepDown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := sheetIndex(s.state.Sheet); i > 0 {
		s.state.Sheet = sheetOrder[i-1]
	}
}

// DoubleTap toggles the secondary zone between fullscreen and half,
// bypassing the intermediate tiers.
func (s *Surface) DoubleTap() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Sheet == types.SheetFullscreen {
		s.state.Sheet = types.SheetHalf
	} else {
		s.state.Sheet = types.SheetFullscreen
	}
}

// SwipeVertical applies a vertical drag: positive distance is upward.
// Drags below the threshold do nothing.
func (s *Surface) SwipeVertical(distance float64) {
	switch {
	case distance >= SwipeThreshold:
		s.StepUp()
	case distance <= -SwipeThreshold:
		s.StepDown()
	}
}

// SwipeHorizontal moves to the adjacent primary view: positive distance is a
// rightward drag, which navigates to the previous view. Clamped at both ends.
func (s *Surface) SwipeHorizontal(distance float64) {
	var step int
	switch {
	case distance >= SwipeThreshold:
		step = -1
	case distance <= -SwipeThreshold:
		step = 1
	default:
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := viewIndex(s.state.View) + step
	if i >= 0 && i < len(viewOrder) {
		s.state.View = viewOrder[i]
	}
}

// SetView jumps directly to a primary view.
func (s *Surface) SetView(view types.PrimaryView) {
	if viewIndex(view) < 0 {
		return
	}
	s.mu.Lock()
	s.state.View = view
	s.mu.Unlock()
}

// FocusTab brings a secondary-zone tab into focus and zeroes its unread
// counter.
func (s *Surface) FocusTab(tab types.SheetTab) {
	if tab != types.TabTerminal && tab != types.TabChat {
		return
	}
	s.mu.Lock()
	s.state.SheetTab = tab
	s.state.Unread[tab] = 0
	s.mu.Unlock()
}

// NotifyTab records new content arriving for a tab. Content for the focused
// tab is visible already and does not count.
func (s *Surface) NotifyTab(tab types.SheetTab) {
	if tab != types.TabTerminal && tab != types.TabChat {
		return
	}
	s.mu.Lock()
	if s.state.SheetTab != tab {
		s.state.Unread[tab]++
	}
	s.mu.Unlock()
}

// Restore applies a persisted mobile state, falling back to defaults for
// values outside the known enumerations.
func (s *Surface) Restore(state types.MobileState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if viewIndex(state.View) >= 0 {
		s.state.View = state.View
	}
	if sheetIndex(state.Sheet) >= 0 {
		s.state.Sheet = state.Sheet
	}
	if state.SheetTab == types.TabTerminal || state.SheetTab == types.TabChat {
		s.state.SheetTab = state.SheetTab
	}
	s.state.Unread = map[types.SheetTab]int{}
	for tab, n := range state.Unread {
		if (tab == types.TabTerminal || tab == types.TabChat) && n > 0 {
			s.state.Unread[tab] = n
		}
	}
}

// Reset returns the surface to its startup state.
func (s *Surface) Reset() {
	s.mu.Lock()
	s.state = types.MobileState{
		View:     types.ViewEditor,
		Sheet:    types.SheetCollapsed,
		SheetTab: types.TabTerminal,
		Unread:   map[types.SheetTab]int{},
	}
	s.mu.Unlock()
}

func sheetIndex(h types.SheetHeight) int {
	for i, tier := range sheetOrder {
		if tier == h {
			return i
		}
	}
	return -1
}

func viewIndex(v types.PrimaryView) int {
	for i, view := range viewOrder {
		if view == v {
			return i
		}
	}
	return -1
}
