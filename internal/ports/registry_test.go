package ports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Light-Brands/local-ide-sub000/internal/types"
)

const home = 3000

func TestReconcileDropsStaleScannedKeepsStarted(t *testing.T) {
	r := NewRegistry(home)
	r.MarkStarted(5173, "vite", nil)
	r.Reconcile([]int{8080})

	_, ok := r.Get(8080)
	require.True(t, ok)

	// Scan now only sees 5173: 8080 goes away, the started 5173 stays.
	r.Reconcile([]int{5173})

	_, ok = r.Get(8080)
	assert.False(t, ok)
	e, ok := r.Get(5173)
	require.True(t, ok)
	assert.Equal(t, types.PortStarted, e.Source)
}

func TestScanNeverOverwritesStarted(t *testing.T) {
	r := NewRegistry(home)
	tab := "tab-1"
	r.MarkStarted(4200, "ng serve", &tab)
	r.Reconcile([]int{4200})

	e, ok := r.Get(4200)
	require.True(t, ok)
	assert.Equal(t, types.PortStarted, e.Source)
	assert.Equal(t, "ng serve", e.Label)
	require.NotNil(t, e.TabID)
	assert.Equal(t, "tab-1", *e.TabID)
}

func TestHomePortSurvivesEveryScan(t *testing.T) {
	r := NewRegistry(home)
	r.Reconcile([]int{8080, 9000})
	r.Reconcile(nil)

	e, ok := r.Get(home)
	require.True(t, ok)
	assert.Equal(t, types.PortStatic, e.Source)
}

func TestReconcileDefaultsSelectionToHome(t *testing.T) {
	r := NewRegistry(home)
	assert.Zero(t, r.Selected())

	r.Reconcile([]int{8080})
	assert.Equal(t, home, r.Selected())

	// An existing selection is never overridden.
	require.True(t, r.Select(8080))
	r.Reconcile([]int{8080})
	assert.Equal(t, 8080, r.Selected())
}

func TestSelectRequiresKnownPort(t *testing.T) {
	r := NewRegistry(home)
	assert.False(t, r.Select(9999))
	assert.True(t, r.Select(home))
}

func TestClearStartedFallsBackToScan(t *testing.T) {
	r := NewRegistry(home)
	r.MarkStarted(8080, "api", nil)
	require.True(t, r.Select(8080))

	r.ClearStarted(8080)
	_, ok := r.Get(8080)
	assert.False(t, ok)
	assert.Equal(t, home, r.Selected())

	// Scanner still sees it: it comes back as a plain scanned entry.
	r.Reconcile([]int{8080})
	e, ok := r.Get(8080)
	require.True(t, ok)
	assert.Equal(t, types.PortScanned, e.Source)
}

func TestListSortedByPort(t *testing.T) {
	r := NewRegistry(home)
	r.Reconcile([]int{9000, 8080})

	list := r.List()
	require.Len(t, list, 3)
	assert.Equal(t, []int{home, 8080, 9000}, []int{list[0].Port, list[1].Port, list[2].Port})
}

func TestResetKeepsHome(t *testing.T) {
	r := NewRegistry(home)
	r.MarkStarted(8080, "api", nil)
	r.Reconcile([]int{9000})
	r.Reset()

	list := r.List()
	require.Len(t, list, 1)
	assert.Equal(t, home, list[0].Port)
	assert.Zero(t, r.Selected())
}
