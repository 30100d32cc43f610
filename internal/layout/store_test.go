package layout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSpec = FoundationSpec{Diameter: 10.0, WallThickness: 0.8}

func TestNewStore_EmptyCurrentLayout(t *testing.T) {
	s := NewStore(testSpec)
	l := s.Current()

	assert.Equal(t, "Layout 1", l.Name)
	assert.Empty(t, l.Tendons)
	assert.Empty(t, l.GroutConnections)
	assert.Empty(t, l.AccessShafts)
	assert.Equal(t, testSpec, l.Foundation)
}

func TestStore_AddAssignsSequentialIDs(t *testing.T) {
	s := NewStore(testSpec)

	t0 := s.AddTendon(1, 0, 150)
	t1 := s.AddTendon(0, 1, 200)
	g0 := s.AddGroutConnection(0, 2, 400)
	a0 := s.AddAccessShaft(0, -3, 1.2)

	assert.Equal(t, 0, t0.ID)
	assert.Equal(t, 1, t1.ID)
	assert.Equal(t, 0, g0.ID, "each variant collection numbers independently")
	assert.Equal(t, 0, a0.ID)
	assert.Equal(t, PlacementManual, t0.Placement)
}

func TestStore_GeneratePatternReplacesTendons(t *testing.T) {
	s := NewStore(testSpec)
	s.AddTendon(0, 0, 150)
	s.AddTendon(1, 1, 150)

	s.GeneratePattern(8, 4.0, 150)

	l := s.Current()
	require.Len(t, l.Tendons, 8, "pattern replaces, never appends")
	for k, tendon := range l.Tendons {
		assert.Equal(t, k, tendon.ID, "IDs reassigned 0..count-1 on rebuild")
	}
}

func TestStore_ManualAddAfterPatternContinuesNumbering(t *testing.T) {
	s := NewStore(testSpec)
	s.GeneratePattern(6, 3.0, 150)

	manual := s.AddTendon(0, 0, 150)
	assert.Equal(t, 6, manual.ID)
}

func TestStore_ClearAll(t *testing.T) {
	s := NewStore(testSpec)
	s.GeneratePattern(8, 4.0, 150)
	s.AddGroutConnection(0, 2, 400)
	s.AddAccessShaft(0, -3, 1.2)

	s.ClearAll()

	l := s.Current()
	assert.Empty(t, l.Tendons)
	assert.Empty(t, l.GroutConnections)
	assert.Empty(t, l.AccessShafts)
	assert.Equal(t, testSpec, l.Foundation, "foundation spec survives a clear")

	next := s.AddTendon(0, 0, 150)
	assert.Equal(t, 0, next.ID, "numbering restarts after a clear")
}

func TestStore_SaveIsDeepCopy(t *testing.T) {
	s := NewStore(testSpec)
	s.GeneratePattern(4, 3.0, 150)

	savedAt := time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC)
	snap := s.Save("Ring 4", savedAt)

	assert.Equal(t, "Ring 4", snap.Name)
	assert.Equal(t, savedAt, snap.SavedAt)
	assert.Equal(t, testSpec, snap.Foundation, "snapshot carries the foundation spec")

	// Mutating the session afterwards must not leak into the snapshot.
	s.GeneratePattern(12, 4.0, 200)
	s.ClearAll()

	snaps := s.Snapshots()
	require.Len(t, snaps, 1)
	assert.Len(t, snaps[0].Tendons, 4)
	assert.Equal(t, 150.0, snaps[0].Tendons[0].Diameter)
}

func TestStore_LoadRestoresCopyWithSuffix(t *testing.T) {
	s := NewStore(testSpec)
	s.GeneratePattern(8, 4.0, 150)
	s.AddGroutConnection(0, 2, 400)
	s.Save("Ring 8", time.Now())

	s.ClearAll()
	s.SetName("scratch")

	require.NoError(t, s.Load(0))

	l := s.Current()
	assert.Equal(t, "Ring 8 (copy)", l.Name)
	assert.Len(t, l.Tendons, 8)
	assert.Len(t, l.GroutConnections, 1)
}

func TestStore_LoadKeepsActiveFoundationSpec(t *testing.T) {
	// Loading a snapshot restores only the component collections; the
	// active foundation parameters stay untouched.
	s := NewStore(testSpec)
	s.GeneratePattern(8, 4.0, 150)
	s.Save("Ring 8", time.Now())

	changed := FoundationSpec{Diameter: 12.0, WallThickness: 1.0}
	s.SetFoundation(changed)

	require.NoError(t, s.Load(0))
	assert.Equal(t, changed, s.Current().Foundation)
}

func TestStore_LoadOutOfRange(t *testing.T) {
	s := NewStore(testSpec)
	s.Save("only one", time.Now())

	assert.ErrorIs(t, s.Load(1), ErrNoSuchSnapshot)
	assert.ErrorIs(t, s.Load(-1), ErrNoSuchSnapshot)
	assert.NoError(t, s.Load(0))
}

func TestStore_LoadedLayoutDoesNotAliasSnapshot(t *testing.T) {
	s := NewStore(testSpec)
	s.GeneratePattern(4, 3.0, 150)
	s.Save("Ring 4", time.Now())

	require.NoError(t, s.Load(0))
	s.AddTendon(0, 0, 150)

	snaps := s.Snapshots()
	assert.Len(t, snaps[0].Tendons, 4, "snapshot stays immutable after load")
}

func TestLayout_CloneIsDeep(t *testing.T) {
	l := Layout{
		Name:    "original",
		Tendons: []Tendon{{ID: 0, X: 1, Diameter: 150}},
	}

	c := l.Clone()
	c.Tendons[0].X = 99
	c.Name = "copy"

	assert.Equal(t, 1.0, l.Tendons[0].X)
	assert.Equal(t, "original", l.Name)
}
