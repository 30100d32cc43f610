package layout

import (
	"errors"
	"time"
)

// ErrNoSuchSnapshot is returned by Store.Load for an index outside the
// saved snapshot list.
var ErrNoSuchSnapshot = errors.New("no such snapshot")

// Store owns the current layout of an interactive session plus the ordered
// list of saved snapshots. All session state lives here; the presentation
// layer holds a handle and mutates through it.
//
// A store belongs to exactly one session; mutations are synchronous state
// transitions and need no locking.
type Store struct {
	current   Layout
	snapshots []Snapshot
}

// NewStore creates a store with an empty current layout for the given
// foundation spec.
func NewStore(spec FoundationSpec) *Store {
	return &Store{
		current: Layout{
			Name:       "Layout 1",
			Foundation: spec,
		},
	}
}

// Current returns a deep copy of the current layout.
func (s *Store) Current() Layout {
	return s.current.Clone()
}

// SetName renames the current layout.
func (s *Store) SetName(name string) {
	s.current.Name = name
}

// SetFoundation applies new foundation parameters to the current layout.
// Placed components are kept; the validator re-checks them against the new
// geometry on the next run.
func (s *Store) SetFoundation(spec FoundationSpec) {
	s.current.Foundation = spec
}

// GeneratePattern replaces the tendon collection with a circular pattern.
// Existing tendons are discarded, not appended to.
func (s *Store) GeneratePattern(count int, radius, diameterMm float64) []Tendon {
	s.current.Tendons = GenerateCircularPattern(count, radius, diameterMm)
	return append([]Tendon(nil), s.current.Tendons...)
}

// AddTendon appends a manually placed tendon with the next sequential ID.
func (s *Store) AddTendon(x, y, diameterMm float64) Tendon {
	t := Tendon{
		ID:        len(s.current.Tendons),
		X:         x,
		Y:         y,
		Diameter:  diameterMm,
		Placement: PlacementManual,
	}
	s.current.Tendons = append(s.current.Tendons, t)
	return t
}

// AddGroutConnection appends a grout connection with the next sequential ID.
func (s *Store) AddGroutConnection(x, y, diameterMm float64) GroutConnection {
	g := GroutConnection{
		ID:       len(s.current.GroutConnections),
		X:        x,
		Y:        y,
		Diameter: diameterMm,
	}
	s.current.GroutConnections = append(s.current.GroutConnections, g)
	return g
}

// AddAccessShaft appends an access shaft with the next sequential ID.
func (s *Store) AddAccessShaft(x, y, diameterM float64) AccessShaft {
	a := AccessShaft{
		ID:       len(s.current.AccessShafts),
		X:        x,
		Y:        y,
		Diameter: diameterM,
	}
	s.current.AccessShafts = append(s.current.AccessShafts, a)
	return a
}

// ClearAll empties all three component collections. The foundation spec and
// layout name are untouched.
func (s *Store) ClearAll() {
	s.current.Tendons = nil
	s.current.GroutConnections = nil
	s.current.AccessShafts = nil
}

// Save appends a timestamped deep copy of the current layout to the saved
// list under the given name and returns it. Snapshots are never mutated
// after this point.
func (s *Store) Save(name string, at time.Time) Snapshot {
	s.current.Name = name
	snap := Snapshot{
		Layout:  s.current.Clone(),
		SavedAt: at,
	}
	s.snapshots = append(s.snapshots, snap)
	return snap
}

// Load restores saved snapshot i into the current layout as a copy, renamed
// with a " (copy)" suffix. Only the component collections are restored; the
// active foundation parameters are deliberately kept as they are.
func (s *Store) Load(i int) error {
	if i < 0 || i >= len(s.snapshots) {
		return ErrNoSuchSnapshot
	}
	snap := s.snapshots[i].Layout.Clone()
	s.current.Name = snap.Name + " (copy)"
	s.current.Tendons = snap.Tendons
	s.current.GroutConnections = snap.GroutConnections
	s.current.AccessShafts = snap.AccessShafts
	return nil
}

// Snapshots returns copies of the saved snapshots in save order.
func (s *Store) Snapshots() []Snapshot {
	out := make([]Snapshot, len(s.snapshots))
	for i, snap := range s.snapshots {
		out[i] = Snapshot{Layout: snap.Layout.Clone(), SavedAt: snap.SavedAt}
	}
	return out
}
