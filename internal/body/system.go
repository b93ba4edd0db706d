package body

import (
	"fmt"

	"github.com/Faultbox/orrery/pkg/math"
)

// System is a validated, ordered set of bodies with resolved parents.
type System struct {
	bodies  []CelestialBody
	byName  map[string]int
	lineage [][]CelestialBody // ancestors per body, outermost first
}

// NewSystem validates bodies and resolves parent references. The order of
// bodies is kept as the draw order.
func NewSystem(bodies []CelestialBody) (*System, error) {
	if len(bodies) == 0 {
		return nil, ErrNoBodies
	}

	s := &System{
		bodies: make([]CelestialBody, len(bodies)),
		byName: make(map[string]int, len(bodies)),
	}
	copy(s.bodies, bodies)

	stationary := ""
	for i, b := range s.bodies {
		if err := b.Validate(); err != nil {
			return nil, err
		}
		if _, dup := s.byName[b.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateBody, b.Name)
		}
		if b.Stationary() && b.Parent == "" {
			if stationary != "" {
				return nil, fmt.Errorf("%w: %s and %s are both stationary at the origin", ErrInvalidBody, stationary, b.Name)
			}
			stationary = b.Name
		}
		s.byName[b.Name] = i
	}

	s.lineage = make([][]CelestialBody, len(s.bodies))
	for i, b := range s.bodies {
		chain, err := s.ancestors(b)
		if err != nil {
			return nil, err
		}
		s.lineage[i] = chain
	}

	if stationary == "" {
		return nil, fmt.Errorf("%w: no stationary body at the origin", ErrInvalidBody)
	}

	return s, nil
}

// ancestors walks parent links up to the root and returns them outermost first.
func (s *System) ancestors(b CelestialBody) ([]CelestialBody, error) {
	var chain []CelestialBody
	seen := map[string]bool{b.Name: true}

	for cur := b; cur.Parent != ""; {
		idx, ok := s.byName[cur.Parent]
		if !ok {
			return nil, fmt.Errorf("%w: %s references %q", ErrUnknownParent, cur.Name, cur.Parent)
		}
		parent := s.bodies[idx]
		if seen[parent.Name] {
			return nil, fmt.Errorf("%w: %s", ErrParentCycle, b.Name)
		}
		seen[parent.Name] = true
		chain = append([]CelestialBody{parent}, chain...)
		cur = parent
	}
	return chain, nil
}

// Bodies returns the bodies in draw order.
func (s *System) Bodies() []CelestialBody {
	return s.bodies
}

// Len returns the number of bodies.
func (s *System) Len() int {
	return len(s.bodies)
}

// Lookup finds a body by name.
func (s *System) Lookup(name string) (CelestialBody, bool) {
	idx, ok := s.byName[name]
	if !ok {
		return CelestialBody{}, false
	}
	return s.bodies[idx], true
}

// Ancestors returns the resolved parents of the i-th body, outermost first.
func (s *System) Ancestors(i int) []CelestialBody {
	return s.lineage[i]
}

// Placement returns the world transform of the i-th body at angle.
func (s *System) Placement(i int, angle float32) math.Mat4 {
	return s.bodies[i].Placement(angle, s.lineage[i]...)
}
