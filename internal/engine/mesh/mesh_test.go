package mesh

import (
	"math"
	"testing"

	vmath "github.com/Faultbox/orrery/pkg/math"
)

func TestSphere(t *testing.T) {
	m := Sphere(12, 50, 50)

	if got, want := m.VertexCount(), 51*51; got != want {
		t.Errorf("vertex count: got %d, want %d", got, want)
	}
	if got, want := len(m.Indices), 50*50*6; got != want {
		t.Errorf("index count: got %d, want %d", got, want)
	}

	for i := 0; i < m.VertexCount(); i++ {
		v := m.Vertex(i)
		r := math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2]))
		if math.Abs(r-12) > 1e-3 {
			t.Fatalf("vertex %d at distance %f, want 12", i, r)
		}
	}

	top := m.Vertex(0)
	if math.Abs(float64(top[1])-12) > 1e-4 {
		t.Errorf("first vertex should be the north pole, got %v", top)
	}
}

func TestTorus(t *testing.T) {
	inner, outer := float32(0.5), float32(3.6)
	m := Torus(inner, outer, 2, 100)

	if got, want := m.VertexCount(), 101*3; got != want {
		t.Errorf("vertex count: got %d, want %d", got, want)
	}

	for i := 0; i < m.VertexCount(); i++ {
		v := m.Vertex(i)
		// Distance from the tube's centre line must equal the tube radius.
		ring := math.Hypot(float64(v[0]), float64(v[1])) - float64(outer)
		tube := math.Hypot(ring, float64(v[2]))
		if math.Abs(tube-float64(inner)) > 1e-4 {
			t.Fatalf("vertex %d off the tube: %v", i, v)
		}
	}
}

func TestIndicesInRange(t *testing.T) {
	for name, m := range map[string]*Mesh{
		"sphere": Sphere(1, 8, 4),
		"torus":  Torus(0.2, 1, 6, 12),
		"tiny":   Sphere(1, 0, 0),
	} {
		n := uint32(m.VertexCount())
		if len(m.Indices)%3 != 0 {
			t.Errorf("%s: index count %d is not a triangle list", name, len(m.Indices))
		}
		for _, idx := range m.Indices {
			if idx >= n {
				t.Fatalf("%s: index %d out of range (%d vertices)", name, idx, n)
			}
		}
	}
}

func TestLineLoop(t *testing.T) {
	got := LineLoop([]vmath.Vec3{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}})
	want := []float32{1, 2, 3, 4, 5, 6}
	if len(got) != len(want) {
		t.Fatalf("LineLoop: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("LineLoop[%d]: got %v, want %v", i, got[i], want[i])
		}
	}
}
