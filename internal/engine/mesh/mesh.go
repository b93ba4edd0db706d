// Package mesh generates indexed triangle meshes for the primitives the
// renderer draws. Vertices are packed as x, y, z.
package mesh

import (
	"math"

	vmath "github.com/Faultbox/orrery/pkg/math"
)

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// Vertex returns the i-th vertex.
func (m *Mesh) Vertex(i int) [3]float32 {
	return [3]float32{m.Vertices[i*3], m.Vertices[i*3+1], m.Vertices[i*3+2]}
}

// Sphere builds a UV sphere around the origin with the poles on the Y axis.
// slices divide the longitude, stacks the latitude, like glutSolidSphere.
func Sphere(radius float32, slices, stacks int) *Mesh {
	if slices < 3 {
		slices = 3
	}
	if stacks < 2 {
		stacks = 2
	}

	m := &Mesh{
		Vertices: make([]float32, 0, (stacks+1)*(slices+1)*3),
		Indices:  make([]uint32, 0, stacks*slices*6),
	}

	for st := 0; st <= stacks; st++ {
		theta := float64(st) * math.Pi / float64(stacks)
		sinT, cosT := math.Sin(theta), math.Cos(theta)

		for sl := 0; sl <= slices; sl++ {
			phi := float64(sl) * 2 * math.Pi / float64(slices)
			x := math.Cos(phi) * sinT
			z := math.Sin(phi) * sinT
			m.Vertices = append(m.Vertices,
				radius*float32(x), radius*float32(cosT), radius*float32(z))
		}
	}

	m.Indices = appendGrid(m.Indices, stacks, slices)
	return m
}

// Torus builds a torus around the Z axis, like glutSolidTorus: inner is the
// tube radius, outer the distance from the centre to the middle of the tube.
// sides divide the tube cross-section, rings the sweep around the centre.
func Torus(inner, outer float32, sides, rings int) *Mesh {
	if sides < 2 {
		sides = 2
	}
	if rings < 3 {
		rings = 3
	}

	m := &Mesh{
		Vertices: make([]float32, 0, (rings+1)*(sides+1)*3),
		Indices:  make([]uint32, 0, rings*sides*6),
	}

	for r := 0; r <= rings; r++ {
		u := float64(r) * 2 * math.Pi / float64(rings)
		cu, su := math.Cos(u), math.Sin(u)

		for s := 0; s <= sides; s++ {
			v := float64(s) * 2 * math.Pi / float64(sides)
			d := float64(outer) + float64(inner)*math.Cos(v)
			m.Vertices = append(m.Vertices,
				float32(d*cu), float32(d*su), inner*float32(math.Sin(v)))
		}
	}

	m.Indices = appendGrid(m.Indices, rings, sides)
	return m
}

// appendGrid triangulates a (rows+1) x (cols+1) vertex grid.
func appendGrid(idx []uint32, rows, cols int) []uint32 {
	stride := uint32(cols + 1)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cur := uint32(r)*stride + uint32(c)
			next := cur + stride
			idx = append(idx, cur, next, cur+1, cur+1, next, next+1)
		}
	}
	return idx
}

// LineLoop packs points for a GL_LINE_LOOP draw.
func LineLoop(points []vmath.Vec3) []float32 {
	out := make([]float32, 0, len(points)*3)
	for _, p := range points {
		out = append(out, p.X, p.Y, p.Z)
	}
	return out
}
