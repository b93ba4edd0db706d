// Package term renders the scene into a character grid so it can be watched
// in a terminal without an OpenGL context.
package term

import (
	"fmt"
	gomath "math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Faultbox/orrery/internal/body"
	"github.com/Faultbox/orrery/internal/scene"
	"github.com/Faultbox/orrery/pkg/math"
)

// CellAspect is the height of a terminal cell relative to its width.
const CellAspect = 2.0

const (
	glyphOrbit  = '·'
	glyphRing   = '~'
	glyphSphere = '●'
)

type cell struct {
	glyph rune
	color body.Color
	depth float32
}

// Surface is a scene.Surface that rasterizes into terminal cells. Orbit
// guides and rings are drawn as sampled points, bodies as filled discs,
// with a per-cell depth test.
type Surface struct {
	width, height int
	cells         []cell

	view     math.Mat4
	proj     math.Mat4
	viewProj math.Mat4

	frames int
}

// NewSurface creates a surface of w x h cells.
func NewSurface(w, h int) *Surface {
	s := &Surface{
		view: math.Identity(),
		proj: math.Identity(),
	}
	s.viewProj = s.proj
	s.SetSize(w, h)
	return s
}

// SetSize resizes the grid. Content is cleared.
func (s *Surface) SetSize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	s.width, s.height = w, h
	s.cells = make([]cell, w*h)
	s.Clear()
}

// Size returns the grid size in cells.
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Clear empties every cell.
func (s *Surface) Clear() {
	for i := range s.cells {
		s.cells[i] = cell{glyph: ' ', depth: float32(gomath.Inf(1))}
	}
}

// SetCamera sets the view matrix.
func (s *Surface) SetCamera(cam scene.Camera) {
	s.view = cam.ViewMatrix()
	s.viewProj = s.proj.Mul(s.view)
}

// SetProjection sets the projection, correcting the aspect ratio for
// non-square cells.
func (s *Surface) SetProjection(p scene.Projection) {
	p.Aspect *= 1 / CellAspect
	s.proj = p.Matrix()
	s.viewProj = s.proj.Mul(s.view)
}

// DrawLineLoop plots the loop's vertices.
func (s *Surface) DrawLineLoop(points []math.Vec3, color body.Color) {
	for _, p := range points {
		s.plot(p, glyphOrbit, color)
	}
}

// DrawSphere fills the sphere's silhouette.
func (s *Surface) DrawSphere(model math.Mat4, radius float32, _, _ int, color body.Color) {
	center := s.view.TransformVec3(model.Origin())

	cx, cy, w, ok := s.project(center)
	if !ok {
		return
	}
	ex, _, _, _ := s.project(center.Add(math.Vec3{X: radius}))
	_, ey, _, _ := s.project(center.Add(math.Vec3{Y: radius}))

	rx := gomath.Max(gomath.Abs(ex-cx), 0.5)
	ry := gomath.Max(gomath.Abs(ey-cy), 0.5)

	for y := int(gomath.Floor(cy - ry)); y <= int(gomath.Ceil(cy+ry)); y++ {
		for x := int(gomath.Floor(cx - rx)); x <= int(gomath.Ceil(cx+rx)); x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				s.set(x, y, glyphSphere, color, w)
			}
		}
	}
}

// DrawTorus plots the ring's centre line in the model's XY plane.
func (s *Surface) DrawTorus(model math.Mat4, _, outer float32, _, rings int, color body.Color) {
	if rings < 8 {
		rings = 8
	}
	for i := 0; i < rings; i++ {
		a := float64(i) * 2 * gomath.Pi / float64(rings)
		p := math.Vec3{X: outer * float32(gomath.Cos(a)), Y: outer * float32(gomath.Sin(a))}
		s.plot(model.TransformVec3(p), glyphRing, color)
	}
}

// Submit counts the finished frame.
func (s *Surface) Submit() {
	s.frames++
}

// Frames returns the number of submitted frames.
func (s *Surface) Frames() int {
	return s.frames
}

// At returns the glyph at a cell, for inspection.
func (s *Surface) At(x, y int) rune {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return 0
	}
	return s.cells[y*s.width+x].glyph
}

// Plain returns the grid without colour.
func (s *Surface) Plain() string {
	var b strings.Builder
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			b.WriteRune(s.cells[y*s.width+x].glyph)
		}
		if y < s.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// String returns the grid with runs of equal colour styled by lipgloss.
func (s *Surface) String() string {
	var b strings.Builder
	for y := 0; y < s.height; y++ {
		row := s.cells[y*s.width : (y+1)*s.width]
		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && row[end].color == row[start].color {
				end++
			}
			var run strings.Builder
			for _, c := range row[start:end] {
				run.WriteRune(c.glyph)
			}
			b.WriteString(style(row[start].color).Render(run.String()))
			start = end
		}
		if y < s.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// plot projects a world-space point and marks its cell.
func (s *Surface) plot(p math.Vec3, glyph rune, color body.Color) {
	x, y, w, ok := s.project(s.view.TransformVec3(p))
	if !ok {
		return
	}
	s.set(int(x), int(y), glyph, color, w)
}

// project maps a view-space point to fractional cell coordinates. ok is false
// for points behind the camera or outside the clip range.
func (s *Surface) project(v math.Vec3) (x, y float64, depth float32, ok bool) {
	clip, w := s.proj.Clip(v)
	if w <= 0 {
		return 0, 0, 0, false
	}
	nx, ny, nz := clip.X/w, clip.Y/w, clip.Z/w
	if nz < -1 || nz > 1 {
		return 0, 0, 0, false
	}
	x = (float64(nx) + 1) / 2 * float64(s.width)
	y = (1 - float64(ny)) / 2 * float64(s.height)
	return x, y, w, true
}

func (s *Surface) set(x, y int, glyph rune, color body.Color, depth float32) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	c := &s.cells[y*s.width+x]
	if depth > c.depth {
		return
	}
	*c = cell{glyph: glyph, color: color, depth: depth}
}

var styles = map[body.Color]lipgloss.Style{}

func style(c body.Color) lipgloss.Style {
	if st, ok := styles[c]; ok {
		return st
	}
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(hex(c)))
	styles[c] = st
	return st
}

func hex(c body.Color) string {
	to8 := func(v float32) int { return int(gomath.Round(float64(v) * 255)) }
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

var _ scene.Surface = (*Surface)(nil)
