// Package renderer draws scenes with OpenGL 4.1 core.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/body"
	"github.com/Faultbox/orrery/internal/engine/mesh"
	"github.com/Faultbox/orrery/internal/engine/shader"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/internal/scene"
	"github.com/Faultbox/orrery/pkg/math"
)

const vertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uMVP;

void main() {
	gl_Position = uMVP * vec4(aPos, 1.0);
}
`

const fragmentShader = `
#version 410 core

uniform vec3 uColor;

out vec4 FragColor;

void main() {
	FragColor = vec4(uColor, 1.0);
}
`

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Background body.Color
}

// gpuMesh is an uploaded indexed mesh.
type gpuMesh struct {
	vao, vbo, ebo uint32
	count         int32
}

type meshKey struct {
	kind       scene.DrawKind
	a, b       float32
	segA, segB int
}

// Renderer implements scene.Surface on the current GL context.
type Renderer struct {
	config  Config
	program *shader.Program
	log     *zap.Logger

	view     math.Mat4
	proj     math.Mat4
	viewProj math.Mat4

	meshes map[meshKey]*gpuMesh

	lineVAO, lineVBO uint32
	lineCap          int
}

// New creates a renderer. The GL context must already exist.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
		meshes: make(map[meshKey]*gpuMesh),
		view:   math.Identity(),
		proj:   math.Identity(),
	}
	r.viewProj = r.proj

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.DepthFunc(gl.LESS)

	var err error
	r.program, err = shader.New(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	gl.GenVertexArrays(1, &r.lineVAO)
	gl.GenBuffers(1, &r.lineVBO)

	r.Viewport(cfg.Width, cfg.Height)
	return r, nil
}

// Close releases GPU resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer", zap.Int("meshes", len(r.meshes)))
	for _, m := range r.meshes {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
	}
	r.meshes = nil
	if r.lineVAO != 0 {
		gl.DeleteVertexArrays(1, &r.lineVAO)
		gl.DeleteBuffers(1, &r.lineVBO)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Viewport resizes the GL viewport.
func (r *Renderer) Viewport(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Clear starts a new frame. Clear colour and depth state are set every frame
// because an ImGui pass may have changed them since the last one.
func (r *Renderer) Clear() {
	bg := r.config.Background
	gl.ClearColor(bg.R, bg.G, bg.B, 1.0)
	gl.Enable(gl.DEPTH_TEST)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.program.Use()
}

// SetCamera sets the view matrix.
func (r *Renderer) SetCamera(cam scene.Camera) {
	r.view = cam.ViewMatrix()
	r.viewProj = r.proj.Mul(r.view)
}

// SetProjection sets the projection matrix.
func (r *Renderer) SetProjection(p scene.Projection) {
	r.proj = p.Matrix()
	r.viewProj = r.proj.Mul(r.view)
}

// DrawLineLoop draws a closed polyline in world space.
func (r *Renderer) DrawLineLoop(points []math.Vec3, color body.Color) {
	if len(points) == 0 {
		return
	}
	verts := mesh.LineLoop(points)

	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	if len(verts) > r.lineCap {
		gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.DYNAMIC_DRAW)
		gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
		gl.EnableVertexAttribArray(0)
		r.lineCap = len(verts)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, unsafe.Pointer(&verts[0]))
	}

	r.setUniforms(math.Identity(), color)
	gl.DrawArrays(gl.LINE_LOOP, 0, int32(len(points)))
	gl.BindVertexArray(0)
}

// DrawSphere draws a filled sphere.
func (r *Renderer) DrawSphere(model math.Mat4, radius float32, slices, stacks int, color body.Color) {
	key := meshKey{kind: scene.DrawSphere, a: radius, segA: slices, segB: stacks}
	m := r.mesh(key, func() *mesh.Mesh { return mesh.Sphere(radius, slices, stacks) })
	r.drawMesh(m, model, color)
}

// DrawTorus draws a filled torus.
func (r *Renderer) DrawTorus(model math.Mat4, inner, outer float32, sides, rings int, color body.Color) {
	key := meshKey{kind: scene.DrawTorus, a: inner, b: outer, segA: sides, segB: rings}
	m := r.mesh(key, func() *mesh.Mesh { return mesh.Torus(inner, outer, sides, rings) })
	r.drawMesh(m, model, color)
}

// Submit flushes the frame. Buffer swapping is left to the window.
func (r *Renderer) Submit() {
	gl.Flush()
}

func (r *Renderer) setUniforms(model math.Mat4, color body.Color) {
	mvp := r.viewProj.Mul(model)
	gl.UniformMatrix4fv(r.program.Uniform("uMVP"), 1, false, mvp.Ptr())
	gl.Uniform3f(r.program.Uniform("uColor"), color.R, color.G, color.B)
}

func (r *Renderer) drawMesh(m *gpuMesh, model math.Mat4, color body.Color) {
	r.setUniforms(model, color)
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// mesh returns the uploaded mesh for key, building it on first use. Bodies
// never change shape, so each one is uploaded once.
func (r *Renderer) mesh(key meshKey, build func() *mesh.Mesh) *gpuMesh {
	if m, ok := r.meshes[key]; ok {
		return m
	}

	src := build()
	m := &gpuMesh{count: int32(len(src.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(src.Vertices)*4, unsafe.Pointer(&src.Vertices[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(src.Indices)*4, unsafe.Pointer(&src.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	r.meshes[key] = m
	r.log.Debug("mesh uploaded",
		zap.String("kind", string(key.kind)),
		zap.Int("vertices", src.VertexCount()),
		zap.Int32("indices", m.count),
	)
	return m
}

var _ scene.Surface = (*Renderer)(nil)
