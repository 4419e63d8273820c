// Package renderer draws the scene graph with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/lexcosmos/internal/engine/draw"
	"github.com/Faultbox/lexcosmos/internal/engine/lighting"
	"github.com/Faultbox/lexcosmos/internal/engine/shader"
	"github.com/Faultbox/lexcosmos/internal/logger"
	"github.com/Faultbox/lexcosmos/internal/scene"
	"github.com/Faultbox/lexcosmos/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

type uniforms struct {
	model, view, projection  int32
	time, swirl, size        int32
	opacity, pixelScale      int32
	ambient, fog, background int32
	lightCount               int32
	lightPos, lightColor     int32
	lightRange               int32
}

// cloudBuffer is a point cloud uploaded once.
type cloudBuffer struct {
	vao, vbo uint32
	count    int32
	seen     bool
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	program uint32
	loc     uniforms

	spriteVAO uint32
	spriteVBO uint32

	clouds map[*scene.Points]*cloudBuffer
	list   draw.List
	verts  []float32
	lights lighting.PointLightBuffer
}

// New creates a new renderer.
// Must be called after the OpenGL context is created.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		clouds: make(map[*scene.Points]*cloudBuffer),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.CompileProgram(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.locateUniforms()

	r.spriteVAO, r.spriteVBO = newVertexArray()

	logger.Debug("renderer ready", zap.Uint32("program", r.program))
	return r, nil
}

func (r *Renderer) locateUniforms() {
	p := r.program
	r.loc = uniforms{
		model:      shader.MustUniform(p, "uModel"),
		view:       shader.MustUniform(p, "uView"),
		projection: shader.MustUniform(p, "uProjection"),
		time:       shader.Uniform(p, "uTime"),
		swirl:      shader.Uniform(p, "uSwirl"),
		size:       shader.Uniform(p, "uSize"),
		opacity:    shader.Uniform(p, "uOpacity"),
		pixelScale: shader.Uniform(p, "uPixelScale"),
		ambient:    shader.Uniform(p, "uAmbient"),
		fog:        shader.Uniform(p, "uFogDensity"),
		background: shader.Uniform(p, "uBackground"),
		lightCount: shader.Uniform(p, "uLightCount"),
		lightPos:   shader.Uniform(p, "uLightPos"),
		lightColor: shader.Uniform(p, "uLightColor"),
		lightRange: shader.Uniform(p, "uLightRange"),
	}
}

// newVertexArray creates a VAO/VBO pair with the draw.Stride layout.
func newVertexArray() (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(draw.Stride * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 1, gl.FLOAT, false, stride, 7*4)
	gl.EnableVertexAttribArray(2)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return vao, vbo
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for p, c := range r.clouds {
		deleteCloud(c)
		delete(r.clouds, p)
	}
	if r.spriteVAO != 0 {
		gl.DeleteVertexArrays(1, &r.spriteVAO)
	}
	if r.spriteVBO != 0 {
		gl.DeleteBuffers(1, &r.spriteVBO)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

func deleteCloud(c *cloudBuffer) {
	gl.DeleteVertexArrays(1, &c.vao)
	gl.DeleteBuffers(1, &c.vbo)
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Render draws one frame of g from its camera.
func (r *Renderer) Render(g *scene.Graph) {
	env := g.Env
	gl.ClearColor(float32(env.Background.R), float32(env.Background.G), float32(env.Background.B), 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if r.config.Height == 0 {
		return
	}
	aspect := float32(r.config.Width) / float32(r.config.Height)
	cam := g.Camera
	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix(aspect)
	pixelScale := float32(r.config.Height) / (2 * math32.Tan(cam.FOV*math32.Pi/360))

	draw.Collect(g, &r.list)

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.loc.view, 1, false, view.Ptr())
	gl.UniformMatrix4fv(r.loc.projection, 1, false, proj.Ptr())
	gl.Uniform1f(r.loc.pixelScale, pixelScale)
	gl.Uniform1f(r.loc.ambient, math32.Min(env.AmbientLevel+env.SunLevel*0.5, 1))
	gl.Uniform1f(r.loc.fog, env.FogDensity)
	gl.Uniform3f(r.loc.background, float32(env.Background.R), float32(env.Background.G), float32(env.Background.B))
	r.setLights(r.list.Lights)

	r.drawClouds()
	r.drawSprites(cam.Position)
}

func (r *Renderer) setLights(lights []draw.Light) {
	r.lights.Clear()
	for _, l := range lights {
		if !r.lights.AddLight(lighting.PointLight{
			Position:  l.Position,
			Color:     l.Color,
			Range:     l.Range,
			Intensity: l.Intensity,
		}) {
			break
		}
	}
	b := &r.lights
	gl.Uniform1i(r.loc.lightCount, int32(b.Count))
	gl.Uniform3fv(r.loc.lightPos, lighting.MaxPointLights, &b.Positions[0])
	gl.Uniform3fv(r.loc.lightColor, lighting.MaxPointLights, &b.Colors[0])
	gl.Uniform1fv(r.loc.lightRange, lighting.MaxPointLights, &b.Ranges[0])
}

func (r *Renderer) drawClouds() {
	for _, c := range r.clouds {
		c.seen = false
	}

	for _, cl := range r.list.Clouds {
		buf := r.cloud(cl)
		buf.seen = true

		model := cl.Model
		gl.UniformMatrix4fv(r.loc.model, 1, false, model.Ptr())
		gl.Uniform1f(r.loc.time, cl.Points.Time)
		gl.Uniform1f(r.loc.swirl, boolf(cl.Points.Swirl))
		gl.Uniform1f(r.loc.size, cl.Size)
		gl.Uniform1f(r.loc.opacity, cl.Opacity)

		gl.BindVertexArray(buf.vao)
		gl.DrawArrays(gl.POINTS, 0, buf.count)
	}
	gl.BindVertexArray(0)

	for p, c := range r.clouds {
		if !c.seen {
			deleteCloud(c)
			delete(r.clouds, p)
		}
	}
}

// cloud returns the static buffer for a point cloud, uploading it on
// first use.
func (r *Renderer) cloud(cl draw.Cloud) *cloudBuffer {
	if c, ok := r.clouds[cl.Points]; ok {
		return c
	}

	verts := draw.AppendCloud(make([]float32, 0, cl.Points.Len()*draw.Stride), cl.Points, cl.Color)
	c := &cloudBuffer{count: int32(cl.Points.Len())}
	c.vao, c.vbo = newVertexArray()
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	r.clouds[cl.Points] = c

	logger.Debug("point cloud uploaded", zap.Int("points", cl.Points.Len()))
	return c
}

func (r *Renderer) drawSprites(eye math.Vec3) {
	if len(r.list.Sprites) == 0 {
		return
	}
	draw.SortBackToFront(r.list.Sprites, eye)
	r.verts = draw.AppendSprites(r.verts[:0], r.list.Sprites)

	identity := math.Identity()
	gl.UniformMatrix4fv(r.loc.model, 1, false, identity.Ptr())
	gl.Uniform1f(r.loc.time, 0)
	gl.Uniform1f(r.loc.swirl, 0)
	gl.Uniform1f(r.loc.size, 1)
	gl.Uniform1f(r.loc.opacity, 1)

	gl.DepthMask(false)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.verts)*4, unsafe.Pointer(&r.verts[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(len(r.list.Sprites)))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	gl.DepthMask(true)
}

func boolf(b bool) float32 {
	if b {
		return 1
	}
	return 0
}
