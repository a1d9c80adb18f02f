// Package viewer renders the demo scene: a platform carrying a cube with
// two axles, a gear that can be moved onto the axles, a sphere and a sky.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Echtzeit-Computergrafik-WS23/glance/internal/config"
	"github.com/Echtzeit-Computergrafik-WS23/glance/internal/engine/camera"
	"github.com/Echtzeit-Computergrafik-WS23/glance/internal/engine/gpu"
	"github.com/Echtzeit-Computergrafik-WS23/glance/internal/engine/input"
	"github.com/Echtzeit-Computergrafik-WS23/glance/internal/engine/shader"
	"github.com/Echtzeit-Computergrafik-WS23/glance/internal/engine/window"
	"github.com/Echtzeit-Computergrafik-WS23/glance/internal/viewer/shaders"
	"github.com/Echtzeit-Computergrafik-WS23/glance/pkg/geo"
	"github.com/Echtzeit-Computergrafik-WS23/glance/pkg/math"
)

// Shader attribute names, bound to gpu.DefaultLocations order.
var attribNames = []string{"a_pos", "a_normal", "a_texCoord"}

type colour struct{ r, g, b float32 }

var (
	platformColour = colour{0.62, 0.47, 0.32}
	cubeColour     = colour{0.55, 0.58, 0.62}
	gearColour     = colour{0.64, 0.33, 0.18}
	sphereColour   = colour{0.30, 0.45, 0.75}
)

// Viewer owns the window, GPU resources and scene state.
type Viewer struct {
	log    *zap.Logger
	win    *window.Window
	input  *input.Input
	camera *camera.OrbitCamera

	world *shader.Program
	sky   *shader.Program

	platform, cube, axle, gear, sphere, skybox *gpu.Mesh

	placement Placement
	cursorX   float32

	// Paths picked in the model dialog, consumed on the render thread.
	picked     chan string
	dialogOpen atomic.Bool
	// Closed when Run returns so a late dialog result is dropped.
	done     chan struct{}
	doneOnce sync.Once
}

// New opens the window, compiles the shaders and uploads every mesh.
// The gear is loaded from cfg.Viewer.Model when set.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Viewer, error) {
	if log == nil {
		log = zap.NewNop()
	}

	win, err := window.New(window.Config{
		Title:      "glance",
		Width:      cfg.Viewer.Width,
		Height:     cfg.Viewer.Height,
		Fullscreen: cfg.Viewer.Fullscreen,
		VSync:      cfg.Viewer.VSync,
	})
	if err != nil {
		return nil, err
	}

	v := &Viewer{
		log:    log,
		win:    win,
		input:  input.New(),
		camera: camera.NewOrbitCamera(),
		picked: make(chan string, 1),
		done:   make(chan struct{}),
	}
	if err := v.init(ctx, cfg); err != nil {
		v.Close()
		return nil, err
	}
	return v, nil
}

func (v *Viewer) init(ctx context.Context, cfg *config.Config) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	v.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	var err error
	if v.world, err = shader.Compile(shaders.WorldVertexShader, shaders.WorldFragmentShader, attribNames...); err != nil {
		return fmt.Errorf("world shader: %w", err)
	}
	if v.sky, err = shader.Compile(shaders.SkyVertexShader, shaders.SkyFragmentShader, attribNames[0]); err != nil {
		return fmt.Errorf("sky shader: %w", err)
	}

	gearMesh, err := v.loadGear(ctx, cfg.Viewer.Model)
	if err != nil {
		return err
	}

	platformOpts := cfg.Shapes.Cube.Options()
	platformOpts.Size = PlatformSize

	uploads := []struct {
		name string
		dst  **gpu.Mesh
		mesh *geo.Mesh
	}{
		{"platform", &v.platform, geo.Cube(platformOpts)},
		{"cube", &v.cube, geo.Cube(cfg.Shapes.Cube.Options())},
		{"axle", &v.axle, geo.Cylinder(cfg.Shapes.Cylinder.Options())},
		{"gear", &v.gear, gearMesh},
		{"sphere", &v.sphere, geo.Sphere(cfg.Shapes.Sphere.Options())},
		{"skybox", &v.skybox, geo.SkyBox()},
	}
	for _, u := range uploads {
		if *u.dst, err = gpu.Upload(u.mesh, gpu.DefaultLocations); err != nil {
			return fmt.Errorf("%s: %w", u.name, err)
		}
		v.log.Debug("mesh uploaded",
			zap.String("mesh", u.name),
			zap.Int("vertices", u.mesh.VertexCount()),
			zap.Int("triangles", u.mesh.TriangleCount()),
			zap.Stringer("layout", u.mesh.Layout),
		)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)
	return nil
}

func (v *Viewer) loadGear(ctx context.Context, source string) (*geo.Mesh, error) {
	if source == "" {
		v.log.Info("no gear model configured, using a disc")
		return FallbackGear(), nil
	}
	model, err := geo.LoadOBJ(ctx, source, v.log)
	if err != nil {
		return nil, fmt.Errorf("gear model: %w", err)
	}
	return model.Mesh, nil
}

// Run renders frames until the window is closed or ctx is cancelled.
func (v *Viewer) Run(ctx context.Context) error {
	defer v.doneOnce.Do(func() { close(v.done) })
	start := time.Now()
	frames := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if quit := v.handleInput(); quit {
			v.log.Info("viewer closed", zap.Int("frames", frames))
			return nil
		}
		select {
		case path := <-v.picked:
			v.replaceGear(ctx, path)
		default:
		}
		v.draw(float32(time.Since(start).Seconds()))
		v.win.SwapBuffers()
		frames++
	}
}

func (v *Viewer) handleInput() bool {
	quit := v.input.Update()
	width, _ := v.win.DrawableSize()

	for _, e := range v.input.Events() {
		switch e.Type {
		case input.EventPointer:
			v.cursorX = CursorX(e.X, width)
		case input.EventDrag:
			v.cursorX = CursorX(e.X, width)
			v.camera.HandleDrag(e.DX, e.DY)
		case input.EventZoom:
			v.camera.HandleZoom(e.Zoom)
		case input.EventKey:
			if e.Key == sdl.K_o {
				v.openModelDialog()
				continue
			}
			next := v.placement.Apply(keyAction(e.Key), v.cursorX)
			if next != v.placement {
				v.log.Debug("gear moved", zap.Stringer("from", v.placement), zap.Stringer("to", next))
				v.placement = next
			}
		}
	}
	return quit
}

// openModelDialog asks for an OBJ file without blocking the render loop.
func (v *Viewer) openModelDialog() {
	if !v.dialogOpen.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer v.dialogOpen.Store(false)
		path, err := dialog.File().
			Filter("Wavefront OBJ", "obj").
			Filter("All Files", "*").
			Title("Open Gear Model").
			Load()
		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				v.log.Warn("file dialog failed", zap.Error(err))
			}
			return
		}
		if !deliver(v.picked, v.done, path) {
			v.log.Debug("viewer stopped, dropping picked model", zap.String("source", path))
		}
	}()
}

// replaceGear swaps the gear mesh; a model that fails to load keeps the
// current one.
func (v *Viewer) replaceGear(ctx context.Context, path string) {
	model, err := geo.LoadOBJ(ctx, path, v.log)
	if err != nil {
		v.log.Warn("keeping current gear", zap.String("source", path), zap.Error(err))
		return
	}
	mesh, err := gpu.Upload(model.Mesh, gpu.DefaultLocations)
	if err != nil {
		v.log.Warn("keeping current gear", zap.String("source", path), zap.Error(err))
		return
	}
	v.gear.Delete()
	v.gear = mesh
}

func keyAction(key sdl.Keycode) Action {
	switch key {
	case sdl.K_1:
		return ActionToggleHold
	case sdl.K_RETURN, sdl.K_KP_ENTER:
		return ActionPlace
	case sdl.K_0:
		return ActionReset
	}
	return ActionNone
}

func (v *Viewer) draw(seconds float32) {
	width, height := v.win.DrawableSize()
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	aspect := float32(width) / math32.Max(float32(height), 1)
	projection := math.Perspective(math32.Pi/4, aspect, 0.1, 14)
	view := v.camera.ViewMatrix()
	eye := v.camera.Position()

	v.world.Use()
	v.world.SetMat4("u_projection", projection.Ptr())
	v.world.SetMat4("u_view", view.Ptr())
	v.world.SetVec3("u_viewPos", eye.X, eye.Y, eye.Z)
	v.world.SetVec3("u_lightPos", 0, 0, 5)
	v.world.SetVec3("u_lightColor", 1, 1, 1)
	gl.Uniform1f(v.world.Uniform("u_ambient"), 0.1)
	gl.Uniform1f(v.world.Uniform("u_specular"), 0.6)
	gl.Uniform1f(v.world.Uniform("u_shininess"), 64)

	v.drawWorld(v.platform, PlatformModel(), platformColour)
	v.drawWorld(v.cube, CubeModel(), cubeColour)
	v.drawWorld(v.axle, AxleModel(-1), cubeColour)
	v.drawWorld(v.axle, AxleModel(1), cubeColour)
	v.drawWorld(v.gear, GearModel(v.placement, v.cursorX, seconds), gearColour)
	v.drawWorld(v.sphere, SphereModel(seconds), sphereColour)

	// Sky faces wind counter-clockwise seen from outside, so from inside
	// the visible faces are the back faces.
	viewRotation := view.WithoutTranslation()
	v.sky.Use()
	v.sky.SetMat4("u_projection", projection.Ptr())
	v.sky.SetMat4("u_viewRotation", viewRotation.Ptr())
	v.sky.SetVec3("u_horizon", 0.78, 0.80, 0.82)
	v.sky.SetVec3("u_zenith", 0.22, 0.40, 0.70)
	v.sky.SetVec3("u_ground", 0.18, 0.17, 0.16)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.FRONT)
	v.skybox.Draw()
	gl.CullFace(gl.BACK)
	gl.Disable(gl.CULL_FACE)
}

func (v *Viewer) drawWorld(m *gpu.Mesh, model math.Mat4, c colour) {
	v.world.SetMat4("u_model", model.Ptr())
	v.world.SetVec3("u_color", c.r, c.g, c.b)
	m.Draw()
}

// Close frees GPU resources and the window. It is safe after a failed New.
func (v *Viewer) Close() {
	for _, m := range []*gpu.Mesh{v.platform, v.cube, v.axle, v.gear, v.sphere, v.skybox} {
		if m != nil {
			m.Delete()
		}
	}
	if v.world != nil {
		v.world.Delete()
	}
	if v.sky != nil {
		v.sky.Delete()
	}
	v.win.Close()
}
