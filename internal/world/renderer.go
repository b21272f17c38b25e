package world

import (
	"platformer/internal/assets"
	"platformer/internal/components"
	"platformer/internal/engine"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws every MeshRenderer in the world scene. It needs an open
// window; the headless simulation never creates one.
type Renderer struct {
	Background rl.Color
	// Culled is the number of objects skipped by the frustum test on the
	// last frame.
	Culled int

	world  *World
	logger *log.Logger
}

func NewRenderer(w *World, logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.Default()
	}
	return &Renderer{
		Background: rl.SkyBlue,
		world:      w,
		logger:     logger,
	}
}

// Initialize loads the ground texture. A missing texture keeps the flat
// ground colour.
func (r *Renderer) Initialize() {
	assets.Init()

	ground := r.world.Ground
	path := r.world.cfg.World.Ground.Texture
	if ground == nil || path == "" {
		return
	}
	mr := engine.GetComponent[*components.MeshRenderer](ground)
	if mr == nil {
		return
	}

	texture, err := assets.LoadTexture(path)
	if err != nil {
		r.logger.Warn("ground texture unavailable, using flat colour", "err", err)
		return
	}
	model := assets.TexturedCube("ground", mr.WorldSize(), texture)
	mr.Model = &model
	r.logger.Debug("ground texture loaded", "path", path)
}

// Draw renders the scene from camera. The caller owns BeginDrawing and
// EndDrawing so the HUD can be drawn on top.
func (r *Renderer) Draw(camera rl.Camera3D) {
	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())
	frustum := NewFrustum(camera, aspect)

	rl.ClearBackground(r.Background)
	rl.BeginMode3D(camera)
	r.Culled = 0
	for _, g := range r.world.Scene.GameObjects {
		mr := engine.GetComponent[*components.MeshRenderer](g)
		if mr == nil {
			continue
		}
		if !visible(&frustum, mr) {
			r.Culled++
			continue
		}
		mr.Draw()
	}
	rl.EndMode3D()
}

// visible tests the renderer's bounding sphere against the frustum.
func visible(f *Frustum, mr *components.MeshRenderer) bool {
	g := mr.GetGameObject()
	if g == nil {
		return false
	}
	size := mr.WorldSize()
	radius := size.X
	if mr.MeshType == components.MeshCube {
		radius = rl.Vector3Length(size) / 2
	}
	return f.ContainsSphere(g.Transform.Position, radius)
}

func (r *Renderer) Unload() {
	if r.world.Ground != nil {
		if mr := engine.GetComponent[*components.MeshRenderer](r.world.Ground); mr != nil {
			mr.Model = nil
		}
	}
	assets.Unload()
}
