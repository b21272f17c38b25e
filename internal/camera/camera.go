package camera

import (
	"platformer/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FollowCamera chases a target object with exponential smoothing and looks
// slightly ahead of it. It only reads the target's transform.
type FollowCamera struct {
	Position   rl.Vector3
	Target     rl.Vector3 // look-at point
	Offset     rl.Vector3 // desired position relative to the followed object
	Damping    float32    // smoothing rate per second
	LookAhead  float32    // distance along the object's facing
	LookHeight float32
	Fovy       float32

	Follow engine.GameObjectRef
}

func New(offset rl.Vector3) *FollowCamera {
	return &FollowCamera{
		Offset:     offset,
		Damping:    6.0,
		LookAhead:  3.0,
		LookHeight: 2.0,
		Fovy:       60,
	}
}

// Snap jumps straight to the desired pose for the followed object.
func (c *FollowCamera) Snap(scene *engine.Scene) {
	g := c.Follow.Get(scene)
	if g == nil {
		return
	}
	c.Position = c.desired(g)
	c.Target = c.lookTarget(g)
}

// Update moves the camera a fraction clamp(Damping*dt, 0, 1) of the way to
// the desired position and re-aims it. With no live target it holds still.
func (c *FollowCamera) Update(scene *engine.Scene, deltaTime float32) {
	g := c.Follow.Get(scene)
	if g == nil {
		return
	}

	t := c.Damping * deltaTime
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	c.Position = rl.Vector3Lerp(c.Position, c.desired(g), t)
	c.Target = c.lookTarget(g)
}

func (c *FollowCamera) desired(g *engine.GameObject) rl.Vector3 {
	return rl.Vector3Add(g.Transform.Position, c.Offset)
}

func (c *FollowCamera) lookTarget(g *engine.GameObject) rl.Vector3 {
	ahead := rl.Vector3Scale(g.Transform.Forward(), c.LookAhead)
	target := rl.Vector3Add(g.Transform.Position, ahead)
	target.Y += c.LookHeight
	return target
}

func (c *FollowCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position,
		Target:     c.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}
