package components

import (
	"fmt"
	"math"

	"platformer/internal/engine"
	"platformer/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TurnPolicy selects how left/right input orients the actor.
type TurnPolicy int

const (
	// TurnContinuous rotates the facing by turn speed while left/right is
	// held; forward/back moves along the facing.
	TurnContinuous TurnPolicy = iota
	// TurnDirect moves along the input vector and snaps the facing to it.
	TurnDirect
)

func (p TurnPolicy) String() string {
	switch p {
	case TurnDirect:
		return "direct"
	default:
		return "continuous"
	}
}

func ParseTurnPolicy(s string) (TurnPolicy, error) {
	switch s {
	case "", "continuous":
		return TurnContinuous, nil
	case "direct":
		return TurnDirect, nil
	default:
		return TurnContinuous, fmt.Errorf("unknown turn policy %q", s)
	}
}

const (
	squashAmplitude = 0.2
	squashFrequency = 10
)

// CharacterController is the kinematic actor. It moves by direct position
// updates and resolves vertical contact with one ceiling ray and one
// ground ray per frame. There is no rigid-body response.
type CharacterController struct {
	engine.BaseComponent

	// Configuration
	Speed         float32
	RunMultiplier float32
	JumpImpulse   float32
	Gravity       float32 // positive = down
	HalfHeight    float32
	HalfWidth     float32
	TurnSpeed     float32 // degrees per second
	Policy        TurnPolicy
	ProbeOffset   float32 // ray origins sit this far above the centre
	GroundMargin  float32
	CeilingMargin float32
	CeilingBounce float32 // velocity-y factor after triggering a block
	SquashBase    float32 // resting visual scale-y

	// OnJump fires after every successful jump.
	OnJump engine.Event
	// OnHeadHit fires with the block that a ceiling ray triggered.
	OnHeadHit engine.EventWithArg[*engine.GameObject]

	Coins int
	Stars int

	// Runtime state
	velocityY float32
	grounded  bool
	squash    float32
}

// NewCharacterController creates a controller with the default tuning.
func NewCharacterController() *CharacterController {
	return &CharacterController{
		Speed:         7,
		RunMultiplier: 1.5,
		JumpImpulse:   10,
		Gravity:       30,
		HalfHeight:    0.8,
		HalfWidth:     0.4,
		TurnSpeed:     180,
		Policy:        TurnContinuous,
		ProbeOffset:   0.1,
		GroundMargin:  0.05,
		CeilingMargin: 0.2,
		CeilingBounce: -0.5,
		SquashBase:    1.6,
	}
}

func (c *CharacterController) IsGrounded() bool {
	return c.grounded
}

func (c *CharacterController) VelocityY() float32 {
	return c.velocityY
}

func (c *CharacterController) SetVelocityY(v float32) {
	c.velocityY = v
}

// SquashTimer returns the remaining jump squash animation time.
func (c *CharacterController) SquashTimer() float32 {
	return c.squash
}

// Teleport moves the actor and zeroes its vertical velocity.
func (c *CharacterController) Teleport(pos rl.Vector3) {
	if g := c.GetGameObject(); g != nil {
		g.Transform.Position = pos
	}
	c.velocityY = 0
}

// Update is a no-op: the actor is stepped explicitly by the frame loop
// before interactions are resolved.
func (c *CharacterController) Update(deltaTime float32) {}

// Step advances the actor by one frame.
func (c *CharacterController) Step(dt float32, in input.State) {
	g := c.GetGameObject()
	if g == nil {
		return
	}

	c.move(g, dt, in)

	if in.Jump {
		c.Jump()
	}

	c.resolveCeiling(g)

	prevY := g.Transform.Position.Y
	c.velocityY -= c.Gravity * dt
	g.Transform.Position.Y += c.velocityY * dt

	c.resolveGround(g, prevY)
	c.animateSquash(g, dt)
}

// Jump launches the actor if it is grounded. Returns false otherwise.
func (c *CharacterController) Jump() bool {
	if !c.grounded {
		return false
	}
	c.velocityY = c.JumpImpulse
	c.grounded = false
	c.squash = 1
	c.OnJump.Invoke()
	return true
}

func (c *CharacterController) move(g *engine.GameObject, dt float32, in input.State) {
	turn := input.Axis(in.Left, in.Right)
	forward := input.Axis(in.Forward, in.Back)

	var dir rl.Vector3
	switch c.Policy {
	case TurnDirect:
		dir = rl.Vector3{X: turn, Y: 0, Z: forward}
		if dir.X == 0 && dir.Z == 0 {
			return
		}
		dir = rl.Vector3Normalize(dir)
		g.Transform.Rotation.Y = float32(math.Atan2(float64(dir.X), float64(dir.Z)) * 180 / math.Pi)
	default:
		g.Transform.Rotation.Y = wrapDegrees(g.Transform.Rotation.Y + turn*c.TurnSpeed*dt)
		if forward == 0 {
			return
		}
		dir = rl.Vector3Scale(g.Transform.Forward(), forward)
	}

	speed := c.Speed
	if in.Run {
		speed *= c.RunMultiplier
	}
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, rl.Vector3Scale(dir, speed*dt))
}

// resolveCeiling casts up while rising. Only a block that reports a state
// transition bounces the actor back down.
func (c *CharacterController) resolveCeiling(g *engine.GameObject) {
	if c.velocityY <= 0 {
		return
	}
	world := c.World()
	if world == nil {
		return
	}

	origin := rl.Vector3Add(g.Transform.Position, rl.Vector3{Y: c.ProbeOffset})
	hit, ok := world.Raycast(origin, rl.Vector3{Y: 1}, c.HalfHeight+c.CeilingMargin, g)
	if !ok || hit.GameObject.Kind != engine.KindQuestionBlock {
		return
	}
	if hit.GameObject.OnHit(g) {
		c.velocityY *= c.CeilingBounce
		c.OnHeadHit.Invoke(hit.GameObject)
	}
}

// resolveGround recomputes grounded from a downward ray. The ray starts at
// the higher of the previous and current heights so a fast fall cannot
// skip through a thin platform.
func (c *CharacterController) resolveGround(g *engine.GameObject, prevY float32) {
	world := c.World()
	if world == nil {
		c.grounded = false
		return
	}

	pos := g.Transform.Position
	top := max(prevY, pos.Y)
	origin := rl.Vector3{X: pos.X, Y: top + c.ProbeOffset, Z: pos.Z}
	distance := (top - pos.Y) + c.ProbeOffset + c.HalfHeight + c.GroundMargin

	hit, ok := world.Raycast(origin, rl.Vector3{Y: -1}, distance, g)
	if !ok {
		c.grounded = false
		return
	}
	// Still rising with the feet clear of the hit.
	if c.velocityY > 0 && hit.Point.Y < pos.Y-c.HalfHeight {
		c.grounded = false
		return
	}

	c.grounded = true
	g.Transform.Position.Y = hit.Point.Y + c.HalfHeight
	c.velocityY = max(0, c.velocityY)
	if c.squash > 0 {
		c.squash = 0
		g.Transform.Scale.Y = c.SquashBase
	}
}

func (c *CharacterController) animateSquash(g *engine.GameObject, dt float32) {
	if c.squash <= 0 {
		return
	}
	g.Transform.Scale.Y = c.SquashBase + float32(math.Sin(float64(c.squash*squashFrequency)))*squashAmplitude
	c.squash -= dt
	if c.squash <= 0 {
		c.squash = 0
		g.Transform.Scale.Y = c.SquashBase
	}
}

func wrapDegrees(deg float32) float32 {
	deg = float32(math.Mod(float64(deg), 360))
	if deg < 0 {
		deg += 360
	}
	return deg
}
