package engine

import (
	"math"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var nextUID atomic.Uint64

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees, Y is yaw
	Scale    rl.Vector3
}

// Forward returns the horizontal facing vector for the transform's yaw.
// Yaw 0 faces +Z, positive yaw turns toward +X.
func (t Transform) Forward() rl.Vector3 {
	yawRad := float64(t.Rotation.Y) * math.Pi / 180
	return rl.Vector3{
		X: float32(math.Sin(yawRad)),
		Y: 0,
		Z: float32(math.Cos(yawRad)),
	}
}

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Kind       Kind
	Transform  Transform
	Active     bool
	Scene      *Scene
	components []Component
	hit        Hittable
	started    bool
	removed    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    nextUID.Add(1),
		Name:   name,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
	if g.started {
		c.Start()
	}
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

// SetHittable installs the capability invoked when a ray hits this object.
func (g *GameObject) SetHittable(h Hittable) {
	g.hit = h
}

// OnHit forwards a ray hit to the object's capability.
// Objects without one ignore hits and report false.
func (g *GameObject) OnHit(by *GameObject) bool {
	if g.hit == nil || g.removed {
		return false
	}
	return g.hit.OnHit(by)
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active || g.removed {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

// Removed reports whether the object has been marked for removal.
func (g *GameObject) Removed() bool {
	return g.removed
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
