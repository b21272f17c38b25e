package components

import (
	"platformer/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (b *BoxCollider) GetCenter() rl.Vector3 {
	g := b.GetGameObject()
	if g == nil {
		return b.Offset
	}
	return rl.Vector3Add(g.Transform.Position, b.Offset)
}

// GetWorldSize returns the collider size scaled by the object's transform.
// Components are always positive.
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	scale := rl.Vector3{X: 1, Y: 1, Z: 1}
	if g := b.GetGameObject(); g != nil {
		scale = g.Transform.Scale
	}
	return rl.Vector3{
		X: abs(b.Size.X * scale.X),
		Y: abs(b.Size.Y * scale.Y),
		Z: abs(b.Size.Z * scale.Z),
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
