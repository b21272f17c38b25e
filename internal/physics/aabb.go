package physics

import (
	"platformer/internal/components"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// BoxBounds returns the world-space bounds of a box collider.
func BoxBounds(box *components.BoxCollider) AABB {
	return NewAABBFromCenter(box.GetCenter(), box.GetWorldSize())
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// ContainsStrict reports whether p lies strictly inside the box. Points on a
// face are outside.
func (a AABB) ContainsStrict(p rl.Vector3) bool {
	return p.X > a.Min.X && p.X < a.Max.X &&
		p.Y > a.Min.Y && p.Y < a.Max.Y &&
		p.Z > a.Min.Z && p.Z < a.Max.Z
}

// Expand grows the box by margin on every side.
func (a AABB) Expand(margin float32) AABB {
	m := rl.Vector3{X: margin, Y: margin, Z: margin}
	return AABB{
		Min: rl.Vector3Subtract(a.Min, m),
		Max: rl.Vector3Add(a.Max, m),
	}
}
