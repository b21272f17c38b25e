package physics

import (
	"math"

	"platformer/internal/components"
	"platformer/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	GameObject *engine.GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// Raycast returns the closest collider hit within maxDistance. Statics are
// tested before kinematics, each in registration order, and an exact tie
// keeps the earlier object. Excluded, inactive and removed objects are
// skipped, as is any collider that contains the origin.
func (p *PhysicsWorld) Raycast(origin, direction rl.Vector3, maxDistance float32, exclude ...*engine.GameObject) (RaycastHit, bool) {
	if maxDistance <= 0 || rl.Vector3DotProduct(direction, direction) == 0 {
		return RaycastHit{}, false
	}
	direction = rl.Vector3Normalize(direction)

	var closestHit RaycastHit
	hit := false

	consider := func(obj *engine.GameObject, candidate RaycastHit) {
		if hit && candidate.Distance >= closestHit.Distance {
			return
		}
		closestHit = candidate
		closestHit.GameObject = obj
		hit = true
	}

	for _, list := range [][]*engine.GameObject{p.Statics, p.Kinematics} {
		for _, obj := range list {
			if !obj.Active || obj.Removed() || isExcluded(obj, exclude) {
				continue
			}
			if box := engine.GetComponent[*components.BoxCollider](obj); box != nil {
				if hitInfo, ok := raycastBox(origin, direction, BoxBounds(box), maxDistance); ok {
					consider(obj, hitInfo)
				}
			}
			if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil {
				if hitInfo, ok := raycastSphere(origin, direction, sphere.GetCenter(), sphere.Radius, maxDistance); ok {
					consider(obj, hitInfo)
				}
			}
		}
	}

	return closestHit, hit
}

func isExcluded(obj *engine.GameObject, exclude []*engine.GameObject) bool {
	for _, e := range exclude {
		if e == obj {
			return true
		}
	}
	return false
}

// raycastBox is the slab test. direction must be normalised.
func raycastBox(origin, direction rl.Vector3, box AABB, maxDistance float32) (RaycastHit, bool) {
	if box.ContainsStrict(origin) {
		return RaycastHit{}, false
	}

	tmin := float32(-math.MaxFloat32)
	tmax := float32(math.MaxFloat32)
	hitAxis := -1
	var normalSign float32

	for axis := 0; axis < 3; axis++ {
		o := component(origin, axis)
		d := component(direction, axis)
		lo := component(box.Min, axis)
		hi := component(box.Max, axis)

		if d == 0 {
			if o < lo || o > hi {
				return RaycastHit{}, false
			}
			continue
		}

		t1 := (lo - o) / d
		t2 := (hi - o) / d
		sign := float32(-1) // entering through the min face
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tmin {
			tmin = t1
			hitAxis = axis
			normalSign = sign
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return RaycastHit{}, false
		}
	}

	// Box behind the origin, or origin on a face looking outward
	if hitAxis < 0 || tmin < 0 || tmin > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, tmin))
	var normal rl.Vector3
	if normalSign < 0 {
		setComponent(&point, hitAxis, component(box.Min, hitAxis))
		setComponent(&normal, hitAxis, -1)
	} else {
		setComponent(&point, hitAxis, component(box.Max, hitAxis))
		setComponent(&normal, hitAxis, 1)
	}

	return RaycastHit{Point: point, Normal: normal, Distance: tmin}, true
}

// raycastSphere expects a normalised direction.
func raycastSphere(origin, direction, center rl.Vector3, radius, maxDistance float32) (RaycastHit, bool) {
	oc := rl.Vector3Subtract(origin, center)
	b := rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	if c < 0 {
		return RaycastHit{}, false
	}

	discriminant := b*b - c
	if discriminant < 0 {
		return RaycastHit{}, false
	}

	t := -b - float32(math.Sqrt(float64(discriminant)))
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

func component(v rl.Vector3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func setComponent(v *rl.Vector3, axis int, value float32) {
	switch axis {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		v.Z = value
	}
}
