package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	nearPlane = 0.1
	farPlane  = 1000.0
)

// Frustum holds the six view planes used to skip drawing objects that are
// off screen.
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane is ax + by + cz + d = 0 with a unit normal pointing inwards.
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// NewFrustum extracts the planes of a perspective camera from its combined
// view-projection matrix (Gribb/Hartmann).
func NewFrustum(camera rl.Camera3D, aspect float32) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)
	proj := rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, nearPlane, farPlane)
	m := rl.MatrixMultiply(view, proj)

	rows := [4][4]float32{
		{m.M0, m.M4, m.M8, m.M12},
		{m.M1, m.M5, m.M9, m.M13},
		{m.M2, m.M6, m.M10, m.M14},
		{m.M3, m.M7, m.M11, m.M15},
	}
	w := rows[3]

	var f Frustum
	for i := 0; i < 3; i++ {
		r := rows[i]
		f.planes[i*2] = planeFrom(w[0]+r[0], w[1]+r[1], w[2]+r[2], w[3]+r[3])
		f.planes[i*2+1] = planeFrom(w[0]-r[0], w[1]-r[1], w[2]-r[2], w[3]-r[3])
	}
	return f
}

func planeFrom(a, b, c, d float32) Plane {
	p := Plane{normal: rl.NewVector3(a, b, c), distance: d}
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{
		normal:   rl.Vector3Scale(p.normal, 1/length),
		distance: d / length,
	}
}

// ContainsSphere reports whether a sphere is at least partly inside.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for _, p := range f.planes {
		if rl.Vector3DotProduct(p.normal, center)+p.distance < -radius {
			return false
		}
	}
	return true
}
