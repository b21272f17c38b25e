package components

import (
	"platformer/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
)

// MeshRenderer draws a primitive at the object's transform. Size is the
// cube extent or the sphere radius in X; both are multiplied by the
// transform scale, so squash animations show up without extra work.
type MeshRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Color    rl.Color
	Size     rl.Vector3
	Wires    bool
	// Model replaces the primitive when set (textured ground).
	Model *rl.Model
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

// WorldSize returns Size multiplied by the transform scale.
func (m *MeshRenderer) WorldSize() rl.Vector3 {
	g := m.GetGameObject()
	if g == nil {
		return m.Size
	}
	s := g.Transform.Scale
	return rl.Vector3{X: m.Size.X * s.X, Y: m.Size.Y * s.Y, Z: m.Size.Z * s.Z}
}

func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active || g.Removed() {
		return
	}

	pos := g.Transform.Position
	size := m.WorldSize()

	if m.Model != nil {
		rl.DrawModel(*m.Model, pos, 1.0, rl.White)
		return
	}

	switch m.MeshType {
	case MeshCube:
		rl.PushMatrix()
		rl.Translatef(pos.X, pos.Y, pos.Z)
		rl.Rotatef(g.Transform.Rotation.Y, 0, 1, 0)
		rl.DrawCubeV(rl.Vector3Zero(), size, m.Color)
		if m.Wires {
			rl.DrawCubeWiresV(rl.Vector3Zero(), size, rl.DarkGray)
		}
		rl.PopMatrix()
	case MeshSphere:
		rl.DrawSphere(pos, size.X, m.Color)
	}
}
