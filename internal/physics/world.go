package physics

import (
	"platformer/internal/components"
	"platformer/internal/engine"
)

// PhysicsWorld is the collider registry behind the spatial queries. It holds
// no dynamics: the actor moves kinematically and only asks rays.
type PhysicsWorld struct {
	Statics    []*engine.GameObject // terrain and platforms, never moved by gameplay
	Kinematics []*engine.GameObject // solid but animated (question blocks)
}

func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{
		Statics:    make([]*engine.GameObject, 0),
		Kinematics: make([]*engine.GameObject, 0),
	}
}

// AddObject registers g as a ray target. Objects without a box or sphere
// collider are not registered and false is returned.
func (p *PhysicsWorld) AddObject(g *engine.GameObject) bool {
	if g == nil || !hasCollider(g) {
		return false
	}
	if g.Kind == engine.KindQuestionBlock {
		p.Kinematics = append(p.Kinematics, g)
	} else {
		p.Statics = append(p.Statics, g)
	}
	return true
}

func (p *PhysicsWorld) RemoveObject(g *engine.GameObject) bool {
	for i, obj := range p.Statics {
		if obj == g {
			p.Statics = append(p.Statics[:i], p.Statics[i+1:]...)
			return true
		}
	}
	for i, obj := range p.Kinematics {
		if obj == g {
			p.Kinematics = append(p.Kinematics[:i], p.Kinematics[i+1:]...)
			return true
		}
	}
	return false
}

// Count returns the number of registered colliders.
func (p *PhysicsWorld) Count() int {
	return len(p.Statics) + len(p.Kinematics)
}

func hasCollider(g *engine.GameObject) bool {
	return engine.GetComponent[*components.BoxCollider](g) != nil ||
		engine.GetComponent[*components.SphereCollider](g) != nil
}
