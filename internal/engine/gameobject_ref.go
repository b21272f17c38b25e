package engine

// GameObjectRef is a weak reference to a GameObject by UID. It never keeps
// the object alive and resolves to nil once the object has been flushed
// from the scene or marked for removal.
//
// Example:
//
//	type Follower struct {
//	    Target engine.GameObjectRef
//	}
//
//	func (f *Follower) Update(scene *engine.Scene) {
//	    if target := f.Target.Get(scene); target != nil {
//	        // read target.Transform...
//	    }
//	}
type GameObjectRef struct {
	UID uint64 // UID of the referenced GameObject (0 = none)
}

// Get resolves the reference to the actual GameObject.
// Returns nil if the reference is empty, the scene is nil, or the object is
// gone.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	g := scene.FindByUID(r.UID)
	if g == nil || g.removed {
		return nil
	}
	return g
}

// Set sets the reference to point to the given GameObject.
// Pass nil to clear the reference.
func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.UID = 0
	} else {
		r.UID = g.UID
	}
}
