package engine

// Scene is the entity arena. Objects are addressed by UID; removal is
// deferred: Destroy only marks, Flush compacts at the end of the frame.
type Scene struct {
	Name        string
	GameObjects []*GameObject
	World       WorldAccess

	// OnRemoved fires once per object during Flush.
	OnRemoved EventWithArg[*GameObject]

	uidMap  map[uint64]*GameObject
	pending []*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.uidMap[g.UID] = g
}

// Destroy marks g for removal at the next Flush. Repeated calls are no-ops.
func (s *Scene) Destroy(g *GameObject) {
	if g == nil || g.removed || g.Scene != s {
		return
	}
	g.removed = true
	s.pending = append(s.pending, g)
}

// Flush drops every object marked since the last Flush, preserving the
// order of the survivors.
func (s *Scene) Flush() {
	if len(s.pending) == 0 {
		return
	}

	kept := s.GameObjects[:0]
	for _, g := range s.GameObjects {
		if !g.removed {
			kept = append(kept, g)
		}
	}
	// Clear the tail so dropped objects can be collected
	for i := len(kept); i < len(s.GameObjects); i++ {
		s.GameObjects[i] = nil
	}
	s.GameObjects = kept

	pending := s.pending
	s.pending = nil
	for _, g := range pending {
		delete(s.uidMap, g.UID)
		s.OnRemoved.Invoke(g)
	}
}

// PendingRemovals returns how many objects are waiting for Flush.
func (s *Scene) PendingRemovals() int {
	return len(s.pending)
}

func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidMap[uid]
}

// FindByTag returns the live objects carrying tag, in insertion order.
func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) && !g.removed {
			result = append(result, g)
		}
	}
	return result
}

// FindByKind returns the live objects of the given kind, in insertion order.
// The returned slice is a copy and is safe to hold while the scene changes.
func (s *Scene) FindByKind(kind Kind) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.Kind == kind && !g.removed {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

// Update advances every live object. Objects added during the pass are
// picked up next frame.
func (s *Scene) Update(deltaTime float32) {
	n := len(s.GameObjects)
	for i := 0; i < n; i++ {
		s.GameObjects[i].Update(deltaTime)
	}
}
