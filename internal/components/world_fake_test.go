package components

import (
	"platformer/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// fakeWorld answers vertical rays against box colliders and records spawns.
type fakeWorld struct {
	scene        *engine.Scene
	solids       []*engine.GameObject
	spawned      []*engine.GameObject
	destroyAfter map[*engine.GameObject]float32
}

func newFakeWorld() *fakeWorld {
	w := &fakeWorld{
		scene:        engine.NewScene("Test"),
		destroyAfter: make(map[*engine.GameObject]float32),
	}
	w.scene.World = w
	return w
}

func (w *fakeWorld) addSolid(name string, kind engine.Kind, center, size rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Kind = kind
	g.Transform.Position = center
	g.AddComponent(NewBoxCollider(size))
	w.scene.AddGameObject(g)
	w.solids = append(w.solids, g)
	return g
}

func (w *fakeWorld) Raycast(origin, direction rl.Vector3, maxDistance float32, exclude ...*engine.GameObject) (engine.RaycastResult, bool) {
	var best engine.RaycastResult
	found := false
	for _, g := range w.solids {
		if g.Removed() || contains(exclude, g) {
			continue
		}
		box := engine.GetComponent[*BoxCollider](g)
		c, s := box.GetCenter(), box.GetWorldSize()
		if origin.X < c.X-s.X/2 || origin.X > c.X+s.X/2 || origin.Z < c.Z-s.Z/2 || origin.Z > c.Z+s.Z/2 {
			continue
		}
		var y, d float32
		if direction.Y < 0 {
			y = c.Y + s.Y/2
			d = origin.Y - y
		} else {
			y = c.Y - s.Y/2
			d = y - origin.Y
		}
		if d < 0 || d > maxDistance {
			continue
		}
		if !found || d < best.Distance {
			best = engine.RaycastResult{
				GameObject: g,
				Point:      rl.Vector3{X: origin.X, Y: y, Z: origin.Z},
				Normal:     rl.Vector3{Y: -direction.Y},
				Distance:   d,
			}
			found = true
		}
	}
	return best, found
}

func (w *fakeWorld) Spawn(kind engine.Kind, position rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject("Spawned")
	g.Kind = kind
	g.Transform.Position = position
	g.AddComponent(NewCoin())
	w.scene.AddGameObject(g)
	g.Start()
	w.spawned = append(w.spawned, g)
	return g
}

func (w *fakeWorld) DestroyAfter(g *engine.GameObject, delay float32) {
	w.destroyAfter[g] = delay
}

func (w *fakeWorld) Destroy(g *engine.GameObject) {
	w.scene.Destroy(g)
}

func contains(list []*engine.GameObject, g *engine.GameObject) bool {
	for _, e := range list {
		if e == g {
			return true
		}
	}
	return false
}

func (w *fakeWorld) addPlayer(pos rl.Vector3) (*engine.GameObject, *CharacterController) {
	g := engine.NewGameObject("Player")
	g.Kind = engine.KindActor
	g.Transform.Position = pos
	g.Transform.Scale = rl.Vector3{X: 0.8, Y: 1.6, Z: 0.8}
	cc := NewCharacterController()
	g.AddComponent(cc)
	w.scene.AddGameObject(g)
	g.Start()
	return g, cc
}

func (w *fakeWorld) addBlock(pos rl.Vector3) (*engine.GameObject, *QuestionBlock) {
	g := w.addSolid("Block", engine.KindQuestionBlock, pos, rl.Vector3{X: 1, Y: 1, Z: 1})
	qb := NewQuestionBlock()
	g.AddComponent(qb)
	g.Start()
	return g, qb
}
