package physics

import (
	"math"
	"testing"

	"platformer/internal/components"
	"platformer/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func newBox(name string, center, size rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Kind = engine.KindTerrain
	g.Transform.Position = center
	g.AddComponent(components.NewBoxCollider(size))
	return g
}

func newSphere(name string, center rl.Vector3, radius float32) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = center
	g.AddComponent(components.NewSphereCollider(radius))
	return g
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

var down = rl.Vector3{X: 0, Y: -1, Z: 0}

func TestRaycastHitsGroundTopFace(t *testing.T) {
	p := NewPhysicsWorld()
	ground := newBox("Ground", rl.Vector3{X: 0, Y: -0.5, Z: 0}, rl.Vector3{X: 50, Y: 1, Z: 50})
	p.AddObject(ground)

	hit, ok := p.Raycast(rl.Vector3{X: 1, Y: 0.9, Z: 2}, down, 2)
	if !ok {
		t.Fatal("Expected ray to hit the ground")
	}
	if hit.GameObject != ground {
		t.Errorf("Expected hit object Ground, got %v", hit.GameObject)
	}
	if hit.Point.Y != 0 {
		t.Errorf("Expected hit point on the top face y=0, got %f", hit.Point.Y)
	}
	if hit.Normal.Y != 1 {
		t.Errorf("Expected upward normal, got %v", hit.Normal)
	}
	if !approx(hit.Distance, 0.9) {
		t.Errorf("Expected distance 0.9, got %f", hit.Distance)
	}
}

func TestRaycastRespectsMaxDistance(t *testing.T) {
	p := NewPhysicsWorld()
	p.AddObject(newBox("Ground", rl.Vector3{X: 0, Y: -0.5, Z: 0}, rl.Vector3{X: 10, Y: 1, Z: 10}))

	if _, ok := p.Raycast(rl.Vector3{X: 0, Y: 3, Z: 0}, down, 2); ok {
		t.Error("Expected no hit beyond max distance")
	}
}

func TestRaycastZeroDirection(t *testing.T) {
	p := NewPhysicsWorld()
	p.AddObject(newBox("Ground", rl.Vector3{}, rl.Vector3{X: 10, Y: 1, Z: 10}))

	if _, ok := p.Raycast(rl.Vector3{X: 0, Y: 3, Z: 0}, rl.Vector3{}, 10); ok {
		t.Error("Expected zero direction to report no hit")
	}
}

func TestRaycastReturnsClosest(t *testing.T) {
	p := NewPhysicsWorld()
	low := newBox("Low", rl.Vector3{X: 0, Y: 0, Z: 0}, rl.Vector3{X: 2, Y: 1, Z: 2})
	high := newBox("High", rl.Vector3{X: 0, Y: 3, Z: 0}, rl.Vector3{X: 2, Y: 1, Z: 2})
	p.AddObject(low)
	p.AddObject(high)

	hit, ok := p.Raycast(rl.Vector3{X: 0, Y: 10, Z: 0}, down, 20)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if hit.GameObject != high {
		t.Errorf("Expected closest object High, got %s", hit.GameObject.Name)
	}
}

func TestRaycastTieKeepsFirstRegistered(t *testing.T) {
	p := NewPhysicsWorld()
	first := newBox("First", rl.Vector3{X: 0, Y: 0, Z: 0}, rl.Vector3{X: 2, Y: 1, Z: 2})
	second := newBox("Second", rl.Vector3{X: 0, Y: 0, Z: 0}, rl.Vector3{X: 2, Y: 1, Z: 2})
	p.AddObject(first)
	p.AddObject(second)

	hit, _ := p.Raycast(rl.Vector3{X: 0, Y: 5, Z: 0}, down, 10)
	if hit.GameObject != first {
		t.Errorf("Expected tie to keep First, got %s", hit.GameObject.Name)
	}
}

func TestRaycastSkipsExcluded(t *testing.T) {
	p := NewPhysicsWorld()
	near := newBox("Near", rl.Vector3{X: 0, Y: 2, Z: 0}, rl.Vector3{X: 1, Y: 1, Z: 1})
	far := newBox("Far", rl.Vector3{X: 0, Y: -0.5, Z: 0}, rl.Vector3{X: 10, Y: 1, Z: 10})
	p.AddObject(near)
	p.AddObject(far)

	hit, ok := p.Raycast(rl.Vector3{X: 0, Y: 5, Z: 0}, down, 10, near)
	if !ok || hit.GameObject != far {
		t.Errorf("Expected excluded object to be skipped, got %v", hit.GameObject)
	}
}

func TestRaycastIgnoresColliderContainingOrigin(t *testing.T) {
	p := NewPhysicsWorld()
	around := newBox("Around", rl.Vector3{X: 0, Y: 0, Z: 0}, rl.Vector3{X: 4, Y: 4, Z: 4})
	p.AddObject(around)

	if _, ok := p.Raycast(rl.Vector3{}, down, 10); ok {
		t.Error("Expected collider containing the origin to be ignored")
	}

	ball := newSphere("Ball", rl.Vector3{X: 10, Y: 0, Z: 0}, 1)
	p.AddObject(ball)
	if _, ok := p.Raycast(rl.Vector3{X: 10, Y: 0.5, Z: 0}, down, 10); ok {
		t.Error("Expected sphere containing the origin to be ignored")
	}
}

func TestRaycastSkipsRemovedAndInactive(t *testing.T) {
	scene := engine.NewScene("Test")
	p := NewPhysicsWorld()
	removed := newBox("Removed", rl.Vector3{X: 0, Y: 2, Z: 0}, rl.Vector3{X: 1, Y: 1, Z: 1})
	inactive := newBox("Inactive", rl.Vector3{X: 0, Y: 1, Z: 0}, rl.Vector3{X: 1, Y: 1, Z: 1})
	scene.AddGameObject(removed)
	scene.AddGameObject(inactive)
	p.AddObject(removed)
	p.AddObject(inactive)

	scene.Destroy(removed)
	inactive.Active = false

	if _, ok := p.Raycast(rl.Vector3{X: 0, Y: 5, Z: 0}, down, 10); ok {
		t.Error("Expected removed and inactive colliders to be skipped")
	}
}

func TestRaycastBoxSideNormal(t *testing.T) {
	p := NewPhysicsWorld()
	wall := newBox("Wall", rl.Vector3{X: 5, Y: 0, Z: 0}, rl.Vector3{X: 2, Y: 2, Z: 2})
	p.AddObject(wall)

	hit, ok := p.Raycast(rl.Vector3{}, rl.Vector3{X: 1, Y: 0, Z: 0}, 10)
	if !ok {
		t.Fatal("Expected to hit the wall")
	}
	if hit.Normal.X != -1 || hit.Normal.Y != 0 || hit.Normal.Z != 0 {
		t.Errorf("Expected normal (-1,0,0), got %v", hit.Normal)
	}
	if hit.Point.X != 4 {
		t.Errorf("Expected point on x=4, got %f", hit.Point.X)
	}
}

func TestRaycastSphere(t *testing.T) {
	p := NewPhysicsWorld()
	ball := newSphere("Ball", rl.Vector3{X: 0, Y: 0, Z: 5}, 1)
	p.AddObject(ball)

	hit, ok := p.Raycast(rl.Vector3{}, rl.Vector3{X: 0, Y: 0, Z: 2}, 10)
	if !ok {
		t.Fatal("Expected to hit the sphere")
	}
	if !approx(hit.Distance, 4) {
		t.Errorf("Expected distance 4, got %f", hit.Distance)
	}
	if !approx(hit.Normal.Z, -1) {
		t.Errorf("Expected normal facing the ray, got %v", hit.Normal)
	}
}

func TestRaycastUpwardHitsBlockBottom(t *testing.T) {
	p := NewPhysicsWorld()
	block := newBox("Block", rl.Vector3{X: 0, Y: 3, Z: 0}, rl.Vector3{X: 1, Y: 1, Z: 1})
	block.Kind = engine.KindQuestionBlock
	p.AddObject(block)

	hit, ok := p.Raycast(rl.Vector3{X: 0, Y: 1.6, Z: 0}, rl.Vector3{X: 0, Y: 1, Z: 0}, 1)
	if !ok {
		t.Fatal("Expected upward ray to hit the block")
	}
	if hit.Point.Y != 2.5 || hit.Normal.Y != -1 {
		t.Errorf("Expected bottom face hit at y=2.5, got point %v normal %v", hit.Point, hit.Normal)
	}
}
