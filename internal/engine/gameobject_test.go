package engine

import (
	"math"
	"testing"
)

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if obj.UID == 0 {
		t.Error("UID should not be 0")
	}

	if obj.components == nil {
		t.Error("components slice should be initialized")
	}

	if obj.Kind != KindNone {
		t.Errorf("Expected KindNone, got %v", obj.Kind)
	}
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	obj1 := NewGameObject("First")
	obj2 := NewGameObject("Second")
	obj3 := NewGameObject("Third")

	if obj1.UID == obj2.UID {
		t.Error("GameObjects should have unique UIDs")
	}
	if obj2.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
	if obj1.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Tags = []string{"terrain", "platform"}

	if !obj.HasTag("terrain") {
		t.Error("HasTag should return true for existing tag")
	}

	if obj.HasTag("player") {
		t.Error("HasTag should return false for non-existent tag")
	}

	obj2 := NewGameObject("Test2")
	if obj2.HasTag("anything") {
		t.Error("HasTag should return false when Tags is nil/empty")
	}
}

func TestGameObjectAddComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	if len(obj.components) != 1 {
		t.Errorf("Expected 1 component, got %d", len(obj.components))
	}

	if comp.gameObject != obj {
		t.Error("Component.gameObject should be set")
	}
}

func TestGameObjectGetComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	found := GetComponent[*BaseComponent](obj)
	if found != comp {
		t.Error("GetComponent failed to find component")
	}
}

type countingComponent struct {
	BaseComponent
	starts  int
	updates int
}

func (c *countingComponent) Start()           { c.starts++ }
func (c *countingComponent) Update(_ float32) { c.updates++ }

func TestGameObjectStartCalledOnce(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &countingComponent{}
	obj.AddComponent(comp)

	obj.Start()
	obj.Start()

	if comp.starts != 1 {
		t.Errorf("Expected Start to run once, ran %d times", comp.starts)
	}
}

func TestGameObjectLateComponentIsStarted(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Start()

	comp := &countingComponent{}
	obj.AddComponent(comp)

	if comp.starts != 1 {
		t.Errorf("Component added after Start should be started, got %d starts", comp.starts)
	}
}

func TestGameObjectUpdateSkipsInactive(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &countingComponent{}
	obj.AddComponent(comp)

	obj.Active = false
	obj.Update(0.016)

	if comp.updates != 0 {
		t.Errorf("Inactive object should not update components, got %d updates", comp.updates)
	}
}

type hitCounter struct {
	hits   int
	result bool
}

func (h *hitCounter) OnHit(by *GameObject) bool {
	h.hits++
	return h.result
}

func TestGameObjectOnHitWithoutCapability(t *testing.T) {
	obj := NewGameObject("Wall")

	if obj.OnHit(NewGameObject("Player")) {
		t.Error("Object without a Hittable should report false")
	}
}

func TestGameObjectOnHitDispatches(t *testing.T) {
	obj := NewGameObject("Block")
	h := &hitCounter{result: true}
	obj.SetHittable(h)

	if !obj.OnHit(nil) {
		t.Error("Expected OnHit to forward the capability's result")
	}
	if h.hits != 1 {
		t.Errorf("Expected 1 hit, got %d", h.hits)
	}
}

func TestGameObjectOnHitIgnoredAfterRemoval(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Block")
	h := &hitCounter{result: true}
	obj.SetHittable(h)
	scene.AddGameObject(obj)

	scene.Destroy(obj)

	if obj.OnHit(nil) {
		t.Error("Removed object should not react to hits")
	}
	if h.hits != 0 {
		t.Errorf("Expected 0 hits, got %d", h.hits)
	}
}

func TestTransformForward(t *testing.T) {
	tr := Transform{}
	f := tr.Forward()
	if f.X != 0 || f.Z != 1 {
		t.Errorf("Expected yaw 0 to face +Z, got %v", f)
	}

	tr.Rotation.Y = 90
	f = tr.Forward()
	if math.Abs(float64(f.X-1)) > 1e-6 || math.Abs(float64(f.Z)) > 1e-6 {
		t.Errorf("Expected yaw 90 to face +X, got %v", f)
	}
}

func TestKindCollectible(t *testing.T) {
	if !KindCoin.Collectible() || !KindStar.Collectible() {
		t.Error("Coins and stars should be collectible")
	}
	if KindQuestionBlock.Collectible() || KindTerrain.Collectible() {
		t.Error("Blocks and terrain should not be collectible")
	}
}
