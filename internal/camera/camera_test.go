package camera

import (
	"testing"

	"platformer/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func setup() (*engine.Scene, *engine.GameObject, *FollowCamera) {
	scene := engine.NewScene("Test")
	player := engine.NewGameObject("Player")
	scene.AddGameObject(player)

	cam := New(rl.Vector3{X: 0, Y: 8, Z: -12})
	cam.Follow.Set(player)
	return scene, player, cam
}

func TestFollowCameraConvergesMonotonically(t *testing.T) {
	scene, player, cam := setup()
	player.Transform.Position = rl.Vector3{X: 20, Y: 1, Z: 5}
	desired := rl.Vector3Add(player.Transform.Position, cam.Offset)

	prev := rl.Vector3Distance(cam.Position, desired)
	for i := 0; i < 120; i++ {
		cam.Update(scene, 1.0/60)
		d := rl.Vector3Distance(cam.Position, desired)
		if d > prev {
			t.Fatalf("Expected distance to shrink, went from %f to %f on frame %d", prev, d, i)
		}
		prev = d
	}
	if prev > 0.01 {
		t.Errorf("Expected camera to settle near the target, still %f away", prev)
	}
}

func TestFollowCameraNoOvershoot(t *testing.T) {
	scene, player, cam := setup()
	player.Transform.Position = rl.Vector3{X: 10}

	cam.Update(scene, 0.1)

	// Lerp factor 0.6: x moves 6 of the 10 units
	if cam.Position.X < 5.99 || cam.Position.X > 6.01 {
		t.Errorf("Expected x 6, got %f", cam.Position.X)
	}
}

func TestFollowCameraClampsLargeStep(t *testing.T) {
	scene, player, cam := setup()
	player.Transform.Position = rl.Vector3{X: 10}

	cam.Update(scene, 1)

	want := rl.Vector3Add(player.Transform.Position, cam.Offset)
	if cam.Position != want {
		t.Errorf("Expected clamped lerp to land on %v, got %v", want, cam.Position)
	}
}

func TestFollowCameraLooksAhead(t *testing.T) {
	scene, player, cam := setup()
	player.Transform.Position = rl.Vector3{X: 1, Y: 2, Z: 3}

	cam.Update(scene, 1.0/60)

	want := rl.Vector3{X: 1, Y: 4, Z: 6}
	if cam.Target != want {
		t.Errorf("Expected look target %v, got %v", want, cam.Target)
	}
}

func TestFollowCameraHoldsWithoutTarget(t *testing.T) {
	scene, player, cam := setup()
	cam.Position = rl.Vector3{X: 1, Y: 1, Z: 1}

	scene.Destroy(player)
	cam.Update(scene, 1.0/60)

	if cam.Position != (rl.Vector3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("Expected camera to hold still, got %v", cam.Position)
	}
}

func TestFollowCameraDoesNotMutateTarget(t *testing.T) {
	scene, player, cam := setup()
	player.Transform.Position = rl.Vector3{X: 4, Y: 5, Z: 6}
	before := player.Transform

	cam.Snap(scene)
	cam.Update(scene, 1.0/60)

	if player.Transform != before {
		t.Error("Expected camera not to modify the followed object")
	}
	if cam.Position != (rl.Vector3{X: 4, Y: 13, Z: -6}) {
		t.Errorf("Expected snapped position (4,13,-6), got %v", cam.Position)
	}
}
