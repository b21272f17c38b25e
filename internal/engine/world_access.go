package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// RaycastResult holds information about a raycast hit.
// Defined here to avoid circular imports with physics package.
type RaycastResult struct {
	GameObject *GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// WorldAccess provides components with access to world-level operations
// without creating circular import dependencies.
type WorldAccess interface {
	// Raycast returns the closest collider hit along direction within
	// maxDistance, skipping the excluded objects.
	Raycast(origin, direction rl.Vector3, maxDistance float32, exclude ...*GameObject) (RaycastResult, bool)
	// Spawn creates an entity of the given kind at position and adds it to
	// the scene. Returns nil for kinds that cannot be spawned at runtime.
	Spawn(kind Kind, position rl.Vector3) *GameObject
	// DestroyAfter schedules g for removal once delay seconds of simulated
	// time have elapsed, whatever happens to it in between.
	DestroyAfter(g *GameObject, delay float32)
	Destroy(g *GameObject)
}
