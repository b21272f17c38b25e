package engine

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// Hittable is implemented by components that react to being struck by a ray
// (a head-butt from below). OnHit returns true only when the hit caused a
// state transition.
type Hittable interface {
	OnHit(by *GameObject) bool
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}

// World returns the WorldAccess of the scene the component lives in, or nil.
func (b *BaseComponent) World() WorldAccess {
	if b.gameObject == nil || b.gameObject.Scene == nil {
		return nil
	}
	return b.gameObject.Scene.World
}
