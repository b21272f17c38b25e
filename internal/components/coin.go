package components

import (
	"math"

	"platformer/internal/engine"
)

type CoinState int

const (
	CoinActive CoinState = iota
	CoinRemoved
)

// Coin is a collectible that bobs around its spawn height and spins.
// Stars use the same component on a KindStar object.
type Coin struct {
	engine.BaseComponent
	BobAmplitude float32
	BobSpeed     float32 // radians per second
	SpinSpeed    float32 // degrees per second

	SpawnY float32

	phase float32
	state CoinState
}

func NewCoin() *Coin {
	return &Coin{
		BobAmplitude: 0.05,
		BobSpeed:     5,
		SpinSpeed:    100,
	}
}

func (c *Coin) Start() {
	if g := c.GetGameObject(); g != nil {
		c.SpawnY = g.Transform.Position.Y
	}
}

func (c *Coin) State() CoinState {
	return c.state
}

func (c *Coin) Active() bool {
	return c.state == CoinActive
}

// Phase returns the bob phase in [0, 2π).
func (c *Coin) Phase() float32 {
	return c.phase
}

// Collect marks the coin as picked up. Returns false if it was already gone.
func (c *Coin) Collect() bool {
	return c.remove()
}

// Despawn removes the coin without it being picked up, e.g. on lifetime
// expiry. Returns false if it was already gone.
func (c *Coin) Despawn() bool {
	return c.remove()
}

func (c *Coin) remove() bool {
	if c.state == CoinRemoved {
		return false
	}
	c.state = CoinRemoved
	return true
}

func (c *Coin) Update(deltaTime float32) {
	if c.state != CoinActive {
		return
	}
	g := c.GetGameObject()
	if g == nil {
		return
	}

	c.phase = float32(math.Mod(float64(c.phase+c.BobSpeed*deltaTime), 2*math.Pi))
	g.Transform.Position.Y = c.SpawnY + c.BobAmplitude*float32(math.Sin(float64(c.phase)))
	g.Transform.Rotation.Y = wrapDegrees(g.Transform.Rotation.Y + c.SpinSpeed*deltaTime)
}
