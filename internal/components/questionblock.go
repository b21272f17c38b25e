package components

import (
	"math"

	"platformer/internal/engine"

	"github.com/gen2brain/raylib-go/easings"
)

type BlockState int

const (
	BlockIdle BlockState = iota
	BlockTriggered
)

// QuestionBlock releases one coin the first time it is struck from below,
// then plays a decaying bounce and stays solid.
type QuestionBlock struct {
	engine.BaseComponent
	BounceDuration  float32
	BounceAmplitude float32
	BounceFrequency float32
	CoinOffset      float32 // spawned coin height above the block
	CoinLifetime    float32 // seconds before the spawned coin is removed
	Color           string  // current indicator colour
	HitColor        string

	RestY float32

	// OnTriggered fires once with the spawned coin (nil if none could be
	// spawned).
	OnTriggered engine.EventWithArg[*engine.GameObject]

	state       BlockState
	bounceTimer float32
}

func NewQuestionBlock() *QuestionBlock {
	return &QuestionBlock{
		BounceDuration:  1,
		BounceAmplitude: 0.1,
		BounceFrequency: 10,
		CoinOffset:      2,
		CoinLifetime:    2,
		Color:           "orange",
		HitColor:        "gray",
	}
}

// SetGameObject also installs the block as the object's hit capability.
func (q *QuestionBlock) SetGameObject(g *engine.GameObject) {
	q.BaseComponent.SetGameObject(g)
	g.SetHittable(q)
}

func (q *QuestionBlock) Start() {
	if g := q.GetGameObject(); g != nil {
		q.RestY = g.Transform.Position.Y
	}
}

func (q *QuestionBlock) State() BlockState {
	return q.state
}

func (q *QuestionBlock) BounceTimer() float32 {
	return q.bounceTimer
}

// OnHit implements engine.Hittable.
func (q *QuestionBlock) OnHit(by *engine.GameObject) bool {
	return q.Trigger()
}

// Trigger moves an idle block to Triggered: it starts the bounce, greys
// out, and spawns a coin that is removed after CoinLifetime. Triggering
// again has no effect and returns false.
func (q *QuestionBlock) Trigger() bool {
	if q.state == BlockTriggered {
		return false
	}
	q.state = BlockTriggered
	q.bounceTimer = q.BounceDuration
	q.Color = q.HitColor

	var coin *engine.GameObject
	g := q.GetGameObject()
	if w := q.World(); w != nil && g != nil {
		pos := g.Transform.Position
		pos.Y = q.RestY + q.CoinOffset
		coin = w.Spawn(engine.KindCoin, pos)
		if coin != nil {
			w.DestroyAfter(coin, q.CoinLifetime)
		}
	}
	q.OnTriggered.Invoke(coin)
	return true
}

// Update runs the bounce: the timer is decremented first, then the block
// is displaced. The final frame lands exactly on the resting height.
func (q *QuestionBlock) Update(deltaTime float32) {
	if q.bounceTimer <= 0 {
		return
	}
	g := q.GetGameObject()
	if g == nil {
		return
	}

	q.bounceTimer -= deltaTime
	if q.bounceTimer <= 0 {
		q.bounceTimer = 0
		g.Transform.Position.Y = q.RestY
		return
	}

	elapsed := q.BounceDuration - q.bounceTimer
	envelope := easings.QuadOut(elapsed, 1, -1, q.BounceDuration)
	wave := float32(math.Sin(float64(q.bounceTimer * q.BounceFrequency)))
	g.Transform.Position.Y = q.RestY + q.BounceAmplitude*envelope*wave
}
