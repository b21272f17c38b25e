package game

import (
	"fmt"

	"platformer/internal/audio"
	"platformer/internal/camera"
	"platformer/internal/components"
	"platformer/internal/config"
	"platformer/internal/engine"
	"platformer/internal/hud"
	"platformer/internal/input"
	"platformer/internal/physics"
	"platformer/internal/world"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// BlockCheckPolicy selects the extra question block test run after the
// actor has moved. The ceiling ray inside the controller always runs.
type BlockCheckPolicy int

const (
	// BlockCheckRaycast relies on the ceiling ray alone.
	BlockCheckRaycast BlockCheckPolicy = iota
	// BlockCheckProximity triggers an idle block when the actor's centre
	// is above the block's top and within one unit of it on x and z.
	// Velocity plays no part and the actor is not bounced.
	BlockCheckProximity
	// BlockCheckUnderside triggers idle blocks overlapping the rising
	// actor's head, grown by the proximity margin, and bounces the actor
	// like the ceiling ray does.
	BlockCheckUnderside
)

func (p BlockCheckPolicy) String() string {
	switch p {
	case BlockCheckProximity:
		return "proximity"
	case BlockCheckUnderside:
		return "underside"
	default:
		return "raycast"
	}
}

func ParseBlockCheckPolicy(s string) (BlockCheckPolicy, error) {
	switch s {
	case "", "raycast":
		return BlockCheckRaycast, nil
	case "proximity":
		return BlockCheckProximity, nil
	case "underside":
		return BlockCheckUnderside, nil
	default:
		return BlockCheckRaycast, fmt.Errorf("unknown block check %q", s)
	}
}

// Game runs the frame loop over a built world.
type Game struct {
	World  *world.World
	Camera *camera.FollowCamera
	HUD    hud.HUD
	Audio  audio.Player
	Frame  int
	Won    bool

	// BlocksTriggered counts question blocks triggered this session.
	BlocksTriggered int

	rules  config.RulesConfig
	sounds config.AudioConfig
	policy BlockCheckPolicy
	logger *log.Logger
}

// New wires the collaborators to the world's events and points the camera
// at the player. A nil HUD or audio player discards updates.
func New(w *world.World, h hud.HUD, player audio.Player, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.Default()
	}
	if h == nil {
		h = hud.Multi{}
	}
	if player == nil {
		player = audio.Nop{}
	}

	cfg := w.Config()
	policy, err := ParseBlockCheckPolicy(cfg.Rules.BlockCheck)
	if err != nil {
		return nil, fmt.Errorf("creating game: %w", err)
	}

	g := &Game{
		World:  w,
		HUD:    h,
		Audio:  player,
		rules:  cfg.Rules,
		sounds: cfg.Audio,
		policy: policy,
		logger: logger,
	}

	cam := camera.New(cfg.Camera.Offset.Vector3())
	cam.Damping = cfg.Camera.Damping
	cam.LookAhead = cfg.Camera.LookAhead
	cam.LookHeight = cfg.Camera.LookHeight
	cam.Fovy = cfg.Camera.Fovy
	cam.Follow.Set(w.Player)
	cam.Snap(w.Scene)
	g.Camera = cam

	w.Controller.OnJump.AddListener(func() {
		g.play(audio.SoundPop, g.sounds.Jump)
	})
	w.Controller.OnHeadHit.AddListener(func(block *engine.GameObject) {
		g.logger.Debug("head hit", "block", block.Name, "frame", g.Frame)
	})
	w.OnBlockTriggered.AddListener(func(block *engine.GameObject) {
		g.BlocksTriggered++
		g.play(audio.SoundPop, g.sounds.Block)
	})

	h.CoinsChanged(0)
	if w.StarTotal > 0 {
		h.StarsChanged(0, w.StarTotal)
	}
	return g, nil
}

func (g *Game) play(id audio.SoundID, s config.SoundConfig) {
	if !g.sounds.Enabled {
		return
	}
	g.Audio.Play(id, s.Pitch, s.Volume)
}

// Tick advances the game by one frame. It returns false when the player
// asked to quit.
func (g *Game) Tick(dt float32, in input.State) bool {
	if in.Quit {
		return false
	}
	if in.Reset {
		g.reset()
	}

	g.World.Controller.Step(dt, in)
	g.collect()
	switch g.policy {
	case BlockCheckProximity:
		g.checkBlocksBelow()
	case BlockCheckUnderside:
		g.checkBlocksOverhead()
	}

	g.World.Scene.Update(dt)
	g.Camera.Update(g.World.Scene, dt)
	g.checkBoundary()
	if n := g.World.Scene.PendingRemovals(); n > 0 {
		g.logger.Debug("removing objects", "count", n, "frame", g.Frame)
	}
	g.World.Scene.Flush()

	g.Frame++
	return true
}

// reset puts the player back at the reset point and clears the coin count.
// Collected coins and triggered blocks stay as they are.
func (g *Game) reset() {
	c := g.World.Controller
	c.Teleport(g.rules.ResetPoint.Vector3())
	c.Coins = 0
	g.HUD.CoinsChanged(0)
	g.logger.Info("reset", "frame", g.Frame)
}

// collect picks up every active coin and star within reach of the player.
func (g *Game) collect() {
	c := g.World.Controller
	pos := g.World.Player.Transform.Position

	for _, obj := range g.World.Scene.FindByKind(engine.KindCoin) {
		if !g.pickUp(obj, pos, g.rules.CollectRadius) {
			continue
		}
		c.Coins++
		g.HUD.CoinsChanged(c.Coins)
		g.play(audio.SoundCoin, g.sounds.Coin)
		g.logger.Debug("coin collected", "coin", obj.Name, "total", c.Coins)
	}

	for _, obj := range g.World.Scene.FindByKind(engine.KindStar) {
		if !g.pickUp(obj, pos, g.rules.StarCollectRadius) {
			continue
		}
		c.Stars++
		g.HUD.StarsChanged(c.Stars, g.World.StarTotal)
		g.play(audio.SoundCoin, g.sounds.Coin)
		g.logger.Info("star collected", "star", obj.Name, "collected", c.Stars, "total", g.World.StarTotal)

		if !g.Won && c.Stars >= g.World.StarTotal {
			g.Won = true
			g.HUD.Announce(g.rules.WinMessage)
		}
	}
}

func (g *Game) pickUp(obj *engine.GameObject, pos rl.Vector3, radius float32) bool {
	coin := engine.GetComponent[*components.Coin](obj)
	if coin == nil || !coin.Active() {
		return false
	}
	if rl.Vector3Distance(pos, obj.Transform.Position) >= radius {
		return false
	}
	if !coin.Collect() {
		return false
	}
	g.World.Destroy(obj)
	return true
}

// idleBlocks returns the question blocks that can still be triggered.
func (g *Game) idleBlocks() []*engine.GameObject {
	var blocks []*engine.GameObject
	for _, obj := range g.World.Scene.FindByKind(engine.KindQuestionBlock) {
		qb := engine.GetComponent[*components.QuestionBlock](obj)
		if qb != nil && qb.State() == components.BlockIdle {
			blocks = append(blocks, obj)
		}
	}
	return blocks
}

// checkBlocksBelow triggers idle blocks the player is standing on or
// passing over.
func (g *Game) checkBlocksBelow() {
	player := g.World.Player
	pos := player.Transform.Position

	for _, obj := range g.idleBlocks() {
		b := obj.Transform.Position
		if pos.Y <= b.Y+0.5 || abs(pos.X-b.X) >= 1 || abs(pos.Z-b.Z) >= 1 {
			continue
		}
		if obj.OnHit(player) {
			g.logger.Debug("block passed over", "block", obj.Name, "frame", g.Frame)
		}
	}
}

// checkBlocksOverhead triggers idle blocks above the rising player whose
// bounds overlap the player's, grown by the proximity margin.
func (g *Game) checkBlocksOverhead() {
	c := g.World.Controller
	if c.VelocityY() <= 0 {
		return
	}
	player := g.World.Player
	pos := player.Transform.Position
	size := rl.Vector3{X: c.HalfWidth * 2, Y: c.HalfHeight * 2, Z: c.HalfWidth * 2}
	reach := physics.NewAABBFromCenter(pos, size).Expand(g.rules.ProximityMargin)

	for _, obj := range g.idleBlocks() {
		box := engine.GetComponent[*components.BoxCollider](obj)
		if box == nil {
			continue
		}
		bounds := physics.BoxBounds(box)
		if bounds.Min.Y < pos.Y || !reach.Intersects(bounds) {
			continue
		}
		if obj.OnHit(player) {
			c.SetVelocityY(c.VelocityY() * c.CeilingBounce)
			c.OnHeadHit.Invoke(obj)
			return
		}
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// checkBoundary respawns the player after falling below the death plane.
func (g *Game) checkBoundary() {
	pos := g.World.Player.Transform.Position
	if pos.Y >= g.rules.DeathY {
		return
	}
	g.World.Controller.Teleport(g.rules.RespawnPoint.Vector3())
	g.logger.Info("fell off the world", "x", pos.X, "z", pos.Z, "frame", g.Frame)
}
