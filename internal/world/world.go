package world

import (
	"fmt"
	"math/rand"

	"platformer/internal/assets"
	"platformer/internal/components"
	"platformer/internal/config"
	"platformer/internal/engine"
	"platformer/internal/physics"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// World owns the scene and the collider registry and builds the level
// from configuration. It is the engine.WorldAccess handed to components.
type World struct {
	Scene      *engine.Scene
	Physics    *physics.PhysicsWorld
	Player     *engine.GameObject
	Controller *components.CharacterController
	Ground     *engine.GameObject
	StarTotal  int

	// OnBlockTriggered fires with the block object after a question block
	// has released its coin.
	OnBlockTriggered engine.EventWithArg[*engine.GameObject]

	cfg     config.Config
	logger  *log.Logger
	rng     *rand.Rand
	spawned int
}

// New builds the level described by cfg and starts every object.
func New(cfg config.Config, logger *log.Logger) (*World, error) {
	if logger == nil {
		logger = log.Default()
	}
	policy, err := components.ParseTurnPolicy(cfg.Player.TurnPolicy)
	if err != nil {
		return nil, fmt.Errorf("building player: %w", err)
	}

	w := &World{
		Scene:   engine.NewScene("Main"),
		Physics: physics.NewPhysicsWorld(),
		cfg:     cfg,
		logger:  logger,
		rng:     rand.New(rand.NewSource(cfg.World.Seed)),
	}
	w.Scene.World = w
	w.Scene.OnRemoved.AddListener(func(g *engine.GameObject) {
		w.Physics.RemoveObject(g)
	})

	w.createGround()
	w.createPlatforms()
	w.createHills()
	w.createTrees()
	w.createBushes()
	for i, pos := range w.placements(cfg.World.Coins) {
		w.addCoin(fmt.Sprintf("Coin_%d", i), engine.KindCoin, pos)
	}
	for i, pos := range w.placements(cfg.World.Blocks) {
		w.addBlock(fmt.Sprintf("Block_%d", i), pos)
	}
	for i, pos := range cfg.World.Stars {
		w.addCoin(fmt.Sprintf("Star_%d", i), engine.KindStar, pos.Vector3())
	}
	w.StarTotal = len(cfg.World.Stars)
	w.createPlayer(policy)

	w.Scene.Start()

	logger.Info("world built",
		"objects", len(w.Scene.GameObjects),
		"colliders", w.Physics.Count(),
		"coins", len(w.Scene.FindByKind(engine.KindCoin)),
		"blocks", len(w.Scene.FindByKind(engine.KindQuestionBlock)),
		"trees", len(w.Scene.FindByTag("tree")),
		"decorations", len(w.Scene.FindByTag("decoration")),
		"stars", w.StarTotal,
		"seed", cfg.World.Seed)
	return w, nil
}

// Config returns the configuration the world was built from.
func (w *World) Config() config.Config {
	return w.cfg
}

func (w *World) createGround() {
	g := w.cfg.World.Ground
	size := rl.NewVector3(g.Size, g.Thickness, g.Size)
	w.Ground = w.addBox("Ground", rl.NewVector3(0, -g.Thickness/2, 0), size, g.Color)
	w.Ground.Tags = append(w.Ground.Tags, "ground")
}

func (w *World) createPlatforms() {
	for i, p := range w.cfg.World.Platforms {
		w.addBox(fmt.Sprintf("Platform_%d", i), p.Position.Vector3(), p.Size.Vector3(), p.Color)
	}

	scatter := w.cfg.World.RandomPlatforms
	n := 0
	for _, height := range scatter.Heights {
		for i := 0; i < scatter.PerHeight; i++ {
			pos := rl.NewVector3(w.randSpread(scatter.Spread), height, w.randSpread(scatter.Spread))
			w.addBox(fmt.Sprintf("RandomPlatform_%d", n), pos, scatter.Size.Vector3(), scatter.Color)
			n++
		}
	}
}

// createHills drops spheres centred on the ground plane, so only the upper
// half shows.
func (w *World) createHills() {
	hills := w.cfg.World.Hills
	for i := 0; i < hills.Count; i++ {
		pos := rl.NewVector3(w.randSpread(hills.Spread), 0, w.randSpread(hills.Spread))
		radius := w.randRange(hills.MinRadius, hills.MaxRadius)

		g := engine.NewGameObject(fmt.Sprintf("Hill_%d", i))
		g.Kind = engine.KindTerrain
		g.Tags = []string{"terrain", "hill"}
		g.Transform.Position = pos
		g.AddComponent(components.NewSphereCollider(radius))
		g.AddComponent(components.NewMeshRenderer(components.MeshSphere, assets.LookupColor(hills.Color), rl.NewVector3(radius, radius, radius)))
		w.Scene.AddGameObject(g)
		w.Physics.AddObject(g)
	}
}

// createTrees places solid trunks standing on the ground. The canopy sits
// on the trunk top and has no collider.
func (w *World) createTrees() {
	trees := w.cfg.World.Trees
	for i := 0; i < trees.Count; i++ {
		height := w.randRange(trees.MinTrunkHeight, trees.MaxTrunkHeight)
		x, z := w.randSpread(trees.Spread), w.randSpread(trees.Spread)

		size := rl.NewVector3(trees.TrunkWidth, height, trees.TrunkWidth)
		trunk := w.addBox(fmt.Sprintf("Tree_%d", i), rl.NewVector3(x, height/2, z), size, trees.TrunkColor)
		trunk.Tags = append(trunk.Tags, "tree")

		radius := w.randRange(trees.MinCanopy, trees.MaxCanopy) / 2
		shade := rl.NewColor(0, uint8(100+w.rng.Intn(51)), 0, 255)
		w.addDecoration(fmt.Sprintf("Canopy_%d", i), rl.NewVector3(x, height, z), radius, shade)
	}
}

// createBushes scatters spheres resting on the ground.
func (w *World) createBushes() {
	bushes := w.cfg.World.Bushes
	for i := 0; i < bushes.Count; i++ {
		radius := w.randRange(bushes.MinSize, bushes.MaxSize) / 2
		pos := rl.NewVector3(w.randSpread(bushes.Spread), radius, w.randSpread(bushes.Spread))
		shade := rl.NewColor(uint8(w.rng.Intn(256)), uint8(100+w.rng.Intn(101)), 0, 255)
		w.addDecoration(fmt.Sprintf("Bush_%d", i), pos, radius, shade)
	}
}

// addDecoration adds a sphere that is drawn but never collides.
func (w *World) addDecoration(name string, pos rl.Vector3, radius float32, color rl.Color) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Tags = []string{"decoration"}
	g.Transform.Position = pos
	g.AddComponent(components.NewMeshRenderer(components.MeshSphere, color, rl.NewVector3(radius, radius, radius)))
	w.Scene.AddGameObject(g)
	return g
}

func (w *World) addBox(name string, pos, size rl.Vector3, color string) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Kind = engine.KindTerrain
	g.Tags = []string{"terrain"}
	g.Transform.Position = pos
	g.AddComponent(components.NewBoxCollider(size))
	mr := components.NewMeshRenderer(components.MeshCube, assets.LookupColor(color), size)
	mr.Wires = true
	g.AddComponent(mr)
	w.Scene.AddGameObject(g)
	w.Physics.AddObject(g)
	return g
}

// addCoin creates a coin or star. Collectibles have no collider; they are
// picked up by distance.
func (w *World) addCoin(name string, kind engine.Kind, pos rl.Vector3) *engine.GameObject {
	cc := w.cfg.Coin
	g := engine.NewGameObject(name)
	g.Kind = kind
	g.Tags = []string{"collectible"}
	g.Transform.Position = pos

	coin := components.NewCoin()
	coin.BobAmplitude = cc.BobAmplitude
	coin.BobSpeed = cc.BobSpeed
	coin.SpinSpeed = cc.SpinSpeed
	g.AddComponent(coin)

	r := cc.Radius
	if kind == engine.KindStar {
		g.AddComponent(components.NewMeshRenderer(components.MeshSphere, assets.LookupColor(cc.StarColor), rl.NewVector3(r*2, r*2, r*2)))
	} else {
		g.AddComponent(components.NewMeshRenderer(components.MeshCube, assets.LookupColor(cc.Color), rl.NewVector3(r*2, r*2, r/2)))
	}
	w.Scene.AddGameObject(g)
	return g
}

func (w *World) addBlock(name string, pos rl.Vector3) *engine.GameObject {
	bc := w.cfg.Block
	g := engine.NewGameObject(name)
	g.Kind = engine.KindQuestionBlock
	g.Tags = []string{"block"}
	g.Transform.Position = pos

	size := rl.NewVector3(bc.Size, bc.Size, bc.Size)
	g.AddComponent(components.NewBoxCollider(size))

	qb := components.NewQuestionBlock()
	qb.BounceDuration = bc.BounceDuration
	qb.BounceAmplitude = bc.BounceAmplitude
	qb.BounceFrequency = bc.BounceFrequency
	qb.CoinOffset = bc.CoinOffset
	qb.CoinLifetime = bc.CoinLifetime
	qb.Color = bc.Color
	qb.HitColor = bc.HitColor
	g.AddComponent(qb)

	mr := components.NewMeshRenderer(components.MeshCube, assets.LookupColor(bc.Color), size)
	mr.Wires = true
	g.AddComponent(mr)

	qb.OnTriggered.AddListener(func(coin *engine.GameObject) {
		mr.Color = assets.LookupColor(qb.Color)
		w.logger.Debug("block triggered", "block", g.Name, "coin", coin != nil)
		w.OnBlockTriggered.Invoke(g)
	})

	w.Scene.AddGameObject(g)
	w.Physics.AddObject(g)
	return g
}

func (w *World) createPlayer(policy components.TurnPolicy) {
	pc := w.cfg.Player
	g := engine.NewGameObject("Player")
	g.Kind = engine.KindActor
	g.Tags = []string{"player"}
	g.Transform.Position = pc.Spawn.Vector3()
	g.Transform.Scale = rl.NewVector3(pc.HalfWidth*2, pc.HalfHeight*2, pc.HalfWidth*2)

	c := components.NewCharacterController()
	c.Speed = pc.Speed
	c.RunMultiplier = pc.RunMultiplier
	c.JumpImpulse = pc.JumpImpulse
	c.Gravity = pc.Gravity
	c.HalfHeight = pc.HalfHeight
	c.HalfWidth = pc.HalfWidth
	c.TurnSpeed = pc.TurnSpeed
	c.Policy = policy
	c.ProbeOffset = pc.ProbeOffset
	c.GroundMargin = pc.GroundMargin
	c.CeilingMargin = pc.CeilingMargin
	c.CeilingBounce = pc.CeilingBounce
	c.SquashBase = pc.HalfHeight * 2
	g.AddComponent(c)

	g.AddComponent(components.NewMeshRenderer(components.MeshCube, assets.LookupColor(pc.Color), rl.NewVector3(1, 1, 1)))

	w.Scene.AddGameObject(g)
	w.Player = g
	w.Controller = c
}

// placements returns the fixed positions followed by the random ones.
func (w *World) placements(p config.EntityPlacements) []rl.Vector3 {
	out := make([]rl.Vector3, 0, len(p.Positions)+p.Count)
	for _, pos := range p.Positions {
		out = append(out, pos.Vector3())
	}
	for i := 0; i < p.Count; i++ {
		out = append(out, rl.NewVector3(w.randSpread(p.Spread), p.Height, w.randSpread(p.Spread)))
	}
	return out
}

// randRange returns a value in [lo, hi).
func (w *World) randRange(lo, hi float32) float32 {
	return lo + w.rng.Float32()*(hi-lo)
}

// randSpread returns an integer coordinate in [-spread, spread].
func (w *World) randSpread(spread int) float32 {
	if spread <= 0 {
		return 0
	}
	return float32(w.rng.Intn(2*spread+1) - spread)
}

// Raycast implements engine.WorldAccess.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, exclude ...*engine.GameObject) (engine.RaycastResult, bool) {
	hit, ok := w.Physics.Raycast(origin, direction, maxDistance, exclude...)
	if !ok {
		return engine.RaycastResult{}, false
	}
	return engine.RaycastResult{
		GameObject: hit.GameObject,
		Point:      hit.Point,
		Normal:     hit.Normal,
		Distance:   hit.Distance,
	}, true
}

// Spawn implements engine.WorldAccess. Coins and stars can be spawned at
// runtime; the new object is started before it is returned.
func (w *World) Spawn(kind engine.Kind, position rl.Vector3) *engine.GameObject {
	if !kind.Collectible() {
		return nil
	}
	w.spawned++
	g := w.addCoin(fmt.Sprintf("Spawned_%s_%d", kind, w.spawned), kind, position)
	g.Start()
	w.logger.Debug("spawned", "kind", kind, "name", g.Name, "position", position)
	return g
}

// DestroyAfter implements engine.WorldAccess. The countdown rides on the
// target itself, so it stops if the target is removed first.
func (w *World) DestroyAfter(g *engine.GameObject, delay float32) {
	if g == nil || g.Removed() {
		return
	}
	if delay <= 0 {
		w.expire(g)
		return
	}
	lifetime := components.NewLifetime(delay)
	lifetime.OnExpire.AddListener(func() {
		w.expire(g)
	})
	g.AddComponent(lifetime)
}

func (w *World) expire(g *engine.GameObject) {
	if coin := engine.GetComponent[*components.Coin](g); coin != nil {
		coin.Despawn()
	}
	w.Destroy(g)
}

// Destroy implements engine.WorldAccess.
func (w *World) Destroy(g *engine.GameObject) {
	w.Scene.Destroy(g)
}
