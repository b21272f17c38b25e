// Package config provides YAML-based configuration for the platformer:
// actor tuning, camera, interactables, level layout and window settings.
package config

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full game configuration.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Player PlayerConfig `yaml:"player"`
	Camera CameraConfig `yaml:"camera"`
	Coin   CoinConfig   `yaml:"coin"`
	Block  BlockConfig  `yaml:"block"`
	Rules  RulesConfig  `yaml:"rules"`
	Audio  AudioConfig  `yaml:"audio"`
	World  WorldConfig  `yaml:"world"`
}

// WindowConfig defines the raylib window.
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	TargetFPS int32  `yaml:"target_fps"`
	Font      string `yaml:"font"` // HUD TTF file, empty for the raylib default
}

// PlayerConfig defines the kinematic actor.
type PlayerConfig struct {
	Spawn         Vec3    `yaml:"spawn"`
	Speed         float32 `yaml:"speed"`
	RunMultiplier float32 `yaml:"run_multiplier"`
	JumpImpulse   float32 `yaml:"jump_impulse"`
	Gravity       float32 `yaml:"gravity"`
	HalfHeight    float32 `yaml:"half_height"`
	HalfWidth     float32 `yaml:"half_width"`
	TurnSpeed     float32 `yaml:"turn_speed"`  // degrees per second
	TurnPolicy    string  `yaml:"turn_policy"` // "continuous" or "direct"
	ProbeOffset   float32 `yaml:"probe_offset"`
	GroundMargin  float32 `yaml:"ground_margin"`
	CeilingMargin float32 `yaml:"ceiling_margin"`
	CeilingBounce float32 `yaml:"ceiling_bounce"`
	Color         string  `yaml:"color"`
}

// CameraConfig defines the follow camera.
type CameraConfig struct {
	Offset     Vec3    `yaml:"offset"`
	Damping    float32 `yaml:"damping"`
	LookAhead  float32 `yaml:"look_ahead"`
	LookHeight float32 `yaml:"look_height"`
	Fovy       float32 `yaml:"fovy"`
}

// CoinConfig defines coin and star visuals.
type CoinConfig struct {
	Radius       float32 `yaml:"radius"`
	BobAmplitude float32 `yaml:"bob_amplitude"`
	BobSpeed     float32 `yaml:"bob_speed"`  // radians per second
	SpinSpeed    float32 `yaml:"spin_speed"` // degrees per second
	Color        string  `yaml:"color"`
	StarColor    string  `yaml:"star_color"`
}

// BlockConfig defines question blocks.
type BlockConfig struct {
	Size            float32 `yaml:"size"`
	BounceDuration  float32 `yaml:"bounce_duration"`
	BounceAmplitude float32 `yaml:"bounce_amplitude"`
	BounceFrequency float32 `yaml:"bounce_frequency"`
	CoinOffset      float32 `yaml:"coin_offset"`
	CoinLifetime    float32 `yaml:"coin_lifetime"`
	Color           string  `yaml:"color"`
	HitColor        string  `yaml:"hit_color"`
}

// RulesConfig defines interaction and boundary rules.
type RulesConfig struct {
	CollectRadius     float32 `yaml:"collect_radius"`
	StarCollectRadius float32 `yaml:"star_collect_radius"`
	DeathY            float32 `yaml:"death_y"`
	RespawnPoint      Vec3    `yaml:"respawn_point"`
	ResetPoint        Vec3    `yaml:"reset_point"`
	BlockCheck        string  `yaml:"block_check"` // "raycast", "proximity" or "underside"
	ProximityMargin   float32 `yaml:"proximity_margin"`
	WinMessage        string  `yaml:"win_message"`
}

// AudioConfig defines sound files and playback parameters.
type AudioConfig struct {
	Enabled bool        `yaml:"enabled"`
	Dir     string      `yaml:"dir"`
	Jump    SoundConfig `yaml:"jump"`
	Block   SoundConfig `yaml:"block"`
	Coin    SoundConfig `yaml:"coin"`
}

// SoundConfig is one playback cue.
type SoundConfig struct {
	Pitch  float32 `yaml:"pitch"`
	Volume float32 `yaml:"volume"`
}

// WorldConfig defines the level layout. Explicit positions are placed first,
// then Count objects are scattered with the seeded generator.
type WorldConfig struct {
	Seed            int64            `yaml:"seed"`
	Ground          GroundConfig     `yaml:"ground"`
	Platforms       []BoxConfig      `yaml:"platforms"`
	RandomPlatforms PlatformScatter  `yaml:"random_platforms"`
	Hills           HillScatter      `yaml:"hills"`
	Trees           TreeScatter      `yaml:"trees"`
	Bushes          BushScatter      `yaml:"bushes"`
	Coins           EntityPlacements `yaml:"coins"`
	Blocks          EntityPlacements `yaml:"blocks"`
	Stars           []Vec3           `yaml:"stars"`
}

// GroundConfig defines the main ground slab. Its top face is at y=0.
type GroundConfig struct {
	Size      float32 `yaml:"size"`
	Thickness float32 `yaml:"thickness"`
	Texture   string  `yaml:"texture"`
	Color     string  `yaml:"color"`
}

// BoxConfig is a static box placed by hand.
type BoxConfig struct {
	Position Vec3   `yaml:"position"`
	Size     Vec3   `yaml:"size"`
	Color    string `yaml:"color"`
}

// PlatformScatter places PerHeight random platforms at every height.
type PlatformScatter struct {
	Heights   []float32 `yaml:"heights"`
	PerHeight int       `yaml:"per_height"`
	Spread    int       `yaml:"spread"`
	Size      Vec3      `yaml:"size"`
	Color     string    `yaml:"color"`
}

// HillScatter places half-buried spheres on the ground.
type HillScatter struct {
	Count     int     `yaml:"count"`
	Spread    int     `yaml:"spread"`
	MinRadius float32 `yaml:"min_radius"`
	MaxRadius float32 `yaml:"max_radius"`
	Color     string  `yaml:"color"`
}

// TreeScatter places solid trunks, each topped by a canopy sphere the
// actor passes through. Canopy sizes are diameters.
type TreeScatter struct {
	Count          int     `yaml:"count"`
	Spread         int     `yaml:"spread"`
	TrunkWidth     float32 `yaml:"trunk_width"`
	MinTrunkHeight float32 `yaml:"min_trunk_height"`
	MaxTrunkHeight float32 `yaml:"max_trunk_height"`
	MinCanopy      float32 `yaml:"min_canopy"`
	MaxCanopy      float32 `yaml:"max_canopy"`
	TrunkColor     string  `yaml:"trunk_color"`
}

// BushScatter places decorative spheres resting on the ground. They have
// no collider. Sizes are diameters.
type BushScatter struct {
	Count   int     `yaml:"count"`
	Spread  int     `yaml:"spread"`
	MinSize float32 `yaml:"min_size"`
	MaxSize float32 `yaml:"max_size"`
}

// EntityPlacements places entities at fixed positions plus Count random
// ones at Height within [-Spread, Spread] on X and Z.
type EntityPlacements struct {
	Positions []Vec3  `yaml:"positions"`
	Count     int     `yaml:"count"`
	Height    float32 `yaml:"height"`
	Spread    int     `yaml:"spread"`
}

// Vec3 is written in YAML as a three element sequence: [x, y, z].
type Vec3 struct {
	X, Y, Z float32
}

func (v *Vec3) UnmarshalYAML(value *yaml.Node) error {
	var parts []float32
	if err := value.Decode(&parts); err != nil {
		return fmt.Errorf("line %d: vector must be [x, y, z]: %w", value.Line, err)
	}
	if len(parts) != 3 {
		return fmt.Errorf("line %d: vector must have 3 components, got %d", value.Line, len(parts))
	}
	v.X, v.Y, v.Z = parts[0], parts[1], parts[2]
	return nil
}

func (v Vec3) MarshalYAML() (any, error) {
	return []float32{v.X, v.Y, v.Z}, nil
}

// Vector3 converts to the raylib vector type.
func (v Vec3) Vector3() rl.Vector3 {
	return rl.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

// Validate checks the values the simulation cannot run without.
func (c Config) Validate() error {
	checks := []struct {
		ok    bool
		field string
	}{
		{c.Player.Speed > 0, "player.speed"},
		{c.Player.RunMultiplier >= 1, "player.run_multiplier"},
		{c.Player.JumpImpulse > 0, "player.jump_impulse"},
		{c.Player.Gravity > 0, "player.gravity"},
		{c.Player.HalfHeight > 0, "player.half_height"},
		{c.Player.HalfWidth > 0, "player.half_width"},
		{c.Player.ProbeOffset >= 0, "player.probe_offset"},
		{c.Player.GroundMargin >= 0, "player.ground_margin"},
		{c.Player.CeilingMargin >= 0, "player.ceiling_margin"},
		{c.Player.TurnPolicy == "continuous" || c.Player.TurnPolicy == "direct", "player.turn_policy"},
		{c.Camera.Damping > 0, "camera.damping"},
		{c.Coin.Radius > 0, "coin.radius"},
		{c.Block.Size > 0, "block.size"},
		{c.Block.BounceDuration > 0, "block.bounce_duration"},
		{c.Block.CoinLifetime > 0, "block.coin_lifetime"},
		{c.Rules.CollectRadius > 0, "rules.collect_radius"},
		{c.Rules.StarCollectRadius > 0, "rules.star_collect_radius"},
		{c.Rules.BlockCheck == "raycast" || c.Rules.BlockCheck == "proximity" || c.Rules.BlockCheck == "underside", "rules.block_check"},
		{c.World.Ground.Size > 0, "world.ground.size"},
		{c.World.Ground.Thickness > 0, "world.ground.thickness"},
		{c.World.Coins.Count >= 0 && c.World.Blocks.Count >= 0, "world placement count"},
		{c.World.Trees.MinTrunkHeight <= c.World.Trees.MaxTrunkHeight, "world.trees.min_trunk_height"},
		{c.World.Trees.MinCanopy <= c.World.Trees.MaxCanopy, "world.trees.min_canopy"},
		{c.World.Bushes.MinSize <= c.World.Bushes.MaxSize, "world.bushes.min_size"},
	}
	for _, check := range checks {
		if !check.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, check.field)
		}
	}
	return nil
}
