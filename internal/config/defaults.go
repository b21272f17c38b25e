package config

import (
	_ "embed"
)

//go:embed defaults.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults.yaml.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:     "Platformer",
			Width:     1280,
			Height:    720,
			TargetFPS: 60,
		},
		Player: PlayerConfig{
			Spawn:         Vec3{0, 5, 0},
			Speed:         7,
			RunMultiplier: 1.5,
			JumpImpulse:   10,
			Gravity:       30,
			HalfHeight:    0.8,
			HalfWidth:     0.4,
			TurnSpeed:     180,
			TurnPolicy:    "continuous",
			ProbeOffset:   0.1,
			GroundMargin:  0.05,
			CeilingMargin: 0.2,
			CeilingBounce: -0.5,
			Color:         "red",
		},
		Camera: CameraConfig{
			Offset:     Vec3{0, 8, -12},
			Damping:    6,
			LookAhead:  3,
			LookHeight: 2,
			Fovy:       60,
		},
		Coin: CoinConfig{
			Radius:       0.25,
			BobAmplitude: 0.05,
			BobSpeed:     5,
			SpinSpeed:    100,
			Color:        "yellow",
			StarColor:    "gold",
		},
		Block: BlockConfig{
			Size:            1,
			BounceDuration:  1,
			BounceAmplitude: 0.1,
			BounceFrequency: 10,
			CoinOffset:      2,
			CoinLifetime:    2,
			Color:           "orange",
			HitColor:        "gray",
		},
		Rules: RulesConfig{
			CollectRadius:     1,
			StarCollectRadius: 2,
			DeathY:            -10,
			RespawnPoint:      Vec3{0, 10, 0},
			ResetPoint:        Vec3{0, 10, 0},
			BlockCheck:        "raycast",
			ProximityMargin:   0.3,
			WinMessage:        "You collected all stars!",
		},
		Audio: AudioConfig{
			Enabled: true,
			Dir:     "assets/sounds",
			Jump:    SoundConfig{Pitch: 1.5, Volume: 0.3},
			Block:   SoundConfig{Pitch: 0.8, Volume: 0.5},
			Coin:    SoundConfig{Pitch: 1, Volume: 0.5},
		},
		World: WorldConfig{
			Seed: 42,
			Ground: GroundConfig{
				Size:      80,
				Thickness: 1,
				Texture:   "assets/grass.png",
				Color:     "green",
			},
			RandomPlatforms: PlatformScatter{
				Heights:   []float32{3, 5, 8},
				PerHeight: 3,
				Spread:    15,
				Size:      Vec3{5, 0.5, 3},
				Color:     "darkgreen",
			},
			Hills: HillScatter{
				Count:     10,
				Spread:    18,
				MinRadius: 1,
				MaxRadius: 2.5,
				Color:     "lime",
			},
			Trees: TreeScatter{
				Count:          30,
				Spread:         35,
				TrunkWidth:     0.5,
				MinTrunkHeight: 2,
				MaxTrunkHeight: 4,
				MinCanopy:      2,
				MaxCanopy:      4,
				TrunkColor:     "brown",
			},
			Bushes: BushScatter{
				Count:   50,
				Spread:  38,
				MinSize: 0.5,
				MaxSize: 1.5,
			},
			Coins: EntityPlacements{
				Count:  20,
				Height: 2,
				Spread: 35,
			},
			Blocks: EntityPlacements{
				Count:  10,
				Height: 3,
				Spread: 30,
			},
			Stars: []Vec3{{5, 3, 5}, {-10, 2, -5}, {15, 4, 10}},
		},
	}
}
