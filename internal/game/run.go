package game

import (
	"fmt"

	"platformer/internal/audio"
	"platformer/internal/config"
	"platformer/internal/hud"
	"platformer/internal/input"
	"platformer/internal/world"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Run opens a window and plays until the window is closed or the player
// quits.
func Run(cfg config.Config, logger *log.Logger) error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)
	defer rl.CloseWindow()

	// Escape is read as the quit input instead of closing the window
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(cfg.Window.TargetFPS)

	w, err := world.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("building world: %w", err)
	}

	renderer := world.NewRenderer(w, logger)
	renderer.Initialize()
	defer renderer.Unload()

	screen := hud.NewRaylib(cfg.Window.Font)
	defer screen.Unload()

	var player audio.Player = audio.Nop{}
	if cfg.Audio.Enabled {
		bank := audio.OpenBank(cfg.Audio.Dir, logger)
		defer bank.Close()
		player = bank
	}

	g, err := New(w, hud.Multi{screen, hud.Log{Logger: logger}}, player, logger)
	if err != nil {
		return err
	}

	var keyboard input.Keyboard
	logger.Info("playing", "width", cfg.Window.Width, "height", cfg.Window.Height)

	for !rl.WindowShouldClose() {
		dt := rl.GetFrameTime()
		if !g.Tick(dt, keyboard.Poll()) {
			break
		}
		screen.Update(dt)

		rl.BeginDrawing()
		renderer.Draw(g.Camera.GetRaylibCamera())
		screen.Draw()
		rl.EndDrawing()
	}

	logger.Info("session over",
		"frames", g.Frame,
		"coins", w.Controller.Coins,
		"stars", w.Controller.Stars,
		"blocks", g.BlocksTriggered)
	return nil
}
