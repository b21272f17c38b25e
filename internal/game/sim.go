package game

import (
	"fmt"

	"platformer/internal/config"
	"platformer/internal/hud"
	"platformer/internal/input"
	"platformer/internal/world"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Summary is the state at the end of a headless run.
type Summary struct {
	Frames          int
	Coins           int
	Stars           int
	StarTotal       int
	BlocksTriggered int
	Won             bool
	Grounded        bool
	Position        rl.Vector3
	Announcement    string
}

// Simulate runs frames ticks with a fixed dt and no window, reading input
// from src. It stops early if the input asks to quit.
func Simulate(cfg config.Config, src input.Source, frames int, dt float32, logger *log.Logger) (Summary, error) {
	if dt <= 0 {
		return Summary{}, fmt.Errorf("simulate: dt must be positive, got %v", dt)
	}

	w, err := world.New(cfg, logger)
	if err != nil {
		return Summary{}, fmt.Errorf("building world: %w", err)
	}

	state := hud.NewState()
	g, err := New(w, hud.Multi{state, hud.Log{Logger: logger}}, nil, logger)
	if err != nil {
		return Summary{}, err
	}

	for i := 0; i < frames; i++ {
		if !g.Tick(dt, src.Poll()) {
			logger.Info("quit requested", "frame", g.Frame)
			break
		}
		state.Update(dt)
	}

	return Summary{
		Frames:          g.Frame,
		Coins:           w.Controller.Coins,
		Stars:           w.Controller.Stars,
		StarTotal:       w.StarTotal,
		BlocksTriggered: g.BlocksTriggered,
		Won:             g.Won,
		Grounded:        w.Controller.IsGrounded(),
		Position:        w.Player.Transform.Position,
		Announcement:    state.Announcement,
	}, nil
}
