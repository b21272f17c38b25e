package input

import rl "github.com/gen2brain/raylib-go/raylib"

// Keyboard reads the raylib keyboard. Requires an open window.
type Keyboard struct{}

func (Keyboard) Poll() State {
	return State{
		Forward: rl.IsKeyDown(rl.KeyW),
		Back:    rl.IsKeyDown(rl.KeyS),
		Left:    rl.IsKeyDown(rl.KeyA),
		Right:   rl.IsKeyDown(rl.KeyD),
		Jump:    rl.IsKeyDown(rl.KeySpace),
		Run:     rl.IsKeyDown(rl.KeyLeftShift),
		Reset:   rl.IsKeyPressed(rl.KeyR),
		Quit:    rl.IsKeyPressed(rl.KeyEscape),
	}
}
