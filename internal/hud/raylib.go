package hud

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const instructions = "WASD: Move/Turn | SPACE: Jump | SHIFT: Run | R: Reset"

// Raylib draws the HUD with raygui. Draw must run inside BeginDrawing.
type Raylib struct {
	*State
	font rl.Font
}

// NewRaylib sets up the raygui style. fontPath comes from window.font; when
// it is empty or fails to load the default font is used.
func NewRaylib(fontPath string) *Raylib {
	r := &Raylib{State: NewState()}
	if fontPath != "" {
		r.font = rl.LoadFontEx(fontPath, 48, nil)
		if r.font.Texture.ID > 0 {
			rl.SetTextureFilter(r.font.Texture, rl.FilterBilinear)
			gui.SetFont(r.font)
		}
	}
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 24)
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(rl.Yellow))
	return r
}

func (r *Raylib) Draw() {
	gui.Label(rl.Rectangle{X: 20, Y: 16, Width: 300, Height: 32}, r.Coins)
	if r.Stars != "" {
		gui.Label(rl.Rectangle{X: 20, Y: 48, Width: 300, Height: 32}, r.Stars)
	}
	rl.DrawText(instructions, 20, int32(rl.GetScreenHeight())-30, 18, rl.RayWhite)

	if r.Announcement != "" {
		const size = 40
		w := rl.MeasureText(r.Announcement, size)
		x := (int32(rl.GetScreenWidth()) - w) / 2
		y := int32(rl.GetScreenHeight())/2 - size
		rl.DrawText(r.Announcement, x, y, size, rl.Gold)
	}
}

func (r *Raylib) Unload() {
	if r.font.Texture.ID > 0 {
		rl.UnloadFont(r.font)
	}
}
