package assets

import (
	"fmt"
	"os"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var manager *Manager

type Manager struct {
	models   map[string]rl.Model
	textures map[string]rl.Texture2D
}

// Color name mapping, keys are lower case
var colorByName = map[string]rl.Color{
	"red":       rl.Red,
	"blue":      rl.Blue,
	"green":     rl.Green,
	"purple":    rl.Purple,
	"orange":    rl.Orange,
	"yellow":    rl.Yellow,
	"gold":      rl.Gold,
	"white":     rl.White,
	"gray":      rl.Gray,
	"lightgray": rl.LightGray,
	"darkgray":  rl.DarkGray,
	"black":     rl.Black,
	"pink":      rl.Pink,
	"maroon":    rl.Maroon,
	"brown":     rl.Brown,
	"beige":     rl.Beige,
	"skyblue":   rl.SkyBlue,
	"darkblue":  rl.DarkBlue,
	"lime":      rl.Lime,
	"darkgreen": rl.DarkGreen,
}

// LookupColor returns a raylib color from a name, ignoring case.
// Unknown names map to white.
func LookupColor(name string) rl.Color {
	c, _ := FindColor(name)
	return c
}

// FindColor is LookupColor that also reports whether the name was known.
func FindColor(name string) (rl.Color, bool) {
	if c, ok := colorByName[strings.ToLower(name)]; ok {
		return c, true
	}
	return rl.White, false
}

func Init() {
	manager = &Manager{
		models:   make(map[string]rl.Model),
		textures: make(map[string]rl.Texture2D),
	}
}

// LoadTexture loads and caches a texture. A missing or unreadable file is
// an error; callers fall back to a flat colour.
func LoadTexture(path string) (rl.Texture2D, error) {
	if manager == nil {
		Init()
	}

	if texture, exists := manager.textures[path]; exists {
		return texture, nil
	}

	if _, err := os.Stat(path); err != nil {
		return rl.Texture2D{}, fmt.Errorf("texture %s: %w", path, err)
	}
	texture := rl.LoadTexture(path)
	if !rl.IsTextureValid(texture) {
		return rl.Texture2D{}, fmt.Errorf("texture %s: invalid image data", path)
	}
	manager.textures[path] = texture
	return texture, nil
}

// TexturedCube builds a cube model with the texture on every face. The
// model is owned by the manager.
func TexturedCube(key string, size rl.Vector3, texture rl.Texture2D) rl.Model {
	if manager == nil {
		Init()
	}

	if model, exists := manager.models[key]; exists {
		return model
	}

	model := rl.LoadModelFromMesh(rl.GenMeshCube(size.X, size.Y, size.Z))
	model.Materials.Maps.Texture = texture
	manager.models[key] = model
	return model
}

func Unload() {
	if manager == nil {
		return
	}

	for _, model := range manager.models {
		rl.UnloadModel(model)
	}

	for _, texture := range manager.textures {
		rl.UnloadTexture(texture)
	}

	manager.models = make(map[string]rl.Model)
	manager.textures = make(map[string]rl.Texture2D)
}
