package ui

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"snake-arcade/game/sprite"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const fontSize = 25

// Assets holds every texture, sound and font the game draws or plays.
// Load it after the window (and audio device, if any) is open.
type Assets struct {
	Sprites  map[sprite.ID]rl.Texture2D
	Apple    rl.Texture2D
	Font     rl.Font
	crunch   rl.Sound
	hasSound bool
}

// LoadAssets reads the artwork under dir. The crunch sound is only loaded
// when withSound is set.
func LoadAssets(dir string, withSound bool) (*Assets, error) {
	a := &Assets{Sprites: make(map[sprite.ID]rl.Texture2D, len(sprite.All))}

	for _, id := range sprite.All {
		tex, err := loadTexture(filepath.Join(dir, "Graphics", id.Name()+".png"))
		if err != nil {
			a.Unload()
			return nil, err
		}
		a.Sprites[id] = tex
	}

	apple, err := loadTexture(filepath.Join(dir, "Graphics", "apple.png"))
	if err != nil {
		a.Unload()
		return nil, err
	}
	a.Apple = apple

	fontPath := filepath.Join(dir, "Font", "PoetsenOne-Regular.ttf")
	if err := checkFile(fontPath); err != nil {
		a.Unload()
		return nil, err
	}
	a.Font = rl.LoadFontEx(fontPath, fontSize, nil)
	if !rl.IsFontReady(a.Font) {
		a.Unload()
		return nil, fmt.Errorf("load font %s: not ready", fontPath)
	}

	if withSound {
		soundPath := filepath.Join(dir, "Sound", "crunch.wav")
		if err := checkFile(soundPath); err != nil {
			a.Unload()
			return nil, err
		}
		a.crunch = rl.LoadSound(soundPath)
		if !rl.IsSoundReady(a.crunch) {
			a.Unload()
			return nil, fmt.Errorf("load sound %s: not ready", soundPath)
		}
		a.hasSound = true
	}

	log.Printf("loaded %d textures from %s (sound: %v)", len(a.Sprites)+1, dir, a.hasSound)
	return a, nil
}

func checkFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("asset %s: %w", path, err)
	}
	return nil
}

func loadTexture(path string) (rl.Texture2D, error) {
	if err := checkFile(path); err != nil {
		return rl.Texture2D{}, err
	}
	tex := rl.LoadTexture(path)
	if !rl.IsTextureReady(tex) {
		return rl.Texture2D{}, fmt.Errorf("load texture %s: not ready", path)
	}
	return tex, nil
}

// PlayCrunch plays the eating sound, if sound was loaded.
func (a *Assets) PlayCrunch() {
	if a.hasSound {
		rl.PlaySound(a.crunch)
	}
}

// Unload releases everything that was loaded. It is safe on a partial load.
func (a *Assets) Unload() {
	for id, tex := range a.Sprites {
		rl.UnloadTexture(tex)
		delete(a.Sprites, id)
	}
	if a.Apple.ID != 0 {
		rl.UnloadTexture(a.Apple)
		a.Apple = rl.Texture2D{}
	}
	if a.Font.Texture.ID != 0 {
		rl.UnloadFont(a.Font)
		a.Font = rl.Font{}
	}
	if a.hasSound {
		rl.UnloadSound(a.crunch)
		a.hasSound = false
	}
}
