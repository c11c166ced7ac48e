// internal/state/input.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Intent is the player's input for one frame, read once per Update.
type Intent struct {
	MoveX, MoveY float64
	Fire         bool
	PauseToggled bool
}

// ReadIntent polls the keyboard. Arrows and WASD move, space fires, P or
// Escape toggles pause.
func ReadIntent() Intent {
	var in Intent
	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.MoveX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.MoveX++
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		in.MoveY--
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		in.MoveY++
	}
	in.Fire = ebiten.IsKeyPressed(ebiten.KeySpace)
	in.PauseToggled = inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	return in
}
