// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-galactic-traveler/internal/config"
)

// HUD draws the score/wave/lives bar, the power-up banner, and the pause
// overlay text.
type HUD struct {
	face font.Face
}

func NewHUD() *HUD {
	return &HUD{face: basicfont.Face7x13}
}

func (h *HUD) Draw(screen *ebiten.Image, score, wave, lives int, multiplier float64, banner string, paused bool) {
	left := fmt.Sprintf("Score: %d", score)
	mid := fmt.Sprintf("Wave: %d", wave)
	right := fmt.Sprintf("Lives: %d   x%.1f", lives, multiplier)

	text.Draw(screen, left, h.face, 18, 24, config.ForegroundColor)
	text.Draw(screen, mid, h.face, config.ScreenWidth/2-textWidth(h.face, mid)/2, 24, config.ForegroundColor)
	text.Draw(screen, right, h.face, config.ScreenWidth-textWidth(h.face, right)-18, 24, config.ForegroundColor)

	if banner != "" {
		text.Draw(screen, banner, h.face, 18, 48, config.BannerColor)
	}

	if paused {
		msg := "PAUSED"
		text.Draw(screen, msg, h.face, config.ScreenWidth/2-textWidth(h.face, msg)/2, config.ScreenHeight/2, config.ForegroundColor)
	}
}

// DrawCentered draws one line of text centered at the given height.
func (h *HUD) DrawCentered(screen *ebiten.Image, msg string, y int, clr color.Color) {
	text.Draw(screen, msg, h.face, config.ScreenWidth/2-textWidth(h.face, msg)/2, y, clr)
}

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Round()
}
