// internal/ui/renderer.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-galactic-traveler/internal/app"
	"go-galactic-traveler/internal/config"
)

// EntityRenderer draws a core snapshot. It is the only consumer of entity
// positions on the rendering side; the core itself never touches pixels.
type EntityRenderer struct{}

func NewEntityRenderer() *EntityRenderer {
	return &EntityRenderer{}
}

func (r *EntityRenderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	for _, e := range snap.Entities {
		x := float32(e.X)
		y := float32(e.Y)
		switch e.Kind {
		case app.KindEnemy:
			vector.DrawFilledCircle(screen, x, y, e.Radius, e.Color, true)
			// eyes
			vector.DrawFilledCircle(screen, x-5, y-3, 4, color.RGBA{20, 20, 30, 255}, true)
			vector.DrawFilledCircle(screen, x+6, y-3, 4, color.RGBA{20, 20, 30, 255}, true)
			if e.HasStroke {
				vector.StrokeCircle(screen, x, y, e.Radius, 2, color.RGBA{60, 20, 30, 255}, true)
			}
		case app.KindProjectile:
			vector.DrawFilledCircle(screen, x, y, e.Radius, e.Color, true)
		case app.KindPowerUp:
			vector.DrawFilledCircle(screen, x, y, e.Radius, e.Color, true)
			vector.StrokeCircle(screen, x, y, e.Radius/2, 2, color.RGBA{20, 40, 20, 255}, true)
		}
	}
}

// DrawPlayer draws the player ship as a triangle, with a shield ring while
// invulnerable.
func (r *EntityRenderer) DrawPlayer(screen *ebiten.Image, x, y float64, shielded bool) {
	px := float32(x)
	py := float32(y)

	var path vector.Path
	path.MoveTo(px, py-22)
	path.LineTo(px-18, py+18)
	path.LineTo(px+18, py+18)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].ColorR = float32(config.PlayerColor.R) / 255
		vs[i].ColorG = float32(config.PlayerColor.G) / 255
		vs[i].ColorB = float32(config.PlayerColor.B) / 255
		vs[i].ColorA = 1
	}
	screen.DrawTriangles(vs, is, whiteSubImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})

	if shielded {
		vector.StrokeCircle(screen, px, py, 30, 2, config.ShieldColor, true)
	}
}

var whitePixel *ebiten.Image

func whiteSubImage() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(3, 3)
		whitePixel.Fill(color.White)
	}
	return whitePixel.SubImage(whitePixel.Bounds().Inset(1)).(*ebiten.Image)
}
