// internal/ui/starfield.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-galactic-traveler/internal/config"
	"go-galactic-traveler/internal/utils"
)

type star struct {
	x, y   float64
	speed  float64
	radius float32
}

// Starfield is the scrolling background. Purely cosmetic, so it draws from
// its own unseeded random stream and never touches the simulation's.
type Starfield struct {
	stars []star
	rng   *utils.PRNGService
}

func NewStarfield(count int) *Starfield {
	rng := utils.NewPRNGService(0)
	s := &Starfield{rng: rng}
	for i := 0; i < count; i++ {
		s.stars = append(s.stars, star{
			x:      rng.FloatRange(0, config.ScreenWidth),
			y:      rng.FloatRange(0, config.ScreenHeight),
			speed:  rng.FloatRange(30, 150),
			radius: s.pickRadius(),
		})
	}
	return s
}

func (s *Starfield) pickRadius() float32 {
	if s.rng.Intn(3) == 2 {
		return 2
	}
	return 1
}

func (s *Starfield) Update(deltaTime float64) {
	for i := range s.stars {
		s.stars[i].y += s.stars[i].speed * deltaTime
		if s.stars[i].y > config.ScreenHeight {
			s.stars[i].x = s.rng.FloatRange(0, config.ScreenWidth)
			s.stars[i].y = -2
			s.stars[i].speed = s.rng.FloatRange(30, 150)
			s.stars[i].radius = s.pickRadius()
		}
	}
}

func (s *Starfield) Draw(screen *ebiten.Image) {
	for _, st := range s.stars {
		vector.DrawFilledCircle(screen, float32(st.x), float32(st.y), st.radius, config.StarColor, false)
	}
}
