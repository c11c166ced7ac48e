// internal/state/game_over_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	game "go-galactic-traveler/internal/app"
	"go-galactic-traveler/internal/config"
	"go-galactic-traveler/internal/ui"
)

// GameOverState shows the final score and offers a restart.
type GameOverState struct {
	sm        *StateMachine
	score     int
	hud       *ui.HUD
	starfield *ui.Starfield
	blink     float64
}

func NewGameOverState(sm *StateMachine, score int) *GameOverState {
	return &GameOverState{
		sm:        sm,
		score:     score,
		hud:       ui.NewHUD(),
		starfield: ui.NewStarfield(170),
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	s.starfield.Update(deltaTime)
	s.blink += deltaTime
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.sm.SetState(NewGameState(s.sm, game.DefaultConfig()))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.starfield.Draw(screen)

	s.hud.DrawCentered(screen, "GAME OVER", 180, config.GameOverColor)
	s.hud.DrawCentered(screen, fmt.Sprintf("Final Score: %d", s.score), 260, config.ForegroundColor)
	if int(s.blink*2)%2 == 0 {
		s.hud.DrawCentered(screen, "Press ENTER to Play Again", 330, config.ForegroundColor)
	}
}

func (s *GameOverState) Exit() {}
