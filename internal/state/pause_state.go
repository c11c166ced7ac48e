// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-galactic-traveler/internal/config"
	"go-galactic-traveler/internal/ui"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the game underneath it: the previous state keeps
// drawing but never updates, so no simulation time passes.
type PauseState struct {
	sm            *StateMachine
	previousState State
	hud           *ui.HUD
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		sm:            sm,
		previousState: prevState,
		hud:           ui.NewHUD(),
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if ReadIntent().PauseToggled {
		s.sm.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)
	s.hud.DrawCentered(screen, "PAUSED", config.ScreenHeight/2, config.ForegroundColor)
}

func (s *PauseState) Exit() {}
