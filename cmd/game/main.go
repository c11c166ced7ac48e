// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"

	game "go-galactic-traveler/internal/app"
	"go-galactic-traveler/internal/config"
	"go-galactic-traveler/internal/defs"
	"go-galactic-traveler/internal/state"
)

// AppGame adapts the state machine to ebiten's game loop.
type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	var (
		seed        = flag.Int64("seed", 0, "simulation seed; 0 seeds from the clock")
		enemiesPath = flag.String("enemies", "", "optional JSON file overriding the enemy definitions")
		cpuProfile  = flag.Bool("cpuprofile", false, "write a CPU profile to the working directory")
		skipMenu    = flag.Bool("skipmenu", false, "start straight into the game")
	)
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	if *enemiesPath != "" {
		if err := defs.LoadEnemyDefinitions(*enemiesPath); err != nil {
			log.Fatalf("loading enemy definitions: %v", err)
		}
	}

	cfg := game.DefaultConfig()
	cfg.Seed = *seed

	sm := state.NewStateMachine()
	if *skipMenu {
		sm.SetState(state.NewGameState(sm, cfg))
	} else {
		sm.SetState(state.NewMenuState(sm, cfg))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Galactic Traveler")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
