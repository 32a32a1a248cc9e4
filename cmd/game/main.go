// cmd/game/main.go
package main

import (
	"flag"
	"os"

	"go-battle-city/internal/app"
	"go-battle-city/internal/assets"
	"go-battle-city/internal/config"
	"go-battle-city/internal/defs"
	"go-battle-city/internal/event"
	"go-battle-city/internal/logging"
	"go-battle-city/internal/state"
	"go-battle-city/pkg/render/gfx"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric/noop"
)

const startFromGame = false // true — начинать с игры, false — с заставки

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ArenaWidth, config.ArenaHeight
}

func main() {
	configDir := flag.String("config", ".", "directory with "+config.ConfigName)
	fontFile := flag.String("font", "", "TrueType font for the HUD (default: Go Regular)")
	flag.Parse()

	settings, err := config.Load(*configDir)
	if err != nil {
		fallback := logging.Setup(os.Stderr, "info", true)
		fallback.Fatal().Err(err).Msg("failed to load settings")
	}
	logger := logging.Setup(os.Stderr, settings.LogLevel, true)

	level, err := loadLevel(settings.LevelFile, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("file", settings.LevelFile).Msg("failed to load level")
	}

	dispatcher := event.NewDispatcher()
	events := logging.NewEventLogger(logger, dispatcher)
	defer events.Close()
	opts := []app.Option{
		app.WithSeed(settings.Seed),
		app.WithLogger(logger),
		app.WithDispatcher(dispatcher),
	}
	if !settings.MetricsEnabled {
		opts = append(opts, app.WithMeter(noop.Meter{}))
	}
	game, err := app.NewGame(level, opts...)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create game")
	}

	fonts, err := assets.NewFontManager(*fontFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load font")
	}
	defer fonts.Cleanup()

	renderer := gfx.NewRenderer(config.Palette(), fonts)
	sm := state.NewStateMachine()
	gameState := state.NewGameState(sm, game, state.NewKeyboard(nil), renderer)
	if startFromGame {
		sm.SetState(gameState)
	} else {
		sm.SetState(state.NewMenuState(sm, gameState, renderer))
	}

	ebiten.SetTPS(settings.TPS)
	ebiten.SetWindowSize(int(config.ArenaWidth*settings.WindowScale), int(config.ArenaHeight*settings.WindowScale))
	ebiten.SetWindowTitle("Battle City")
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		logger.Fatal().Err(err).Msg("game loop stopped")
	}
	game.Close()
	logger.Info().Interface("stats", game.Stats()).Msg("bye")
}

// loadLevel reads the level file, or returns the built-in level when path is empty.
// Validation problems are logged and the level is used anyway.
func loadLevel(path string, logger zerolog.Logger) (defs.Level, error) {
	level := defs.DefaultLevel()
	if path != "" {
		var err error
		if level, err = defs.LoadLevel(path); err != nil {
			return defs.Level{}, err
		}
	}
	for _, w := range level.Validate() {
		logger.Warn().Str("level", level.Name).Msg(w)
	}
	return level, nil
}
