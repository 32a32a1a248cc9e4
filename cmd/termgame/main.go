// cmd/termgame/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go-battle-city/internal/app"
	"go-battle-city/internal/config"
	"go-battle-city/internal/defs"
	"go-battle-city/internal/event"
	"go-battle-city/internal/input"
	"go-battle-city/internal/logging"
	"go-battle-city/pkg/render/term"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric/noop"
)

// Терминал занят картинкой, поэтому лог пишется в файл.
const defaultLogFile = "battlecity.log"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configDir := flag.String("config", ".", "directory with "+config.ConfigName)
	holdTicks := flag.Int("hold", input.DefaultHoldTicks, "ticks a key press counts as held")
	flag.Parse()

	settings, err := config.Load(*configDir)
	if err != nil {
		return err
	}

	logPath := settings.LogFile
	if logPath == "" {
		logPath = defaultLogFile
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	logger := logging.Setup(logFile, settings.LogLevel, false)

	level, err := loadLevel(settings.LevelFile, logger)
	if err != nil {
		return err
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
		return err
	}
	defer game.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	loop(screen, game, input.NewTerminal(*holdTicks), settings.TPS, logger)
	logger.Info().Interface("stats", game.Stats()).Msg("bye")
	return nil
}

func loop(screen tcell.Screen, game *app.Game, keys *input.Terminal, tps int, logger zerolog.Logger) {
	renderer := term.NewRenderer(config.Palette())

	frame := game.Frame()
	if w, h := screen.Size(); w < term.Columns(frame) || h < term.Rows(frame) {
		logger.Warn().
			Int("width", w).Int("height", h).
			Int("need_width", term.Columns(frame)).Int("need_height", term.Rows(frame)).
			Msg("terminal is smaller than the arena, the picture is clipped")
	}

	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
				continue
			}
			keys.HandleEvent(ev)
			if keys.QuitRequested() {
				return
			}

		case <-ticker.C:
			game.Update(keys)
			keys.Tick()
			renderer.Draw(screen, game.Frame())
			screen.Show()
		}
	}
}

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
