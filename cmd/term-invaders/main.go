package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/term-invaders/asset"
	"github.com/lixenwraith/term-invaders/config"
	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/engine"
	"github.com/lixenwraith/term-invaders/events"
	"github.com/lixenwraith/term-invaders/game"
	"github.com/lixenwraith/term-invaders/input"
	"github.com/lixenwraith/term-invaders/logging"
	"github.com/lixenwraith/term-invaders/render"
)

var configDirFlag = flag.String("config", ".", "directory containing term-invaders.cfg.json")

func main() {
	flag.Parse()

	if err := config.Load(*configDirFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := logging.New(config.LogFile(), config.LogLevel())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	// Asset population must complete before the loop starts; failure is
	// fatal for startup only
	assets, err := asset.Load()
	if err != nil {
		logger.Error().Err(err).Msg("asset load failed")
		fmt.Fprintf(os.Stderr, "Failed to load assets: %v\n", err)
		os.Exit(1)
	}

	keymap, err := input.NewKeymap(config.Bindings())
	if err != nil {
		logger.Error().Err(err).Msg("key binding error")
		fmt.Fprintf(os.Stderr, "Bad key bindings: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	// Panic recovery: restore the terminal before the stack trace prints,
	// otherwise raw mode mangles it
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nTERM-INVADERS CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	surface, err := render.NewTermSurface(screen)
	if err != nil {
		screen.Fini()
		logger.Error().Err(err).Msg("terminal unsuitable")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	in := input.NewState()
	queue := events.NewQueue()

	g := game.New(game.Config{
		Assets:     assets,
		Input:      in,
		Keymap:     keymap,
		Queue:      queue,
		Clock:      engine.NewMonotonicTimeProvider(),
		Rand:       rand.New(rand.NewSource(time.Now().UnixNano())),
		Log:        logger,
		StartLevel: config.StartLevel(),
	})

	logger.Info().Msg("starting run loop")
	run(g, screen, surface, keymap, in, logger)
	logger.Info().Msg("run loop terminated")
}

// run is the frame driver: one select loop over terminal events and the
// frame ticker. The enemy-fire timer never appears here; it only pushes
// onto the event queue that Game.Tick drains, so timer callbacks and tick
// callbacks stay strictly serialized.
func run(g *game.Game, screen tcell.Screen, surface *render.TermSurface, keymap *input.Keymap, in *input.State, logger zerolog.Logger) {
	eventChan := make(chan tcell.Event, constants.TerminalEventBuffer)
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

	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	for !g.Done() {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					in.Press(input.ActionQuit)
					continue
				}
				if action, ok := keymap.Translate(ev); ok {
					in.Press(action)
				}
			case *tcell.EventResize:
				cols, rows := ev.Size()
				if err := surface.Resize(cols, rows); err != nil {
					// Keep the previous scale; the player can grow the
					// window back
					logger.Warn().Err(err).Msg("resize below minimum")
				}
				screen.Sync()
			}

		case <-ticker.C:
			g.Tick(surface)
		}
	}
}
