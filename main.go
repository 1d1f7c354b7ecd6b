package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"spelling-snake/ai"
	"spelling-snake/audio"
	"spelling-snake/config"
	"spelling-snake/game"
	"spelling-snake/game/clock"
	"spelling-snake/game/manager"
	"spelling-snake/game/words"
	"spelling-snake/ui"
	"spelling-snake/ui/command"
	"spelling-snake/ui/term"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	envFile := flag.String("env", ".env", "Optional dotenv file with SNAKE_* overrides")
	terminal := flag.Bool("term", false, "Play in the terminal instead of a window")
	demo := flag.Bool("demo", false, "Let the autopilot steer")
	debug := flag.Bool("debug", false, "Write logs to logs/spelling-snake.log")
	wrap := flag.Bool("wrap", false, "Start with wrap-around walls")
	sound := flag.Bool("sound", true, "Play sound effects")
	seed := flag.Uint64("seed", 0, "Random seed (0 picks one from the clock)")
	wordsFile := flag.String("words", "", "Word list file (default: built-in animals)")
	speed := flag.Int("speed", 0, "Initial tick interval in milliseconds")
	flag.Parse()

	logFile := setupLogging(*debug)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// Flags given on the command line win over the environment
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "wrap":
			cfg.WrapMode = *wrap
		case "sound":
			cfg.Sound = *sound
		case "seed":
			cfg.Seed = *seed
		case "words":
			cfg.WordsFile = *wordsFile
		case "speed":
			cfg.InitialSpeed = time.Duration(*speed) * time.Millisecond
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	list, err := words.Load(cfg.WordsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "words: %v\n", err)
		os.Exit(1)
	}

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	log.Info().Uint64("seed", cfg.Seed).Int("words", len(list)).Bool("terminal", *terminal).Msg("starting")

	session := game.NewSession(cfg, words.NewProvider(list, rng), rng)
	stats := manager.NewStatsManager()
	ctrl := game.NewController(session, clock.NewScheduler(clock.Real{}), stats)

	soundManager := audio.NewSoundManager(cfg.Sound)
	if err := soundManager.Initialize(); err != nil {
		log.Warn().Err(err).Msg("audio unavailable")
	} else {
		defer soundManager.Close()
		ctrl.AddSink(soundManager)
	}
	dispatcher := command.NewDispatcher(ctrl, soundManager)

	var pilot *ai.Autopilot
	if *demo {
		pilot = ai.NewAutopilot()
	}

	if *terminal {
		if err := runTerminal(ctrl, dispatcher, soundManager, pilot); err != nil {
			fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
			os.Exit(1)
		}
		return
	}
	runWindow(cfg, ctrl, dispatcher, soundManager, pilot)
}

func runTerminal(ctrl *game.Controller, dispatcher *command.Dispatcher, sound *audio.SoundManager, pilot *ai.Autopilot) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	renderer := term.NewRenderer(screen, ctrl.Stats(), sound.Enabled)
	ctrl.AddSink(renderer)
	renderer.Present(ctrl.Snapshot())

	loop := &term.Loop{
		Screen:     screen,
		Controller: ctrl,
		Dispatcher: dispatcher,
		Renderer:   renderer,
		Pilot:      pilot,
	}
	loop.Run()
	return nil
}

func runWindow(cfg config.Config, ctrl *game.Controller, dispatcher *command.Dispatcher, sound *audio.SoundManager, pilot *ai.Autopilot) {
	width, height := ui.WindowSize(cfg.Grid(), cfg.CellSize)
	rl.InitWindow(width, height, "Spelling Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	// Escape returns to the menu rather than closing the window
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer(ctrl.Stats(), sound.Enabled)
	ctrl.AddSink(renderer)
	renderer.Present(ctrl.Snapshot())

	for !rl.WindowShouldClose() {
		quit := false
		for _, cmd := range ui.PollKeys() {
			if dispatcher.Dispatch(cmd) {
				quit = true
			}
		}
		if quit {
			break
		}

		if pilot != nil {
			pilot.Steer(ctrl)
		}
		ctrl.Poll()
		renderer.Draw()
	}
	log.Info().Int("games", ctrl.Stats().Games()).Int("best", ctrl.Stats().Best()).Msg("window closed")
}
