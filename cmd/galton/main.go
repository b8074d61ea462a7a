package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/galton/internal/application/game"
	"github.com/younwookim/galton/internal/application/scene/board"
	"github.com/younwookim/galton/internal/application/sim"
	"github.com/younwookim/galton/internal/infrastructure/audio"
	"github.com/younwookim/galton/internal/infrastructure/config"
	"github.com/younwookim/galton/internal/infrastructure/tui"
)

const (
	modeWindow   = "window"
	modeTUI      = "tui"
	modeHeadless = "headless"
)

type options struct {
	configDir string
	envFile   string
	mode      string
	seed      int64
	frames    int
	dt        float64
	mute      bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	fset := flag.NewFlagSet("galton", flag.ContinueOnError)
	fset.StringVar(&opts.configDir, "config", "", "Read board.yaml/board.json from this directory instead of the embedded defaults")
	fset.StringVar(&opts.envFile, "env", ".env", "Optional dotenv file with GALTON_* overrides")
	fset.StringVar(&opts.mode, "mode", modeWindow, "Host: window, tui or headless")
	fset.Int64Var(&opts.seed, "seed", 0, "Random seed (0 = config seed, or time if that is 0 too)")
	fset.IntVar(&opts.frames, "frames", 10000, "Headless: maximum number of frames")
	fset.Float64Var(&opts.dt, "dt", 1.0/60.0, "Headless: fixed time step in seconds")
	fset.BoolVar(&opts.mute, "mute", false, "Disable bounce clicks")
	if err := fset.Parse(args); err != nil {
		return options{}, err
	}

	switch opts.mode {
	case modeWindow, modeTUI, modeHeadless:
	default:
		return options{}, fmt.Errorf("unknown mode %q", opts.mode)
	}
	return opts, nil
}

// loadConfig reads the board config from disk or the embedded defaults,
// then applies environment overrides.
func loadConfig(opts options) (*config.BoardConfig, error) {
	var loader *config.Loader
	if opts.configDir != "" {
		loader = config.NewLoader(opts.configDir)
	} else {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			return nil, fmt.Errorf("failed to get config subfs: %w", err)
		}
		loader = config.NewFSLoader(fsys, "configs")
	}

	cfg, err := loader.LoadBoard()
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded board config from %s", loader.BasePath())
	if err := config.ApplyEnv(cfg, opts.envFile); err != nil {
		return nil, err
	}
	if opts.seed != 0 {
		cfg.Spawn.Seed = opts.seed
	}
	return cfg, nil
}

// seedFor returns the configured seed, or a time-based one when unset.
func seedFor(cfg *config.BoardConfig) int64 {
	if cfg.Spawn.Seed != 0 {
		return cfg.Spawn.Seed
	}
	return time.Now().UnixNano()
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	seed := seedFor(cfg)
	s, err := sim.New(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		log.Fatalf("Failed to create simulation: %v", err)
	}
	log.Printf("Board: %d balls, %d rows, seed %d", cfg.Spawn.NumBalls, cfg.Board.NumRows, seed)

	if opts.mode == modeHeadless {
		report, err := runHeadless(s, opts.frames, opts.dt)
		if err != nil {
			log.Fatalf("Simulation failed: %v", err)
		}
		for _, line := range report.Lines() {
			log.Print(line)
		}
		return
	}

	if cfg.Audio.Enabled && !opts.mute {
		clicker := audio.NewClicker(cfg.Audio)
		if err := clicker.Initialize(); err != nil {
			log.Printf("Audio disabled: %v", err)
		} else {
			defer clicker.Close()
			s.OnCollision = clicker.OnCollision
		}
	}

	switch opts.mode {
	case modeTUI:
		if err := runTUI(s, cfg.Display.Framerate); err != nil {
			log.Fatalf("Terminal host failed: %v", err)
		}
	default:
		if err := runWindow(s, cfg); err != nil {
			log.Fatalf("Window host failed: %v", err)
		}
	}
}

func runWindow(s *sim.Simulation, cfg *config.BoardConfig) error {
	g := game.New(board.New(s), game.Options{
		ScreenW:   cfg.Display.ScreenWidth,
		ScreenH:   cfg.Display.ScreenHeight,
		Framerate: cfg.Display.Framerate,
	})
	defer g.Close()

	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale,
		cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle("Galton Board")
	ebiten.SetTPS(cfg.Display.Framerate)

	return ebiten.RunGame(g)
}

func runTUI(s *sim.Simulation, fps int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return tui.NewHost(screen, s, fps).Run(ctx)
}
