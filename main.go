package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pthm-cable/physix/audio"
	"github.com/pthm-cable/physix/config"
	"github.com/pthm-cable/physix/device"
	"github.com/pthm-cable/physix/game"
	"github.com/pthm-cable/physix/renderer"
	"github.com/pthm-cable/physix/terminal"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics or input")
	useTerminal := flag.Bool("terminal", false, "Render in the terminal instead of a window")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N frames (0 = unlimited)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	mute := flag.Bool("mute", false, "Disable bounce sound")

	flag.Parse()

	level, err := parseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Terminal mode owns stdout, so logs go to stderr.
	logOut := os.Stdout
	if *useTerminal && !*headless {
		logOut = os.Stderr
	}
	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Config:    cfg,
		OutputDir: *outputDir,
		LogStats:  *logStats,
	}

	slog.Info("startup",
		"seed", rngSeed,
		"headless", *headless,
		"terminal", *useTerminal,
		"max_ticks", *maxTicks,
		"screen", fmt.Sprintf("%dx%d", cfg.Screen.Width, cfg.Screen.Height),
	)

	switch {
	case *headless:
		err = runHeadless(cfg, opts, rngSeed, *maxTicks)
	case *useTerminal:
		err = runTerminal(cfg, opts, rngSeed, *maxTicks, !*mute)
	default:
		err = runWindow(cfg, opts, rngSeed, *maxTicks, !*mute)
	}
	if err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid -log-level %q: %w", s, err)
	}
	return level, nil
}

// runHeadless steps the simulation as fast as possible with no input.
func runHeadless(cfg *config.Config, opts game.Options, seed int64, maxTicks int) error {
	fb := device.NewFramebuffer(cfg.Screen.Width, cfg.Screen.Height)
	g, err := game.New(device.Devices{
		Display: fb,
		Input:   device.IdleInput{},
		Pacer:   device.EveryFrame{},
		Random:  device.NewRand(seed),
		Text:    fb,
	}, opts)
	if err != nil {
		return err
	}
	defer unload(g)

	for {
		g.Loop()
		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick())
			return nil
		}
	}
}

func runTerminal(cfg *config.Config, opts game.Options, seed int64, maxTicks int, sound bool) error {
	screen, err := terminal.New(cfg.Screen.Width, cfg.Screen.Height, cfg.Screen.TargetFPS)
	if err != nil {
		return err
	}
	defer screen.Fini()

	if sm := startSound(cfg, sound); sm != nil {
		defer sm.Cleanup()
		opts.Sound = sm
	}
	g, err := game.New(device.Devices{
		Display: screen,
		Input:   screen,
		Pacer:   screen,
		Random:  device.NewRand(seed),
		Text:    screen,
	}, opts)
	if err != nil {
		return err
	}
	defer unload(g)

	for !screen.ShouldClose() {
		if !g.Loop() {
			screen.Idle()
			continue
		}
		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			break
		}
	}
	return nil
}

func runWindow(cfg *config.Config, opts game.Options, seed int64, maxTicks int, sound bool) error {
	win := renderer.NewWindow(cfg.Screen.Width, cfg.Screen.Height, cfg.Derived.WindowWidth32, cfg.Derived.WindowHeight32)
	win.Init("Physix", cfg.Screen.TargetFPS)
	defer win.Unload()

	if sm := startSound(cfg, sound); sm != nil {
		defer sm.Cleanup()
		opts.Sound = sm
	}
	g, err := game.New(device.Devices{
		Display: win,
		Input:   win,
		Pacer:   win,
		Random:  device.NewRand(seed),
		Text:    win,
	}, opts)
	if err != nil {
		return err
	}
	defer unload(g)

	for !win.ShouldClose() {
		g.Loop()
		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			break
		}
	}
	return nil
}

// unload closes the game's output files, logging any close error.
func unload(g *game.Game) {
	if err := g.Unload(); err != nil {
		slog.Error("failed to close output files", "error", err)
	}
}

// startSound opens the speaker. Audio failures are logged and the run continues silently.
func startSound(cfg *config.Config, enabled bool) *audio.SoundManager {
	if !enabled || !cfg.Audio.Enabled {
		return nil
	}
	sm := audio.NewSoundManager(cfg.Audio)
	if err := sm.Initialize(); err != nil {
		slog.Warn("audio disabled", "error", err)
		return nil
	}
	return sm
}
