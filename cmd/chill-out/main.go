package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/profile"
	"github.com/rs/zerolog"

	"github.com/pipejesus/chill-out/audio"
	"github.com/pipejesus/chill-out/config"
	"github.com/pipejesus/chill-out/core"
	"github.com/pipejesus/chill-out/engine"
	"github.com/pipejesus/chill-out/input"
	"github.com/pipejesus/chill-out/journal"
	"github.com/pipejesus/chill-out/logging"
	"github.com/pipejesus/chill-out/render"
)

var (
	configFlag  = flag.String("config", "", "Path to config file (default: ./chill-out.toml)")
	profileFlag = flag.String("profile", "", "Profile mode: cpu, mem")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "chill-out: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}

	log, logFile, err := logging.Setup(logging.Config{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		return err
	}
	defer logFile.Close()

	prof, err := startProfile(*profileFlag)
	if err != nil {
		return err
	}
	if prof != nil {
		defer prof.Stop()
	}

	keys, err := cfg.KeyTable()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	screen.HideCursor()

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	core.SetCrashScreen(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
		core.SetCrashScreen(nil)
		screen.Fini()
	}()

	src := input.NewTerminalSource(screen, keys, cfg.Input.HoldTimeout, log)
	src.Start()
	defer src.Stop()

	opts := engine.DefaultOptions(src)
	opts.Player = cfg.PlayerConfig()
	opts.Level = cfg.LevelConfig()
	opts.Renderer = render.NewTerminal(screen)
	opts.Log = log

	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio.Volume, log)
		if err := sm.Initialize(); err != nil {
			log.Warn().Err(err).Msg("audio initialization failed, continuing without audio")
		} else {
			opts.Sound = sm
			defer sm.Cleanup()
		}
	}

	if cfg.Journal.Enabled {
		j, err := journal.Open(journal.Config{Driver: cfg.Journal.Driver, DSN: cfg.Journal.DSN}, log)
		if err != nil {
			return err
		}
		opts.Recorder = j
		defer closeJournal(j, log)
	}

	world, err := engine.NewWorld(opts)
	if err != nil {
		return err
	}
	defer world.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().
		Int("enemies", cfg.Level.Enemies).
		Int("rate", cfg.Frame.Rate).
		Bool("audio", opts.Sound != nil).
		Bool("journal", opts.Recorder != nil).
		Msg("chill-out started")

	return world.Run(ctx, cfg.Frame.Rate)
}

func closeJournal(j *journal.Journal, log zerolog.Logger) {
	if err := j.Close(); err != nil {
		log.Warn().Err(err).Msg("journal close failed")
	}
}

// startProfile writes profiles to the working directory, output is quiet since the screen owns the terminal
func startProfile(mode string) (interface{ Stop() }, error) {
	switch mode {
	case "":
		return nil, nil
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet), nil
	case "mem":
		return profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet), nil
	}
	return nil, fmt.Errorf("unknown profile mode %q", mode)
}
