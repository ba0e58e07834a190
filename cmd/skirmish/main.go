package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shvbsle/skirmish/internal/config"
	"github.com/shvbsle/skirmish/internal/frontends"
	"github.com/shvbsle/skirmish/internal/frontends/terminal"
	"github.com/shvbsle/skirmish/internal/frontends/window"
	"github.com/shvbsle/skirmish/internal/game"
	"github.com/shvbsle/skirmish/internal/highscore"
	"github.com/shvbsle/skirmish/internal/log"
	"github.com/shvbsle/skirmish/internal/spectate"
	"github.com/shvbsle/skirmish/internal/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	logLevelFlag := flag.String("log-level", "", "Set log level (debug, info, warn, error). Defaults to info.")
	frontendFlag := flag.String("frontend", "", "Launch this frontend directly instead of showing the lobby (window, terminal).")
	spectateFlag := flag.String("spectate", "", "Serve the spectator feed on this address, e.g. 127.0.0.1:8089.")
	seedFlag := flag.Int64("seed", 0, "Fixed enemy spawn seed. 0 means random.")
	flag.Parse()

	logLevel := parseLogLevel(*logLevelFlag)

	if err := config.CreateDefaultConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create default config: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load configuration: %v\n", err)
		return 1
	}
	applyFlags(cfg, *frontendFlag, *spectateFlag, *seedFlag)

	logFile, err := setupLogging(logLevel, cfg.LogFilePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not setup logging: %v\n", err)
	} else {
		defer func() {
			if closeErr := logFile.Close(); closeErr != nil {
				slog.Error("failed to close log file", "error", closeErr)
			}
		}()
	}

	slog.Info("skirmish starting", "version", tui.Version)
	slog.Info("configuration loaded",
		"frontend", cfg.Frontend,
		"terminal_fps", cfg.TerminalFPS,
		"spectate_addr", cfg.SpectateAddr,
		"snapshot_every", cfg.SnapshotEvery,
		"seed", cfg.Seed)

	store, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var publisher game.Publisher
	if cfg.SpectateAddr != "" {
		hub := spectate.NewHub(log.Spectate())
		publisher = hub
		go func() {
			if err := hub.Serve(ctx, cfg.SpectateAddr); err != nil {
				slog.Error("spectator feed failed", "addr", cfg.SpectateAddr, "error", err)
			}
		}()
	}

	newSession := func() *game.Session {
		return game.NewSession(game.Options{
			Store:         store,
			Seed:          cfg.Seed,
			Publisher:     publisher,
			SnapshotEvery: cfg.SnapshotEvery,
			Logger:        log.Sim(),
		})
	}

	registry := frontends.NewRegistry()
	registry.Register(frontends.Once(window.New(newSession)))
	registry.Register(terminal.New(newSession, cfg.TerminalFPS))
	slog.Info("loaded frontends", "count", len(registry.List()))

	if cfg.Frontend != "" {
		f, ok := registry.Lookup(cfg.Frontend)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown frontend %q\n", cfg.Frontend)
			return 1
		}
		return launch(f)
	}

	slog.Info("starting lobby")
	for {
		high := highscore.LoadOrDefault(store, log.TUI())
		p := tea.NewProgram(
			tui.New(cfg, registry, high),
			tea.WithAltScreen(),
		)

		finalModel, err := p.Run()
		if err != nil {
			slog.Error("TUI error", "error", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}

		model, ok := finalModel.(tui.Model)
		if !ok {
			break
		}

		f := model.GetFrontendToLaunch()
		if f == nil {
			break
		}

		if code := launch(f); code != 0 {
			return code
		}

		if frontends.IsExclusive(f) {
			slog.Info("frontend ended the session", "frontend", f.Name())
			break
		}

		slog.Info("returning to lobby")
	}

	slog.Info("skirmish exiting")
	return 0
}

// applyFlags lets command line flags override the config file.
func applyFlags(cfg *config.Config, frontend, spectateAddr string, seed int64) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "frontend":
			cfg.Frontend = frontend
		case "spectate":
			cfg.SpectateAddr = spectateAddr
		case "seed":
			cfg.Seed = seed
		}
	})
}

func openStore(cfg *config.Config) (highscore.Store, error) {
	path := cfg.HighScorePath
	if path == "" {
		var err error
		path, err = highscore.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("could not resolve high score path: %w", err)
		}
	}
	slog.Info("high score file", "path", path)
	return highscore.NewFileStore(path), nil
}

func launch(f frontends.Frontend) int {
	slog.Info("launching frontend", "frontend", f.Name())
	if err := f.Launch(); err != nil {
		slog.Error("frontend failed", "frontend", f.Name(), "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
