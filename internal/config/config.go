package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// FileName is the config file, looked up in the user's home directory.
	FileName = ".skirmish.conf"

	// DefaultTerminalFPS is the termloop render rate.
	DefaultTerminalFPS = 60
	// DefaultSnapshotEvery is how many frames pass between spectator frames.
	DefaultSnapshotEvery = 2
	// DefaultLogo is the ASCII art shown in the lobby banner.
	DefaultLogo = `  _
 |_|-->  *
 / \`
)

// Config holds the user configuration for skirmish.
type Config struct {
	Frontend      string // frontend to launch directly; empty shows the lobby
	TerminalFPS   int
	HighScorePath string // empty means the XDG data dir
	LogFilePath   string // empty means the XDG state dir
	SpectateAddr  string // empty disables the spectator feed
	SnapshotEvery int
	Seed          int64 // 0 seeds from the clock
	Logo          string
}

func Default() *Config {
	return &Config{
		TerminalFPS:   DefaultTerminalFPS,
		SnapshotEvery: DefaultSnapshotEvery,
		Logo:          DefaultLogo,
	}
}

// Path returns ~/.skirmish.conf.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}
	return filepath.Join(home, FileName), nil
}

// Load reads ~/.skirmish.conf. If the file doesn't exist or cannot be read,
// it returns defaults.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads a config file at path. Unknown keys and unparsable values
// are ignored so an old config never blocks startup.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	file, err := os.Open(path)
	if err != nil {
		return cfg, nil
	}
	defer func() {
		_ = file.Close()
	}()

	scanner := bufio.NewScanner(file)
	var logoLines []string
	inLogo := false

	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if inLogo {
			if trimmed == "logo_end" {
				inLogo = false
				cfg.Logo = strings.Join(logoLines, "\n")
				continue
			}
			logoLines = append(logoLines, line)
			continue
		}

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if trimmed == "logo_start" {
			inLogo = true
			logoLines = []string{}
			continue
		}

		key, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "frontend":
			cfg.Frontend = value
		case "terminal_fps":
			if fps, err := strconv.Atoi(value); err == nil && fps > 0 {
				cfg.TerminalFPS = fps
			}
		case "highscore_path":
			cfg.HighScorePath = ExpandHome(value)
		case "skirmish_log_path":
			cfg.LogFilePath = ExpandHome(value)
		case "spectate_addr":
			cfg.SpectateAddr = value
		case "snapshot_every":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				cfg.SnapshotEvery = n
			}
		case "seed":
			if seed, err := strconv.ParseInt(value, 10, 64); err == nil {
				cfg.Seed = seed
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}

	return cfg, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

const defaultConfig = `# skirmish configuration file

# Frontend to launch straight away, skipping the lobby: "window" or "terminal"
# frontend=

# Render rate of the terminal frontend. The game itself always runs at 60Hz.
terminal_fps=60

# High score file. Default: $XDG_DATA_HOME/skirmish/highscore.txt
# highscore_path=

# Log file path for skirmish internal logs
# If commented out or empty, logs will be stored in the default XDG state directory:
#   - macOS: ~/Library/Application Support/skirmish/skirmish.log
#   - Linux: ~/.local/state/skirmish/skirmish.log
# skirmish_log_path=

# Stream live game state to websocket viewers at ws://<addr>/ws
# Example: spectate_addr=127.0.0.1:8089
# spectate_addr=

# Frames between spectator updates
snapshot_every=2

# Fixed enemy spawn seed, 0 means random
seed=0

# ASCII logo (between logo_start and logo_end)
logo_start
  _
 |_|-->  *
 / \
logo_end
`

// CreateDefaultConfig creates ~/.skirmish.conf if it doesn't already exist.
// It never overwrites an existing file.
func CreateDefaultConfig() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return CreateDefaultConfigAt(path)
}

func CreateDefaultConfigAt(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return os.WriteFile(path, []byte(defaultConfig), 0644)
}

func (c *Config) String() string {
	return fmt.Sprintf("Frontend: %q\nTerminalFPS: %d\nSpectateAddr: %q\nSnapshotEvery: %d\nSeed: %d",
		c.Frontend, c.TerminalFPS, c.SpectateAddr, c.SnapshotEvery, c.Seed)
}
