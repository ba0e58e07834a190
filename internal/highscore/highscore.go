package highscore

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const FileName = "highscore.txt"

// ErrCorrupt is returned by Load when the stored value is not a
// non-negative decimal integer.
var ErrCorrupt = errors.New("corrupted high score")

// Store persists a single high score.
type Store interface {
	// Load returns the stored score. A store that has never been saved to
	// returns (0, nil).
	Load() (int, error)

	// Save overwrites the stored score.
	Save(score int) error
}

// DefaultPath returns the high score file under the XDG data directory,
// creating the parent directory if needed.
func DefaultPath() (string, error) {
	path, err := xdg.DataFile(filepath.Join("skirmish", FileName))
	if err != nil {
		return "", fmt.Errorf("could not resolve high score path: %w", err)
	}
	return path, nil
}

// FileStore keeps the score as plain decimal text, one integer per file.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (f *FileStore) Load() (int, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || score < 0 {
		return 0, fmt.Errorf("%s: %w", f.Path, ErrCorrupt)
	}

	return score, nil
}

// Save rewrites the whole file. The new value goes to a temp file in the
// same directory first and is renamed over the old one.
func (f *FileStore) Save(score int) error {
	if score < 0 {
		return fmt.Errorf("refusing to save negative high score %d", score)
	}

	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create high score directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, FileName+".*")
	if err != nil {
		return fmt.Errorf("could not create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(strconv.Itoa(score)); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("could not write high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("could not write high score: %w", err)
	}

	if err := os.Rename(tmpPath, f.Path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("could not replace high score file: %w", err)
	}

	return nil
}

// MemoryStore is a Store that never touches disk.
type MemoryStore struct {
	mu    sync.Mutex
	score int
	saves int
}

func NewMemoryStore(score int) *MemoryStore {
	return &MemoryStore{score: score}
}

func (m *MemoryStore) Load() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, nil
}

func (m *MemoryStore) Save(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = score
	m.saves++
	return nil
}

// Saves returns how many times Save has been called.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// LoadOrDefault loads the score and falls back to zero on any error. A
// missing or corrupt file is not worth stopping the game for.
func LoadOrDefault(store Store, logger *slog.Logger) int {
	score, err := store.Load()
	if err != nil {
		if logger != nil {
			logger.Warn("could not load high score, starting from zero", "error", err)
		}
		return 0
	}
	return score
}
