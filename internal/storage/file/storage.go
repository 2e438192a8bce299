package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrEmptyBuffer is returned when a sink is asked to persist no data.
var ErrEmptyBuffer = errors.New("empty output buffer")

// Storage writes encoded images to the local filesystem.
type Storage struct{}

// NewStorage creates a new local filesystem Storage.
func NewStorage() *Storage {
	return &Storage{}
}

// Save writes data to path, overwriting any existing file. The write goes
// through a uniquely named temp file in the destination directory followed
// by a rename, so a failed run never leaves a truncated output behind. Any
// failure is surfaced before Save returns.
func (s *Storage) Save(ctx context.Context, path string, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("failed to save %s: %w", path, ErrEmptyBuffer)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to save file: %w", err)
	}

	return nil
}
