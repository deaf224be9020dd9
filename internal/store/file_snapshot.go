package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-table-order/internal/logger"
	"github.com/MKhiriev/go-table-order/models"
)

// fileSnapshotBackend keeps the snapshot in a single JSON file. Saves go to
// a temporary file in the same directory which is then renamed over the
// target, so the file on disk is always a complete document.
type fileSnapshotBackend struct {
	path   string
	logger *logger.Logger
}

// NewFileSnapshotBackend stores the snapshot at path.
func NewFileSnapshotBackend(path string, log *logger.Logger) SnapshotBackend {
	return &fileSnapshotBackend{path: path, logger: log}
}

func (f *fileSnapshotBackend) Load(ctx context.Context) (models.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return models.Snapshot{}, err
	}

	payload, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.Snapshot{}, ErrSnapshotNotFound
		}
		return models.Snapshot{}, fmt.Errorf("read snapshot file: %w", err)
	}

	return decodeSnapshot(payload)
}

func (f *fileSnapshotBackend) Save(ctx context.Context, snapshot models.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp snapshot file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(payload); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp snapshot file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp snapshot file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp snapshot file: %w", err)
	}
	if err = os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("chmod temp snapshot file: %w", err)
	}
	if err = os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("replace snapshot file: %w", err)
	}

	f.logger.Debug().Str("path", f.path).Int("bytes", len(payload)).Msg("snapshot saved")
	return nil
}

func (f *fileSnapshotBackend) Close() error {
	return nil
}
