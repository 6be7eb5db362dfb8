package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"liftlens/internal/logging"
	"liftlens/internal/metrics"
)

// Store writes uploaded videos into a flat storage directory.
// Stored files are immutable: written once by Save, read back by the
// streaming handler, and never modified.
type Store struct {
	dir string
}

// New creates a Store rooted at dir. The directory must already exist
// (startup.LoadConfig validates it).
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the storage root.
func (s *Store) Dir() string {
	return s.dir
}

// Save streams an uploaded video to disk under a collision-free name of
// the form "{uuid}_{originalFilename}" and returns the absolute path.
func (s *Store) Save(r io.Reader, originalName string) (string, int64, error) {
	name := sanitizeName(originalName)
	path := filepath.Join(s.dir, uuid.NewString()+"_"+name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create video file: %w", err)
	}

	written, err := io.Copy(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		if rmErr := os.Remove(path); rmErr != nil {
			logging.Warn("failed to remove partial upload %s: %v", path, rmErr)
		}
		return "", 0, fmt.Errorf("failed to write video file: %w", err)
	}

	metrics.UploadBytesTotal.Add(float64(written))
	logging.Debug("Stored upload %s (%d bytes)", path, written)
	return path, written, nil
}

// sanitizeName strips any directory components from a client-supplied
// filename so a hostile name cannot escape the storage directory.
func sanitizeName(name string) string {
	name = filepath.Base(filepath.Clean(name))
	name = strings.ReplaceAll(name, string(os.PathSeparator), "")
	if name == "" || name == "." || name == ".." {
		return "video.mp4"
	}
	return name
}
