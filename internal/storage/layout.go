// Package storage maps validated file categories to physical directories
// under the configured base path and keeps those directories in shape:
// created idempotently at startup, marked as VCS-ignored, and periodically
// swept of stale temporary artifacts.
//
// Disk layout:
//
//	{base}/documents/{encrypted_filename}   — pdf category
//	{base}/images/{encrypted_filename}      — image category
//	{base}/temp/                            — in-flight artifacts only
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sgalab/sga-server/internal/config"
	"github.com/sgalab/sga-server/internal/logger"
	"github.com/sgalab/sga-server/models"
)

// categorySubdirs maps a file category to its storage subdirectory.
var categorySubdirs = map[models.FileCategory]string{
	models.CategoryPDF:   "documents",
	models.CategoryImage: "images",
}

// tempSubdir holds artifacts that are mid-pipeline (e.g. ciphertext written
// before its rename) and anything the cleanup worker may reclaim.
const tempSubdir = "temp"

// ignoreMarker is written into every storage directory so that encrypted
// and temporary artifacts never end up tracked by a VCS checkout that
// happens to contain the storage tree. Deployment hygiene, not correctness.
const ignoreMarker = "# encrypted and temporary artifacts are not tracked\n*.enc\n*.tmp\n"

// Layout resolves category directories under a single base path.
// It carries no mutable state and is safe for concurrent use.
type Layout struct {
	baseDir string
	logger  *logger.Logger
}

// NewLayout constructs a Layout rooted at cfg.BaseDir.
func NewLayout(cfg config.Files, logger *logger.Logger) *Layout {
	return &Layout{
		baseDir: cfg.BaseDir,
		logger:  logger,
	}
}

// PathFor returns the directory a file of the given category is stored in.
// Unknown categories resolve to the temp directory: it always exists, so a
// write there cannot fail on a missing parent, and the cleanup worker
// reclaims whatever lands in it.
func (l *Layout) PathFor(category models.FileCategory) string {
	subdir, ok := categorySubdirs[category]
	if !ok {
		subdir = tempSubdir
	}
	return filepath.Join(l.baseDir, subdir)
}

// TempDir returns the directory for in-flight artifacts.
func (l *Layout) TempDir() string {
	return filepath.Join(l.baseDir, tempSubdir)
}

// FullPath returns the absolute location of one encrypted file.
func (l *Layout) FullPath(category models.FileCategory, encryptedFilename string) string {
	return filepath.Join(l.PathFor(category), encryptedFilename)
}

// EnsureDirectories creates every category subdirectory plus the temp
// directory, including missing parents. Idempotent: existing directories
// are left untouched. Each directory receives an ignore-marker file unless
// one is already present.
func (l *Layout) EnsureDirectories() error {
	dirs := make([]string, 0, len(categorySubdirs)+1)
	for category := range categorySubdirs {
		dirs = append(dirs, l.PathFor(category))
	}
	dirs = append(dirs, l.TempDir())

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create storage directory %s: %w", dir, err)
		}

		markerPath := filepath.Join(dir, ".gitignore")
		if _, err := os.Stat(markerPath); os.IsNotExist(err) {
			if err := os.WriteFile(markerPath, []byte(ignoreMarker), 0o640); err != nil {
				return fmt.Errorf("write ignore marker in %s: %w", dir, err)
			}
		}
	}

	return nil
}

// CleanupTemp removes regular files in the temp directory whose modification
// time is older than maxAge, and reports how many were removed. Individual
// removal failures are logged and skipped; they never abort the sweep.
func (l *Layout) CleanupTemp(maxAge time.Duration) (int, error) {
	tempDir := l.TempDir()

	entries, err := os.ReadDir(tempDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("read temp directory: %w", err)
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0

	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == ".gitignore" {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(tempDir, entry.Name())
		if err := os.Remove(path); err != nil {
			l.logger.Err(err).Str("file", entry.Name()).Msg("failed to remove stale temp file")
			continue
		}
		removed++
	}

	return removed, nil
}
