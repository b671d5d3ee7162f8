// Package validators holds pure input validation for the file pipeline.
// Both checks here are side-effect-free and run before any encryption work,
// so rejected uploads cost no disk I/O and no KDF iterations.
package validators

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sgalab/sga-server/models"
)

// allowedMimeTypes maps each category to the MIME types it accepts.
var allowedMimeTypes = map[models.FileCategory][]string{
	models.CategoryPDF: {"application/pdf"},
	models.CategoryImage: {
		"image/jpeg",
		"image/png",
		"image/gif",
		"image/bmp",
		"image/webp",
	},
}

// allowedExtensions maps each category to the filename extensions it accepts.
var allowedExtensions = map[models.FileCategory][]string{
	models.CategoryPDF:   {".pdf"},
	models.CategoryImage: {".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp"},
}

// FileValidator enforces the upload allow-list and size cap.
// It is stateless apart from the configured maximum and safe for
// concurrent use.
type FileValidator struct {
	maxFileSizeBytes int64
}

// NewFileValidator constructs a FileValidator with the given size cap.
func NewFileValidator(maxFileSizeBytes int64) *FileValidator {
	return &FileValidator{maxFileSizeBytes: maxFileSizeBytes}
}

// ValidateFileType checks that the filename's extension AND the declared
// MIME type belong to the same allow-listed category, and returns that
// category. Extension matching is case-insensitive.
func (v *FileValidator) ValidateFileType(filename, mimeType string) (models.FileCategory, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	for category, extensions := range allowedExtensions {
		if !contains(extensions, ext) {
			continue
		}
		if contains(allowedMimeTypes[category], mimeType) {
			return category, nil
		}
	}

	return "", fmt.Errorf("%w: %s (%s)", ErrUnsupportedFileType, filename, mimeType)
}

// ValidateFileSize checks the declared size against the configured maximum.
func (v *FileValidator) ValidateFileSize(sizeBytes int64) error {
	if sizeBytes > v.maxFileSizeBytes {
		return fmt.Errorf("%w: %d bytes exceeds maximum of %d", ErrFileTooLarge, sizeBytes, v.maxFileSizeBytes)
	}

	return nil
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
