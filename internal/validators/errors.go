package validators

import "errors"

// Sentinel validation errors. Both reject the request before any disk I/O
// or key-derivation work happens; the HTTP layer maps them to 400.
var (
	// ErrUnsupportedFileType is returned when the filename extension and the
	// declared MIME type do not both belong to the same allow-listed
	// category.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrFileTooLarge is returned when the declared size exceeds the
	// configured maximum.
	ErrFileTooLarge = errors.New("file too large")
)
