package models

import (
	"time"

	"github.com/google/uuid"
)

// FileCategory is the validated class of an uploaded file. It determines
// which storage subdirectory the encrypted payload is written to.
type FileCategory string

const (
	// CategoryPDF covers application/pdf documents.
	CategoryPDF FileCategory = "pdf"

	// CategoryImage covers the allow-listed raster image formats.
	CategoryImage FileCategory = "image"
)

// File is the metadata record of one encrypted attachment.
//
// The payload itself never enters the database: it is encrypted with a key
// derived from the process-wide master secret and a per-file salt, and
// written to disk under EncryptedFilename. EncryptionSalt and KeyHash are
// the only pieces of cryptographic state persisted per file.
//
// EncryptionSalt is stored in cleartext on purpose — it is a KDF salt, not
// a key. KeyHash is the SHA-256 hex digest of the derived key and is used
// only to verify a re-derived key before decryption is attempted. It must
// never be treated as equivalent to the key itself.
type File struct {
	// FileID is the public identifier of the record.
	FileID uuid.UUID `json:"id"`

	// OriginalFilename is the user-supplied name. Untrusted: it is returned
	// on download but never used to build disk paths.
	OriginalFilename string `json:"original_filename"`

	// EncryptedFilename is the system-generated on-disk name. It embeds a
	// fresh random UUID plus the original extension and an ".enc" suffix,
	// and shares nothing else with OriginalFilename.
	EncryptedFilename string `json:"-"`

	// Category determines the storage subdirectory ("pdf" or "image").
	Category FileCategory `json:"category"`

	// SizeBytes is the plaintext byte length recorded at upload time.
	// It must equal the number of bytes that were actually encrypted.
	SizeBytes int64 `json:"size_bytes"`

	// MimeType is the declared MIME type, validated against Category.
	MimeType string `json:"mime_type"`

	// EncryptionSalt is the per-file random KDF salt, hex-encoded.
	EncryptionSalt string `json:"-"`

	// KeyHash is the SHA-256 hex digest of the derived encryption key.
	KeyHash string `json:"-"`

	// Description is optional free-form text, the only mutable metadata field.
	Description string `json:"description,omitempty"`

	// IsActive is the soft-delete flag. An inactive record stays on disk and
	// remains fetchable by id until a permanent delete removes both the row
	// and the ciphertext.
	IsActive bool `json:"is_active"`

	// PersonID references the person this attachment belongs to.
	PersonID uuid.UUID `json:"person_id"`

	// RecordID optionally references an associated incident record.
	RecordID uuid.NullUUID `json:"record_id,omitempty"`

	// UploadedBy references the user account that performed the upload.
	UploadedBy int64 `json:"uploaded_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the File model.
func (f File) TableName() string {
	return "files"
}

// FileStats is the aggregate view of stored attachments returned by the
// admin-only stats endpoint.
type FileStats struct {
	TotalActiveFiles int64 `json:"total_active_files"`
	TotalPDFFiles    int64 `json:"total_pdf_files"`
	TotalImageFiles  int64 `json:"total_image_files"`
	TotalSizeBytes   int64 `json:"total_size_bytes"`
}
