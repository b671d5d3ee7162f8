package crypto

import "errors"

// Sentinel errors returned by [FileCipherService]. Callers should use
// [errors.Is] to match against these values; the HTTP layer maps them to
// status codes.
var (
	// ErrInvalidEncryptionKey is returned when the key re-derived from the
	// stored salt does not hash to the stored key hash. It signals a rotated
	// master secret or corrupted metadata, never a user mistake, and must
	// not be retried with the same inputs.
	ErrInvalidEncryptionKey = errors.New("encryption key verification failed")

	// ErrDecryptionFailed is returned when the AEAD authentication check
	// fails on a ciphertext whose key verified correctly — the stored blob
	// was tampered with or corrupted on disk.
	ErrDecryptionFailed = errors.New("file decryption failed")

	// ErrFileNotFound is returned by DecryptFromDisk when the ciphertext
	// path does not exist. Detected before any cryptographic work.
	ErrFileNotFound = errors.New("encrypted file not found")
)
