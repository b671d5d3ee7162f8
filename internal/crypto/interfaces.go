package crypto

import "io"

//go:generate mockgen -source=interfaces.go -destination=../mock/file_cipher_service_mock.go -package=mock

// FileCipherService owns all attachment cryptography. It knows nothing about
// the database, HTTP, or users; its single job is turning plaintext payloads
// into encrypted on-disk artifacts and back.
//
// Scheme per file:
//
//	salt    = GenerateSalt()                     (fresh, never reused)
//	key     = PBKDF2(masterSecret, salt)         (deterministic)
//	keyHash = SHA-256(key)                       (verification only)
//	blob    = AES-256-GCM(key, plaintext)        (nonce ‖ ciphertext)
//
// The salt and keyHash are persisted in cleartext next to the file metadata.
// Decryption re-derives the key from the stored salt and refuses to touch
// the ciphertext unless the re-derived key's hash matches keyHash — a
// mismatch means the master secret was rotated or the metadata is corrupt,
// and retrying with the same inputs can never succeed.
type FileCipherService interface {
	// GenerateSalt produces a fresh random 32-byte salt, hex-encoded.
	// The salt is not a secret; it only guarantees that two files never
	// share a derived key under the same master secret.
	GenerateSalt() (string, error)

	// DeriveKey derives the 256-bit encryption key for the given salt from
	// the process-wide master secret. Deterministic: the same salt always
	// yields the same key.
	DeriveKey(salt string) []byte

	// Encrypt seals plaintext under a freshly derived key and returns the
	// ciphertext blob together with the generated on-disk filename, the
	// salt, and the key hash the caller must persist.
	Encrypt(plaintext []byte, originalFilename string) (EncryptedFile, error)

	// Decrypt re-derives the key from salt, verifies it against keyHash,
	// and opens the ciphertext blob. Returns ErrInvalidEncryptionKey when
	// the hashes do not match (no decryption is attempted) and
	// ErrDecryptionFailed when the GCM authentication check fails.
	Decrypt(ciphertext []byte, salt, keyHash string) ([]byte, error)

	// EncryptToDisk reads the whole stream, encrypts it, and writes the
	// ciphertext atomically (temp file + rename) into targetDir, creating
	// the directory if needed.
	EncryptToDisk(stream io.Reader, targetDir, originalFilename string) (EncryptedFile, error)

	// DecryptFromDisk loads the ciphertext at path and decrypts it.
	// Returns ErrFileNotFound before any cryptographic work when the path
	// does not exist. The operation is strictly read-only.
	DecryptFromDisk(path, salt, keyHash string) ([]byte, error)
}
