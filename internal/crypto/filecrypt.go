package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/crypto/pbkdf2"
)

// encryptedFileSuffix marks on-disk artifacts as ciphertext. It is appended
// after the original extension so that operators can still tell a stored
// PDF from a stored image at a glance.
const encryptedFileSuffix = ".enc"

// EncryptedFile is the result of one encryption operation: the ciphertext
// blob plus everything the caller must persist to be able to decrypt later.
type EncryptedFile struct {
	// Ciphertext is the sealed blob: nonce (12 bytes) ‖ GCM ciphertext.
	// Empty when produced by EncryptToDisk, which writes it out instead.
	Ciphertext []byte

	// EncryptedFilename is the generated on-disk name: {uuid}{ext}.enc.
	// It shares nothing with the original name except the extension.
	EncryptedFilename string

	// Salt is the hex-encoded per-file KDF salt.
	Salt string

	// KeyHash is the SHA-256 hex digest of the derived key.
	KeyHash string

	// Size is the plaintext byte length that was encrypted.
	Size int64
}

// fileCipherService is the private implementation of [FileCipherService].
type fileCipherService struct {
	// masterSecret is process-wide, read-only configuration. Two files
	// never share a key because every derivation mixes in a fresh salt.
	masterSecret []byte

	// PBKDF2 tuning parameters. Stored in the struct so tests can lower
	// the iteration count without weakening production derivations.
	kdfIterations int
	kdfKeyLen     int
}

// NewFileCipherService constructs a [FileCipherService] bound to the given
// master secret, with PBKDF2-HMAC-SHA256 parameters:
//   - iterations: 100 000
//   - key length: 32 bytes (256 bits)
func NewFileCipherService(masterSecret string) FileCipherService {
	return &fileCipherService{
		masterSecret:  []byte(masterSecret),
		kdfIterations: 100_000,
		kdfKeyLen:     32, // 256 bits
	}
}

// GenerateSalt implements [FileCipherService]. It reads 32 random bytes from
// the OS CSPRNG and returns them hex-encoded (64 characters). Returns an
// error if the random read fails.
func (f *fileCipherService) GenerateSalt() (string, error) {
	salt := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}
	return hex.EncodeToString(salt), nil
}

// DeriveKey implements [FileCipherService]. The hex string itself is the KDF
// salt input, so the stored representation and the derivation input are
// always identical — no decode step that could drift between writers.
func (f *fileCipherService) DeriveKey(salt string) []byte {
	return pbkdf2.Key(f.masterSecret, []byte(salt), f.kdfIterations, f.kdfKeyLen, sha256.New)
}

// hashKey computes the SHA-256 hex digest of a derived key. The digest is
// persisted for verification only; it is never used as key material.
func hashKey(key []byte) string {
	digest := sha256.Sum256(key)
	return hex.EncodeToString(digest[:])
}

// generateFilename builds a collision-free on-disk name from a fresh UUID,
// the original file's extension, and the encryption marker suffix. The
// original base name never reaches the filesystem.
func generateFilename(originalFilename string) string {
	return uuid.NewString() + filepath.Ext(originalFilename) + encryptedFileSuffix
}

// Encrypt implements [FileCipherService].
func (f *fileCipherService) Encrypt(plaintext []byte, originalFilename string) (EncryptedFile, error) {
	salt, err := f.GenerateSalt()
	if err != nil {
		return EncryptedFile{}, fmt.Errorf("generate salt: %w", err)
	}

	key := f.DeriveKey(salt)

	block, err := aes.NewCipher(key)
	if err != nil {
		return EncryptedFile{}, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return EncryptedFile{}, fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return EncryptedFile{}, fmt.Errorf("generate nonce: %w", err)
	}

	// Prepend the nonce so Decrypt can split it out: blob = nonce ‖ ciphertext.
	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)

	return EncryptedFile{
		Ciphertext:        append(nonce, ciphertext...),
		EncryptedFilename: generateFilename(originalFilename),
		Salt:              salt,
		KeyHash:           hashKey(key),
		Size:              int64(len(plaintext)),
	}, nil
}

// Decrypt implements [FileCipherService]. Key verification happens before
// any AEAD work: a wrong key hash means decryption could never succeed, so
// the ciphertext is not even parsed.
func (f *fileCipherService) Decrypt(ciphertext []byte, salt, keyHash string) ([]byte, error) {
	key := f.DeriveKey(salt)

	if hashKey(key) != keyHash {
		return nil, ErrInvalidEncryptionKey
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrDecryptionFailed)
	}

	// Split the blob into nonce and actual ciphertext.
	nonce, sealed := ciphertext[:nonceSize], ciphertext[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		// Auth-tag mismatch: the stored blob was tampered with or corrupted.
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return plaintext, nil
}

// EncryptToDisk implements [FileCipherService]. The ciphertext is first
// written to a temp file inside targetDir and then renamed into place, so a
// crash mid-write never leaves a partial artifact under the final name.
func (f *fileCipherService) EncryptToDisk(stream io.Reader, targetDir, originalFilename string) (EncryptedFile, error) {
	plaintext, err := io.ReadAll(stream)
	if err != nil {
		return EncryptedFile{}, fmt.Errorf("read upload stream: %w", err)
	}

	encrypted, err := f.Encrypt(plaintext, originalFilename)
	if err != nil {
		return EncryptedFile{}, err
	}

	if err := os.MkdirAll(targetDir, 0o750); err != nil {
		return EncryptedFile{}, fmt.Errorf("ensure target directory: %w", err)
	}

	tmp, err := os.CreateTemp(targetDir, "upload-*.tmp")
	if err != nil {
		return EncryptedFile{}, fmt.Errorf("create temp file: %w", err)
	}

	if _, err := tmp.Write(encrypted.Ciphertext); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return EncryptedFile{}, fmt.Errorf("write ciphertext: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return EncryptedFile{}, fmt.Errorf("close temp file: %w", err)
	}

	finalPath := filepath.Join(targetDir, encrypted.EncryptedFilename)
	if err := os.Rename(tmp.Name(), finalPath); err != nil {
		os.Remove(tmp.Name())
		return EncryptedFile{}, fmt.Errorf("rename ciphertext into place: %w", err)
	}

	// The blob is on disk now; callers persist metadata, not bytes.
	encrypted.Ciphertext = nil

	return encrypted, nil
}

// DecryptFromDisk implements [FileCipherService].
func (f *fileCipherService) DecryptFromDisk(path, salt, keyHash string) ([]byte, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("stat encrypted file: %w", err)
	}

	ciphertext, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read encrypted file: %w", err)
	}

	return f.Decrypt(ciphertext, salt, keyHash)
}
