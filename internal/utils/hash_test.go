package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashString(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		first := HashString("secret-password", "hash-key")
		second := HashString("secret-password", "hash-key")
		assert.Equal(t, first, second)
	})

	t.Run("different data different hash", func(t *testing.T) {
		first := HashString("password-one", "hash-key")
		second := HashString("password-two", "hash-key")
		assert.NotEqual(t, first, second)
	})

	t.Run("different key different hash", func(t *testing.T) {
		first := HashString("secret-password", "key-one")
		second := HashString("secret-password", "key-two")
		assert.NotEqual(t, first, second)
	})

	t.Run("hex encoded sha256 length", func(t *testing.T) {
		got := HashString("secret-password", "hash-key")
		assert.Len(t, got, 64)
	})
}
