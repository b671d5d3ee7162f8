package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sgalab/sga-server/internal/crypto"
	"github.com/sgalab/sga-server/internal/service"
	"github.com/sgalab/sga-server/internal/store"
	"github.com/sgalab/sga-server/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"missing blob", crypto.ErrFileNotFound, http.StatusNotFound},
		{"missing blob wrapped", fmt.Errorf("decrypting stored file failed: %w", crypto.ErrFileNotFound), http.StatusNotFound},
		{"file too large", validators.ErrFileTooLarge, http.StatusBadRequest},
		{"unsupported type", validators.ErrUnsupportedFileType, http.StatusBadRequest},
		{"missing metadata row", store.ErrFileRecordNotFound, http.StatusNotFound},
		{"missing person", service.ErrPersonNotFound, http.StatusNotFound},
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized},
		{"duplicate username", store.ErrUsernameAlreadyExists, http.StatusConflict},
		{"stale key hash", crypto.ErrInvalidEncryptionKey, http.StatusInternalServerError},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
