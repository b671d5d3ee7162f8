package http

import (
	"errors"
	"net/http"

	"github.com/sgalab/sga-server/internal/crypto"
	"github.com/sgalab/sga-server/internal/service"
	"github.com/sgalab/sga-server/internal/store"
	"github.com/sgalab/sga-server/internal/validators"
)

// errorStatusMap is the single place where domain errors are translated to
// HTTP status codes. Identity failures map to 401 and never to 403: a 403
// is only ever produced by the role check in the access gate, meaning "we
// know who you are and the answer is no".
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrUserInactive:            http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenMalformed:          http.StatusUnauthorized,
	service.ErrPersonNotFound:          http.StatusNotFound,
	service.ErrRecordNotFound:          http.StatusNotFound,

	validators.ErrUnsupportedFileType: http.StatusBadRequest,
	validators.ErrFileTooLarge:        http.StatusBadRequest,

	crypto.ErrInvalidEncryptionKey: http.StatusInternalServerError,
	crypto.ErrDecryptionFailed:     http.StatusInternalServerError,
	crypto.ErrFileNotFound:         http.StatusNotFound,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusUnauthorized,
	store.ErrRoleNotFound:          http.StatusInternalServerError,
	store.ErrFileRecordNotFound:    http.StatusNotFound,
	store.ErrFileNotSaved:          http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
