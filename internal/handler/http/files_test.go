package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgalab/sga-server/internal/crypto"
	"github.com/sgalab/sga-server/internal/service"
	"github.com/sgalab/sga-server/internal/store"
	"github.com/sgalab/sga-server/internal/validators"
	"github.com/sgalab/sga-server/models"
)

var (
	adminPrincipal    = models.Principal{UserID: 1, Username: "root", RoleName: models.RoleAdmin}
	moderatePrincipal = models.Principal{UserID: 2, Username: "mod", RoleName: models.RoleModerate}
	viewPrincipal     = models.Principal{UserID: 3, Username: "viewer", RoleName: models.RoleView}
)

// multipartUpload builds a multipart request body with one file part and
// the given form fields.
func multipartUpload(t *testing.T, filename, content string, fields map[string]string) (io.Reader, string) {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadFile_Success(t *testing.T) {
	personID := uuid.New()
	fileID := uuid.New()

	files := &mockFileService{
		uploadFn: func(_ context.Context, req service.UploadRequest) (models.File, error) {
			assert.Equal(t, "scan.pdf", req.OriginalFilename)
			assert.Equal(t, personID, req.PersonID)
			assert.Equal(t, int64(2), req.UploadedBy)
			return models.File{FileID: fileID, OriginalFilename: "scan.pdf", IsActive: true}, nil
		},
	}
	h := newTestHandler(t, principalOf(moderatePrincipal), files, nil)
	router := h.Init()

	body, contentType := multipartUpload(t, "scan.pdf", "%PDF-1.7 payload", map[string]string{
		"person_id": personID.String(),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/files", body)
	req.Header.Set("Authorization", "Bearer mod-token")
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.UploadedFileResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fileID, resp.File.FileID)
}

func TestUploadFile_ViewRoleForbidden(t *testing.T) {
	h := newTestHandler(t, principalOf(viewPrincipal), &mockFileService{}, nil)
	router := h.Init()

	body, contentType := multipartUpload(t, "scan.pdf", "payload", map[string]string{
		"person_id": uuid.NewString(),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/files", body)
	req.Header.Set("Authorization", "Bearer viewer-token")
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUploadFile_InvalidPersonID(t *testing.T) {
	h := newTestHandler(t, principalOf(adminPrincipal), &mockFileService{}, nil)
	router := h.Init()

	body, contentType := multipartUpload(t, "scan.pdf", "payload", map[string]string{
		"person_id": "not-a-uuid",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/files", body)
	req.Header.Set("Authorization", "Bearer admin-token")
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadFile_UnsupportedType(t *testing.T) {
	files := &mockFileService{
		uploadFn: func(_ context.Context, _ service.UploadRequest) (models.File, error) {
			return models.File{}, validators.ErrUnsupportedFileType
		},
	}
	h := newTestHandler(t, principalOf(adminPrincipal), files, nil)
	router := h.Init()

	body, contentType := multipartUpload(t, "malware.exe", "MZ", map[string]string{
		"person_id": uuid.NewString(),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/files", body)
	req.Header.Set("Authorization", "Bearer admin-token")
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDownloadFile_Success(t *testing.T) {
	fileID := uuid.New()
	files := &mockFileService{
		downloadFn: func(_ context.Context, id uuid.UUID) (models.File, []byte, error) {
			assert.Equal(t, fileID, id)
			file := models.File{
				FileID:           fileID,
				OriginalFilename: "scan.pdf",
				MimeType:         "application/pdf",
			}
			return file, []byte("%PDF-1.7 payload"), nil
		},
	}
	h := newTestHandler(t, principalOf(viewPrincipal), files, nil)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/files/"+fileID.String()+"/download", nil)
	req.Header.Set("Authorization", "Bearer viewer-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), `"scan.pdf"`)
	assert.Equal(t, "%PDF-1.7 payload", rec.Body.String())
}

func TestDownloadFile_NotFound(t *testing.T) {
	files := &mockFileService{
		downloadFn: func(_ context.Context, _ uuid.UUID) (models.File, []byte, error) {
			return models.File{}, nil, store.ErrFileRecordNotFound
		},
	}
	h := newTestHandler(t, principalOf(viewPrincipal), files, nil)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/files/"+uuid.NewString()+"/download", nil)
	req.Header.Set("Authorization", "Bearer viewer-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDownloadFile_BlobMissing(t *testing.T) {
	files := &mockFileService{
		downloadFn: func(_ context.Context, _ uuid.UUID) (models.File, []byte, error) {
			return models.File{}, nil, fmt.Errorf("decrypting stored file failed: %w", crypto.ErrFileNotFound)
		},
	}
	h := newTestHandler(t, principalOf(viewPrincipal), files, nil)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/files/"+uuid.NewString()+"/download", nil)
	req.Header.Set("Authorization", "Bearer viewer-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListFiles(t *testing.T) {
	files := &mockFileService{
		listFn: func(_ context.Context, category models.FileCategory, limit, offset int) ([]models.File, error) {
			assert.Equal(t, models.CategoryPDF, category)
			assert.Equal(t, 10, limit)
			assert.Equal(t, 5, offset)
			return []models.File{{FileID: uuid.New(), Category: models.CategoryPDF}}, nil
		},
	}
	h := newTestHandler(t, principalOf(viewPrincipal), files, nil)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/files?type=pdf&limit=10&skip=5", nil)
	req.Header.Set("Authorization", "Bearer viewer-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.File
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Len(t, got, 1)
}

func TestListFiles_InvalidLimit(t *testing.T) {
	h := newTestHandler(t, principalOf(viewPrincipal), &mockFileService{}, nil)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/files?limit=ten", nil)
	req.Header.Set("Authorization", "Bearer viewer-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListPersonFiles(t *testing.T) {
	personID := uuid.New()
	files := &mockFileService{
		listByPersonFn: func(_ context.Context, id uuid.UUID, includeInactive bool) ([]models.File, error) {
			assert.Equal(t, personID, id)
			assert.True(t, includeInactive)
			return []models.File{{FileID: uuid.New(), PersonID: personID}}, nil
		},
	}
	h := newTestHandler(t, principalOf(viewPrincipal), files, nil)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/persons/"+personID.String()+"/files?include_inactive=true", nil)
	req.Header.Set("Authorization", "Bearer viewer-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.File
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Len(t, got, 1)
}

func TestListPersonFiles_PersonMissing(t *testing.T) {
	files := &mockFileService{
		listByPersonFn: func(_ context.Context, _ uuid.UUID, _ bool) ([]models.File, error) {
			return nil, service.ErrPersonNotFound
		},
	}
	h := newTestHandler(t, principalOf(viewPrincipal), files, nil)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/persons/"+uuid.NewString()+"/files", nil)
	req.Header.Set("Authorization", "Bearer viewer-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateFileDescription(t *testing.T) {
	fileID := uuid.New()
	files := &mockFileService{
		updateDescriptionFn: func(_ context.Context, id uuid.UUID, description string) (models.File, error) {
			assert.Equal(t, fileID, id)
			assert.Equal(t, "updated text", description)
			return models.File{FileID: fileID, Description: description}, nil
		},
	}
	h := newTestHandler(t, principalOf(moderatePrincipal), files, nil)
	router := h.Init()

	req := httptest.NewRequest(http.MethodPatch, "/api/files/"+fileID.String(), strings.NewReader(`{"description":"updated text"}`))
	req.Header.Set("Authorization", "Bearer mod-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSoftDeleteFile(t *testing.T) {
	fileID := uuid.New()
	files := &mockFileService{
		softDeleteFn: func(_ context.Context, id uuid.UUID) error {
			assert.Equal(t, fileID, id)
			return nil
		},
	}
	h := newTestHandler(t, principalOf(moderatePrincipal), files, nil)
	router := h.Init()

	req := httptest.NewRequest(http.MethodDelete, "/api/files/"+fileID.String(), nil)
	req.Header.Set("Authorization", "Bearer mod-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHardDeleteFile_ModerateForbidden(t *testing.T) {
	h := newTestHandler(t, principalOf(moderatePrincipal), &mockFileService{}, nil)
	router := h.Init()

	req := httptest.NewRequest(http.MethodDelete, "/api/files/"+uuid.NewString()+"/permanent", nil)
	req.Header.Set("Authorization", "Bearer mod-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHardDeleteFile_Admin(t *testing.T) {
	fileID := uuid.New()
	files := &mockFileService{
		hardDeleteFn: func(_ context.Context, id uuid.UUID) error {
			assert.Equal(t, fileID, id)
			return nil
		},
	}
	h := newTestHandler(t, principalOf(adminPrincipal), files, nil)
	router := h.Init()

	req := httptest.NewRequest(http.MethodDelete, "/api/files/"+fileID.String()+"/permanent", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestFileStats_Admin(t *testing.T) {
	files := &mockFileService{
		statsFn: func(_ context.Context) (models.FileStats, error) {
			return models.FileStats{TotalActiveFiles: 3, TotalPDFFiles: 2, TotalImageFiles: 1, TotalSizeBytes: 1024}, nil
		},
	}
	h := newTestHandler(t, principalOf(adminPrincipal), files, nil)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/files/stats", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.FileStats
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, int64(3), got.TotalActiveFiles)
}

func TestFileStats_InternalErrorBodyIsGeneric(t *testing.T) {
	files := &mockFileService{
		statsFn: func(_ context.Context) (models.FileStats, error) {
			return models.FileStats{}, fmt.Errorf("%w: pq: relation \"files\" does not exist", store.ErrExecutingQuery)
		},
	}
	h := newTestHandler(t, principalOf(adminPrincipal), files, nil)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/files/stats", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "collecting file stats failed\n", rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "relation")
}

func TestListAuditEntries_Admin(t *testing.T) {
	audit := &mockAuditService{
		listFn: func(_ context.Context, limit int) ([]models.AuditEntry, error) {
			assert.Equal(t, 10, limit)
			return []models.AuditEntry{{Action: "LOGIN_FAILED", EntityType: models.AuditEntityAuthentication}}, nil
		},
	}
	h := newTestHandler(t, principalOf(adminPrincipal), nil, audit)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/audit?limit=10", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.AuditEntry
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Len(t, got, 1)
}
