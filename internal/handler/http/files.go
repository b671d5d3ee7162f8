package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sgalab/sga-server/internal/logger"
	"github.com/sgalab/sga-server/internal/service"
	"github.com/sgalab/sga-server/internal/utils"
	"github.com/sgalab/sga-server/models"
)

// uploadFormMemory caps how much of a multipart upload is buffered in
// memory before spilling to a temp file.
const uploadFormMemory = 32 << 20

// uploadFile accepts a multipart form with a "file" part plus "person_id",
// and optionally "record_id" and "description" fields, and responds with
// 201 and the created metadata record.
func (h *Handler) uploadFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(uploadFormMemory); err != nil {
		log.Err(err).Msg("invalid multipart form")
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Err(err).Msg("missing file part")
		http.Error(w, "missing file part", http.StatusBadRequest)
		return
	}
	defer file.Close()

	personID, err := uuid.Parse(r.FormValue("person_id"))
	if err != nil {
		log.Err(err).Msg("invalid person_id")
		http.Error(w, "invalid person_id", http.StatusBadRequest)
		return
	}

	var recordID uuid.NullUUID
	if rawRecordID := r.FormValue("record_id"); rawRecordID != "" {
		parsed, parseErr := uuid.Parse(rawRecordID)
		if parseErr != nil {
			log.Err(parseErr).Msg("invalid record_id")
			http.Error(w, "invalid record_id", http.StatusBadRequest)
			return
		}
		recordID = uuid.NullUUID{UUID: parsed, Valid: true}
	}

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	saved, err := h.services.FileService.Upload(ctx, service.UploadRequest{
		Content:          file,
		OriginalFilename: header.Filename,
		MimeType:         header.Header.Get("Content-Type"),
		SizeBytes:        header.Size,
		Description:      r.FormValue("description"),
		PersonID:         personID,
		RecordID:         recordID,
		UploadedBy:       principal.UserID,
	})
	if err != nil {
		log.Err(err).Str("filename", header.Filename).Msg("upload failed")
		http.Error(w, "upload failed", statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, models.UploadedFileResponse{File: saved}, http.StatusCreated); err != nil {
		log.Err(err).Msg("writing upload response failed")
	}
}

// getFile returns one file's metadata without the payload.
func (h *Handler) getFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	fileID, err := parseUUIDParam(r, "fileID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	file, err := h.services.FileService.Get(ctx, fileID)
	if err != nil {
		log.Err(err).Str("file_id", fileID.String()).Msg("file lookup failed")
		http.Error(w, "file lookup failed", statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, file, http.StatusOK); err != nil {
		log.Err(err).Msg("writing file response failed")
	}
}

// downloadFile decrypts a stored file and streams the plaintext back with
// the original filename in the Content-Disposition header.
func (h *Handler) downloadFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	fileID, err := parseUUIDParam(r, "fileID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	file, plaintext, err := h.services.FileService.Download(ctx, fileID)
	if err != nil {
		log.Err(err).Str("file_id", fileID.String()).Msg("download failed")
		http.Error(w, "download failed", statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", file.MimeType)
	w.Header().Set("Content-Length", strconv.Itoa(len(plaintext)))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.OriginalFilename))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(plaintext); err != nil {
		log.Err(err).Str("file_id", fileID.String()).Msg("writing download body failed")
	}
}

// listFiles returns a page of every active file. The optional "type" query
// parameter narrows the result to one category, "skip" and "limit" page
// through it.
func (h *Handler) listFiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	limit, err := intQueryParam(r, "limit")
	if err != nil {
		http.Error(w, "invalid limit", http.StatusBadRequest)
		return
	}

	skip, err := intQueryParam(r, "skip")
	if err != nil {
		http.Error(w, "invalid skip", http.StatusBadRequest)
		return
	}

	category := models.FileCategory(r.URL.Query().Get("type"))

	files, err := h.services.FileService.List(ctx, category, limit, skip)
	if err != nil {
		log.Err(err).Str("category", string(category)).Msg("listing files failed")
		http.Error(w, "listing files failed", statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, files, http.StatusOK); err != nil {
		log.Err(err).Msg("writing file list failed")
	}
}

func (h *Handler) listPersonFiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	personID, err := parseUUIDParam(r, "personID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	files, err := h.services.FileService.ListByPerson(ctx, personID, includeInactive(r))
	if err != nil {
		log.Err(err).Str("person_id", personID.String()).Msg("listing person files failed")
		http.Error(w, "listing person files failed", statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, files, http.StatusOK); err != nil {
		log.Err(err).Msg("writing file list failed")
	}
}

func (h *Handler) listRecordFiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	recordID, err := parseUUIDParam(r, "recordID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	files, err := h.services.FileService.ListByRecord(ctx, recordID, includeInactive(r))
	if err != nil {
		log.Err(err).Str("record_id", recordID.String()).Msg("listing record files failed")
		http.Error(w, "listing record files failed", statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, files, http.StatusOK); err != nil {
		log.Err(err).Msg("writing file list failed")
	}
}

// updateDescriptionRequest is the JSON body accepted by the metadata update
// endpoint. Description is the only mutable field.
type updateDescriptionRequest struct {
	Description string `json:"description"`
}

func (h *Handler) updateFileDescription(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	fileID, err := parseUUIDParam(r, "fileID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req updateDescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.FileService.UpdateDescription(ctx, fileID, req.Description)
	if err != nil {
		log.Err(err).Str("file_id", fileID.String()).Msg("updating file description failed")
		http.Error(w, "updating file description failed", statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, updated, http.StatusOK); err != nil {
		log.Err(err).Msg("writing updated file failed")
	}
}

func (h *Handler) softDeleteFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	fileID, err := parseUUIDParam(r, "fileID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.FileService.SoftDelete(ctx, fileID); err != nil {
		log.Err(err).Str("file_id", fileID.String()).Msg("soft delete failed")
		http.Error(w, "soft delete failed", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) hardDeleteFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	fileID, err := parseUUIDParam(r, "fileID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.FileService.HardDelete(ctx, fileID); err != nil {
		log.Err(err).Str("file_id", fileID.String()).Msg("permanent delete failed")
		http.Error(w, "permanent delete failed", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) fileStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	stats, err := h.services.FileService.Stats(ctx)
	if err != nil {
		log.Err(err).Msg("collecting file stats failed")
		http.Error(w, "collecting file stats failed", statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, stats, http.StatusOK); err != nil {
		log.Err(err).Msg("writing stats response failed")
	}
}

// parseUUIDParam reads a chi URL parameter and parses it as a UUID.
func parseUUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

// includeInactive reports whether the listing should include soft-deleted
// rows, from the "include_inactive" query parameter.
func includeInactive(r *http.Request) bool {
	return r.URL.Query().Get("include_inactive") == "true"
}

// intQueryParam reads an optional integer query parameter, returning zero
// when it is absent.
func intQueryParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
