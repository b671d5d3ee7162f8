package http

import (
	"net/http"
	"strconv"

	"github.com/sgalab/sga-server/internal/logger"
	"github.com/sgalab/sga-server/internal/utils"
)

// listAuditEntries returns the newest audit entries. The optional "limit"
// query parameter caps the result; out-of-range values fall back to the
// service default.
func (h *Handler) listAuditEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	limit := 0
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	entries, err := h.services.AuditService.List(ctx, limit)
	if err != nil {
		log.Err(err).Msg("listing audit entries failed")
		http.Error(w, "listing audit entries failed", statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, entries, http.StatusOK); err != nil {
		log.Err(err).Msg("writing audit response failed")
	}
}
