package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sgalab/sga-server/models"
)

// Init builds the router. Routes are grouped by permission set: the open
// login endpoint, then the authenticated groups from widest (every role may
// read) to narrowest (admin-only destructive and reporting operations).
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)

		// read operations: every role
		r.Group(func(r chi.Router) {
			r.Use(h.requireRoles(models.RoleAdmin, models.RoleModerate, models.RoleUser, models.RoleView))
			r.Get("/api/files", h.listFiles)
			r.Get("/api/files/{fileID}", h.getFile)
			r.Get("/api/files/{fileID}/download", h.downloadFile)
			r.Get("/api/persons/{personID}/files", h.listPersonFiles)
			r.Get("/api/records/{recordID}/files", h.listRecordFiles)
		})

		// write operations: content-managing roles
		r.Group(func(r chi.Router) {
			r.Use(h.requireRoles(models.RoleAdmin, models.RoleModerate))
			r.Post("/api/files", h.uploadFile)
			r.Patch("/api/files/{fileID}", h.updateFileDescription)
			r.Delete("/api/files/{fileID}", h.softDeleteFile)
		})

		// destructive and reporting operations: admin only
		r.Group(func(r chi.Router) {
			r.Use(h.requireRoles(models.RoleAdmin))
			r.Delete("/api/files/{fileID}/permanent", h.hardDeleteFile)
			r.Get("/api/files/stats", h.fileStats)
			r.Get("/api/audit", h.listAuditEntries)
		})
	})

	return router
}
