package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/sgalab/sga-server/models"
)

const (
	fileColumns = `file_id, original_filename, encrypted_filename, category, size_bytes, mime_type,
    encryption_salt, key_hash, description, is_active, person_id, record_id, uploaded_by, created_at, updated_at`

	createFile = `INSERT INTO files (file_id, original_filename, encrypted_filename, category, size_bytes, mime_type,
    encryption_salt, key_hash, description, person_id, record_id, uploaded_by)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    RETURNING ` + fileColumns + `;`

	getFileByID = `SELECT ` + fileColumns + `
    FROM files
    WHERE file_id = $1;`

	updateFileDescription = `UPDATE files
    SET description = $2, updated_at = NOW()
    WHERE file_id = $1
    RETURNING ` + fileColumns + `;`

	softDeleteFile = `UPDATE files
    SET is_active = FALSE, updated_at = NOW()
    WHERE file_id = $1 AND is_active = TRUE;`

	hardDeleteFile = `DELETE FROM files
    WHERE file_id = $1;`

	createUser = `INSERT INTO users (username, name, password_hash, role_id)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, username, name, password_hash, role_id, is_active, created_at;`

	findUserByUsername = `SELECT u.user_id, u.username, u.name, u.password_hash, u.role_id, r.name, u.is_active, u.created_at
    FROM users u
    JOIN roles r ON r.role_id = u.role_id
    WHERE u.username = $1;`

	getRoleName = `SELECT name
    FROM roles
    WHERE role_id = $1;`

	personExists = `SELECT EXISTS (SELECT 1 FROM persons WHERE person_id = $1);`

	recordExists = `SELECT EXISTS (SELECT 1 FROM records WHERE record_id = $1);`

	insertAuditEntry = `INSERT INTO audit_logs (entry_id, user_id, action, entity_type, entity_id, description, ip_address)
    VALUES ($1, $2, $3, $4, $5, $6, $7);`

	listAuditEntries = `SELECT entry_id, user_id, action, entity_type, entity_id, description, ip_address, created_at
    FROM audit_logs
    ORDER BY created_at DESC
    LIMIT $1;`
)

// queryBuilder is the shared squirrel builder configured for PostgreSQL
// positional placeholders.
var queryBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListFilesQuery builds the SELECT used by the list operations. The
// owner column is either "person_id" or "record_id"; inactive rows are
// filtered out unless includeInactive is set.
func buildListFilesQuery(ownerColumn string, ownerID uuid.UUID, includeInactive bool) (string, []any, error) {
	builder := queryBuilder.
		Select("file_id", "original_filename", "encrypted_filename", "category", "size_bytes", "mime_type",
			"encryption_salt", "key_hash", "description", "is_active", "person_id", "record_id", "uploaded_by", "created_at", "updated_at").
		From("files").
		Where(sq.Eq{ownerColumn: ownerID}).
		OrderBy("created_at DESC")

	if !includeInactive {
		builder = builder.Where(sq.Eq{"is_active": true})
	}

	return builder.ToSql()
}

// buildListAllFilesQuery builds the paginated SELECT over every active
// file, optionally narrowed to one category.
func buildListAllFilesQuery(category models.FileCategory, limit, offset int) (string, []any, error) {
	builder := queryBuilder.
		Select("file_id", "original_filename", "encrypted_filename", "category", "size_bytes", "mime_type",
			"encryption_salt", "key_hash", "description", "is_active", "person_id", "record_id", "uploaded_by", "created_at", "updated_at").
		From("files").
		Where(sq.Eq{"is_active": true}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	if category != "" {
		builder = builder.Where(sq.Eq{"category": category})
	}

	return builder.ToSql()
}

// buildStatsQuery builds the single aggregate SELECT behind the stats
// endpoint. All four counters come back in one row.
func buildStatsQuery() (string, []any, error) {
	return queryBuilder.
		Select(
			"COUNT(*) FILTER (WHERE is_active)",
			"COUNT(*) FILTER (WHERE is_active AND category = 'pdf')",
			"COUNT(*) FILTER (WHERE is_active AND category = 'image')",
			"COALESCE(SUM(size_bytes) FILTER (WHERE is_active), 0)",
		).
		From("files").
		ToSql()
}
