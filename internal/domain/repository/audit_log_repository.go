package repository

import (
	"context"

	"retailhive/internal/domain/entity"
)

// AuditLogRepository appends catalog actions to the userLogs collection.
// Append failures must never propagate into the operation being audited;
// callers log and move on.
type AuditLogRepository interface {
	// Append stores one audit entry.
	Append(ctx context.Context, entry *entity.AuditEntry) error

	// FindRecent retrieves the newest entries, most recent first.
	FindRecent(ctx context.Context, limit int) ([]entity.AuditEntry, error)
}
