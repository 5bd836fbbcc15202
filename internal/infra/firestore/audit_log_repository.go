package firestore

import (
	"context"

	"retailhive/internal/domain/entity"
	"retailhive/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// auditLogRepository implements repository.AuditLogRepository over the
// userLogs collection. It does not mirror its own writes.
type auditLogRepository struct {
	client *firestore.Client
}

// NewAuditLogRepository is the constructor for auditLogRepository.
func NewAuditLogRepository(client *firestore.Client) repository.AuditLogRepository {
	return &auditLogRepository{client: client}
}

// Append stores one audit entry.
func (repo *auditLogRepository) Append(ctx context.Context, entry *entity.AuditEntry) error {
	doc := repo.client.Collection(collectionUserLogs).NewDoc()
	if _, err := doc.Set(ctx, entry); err != nil {
		return errors.Wrap(err, "failed to append audit entry")
	}
	entry.ID = doc.ID

	return nil
}

// FindRecent retrieves the newest entries, most recent first.
func (repo *auditLogRepository) FindRecent(ctx context.Context, limit int) ([]entity.AuditEntry, error) {
	snaps, err := repo.client.Collection(collectionUserLogs).
		OrderBy("timestamp", firestore.Desc).
		Limit(limit).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list audit entries")
	}

	entries := make([]entity.AuditEntry, 0, len(snaps))
	for _, snap := range snaps {
		var entry entity.AuditEntry
		if err := snap.DataTo(&entry); err != nil {
			return nil, errors.Wrap(err, "failed to decode audit entry")
		}
		entry.ID = snap.Ref.ID
		entries = append(entries, entry)
	}

	return entries, nil
}
