package usecase

import (
	"context"

	"retailhive/internal/domain/entity"
)

// AnalyticsUsecase defines the admin dashboard aggregation use cases.
type AnalyticsUsecase interface {
	// Summary computes catalog-wide totals, the mean offer rating and the
	// top-5 category and floor distributions.
	Summary(ctx context.Context) (*entity.AnalyticsSummary, error)

	// RecentActivity retrieves the newest audit log entries.
	RecentActivity(ctx context.Context, limit int) ([]entity.AuditEntry, error)
}
