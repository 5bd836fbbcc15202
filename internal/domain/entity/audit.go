package entity

// AuditEntry records one successful catalog mutation or notable read in the
// userLogs collection. Payload carries the action-specific fields.
type AuditEntry struct {
	ID        string         `json:"id" firestore:"-"`
	Action    string         `json:"action" firestore:"action"`
	Payload   map[string]any `json:"payload" firestore:"payload"`
	UserID    string         `json:"user_id" firestore:"userId"`
	Timestamp string         `json:"timestamp" firestore:"timestamp"`
}

// EngagementCounter accumulates per-offer view and favorite counts fed by
// the engagement event worker. Trending scores read from these counters.
type EngagementCounter struct {
	OfferID       string `json:"offer_id" firestore:"-"`
	ViewCount     int64  `json:"view_count" firestore:"viewCount"`
	FavoriteCount int64  `json:"favorite_count" firestore:"favoriteCount"`
}
