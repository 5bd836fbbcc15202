package entity

// LabelCount pairs a resolved category or floor label with the number of
// shops carrying it.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// AnalyticsSummary is the admin dashboard roll-up over the whole catalog.
type AnalyticsSummary struct {
	TotalShops    int          `json:"total_shops"`
	TotalOffers   int          `json:"total_offers"`
	TotalUsers    int          `json:"total_users"`
	TotalReviews  int          `json:"total_reviews"`
	AverageRating float64      `json:"average_rating"`
	TopCategories []LabelCount `json:"top_categories"`
	TopFloors     []LabelCount `json:"top_floors"`
}

// RecommendedOffer is one entry of a personalized recommendation list.
// Score is the additive rule total; Reasons lists the triggered rules in
// evaluation order.
type RecommendedOffer struct {
	Offer   Offer    `json:"offer"`
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// TrendingOffer is an offer annotated with its engagement counters and the
// composite popularity score they produce.
type TrendingOffer struct {
	Offer
	ViewCount     int64   `json:"view_count"`
	FavoriteCount int64   `json:"favorite_count"`
	AverageRating float64 `json:"average_rating"`
	Score         float64 `json:"score"`
}
