package entity

// Review is a user's rating of a shop or an offer. Exactly one of ShopID
// and OfferID is set, depending on which collection the review lives in.
// Rating is expected in 1..5 but is stored as entered.
type Review struct {
	ID        string `json:"id" firestore:"-"`
	ShopID    string `json:"shop_id,omitempty" firestore:"shopId,omitempty"`
	OfferID   string `json:"offer_id,omitempty" firestore:"offerId,omitempty"`
	UserID    string `json:"user_id" firestore:"userId"`
	UserName  string `json:"user_name" firestore:"userName"`
	Rating    int    `json:"rating" firestore:"rating"`
	Comment   string `json:"comment" firestore:"comment"`
	CreatedAt string `json:"created_at" firestore:"createdAt"`
}

// AverageRating computes the mean rating of a review set, 0 when empty.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}

	return float64(sum) / float64(len(reviews))
}
