package entity

import (
	"strconv"
	"strings"
	"time"
)

// Offer represents a discount promotion belonging to exactly one shop.
//
// Discount is stored as text the way the admin entered it ("25", "25%",
// "25% off"); DiscountValue parses it for ranking. ValidUntil is an ISO
// date string; an empty value means the offer never expires.
type Offer struct {
	ID          string `json:"id" firestore:"-"`
	Title       string `json:"title" firestore:"title"`
	Description string `json:"description" firestore:"description"`
	Discount    string `json:"discount" firestore:"discount"`
	ShopID      string `json:"shop_id" firestore:"shopId"`
	ValidUntil  string `json:"valid_until,omitempty" firestore:"validUntil,omitempty"`
}

// OfferDetails is the denormalized view of an offer with its shop resolved.
type OfferDetails struct {
	Offer
	ShopName    string `json:"shop_name"`
	ShopAddress string `json:"shop_address"`
}

// DiscountValue parses the leading integer of the discount text.
// Non-numeric values parse to 0.
func (o *Offer) DiscountValue() int {
	s := strings.TrimSpace(o.Discount)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	value, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}

	return value
}

// Expired reports whether the offer's validity window has passed at the
// given instant. Offers without a ValidUntil never expire, and so does an
// unparseable ValidUntil: a malformed date must not silently archive an
// offer the admin still considers live.
func (o *Offer) Expired(now time.Time) bool {
	if o.ValidUntil == "" {
		return false
	}
	until, ok := parseValidUntil(o.ValidUntil)
	if !ok {
		return false
	}

	return until.Before(now)
}

// Active is the complement of Expired.
func (o *Offer) Active(now time.Time) bool {
	return !o.Expired(now)
}

func parseValidUntil(value string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
