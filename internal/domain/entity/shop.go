// Package entity contains the core business objects of the project.
package entity

// Shop represents a merchant storefront in the catalog.
//
// CategoryID and FloorID are foreign keys into the categories and floors
// collections. They may reference records that no longer exist; dangling
// references are resolved to placeholder labels at join time, never treated
// as errors.
type Shop struct {
	ID         string `json:"id" firestore:"-"`
	ShopName   string `json:"shop_name" firestore:"shopName"`
	OwnerName  string `json:"owner_name" firestore:"ownerName"`
	Address    string `json:"address" firestore:"address"`
	Contact    string `json:"contact,omitempty" firestore:"contact,omitempty"`
	CategoryID string `json:"category_id,omitempty" firestore:"categoryId,omitempty"`
	FloorID    string `json:"floor_id,omitempty" firestore:"floorId,omitempty"`
}

// ShopDetails is the denormalized view of a shop with resolved category and
// floor labels and the shop's offers attached.
type ShopDetails struct {
	Shop
	CategoryName string  `json:"category_name"`
	FloorName    string  `json:"floor_name"`
	Offers       []Offer `json:"offers"`
}

// MaxDiscount returns the highest discount among the shop's offers.
// The second return value is false when the shop has no offers; a shop
// without offers has no discount to speak of, which is distinct from 0%.
func (d *ShopDetails) MaxDiscount() (int, bool) {
	if len(d.Offers) == 0 {
		return 0, false
	}
	best := d.Offers[0].DiscountValue()
	for _, offer := range d.Offers[1:] {
		if v := offer.DiscountValue(); v > best {
			best = v
		}
	}

	return best, true
}

// MinDiscount returns the lowest discount among the shop's offers, with the
// same no-offers semantics as MaxDiscount.
func (d *ShopDetails) MinDiscount() (int, bool) {
	if len(d.Offers) == 0 {
		return 0, false
	}
	least := d.Offers[0].DiscountValue()
	for _, offer := range d.Offers[1:] {
		if v := offer.DiscountValue(); v < least {
			least = v
		}
	}

	return least, true
}
