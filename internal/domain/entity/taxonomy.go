package entity

// Category classifies shops (groceries, apparel, hardware, ...).
// Deleting a category does not touch the shops referencing it.
type Category struct {
	ID          string `json:"id" firestore:"-"`
	Name        string `json:"name" firestore:"name"`
	Description string `json:"description,omitempty" firestore:"description,omitempty"`
}

// Floor locates shops within the market building.
type Floor struct {
	ID          string `json:"id" firestore:"-"`
	Name        string `json:"name" firestore:"name"`
	Description string `json:"description,omitempty" firestore:"description,omitempty"`
}
