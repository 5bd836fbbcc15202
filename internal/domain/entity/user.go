package entity

// User is a portal account. Favorites holds shop and offer ids the user has
// marked; it behaves as a set, order carries no meaning.
type User struct {
	ID        string   `json:"id" firestore:"-"`
	Name      string   `json:"name" firestore:"name"`
	Email     string   `json:"email" firestore:"email"`
	Address   string   `json:"address,omitempty" firestore:"address,omitempty"`
	Mobile    string   `json:"mobile,omitempty" firestore:"mobile,omitempty"`
	Favorites []string `json:"favorites" firestore:"favorites"`
}

// HasFavorite reports whether the given shop or offer id is in the user's
// favorites set.
func (u *User) HasFavorite(itemID string) bool {
	for _, id := range u.Favorites {
		if id == itemID {
			return true
		}
	}

	return false
}
