package authn

// OwnedItem is an item held by a user.
type OwnedItem struct {
	ID    string  `json:"id" yaml:"id"`
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// User is a directory record. Password is stored in cleartext.
type User struct {
	ID         int         `json:"id" yaml:"id"`
	Username   string      `json:"username" yaml:"username"`
	Email      string      `json:"email" yaml:"email"`
	Password   string      `json:"password" yaml:"password"`
	Role       string      `json:"role" yaml:"role"`
	Balance    float64     `json:"balance" yaml:"balance"`
	OwnedItems []OwnedItem `json:"ownedItems" yaml:"ownedItems"`
}

// Profile is a User without its password, safe to return to a caller.
type Profile struct {
	ID         int         `json:"id"`
	Username   string      `json:"username"`
	Email      string      `json:"email"`
	Role       string      `json:"role"`
	Balance    float64     `json:"balance"`
	OwnedItems []OwnedItem `json:"ownedItems"`
}

// Sanitize drops the password from u. Owned items are copied, and a nil list
// becomes an empty one so the encoded profile always carries the key as an array.
func Sanitize(u User) Profile {
	items := make([]OwnedItem, len(u.OwnedItems))
	copy(items, u.OwnedItems)

	return Profile{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Role:       u.Role,
		Balance:    u.Balance,
		OwnedItems: items,
	}
}
