package users

import "time"

type User struct {
	ID        int       `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Age       *int      `json:"age,omitempty"`
	Gender    *string   `json:"gender,omitempty"`
	CreatedAt time.Time `json:"createdAt"`

	// never serialized
	PasswordHash string `json:"-"`
}

// UpdateParams carries a partial profile update: nil fields are left untouched.
type UpdateParams struct {
	ID        int     `json:"id"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Username  *string `json:"username"`
	Age       *int    `json:"age"`
	Gender    *string `json:"gender"`
}
