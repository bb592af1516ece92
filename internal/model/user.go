package model

import "time"

type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Sanitized returns a copy safe to send over the wire. The password hash is
// blanked, not omitted, so clients always see the field.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

type AuthClaims struct {
	UserID  string `json:"sub"`
	TokenID string `json:"jti"`
}
