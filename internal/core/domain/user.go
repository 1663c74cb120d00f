package domain

import "time"

// Capability is a named permission granted to a user. Modelled as an open set
// so new roles can be added without a schema change, even though only admin
// exists today.
type Capability string

const CapabilityAdmin Capability = "admin"

// User models an account that can authenticate against the API.
type User struct {
	ID           string       `json:"_id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	Capabilities []Capability `json:"roles"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// HasCapability reports whether the user has been granted cap.
func (u *User) HasCapability(cap Capability) bool {
	for _, c := range u.Capabilities {
		if c == cap {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the user holds the admin capability.
func (u *User) IsAdmin() bool {
	return u != nil && u.HasCapability(CapabilityAdmin)
}
