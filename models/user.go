package models

import "time"

// Roles a user account can hold.
const (
	RoleUser     = "user"
	RoleAdmin    = "admin"
	RoleProvider = "provider"
)

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleAdmin, RoleProvider:
		return true
	}
	return false
}

// User represents a platform account, created on first successful identity
// verification for a given email. Role and ban state are only ever mutated
// by admin actions; the very first account ever created is granted admin.
type User struct {
	ID        string    `bson:"id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Name      string    `bson:"name" json:"name"`
	Picture   string    `bson:"picture" json:"picture,omitempty"`
	Role      string    `bson:"role" json:"role"`
	Banned    bool      `bson:"banned" json:"banned"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
