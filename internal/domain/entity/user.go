// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is a registered storefront customer. The lowercased email is the
// unique key of the registry; uniqueness is enforced at registration time.
type User struct {
	Name         string    `json:"name"`         // The customer's display name.
	Email        string    `json:"email"`        // Lowercased email address, unique within the registry.
	PasswordHash string    `json:"passwordHash"` // bcrypt hash of the customer's password.
	CreatedAt    time.Time `json:"createdAt"`    // Timestamp of when the account was registered.
}
