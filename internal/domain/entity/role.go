// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a session can carry in the system.
type Role string

const (
	// RoleCustomer indicates a regular registered customer.
	RoleCustomer Role = "customer"
	// RoleAdmin indicates the administrative role granted by the reserved
	// admin identity. Admin sessions have no backing registry record.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	default:
		return false
	}
}
