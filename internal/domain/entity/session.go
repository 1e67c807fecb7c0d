package entity

// Session is the single current authenticated identity. At most one session
// exists at a time; logging in again replaces it, logging out deletes it.
type Session struct {
	Email string `json:"email"`          // Identity key; for the reserved admin this is "admin".
	Name  string `json:"name"`           // Display name snapshotted at login time.
	Role  Role   `json:"role,omitempty"` // Present only for the reserved admin identity.
}

// IsAdmin reports whether the session carries the administrative role.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

// DisplayName returns the name to show for this session, falling back to the
// email when no name was recorded.
func (s *Session) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}

	return s.Email
}
