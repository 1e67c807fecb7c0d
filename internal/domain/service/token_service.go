package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"storefront/internal/domain/entity"
)

// Claims defines the custom claims carried by storefront access tokens.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Session rebuilds the session identity encoded in the claims.
func (c *Claims) Session() *entity.Session {
	return &entity.Session{
		Email: c.Email,
		Name:  c.Name,
		Role:  entity.Role(c.Role),
	}
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases. The
// store-resident session stays the canonical identity; tokens only carry it
// to the HTTP layer for stateless role gating.
type TokenService interface {
	// GenerateToken creates a signed access token for the given session.
	GenerateToken(session *entity.Session) (string, error)

	// ValidateToken checks the validity of a token string and returns its
	// claims.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured access token lifetime.
	AccessTokenDuration() time.Duration
}
