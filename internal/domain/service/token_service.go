package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for the JWT tokens. The email is the
// only identity carried; everything else is standard expiry bookkeeping.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying the stateless
// signed tokens. Access and refresh tokens are signed with separate secrets;
// neither is ever persisted.
type TokenService interface {
	// IssueAccessToken signs a short-lived access token for the email.
	IssueAccessToken(email string) (string, error)

	// IssueRefreshToken signs a long-lived refresh token for the email.
	IssueRefreshToken(email string) (string, error)

	// VerifyAccessToken checks signature and expiry against the access
	// secret and returns the embedded claims.
	VerifyAccessToken(token string) (*Claims, error)

	// VerifyRefreshToken checks signature and expiry against the refresh
	// secret and returns the embedded claims.
	VerifyRefreshToken(token string) (*Claims, error)

	// AccessTokenDuration returns the configured access token TTL.
	AccessTokenDuration() time.Duration
}
