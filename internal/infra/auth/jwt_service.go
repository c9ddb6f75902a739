// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"stockroom/config"
	"stockroom/internal/domain/service"
)

// ErrInvalidToken is returned for any token that fails signature, shape or
// expiry checks. The caller only learns that the token is unusable.
var ErrInvalidToken = errors.New("invalid or expired token")

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService. Secrets and expirations
// come from configuration; construction fails when any of them is unset.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" || cfg.JWT.Refresh.Secret == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.JWT.Access.Expiration <= 0 || cfg.JWT.Refresh.Expiration <= 0 {
		return nil, errors.New("jwt expirations must be provided")
	}

	return &jwtService{
		accessSecret:  cfg.JWT.Secret,
		refreshSecret: cfg.JWT.Refresh.Secret,
		accessTTL:     time.Duration(cfg.JWT.Access.Expiration) * time.Second,
		refreshTTL:    time.Duration(cfg.JWT.Refresh.Expiration) * time.Second,
	}, nil
}

// IssueAccessToken signs a short-lived access token carrying the email.
func (s *jwtService) IssueAccessToken(email string) (string, error) {
	return s.issueToken(email, s.accessTTL, s.accessSecret)
}

// IssueRefreshToken signs a long-lived refresh token carrying the email.
func (s *jwtService) IssueRefreshToken(email string) (string, error) {
	return s.issueToken(email, s.refreshTTL, s.refreshSecret)
}

// VerifyAccessToken validates a token against the access secret.
func (s *jwtService) VerifyAccessToken(token string) (*service.Claims, error) {
	return s.verifyToken(token, s.accessSecret)
}

// VerifyRefreshToken validates a token against the refresh secret.
func (s *jwtService) VerifyRefreshToken(token string) (*service.Claims, error) {
	return s.verifyToken(token, s.refreshSecret)
}

// AccessTokenDuration returns the configured access token TTL.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

// issueToken is a private helper to create an HS256 JWT with the email claim.
func (s *jwtService) issueToken(email string, ttl time.Duration, secret string) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

func (s *jwtService) verifyToken(tokenString, secret string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Email == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
