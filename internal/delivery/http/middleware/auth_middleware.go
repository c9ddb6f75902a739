// Package middleware contains the Echo middleware for the HTTP delivery.
package middleware

import (
	"strings"

	deliverycontext "stockroom/internal/delivery/context"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards routes behind access-token verification.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate verifies the bearer access token and stores the account email
// on the request context. A missing header and a malformed one produce the
// same response; an unverifiable token produces another.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := extractBearerToken(c.Request().Header.Get("Authorization"))
		if !ok {
			return domainerrors.ErrAccessDenied.WrapMessage("missing bearer token")
		}

		claims, err := m.tokenSvc.VerifyAccessToken(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken.WrapMessage("access token verification failed")
		}

		ctx := deliverycontext.WithUserEmail(c.Request().Context(), claims.Email)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// extractBearerToken pulls the token out of an "Authorization: Bearer x"
// header. The scheme comparison is case-insensitive.
func extractBearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}

	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", false
	}

	return token, true
}
