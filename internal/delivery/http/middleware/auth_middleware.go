package middleware

import (
	"strings"

	"crosslink/internal/delivery/http/response"
	"crosslink/internal/domain/entity"
	"crosslink/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// identityContextKey is where the authenticated identity lives on the echo context.
const identityContextKey = "identity"

// AuthMiddleware validates session tokens and exposes the identity to handlers.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer session token and stores the identity it
// was issued for on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "SESSION_TOKEN_MISSING", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "SESSION_TOKEN_MALFORMED", "Invalid token format, must be Bearer token")
		}

		identity, err := m.tokenSvc.ParseSessionToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "SESSION_TOKEN_INVALID", "Invalid or expired session token")
		}

		c.Set(identityContextKey, identity)

		return next(c)
	}
}

// IdentityFrom extracts the authenticated identity set by Authenticate.
func IdentityFrom(c echo.Context) (entity.Identity, bool) {
	identity, ok := c.Get(identityContextKey).(entity.Identity)

	return identity, ok
}
