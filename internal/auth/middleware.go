package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/milsabores/bakery-api/internal/domain"
	"github.com/milsabores/bakery-api/internal/repository"
	apperrors "github.com/milsabores/bakery-api/pkg/util"
)

const principalKey = "auth_principal"

// Guard failure messages. Missing-token and invalid-token cases each use a
// single message; signature and expiry failures are not distinguished.
const (
	msgNoToken      = "no token provided"
	msgInvalidToken = "invalid or expired token"
)

// Principal represents the authenticated caller.
type Principal struct {
	User   *domain.User
	Claims *Claims
}

// Middleware validates bearer tokens and loads the caller.
type Middleware struct {
	tokens *TokenManager
	users  repository.UserRepository
}

// NewMiddleware constructs the guard. When users is non-nil every request
// re-fetches the subject, so tokens for deleted accounts stop working.
func NewMiddleware(tokens *TokenManager, users repository.UserRepository) *Middleware {
	return &Middleware{tokens: tokens, users: users}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized(msgNoToken)
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized(msgNoToken)
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized(msgInvalidToken)
	}

	principal := &Principal{Claims: claims}

	if m.users != nil {
		user, err := m.users.GetByID(c.Context(), claims.Subject)
		if err != nil {
			if err == pgx.ErrNoRows {
				return apperrors.NewUnauthorized(msgInvalidToken)
			}
			return apperrors.MapError(err)
		}
		principal.User = user
	}

	c.Locals(principalKey, principal)
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}

// RequireAdmin ensures the caller carries the admin role.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.Claims == nil {
			return apperrors.NewUnauthorized(msgNoToken)
		}
		if principal.Claims.Role != domain.RoleAdmin {
			return apperrors.NewForbidden("admin role required")
		}
		return c.Next()
	}
}
