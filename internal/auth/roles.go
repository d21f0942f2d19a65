package auth

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RoleLabel derives the authorization label for a role string: uppercased and
// prefixed with "ROLE_". "admin" becomes "ROLE_ADMIN".
func RoleLabel(role string) string {
	return "ROLE_" + strings.ToUpper(role)
}

// RequireRole ensures the authenticated principal carries one of the allowed
// role strings. Comparison is plain string equality on the stored role.
func RequireRole(allowed ...string) fiber.Handler {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[principal.User.Role]; !exists {
			return fiber.NewError(http.StatusForbidden, "insufficient role")
		}
		return c.Next()
	}
}

// RequireAuthenticated ensures a principal is present.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		return c.Next()
	}
}
