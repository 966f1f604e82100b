package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/luxurystay/hotel-reservation/internal/model"
)

// RequireRole enforces that the authenticated user's role claim is in
// the allowed set.  It assumes JWTAuth has already stored the role in
// the context.  A missing or unknown role yields 403.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[model.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			v := c.Get("role")
			s, ok := v.(string)
			if !ok || !allowed[model.Role(s)] {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// RequireStaff admits any valid non-guest role.  Shorthand for the
// staff portal group.
func RequireStaff() echo.MiddlewareFunc {
	return RequireRole(model.StaffRoles()...)
}

// RequireAdmin admits the Admin role only.
func RequireAdmin() echo.MiddlewareFunc {
	return RequireRole(model.RoleAdmin)
}
