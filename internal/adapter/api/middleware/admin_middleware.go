package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolia/internal/usecase"
)

type AdminMiddleware struct {
	roleUC *usecase.RoleUseCase
}

func NewAdminMiddleware(roleUC *usecase.RoleUseCase) *AdminMiddleware {
	return &AdminMiddleware{
		roleUC: roleUC,
	}
}

// AdminOnly gates a route on the resolved role. Resolution fails closed: a
// missing uid, a missing role row, or a lookup error never grants admin.
func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok || uid == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		if !m.roleUC.IsAdmin(c.Request().Context(), uid) {
			return echo.NewHTTPError(http.StatusForbidden, "Admin privileges required")
		}

		return next(c)
	}
}
