package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hivcare/art-tracker/internal/core/domain"
	"github.com/hivcare/art-tracker/internal/core/ports"
)

// ctxCaller extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call:
//   - role must be non-empty (presence proves the middleware ran).
//   - non-admin roles require a facility_id; without it the JWT is
//     structurally valid but operationally unusable, so reject with 401.
func ctxCaller(c echo.Context) (ports.Caller, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return ports.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	facilityID, _ := c.Get("facility_id").(uint)
	if role != domain.RoleSystemAdmin && facilityID == 0 {
		return ports.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "token missing facility identity")
	}

	username, _ := c.Get("username").(string)
	return ports.Caller{Username: username, Role: role, FacilityID: facilityID}, nil
}
