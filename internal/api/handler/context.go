package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the identity injected by the Auth middleware. A
// missing or zero user id means the middleware did not run (or the token
// carried no usable identity); handlers reject with 401 rather than scoping
// queries to user 0.
func ctxIdentity(c echo.Context) (userID int64, email string, err error) {
	userID, _ = c.Get("user_id").(int64)
	if userID == 0 {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	email, _ = c.Get("email").(string)
	return userID, email, nil
}
