package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"blogsite/internal/models"
)

// Context keys for request-scoped identity data
const (
	ContextKeyIdentity = "identity"
	ContextKeyUser     = "current_user"
)

// LoadUser resolves the session cookie into an Identity (and the full
// user record when one exists) for every request. A session pointing at
// a user row that no longer resolves is treated as anonymous.
func LoadUser(sessions *Sessions, svc *Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := sessions.Current(c)
			if !ok {
				c.Set(ContextKeyIdentity, Anonymous)
				return next(c)
			}

			user, err := svc.UserByID(userID)
			if err != nil {
				c.Set(ContextKeyIdentity, Anonymous)
				return next(c)
			}

			c.Set(ContextKeyIdentity, Identity{UserID: user.ID, LoggedIn: true})
			c.Set(ContextKeyUser, user)
			return next(c)
		}
	}
}

// RequireLogin redirects anonymous requests to the login page. Must be
// used after LoadUser.
func RequireLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !IdentityFromContext(c).LoggedIn {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			return next(c)
		}
	}
}

// IdentityFromContext returns the acting identity for the request.
func IdentityFromContext(c echo.Context) Identity {
	identity, ok := c.Get(ContextKeyIdentity).(Identity)
	if !ok {
		return Anonymous
	}
	return identity
}

// UserFromContext returns the authenticated user record, or nil.
func UserFromContext(c echo.Context) *models.User {
	user, ok := c.Get(ContextKeyUser).(*models.User)
	if !ok {
		return nil
	}
	return user
}
