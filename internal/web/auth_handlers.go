package web

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"blogsite/internal/auth"
	"blogsite/internal/database"
)

// registerForm handles GET /register
func (h *Handlers) registerForm(c echo.Context) error {
	return h.render(c, http.StatusOK, "register.html", pageData{Title: "Register"})
}

// register handles POST /register. Success redirects to the login page;
// it does not establish a session.
func (h *Handlers) register(c echo.Context) error {
	username := c.FormValue("username")
	email := c.FormValue("email")
	password := c.FormValue("password")

	_, err := h.authSvc.Register(username, email, password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrFieldsRequired):
			return h.render(c, http.StatusOK, "register.html", pageData{
				Title: "Register",
				Flash: err.Error(),
				Form:  map[string]string{"username": username, "email": email},
			})
		case errors.Is(err, database.ErrDuplicateIdentity):
			return h.render(c, http.StatusOK, "register.html", pageData{
				Title: "Register",
				Flash: username + " already exists",
				Form:  map[string]string{"username": username, "email": email},
			})
		default:
			c.Logger().Error("register error: ", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "registration failed")
		}
	}

	return c.Redirect(http.StatusSeeOther, "/login")
}

// loginForm handles GET /login
func (h *Handlers) loginForm(c echo.Context) error {
	if auth.IdentityFromContext(c).LoggedIn {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return h.render(c, http.StatusOK, "login.html", pageData{Title: "Login"})
}

// login handles POST /login. Unknown email and wrong password produce
// the same message so the response never confirms whether an account
// exists.
func (h *Handlers) login(c echo.Context) error {
	if auth.IdentityFromContext(c).LoggedIn {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	email := c.FormValue("email")
	password := c.FormValue("password")

	userID, err := h.authSvc.Authenticate(email, password)
	if err != nil {
		if errors.Is(err, auth.ErrBadCredentials) {
			return h.render(c, http.StatusOK, "login.html", pageData{
				Title: "Login",
				Flash: err.Error(),
				Form:  map[string]string{"email": email},
			})
		}
		c.Logger().Error("login error: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "authentication failed")
	}

	h.loginLimiter.RecordSuccess(c.RealIP())
	h.sessions.Establish(c, userID)
	return c.Redirect(http.StatusSeeOther, "/")
}

// logout handles GET /logout
func (h *Handlers) logout(c echo.Context) error {
	h.sessions.Clear(c)
	return c.Redirect(http.StatusSeeOther, "/")
}

// dashboard handles GET /dashboard, listing the current user's posts.
func (h *Handlers) dashboard(c echo.Context) error {
	user := auth.UserFromContext(c)
	if user == nil {
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	posts, err := h.posts.ListByAuthor(user.ID)
	if err != nil {
		c.Logger().Error("dashboard error: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load posts")
	}

	return h.render(c, http.StatusOK, "dashboard.html", pageData{
		Title: "Dashboard",
		Posts: posts,
	})
}
