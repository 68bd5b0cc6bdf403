package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"blogsite/internal/auth"
	"blogsite/internal/database"
)

// Handlers holds the collaborators every request handler needs,
// passed explicitly rather than kept in process-wide state.
type Handlers struct {
	authSvc      *auth.Service
	sessions     *auth.Sessions
	posts        *database.PostRepo
	loginLimiter *auth.RateLimiter
}

// NewHandlers wires the handler set.
func NewHandlers(authSvc *auth.Service, sessions *auth.Sessions) *Handlers {
	return &Handlers{
		authSvc:      authSvc,
		sessions:     sessions,
		posts:        database.NewPostRepo(),
		loginLimiter: auth.DefaultRateLimiter(),
	}
}

// RegisterRoutes sets up all routes
func (h *Handlers) RegisterRoutes(e *echo.Echo) {
	e.Renderer = NewRenderer()
	e.HTTPErrorHandler = h.errorHandler
	e.Use(auth.LoadUser(h.sessions, h.authSvc))

	e.GET("/", h.index)

	e.GET("/register", h.registerForm)
	e.POST("/register", h.register)
	e.GET("/login", h.loginForm)
	e.POST("/login", h.login, h.loginLimiter.Middleware())
	e.GET("/logout", h.logout)
	e.GET("/dashboard", h.dashboard, auth.RequireLogin())

	posts := e.Group("/posts")
	posts.GET("/:id", h.showPost)
	posts.GET("/create", h.createForm, auth.RequireLogin())
	posts.POST("/create", h.createPost, auth.RequireLogin())
	posts.GET("/:id/update", h.updateForm, auth.RequireLogin())
	posts.POST("/:id/update", h.updatePost, auth.RequireLogin())
	posts.POST("/:id/delete", h.deletePost, auth.RequireLogin())
}

// render executes a template with the acting user and any pending
// flash message filled in.
func (h *Handlers) render(c echo.Context, code int, name string, data pageData) error {
	data.User = auth.UserFromContext(c)
	if data.Flash == "" {
		data.Flash = popFlash(c)
	}
	return c.Render(code, name, data)
}

// errorHandler renders HTTP errors as HTML pages.
func (h *Handlers) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
	}

	data := pageData{Title: http.StatusText(code), Error: message}
	data.User = auth.UserFromContext(c)
	if rerr := c.Render(code, "error.html", data); rerr != nil {
		c.Logger().Error("error page render failed: ", rerr)
	}
}
