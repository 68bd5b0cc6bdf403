package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"blogsite/internal/auth"
	"blogsite/internal/database"
	"blogsite/internal/models"
)

// index handles GET /, the public feed.
func (h *Handlers) index(c echo.Context) error {
	posts, err := h.posts.List()
	if err != nil {
		c.Logger().Error("list posts error: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load posts")
	}

	return h.render(c, http.StatusOK, "index.html", pageData{
		Title: "HomePage",
		Posts: posts,
	})
}

// showPost handles GET /posts/:id. Viewing is open to everyone,
// including anonymous visitors.
func (h *Handlers) showPost(c echo.Context) error {
	post, err := h.loadPost(c, false)
	if err != nil {
		return err
	}
	if handled(post, err) {
		return nil
	}

	return h.render(c, http.StatusOK, "show.html", pageData{
		Title: post.Title,
		Post:  post,
	})
}

// createForm handles GET /posts/create
func (h *Handlers) createForm(c echo.Context) error {
	return h.render(c, http.StatusOK, "create.html", pageData{Title: "Create Post"})
}

// createPost handles POST /posts/create. Any authenticated user may
// create; a storage failure is flashed and answered with a redirect
// rather than a crash.
func (h *Handlers) createPost(c echo.Context) error {
	identity := auth.IdentityFromContext(c)

	_, err := h.posts.Create(identity.UserID, c.FormValue("title"), c.FormValue("body"))
	if err != nil {
		if errors.Is(err, database.ErrStorage) {
			c.Logger().Error("create post error: ", err)
			setFlash(c, "Database error, please try again.")
			return c.Redirect(http.StatusSeeOther, "/")
		}
		return err
	}

	return c.Redirect(http.StatusSeeOther, "/")
}

// updateForm handles GET /posts/:id/update
func (h *Handlers) updateForm(c echo.Context) error {
	post, err := h.loadPost(c, true)
	if err != nil {
		return err
	}
	if handled(post, err) {
		return nil
	}

	return h.render(c, http.StatusOK, "create.html", pageData{
		Title: "Update Post",
		Post:  post,
	})
}

// updatePost handles POST /posts/:id/update. Only the author may
// update, and only title and body change.
func (h *Handlers) updatePost(c echo.Context) error {
	post, err := h.loadPost(c, true)
	if err != nil {
		return err
	}
	if handled(post, err) {
		return nil
	}

	title := c.FormValue("title")
	body := c.FormValue("body")

	if err := h.posts.Update(post.ID, title, body); err != nil {
		if errors.Is(err, database.ErrTitleRequired) {
			post.Title = title
			post.Body = body
			return h.render(c, http.StatusOK, "create.html", pageData{
				Title: "Update Post",
				Flash: "Title is required.",
				Post:  post,
			})
		}
		c.Logger().Error("update post error: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update post")
	}

	return c.Redirect(http.StatusSeeOther, "/")
}

// deletePost handles POST /posts/:id/delete. Only the author may
// delete.
func (h *Handlers) deletePost(c echo.Context) error {
	post, err := h.loadPost(c, true)
	if err != nil {
		return err
	}
	if handled(post, err) {
		return nil
	}

	if err := h.posts.Delete(post.ID); err != nil {
		c.Logger().Error("delete post error: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete post")
	}

	return c.Redirect(http.StatusSeeOther, "/")
}

// loadPost fetches the post named in the route and applies the access
// gate. requireOwner is false for read-only views. A (nil, nil) return
// means the anonymous caller was redirected to the login page and the
// response is already written.
func (h *Handlers) loadPost(c echo.Context, requireOwner bool) (*models.Post, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, "invalid post ID")
	}

	post, err := h.posts.GetByID(id)
	if err != nil {
		if errors.Is(err, database.ErrPostNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "can't find post with ID "+c.Param("id"))
		}
		return nil, err
	}

	switch auth.Authorize(auth.IdentityFromContext(c), post, requireOwner) {
	case auth.DenyRedirect:
		return nil, c.Redirect(http.StatusSeeOther, "/login")
	case auth.DenyForbidden:
		return nil, echo.NewHTTPError(http.StatusForbidden, "you are not the author of this post")
	}

	return post, nil
}

// handled reports whether loadPost already wrote a redirect response.
func handled(post *models.Post, err error) bool {
	return err == nil && post == nil
}
