package auth

import "blogsite/internal/models"

// Identity is the acting identity for a request, resolved from the
// session cookie and passed explicitly into guards and handlers.
type Identity struct {
	UserID   int64
	LoggedIn bool
}

// Anonymous is the identity of a request with no valid session.
var Anonymous = Identity{}

// Decision is the outcome of an authorization check.
type Decision int

const (
	// Allowed permits the action.
	Allowed Decision = iota
	// DenyRedirect means the request is anonymous and should be sent
	// to the login page rather than shown an error.
	DenyRedirect
	// DenyForbidden means an authenticated user attempted to mutate a
	// post they do not own.
	DenyForbidden
)

// Authorize decides whether identity may act on post. Read-only actions
// pass requireOwner=false and are open to everyone, including anonymous
// visitors. Mutating actions pass requireOwner=true: they require a
// session, and the acting user must be the post's author.
func Authorize(identity Identity, post *models.Post, requireOwner bool) Decision {
	if !requireOwner {
		return Allowed
	}
	if !identity.LoggedIn {
		return DenyRedirect
	}
	if identity.UserID != post.AuthorID {
		return DenyForbidden
	}
	return Allowed
}
