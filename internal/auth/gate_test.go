package auth

import (
	"testing"

	"blogsite/internal/models"
)

func TestAuthorize(t *testing.T) {
	post := &models.Post{ID: 1, AuthorID: 10}

	owner := Identity{UserID: 10, LoggedIn: true}
	nonOwner := Identity{UserID: 11, LoggedIn: true}

	tests := []struct {
		name         string
		identity     Identity
		requireOwner bool
		want         Decision
	}{
		{"anonymous view", Anonymous, false, Allowed},
		{"non-owner view", nonOwner, false, Allowed},
		{"owner view", owner, false, Allowed},
		{"anonymous mutate", Anonymous, true, DenyRedirect},
		{"non-owner mutate", nonOwner, true, DenyForbidden},
		{"owner mutate", owner, true, Allowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Authorize(tt.identity, post, tt.requireOwner); got != tt.want {
				t.Fatalf("Authorize() = %v, want %v", got, tt.want)
			}
		})
	}
}
