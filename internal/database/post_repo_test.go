package database

import (
	"errors"
	"testing"

	"blogsite/internal/models"
)

func createTestUser(t *testing.T, username, email string) int64 {
	t.Helper()
	user := &models.User{Username: username, Email: email, PasswordHash: "h"}
	if err := NewUserRepo().Create(user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user.ID
}

func TestPostRepoCreateGetRoundTrip(t *testing.T) {
	openTestDB(t)
	repo := NewPostRepo()
	author := createTestUser(t, "alice", "a@x.com")

	id, err := repo.Create(author, "t", "b")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	post, err := repo.GetByID(id)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if post.Title != "t" || post.Body != "b" || post.AuthorID != author {
		t.Fatalf("unexpected post: %+v", post)
	}
	if post.CreatedAt.IsZero() {
		t.Fatal("expected assigned created_at")
	}
}

func TestPostRepoGetNotFound(t *testing.T) {
	openTestDB(t)

	if _, err := NewPostRepo().GetByID(99); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostRepoListNewestFirst(t *testing.T) {
	openTestDB(t)
	repo := NewPostRepo()
	author := createTestUser(t, "alice", "a@x.com")

	first, err := repo.Create(author, "first", "b")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	second, err := repo.Create(author, "second", "b")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	posts, err := repo.List()
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].ID != second || posts[1].ID != first {
		t.Fatalf("expected newest first, got ids %d, %d", posts[0].ID, posts[1].ID)
	}
}

func TestPostRepoListByAuthor(t *testing.T) {
	openTestDB(t)
	repo := NewPostRepo()
	alice := createTestUser(t, "alice", "a@x.com")
	bob := createTestUser(t, "bob", "b@x.com")

	if _, err := repo.Create(alice, "mine", "b"); err != nil {
		t.Fatalf("create post: %v", err)
	}
	if _, err := repo.Create(bob, "theirs", "b"); err != nil {
		t.Fatalf("create post: %v", err)
	}

	posts, err := repo.ListByAuthor(alice)
	if err != nil {
		t.Fatalf("list by author: %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "mine" {
		t.Fatalf("unexpected dashboard posts: %+v", posts)
	}
}

func TestPostRepoUpdate(t *testing.T) {
	openTestDB(t)
	repo := NewPostRepo()
	author := createTestUser(t, "alice", "a@x.com")

	id, err := repo.Create(author, "t", "b")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	before, err := repo.GetByID(id)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}

	if err := repo.Update(id, "t2", "b2"); err != nil {
		t.Fatalf("update post: %v", err)
	}

	after, err := repo.GetByID(id)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if after.Title != "t2" || after.Body != "b2" {
		t.Fatalf("update not applied: %+v", after)
	}
	if after.AuthorID != author || !after.CreatedAt.Equal(before.CreatedAt) {
		t.Fatal("author_id and created_at must be immutable")
	}
}

func TestPostRepoUpdateEmptyTitle(t *testing.T) {
	openTestDB(t)
	repo := NewPostRepo()
	author := createTestUser(t, "alice", "a@x.com")

	id, err := repo.Create(author, "t", "b")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	if err := repo.Update(id, "", "b2"); !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}

	post, err := repo.GetByID(id)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if post.Title != "t" || post.Body != "b" {
		t.Fatalf("rejected update must not change the row: %+v", post)
	}
}

func TestPostRepoDelete(t *testing.T) {
	openTestDB(t)
	repo := NewPostRepo()
	author := createTestUser(t, "alice", "a@x.com")

	id, err := repo.Create(author, "t", "b")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	if err := repo.Delete(id); err != nil {
		t.Fatalf("delete post: %v", err)
	}
	if _, err := repo.GetByID(id); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound after delete, got %v", err)
	}
	if err := repo.Delete(id); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound on second delete, got %v", err)
	}
}
