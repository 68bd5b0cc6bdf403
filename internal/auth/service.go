package auth

import (
	"errors"

	"blogsite/internal/database"
	"blogsite/internal/models"
)

var (
	// ErrFieldsRequired is returned when a registration field is empty.
	ErrFieldsRequired = errors.New("username, email and password are required")
	// ErrBadCredentials covers both unknown email and wrong password so
	// a failed login never reveals whether the account exists.
	ErrBadCredentials = errors.New("invalid email or password")
)

// Service handles registration and authentication against the local
// user table.
type Service struct {
	userRepo *database.UserRepo
}

// NewService creates a new auth service
func NewService() *Service {
	return &Service{userRepo: database.NewUserRepo()}
}

// Register creates a new account with a one-way-hashed password and
// returns its id. Registration does not establish a session; the caller
// is expected to send the user to the login page.
func (s *Service) Register(username, email, password string) (int64, error) {
	if username == "" || email == "" || password == "" {
		return 0, ErrFieldsRequired
	}

	hash, err := HashPassword(password)
	if err != nil {
		return 0, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(user); err != nil {
		return 0, err
	}

	return user.ID, nil
}

// Authenticate verifies credentials and returns the user id for the
// session authority to bind.
func (s *Service) Authenticate(email, password string) (int64, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			return 0, ErrBadCredentials
		}
		return 0, err
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return 0, ErrBadCredentials
	}

	return user.ID, nil
}

// UserByID loads a user record for display purposes.
func (s *Service) UserByID(id int64) (*models.User, error) {
	return s.userRepo.GetByID(id)
}
