package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"passvault/internal/model"
	"passvault/internal/repo"
)

var (
	// ErrUserExists means the username is already taken.
	ErrUserExists = errors.New("username already taken")
	// ErrInvalidCredentials means unknown user or wrong password; callers
	// must not reveal which.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserService implements registration and authentication. Password hashing
// happens only here; no other layer sees a plain password.
type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// Register creates an account with a bcrypt-hashed password.
func (s *UserService) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return errors.New("username and password are required")
	}
	existing, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("checking username: %w", err)
	}
	if existing != nil {
		return ErrUserExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	_, err = s.repo.CreateUser(ctx, &model.User{Username: username, PasswordHash: string(hash)})
	return err
}

// Authenticate verifies credentials and returns the user id.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (int64, error) {
	u, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return 0, fmt.Errorf("looking up user: %w", err)
	}
	if u == nil {
		return 0, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return 0, ErrInvalidCredentials
	}
	return u.ID, nil
}
