package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"passvault/internal/model"
	"passvault/internal/repo"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("ok hashes the password", func(t *testing.T) {
		m := new(mockUserRepo)
		m.On("GetUserByUsername", mock.Anything, "john").Return((*model.User)(nil), nil).Once()
		m.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			// Never the plain password, and the hash must verify.
			return u.Username == "john" &&
				u.PasswordHash != "pass123" &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pass123")) == nil
		})).Return(&model.User{ID: 1, Username: "john"}, nil).Once()

		svc := NewUserService(m)
		assert.NoError(t, svc.Register(ctx, "john", "pass123"))
		m.AssertExpectations(t)
	})

	t.Run("duplicate username", func(t *testing.T) {
		m := new(mockUserRepo)
		m.On("GetUserByUsername", mock.Anything, "john").
			Return(&model.User{ID: 1, Username: "john"}, nil).Once()

		svc := NewUserService(m)
		assert.ErrorIs(t, svc.Register(ctx, "john", "pass123"), ErrUserExists)
		m.AssertExpectations(t)
	})

	t.Run("empty input", func(t *testing.T) {
		svc := NewUserService(new(mockUserRepo))
		assert.Error(t, svc.Register(ctx, "", "pass123"))
		assert.Error(t, svc.Register(ctx, "john", ""))
	})
}

func TestUserService_Authenticate(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("pass123"), bcrypt.MinCost)
	assert.NoError(t, err)
	stored := &model.User{ID: 42, Username: "john", PasswordHash: string(hash)}

	t.Run("ok", func(t *testing.T) {
		m := new(mockUserRepo)
		m.On("GetUserByUsername", mock.Anything, "john").Return(stored, nil).Once()

		svc := NewUserService(m)
		id, err := svc.Authenticate(ctx, "john", "pass123")
		assert.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("wrong password", func(t *testing.T) {
		m := new(mockUserRepo)
		m.On("GetUserByUsername", mock.Anything, "john").Return(stored, nil).Once()

		svc := NewUserService(m)
		_, err := svc.Authenticate(ctx, "john", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user gets the same error", func(t *testing.T) {
		m := new(mockUserRepo)
		m.On("GetUserByUsername", mock.Anything, "ghost").Return((*model.User)(nil), nil).Once()

		svc := NewUserService(m)
		_, err := svc.Authenticate(ctx, "ghost", "pass123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("repo error is wrapped", func(t *testing.T) {
		m := new(mockUserRepo)
		m.On("GetUserByUsername", mock.Anything, "john").
			Return((*model.User)(nil), errors.New("db down")).Once()

		svc := NewUserService(m)
		_, err := svc.Authenticate(ctx, "john", "pass123")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}
