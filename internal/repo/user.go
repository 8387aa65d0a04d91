package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"passvault/internal/model"
)

// UserRepository is the access contract for users needed by the service layer.
type UserRepository interface {
	// CreateUser inserts a new user and returns it with the assigned id.
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)

	// GetUserByUsername returns the user or nil when no such user exists.
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository creates the gorm-backed user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
