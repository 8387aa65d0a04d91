package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"passvault/internal/model"
)

// ErrEntryNotFound means no entry with that id belongs to the user. A foreign id
// is indistinguishable from a missing one on purpose.
var ErrEntryNotFound = errors.New("entry not found")

// EntryRepository is the access contract for credential entries.
type EntryRepository interface {
	// ListByUser returns all entries of the user in insertion order.
	ListByUser(ctx context.Context, userID int64) ([]model.Entry, error)

	// Create inserts the entry and fills its assigned id.
	Create(ctx context.Context, entry *model.Entry) error

	// Update replaces login and password of the user's entry.
	Update(ctx context.Context, userID, id int64, login, password string) (*model.Entry, error)

	// Delete removes the user's entry.
	Delete(ctx context.Context, userID, id int64) error
}

type entryRepo struct {
	db *gorm.DB
}

// NewEntryRepository creates the gorm-backed entry repository.
func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepo{db: db}
}

func (r *entryRepo) ListByUser(ctx context.Context, userID int64) ([]model.Entry, error) {
	var entries []model.Entry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *entryRepo) Create(ctx context.Context, entry *model.Entry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *entryRepo) Update(ctx context.Context, userID, id int64, login, password string) (*model.Entry, error) {
	var e model.Entry
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	e.Login = login
	e.Password = password
	if err := r.db.WithContext(ctx).Save(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *entryRepo) Delete(ctx context.Context, userID, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Entry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}
