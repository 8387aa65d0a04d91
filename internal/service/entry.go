package service

import (
	"context"
	"errors"

	"passvault/internal/model"
	"passvault/internal/repo"
)

// ErrInvalidEntry means the entry fields fail validation; the message is
// safe to show to the user.
var ErrInvalidEntry = errors.New("invalid entry")

// EntryService implements the credential CRUD, scoped to one user per call.
type EntryService struct {
	repo repo.EntryRepository
}

func NewEntryService(r repo.EntryRepository) *EntryService {
	return &EntryService{repo: r}
}

// List returns the user's entries in insertion order.
func (s *EntryService) List(ctx context.Context, userID int64) ([]model.Entry, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Create validates and stores a new entry, returning it with the assigned id.
func (s *EntryService) Create(ctx context.Context, userID int64, service, login, password string) (*model.Entry, error) {
	if service == "" || login == "" {
		return nil, ErrInvalidEntry
	}
	e := &model.Entry{UserID: userID, Service: service, Login: login, Password: password}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Update replaces login and password of the user's entry.
func (s *EntryService) Update(ctx context.Context, userID, id int64, login, password string) (*model.Entry, error) {
	if login == "" {
		return nil, ErrInvalidEntry
	}
	return s.repo.Update(ctx, userID, id, login, password)
}

// Delete removes the user's entry.
func (s *EntryService) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.Delete(ctx, userID, id)
}
