package vault

import (
	"context"
	"errors"
	"fmt"

	"passvault/internal/cli/model"
)

// Mutator is the part of the vault client the coordinator drives.
type Mutator interface {
	Create(ctx context.Context, service, login, password string) (*model.Entry, error)
	Update(ctx context.Context, id int64, login, password string) (*model.Entry, error)
	Delete(ctx context.Context, id int64) error
}

// Confirmer answers the yes/no question shown before any remote mutation.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(prompt string) bool

func (f ConfirmerFunc) Confirm(prompt string) bool { return f(prompt) }

// State of the single in-flight mutation slot.
type State int

const (
	StateIdle State = iota
	StateConfirming
	StateInFlight
)

// Confirmation prompts, one per mutation kind.
const (
	PromptInsert = "Confirm Insertion"
	PromptChange = "Confirm Change"
	PromptDelete = "Confirm Deletion"
)

var (
	// ErrBusy means a mutation is already in flight; the caller should let
	// it finish before starting another.
	ErrBusy = errors.New("another change is still in progress")
	// ErrDeclined means the user answered no; nothing was sent and nothing
	// changed.
	ErrDeclined = errors.New("cancelled")
	// ErrNotEditing means a save was requested outside edit mode.
	ErrNotEditing = errors.New("no draft to save")
)

// Coordinator sequences every mutation as confirm → remote call → full cache
// reload → reset of local edit state. The cache is never hand-patched with
// the values the user typed: after a confirmed mutation only a fresh list
// from the server is trusted.
//
// It also owns the simpler browsing/editing mode: entering edit populates a
// draft from an existing entry (update) or empty fields (create); leaving
// edit always discards the draft without side effects.
type Coordinator struct {
	client  Mutator
	cache   *Cache
	confirm Confirmer

	state State
	draft *model.Draft
}

func NewCoordinator(client Mutator, cache *Cache, confirm Confirmer) *Coordinator {
	return &Coordinator{client: client, cache: cache, confirm: confirm}
}

// State returns the in-flight slot state.
func (co *Coordinator) State() State { return co.state }

// Editing reports whether a draft is open.
func (co *Coordinator) Editing() bool { return co.draft != nil }

// Draft returns the open draft, nil while browsing.
func (co *Coordinator) Draft() *model.Draft { return co.draft }

// BeginEdit opens a draft populated from the cached entry with the given id.
func (co *Coordinator) BeginEdit(id int64) error {
	e, ok := co.cache.Get(id)
	if !ok {
		return fmt.Errorf("no entry with id %d", id)
	}
	co.draft = &model.Draft{TargetID: e.ID, Service: e.Service, Login: e.Login, Password: e.Password}
	return nil
}

// BeginNew opens an empty draft for a create.
func (co *Coordinator) BeginNew() {
	co.draft = &model.Draft{}
}

// CancelEdit discards the draft and returns to browsing. No network call,
// no cache mutation.
func (co *Coordinator) CancelEdit() {
	co.draft = nil
}

// SaveDraft runs the full mutation protocol for the open draft. On success
// the draft is discarded and the cache reloaded; on failure the draft keeps
// the user's input exactly so they can correct and retry.
func (co *Coordinator) SaveDraft(ctx context.Context) error {
	if co.draft == nil {
		return ErrNotEditing
	}
	if co.state != StateIdle {
		return ErrBusy
	}
	d := co.draft
	if d.IsNew() && d.Service == "" {
		return errors.New("service is required")
	}
	if d.Login == "" {
		return errors.New("login is required")
	}

	prompt := PromptChange
	if d.IsNew() {
		prompt = PromptInsert
	}
	co.state = StateConfirming
	if !co.confirm.Confirm(prompt) {
		co.state = StateIdle
		return ErrDeclined
	}

	co.state = StateInFlight
	var err error
	if d.IsNew() {
		_, err = co.client.Create(ctx, d.Service, d.Login, d.Password)
	} else {
		_, err = co.client.Update(ctx, d.TargetID, d.Login, d.Password)
	}
	if err != nil {
		co.state = StateIdle
		return err
	}
	return co.settle(ctx)
}

// DeleteEntry runs the protocol for a delete of an existing id.
func (co *Coordinator) DeleteEntry(ctx context.Context, id int64) error {
	if co.state != StateIdle {
		return ErrBusy
	}
	co.state = StateConfirming
	if !co.confirm.Confirm(PromptDelete) {
		co.state = StateIdle
		return ErrDeclined
	}

	co.state = StateInFlight
	if err := co.client.Delete(ctx, id); err != nil {
		co.state = StateIdle
		return err
	}
	return co.settle(ctx)
}

// settle finishes a succeeded mutation: reload unconditionally, drop the
// draft, return to idle. The mutation itself is already durable on the
// server, so a reload failure is reported but does not resurrect the draft.
func (co *Coordinator) settle(ctx context.Context) error {
	reloadErr := co.cache.Reload(ctx)
	co.draft = nil
	co.state = StateIdle
	if reloadErr != nil {
		return fmt.Errorf("saved, but refreshing the list failed: %w", reloadErr)
	}
	return nil
}
