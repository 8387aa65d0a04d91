package vault

import (
	"context"

	"passvault/internal/cli/model"
)

// Lister is the part of the vault client the cache needs.
type Lister interface {
	List(ctx context.Context) ([]model.Entry, error)
}

// Cache is the in-memory list of entries currently shown to the user. It is
// the single source of truth for rendering until the next successful reload.
// It is only ever replaced wholesale, never patched with locally-known
// values, so it cannot diverge from the server for more than one round trip.
type Cache struct {
	client  Lister
	guard   *Visibility
	entries []model.Entry
}

func NewCache(client Lister, guard *Visibility) *Cache {
	return &Cache{client: client, guard: guard}
}

// Reload fetches a fresh list and replaces the whole snapshot. On failure
// the previous snapshot is kept so the UI is never blanked by a transient
// error. A successful reload re-masks all secrets: entries from a fresh
// read start hidden.
func (c *Cache) Reload(ctx context.Context) error {
	entries, err := c.client.List(ctx)
	if err != nil {
		return err
	}
	c.entries = entries
	c.guard.Reset()
	return nil
}

// All returns the current snapshot in server order.
func (c *Cache) All() []model.Entry { return c.entries }

// Get finds an entry by id in the current snapshot.
func (c *Cache) Get(id int64) (*model.Entry, bool) {
	for i := range c.entries {
		if c.entries[i].ID == id {
			return &c.entries[i], true
		}
	}
	return nil, false
}

// Len returns the number of cached entries.
func (c *Cache) Len() int { return len(c.entries) }
