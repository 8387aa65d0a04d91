package commands

import (
	"context"

	"passvault/internal/config"
)

type listCmd struct{}

func (listCmd) Name() string        { return "list" }
func (listCmd) Description() string { return "Show all entries (secrets masked)" }
func (listCmd) Usage() string       { return "list" }

func (listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	b := newBrowser(cfg)
	if err := b.cache.Reload(ctx); err != nil {
		return err
	}
	b.printEntries()
	return nil
}

func init() { RegisterCmd(listCmd{}) }
