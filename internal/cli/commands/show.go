package commands

import (
	"context"
	"fmt"
	"strconv"

	"passvault/internal/config"
)

type showCmd struct{}

func (showCmd) Name() string        { return "show" }
func (showCmd) Description() string { return "Show one entry with its secret revealed" }
func (showCmd) Usage() string       { return "show <id>" }

func (showCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}
	b := newBrowser(cfg)
	if err := b.cache.Reload(ctx); err != nil {
		return err
	}
	e, ok := b.cache.Get(id)
	if !ok {
		return fmt.Errorf("no entry with id %d", id)
	}
	// Revealing is an explicit, per-entry action: this is the only place a
	// one-shot command prints a secret in clear text.
	b.guard.Toggle(id)
	b.printEntry(*e)
	return nil
}

func init() { RegisterCmd(showCmd{}) }
