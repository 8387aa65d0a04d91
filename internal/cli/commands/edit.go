package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"passvault/internal/cli/vault"
	"passvault/internal/config"
)

type editCmd struct{}

func (editCmd) Name() string        { return "edit" }
func (editCmd) Description() string { return "Replace login and password of an entry (asks for confirmation)" }
func (editCmd) Usage() string       { return "edit <id> <login> <password>" }

func (editCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 3 {
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
	if err := b.coord.BeginEdit(id); err != nil {
		return err
	}
	d := b.coord.Draft()
	d.Login, d.Password = args[1], args[2]

	err = b.coord.SaveDraft(ctx)
	if errors.Is(err, vault.ErrDeclined) {
		fmt.Fprintln(Out, "Cancelled, nothing was sent")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Saved")
	return nil
}

func init() { RegisterCmd(editCmd{}) }
