package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"passvault/internal/cli/vault"
	"passvault/internal/config"
)

type deleteCmd struct{}

func (deleteCmd) Name() string        { return "delete" }
func (deleteCmd) Description() string { return "Delete an entry (asks for confirmation)" }
func (deleteCmd) Usage() string       { return "delete <id>" }

func (deleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}
	b := newBrowser(cfg)
	err = b.coord.DeleteEntry(ctx, id)
	if errors.Is(err, vault.ErrDeclined) {
		fmt.Fprintln(Out, "Cancelled, nothing was sent")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Deleted")
	return nil
}

func init() { RegisterCmd(deleteCmd{}) }
