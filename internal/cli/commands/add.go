package commands

import (
	"context"
	"errors"
	"fmt"

	"passvault/internal/cli/vault"
	"passvault/internal/config"
)

type addCmd struct{}

func (addCmd) Name() string        { return "add" }
func (addCmd) Description() string { return "Create a new entry (asks for confirmation)" }
func (addCmd) Usage() string       { return "add <service> <login> <password>" }

func (addCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 3 {
		return ErrUsage
	}
	b := newBrowser(cfg)
	b.coord.BeginNew()
	d := b.coord.Draft()
	d.Service, d.Login, d.Password = args[0], args[1], args[2]

	err := b.coord.SaveDraft(ctx)
	if errors.Is(err, vault.ErrDeclined) {
		fmt.Fprintln(Out, "Cancelled, nothing was sent")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Saved")
	b.printEntries()
	return nil
}

func init() { RegisterCmd(addCmd{}) }
