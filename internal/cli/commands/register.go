package commands

import (
	"context"
	"fmt"

	"passvault/internal/config"
)

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create an account on the vault server" }
func (registerCmd) Usage() string       { return "register <username> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	_, client := newClient(cfg)
	if err := client.Register(ctx, args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Registered. Now run: pvcli login %s <password>\n", args[0])
	return nil
}

func init() { RegisterCmd(registerCmd{}) }
