package commands

import (
	"context"
	"errors"
	"fmt"

	"passvault/internal/cli/api"
	"passvault/internal/config"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show session and server status" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	sess, client := newClient(cfg)
	fmt.Fprintf(Out, "Server: %s\n", cfg.ServerURL)
	if sess.Current() == "" {
		fmt.Fprintln(Out, "Session: not logged in")
		return nil
	}

	entries, err := client.List(ctx)
	if err != nil {
		var f *api.Failure
		if errors.As(err, &f) && f.Kind == api.FailureAuthMissing {
			fmt.Fprintln(Out, "Session: expired, log in again")
			return nil
		}
		return err
	}
	fmt.Fprintf(Out, "Session: active, %d entries stored\n", len(entries))
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
