package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"passvault/internal/cli/vault"
	"passvault/internal/config"
)

type browseCmd struct{}

func (browseCmd) Name() string        { return "browse" }
func (browseCmd) Description() string { return "Interactive vault session" }
func (browseCmd) Usage() string       { return "browse" }

const browseHelp = `  list              show all entries
  show <id>         toggle secret visibility for one entry
  new               start a new entry
  edit <id>         edit an existing entry
  del <id>          delete an entry
  reload            refresh the list from the server
  quit              leave`

const editHelp = `  service <value>   set service name (new entries only)
  login <value>     set login
  password <value>  set password
  save              save the entry
  back              discard and return`

// Run drives the interactive session: a browsing prompt over the cached
// list and an editing prompt over the open draft. Every mutation goes
// through the coordinator, so nothing reaches the server unconfirmed.
func (browseCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	b := newBrowser(cfg)
	if err := b.cache.Reload(ctx); err != nil {
		return err
	}
	b.printEntries()

	for {
		if b.coord.Editing() {
			fmt.Fprint(Out, "edit> ")
		} else {
			fmt.Fprint(Out, "vault> ")
		}
		line, err := b.in.ReadString('\n')
		if err != nil && line == "" {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		verb, rest := splitInput(line)
		if verb == "" {
			continue
		}
		if b.coord.Editing() {
			b.handleEditing(ctx, verb, rest)
			continue
		}
		if verb == "quit" || verb == "exit" {
			return nil
		}
		b.handleBrowsing(ctx, verb, rest)
	}
}

func splitInput(line string) (string, string) {
	line = strings.TrimSpace(line)
	verb, rest, _ := strings.Cut(line, " ")
	return strings.ToLower(verb), strings.TrimSpace(rest)
}

func (b *browser) handleBrowsing(ctx context.Context, verb, rest string) {
	switch verb {
	case "help":
		fmt.Fprintln(Out, browseHelp)
	case "list":
		b.printEntries()
	case "reload":
		if err := b.cache.Reload(ctx); err != nil {
			fmt.Fprintf(Out, "reload failed: %v\n", err)
			return
		}
		b.printEntries()
	case "show":
		id, ok := parseID(rest)
		if !ok {
			fmt.Fprintln(Out, "usage: show <id>")
			return
		}
		e, found := b.cache.Get(id)
		if !found {
			fmt.Fprintf(Out, "no entry with id %d\n", id)
			return
		}
		b.guard.Toggle(id)
		b.printEntry(*e)
	case "new":
		b.coord.BeginNew()
		fmt.Fprintln(Out, "New entry. Set fields, then save:")
		fmt.Fprintln(Out, editHelp)
	case "edit":
		id, ok := parseID(rest)
		if !ok {
			fmt.Fprintln(Out, "usage: edit <id>")
			return
		}
		if err := b.coord.BeginEdit(id); err != nil {
			fmt.Fprintln(Out, err)
			return
		}
		b.printDraft()
	case "del":
		id, ok := parseID(rest)
		if !ok {
			fmt.Fprintln(Out, "usage: del <id>")
			return
		}
		err := b.coord.DeleteEntry(ctx, id)
		switch {
		case errors.Is(err, vault.ErrDeclined):
			fmt.Fprintln(Out, "Cancelled, nothing was sent")
		case err != nil:
			fmt.Fprintf(Out, "delete failed: %v\n", err)
		default:
			fmt.Fprintln(Out, "Deleted")
			b.printEntries()
		}
	default:
		fmt.Fprintf(Out, "Unknown command: %s (try help)\n", verb)
	}
}

func (b *browser) handleEditing(ctx context.Context, verb, rest string) {
	d := b.coord.Draft()
	switch verb {
	case "help":
		fmt.Fprintln(Out, editHelp)
	case "service":
		if !d.IsNew() {
			fmt.Fprintln(Out, "service is fixed for an existing entry")
			return
		}
		d.Service = rest
	case "login":
		d.Login = rest
	case "password":
		d.Password = rest
	case "save":
		err := b.coord.SaveDraft(ctx)
		switch {
		case errors.Is(err, vault.ErrDeclined):
			fmt.Fprintln(Out, "Cancelled, nothing was sent")
		case err != nil:
			// The draft keeps the user's input: correct and save again,
			// or back out.
			fmt.Fprintf(Out, "save failed: %v\n", err)
		default:
			fmt.Fprintln(Out, "Saved")
			b.printEntries()
		}
	case "back":
		b.coord.CancelEdit()
		fmt.Fprintln(Out, "Discarded")
	case "show":
		b.printDraft()
	default:
		fmt.Fprintf(Out, "Unknown command: %s (try help)\n", verb)
	}
}

// printDraft renders the open draft. The password field is the user's own
// fresh input (or came from an explicit edit action), so it is shown as
// typed.
func (b *browser) printDraft() {
	d := b.coord.Draft()
	if d == nil {
		return
	}
	if d.IsNew() {
		fmt.Fprintln(Out, "New entry:")
	} else {
		fmt.Fprintf(Out, "Editing [%d]:\n", d.TargetID)
	}
	fmt.Fprintf(Out, "  service:  %s\n", d.Service)
	fmt.Fprintf(Out, "  login:    %s\n", d.Login)
	fmt.Fprintf(Out, "  password: %s\n", d.Password)
}

func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	return id, err == nil
}

func init() { RegisterCmd(browseCmd{}) }
