package commands

import (
	"bufio"
	"fmt"
	"strings"

	"passvault/internal/cli/api"
	"passvault/internal/cli/model"
	"passvault/internal/cli/session"
	"passvault/internal/cli/vault"
	"passvault/internal/config"
)

// newClient assembles the session store and vault client for one command run.
func newClient(cfg *config.Config) (*session.Store, *api.Client) {
	sess := session.NewStore(cfg.TokenFile)
	sess.Load()
	return sess, api.New(cfg, sess)
}

// browser bundles the pieces behind the interactive and list-type commands.
type browser struct {
	guard *vault.Visibility
	cache *vault.Cache
	coord *vault.Coordinator
	in    *bufio.Reader // shared with the confirmer: one buffered view of In
}

// newBrowser assembles the full client stack with an interactive y/N
// confirmer reading from In.
func newBrowser(cfg *config.Config) *browser {
	_, client := newClient(cfg)
	guard := vault.NewVisibility()
	cache := vault.NewCache(client, guard)
	reader := bufio.NewReader(In)
	confirm := vault.ConfirmerFunc(func(prompt string) bool {
		fmt.Fprintf(Out, "%s [y/N]: ", prompt)
		line, _ := reader.ReadString('\n')
		answer := strings.TrimSpace(strings.ToLower(line))
		return answer == "y" || answer == "yes"
	})
	return &browser{
		guard: guard,
		cache: cache,
		coord: vault.NewCoordinator(client, cache, confirm),
		in:    reader,
	}
}

// printEntry renders one entry, masking the secret unless the guard says
// otherwise.
func (b *browser) printEntry(e model.Entry) {
	fmt.Fprintf(Out, "- [%d] %s\n", e.ID, e.Service)
	fmt.Fprintf(Out, "    login:    %s\n", e.Login)
	fmt.Fprintf(Out, "    password: %s\n", b.guard.Render(e.ID, e.Password))
}

// printEntries renders the whole cache snapshot in server order.
func (b *browser) printEntries() {
	entries := b.cache.All()
	if len(entries) == 0 {
		fmt.Fprintln(Out, "No entries")
		return
	}
	for _, e := range entries {
		b.printEntry(e)
	}
	fmt.Fprintf(Out, "Total: %d\n", len(entries))
}
