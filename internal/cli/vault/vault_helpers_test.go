package vault

import (
	"context"
	"fmt"

	"passvault/internal/cli/api"
	"passvault/internal/cli/model"
)

// fakeClient stands in for the vault server: it applies mutations to its
// own entry list, so a reload after a mutation observes server state, not
// local patches. Failures are injected per call kind.
type fakeClient struct {
	entries []model.Entry
	nextID  int64

	listErr error
	mutErr  error

	listCalls   int
	mutateCalls int
}

func newFakeClient(entries ...model.Entry) *fakeClient {
	f := &fakeClient{entries: entries, nextID: 100}
	return f
}

func (f *fakeClient) List(ctx context.Context) ([]model.Entry, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]model.Entry, len(f.entries))
	copy(out, f.entries)
	return out, nil
}

func (f *fakeClient) Create(ctx context.Context, service, login, password string) (*model.Entry, error) {
	f.mutateCalls++
	if f.mutErr != nil {
		return nil, f.mutErr
	}
	f.nextID++
	e := model.Entry{ID: f.nextID, Service: service, Login: login, Password: password}
	f.entries = append(f.entries, e)
	return &e, nil
}

func (f *fakeClient) Update(ctx context.Context, id int64, login, password string) (*model.Entry, error) {
	f.mutateCalls++
	if f.mutErr != nil {
		return nil, f.mutErr
	}
	for i := range f.entries {
		if f.entries[i].ID == id {
			f.entries[i].Login = login
			f.entries[i].Password = password
			return &f.entries[i], nil
		}
	}
	return nil, &api.Failure{Kind: api.FailureValidation, Message: "entry not found"}
}

func (f *fakeClient) Delete(ctx context.Context, id int64) error {
	f.mutateCalls++
	if f.mutErr != nil {
		return f.mutErr
	}
	for i := range f.entries {
		if f.entries[i].ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return &api.Failure{Kind: api.FailureValidation, Message: "entry not found"}
}

// answer is a scripted confirmer that records the prompts it was shown.
type answer struct {
	yes     bool
	prompts []string
}

func (a *answer) Confirm(prompt string) bool {
	a.prompts = append(a.prompts, prompt)
	return a.yes
}

func entryIDs(entries []model.Entry) string {
	s := ""
	for _, e := range entries {
		s += fmt.Sprintf("%d,", e.ID)
	}
	return s
}
