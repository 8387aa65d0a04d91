package model

// Entry is one stored credential record as returned by the vault server.
// The secret lives only here; everything else renders it masked unless the
// user toggles visibility for this exact id.
type Entry struct {
	ID       int64  `json:"id"`
	Service  string `json:"service"`
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Draft is the transient form state for a create or update in progress.
// TargetID == 0 means a create; otherwise it is the id of the entry being
// edited. A draft is never merged into the cache before the server confirms
// the mutation.
type Draft struct {
	TargetID int64
	Service  string
	Login    string
	Password string
}

// IsNew reports whether the draft describes a create rather than an update.
func (d Draft) IsNew() bool { return d.TargetID == 0 }
