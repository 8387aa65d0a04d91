package vault

// MaskedSecret is what a hidden secret renders as, regardless of its length.
const MaskedSecret = "••••••••"

// Visibility tracks which entry ids are currently shown in clear text.
// Masking is the default, safe state: the set starts empty and is emptied
// again on every cache reload. Toggling changes a rendering decision only;
// no copy of any secret is made here.
type Visibility struct {
	visible map[int64]struct{}
}

func NewVisibility() *Visibility {
	return &Visibility{visible: make(map[int64]struct{})}
}

// Toggle flips visibility for one id, leaving all other ids untouched.
func (v *Visibility) Toggle(id int64) {
	if _, ok := v.visible[id]; ok {
		delete(v.visible, id)
		return
	}
	v.visible[id] = struct{}{}
}

// IsVisible reports whether id is currently shown unmasked.
func (v *Visibility) IsVisible(id int64) bool {
	_, ok := v.visible[id]
	return ok
}

// Reset re-masks everything.
func (v *Visibility) Reset() {
	v.visible = make(map[int64]struct{})
}

// Render returns the secret as it should be displayed for id.
func (v *Visibility) Render(id int64, secret string) string {
	if v.IsVisible(id) {
		return secret
	}
	return MaskedSecret
}
