package console

// FormController tracks one create-or-edit modal. E is the entity being
// edited and V the values the form submits.
type FormController[E any, V any] struct {
	open     bool
	editing  *E
	values   V
	defaults func() V
	from     func(E) V
}

func NewFormController[E any, V any](defaults func() V, from func(E) V) *FormController[E, V] {
	return &FormController[E, V]{defaults: defaults, from: from}
}

// OpenCreate resets the form to its defaults with nothing being edited.
func (f *FormController[E, V]) OpenCreate() {
	f.open = true
	f.editing = nil
	f.values = f.defaults()
}

// OpenEdit copies entity into the form and remembers it as the edit target.
func (f *FormController[E, V]) OpenEdit(entity E) {
	f.open = true
	f.editing = &entity
	f.values = f.from(entity)
}

func (f *FormController[E, V]) Cancel() {
	f.open = false
	f.editing = nil
	var zero V
	f.values = zero
}

func (f *FormController[E, V]) IsOpen() bool {
	return f.open
}

// Editing returns the entity under edit, or false in create mode.
func (f *FormController[E, V]) Editing() (E, bool) {
	if f.editing == nil {
		var zero E
		return zero, false
	}
	return *f.editing, true
}

// Stage keeps the last submitted values so a failed submit can be retried
// without re-entering them.
func (f *FormController[E, V]) Stage(values V) {
	f.values = values
}

func (f *FormController[E, V]) Snapshot() FormView[E, V] {
	view := FormView[E, V]{Open: f.open}
	if !f.open {
		return view
	}
	values := f.values
	view.Values = &values
	if f.editing != nil {
		editing := *f.editing
		view.Editing = &editing
	}
	return view
}

type FormView[E any, V any] struct {
	Open    bool `json:"open"`
	Editing *E   `json:"editing,omitempty"`
	Values  *V   `json:"values,omitempty"`
}
