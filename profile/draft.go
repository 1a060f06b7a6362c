package profile

// Cloner is implemented by values that can produce an independent copy of themselves
type Cloner[T any] interface {
	Clone() T
}

// Draft is a value with an edit buffer. It moves Viewing -> Editing on Edit and back to
// Viewing on Save or Cancel. The committed value only changes on Save.
type Draft[T Cloner[T]] struct {
	Committed T    `json:"committed"`
	Staged    T    `json:"staged"`
	Editing   bool `json:"editing"`
}

// NewDraft returns a draft in the viewing state
func NewDraft[T Cloner[T]](v T) Draft[T] {
	return Draft[T]{Committed: v, Staged: v.Clone()}
}

// Edit stages a copy of the committed value
func (d *Draft[T]) Edit() {
	d.Staged = d.Committed.Clone()
	d.Editing = true
}

// Stage replaces the staged value. It is ignored outside editing.
func (d *Draft[T]) Stage(v T) {
	if !d.Editing {
		return
	}
	d.Staged = v.Clone()
}

// Save commits the staged value and reports whether there was an edit to save
func (d *Draft[T]) Save() (T, bool) {
	if !d.Editing {
		return d.Committed, false
	}
	d.Committed = d.Staged.Clone()
	d.Editing = false
	return d.Committed, true
}

// Cancel drops the staged value and goes back to the committed one
func (d *Draft[T]) Cancel() {
	d.Staged = d.Committed.Clone()
	d.Editing = false
}

// Reset replaces the committed value, dropping any edit in progress
func (d *Draft[T]) Reset(v T) {
	d.Committed = v
	d.Cancel()
}
