package intake

import (
	"fmt"
	"strings"
)

// FormState is the sole mutation gateway for a form's answers. Every edit goes
// through SetField, which recomputes visibility over the entire field set and
// cascades clears, so the stored answers and the visible set can never
// diverge. All reads go through accessors; callers never touch the map
// directly. Single logical owner; not safe for concurrent mutation.
type FormState struct {
	idx     *Index
	values  map[string]string
	visible map[string]struct{}
}

// NewForm creates an empty form over an indexed schema.
func NewForm(idx *Index) *FormState {
	f := &FormState{
		idx:    idx,
		values: map[string]string{},
	}
	f.visible = Visible(idx, f.values)
	return f
}

// SetField applies a single edit. The field must exist in the schema; unknown
// fields raise Issues (CodeUnknownField) and leave the state untouched. After
// the edit, visibility is recomputed against the updated answers and every
// now-hidden field's stored value is discarded, through all dependency levels,
// before the call returns. An empty value clears the field.
func (f *FormState) SetField(field, value string) error {
	q, ok := f.idx.Question(field)
	if !ok {
		return Issues{{
			Field:   field,
			Code:    CodeUnknownField,
			Message: fmt.Sprintf("no question %q in schema", field),
		}}
	}
	if value == "" {
		delete(f.values, field)
	} else {
		f.values[field] = normalizeAnswer(q, value)
	}
	f.recompute()
	return nil
}

// LoadInitial seeds the form from a persisted record, normalizing enumerated
// answers to their canonical lowercase form before storing, then runs the same
// cascading-visibility pass so a form resumed mid-way starts consistent. Keys
// that match no schema field are dropped: the persisted record may be a
// superset of this questionnaire's field space.
func (f *FormState) LoadInitial(initial map[string]string) {
	for field, value := range initial {
		q, ok := f.idx.Question(field)
		if !ok || value == "" {
			continue
		}
		f.values[field] = normalizeAnswer(q, value)
	}
	f.recompute()
}

// recompute restores the visibility invariant after a mutation. Clearing a
// hidden field can hide its own dependents in turn, so the pass repeats until
// no stored value had to be discarded; the loop is bounded by the length of
// the longest dependency chain.
func (f *FormState) recompute() {
	for {
		vis := Visible(f.idx, f.values)
		f.visible = vis
		cleared := false
		for field := range f.values {
			if _, ok := vis[field]; !ok {
				delete(f.values, field)
				cleared = true
			}
		}
		if !cleared {
			return
		}
	}
}

// Visible returns the cached visible set from the last mutation. It is never
// stale relative to the last SetField/LoadInitial call.
func (f *FormState) Visible() map[string]struct{} { return f.visible }

// IsVisible reports whether a single field is currently visible.
func (f *FormState) IsVisible(field string) bool {
	_, ok := f.visible[field]
	return ok
}

// Value returns the stored answer for a field.
func (f *FormState) Value(field string) (string, bool) {
	v, ok := f.values[field]
	return v, ok
}

// Values returns a copy of the current answers keyed by field name.
func (f *FormState) Values() map[string]string {
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// Index returns the schema index the form was built over.
func (f *FormState) Index() *Index { return f.idx }

// Snapshot projects the current answers into the caller's persistence key
// space (Question.ExternalProperty, falling back to the field name). This is
// the map handed to a Sink on Save/Submit.
func (f *FormState) Snapshot() map[string]string {
	out := make(map[string]string, len(f.values))
	for field, v := range f.values {
		q, ok := f.idx.Question(field)
		if ok && q.ExternalProperty != "" {
			out[q.ExternalProperty] = v
			continue
		}
		out[field] = v
	}
	return out
}

// normalizeAnswer canonicalizes enumerated answers: a radio value matching one
// of the question's options case-insensitively is stored as the lowercase
// option value, so "Yes"/"YES"/"yes" persist identically. Other field types
// keep the caller's text with surrounding whitespace trimmed.
func normalizeAnswer(q *Question, value string) string {
	value = strings.TrimSpace(value)
	if q.Type != FieldRadio {
		return value
	}
	for _, opt := range q.Options {
		if strings.EqualFold(value, opt.Value) {
			return strings.ToLower(opt.Value)
		}
	}
	return value
}
