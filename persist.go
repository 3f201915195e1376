package intake

import "context"

// Sink is the caller-owned persistence boundary. It receives snapshots keyed
// by each question's external property name; the engine has no knowledge of
// how or where they are stored. Implementations typically write to a CRM
// record.
type Sink interface {
	// Save persists a work-in-progress snapshot.
	Save(ctx context.Context, snapshot map[string]string) error
	// Submit persists a final snapshot and marks the intake complete.
	Submit(ctx context.Context, snapshot map[string]string) error
}

// Save snapshots the form and hands it to the sink. On failure the form is
// untouched and a *PersistenceError is returned; the engine never retries —
// retry policy belongs to the caller's transport layer.
func Save(ctx context.Context, sink Sink, f *FormState) error {
	if err := sink.Save(ctx, f.Snapshot()); err != nil {
		return &PersistenceError{Op: "save", Cause: err}
	}
	return nil
}

// Submit is Save's terminal counterpart, with the same failure semantics.
func Submit(ctx context.Context, sink Sink, f *FormState) error {
	if err := sink.Submit(ctx, f.Snapshot()); err != nil {
		return &PersistenceError{Op: "submit", Cause: err}
	}
	return nil
}
