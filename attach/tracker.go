package attach

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	intake "github.com/StanfordCorporation/intake-engine"
	"github.com/StanfordCorporation/intake-engine/i18n"
)

// Tracker maintains the per-field attachment lists for one form instance.
// Lists are appended to, never replaced, and the map is mutex-guarded, so
// uploads for different fields may run concurrently. Concurrent uploads
// against the same field are not queued or de-duplicated; serializing those is
// the caller's job.
type Tracker struct {
	idx   *intake.Index
	store Store

	mu      sync.Mutex
	byField map[string][]Attachment
}

// NewTracker creates a tracker for a form over the given schema index, backed
// by the external store.
func NewTracker(idx *intake.Index, store Store) *Tracker {
	return &Tracker{
		idx:     idx,
		store:   store,
		byField: map[string][]Attachment{},
	}
}

// Upload validates the batch against the field's limits and sends the
// acceptable files to the store. Checks run per file before any network call:
// files over the size limit, and files beyond the field's remaining capacity,
// are rejected with issues while the rest of the batch still proceeds. After a
// successful upload the authoritative metadata is fetched back with Describe
// (two round trips) rather than trusted from the upload response, and the
// resulting descriptors are appended to the field's list.
//
// The returned attachments are the ones added; the error carries the
// per-file validation issues (intake.Issues) when some files were rejected, or
// an *OperationError when the store call failed — in which case nothing was
// added.
func (t *Tracker) Upload(ctx context.Context, field string, files []File) ([]Attachment, error) {
	q, ok := t.idx.Question(field)
	if !ok || q.Type != intake.FieldFile {
		return nil, intake.Issues{{
			Field:   field,
			Code:    intake.CodeUnknownField,
			Message: fmt.Sprintf("no file question %q in schema", field),
		}}
	}

	accepted, iss := t.screen(q, field, files)
	if len(accepted) == 0 {
		if len(iss) > 0 {
			return nil, iss
		}
		return nil, nil
	}

	uploaded, err := t.store.Upload(ctx, field, accepted)
	if err != nil {
		return nil, &OperationError{Op: "upload", Field: field, Cause: err}
	}
	ids := make([]string, len(uploaded))
	for i, a := range uploaded {
		ids[i] = a.FileID
	}
	described, err := t.store.Describe(ctx, ids)
	if err != nil {
		// The files reached the store but their authoritative metadata did
		// not come back; listing them locally would show unverified data, so
		// nothing is added and the caller retries via Resume.
		return nil, &OperationError{Op: "describe", Field: field, Cause: err}
	}
	for i := range described {
		described[i].FieldName = field
	}

	t.mu.Lock()
	t.byField[field] = append(t.byField[field], described...)
	t.mu.Unlock()

	if len(iss) > 0 {
		return described, iss
	}
	return described, nil
}

// screen applies the per-file size check and the field capacity check,
// partitioning the batch into accepted files and rejection issues.
func (t *Tracker) screen(q *intake.Question, field string, files []File) ([]File, intake.Issues) {
	t.mu.Lock()
	remaining := q.MaxFiles - len(t.byField[field])
	t.mu.Unlock()

	var accepted []File
	var iss intake.Issues
	for _, f := range files {
		if f.Size > q.MaxFileSize {
			iss = intake.AppendIssues(iss, intake.Issue{
				Field:   field,
				Code:    intake.CodeFileTooBig,
				Message: i18n.T(intake.CodeFileTooBig, map[string]string{"max": strconv.FormatInt(q.MaxFileSize, 10)}),
				Params:  map[string]any{"file": f.Name, "size": f.Size, "max": q.MaxFileSize},
			})
			continue
		}
		if remaining <= 0 {
			iss = intake.AppendIssues(iss, intake.Issue{
				Field:   field,
				Code:    intake.CodeTooManyFiles,
				Message: i18n.T(intake.CodeTooManyFiles, map[string]string{"max": strconv.Itoa(q.MaxFiles)}),
				Params:  map[string]any{"file": f.Name, "max": q.MaxFiles},
			})
			continue
		}
		remaining--
		accepted = append(accepted, f)
	}
	return accepted, iss
}

// Delete removes one attachment from its field's list after the store confirms
// the deletion. User confirmation happens in the caller's UI before this is
// invoked; the tracker does not enforce it. A store failure leaves the
// attachment listed and surfaces an *OperationError.
func (t *Tracker) Delete(ctx context.Context, field, fileID string) error {
	t.mu.Lock()
	pos := -1
	for i, a := range t.byField[field] {
		if a.FileID == fileID {
			pos = i
			break
		}
	}
	t.mu.Unlock()
	if pos < 0 {
		return ErrUnknownAttachment
	}

	if err := t.store.Delete(ctx, fileID); err != nil {
		return &OperationError{Op: "delete", Field: field, FileID: fileID, Cause: err}
	}

	t.mu.Lock()
	list := t.byField[field]
	for i, a := range list {
		if a.FileID == fileID {
			t.byField[field] = append(list[:i], list[i+1:]...)
			break
		}
	}
	t.mu.Unlock()
	return nil
}

// Resume rebuilds a field's list from persisted attachment ids (the
// comma-joined value a file field stores), fetching authoritative metadata
// from the store. Existing entries for the field are replaced.
func (t *Tracker) Resume(ctx context.Context, field, value string) error {
	if _, ok := t.idx.Question(field); !ok {
		return intake.Issues{{
			Field:   field,
			Code:    intake.CodeUnknownField,
			Message: fmt.Sprintf("no question %q in schema", field),
		}}
	}
	ids := SplitValue(value)
	if len(ids) == 0 {
		t.mu.Lock()
		delete(t.byField, field)
		t.mu.Unlock()
		return nil
	}
	described, err := t.store.Describe(ctx, ids)
	if err != nil {
		return &OperationError{Op: "describe", Field: field, Cause: err}
	}
	for i := range described {
		described[i].FieldName = field
	}
	t.mu.Lock()
	t.byField[field] = described
	t.mu.Unlock()
	return nil
}

// Attachments returns a copy of the field's current list.
func (t *Tracker) Attachments(field string) []Attachment {
	t.mu.Lock()
	defer t.mu.Unlock()
	list := t.byField[field]
	out := make([]Attachment, len(list))
	copy(out, list)
	return out
}

// FieldValue renders the field's attachment ids as the comma-joined string a
// FormState stores for file fields.
func (t *Tracker) FieldValue(field string) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	list := t.byField[field]
	ids := make([]string, len(list))
	for i, a := range list {
		ids[i] = a.FileID
	}
	return strings.Join(ids, ",")
}

// SplitValue parses a file field's stored value back into attachment ids.
func SplitValue(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
