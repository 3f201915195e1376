// Package attach tracks per-field file attachments for a questionnaire,
// decoupled from the textual answers. Binary content and durable storage live
// behind the caller-supplied Store; the tracker owns only the per-field lists
// of attachment descriptors and keeps them consistent with the store (no
// optimistic removal, no partial bookkeeping of failed uploads).
package attach

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// File is an upload request: a name, a declared size and the content reader.
// Size is checked against the question's limit before any store call.
type File struct {
	Name    string
	Size    int64
	Content io.Reader
}

// Attachment is the descriptor of one stored file, as reported by the store.
type Attachment struct {
	FileID      string `json:"fileId"`
	DisplayName string `json:"displayName"`
	Extension   string `json:"extension"`
	SizeBytes   int64  `json:"sizeBytes"`
	DownloadURL string `json:"downloadUrl"`
	FieldName   string `json:"fieldName"`
}

// Store is the external file-store boundary. Upload persists file content and
// returns provisional descriptors; Describe fetches authoritative metadata for
// already-stored files; Delete removes one file. All calls may cross a
// network.
type Store interface {
	Upload(ctx context.Context, field string, files []File) ([]Attachment, error)
	Describe(ctx context.Context, ids []string) ([]Attachment, error)
	Delete(ctx context.Context, fileID string) error
}

// ErrUnknownAttachment is returned by Delete when the file id is not listed
// under the field.
var ErrUnknownAttachment = errors.New("attach: unknown attachment")

// OperationError reports a failed call to the external store. The tracker's
// local state is rolled back to its pre-call shape: a failed upload adds
// nothing, a failed delete leaves the attachment listed, so the UI never shows
// a state the store disagrees with.
type OperationError struct {
	Op     string // "upload", "describe" or "delete"
	Field  string
	FileID string // set for delete failures
	Cause  error
}

func (e *OperationError) Error() string {
	if e.FileID != "" {
		return fmt.Sprintf("attach: %s %s/%s failed: %v", e.Op, e.Field, e.FileID, e.Cause)
	}
	return fmt.Sprintf("attach: %s for %s failed: %v", e.Op, e.Field, e.Cause)
}

func (e *OperationError) Unwrap() error { return e.Cause }
