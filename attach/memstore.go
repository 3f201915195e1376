package attach

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemStore is an in-memory Store for development and tests. It exercises the
// full Tracker contract, including the upload-then-describe round trip:
// Describe reports the size actually read from the content, not the declared
// one.
type MemStore struct {
	mu    sync.Mutex
	files map[string]Attachment
	blobs map[string][]byte
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		files: map[string]Attachment{},
		blobs: map[string][]byte{},
	}
}

// Upload reads each file's content into memory under a fresh uuid.
func (s *MemStore) Upload(ctx context.Context, field string, files []File) ([]Attachment, error) {
	out := make([]Attachment, 0, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var blob []byte
		if f.Content != nil {
			b, err := io.ReadAll(f.Content)
			if err != nil {
				return nil, fmt.Errorf("memstore: read %q: %w", f.Name, err)
			}
			blob = b
		}
		a := Attachment{
			FileID:      uuid.NewString(),
			DisplayName: f.Name,
			Extension:   strings.TrimPrefix(path.Ext(f.Name), "."),
			SizeBytes:   int64(len(blob)),
			FieldName:   field,
		}
		a.DownloadURL = "mem://" + a.FileID
		s.mu.Lock()
		s.files[a.FileID] = a
		s.blobs[a.FileID] = blob
		s.mu.Unlock()
		out = append(out, a)
	}
	return out, nil
}

// Describe returns the stored metadata for each id, failing on unknown ids.
func (s *MemStore) Describe(ctx context.Context, ids []string) ([]Attachment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Attachment, 0, len(ids))
	for _, id := range ids {
		a, ok := s.files[id]
		if !ok {
			return nil, fmt.Errorf("memstore: no file %q", id)
		}
		out = append(out, a)
	}
	return out, nil
}

// Delete removes a stored file, failing on unknown ids.
func (s *MemStore) Delete(ctx context.Context, fileID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.files[fileID]; !ok {
		return fmt.Errorf("memstore: no file %q", fileID)
	}
	delete(s.files, fileID)
	delete(s.blobs, fileID)
	return nil
}

// Content returns a stored blob, for tests that verify round trips.
func (s *MemStore) Content(fileID string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blobs[fileID]
	return b, ok
}

var _ Store = (*MemStore)(nil)
