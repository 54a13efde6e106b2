package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// SupabaseStorage implements BlobStore against the Supabase storage HTTP API.
// Objects are uploaded with a bearer service key and served from the public
// object URL of the bucket.
type SupabaseStorage struct {
	ProjectURL string
	ServiceKey string
	Bucket     string
	HTTPClient *http.Client
}

func NewSupabaseStorage(projectURL, serviceKey, bucket string) *SupabaseStorage {
	return &SupabaseStorage{
		ProjectURL: projectURL,
		ServiceKey: serviceKey,
		Bucket:     bucket,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *SupabaseStorage) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.ProjectURL, s.Bucket, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.ServiceKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("upload %s: status %d: %s", path, resp.StatusCode, string(body))
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.ProjectURL, s.Bucket, path), nil
}

// MemoryBlobStore records uploads for the test suite.
type MemoryBlobStore struct {
	mu      sync.Mutex
	Objects map[string][]byte
	// FailPaths lists paths whose upload should fail, for exercising the
	// best-effort upload handling in the admission intake.
	FailPaths map[string]bool
}

func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{Objects: make(map[string][]byte), FailPaths: make(map[string]bool)}
}

func (s *MemoryBlobStore) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailPaths[path] {
		return "", fmt.Errorf("upload %s: simulated failure", path)
	}
	s.Objects[path] = data
	return "memory://" + path, nil
}
