package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// SupabaseStorage removes moderated photo objects from Supabase Storage.
type SupabaseStorage struct {
	projectID  string
	apiKey     string
	bucketName string
	httpClient *http.Client
}

// NewSupabaseStorage creates a new Supabase Storage client scoped to one bucket
func NewSupabaseStorage(projectID, apiKey, bucketName string) *SupabaseStorage {
	return &SupabaseStorage{
		projectID:  projectID,
		apiKey:     apiKey,
		bucketName: bucketName,
		httpClient: &http.Client{},
	}
}

// Bucket returns the bucket this client operates on.
func (s *SupabaseStorage) Bucket() string {
	return s.bucketName
}

// RemoveObject deletes a single object by its bucket-relative key. An object
// that is already gone counts as removed, so a partially completed delete can
// be re-attempted safely.
func (s *SupabaseStorage) RemoveObject(ctx context.Context, key string) error {
	url := fmt.Sprintf("https://%s.supabase.co/storage/v1/object/%s/%s",
		s.projectID, s.bucketName, key)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent, http.StatusNotFound:
		return nil
	}

	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("delete failed with status %d: %s", resp.StatusCode, string(body))
}

// RemoveObjects deletes a batch of objects in one call. The storage API
// handles each key independently; keys that no longer exist are skipped
// rather than failing the batch.
func (s *SupabaseStorage) RemoveObjects(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	url := fmt.Sprintf("https://%s.supabase.co/storage/v1/object/%s",
		s.projectID, s.bucketName)

	payload, err := json.Marshal(map[string][]string{"prefixes": keys})
	if err != nil {
		return fmt.Errorf("failed to marshal delete payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to delete objects: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("batch delete failed with status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

// PublicURL returns the public URL for an object key.
func (s *SupabaseStorage) PublicURL(key string) string {
	return fmt.Sprintf("https://%s.supabase.co/storage/v1/object/public/%s/%s",
		s.projectID, s.bucketName, key)
}
