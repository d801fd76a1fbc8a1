package memory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultRequestTimeout = 15 * time.Second

// SupabaseStore persists memory records in a hosted Supabase table
// via the PostgREST API.
type SupabaseStore struct {
	baseURL    string // <project-url>/rest/v1
	key        string
	collection string
	httpClient *http.Client
}

// NewSupabaseStore creates a client bound to the given project URL and key.
func NewSupabaseStore(projectURL, key, collection string) (*SupabaseStore, error) {
	u, err := url.Parse(projectURL)
	if err != nil {
		return nil, fmt.Errorf("invalid supabase url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid supabase url: %q", projectURL)
	}

	return &SupabaseStore{
		baseURL:    u.JoinPath("rest", "v1").String(),
		key:        key,
		collection: collection,
		httpClient: &http.Client{
			Timeout: defaultRequestTimeout,
		},
	}, nil
}

// Name identifies the backend.
func (s *SupabaseStore) Name() string { return "supabase" }

// Insert writes a record to the remote collection. The remote backend
// manages its own identity and creation timestamp.
func (s *SupabaseStore) Insert(ctx context.Context, rec Record) error {
	row := map[string]interface{}{
		"type":       rec.Type,
		"content":    rec.Content,
		"importance": rec.Importance,
	}
	if rec.Reasoning != "" {
		row["reasoning"] = rec.Reasoning
	}
	if len(rec.Tags) > 0 {
		row["tags"] = rec.Tags
	}

	body, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.collectionURL(nil), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	s.setHeaders(req)
	req.Header.Set("Prefer", "return=minimal")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("supabase error (status %d): %s", resp.StatusCode, string(respBody))
	}
	return nil
}

// Search returns records matching the query, ordered by importance descending.
func (s *SupabaseStore) Search(ctx context.Context, q Query) ([]Record, error) {
	params := url.Values{}
	params.Set("select", "type,content,importance")
	params.Set("order", "importance.desc")
	params.Set("limit", fmt.Sprintf("%d", q.Limit))
	if q.Type != "" {
		params.Set("type", "eq."+q.Type)
	}
	if q.Text != "" {
		params.Set("content", "ilike.*"+q.Text+"*")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.collectionURL(params), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	s.setHeaders(req)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("supabase error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var recs []Record
	if err := json.Unmarshal(respBody, &recs); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return recs, nil
}

// Delete removes records whose content contains match. The deleted rows are
// requested back so the count can be reported like the local backend does.
func (s *SupabaseStore) Delete(ctx context.Context, match string) (int, error) {
	params := url.Values{}
	params.Set("content", "ilike.*"+match+"*")

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.collectionURL(params), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	s.setHeaders(req)
	req.Header.Set("Prefer", "return=representation")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("supabase error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var deleted []json.RawMessage
	if err := json.Unmarshal(respBody, &deleted); err != nil {
		return 0, fmt.Errorf("failed to parse response: %w", err)
	}
	return len(deleted), nil
}

// Close implements Store; the HTTP client holds no per-invocation resources.
func (s *SupabaseStore) Close() error { return nil }

func (s *SupabaseStore) collectionURL(params url.Values) string {
	u := s.baseURL + "/" + s.collection
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

func (s *SupabaseStore) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", s.key)
	req.Header.Set("Authorization", "Bearer "+s.key)
}
