package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Loader fetches and parses a question list. A session loads the catalog
// exactly once; an in-flight load is aborted by cancelling the context.
type Loader interface {
	Load(ctx context.Context) (Catalog, error)
}

// FileLoader reads the catalog from a JSON file on disk.
type FileLoader struct {
	Path string
}

// Load implements Loader.
func (l FileLoader) Load(ctx context.Context) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return decode(raw)
}

// HTTPLoader fetches the catalog from a URL.
type HTTPLoader struct {
	URL    string
	Client *http.Client
}

// DefaultHTTPTimeout bounds a catalog fetch when no client is supplied.
const DefaultHTTPTimeout = 15 * time.Second

// Load implements Loader. Non-2xx responses and malformed payloads fail
// with a descriptive error; cancelling ctx aborts the fetch.
func (l HTTPLoader) Load(ctx context.Context) (Catalog, error) {
	client := l.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultHTTPTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch catalog: HTTP %d for %s", resp.StatusCode, l.URL)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog response: %w", err)
	}
	return decode(raw)
}

// decode validates raw payload bytes and unmarshals them into a Catalog.
func decode(raw []byte) (Catalog, error) {
	if err := validatePayload(raw); err != nil {
		return nil, fmt.Errorf("malformed catalog payload: %w", err)
	}
	var questions []Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("decode catalog payload: %w", err)
	}
	if err := Validate(questions); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return Catalog(questions), nil
}
