// Package receipt handles uploading expense receipt images to a remote
// document store. Upload failures are soft by contract: the owning
// expense is still persisted with only its local URI.
package receipt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Uploader stores a receipt image and returns its remote URL.
type Uploader interface {
	Upload(ctx context.Context, name string, r io.Reader) (string, error)
}

// HTTPUploader posts receipt images to a document store endpoint.
type HTTPUploader struct {
	client   *http.Client
	endpoint string
	apiToken string
}

func NewHTTPUploader(endpoint, apiToken string) *HTTPUploader {
	return &HTTPUploader{
		client:   &http.Client{Timeout: 30 * time.Second},
		endpoint: endpoint,
		apiToken: apiToken,
	}
}

func (u *HTTPUploader) Upload(ctx context.Context, name string, r io.Reader) (string, error) {
	var body bytes.Buffer

	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", name)
	if err != nil {
		return "", fmt.Errorf("creating form file: %w", err)
	}

	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("copying receipt: %w", err)
	}

	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("closing form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", mw.FormDataContentType())

	if u.apiToken != "" {
		req.Header.Set("Authorization", "Token "+u.apiToken)
	}

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("unexpected status: %s", resp.Status)
	}

	var result struct {
		URL string `json:"url"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	return result.URL, nil
}
