// Package attach is the client side of the attachment service: upload a
// file, delete it by stored name, and probe service health.
package attach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/princewidd/widhi-productivity-hub/internal/models"
)

// MaxUploadSize is the largest file the service accepts.
const MaxUploadSize = 10 << 20

// ErrTooLarge reports an upload above MaxUploadSize, detected before any
// bytes leave the client.
var ErrTooLarge = errors.New("attach: file exceeds 10 MB limit")

type uploadResponse struct {
	Success      bool   `json:"success"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	URL          string `json:"url"`
	Size         int64  `json:"size"`
	Error        string `json:"error"`
}

type deleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Health is the service health report.
type Health struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}

// Client talks to an attachment service instance.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientHTTP builds a client over a caller-supplied http.Client.
func NewClientHTTP(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: baseURL, client: hc}
}

// Upload streams the named file to the service and returns the stored
// attachment descriptor. size is the file length in bytes; uploads above
// MaxUploadSize are rejected locally.
func (c *Client) Upload(ctx context.Context, name string, size int64, r io.Reader) (models.Attachment, error) {
	if size > MaxUploadSize {
		return models.Attachment{}, ErrTooLarge
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		part, err := mw.CreateFormFile("file", name)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, r); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", pr)
	if err != nil {
		return models.Attachment{}, fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	res, err := c.client.Do(req)
	if err != nil {
		return models.Attachment{}, fmt.Errorf("upload %q: %w", name, err)
	}
	defer res.Body.Close()

	var body uploadResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return models.Attachment{}, fmt.Errorf("decode upload response: %w", err)
	}
	if res.StatusCode != http.StatusOK || !body.Success {
		if body.Error != "" {
			return models.Attachment{}, fmt.Errorf("upload %q: %s", name, body.Error)
		}
		return models.Attachment{}, fmt.Errorf("upload %q: service returned %d", name, res.StatusCode)
	}

	return models.Attachment{
		Name:     body.OriginalName,
		URL:      body.URL,
		Filename: body.Filename,
		Size:     body.Size,
	}, nil
}

// Remove deletes a stored file by its server filename. The caller drops
// its attachment record only when Remove returns nil.
func (c *Client) Remove(ctx context.Context, filename string) error {
	target := c.baseURL + "/uploads/" + url.PathEscape(filename)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, target, nil)
	if err != nil {
		return fmt.Errorf("build delete request: %w", err)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("delete %q: %w", filename, err)
	}
	defer res.Body.Close()

	var body deleteResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return fmt.Errorf("decode delete response: %w", err)
	}
	if res.StatusCode != http.StatusOK || !body.Success {
		if body.Error != "" {
			return fmt.Errorf("delete %q: %s", filename, body.Error)
		}
		return fmt.Errorf("delete %q: service returned %d", filename, res.StatusCode)
	}
	return nil
}

// CheckHealth probes the service health endpoint.
func (c *Client) CheckHealth(ctx context.Context) (Health, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return Health{}, fmt.Errorf("build health request: %w", err)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return Health{}, fmt.Errorf("health check: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return Health{}, fmt.Errorf("health check: service returned %d", res.StatusCode)
	}

	var h Health
	if err := json.NewDecoder(res.Body).Decode(&h); err != nil {
		return Health{}, fmt.Errorf("decode health response: %w", err)
	}
	return h, nil
}
