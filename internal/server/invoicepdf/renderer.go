package invoicepdf

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// Renderer converts an HTML document into PDF bytes.
type Renderer interface {
	Render(ctx context.Context, html string) ([]byte, error)
}

// HTTPRenderer drives a Gotenberg-compatible HTML-to-PDF converter over HTTP.
type HTTPRenderer struct {
	endpoint string
	client   *http.Client
}

func NewHTTPRenderer(endpoint string) *HTTPRenderer {
	return &HTTPRenderer{
		endpoint: strings.TrimSuffix(endpoint, "/") + "/forms/chromium/convert/html",
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (r *HTTPRenderer) Render(ctx context.Context, html string) ([]byte, error) {
	var body strings.Builder
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("files", "index.html")
	if err != nil {
		return nil, err
	}
	if _, err := io.WriteString(part, html); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, strings.NewReader(body.String()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pdf renderer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pdf renderer: unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
