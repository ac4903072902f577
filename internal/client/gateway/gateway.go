// Package gateway wraps every outbound API call of the CLI client. Session
// cookies live in the gateway's cookie jar, and a 401 on a protected route
// triggers a silent token refresh with exactly one refresh call in flight no
// matter how many requests fail at the same time.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
	"time"
)

// ErrNotAuthenticated reports a terminal authentication failure: the session
// was cleared and the caller has to log in again.
var ErrNotAuthenticated = errors.New("not authenticated")

// APIError is a non-2xx response decoded from the server's envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error: %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error: %d", e.StatusCode)
}

type envelope struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

// Gateway is the single client-side entry point for API calls. It holds the
// cookie jar with the session cookies and the refresh state machine. Safe for
// concurrent use.
type Gateway struct {
	baseURL        string
	httpClient     *http.Client
	refreshTimeout time.Duration

	mu         sync.Mutex
	refreshing bool
	waiters    []chan error
}

func New(baseURL string, requestTimeout, refreshTimeout time.Duration) (*Gateway, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Gateway{
		baseURL:        strings.TrimRight(baseURL, "/"),
		httpClient:     &http.Client{Jar: jar, Timeout: requestTimeout},
		refreshTimeout: refreshTimeout,
	}, nil
}

// credentialPath reports whether path submits credentials. A 401 there means
// the credentials themselves were wrong; refreshing tokens cannot help.
func credentialPath(path string) bool {
	return strings.HasSuffix(path, "/auth/login") ||
		strings.HasSuffix(path, "/auth/register") ||
		strings.HasSuffix(path, "/profile/password")
}

// sessionPath reports whether path manages the session itself. A 401 there is
// terminal: the session is gone and retrying would loop forever.
func sessionPath(path string) bool {
	return strings.HasSuffix(path, "/auth/logout") ||
		strings.HasSuffix(path, "/auth/reset-token")
}

// clearSession drops every cookie by swapping in a fresh jar.
func (g *Gateway) clearSession() {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return
	}
	g.httpClient.Jar = jar
}

// call executes one HTTP round trip and decodes the envelope. A nil out skips
// result decoding. Non-2xx responses come back as *APIError.
func (g *Gateway) call(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env envelope
	if len(data) > 0 {
		// some endpoints (health, PDF) do not use the envelope
		_ = json.Unmarshal(data, &env)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := env.Error
		if msg == "" {
			msg = env.Message
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil && env.Result != nil {
		return json.Unmarshal(env.Result, out)
	}
	return nil
}

// Do sends an API request, transparently refreshing the session once if the
// first attempt comes back 401. Terminal 401s (credential submission, the
// session endpoints, or a second 401 after a retry) fail immediately; a 401
// on the session endpoints also clears the local session.
func (g *Gateway) Do(ctx context.Context, method, path string, body, out any) error {
	err := g.call(ctx, method, path, body, out)
	if !isUnauthorized(err) {
		return err
	}

	if credentialPath(path) {
		return err
	}
	if sessionPath(path) {
		g.clearSession()
		return err
	}

	if refreshErr := g.refresh(ctx); refreshErr != nil {
		g.clearSession()
		return fmt.Errorf("%w: %v", ErrNotAuthenticated, refreshErr)
	}

	// one retry only; a second 401 is terminal
	return g.call(ctx, method, path, body, out)
}

func isUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// refresh coalesces concurrent refresh attempts into one in-flight call to
// the reset-token endpoint. The first caller performs the call under a
// bounded timeout; everyone who arrives while it is running waits for the
// same outcome.
func (g *Gateway) refresh(ctx context.Context) error {
	g.mu.Lock()
	if g.refreshing {
		ch := make(chan error, 1)
		g.waiters = append(g.waiters, ch)
		g.mu.Unlock()
		select {
		case err := <-ch:
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	g.refreshing = true
	g.mu.Unlock()

	// the refresh outcome settles the whole queue, so it must not inherit a
	// single waiter's deadline
	refreshCtx, cancel := context.WithTimeout(context.Background(), g.refreshTimeout)
	err := g.call(refreshCtx, http.MethodGet, "/api/users/auth/reset-token", nil, nil)
	cancel()

	g.mu.Lock()
	g.refreshing = false
	waiters := g.waiters
	g.waiters = nil
	g.mu.Unlock()

	for _, ch := range waiters {
		ch <- err
	}
	return err
}
