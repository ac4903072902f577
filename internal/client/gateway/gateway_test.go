package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authServer simulates the session lifecycle: a protected endpoint that
// rejects stale access cookies, and a reset-token endpoint that rotates them.
type authServer struct {
	mu           sync.Mutex
	accessSerial int
	refreshCalls int32
	refreshFails bool
	barrier      chan struct{}
}

func (s *authServer) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/users/auth/login", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.accessSerial++
		serial := s.accessSerial
		s.mu.Unlock()
		setSessionCookies(w, serial)
		fmt.Fprint(w, `{"success":true,"result":{"email":"a@b.c","role":"admin","permissions":["orders"]}}`)
	})

	mux.HandleFunc("/api/users/auth/reset-token", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&s.refreshCalls, 1)
		if s.barrier != nil {
			<-s.barrier
		}
		if s.refreshFails {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"success":false,"error":"unauthorized: session revoked"}`)
			return
		}
		s.mu.Lock()
		s.accessSerial++
		serial := s.accessSerial
		s.mu.Unlock()
		setSessionCookies(w, serial)
		fmt.Fprint(w, `{"success":true,"result":{"email":"a@b.c","role":"admin","permissions":["orders"]}}`)
	})

	mux.HandleFunc("/api/orders/", func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("accessToken")
		s.mu.Lock()
		current := fmt.Sprintf("access-%d", s.accessSerial)
		s.mu.Unlock()
		if err != nil || c.Value != current {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"success":false,"error":"unauthorized: invalid token"}`)
			return
		}
		fmt.Fprint(w, `{"success":true,"result":[{"order_id":"o1","status":"pending"}]}`)
	})

	return mux
}

func setSessionCookies(w http.ResponseWriter, serial int) {
	http.SetCookie(w, &http.Cookie{Name: "accessToken", Value: fmt.Sprintf("access-%d", serial), Path: "/"})
	http.SetCookie(w, &http.Cookie{Name: "refreshToken", Value: fmt.Sprintf("refresh-%d", serial), Path: "/"})
}

func newGateway(t *testing.T, srv *httptest.Server) *Gateway {
	t.Helper()
	g, err := New(srv.URL, 5*time.Second, 2*time.Second)
	require.NoError(t, err)
	return g
}

func login(t *testing.T, g *Gateway) {
	t.Helper()
	_, err := g.Login(context.Background(), "a@b.c", "secret123")
	require.NoError(t, err)
}

func TestDo_RefreshesOnceAndRetries(t *testing.T) {
	backend := &authServer{}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	g := newGateway(t, srv)
	login(t, g)

	// invalidate the issued access token server-side
	backend.mu.Lock()
	backend.accessSerial++
	backend.mu.Unlock()

	orders, err := g.Orders(context.Background())
	require.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, int32(1), atomic.LoadInt32(&backend.refreshCalls))
}

func TestDo_ConcurrentUnauthorized_SingleRefresh(t *testing.T) {
	backend := &authServer{barrier: make(chan struct{})}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	g := newGateway(t, srv)
	login(t, g)

	backend.mu.Lock()
	backend.accessSerial++
	backend.mu.Unlock()

	const n = 8
	errCh := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := g.Orders(context.Background())
			errCh <- err
		}()
	}

	// let every request hit the 401 and pile up on the in-flight refresh
	require.Eventually(t, func() bool {
		g.mu.Lock()
		defer g.mu.Unlock()
		return len(g.waiters) == n-1
	}, 2*time.Second, 10*time.Millisecond)
	close(backend.barrier)

	wg.Wait()
	close(errCh)
	for err := range errCh {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&backend.refreshCalls))
}

func TestDo_RefreshFailure_FailsAllWaiters(t *testing.T) {
	backend := &authServer{refreshFails: true, barrier: make(chan struct{})}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	g := newGateway(t, srv)
	login(t, g)

	backend.mu.Lock()
	backend.accessSerial++
	backend.mu.Unlock()

	const n = 4
	errCh := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := g.Orders(context.Background())
			errCh <- err
		}()
	}

	require.Eventually(t, func() bool {
		g.mu.Lock()
		defer g.mu.Unlock()
		return len(g.waiters) == n-1
	}, 2*time.Second, 10*time.Millisecond)
	close(backend.barrier)

	wg.Wait()
	close(errCh)
	for err := range errCh {
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&backend.refreshCalls))
}

func TestDo_SecondUnauthorizedAfterRetryIsTerminal(t *testing.T) {
	var refreshCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/auth/reset-token", func(w http.ResponseWriter, r *http.Request) {
		// refresh "succeeds" but the protected route keeps rejecting
		atomic.AddInt32(&refreshCalls, 1)
		setSessionCookies(w, 99)
		fmt.Fprint(w, `{"success":true,"result":{}}`)
	})
	mux.HandleFunc("/api/orders/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"success":false,"error":"unauthorized"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	g := newGateway(t, srv)
	_, err := g.Orders(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&refreshCalls))
}

func TestDo_LoginUnauthorized_NoRefresh(t *testing.T) {
	var refreshCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/auth/reset-token", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&refreshCalls, 1)
	})
	mux.HandleFunc("/api/users/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"success":false,"error":"unauthorized: invalid credentials"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	g := newGateway(t, srv)
	_, err := g.Login(context.Background(), "a@b.c", "wrong")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, int32(0), atomic.LoadInt32(&refreshCalls))
}

func TestDo_ResetTokenUnauthorized_ClearsSession(t *testing.T) {
	var refreshCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/auth/reset-token", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&refreshCalls, 1)
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"success":false,"error":"unauthorized: session revoked"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	g := newGateway(t, srv)
	jarBefore := g.httpClient.Jar

	err := g.Do(context.Background(), http.MethodGet, "/api/users/auth/reset-token", nil, nil)
	require.Error(t, err)

	// terminal: exactly one call, no refresh-of-refresh, fresh jar
	assert.Equal(t, int32(1), atomic.LoadInt32(&refreshCalls))
	assert.NotSame(t, jarBefore, g.httpClient.Jar)
}

func TestRefresh_Timeout(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/auth/reset-token", func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	mux.HandleFunc("/api/orders/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"success":false,"error":"unauthorized"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	g, err := New(srv.URL, 5*time.Second, 100*time.Millisecond)
	require.NoError(t, err)

	start := time.Now()
	_, err = g.Orders(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestLogin_StoresSessionCookies(t *testing.T) {
	backend := &authServer{}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	g := newGateway(t, srv)
	session, err := g.Login(context.Background(), "a@b.c", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "admin", session.Role)
	assert.Equal(t, []string{"orders"}, session.Permissions)

	orders, err := g.Orders(context.Background())
	require.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, int32(0), atomic.LoadInt32(&backend.refreshCalls))
}

func TestAPIError_Message(t *testing.T) {
	err := &APIError{StatusCode: 403, Message: "forbidden"}
	assert.Equal(t, "api error: 403: forbidden", err.Error())
	assert.Equal(t, "api error: 500", (&APIError{StatusCode: 500}).Error())
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, isUnauthorized(&APIError{StatusCode: 401}))
	assert.False(t, isUnauthorized(&APIError{StatusCode: 403}))
	assert.False(t, isUnauthorized(errors.New("boom")))
	assert.False(t, isUnauthorized(nil))
}
