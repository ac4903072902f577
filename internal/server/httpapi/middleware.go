package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/codebyfaisal/e-store-pos/internal/common"
	"github.com/codebyfaisal/e-store-pos/internal/server/models"
)

type contextKey string

const userContextKey contextKey = "user"

// userFrom returns the authenticated user stored by Authenticate. Handlers
// behind the middleware may assume it is present.
func userFrom(ctx context.Context) *models.User {
	u, _ := ctx.Value(userContextKey).(*models.User)
	return u
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}

// Authenticate resolves the access and refresh cookies into a user and puts
// it on the request context. No cookie, a bad or expired token, and a
// revoked session all answer 401 alike; only a token naming a deleted user
// answers 404 so the client knows retrying with a refresh will not help.
func (s *Server) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accessToken := cookieValue(r, common.AccessTokenCookieName)
		if accessToken == "" {
			respondError(w, http.StatusUnauthorized, "unauthorized: no token found")
			return
		}

		user, err := s.auth.Authenticate(r.Context(), accessToken, cookieValue(r, common.RefreshTokenCookieName))
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				respondError(w, http.StatusNotFound, "user not found")
				return
			}
			respondServiceError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userContextKey, user)))
	})
}

// AuthorizeRole gates a subtree to the listed roles. Runs after Authenticate.
func AuthorizeRole(allowed ...string) func(http.Handler) http.Handler {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := userFrom(r.Context())
			if user == nil {
				respondError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			if _, ok := allowedSet[user.Role]; !ok {
				respondError(w, http.StatusForbidden, "forbidden: you do not have permission")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CORS answers preflights and marks responses for the single configured
// browser origin. Credentialed cookies require an exact origin, never "*".
func (s *Server) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.cfg.CORSOrigin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Vary", "Origin")
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequestLogger logs one line per request with method, path, status and
// elapsed time.
func (s *Server) RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).String(),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
