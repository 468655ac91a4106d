package adapthttp

import (
	"context"
	"net/http"
	"strings"
	"time"

	"tasktrack/internal/domain"
	"tasktrack/internal/token"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// requireAuth validates the bearer token and stores its claims in the
// request context. Missing, malformed, and expired tokens all end the
// request with 401.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || raw == "" {
			writeError(w, http.StatusUnauthorized, domain.ErrTokenInvalid)
			return
		}

		claims, err := s.tokens.Validate(raw)
		if err != nil {
			writeError(w, http.StatusUnauthorized, err)
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// subjectID extracts the authenticated user's id from the request context.
func subjectID(r *http.Request) (int64, error) {
	claims, ok := r.Context().Value(claimsContextKey).(*token.Claims)
	if !ok {
		return 0, domain.ErrTokenInvalid
	}
	return claims.UserID()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// loggingMiddleware logs one line per request.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
