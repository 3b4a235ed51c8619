package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/server/auth"
)

type ctxKey string

const expiredAccessClaimsKey ctxKey = "expiredAccessClaims"

// expiredAccessMiddleware authorizes the refresh endpoint. The client sends
// its (typically expired) access token as a bearer header; the middleware
// checks signature and subject while ignoring expiry, and attaches the
// decoded claims to the request context for the handler.
func (s *Server) expiredAccessMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			s.writeAPIError(r.Context(), w, http.StatusUnauthorized, "missing token")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			s.writeAPIError(r.Context(), w, http.StatusUnauthorized, "invalid authorization header format")
			return
		}

		claims, err := auth.VerifyExpiredToken(parts[1], auth.SubjectAccess, s.secret)
		if err != nil {
			s.writeAPIError(r.Context(), w, http.StatusUnauthorized, "unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), expiredAccessClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func expiredAccessClaims(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(expiredAccessClaimsKey).(*auth.Claims)
	return claims
}

// loggingMiddleware logs one line per request with method, path, status,
// and latency.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		s.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", time.Since(start).String(),
		)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
