package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"ecolearn/internal/models"
	"ecolearn/internal/security"
	"ecolearn/internal/service"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const StudentContextKey ContextKey = "student"

// Middleware holds dependencies for middleware functions
type Middleware struct {
	authService   *service.AuthService
	portalService *service.PortalService
	csrf          *security.CSRFGenerator
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(authService *service.AuthService, portalService *service.PortalService, csrf *security.CSRFGenerator) *Middleware {
	return &Middleware{
		authService:   authService,
		portalService: portalService,
		csrf:          csrf,
	}
}

// RequireAuth is middleware that requires a valid session
func (m *Middleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("session_id")
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "Authentication required", "", nil)
			return
		}

		student, err := m.authService.ValidateSession(cookie.Value)
		if err != nil {
			// Clear invalid cookie
			http.SetCookie(w, security.DeleteCookie(r, "session_id"))
			respondWithError(w, http.StatusUnauthorized, "Session invalid or expired", "", nil)
			return
		}

		ctx := context.WithValue(r.Context(), StudentContextKey, student)
		next(w, r.WithContext(ctx))
	}
}

// CSRFProtect validates the X-CSRF-Token header against the caller's
// session. Wrap inside RequireAuth so the session cookie is present.
func (m *Middleware) CSRFProtect(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("session_id")
		if err != nil {
			respondWithError(w, http.StatusForbidden, "CSRF validation failed", "", nil)
			return
		}
		if !m.csrf.ValidateToken(cookie.Value, r.Header.Get("X-CSRF-Token")) {
			respondWithError(w, http.StatusForbidden, "CSRF validation failed", "", nil)
			return
		}
		next(w, r)
	}
}

// IssueCSRFToken returns a token bound to the caller's session
func (m *Middleware) IssueCSRFToken(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("session_id")
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", "", nil)
		return
	}

	token, err := m.csrf.GenerateToken(cookie.Value)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to issue token", "CSRF token generation failed", err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"token": token})
}

// RequirePortalAuth is middleware that requires a valid educator token
func (m *Middleware) RequirePortalAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			respondWithError(w, http.StatusUnauthorized, "Portal authentication required", "", nil)
			return
		}

		if err := m.portalService.VerifyToken(token); err != nil {
			respondWithError(w, http.StatusUnauthorized, "Portal token invalid or expired", "", nil)
			return
		}

		next(w, r)
	}
}

// RateLimit applies per-IP token-bucket limiting to a handler
func RateLimit(limiter *security.RateLimiter, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow(security.GetClientIP(r)) {
			respondWithError(w, http.StatusTooManyRequests, "Too many requests", "", nil)
			return
		}
		next(w, r)
	}
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// GetStudentFromContext retrieves the student from the request context
func GetStudentFromContext(ctx context.Context) *models.Student {
	student, ok := ctx.Value(StudentContextKey).(*models.Student)
	if !ok {
		return nil
	}
	return student
}
