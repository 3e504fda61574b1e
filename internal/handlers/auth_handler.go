package handlers

import (
	"context"
	"net/http"
	"time"

	"ecolearn/internal/security"
	"ecolearn/internal/service"
)

// AuthHandler handles login and logout requests
type AuthHandler struct {
	authService   *service.AuthService
	googleService *service.GoogleAuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, googleService *service.GoogleAuthService) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		googleService: googleService,
	}
}

// Login opens a session. The body may carry a display name; anything (or
// nothing) is accepted, matching the demo sign-in flow.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if r.ContentLength > 0 {
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
			return
		}
	}

	session, student, err := h.authService.Login(req.Name)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Login failed", "Failed to create session", err)
		return
	}

	http.SetCookie(w, security.SessionCookie(r, "session_id", session.ID, session.ExpiresAt))
	respondWithJSON(w, http.StatusOK, student)
}

// Logout deletes the current session
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("session_id"); err == nil {
		if err := h.authService.Logout(cookie.Value); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Logout failed", "Failed to delete session", err)
			return
		}
	}

	http.SetCookie(w, security.DeleteCookie(r, "session_id"))
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// StartGoogleAuth redirects to the Google consent screen
func (h *AuthHandler) StartGoogleAuth(w http.ResponseWriter, r *http.Request) {
	state := security.GenerateSessionID()

	authURL, err := h.googleService.AuthURL(state)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Google sign-in not configured", "", nil)
		return
	}

	h.setTempCookie(w, r, "oauth_state", state, 10*time.Minute)
	http.Redirect(w, r, authURL, http.StatusFound)
}

// GoogleCallback completes the Google sign-in flow
func (h *AuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	code := r.URL.Query().Get("code")
	if code == "" {
		respondWithError(w, http.StatusBadRequest, "Missing authorization code", "", nil)
		return
	}

	stateCookie, err := r.Cookie("oauth_state")
	if err != nil || stateCookie.Value == "" || stateCookie.Value != state {
		respondWithError(w, http.StatusBadRequest, "Invalid OAuth state", "", nil)
		return
	}
	http.SetCookie(w, security.DeleteCookie(r, "oauth_state"))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	user, err := h.googleService.Exchange(ctx, code)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Google sign-in failed", "OAuth exchange failed", err)
		return
	}

	session, _, err := h.authService.Login(user.Name)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Login failed", "Failed to create session", err)
		return
	}

	http.SetCookie(w, security.SessionCookie(r, "session_id", session.ID, session.ExpiresAt))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) setTempCookie(w http.ResponseWriter, r *http.Request, name, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   security.IsSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(ttl),
		MaxAge:   int(ttl.Seconds()),
	})
}
