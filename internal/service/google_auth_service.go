package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var ErrGoogleNotConfigured = errors.New("Google sign-in not configured")

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleUser is the profile returned after a completed sign-in
type GoogleUser struct {
	Subject string
	Email   string
	Name    string
}

// GoogleAuthService runs the OAuth code flow for optional Google
// sign-in. The flow only supplies a display name for the student
// profile; session issuance stays with AuthService.
type GoogleAuthService struct {
	config *oauth2.Config
}

// NewGoogleAuthService creates a Google auth service. Missing client
// credentials disable the flow.
func NewGoogleAuthService(clientID, clientSecret, baseURL string) *GoogleAuthService {
	if clientID == "" || clientSecret == "" {
		return &GoogleAuthService{}
	}
	return &GoogleAuthService{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  baseURL + "/api/auth/google/callback",
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// Enabled reports whether Google sign-in is configured
func (s *GoogleAuthService) Enabled() bool {
	return s.config != nil
}

// AuthURL returns the provider consent URL for the given state
func (s *GoogleAuthService) AuthURL(state string) (string, error) {
	if !s.Enabled() {
		return "", ErrGoogleNotConfigured
	}
	return s.config.AuthCodeURL(state, oauth2.AccessTypeOnline), nil
}

// Exchange trades the callback code for the signed-in user's profile
func (s *GoogleAuthService) Exchange(ctx context.Context, code string) (*GoogleUser, error) {
	if !s.Enabled() {
		return nil, ErrGoogleNotConfigured
	}

	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange OAuth code: %w", err)
	}

	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Google user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch Google user info: status %d", resp.StatusCode)
	}

	var payload struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse Google user info: %w", err)
	}

	return &GoogleUser{Subject: payload.ID, Email: payload.Email, Name: payload.Name}, nil
}
