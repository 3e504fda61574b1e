package service

import (
	"errors"
	"fmt"
	"time"

	"ecolearn/internal/credentials"
	"ecolearn/internal/models"
	"ecolearn/internal/progression"
	"ecolearn/internal/repository"
	"ecolearn/internal/security"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// AuthService handles login sessions for the student profile. There is no
// password check: like the browser app it replaces, logging in simply
// opens the resident profile, optionally stamping a new display name.
type AuthService struct {
	sessionRepo     *repository.SessionRepository
	store           *progression.Store
	sessionDuration time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(sessionRepo *repository.SessionRepository, store *progression.Store, sessionDuration time.Duration) *AuthService {
	return &AuthService{
		sessionRepo:     sessionRepo,
		store:           store,
		sessionDuration: sessionDuration,
	}
}

// Login opens a session against the student profile. An empty name keeps
// the profile as-is except on sign-in with no prior name, where a
// generated eco handle fills in.
func (s *AuthService) Login(name string) (*models.Session, *models.Student, error) {
	student := s.store.Student()

	if name == "" && student.Name == "" {
		handle, err := credentials.GenerateStudentHandle()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to generate student handle: %w", err)
		}
		name = handle
	}

	if name != "" && name != student.Name {
		updated, err := s.store.UpdateProfile(models.ProfileUpdate{Name: &name})
		if err != nil {
			return nil, nil, err
		}
		student = updated
	}

	session := &models.Session{
		ID:        security.GenerateSessionID(),
		StudentID: student.ID,
		ExpiresAt: time.Now().Add(s.sessionDuration),
		CreatedAt: time.Now(),
	}
	if err := s.sessionRepo.CreateSession(session); err != nil {
		return nil, nil, err
	}

	return session, student, nil
}

// ValidateSession checks a session id and returns the student it belongs to
func (s *AuthService) ValidateSession(sessionID string) (*models.Student, error) {
	session, err := s.sessionRepo.GetSessionByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if session.IsExpired() {
		// Best effort cleanup; the expiry check already failed the caller
		if err := s.sessionRepo.DeleteSession(sessionID); err != nil {
			return nil, err
		}
		return nil, ErrSessionExpired
	}

	return s.store.Student(), nil
}

// Logout removes the session
func (s *AuthService) Logout(sessionID string) error {
	return s.sessionRepo.DeleteSession(sessionID)
}

// CleanupExpiredSessions removes stale sessions; intended for a periodic task
func (s *AuthService) CleanupExpiredSessions() (int64, error) {
	return s.sessionRepo.DeleteExpiredSessions()
}
