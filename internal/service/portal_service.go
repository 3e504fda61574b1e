package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPortalDisabled  = errors.New("educator portal is not configured")
	ErrInvalidPassword = errors.New("invalid portal password")
	ErrInvalidToken    = errors.New("invalid portal token")
)

// PortalService gates the educator portal behind a shared password and
// issues short-lived JWTs for the portal endpoints.
type PortalService struct {
	passwordHash []byte
	jwtSecret    []byte
	tokenTTL     time.Duration
}

// NewPortalService creates a portal service. An empty password hash
// disables the portal entirely.
func NewPortalService(passwordHash, jwtSecret string, tokenTTL time.Duration) *PortalService {
	return &PortalService{
		passwordHash: []byte(passwordHash),
		jwtSecret:    []byte(jwtSecret),
		tokenTTL:     tokenTTL,
	}
}

// Enabled reports whether portal login is configured
func (s *PortalService) Enabled() bool {
	return len(s.passwordHash) > 0 && len(s.jwtSecret) > 0
}

// Login checks the portal password and returns a signed access token
func (s *PortalService) Login(password string) (string, error) {
	if !s.Enabled() {
		return "", ErrPortalDisabled
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidPassword
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "educator",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign portal token: %w", err)
	}
	return signed, nil
}

// VerifyToken validates a portal access token
func (s *PortalService) VerifyToken(tokenString string) error {
	if !s.Enabled() {
		return ErrPortalDisabled
	}
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}
	return nil
}
