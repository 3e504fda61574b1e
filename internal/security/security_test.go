package security

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestCSRFTokenRoundTrip(t *testing.T) {
	gen := NewCSRFGenerator("test-secret")

	token, err := gen.GenerateToken("session-abc")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if !gen.ValidateToken("session-abc", token) {
		t.Error("valid token rejected")
	}
	if gen.ValidateToken("session-xyz", token) {
		t.Error("token accepted for wrong session")
	}
	if gen.ValidateToken("session-abc", token+"0") {
		t.Error("tampered token accepted")
	}
}

func TestCSRFTokenRequiresSession(t *testing.T) {
	gen := NewCSRFGenerator("test-secret")

	if _, err := gen.GenerateToken(""); err == nil {
		t.Error("expected error for empty session ID")
	}
	if gen.ValidateToken("", "whatever") {
		t.Error("empty session validated")
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d rejected before limit", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Error("request allowed past limit")
	}

	// A different client has its own bucket
	if !rl.Allow("10.0.0.2") {
		t.Error("independent client rejected")
	}
}

func TestIsSecureRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "http://ecolearn.example/login", nil)
	if IsSecureRequest(r) {
		t.Error("plain request reported secure")
	}

	r.Header.Set("X-Forwarded-Proto", "https")
	if !IsSecureRequest(r) {
		t.Error("forwarded https not detected")
	}
}

func TestSessionCookieFlags(t *testing.T) {
	r := httptest.NewRequest("GET", "http://ecolearn.example/login", nil)
	c := SessionCookie(r, "session_id", "abc", time.Now().Add(time.Hour))

	if !c.HttpOnly {
		t.Error("cookie must be HttpOnly")
	}
	if c.Secure {
		t.Error("Secure flag set for plain HTTP request")
	}

	del := DeleteCookie(r, "session_id")
	if del.MaxAge != -1 || del.Value != "" {
		t.Errorf("delete cookie not clearing: %+v", del)
	}
}
