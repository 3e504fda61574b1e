package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ecolearn/internal/audio"
)

func newAudioMux(t *testing.T) *http.ServeMux {
	t.Helper()
	audioHandler := NewAudioHandler(audio.NewEffectsService(t.TempDir()))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /audio/{event}", audioHandler.ServeEffect)
	return mux
}

// The chime is cached outside the working directory, so the handler must
// serve it from the effects service's own directory.
func TestServeEffectServesRenderedChime(t *testing.T) {
	mux := newAudioMux(t)

	req := httptest.NewRequest(http.MethodGet, "/audio/achievement.wav", nil)
	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (%s)", recorder.Code, http.StatusOK, recorder.Body.String())
	}
	if got := recorder.Header().Get("Content-Type"); got != "audio/wav" {
		t.Errorf("Content-Type = %q, want %q", got, "audio/wav")
	}
	if !strings.HasPrefix(recorder.Body.String(), "RIFF") {
		t.Errorf("body does not start with a RIFF header: %q", recorder.Body.String()[:min(12, recorder.Body.Len())])
	}
}

func TestServeEffectUnknownEvent(t *testing.T) {
	mux := newAudioMux(t)

	recorder, body := doJSON(t, mux, http.MethodGet, "/audio/explosion.wav", "")
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusNotFound)
	}
	if _, ok := body["error"]; !ok {
		t.Errorf("expected JSON error body, got %s", recorder.Body.String())
	}
}
