package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"ecolearn/internal/audio"
)

// AudioHandler serves the synthesized feedback chimes
type AudioHandler struct {
	effects *audio.EffectsService
}

// NewAudioHandler creates a new audio handler
func NewAudioHandler(effects *audio.EffectsService) *AudioHandler {
	return &AudioHandler{effects: effects}
}

// ServeEffect renders (or reuses) the chime for an event kind and
// serves it as a WAV file
func (h *AudioHandler) ServeEffect(w http.ResponseWriter, r *http.Request) {
	event := strings.TrimSuffix(r.PathValue("event"), ".wav")

	filename, err := h.effects.EffectFile(event)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Unknown sound effect", "", nil)
		return
	}

	w.Header().Set("Content-Type", "audio/wav")
	http.ServeFile(w, r, filepath.Join(h.effects.Dir(), filename))
}
