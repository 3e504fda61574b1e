// Package audio renders the short feedback chimes the client plays after
// point-earning actions. Files are synthesized once and cached on disk,
// then served as static WAV content.
package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

const (
	sampleRate    = 44100
	chimeDuration = 0.3 // seconds
)

// Chime frequencies per event kind. The achievement tone is the C5 the
// original client synthesized; purchase and badge sit a third and a fifth
// above it.
var eventFrequencies = map[string]float64{
	"achievement": 523.25,
	"purchase":    659.25,
	"badge":       783.99,
}

// EffectsService synthesizes and caches feedback chimes
type EffectsService struct {
	audioDir string
}

// NewEffectsService creates a new effects service caching into audioDir
func NewEffectsService(audioDir string) *EffectsService {
	return &EffectsService{audioDir: audioDir}
}

// EffectFile returns the filename (not full path) of the chime for the
// event kind, rendering it on first use. Unknown kinds are an error.
func (s *EffectsService) EffectFile(eventKind string) (string, error) {
	freq, ok := eventFrequencies[eventKind]
	if !ok {
		return "", fmt.Errorf("unknown event kind: %s", eventKind)
	}

	filename := fmt.Sprintf("%s.wav", eventKind)
	path := filepath.Join(s.audioDir, filename)

	if _, err := os.Stat(path); err == nil {
		return filename, nil
	}

	if err := os.MkdirAll(s.audioDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create audio dir: %w", err)
	}

	data := renderChime(freq)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write chime: %w", err)
	}

	return filename, nil
}

// Dir returns the cache directory, for mounting as a static file root
func (s *EffectsService) Dir() string {
	return s.audioDir
}

// renderChime produces a mono 16-bit PCM WAV: a sine tone with an
// exponential decay envelope, mirroring the old Web Audio ramp.
func renderChime(freq float64) []byte {
	sampleCount := int(sampleRate * chimeDuration)
	samples := make([]int16, sampleCount)

	for i := range samples {
		t := float64(i) / sampleRate
		envelope := 0.3 * math.Pow(0.01/0.3, t/chimeDuration)
		samples[i] = int16(envelope * math.Sin(2*math.Pi*freq*t) * math.MaxInt16)
	}

	return encodeWAV(samples)
}

// encodeWAV wraps PCM samples in a RIFF/WAVE container
func encodeWAV(samples []int16) []byte {
	dataSize := len(samples) * 2
	var buf bytes.Buffer

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))           // chunk size
	binary.Write(&buf, binary.LittleEndian, uint16(1))            // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1))            // mono
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))   // sample rate
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*2)) // byte rate
	binary.Write(&buf, binary.LittleEndian, uint16(2))            // block align
	binary.Write(&buf, binary.LittleEndian, uint16(16))           // bits per sample

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataSize))
	binary.Write(&buf, binary.LittleEndian, samples)

	return buf.Bytes()
}
