package audio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestEffectFileRendersAndCaches(t *testing.T) {
	dir := t.TempDir()
	svc := NewEffectsService(dir)

	filename, err := svc.EffectFile("achievement")
	if err != nil {
		t.Fatalf("EffectFile failed: %v", err)
	}
	if filename != "achievement.wav" {
		t.Errorf("filename = %q", filename)
	}

	path := filepath.Join(dir, filename)
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("chime not written: %v", err)
	}

	// Second call must reuse the cached file
	if _, err := svc.EffectFile("achievement"); err != nil {
		t.Fatalf("cached EffectFile failed: %v", err)
	}
	second, _ := os.ReadFile(path)
	if !bytes.Equal(first, second) {
		t.Error("cached file changed between calls")
	}
}

func TestEffectFileUnknownKind(t *testing.T) {
	svc := NewEffectsService(t.TempDir())
	if _, err := svc.EffectFile("explosion"); err == nil {
		t.Error("expected error for unknown event kind")
	}
}

func TestRenderChimeWAVHeader(t *testing.T) {
	data := renderChime(523.25)

	if !bytes.HasPrefix(data, []byte("RIFF")) {
		t.Fatal("missing RIFF header")
	}
	if !bytes.Equal(data[8:12], []byte("WAVE")) {
		t.Fatal("missing WAVE marker")
	}

	wantSamples := int(sampleRate * chimeDuration)
	wantSize := 44 + wantSamples*2
	if len(data) != wantSize {
		t.Errorf("wav size = %d, want %d", len(data), wantSize)
	}

	// The envelope must decay: the last sample should be much quieter
	// than the loudest one.
	loudest := int16(0)
	for i := 44; i+1 < len(data); i += 2 {
		s := int16(uint16(data[i]) | uint16(data[i+1])<<8)
		if s > loudest {
			loudest = s
		}
	}
	last := int16(uint16(data[len(data)-2]) | uint16(data[len(data)-1])<<8)
	if last > loudest/4 && last > 100 {
		t.Errorf("no decay: last sample %d vs loudest %d", last, loudest)
	}
}
