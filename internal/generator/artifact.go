package generator

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// artifactBytesPerSecond sizes the silent body relative to the requested
	// track length.
	artifactBytesPerSecond = 1000
	// artifactTagSize is the fixed size of the trailing metadata block.
	artifactTagSize = 128
	// artifactPromptLimit truncates the prompt embedded in the metadata block.
	artifactPromptLimit = 50
)

// mp3FrameHeader is a minimal MP3 frame header so the artifact is shaped like
// a playable file. The artifact carries no audio signal.
var mp3FrameHeader = []byte{0xFF, 0xFB, 0x90, 0x00, 0x00, 0x00, 0x00, 0x00}

// ArtifactWriter produces placeholder track files in a flat downloads
// directory, one file per track id. Concurrent writers never collide because
// the track id is part of the filename.
type ArtifactWriter struct {
	dir string
}

// NewArtifactWriter creates a writer rooted at dir. The directory is created
// lazily on first write.
func NewArtifactWriter(dir string) *ArtifactWriter {
	return &ArtifactWriter{dir: dir}
}

// Write creates the placeholder file for a finished track and returns its
// public download URL. The file layout is a fixed MP3 frame header, a run of
// zero bytes proportional to the requested duration, and a 128-byte metadata
// tag embedding a truncated copy of the prompt.
func (w *ArtifactWriter) Write(trackID string, duration int, prompt string) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create downloads directory: %w", err)
	}

	filename := trackID + ".mp3"

	content := make([]byte, 0, len(mp3FrameHeader)+duration*artifactBytesPerSecond+artifactTagSize)
	content = append(content, mp3FrameHeader...)
	content = append(content, make([]byte, duration*artifactBytesPerSecond)...)

	truncated := prompt
	if len(truncated) > artifactPromptLimit {
		truncated = truncated[:artifactPromptLimit]
	}
	tag := make([]byte, artifactTagSize)
	copy(tag, "Generated track: "+truncated+"...")
	content = append(content, tag...)

	if err := os.WriteFile(filepath.Join(w.dir, filename), content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write artifact: %w", err)
	}

	return "/downloads/" + filename, nil
}

// Path resolves an artifact filename inside the downloads directory.
func (w *ArtifactWriter) Path(filename string) string {
	return filepath.Join(w.dir, filename)
}
