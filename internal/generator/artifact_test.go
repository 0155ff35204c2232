package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtifactWriter_Write(t *testing.T) {
	dir := t.TempDir()
	writer := NewArtifactWriter(dir)

	url, err := writer.Write("track_abcd1234", 30, "relaxing piano melody for meditation")
	require.NoError(t, err)
	assert.Equal(t, "/downloads/track_abcd1234.mp3", url)

	content, err := os.ReadFile(filepath.Join(dir, "track_abcd1234.mp3"))
	require.NoError(t, err)

	// header + silent body proportional to duration + fixed metadata tag
	assert.Len(t, content, len(mp3FrameHeader)+30*artifactBytesPerSecond+artifactTagSize)
	assert.Equal(t, mp3FrameHeader, content[:len(mp3FrameHeader)])

	tag := content[len(content)-artifactTagSize:]
	assert.True(t, strings.HasPrefix(string(tag), "Generated track: relaxing piano melody"))
}

func TestArtifactWriter_TruncatesLongPrompts(t *testing.T) {
	dir := t.TempDir()
	writer := NewArtifactWriter(dir)

	longPrompt := strings.Repeat("a", 200)
	_, err := writer.Write("track_00001111", 5, longPrompt)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "track_00001111.mp3"))
	require.NoError(t, err)

	tag := string(content[len(content)-artifactTagSize:])
	assert.Contains(t, tag, "Generated track: "+strings.Repeat("a", artifactPromptLimit)+"...")
	assert.NotContains(t, tag, strings.Repeat("a", artifactPromptLimit+1))
}

func TestArtifactWriter_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "downloads")
	writer := NewArtifactWriter(dir)

	_, err := writer.Write("track_deadbeef", 10, "test")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "track_deadbeef.mp3"))
	assert.NoError(t, err)
}

func TestArtifactWriter_DirectoryCreationFailure(t *testing.T) {
	// A regular file where the directory should go makes MkdirAll fail.
	base := t.TempDir()
	blocked := filepath.Join(base, "blocked")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o644))

	writer := NewArtifactWriter(filepath.Join(blocked, "downloads"))

	_, err := writer.Write("track_ffff0000", 10, "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create downloads directory")
}

func TestArtifactWriter_Path(t *testing.T) {
	writer := NewArtifactWriter("downloads")

	assert.Equal(t, filepath.Join("downloads", "track_abcd1234.mp3"), writer.Path("track_abcd1234.mp3"))
}
