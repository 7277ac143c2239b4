package utils

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeFileHeader builds a real multipart file header the way Fiber would
// hand one to the service.
func makeFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["file"][0]
}

func TestSaveWritesFileAndReturnsURL(t *testing.T) {
	dir := t.TempDir()
	media := NewLocalMedia(dir, "http://localhost:3000")

	file := makeFileHeader(t, "intro.mp4", "fake video bytes")
	url, err := media.UploadVideo(file, "skillforge/videos/c1/Basics")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:3000/uploads/skillforge/videos/c1/Basics/"), url)
	assert.True(t, strings.HasSuffix(url, ".mp4"), url)

	// The stored file keeps the original content.
	stored := filepath.Join(dir, "skillforge", "videos", "c1", "Basics")
	entries, err := os.ReadDir(stored)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(stored, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, "fake video bytes", string(data))
}

func TestSaveKeepsExtensionAcrossKinds(t *testing.T) {
	media := NewLocalMedia(t.TempDir(), "http://localhost:3000")

	imgURL, err := media.UploadImage(makeFileHeader(t, "cover.png", "png"), "skillforge/courses/c1/thumbnail")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(imgURL, ".png"), imgURL)

	noteURL, err := media.UploadFile(makeFileHeader(t, "syllabus.pdf", "pdf"), "skillforge/courses/c1/notes")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(noteURL, ".pdf"), noteURL)
}

func TestVideoThumbnail(t *testing.T) {
	media := NewLocalMedia(t.TempDir(), "http://localhost:3000")

	assert.Equal(t,
		"http://localhost:3000/uploads/v/a.jpg",
		media.VideoThumbnail("http://localhost:3000/uploads/v/a.mp4"))

	// A URL without an extension just gains the suffix.
	assert.Equal(t, "http://x/file.jpg", media.VideoThumbnail("http://x/file"))
}
