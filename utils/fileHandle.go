package utils

import (
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// LocalMedia stores uploads on the local filesystem under Dir, mirroring the
// logical folder path, and serves them from BaseURL/uploads.
type LocalMedia struct {
	Dir     string
	BaseURL string
}

func NewLocalMedia(dir, baseURL string) *LocalMedia {
	return &LocalMedia{Dir: dir, BaseURL: baseURL}
}

func (m *LocalMedia) UploadVideo(file *multipart.FileHeader, folder string) (string, error) {
	return m.save(file, folder)
}

func (m *LocalMedia) UploadImage(file *multipart.FileHeader, folder string) (string, error) {
	return m.save(file, folder)
}

func (m *LocalMedia) UploadFile(file *multipart.FileHeader, folder string) (string, error) {
	return m.save(file, folder)
}

// VideoThumbnail derives the poster image URL for a stored video: same path
// with a .jpg extension.
func (m *LocalMedia) VideoThumbnail(videoURL string) string {
	ext := filepath.Ext(videoURL)
	return strings.TrimSuffix(videoURL, ext) + ".jpg"
}

// save copies the uploaded file into Dir/folder and returns its public URL.
func (m *LocalMedia) save(file *multipart.FileHeader, folder string) (string, error) {
	// Open the uploaded file
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Create destination directory if it doesn't exist
	destDir := filepath.Join(m.Dir, filepath.FromSlash(folder))
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	// Create a unique filename
	ext := filepath.Ext(file.Filename)
	newFilename := time.Now().Format("20060102150405.000") + ext
	filePath := filepath.Join(destDir, newFilename)

	// Create destination file
	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	// Copy the file content
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return m.BaseURL + "/uploads/" + path.Join(folder, newFilename), nil
}
