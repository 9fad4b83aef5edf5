package storage

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// localDisk stores uploads under a content directory on disk; the app serves
// the directory statically. Used for development and tests.
type localDisk struct {
	baseDir string
	baseURL string
}

func NewLocalDisk(baseDir, baseURL string) (Storage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, err
	}
	return &localDisk{
		baseDir: baseDir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (l *localDisk) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error) {
	if err := validateExtension(file.Filename, allowedTypes); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Join(l.baseDir, folder), 0o755); err != nil {
		return "", err
	}

	objectKey := folder + "/" + fileName
	dst, err := os.Create(filepath.Join(l.baseDir, objectKey))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return objectKey, nil
}

func (l *localDisk) DeleteFile(objectKey string) error {
	return os.Remove(filepath.Join(l.baseDir, objectKey))
}

func (l *localDisk) GetPublicLinkKey(objectKey string) string {
	return l.baseURL + "/" + objectKey
}

func (l *localDisk) GetObjectKeyFromLink(link string) string {
	prefix := l.baseURL + "/"
	if !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}
