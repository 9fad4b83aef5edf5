package storage

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"cookmemo/domain"
)

// AllowImage is the extension whitelist for photo uploads.
var AllowImage = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// Storage writes uploaded file bytes somewhere durable and hands back a
// stable key; the rest of the system only ever stores the public link.
type Storage interface {
	UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error)
	DeleteFile(objectKey string) error
	GetPublicLinkKey(objectKey string) string
	GetObjectKeyFromLink(link string) string
}

func validateExtension(fileName string, allowedTypes []string) error {
	if len(allowedTypes) == 0 {
		return nil
	}
	ext := strings.ToLower(filepath.Ext(fileName))
	for _, allowed := range allowedTypes {
		if ext == allowed {
			return nil
		}
	}
	return domain.ErrFileTypeNotAllowed
}
