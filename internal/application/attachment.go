package application

import (
	"context"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/linskybing/request-portal/internal/config"
	"github.com/linskybing/request-portal/pkg/storage"
)

type AttachmentService struct {
	Store storage.ObjectStore
}

func NewAttachmentService(store storage.ObjectStore) *AttachmentService {
	return &AttachmentService{Store: store}
}

// AttachmentPrefix is the key namespace owned by one student.
func AttachmentPrefix(studentID uint) string {
	return fmt.Sprintf("attachments/%d/", studentID)
}

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// AttachmentKey builds a unique object key that keeps a readable file name.
func AttachmentKey(studentID uint, filename string) string {
	name := unsafeNameChars.ReplaceAllString(path.Base(strings.ReplaceAll(filename, "\\", "/")), "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "file"
	}
	return AttachmentPrefix(studentID) + uuid.NewString() + "-" + name
}

// Upload stores one file for the student and returns its key, which is what
// the student puts in a file field.
func (s *AttachmentService) Upload(ctx context.Context, studentID uint, filename string, size int64, contentType string, r io.Reader) (string, error) {
	if s.Store == nil {
		return "", ErrStorageUnavailable
	}
	if size <= 0 {
		return "", ErrEmptyFile
	}
	if size > config.AttachmentMaxBytes {
		return "", ErrFileTooLarge
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := AttachmentKey(studentID, filename)
	if err := s.Store.PutObject(ctx, key, r, size, contentType); err != nil {
		return "", fmt.Errorf("store attachment: %w", err)
	}
	return key, nil
}
