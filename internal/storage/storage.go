package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Storage writes uploaded resumes under a local directory. Rows reference
// the returned relative path, never the absolute location on disk.
type Storage struct {
	dir string
}

func New(dir string) (*Storage, error) {
	if err := os.MkdirAll(filepath.Join(dir, "resumes"), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &Storage{dir: dir}, nil
}

// SaveResume stores an uploaded resume under a random name, keeping the
// original extension, and returns the relative path for the database row.
func (s *Storage) SaveResume(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + filepath.Ext(fh.Filename)
	rel := filepath.Join("resumes", name)

	dst, err := os.Create(filepath.Join(s.dir, rel))
	if err != nil {
		return "", fmt.Errorf("failed to create resume file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write resume file: %w", err)
	}
	return rel, nil
}

// Dir returns the root upload directory, for serving files statically.
func (s *Storage) Dir() string {
	return s.dir
}
