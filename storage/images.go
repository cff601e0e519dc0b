// Package storage is the blob store for uploaded recipe images: files on
// local disk, referenced everywhere else by their public /uploads path.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const urlPrefix = "/uploads/"

var ErrInvalidPath = errors.New("invalid image path")

type ImageStore struct {
	dir string
}

func NewImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &ImageStore{dir: dir}, nil
}

// Dir returns the directory backing the store, for static file serving.
func (s *ImageStore) Dir() string {
	return s.dir
}

// Save writes the blob under a fresh uuid filename and returns its path.
func (s *ImageStore) Save(ext string, r io.Reader) (string, error) {
	filename := uuid.NewString() + ext

	out, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}

	return urlPrefix + filename, nil
}

func (s *ImageStore) Delete(path string) error {
	file, err := s.filePath(path)
	if err != nil {
		return err
	}
	return os.Remove(file)
}

func (s *ImageStore) Exists(path string) bool {
	file, err := s.filePath(path)
	if err != nil {
		return false
	}
	_, err = os.Stat(file)
	return err == nil
}

// filePath maps a /uploads path back to a file inside the store directory,
// rejecting anything that would escape it.
func (s *ImageStore) filePath(path string) (string, error) {
	name, ok := strings.CutPrefix(path, urlPrefix)
	if !ok || name == "" || name != filepath.Base(name) {
		return "", ErrInvalidPath
	}
	return filepath.Join(s.dir, name), nil
}
