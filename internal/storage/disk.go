package storage

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// UploadStore persists product image uploads.
type UploadStore interface {
	Save(file *multipart.FileHeader) (string, error)
	Remove(filename string) error
}

// DiskStore keeps uploads in a single directory with server-generated
// filenames, so client-supplied names never touch the filesystem.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{dir: dir}, nil
}

// Save writes the uploaded part to disk and returns the generated
// filename. Only the extension of the original name is kept.
func (s *DiskStore) Save(file *multipart.FileHeader) (string, error) {
	name := uuid.New().String() + strings.ToLower(filepath.Ext(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}

	return name, nil
}

func (s *DiskStore) Remove(filename string) error {
	return os.Remove(filepath.Join(s.dir, filepath.Base(filename)))
}
