package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-absence-keeper/internal/logger"
)

// FileBlobStorage is the filesystem [BlobStorage]. Objects are regular files
// under root; writes go through a temporary file and a rename so a reader
// never observes a partial object.
type FileBlobStorage struct {
	root   string
	logger *logger.Logger
}

// NewFileBlobStorage creates root if needed and returns a storage rooted
// there.
func NewFileBlobStorage(root string, log *logger.Logger) (*FileBlobStorage, error) {
	if err := os.MkdirAll(root, 0o700); err != nil {
		log.Err(err).Str("func", "NewFileBlobStorage").Str("root", root).Msg("error creating blob directory")
		return nil, fmt.Errorf("error creating blob directory: %w", err)
	}

	return &FileBlobStorage{root: root, logger: log}, nil
}

// Put implements [BlobStorage].
func (s *FileBlobStorage) Put(ctx context.Context, blobPath string, data []byte) error {
	full, err := s.resolve(blobPath)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(full), 0o700); err != nil {
		return fmt.Errorf("error creating blob directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(full), ".blob-*")
	if err != nil {
		return fmt.Errorf("error creating temporary blob: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing blob: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error closing blob: %w", err)
	}

	if err = os.Rename(tmp.Name(), full); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "FileBlobStorage.Put").Msg("error moving blob into place")
		return fmt.Errorf("error storing blob: %w", err)
	}

	return nil
}

// Get implements [BlobStorage].
func (s *FileBlobStorage) Get(_ context.Context, blobPath string) ([]byte, error) {
	full, err := s.resolve(blobPath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(full)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error reading blob: %w", err)
	}

	return data, nil
}

// Delete implements [BlobStorage]. Deleting a missing object is not an error.
func (s *FileBlobStorage) Delete(_ context.Context, blobPath string) error {
	full, err := s.resolve(blobPath)
	if err != nil {
		return err
	}

	if err = os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error deleting blob: %w", err)
	}

	return nil
}

// resolve maps a slash-separated object path to a file under root, refusing
// anything that would escape it.
func (s *FileBlobStorage) resolve(blobPath string) (string, error) {
	clean := path.Clean("/" + blobPath)
	if blobPath == "" || clean == "/" || strings.Contains(blobPath, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidBlobPath, blobPath)
	}

	return filepath.Join(s.root, filepath.FromSlash(strings.TrimPrefix(clean, "/"))), nil
}
