package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalDisk stores files under a root directory on the local filesystem.
type LocalDisk struct {
	root    string
	baseURL string
}

// NewLocalDisk creates a local disk rooted at root. baseURL is prefixed to
// paths by URL, e.g. "/uploads".
func NewLocalDisk(root, baseURL string) *LocalDisk {
	return &LocalDisk{root: root, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (d *LocalDisk) fullPath(path string) string {
	return filepath.Join(d.root, filepath.FromSlash(path))
}

func (d *LocalDisk) Put(ctx context.Context, path string, r io.Reader) error {
	full := d.fullPath(path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}

	f, err := os.Create(full)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, r)
	return err
}

func (d *LocalDisk) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	return os.Open(d.fullPath(path))
}

func (d *LocalDisk) Delete(ctx context.Context, path string) error {
	err := os.Remove(d.fullPath(path))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (d *LocalDisk) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(d.fullPath(path))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (d *LocalDisk) URL(path string) string {
	return d.baseURL + "/" + strings.TrimPrefix(path, "/")
}
