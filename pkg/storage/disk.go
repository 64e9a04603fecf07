// Package storage abstracts file storage behind the Disk interface with
// local-filesystem and S3 backends, selected by configuration.
package storage

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// Disk is a file storage backend. Paths are slash-separated keys relative
// to the disk root.
type Disk interface {
	// Put stores the contents of r at path, overwriting any existing file.
	Put(ctx context.Context, path string, r io.Reader) error

	// Get opens the file at path for reading. The caller must close it.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the file at path. Deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error

	// Exists reports whether a file is present at path.
	Exists(ctx context.Context, path string) (bool, error)

	// URL returns a publicly usable URL for the file at path.
	URL(path string) string
}

var (
	disksMu     sync.RWMutex
	disks       = map[string]Disk{}
	defaultDisk string
)

// RegisterDisk adds a named disk. The first registered disk becomes the default.
func RegisterDisk(name string, d Disk) {
	disksMu.Lock()
	defer disksMu.Unlock()

	disks[name] = d
	if defaultDisk == "" {
		defaultDisk = name
	}
}

// SetDefault selects the disk used by the package-level helpers.
func SetDefault(name string) error {
	disksMu.Lock()
	defer disksMu.Unlock()

	if _, ok := disks[name]; !ok {
		return fmt.Errorf("storage: unknown disk %q", name)
	}
	defaultDisk = name
	return nil
}

// UseDisk returns the disk registered under name.
func UseDisk(name string) (Disk, error) {
	disksMu.RLock()
	defer disksMu.RUnlock()

	d, ok := disks[name]
	if !ok {
		return nil, fmt.Errorf("storage: unknown disk %q", name)
	}
	return d, nil
}

// Default returns the default disk, or an error if none is registered.
func Default() (Disk, error) {
	disksMu.RLock()
	defer disksMu.RUnlock()

	if defaultDisk == "" {
		return nil, fmt.Errorf("storage: no disks registered")
	}
	return disks[defaultDisk], nil
}
