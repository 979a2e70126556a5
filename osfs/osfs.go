// Package osfs provides the native metadata primitive for fsstat, backed by
// the host operating system.
//
// Host resolves names exactly as the operating system does, so absolute
// paths, relative paths and paths produced from file URLs all work. New
// confines every lookup to a directory using Go's `os.Root`, which rejects
// ".." escapes and symbolic links pointing outside the root.
package osfs

import (
	"context"
	"io/fs"
	"os"

	"github.com/gwangyi/fsstat"
)

// hostFS queries the host file system directly.
type hostFS struct{}

// Host returns a file system that resolves names against the host operating
// system.
//
// On Linux, Stat and Lstat use statx(2) so that the birth time is reported
// and fields the kernel could not fill are marked absent. Elsewhere they use
// os.Stat and os.Lstat.
func Host() fsstat.FS {
	return hostFS{}
}

// Open opens the named file for reading.
func (hostFS) Open(ctx context.Context, name string) (fs.File, error) {
	return os.Open(name)
}

// Stat returns a FileInfo describing the named file, following symbolic links.
func (hostFS) Stat(ctx context.Context, name string) (fs.FileInfo, error) {
	return stat(name, true)
}

// Lstat returns a FileInfo describing the named file without following a
// final symbolic link.
func (hostFS) Lstat(ctx context.Context, name string) (fs.FileInfo, error) {
	return stat(name, false)
}

// rootFS is a wrapper around `*os.Root`. Every query is delegated to the
// underlying `os.Root` and therefore restricted to the root directory.
type rootFS struct {
	*os.Root
}

// New creates and returns a file system rooted at the directory `name`.
//
// Parameters:
//
//	name: The path to the directory that will serve as the root.
//
// Returns:
//
//	A new fsstat.FS confined to `name`, or an error if `name` cannot be
//	opened or is not a valid directory.
func New(name string) (fsstat.FS, error) {
	r, err := os.OpenRoot(name)
	if err != nil {
		return nil, err
	}
	return rootFS{Root: r}, nil
}

// Open opens the named file for reading within the root.
func (fsys rootFS) Open(ctx context.Context, name string) (fs.File, error) {
	return fsys.Root.Open(name)
}

// Stat returns a FileInfo describing the named file within the root,
// following symbolic links that stay inside it.
func (fsys rootFS) Stat(ctx context.Context, name string) (fs.FileInfo, error) {
	return fsys.Root.Stat(name)
}

// Lstat returns a FileInfo describing the named file within the root. If the
// file is a symbolic link, the FileInfo describes the link.
func (fsys rootFS) Lstat(ctx context.Context, name string) (fs.FileInfo, error) {
	return fsys.Root.Lstat(name)
}

var (
	_ fsstat.StatFS  = hostFS{}
	_ fsstat.LstatFS = hostFS{}
	_ fsstat.StatFS  = rootFS{}
	_ fsstat.LstatFS = rootFS{}
)
