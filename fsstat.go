// Package fsstat provides Node.js-style file metadata queries (stat, lstat
// and their synchronous forms) on top of a context-aware filesystem.
//
// The host metadata primitive reports a best-effort record whose fields vary
// by platform. fsstat normalizes that record into a fixed-shape Stats value in
// which every field the platform could not report is explicitly null, and
// offers both a direct-return and a completion-callback calling convention.
package fsstat

//go:generate mockgen -destination mockfs/mockfs.go -package mockfs . FS,StatFS,LstatFS,FileInfo

import (
	"context"
	"io/fs"

	"github.com/gwangyi/fsstat/internal"
)

// Null holds a value that may be absent. The zero value is absent.
type Null[T any] = internal.Null[T]

// Some returns a present Null holding v.
func Some[T any](v T) Null[T] { return internal.Some(v) }

// None returns an absent Null.
func None[T any]() Null[T] { return internal.None[T]() }

// Record is the raw, platform-dependent metadata reported for one file.
type Record = internal.Record

// FileInfo is a type alias for fs.FileInfo, allowing it to be mocked by mockgen.
type FileInfo = fs.FileInfo

// NewRecord extracts a Record from fi, including any runtime.GOOS-specific
// details available from fi.Sys().
func NewRecord(fi fs.FileInfo) Record {
	return internal.NewRecord(fi)
}

// FS is the interface implemented by a file system that supports
// context-aware Open.
//
// It is the minimal native metadata primitive: Stat falls back to opening the
// file and calling Stat on it.
type FS interface {
	// Open opens the named file.
	//
	// When Open returns an error, it should be of type *fs.PathError
	// with the Op field set to "open", the Path field set to name,
	// and the Err field describing the problem.
	Open(ctx context.Context, name string) (fs.File, error)
}

// StatFS is the interface implemented by a file system that supports
// context-aware Stat.
type StatFS interface {
	FS
	// Stat returns a FileInfo describing the file, following symbolic links.
	// If there is an error, it should be of type *fs.PathError.
	Stat(ctx context.Context, name string) (fs.FileInfo, error)
}

// LstatFS is the interface implemented by a file system that supports
// context-aware Lstat.
type LstatFS interface {
	FS
	// Lstat returns a FileInfo describing the file. If the file is a
	// symbolic link, the returned FileInfo describes the link itself.
	// If there is an error, it should be of type *fs.PathError.
	Lstat(ctx context.Context, name string) (fs.FileInfo, error)
}

// queryMetadata asks fsys for the metadata of name exactly once and converts
// the result into a Record.
//
// If fsys does not implement LstatFS, a non-following query is served by
// Stat, matching io/fs.Lstat for file systems without symbolic links.
func queryMetadata(ctx context.Context, fsys FS, name string, follow bool) (Record, error) {
	op := "stat"
	if !follow {
		op = "lstat"
	}

	var (
		fi  fs.FileInfo
		err error
	)
	if lfs, ok := fsys.(LstatFS); ok && !follow {
		fi, err = lfs.Lstat(ctx, name)
	} else {
		fi, err = statFallback(ctx, fsys, name)
	}
	if err != nil {
		return Record{}, internal.IntoPathErr(op, name, err)
	}
	return internal.NewRecord(fi), nil
}

func statFallback(ctx context.Context, fsys FS, name string) (fs.FileInfo, error) {
	if sfs, ok := fsys.(StatFS); ok {
		return sfs.Stat(ctx, name)
	}

	f, err := fsys.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return f.Stat()
}

// FromFS converts a non-contextual fs.FS to a contextual FS.
// The returned FS ignores the context.
//
// Names must satisfy fs.ValidPath, so absolute OS paths and file URLs only
// work with file systems that accept them, such as osfs.Host.
func FromFS(fsys fs.FS) FS {
	return &contextualFS{fsys: fsys}
}

type contextualFS struct {
	fsys fs.FS
}

func (c *contextualFS) Open(ctx context.Context, name string) (fs.File, error) {
	return c.fsys.Open(name)
}

func (c *contextualFS) Stat(ctx context.Context, name string) (fs.FileInfo, error) {
	return fs.Stat(c.fsys, name)
}

func (c *contextualFS) Lstat(ctx context.Context, name string) (fs.FileInfo, error) {
	return fs.Lstat(c.fsys, name)
}

var (
	_ StatFS  = (*contextualFS)(nil)
	_ LstatFS = (*contextualFS)(nil)
)
