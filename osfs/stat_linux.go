//go:build linux

package osfs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"
)

// statxMask is the set of fields requested from statx(2).
const statxMask = unix.STATX_BASIC_STATS | unix.STATX_BTIME

// statx is replaced in tests.
var statx = unix.Statx

// stat queries name with statx(2). Kernels without statx, and sandboxes whose
// seccomp filter rejects it with EPERM, fall back to os.Stat and os.Lstat.
func stat(name string, follow bool) (fs.FileInfo, error) {
	op := "stat"
	flags := unix.AT_STATX_SYNC_AS_STAT
	if !follow {
		op = "lstat"
		flags |= unix.AT_SYMLINK_NOFOLLOW
	}

	var stx unix.Statx_t
	err := statx(unix.AT_FDCWD, name, flags, statxMask, &stx)
	if errors.Is(err, unix.ENOSYS) || errors.Is(err, unix.EPERM) {
		if follow {
			return os.Stat(name)
		}
		return os.Lstat(name)
	}
	if err != nil {
		return nil, &fs.PathError{Op: op, Path: name, Err: err}
	}
	return &statxInfo{name: filepath.Base(name), stx: stx}, nil
}

// statxInfo is the fs.FileInfo of a statx(2) result. Sys returns the
// *unix.Statx_t.
type statxInfo struct {
	name string
	stx  unix.Statx_t
}

func (fi *statxInfo) Name() string { return fi.name }
func (fi *statxInfo) Size() int64 { return int64(fi.stx.Size) }
func (fi *statxInfo) Mode() fs.FileMode { return fileMode(uint32(fi.stx.Mode)) }
func (fi *statxInfo) IsDir() bool { return fi.Mode().IsDir() }
func (fi *statxInfo) Sys() any { return &fi.stx }
func (fi *statxInfo) ModTime() time.Time {
	return time.Unix(fi.stx.Mtime.Sec, int64(fi.stx.Mtime.Nsec))
}

// fileMode converts st_mode bits into an fs.FileMode the same way the os
// package does.
func fileMode(m uint32) fs.FileMode {
	mode := fs.FileMode(m & 0o777)
	switch m & unix.S_IFMT {
	case unix.S_IFBLK:
		mode |= fs.ModeDevice
	case unix.S_IFCHR:
		mode |= fs.ModeDevice | fs.ModeCharDevice
	case unix.S_IFDIR:
		mode |= fs.ModeDir
	case unix.S_IFIFO:
		mode |= fs.ModeNamedPipe
	case unix.S_IFLNK:
		mode |= fs.ModeSymlink
	case unix.S_IFSOCK:
		mode |= fs.ModeSocket
	}
	if m&unix.S_ISGID != 0 {
		mode |= fs.ModeSetgid
	}
	if m&unix.S_ISUID != 0 {
		mode |= fs.ModeSetuid
	}
	if m&unix.S_ISVTX != 0 {
		mode |= fs.ModeSticky
	}
	return mode
}
