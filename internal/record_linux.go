//go:build linux

package internal

import (
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// fillFromSys attempts to populate rec from the Sys() source using the
// Linux-specific syscall.Stat_t or unix.Statx_t structures.
//
// A Stat_t always carries every field except the birth time. A Statx_t
// reports which fields the kernel filled through its Mask, and only those
// are copied.
func fillFromSys(rec *Record, sys any) {
	switch st := sys.(type) {
	case *syscall.Stat_t:
		fillFromStat(rec, st)
	case *unix.Statx_t:
		fillFromStatx(rec, st)
	}
}

func fillFromStat(rec *Record, st *syscall.Stat_t) {
	rec.Dev = Some(uint64(st.Dev))
	rec.Ino = Some(uint64(st.Ino))
	rec.Mode = Some(uint32(st.Mode))
	rec.Nlink = Some(uint64(st.Nlink))
	rec.Uid = Some(st.Uid)
	rec.Gid = Some(st.Gid)
	rec.Rdev = Some(uint64(st.Rdev))
	rec.Blksize = Some(int64(st.Blksize))
	rec.Blocks = Some(int64(st.Blocks))
	rec.Atime = Some(timespec(int64(st.Atim.Sec), int64(st.Atim.Nsec)))
	rec.Mtime = Some(timespec(int64(st.Mtim.Sec), int64(st.Mtim.Nsec)))
}

func fillFromStatx(rec *Record, stx *unix.Statx_t) {
	mask := stx.Mask
	has := func(bit uint32) bool { return mask&bit != 0 }

	// Device numbers and the block size are not covered by the mask.
	rec.Dev = Some(unix.Mkdev(stx.Dev_major, stx.Dev_minor))
	rec.Rdev = Some(unix.Mkdev(stx.Rdev_major, stx.Rdev_minor))
	rec.Blksize = Some(int64(stx.Blksize))

	if has(unix.STATX_INO) {
		rec.Ino = Some(stx.Ino)
	}
	if has(unix.STATX_TYPE) && has(unix.STATX_MODE) {
		rec.Mode = Some(uint32(stx.Mode))
	}
	if has(unix.STATX_NLINK) {
		rec.Nlink = Some(uint64(stx.Nlink))
	}
	if has(unix.STATX_UID) {
		rec.Uid = Some(stx.Uid)
	}
	if has(unix.STATX_GID) {
		rec.Gid = Some(stx.Gid)
	}
	if has(unix.STATX_SIZE) {
		rec.Size = int64(stx.Size)
	}
	if has(unix.STATX_BLOCKS) {
		rec.Blocks = Some(int64(stx.Blocks))
	}
	if has(unix.STATX_ATIME) {
		rec.Atime = Some(timespec(stx.Atime.Sec, int64(stx.Atime.Nsec)))
	}
	if has(unix.STATX_MTIME) {
		rec.Mtime = Some(timespec(stx.Mtime.Sec, int64(stx.Mtime.Nsec)))
	} else {
		rec.Mtime = None[time.Time]()
	}
	if has(unix.STATX_BTIME) {
		rec.Birthtime = Some(timespec(stx.Btime.Sec, int64(stx.Btime.Nsec)))
	}
}
