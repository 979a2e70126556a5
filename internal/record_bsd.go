//go:build darwin || freebsd || netbsd

package internal

import "syscall"

// fillFromSys populates rec from the *syscall.Stat_t that os.Stat returns on
// Darwin, FreeBSD and NetBSD. These kernels report the birth time in
// Birthtimespec; a negative or zero value there means the file system does
// not track it.
func fillFromSys(rec *Record, sys any) {
	st, ok := sys.(*syscall.Stat_t)
	if !ok {
		return
	}

	rec.Dev = Some(uint64(st.Dev))
	rec.Ino = Some(uint64(st.Ino))
	rec.Mode = Some(uint32(st.Mode))
	rec.Nlink = Some(uint64(st.Nlink))
	rec.Uid = Some(st.Uid)
	rec.Gid = Some(st.Gid)
	rec.Rdev = Some(uint64(st.Rdev))
	rec.Blksize = Some(int64(st.Blksize))
	rec.Blocks = Some(int64(st.Blocks))
	rec.Atime = Some(timespec(int64(st.Atimespec.Sec), int64(st.Atimespec.Nsec)))
	rec.Mtime = Some(timespec(int64(st.Mtimespec.Sec), int64(st.Mtimespec.Nsec)))

	if sec, nsec := int64(st.Birthtimespec.Sec), int64(st.Birthtimespec.Nsec); sec > 0 || (sec == 0 && nsec > 0) {
		rec.Birthtime = Some(timespec(sec, nsec))
	}
}
