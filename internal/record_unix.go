//go:build openbsd || dragonfly || solaris

package internal

import "syscall"

// fillFromSys populates rec from the *syscall.Stat_t that os.Stat returns on
// OpenBSD, DragonFly and Solaris. No birth time is read there.
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
	rec.Atime = Some(timespec(int64(st.Atim.Sec), int64(st.Atim.Nsec)))
	rec.Mtime = Some(timespec(int64(st.Mtim.Sec), int64(st.Mtim.Nsec)))
}
