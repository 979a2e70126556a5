package internal

import (
	"io/fs"
	"time"
)

// Record is the best-effort metadata a host reports for one file.
//
// Which fields are present depends on the platform and on the fs.FileInfo
// implementation that produced it. Size and the three type flags are always
// known; everything else may be absent.
type Record struct {
	Dev   Null[uint64]
	Ino   Null[uint64]
	Mode  Null[uint32]
	Nlink Null[uint64]
	Uid   Null[uint32]
	Gid   Null[uint32]
	Rdev  Null[uint64]

	Size    int64
	Blksize Null[int64]
	Blocks  Null[int64]

	Atime     Null[time.Time]
	Mtime     Null[time.Time]
	Birthtime Null[time.Time]

	IsDirectory bool
	IsFile      bool
	IsSymlink   bool
}

// NewRecord builds a Record from the provided fs.FileInfo.
//
// The size, type flags and modification time come from the fs.FileInfo
// methods. The remaining fields are extracted from the underlying Sys()
// value where the platform provides one (e.g., syscall.Stat_t on Linux);
// fields the platform cannot report are left absent. No change time is
// ever extracted.
//
// Parameters:
//
//	fi: The standard fs.FileInfo to convert. May be nil.
//
// Returns:
//
//	Record: The extracted record. If fi.Sys() is already a *Record, a copy of
//	        it is returned. A nil fi yields a zero Record.
func NewRecord(fi fs.FileInfo) Record {
	if fi == nil {
		return Record{}
	}
	if rec, ok := fi.Sys().(*Record); ok && rec != nil {
		return *rec
	}

	mode := fi.Mode()
	rec := Record{
		Size:        fi.Size(),
		IsDirectory: mode.IsDir(),
		IsFile:      mode.IsRegular(),
		IsSymlink:   mode&fs.ModeSymlink != 0,
	}
	if mtime := fi.ModTime(); !mtime.IsZero() {
		rec.Mtime = Some(mtime)
	}
	fillFromSys(&rec, fi.Sys())
	return rec
}

// timespec converts a seconds/nanoseconds pair into a time.Time.
func timespec(sec, nsec int64) time.Time {
	return time.Unix(sec, nsec)
}
