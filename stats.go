package fsstat

import (
	"encoding/json"
	"time"

	"github.com/gwangyi/fsstat/internal"
)

// Stats is the normalized metadata of one file, shaped after Node.js fs.Stats.
//
// A Stats is immutable. Each nullable field is null exactly when the Record it
// was built from did not carry the value. The change time is never available
// and is always null.
type Stats struct {
	dev   Null[uint64]
	ino   Null[uint64]
	mode  Null[uint32]
	nlink Null[uint64]
	uid   Null[uint32]
	gid   Null[uint32]
	rdev  Null[uint64]

	size    int64
	blksize Null[int64]
	blocks  Null[int64]

	atimeMs     Null[int64]
	mtimeMs     Null[int64]
	birthtimeMs Null[int64]

	atime     Null[time.Time]
	mtime     Null[time.Time]
	birthtime Null[time.Time]

	isDirectory bool
	isFile      bool
	isSymlink   bool
}

// NewStats builds a Stats from rec. It never fails: a record with every
// optional field absent yields a valid, mostly-null Stats.
//
// Each millisecond field is derived from its timestamp, so the two are
// always null together.
func NewStats(rec Record) *Stats {
	return &Stats{
		dev:   rec.Dev,
		ino:   rec.Ino,
		mode:  rec.Mode,
		nlink: rec.Nlink,
		uid:   rec.Uid,
		gid:   rec.Gid,
		rdev:  rec.Rdev,

		size:    rec.Size,
		blksize: rec.Blksize,
		blocks:  rec.Blocks,

		atimeMs:     internal.MapNull(rec.Atime, time.Time.UnixMilli),
		mtimeMs:     internal.MapNull(rec.Mtime, time.Time.UnixMilli),
		birthtimeMs: internal.MapNull(rec.Birthtime, time.Time.UnixMilli),

		atime:     rec.Atime,
		mtime:     rec.Mtime,
		birthtime: rec.Birthtime,

		isDirectory: rec.IsDirectory,
		isFile:      rec.IsFile,
		isSymlink:   rec.IsSymlink,
	}
}

// Dev returns the ID of the device containing the file.
func (s *Stats) Dev() Null[uint64] { return s.dev }

// Ino returns the file serial number.
func (s *Stats) Ino() Null[uint64] { return s.ino }

// Mode returns the raw st_mode bits, file type included.
func (s *Stats) Mode() Null[uint32] { return s.mode }

// Nlink returns the number of hard links.
func (s *Stats) Nlink() Null[uint64] { return s.nlink }

// Uid returns the numeric user ID of the owner.
func (s *Stats) Uid() Null[uint32] { return s.uid }

// Gid returns the numeric group ID of the owner.
func (s *Stats) Gid() Null[uint32] { return s.gid }

// Rdev returns the device ID for special files.
func (s *Stats) Rdev() Null[uint64] { return s.rdev }

// Size returns the size in bytes. For symbolic links described by Lstat, this
// is the length of the link target.
func (s *Stats) Size() int64 { return s.size }

// Blksize returns the preferred block size for I/O.
func (s *Stats) Blksize() Null[int64] { return s.blksize }

// Blocks returns the number of 512-byte blocks allocated.
func (s *Stats) Blocks() Null[int64] { return s.blocks }

// AtimeMs returns the last access time in milliseconds since the epoch.
func (s *Stats) AtimeMs() Null[int64] { return s.atimeMs }

// MtimeMs returns the last modification time in milliseconds since the epoch.
func (s *Stats) MtimeMs() Null[int64] { return s.mtimeMs }

// CtimeMs is always null.
func (s *Stats) CtimeMs() Null[int64] { return internal.None[int64]() }

// BirthtimeMs returns the creation time in milliseconds since the epoch.
func (s *Stats) BirthtimeMs() Null[int64] { return s.birthtimeMs }

// Atime returns the last access time.
func (s *Stats) Atime() Null[time.Time] { return s.atime }

// Mtime returns the last modification time.
func (s *Stats) Mtime() Null[time.Time] { return s.mtime }

// Ctime is always null. The host primitive does not report a status change
// time and none is derived from the other timestamps.
func (s *Stats) Ctime() Null[time.Time] { return internal.None[time.Time]() }

// Birthtime returns the creation time.
func (s *Stats) Birthtime() Null[time.Time] { return s.birthtime }

// IsDirectory reports whether the file is a directory.
func (s *Stats) IsDirectory() bool { return s.isDirectory }

// IsFile reports whether the file is a regular file.
func (s *Stats) IsFile() bool { return s.isFile }

// IsSymbolicLink reports whether the file is a symbolic link. Only Stats
// obtained through Lstat can describe a link.
func (s *Stats) IsSymbolicLink() bool { return s.isSymlink }

// IsBlockDevice is not supported. It always returns a *NotImplementedError.
func (s *Stats) IsBlockDevice() (bool, error) {
	return false, notImplemented("stats.IsBlockDevice()")
}

// IsCharacterDevice is not supported. It always returns a *NotImplementedError.
func (s *Stats) IsCharacterDevice() (bool, error) {
	return false, notImplemented("stats.IsCharacterDevice()")
}

// IsFIFO is not supported. It always returns a *NotImplementedError.
func (s *Stats) IsFIFO() (bool, error) {
	return false, notImplemented("stats.IsFIFO()")
}

// IsSocket is not supported. It always returns a *NotImplementedError.
func (s *Stats) IsSocket() (bool, error) {
	return false, notImplemented("stats.IsSocket()")
}

// statsDoc is the serialized form of Stats, using the Node.js field names.
type statsDoc struct {
	Dev         Null[uint64]    `json:"dev" yaml:"dev"`
	Ino         Null[uint64]    `json:"ino" yaml:"ino"`
	Mode        Null[uint32]    `json:"mode" yaml:"mode"`
	Nlink       Null[uint64]    `json:"nlink" yaml:"nlink"`
	Uid         Null[uint32]    `json:"uid" yaml:"uid"`
	Gid         Null[uint32]    `json:"gid" yaml:"gid"`
	Rdev        Null[uint64]    `json:"rdev" yaml:"rdev"`
	Size        int64           `json:"size" yaml:"size"`
	Blksize     Null[int64]     `json:"blksize" yaml:"blksize"`
	Blocks      Null[int64]     `json:"blocks" yaml:"blocks"`
	AtimeMs     Null[int64]     `json:"atimeMs" yaml:"atimeMs"`
	MtimeMs     Null[int64]     `json:"mtimeMs" yaml:"mtimeMs"`
	CtimeMs     Null[int64]     `json:"ctimeMs" yaml:"ctimeMs"`
	BirthtimeMs Null[int64]     `json:"birthtimeMs" yaml:"birthtimeMs"`
	Atime       Null[time.Time] `json:"atime" yaml:"atime"`
	Mtime       Null[time.Time] `json:"mtime" yaml:"mtime"`
	Ctime       Null[time.Time] `json:"ctime" yaml:"ctime"`
	Birthtime   Null[time.Time] `json:"birthtime" yaml:"birthtime"`
}

func (s *Stats) doc() statsDoc {
	return statsDoc{
		Dev:         s.dev,
		Ino:         s.ino,
		Mode:        s.mode,
		Nlink:       s.nlink,
		Uid:         s.uid,
		Gid:         s.gid,
		Rdev:        s.rdev,
		Size:        s.size,
		Blksize:     s.blksize,
		Blocks:      s.blocks,
		AtimeMs:     s.atimeMs,
		MtimeMs:     s.mtimeMs,
		CtimeMs:     s.CtimeMs(),
		BirthtimeMs: s.birthtimeMs,
		Atime:       s.atime,
		Mtime:       s.mtime,
		Ctime:       s.Ctime(),
		Birthtime:   s.birthtime,
	}
}

// MarshalJSON encodes s with the Node.js field names. Absent fields are null.
func (s *Stats) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.doc())
}

// MarshalYAML implements yaml.Marshaler with the same layout as MarshalJSON.
func (s *Stats) MarshalYAML() (any, error) {
	return s.doc(), nil
}
