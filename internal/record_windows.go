//go:build windows

package internal

import (
	"syscall"
	"time"
)

// fillFromSys attempts to populate rec from the Sys() source using the
// Windows-specific syscall.Win32FileAttributeData structure.
//
// Windows reports no inode, ownership or block information, so only the
// access and creation times are extracted.
func fillFromSys(rec *Record, sys any) {
	if st, ok := sys.(*syscall.Win32FileAttributeData); ok {
		rec.Atime = Some(time.Unix(0, st.LastAccessTime.Nanoseconds()))
		rec.Birthtime = Some(time.Unix(0, st.CreationTime.Nanoseconds()))
	}
}
