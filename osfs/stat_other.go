//go:build !linux

package osfs

import (
	"io/fs"
	"os"
)

func stat(name string, follow bool) (fs.FileInfo, error) {
	if follow {
		return os.Stat(name)
	}
	return os.Lstat(name)
}
