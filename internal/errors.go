package internal

import (
	"io/fs"
	"os"
)

// UnderlyingError strips the path or syscall wrapper a metadata primitive
// put around its failure, leaving the cause (e.g. syscall.ENOENT).
func UnderlyingError(err error) error {
	switch e := err.(type) {
	case *fs.PathError:
		return e.Err
	case *os.LinkError:
		return e.Err
	case *os.SyscallError:
		return e.Err
	}
	return err
}

// IntoPathErr reports a failed metadata query as *fs.PathError tagged with
// the query kind ("stat" or "lstat") and the path as the caller gave it,
// whatever wrapper the primitive used. A nil error stays nil.
func IntoPathErr(op, path string, err error) error {
	if err == nil {
		return nil
	}

	return &fs.PathError{Op: op, Path: path, Err: UnderlyingError(err)}
}
