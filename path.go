package fsstat

import (
	"fmt"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
)

// PathLike is a path argument: a plain path string or a file URL.
type PathLike interface {
	string | *url.URL
}

// resolvePath returns the plain path for p.
func resolvePath[P PathLike](p P) (string, error) {
	if u, ok := any(p).(*url.URL); ok {
		return FromFileURL(u)
	}
	return any(p).(string), nil
}

// FromFileURL converts a file URL into a plain path for the host OS.
//
// The scheme must be "file". Outside Windows the host must be empty or
// "localhost"; on Windows a host denotes a UNC share. Encoded path separators
// are rejected because they cannot be represented in a plain path.
func FromFileURL(u *url.URL) (string, error) {
	if u == nil {
		return "", fmt.Errorf("%w: nil URL", ErrInvalidFileURL)
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("%w: %q must use the file scheme", ErrInvalidFileURL, u.String())
	}
	if u.Opaque != "" {
		return "", fmt.Errorf("%w: %q must be absolute", ErrInvalidFileURL, u.String())
	}

	escaped := strings.ToLower(u.EscapedPath())
	if strings.Contains(escaped, "%2f") || (runtime.GOOS == "windows" && strings.Contains(escaped, "%5c")) {
		return "", fmt.Errorf("%w: %q must not include encoded path separators", ErrInvalidFileURL, u.String())
	}

	if runtime.GOOS == "windows" {
		return windowsPath(u)
	}

	if u.Host != "" && u.Host != "localhost" {
		return "", fmt.Errorf("%w: host %q is not supported", ErrInvalidFileURL, u.Host)
	}
	if u.Path == "" {
		return "/", nil
	}
	return u.Path, nil
}

func windowsPath(u *url.URL) (string, error) {
	p := filepath.FromSlash(u.Path)
	if u.Host != "" && u.Host != "localhost" {
		return `\\` + u.Host + p, nil
	}
	// "/C:/dir" -> "C:\dir"
	if len(p) >= 3 && p[0] == '\\' && p[2] == ':' {
		return p[1:], nil
	}
	return "", fmt.Errorf("%w: %q must be absolute", ErrInvalidFileURL, u.String())
}
