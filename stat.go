package fsstat

import (
	"context"
	"fmt"
)

// StatSync returns the Stats of the named file, following symbolic links.
//
// Options are validated before the path is resolved or any I/O is issued.
// A native failure is returned as an *fs.PathError with Op "stat".
//
// Parameters:
//
//	ctx:  Passed through to the file system.
//	fsys: The file system providing the metadata.
//	path: A plain path or a file URL.
//	opts: Optional query options.
//
// Returns:
//
//	*Stats: The normalized metadata.
//	error:  nil on success, or an error if the query fails.
func StatSync[P PathLike](ctx context.Context, fsys FS, path P, opts ...Options) (*Stats, error) {
	return statSync(ctx, fsys, path, true, opts)
}

// LstatSync returns the Stats of the named file. If the file is a symbolic
// link, the returned Stats describes the link itself.
//
// It behaves like StatSync otherwise; native failures carry Op "lstat".
func LstatSync[P PathLike](ctx context.Context, fsys FS, path P, opts ...Options) (*Stats, error) {
	return statSync(ctx, fsys, path, false, opts)
}

// Stat queries the named file asynchronously with default options, following
// symbolic links, and delivers the outcome to cb.
//
// cb is invoked exactly once, on a separate goroutine, unless Stat returns a
// non-nil error. Stat itself only fails for a nil callback or a path that
// cannot be resolved; in that case no I/O is issued.
func Stat[P PathLike](ctx context.Context, fsys FS, path P, cb Callback) error {
	return statAsync(ctx, fsys, path, true, Options{}, cb)
}

// StatWithOptions is like Stat with explicit options. A nil cb yields
// ErrCallbackRequired, and unsupported options yield a *NotImplementedError,
// both before any I/O.
func StatWithOptions[P PathLike](ctx context.Context, fsys FS, path P, opts Options, cb Callback) error {
	return statAsync(ctx, fsys, path, true, opts, cb)
}

// Lstat is the non-following counterpart of Stat.
func Lstat[P PathLike](ctx context.Context, fsys FS, path P, cb Callback) error {
	return statAsync(ctx, fsys, path, false, Options{}, cb)
}

// LstatWithOptions is the non-following counterpart of StatWithOptions.
func LstatWithOptions[P PathLike](ctx context.Context, fsys FS, path P, opts Options, cb Callback) error {
	return statAsync(ctx, fsys, path, false, opts, cb)
}

// StatArgs accepts the positional call shapes of Node.js fs.stat:
// (path, callback) and (path, options, callback).
//
// The first element of args decides the shape. A Callback (or a plain
// func(error, *Stats)) selects default options. Options, *Options or nil
// select the options form, which requires a callback as the next element;
// otherwise ErrCallbackRequired is returned. Any other value yields
// ErrInvalidArgument. All of this is decided before options are validated or
// any I/O is issued.
func StatArgs[P PathLike](ctx context.Context, fsys FS, path P, args ...any) error {
	opts, cb, err := dispatch(args)
	if err != nil {
		return err
	}
	return statAsync(ctx, fsys, path, true, opts, cb)
}

// LstatArgs is the non-following counterpart of StatArgs.
func LstatArgs[P PathLike](ctx context.Context, fsys FS, path P, args ...any) error {
	opts, cb, err := dispatch(args)
	if err != nil {
		return err
	}
	return statAsync(ctx, fsys, path, false, opts, cb)
}

func statSync[P PathLike](ctx context.Context, fsys FS, path P, follow bool, opts []Options) (*Stats, error) {
	if err := checkOptions(opts...); err != nil {
		return nil, err
	}
	name, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	rec, err := queryMetadata(ctx, fsys, name, follow)
	if err != nil {
		return nil, err
	}
	return NewStats(rec), nil
}

func statAsync[P PathLike](ctx context.Context, fsys FS, path P, follow bool, opts Options, cb Callback) error {
	if cb == nil {
		return ErrCallbackRequired
	}
	name, err := resolvePath(path)
	if err != nil {
		return err
	}
	if err := checkOptions(opts); err != nil {
		return err
	}

	go func() {
		rec, err := queryMetadata(ctx, fsys, name, follow)
		if err != nil {
			cb(err, nil)
			return
		}
		cb(nil, NewStats(rec))
	}()
	return nil
}

// dispatch resolves the positional arguments following the path.
func dispatch(args []any) (Options, Callback, error) {
	if len(args) == 0 {
		return Options{}, nil, ErrCallbackRequired
	}

	switch v := args[0].(type) {
	case Callback:
		return Options{}, v, nil
	case func(error, *Stats):
		return Options{}, v, nil
	case Options:
		cb, err := callbackArg(args[1:])
		return v, cb, err
	case *Options:
		var opts Options
		if v != nil {
			opts = *v
		}
		cb, err := callbackArg(args[1:])
		return opts, cb, err
	case nil:
		cb, err := callbackArg(args[1:])
		return Options{}, cb, err
	}
	return Options{}, nil, fmt.Errorf("%w: unexpected %T", ErrInvalidArgument, args[0])
}

func callbackArg(rest []any) (Callback, error) {
	if len(rest) > 0 {
		switch cb := rest[0].(type) {
		case Callback:
			if cb != nil {
				return cb, nil
			}
		case func(error, *Stats):
			if cb != nil {
				return cb, nil
			}
		}
	}
	return nil, ErrCallbackRequired
}
