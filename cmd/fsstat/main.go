// Command fsstat prints Node.js-style file metadata for paths and file URLs.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/pflag"

	"github.com/gwangyi/fsstat"
	"github.com/gwangyi/fsstat/internal/config"
	"github.com/gwangyi/fsstat/osfs"
)

// entry is the outcome of one query.
type entry struct {
	Arg   string
	Stats *fsstat.Stats
	Err   error
}

func setupLogging(w io.Writer, cfg config.LoggingConfig) {
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      cfg.SlogLevel(),
			TimeFormat: time.Kitchen,
			NoColor:    cfg.NoColor,
		}),
	))
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := config.Flags()
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: fsstat [flags] PATH|file://URL...")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}
	setupLogging(stderr, cfg.Logging)

	if flags.NArg() == 0 {
		slog.Error("No paths given.")
		flags.Usage()
		return 2
	}

	fsys := osfs.Host()
	if cfg.Root != "" {
		if fsys, err = osfs.New(cfg.Root); err != nil {
			slog.Error("Failed to open root.", "root", cfg.Root, "err", err)
			return 1
		}
	}

	var entries []entry
	if cfg.Query.Async {
		entries = queryAsync(ctx, fsys, cfg.Query, flags.Args())
	} else {
		entries = querySync(ctx, fsys, cfg.Query, flags.Args())
	}

	exitCode := 0
	for _, e := range entries {
		if e.Err != nil {
			slog.Error("Query failed.", "path", e.Arg, "err", e.Err)
			exitCode = 1
		}
	}

	if err := write(stdout, cfg.Output.Format, entries); err != nil {
		slog.Error("Failed to write output.", "err", err)
		return 1
	}
	return exitCode
}

// parseArg reports the file URL denoted by arg, if any.
func parseArg(arg string) (*url.URL, bool, error) {
	if !strings.HasPrefix(arg, "file:") {
		return nil, false, nil
	}
	u, err := url.Parse(arg)
	if err != nil {
		return nil, false, err
	}
	return u, true, nil
}

func querySync(ctx context.Context, fsys fsstat.FS, q config.QueryConfig, args []string) []entry {
	entries := make([]entry, len(args))
	for i, arg := range args {
		entries[i] = entry{Arg: arg}
		slog.Debug("Querying metadata.", "path", arg, "lstat", q.Lstat)

		u, isURL, err := parseArg(arg)
		if err != nil {
			entries[i].Err = err
			continue
		}
		if isURL {
			entries[i].Stats, entries[i].Err = statSync(ctx, fsys, u, q)
		} else {
			entries[i].Stats, entries[i].Err = statSync(ctx, fsys, arg, q)
		}
	}
	return entries
}

func statSync[P fsstat.PathLike](ctx context.Context, fsys fsstat.FS, path P, q config.QueryConfig) (*fsstat.Stats, error) {
	opts := fsstat.Options{BigInt: q.BigInt}
	if q.Lstat {
		return fsstat.LstatSync(ctx, fsys, path, opts)
	}
	return fsstat.StatSync(ctx, fsys, path, opts)
}

func queryAsync(ctx context.Context, fsys fsstat.FS, q config.QueryConfig, args []string) []entry {
	entries := make([]entry, len(args))

	var wg sync.WaitGroup
	for i, arg := range args {
		entries[i] = entry{Arg: arg}
		slog.Debug("Issuing query.", "path", arg, "lstat", q.Lstat)

		cb := func(err error, st *fsstat.Stats) {
			defer wg.Done()
			entries[i].Stats, entries[i].Err = st, err
		}

		u, isURL, err := parseArg(arg)
		if err != nil {
			entries[i].Err = err
			continue
		}

		wg.Add(1)
		if isURL {
			err = statAsync(ctx, fsys, u, q, cb)
		} else {
			err = statAsync(ctx, fsys, arg, q, cb)
		}
		if err != nil {
			// The callback is never invoked when the call fails synchronously.
			entries[i].Err = err
			wg.Done()
		}
	}
	wg.Wait()
	return entries
}

func statAsync[P fsstat.PathLike](ctx context.Context, fsys fsstat.FS, path P, q config.QueryConfig, cb fsstat.Callback) error {
	opts := fsstat.Options{BigInt: q.BigInt}
	if q.Lstat {
		return fsstat.LstatWithOptions(ctx, fsys, path, opts, cb)
	}
	return fsstat.StatWithOptions(ctx, fsys, path, opts, cb)
}
