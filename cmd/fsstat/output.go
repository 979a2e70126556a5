package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/gwangyi/fsstat"
)

// document is the serialized form of one entry.
type document struct {
	Path  string        `json:"path" yaml:"path"`
	Stats *fsstat.Stats `json:"stats,omitempty" yaml:"stats,omitempty"`
	Error string        `json:"error,omitempty" yaml:"error,omitempty"`
}

func toDocuments(entries []entry) []document {
	docs := make([]document, len(entries))
	for i, e := range entries {
		docs[i] = document{Path: e.Arg, Stats: e.Stats}
		if e.Err != nil {
			docs[i].Error = e.Err.Error()
		}
	}
	return docs
}

func write(w io.Writer, format string, entries []entry) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toDocuments(entries))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toDocuments(entries)); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		return writeText(w, entries)
	}
	return fmt.Errorf("unknown output format %q", format)
}

func writeText(w io.Writer, entries []entry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\n", e.Arg)
		if e.Err != nil {
			fmt.Fprintf(tw, "  error:\t%v\n", e.Err)
			continue
		}
		st := e.Stats
		fmt.Fprintf(tw, "  type:\t%s\n", kind(st))
		fmt.Fprintf(tw, "  size:\t%s (%d bytes)\n", humanize.IBytes(uint64(max(st.Size(), 0))), st.Size())
		fmt.Fprintf(tw, "  mode:\t%s\n", formatNull(st.Mode(), func(m uint32) string { return fmt.Sprintf("%#o", m) }))
		fmt.Fprintf(tw, "  dev:\t%s\n", formatNull(st.Dev(), formatUint))
		fmt.Fprintf(tw, "  ino:\t%s\n", formatNull(st.Ino(), formatUint))
		fmt.Fprintf(tw, "  nlink:\t%s\n", formatNull(st.Nlink(), formatUint))
		fmt.Fprintf(tw, "  uid:\t%s\n", formatNull(st.Uid(), func(v uint32) string { return fmt.Sprint(v) }))
		fmt.Fprintf(tw, "  gid:\t%s\n", formatNull(st.Gid(), func(v uint32) string { return fmt.Sprint(v) }))
		fmt.Fprintf(tw, "  blocks:\t%s\n", formatNull(st.Blocks(), humanize.Comma))
		fmt.Fprintf(tw, "  atime:\t%s\n", formatNull(st.Atime(), formatTime))
		fmt.Fprintf(tw, "  mtime:\t%s\n", formatNull(st.Mtime(), formatTime))
		fmt.Fprintf(tw, "  ctime:\t%s\n", formatNull(st.Ctime(), formatTime))
		fmt.Fprintf(tw, "  birthtime:\t%s\n", formatNull(st.Birthtime(), formatTime))
	}
	return tw.Flush()
}

func kind(st *fsstat.Stats) string {
	switch {
	case st.IsSymbolicLink():
		return "symbolic link"
	case st.IsDirectory():
		return "directory"
	case st.IsFile():
		return "regular file"
	}
	return "other"
}

func formatNull[T any](n fsstat.Null[T], f func(T) string) string {
	v, ok := n.Get()
	if !ok {
		return "-"
	}
	return f(v)
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func formatTime(t time.Time) string {
	return fmt.Sprintf("%s (%s)", t.Format(time.RFC3339), humanize.Time(t))
}
