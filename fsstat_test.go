package fsstat_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gwangyi/fsstat"
	"github.com/gwangyi/fsstat/mockfs"
)

func expectFileInfo(info *mockfs.MockFileInfo, mode fs.FileMode, size int64) {
	info.EXPECT().Name().Return("foo").AnyTimes()
	info.EXPECT().Size().Return(size).AnyTimes()
	info.EXPECT().Mode().Return(mode).AnyTimes()
	info.EXPECT().ModTime().Return(time.Unix(100, 0)).AnyTimes()
	info.EXPECT().IsDir().Return(mode.IsDir()).AnyTimes()
	info.EXPECT().Sys().Return(nil).AnyTimes()
}

func TestQuery_StatFS(t *testing.T) {
	ctx := context.Background()

	t.Run("StatFS supported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		info := mockfs.NewMockFileInfo(ctrl)
		expectFileInfo(info, 0o644, 10)

		mfs := mockfs.NewMockStatFS(ctrl)
		mfs.EXPECT().Stat(ctx, "foo").Return(info, nil).Times(1)

		st, err := fsstat.StatSync(ctx, mfs, "foo")
		require.NoError(t, err)
		assert.True(t, st.IsFile())
		assert.Equal(t, int64(10), st.Size())
		assert.Equal(t, fsstat.NewStats(fsstat.NewRecord(info)), st)
	})

	t.Run("Lstat falls back to Stat", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		info := mockfs.NewMockFileInfo(ctrl)
		expectFileInfo(info, fs.ModeDir|0o755, 0)

		mfs := mockfs.NewMockStatFS(ctrl)
		mfs.EXPECT().Stat(ctx, "foo").Return(info, nil).Times(1)

		st, err := fsstat.LstatSync(ctx, mfs, "foo")
		require.NoError(t, err)
		assert.True(t, st.IsDirectory())
	})

	t.Run("native error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mfs := mockfs.NewMockStatFS(ctrl)
		mfs.EXPECT().Stat(ctx, "foo").Return(nil, &fs.PathError{Op: "statx", Path: "/abs/foo", Err: fs.ErrPermission})

		_, err := fsstat.LstatSync(ctx, mfs, "foo")
		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrPermission)

		var pathErr *fs.PathError
		require.ErrorAs(t, err, &pathErr)
		assert.Equal(t, "lstat", pathErr.Op)
		assert.Equal(t, "foo", pathErr.Path)
	})
}

func TestQuery_LstatFS(t *testing.T) {
	ctx := context.Background()

	t.Run("Lstat supported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		info := mockfs.NewMockFileInfo(ctrl)
		expectFileInfo(info, fs.ModeSymlink|0o777, 3)

		mfs := mockfs.NewMockLstatFS(ctrl)
		mfs.EXPECT().Lstat(ctx, "foo").Return(info, nil).Times(1)

		st, err := await(t, func(cb fsstat.Callback) error { return fsstat.Lstat(ctx, mfs, "foo", cb) })
		require.NoError(t, err)
		assert.True(t, st.IsSymbolicLink())
	})

	t.Run("Stat falls back to Open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mfs := mockfs.NewMockLstatFS(ctrl)
		mfs.EXPECT().Open(ctx, "foo").Return(nil, fs.ErrNotExist).Times(1)

		st, err := await(t, func(cb fsstat.Callback) error { return fsstat.Stat(ctx, mfs, "foo", cb) })
		assert.Nil(t, st)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}

// dirFS adapts os.DirFS to the context-aware FS without Stat support, so
// queries go through Open.
type dirFS struct {
	fsys fs.FS
}

func (d dirFS) Open(ctx context.Context, name string) (fs.File, error) {
	return d.fsys.Open(name)
}

func TestQuery_OpenFallback(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file.txt"), []byte("abc"), 0o644))

	fsys := dirFS{fsys: os.DirFS(dir)}

	st, err := fsstat.StatSync(ctx, fsys, "file.txt")
	require.NoError(t, err)
	assert.True(t, st.IsFile())
	assert.Equal(t, int64(3), st.Size())

	_, err = fsstat.StatSync(ctx, fsys, "missing.txt")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFromFS(t *testing.T) {
	ctx := context.Background()
	mapfs := fstest.MapFS{
		"dir/file.txt": &fstest.MapFile{Data: []byte("hello"), Mode: 0o644, ModTime: time.Unix(10, 0)},
	}
	fsys := fsstat.FromFS(mapfs)

	st, err := fsstat.StatSync(ctx, fsys, "dir/file.txt")
	require.NoError(t, err)
	assert.True(t, st.IsFile())
	assert.Equal(t, int64(5), st.Size())
	assert.Equal(t, int64(10_000), st.MtimeMs().Or(0))
	assert.False(t, st.Ino().Valid(), "MapFS reports no inode")

	st, err = fsstat.LstatSync(ctx, fsys, "dir")
	require.NoError(t, err)
	assert.True(t, st.IsDirectory())

	_, err = fsstat.StatSync(ctx, fsys, "nope")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFromFS_Symlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Symbolic links behave differently on Windows; skipping.")
	}
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "target"), 0o755))
	require.NoError(t, os.Symlink("target", filepath.Join(dir, "link")))

	fsys := fsstat.FromFS(os.DirFS(dir))

	st, err := fsstat.LstatSync(ctx, fsys, "link")
	require.NoError(t, err)
	assert.True(t, st.IsSymbolicLink())

	st, err = fsstat.StatSync(ctx, fsys, "link")
	require.NoError(t, err)
	assert.True(t, st.IsDirectory())
}

func TestNotImplementedError(t *testing.T) {
	err := error(&fsstat.NotImplementedError{Feature: "stats.IsSocket()"})
	assert.Equal(t, "not implemented: stats.IsSocket()", err.Error())
	assert.True(t, errors.Is(err, errors.ErrUnsupported))
	assert.False(t, errors.Is(err, fs.ErrNotExist))
}

func TestQuery_RecordFromSys(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	birth := time.UnixMilli(1_500_000)
	rec := &fsstat.Record{
		Dev:       fsstat.Some[uint64](9),
		Ino:       fsstat.Some[uint64](1234),
		Mode:      fsstat.Some[uint32](0o100600),
		Nlink:     fsstat.Some[uint64](1),
		Uid:       fsstat.Some[uint32](501),
		Gid:       fsstat.None[uint32](),
		Size:      3,
		Atime:     fsstat.Some(birth.Add(time.Second)),
		Birthtime: fsstat.Some(birth),
		IsFile:    true,
	}

	info := mockfs.NewMockFileInfo(ctrl)
	info.EXPECT().Sys().Return(rec).AnyTimes()

	mfs := mockfs.NewMockStatFS(ctrl)
	mfs.EXPECT().Stat(ctx, "foo").Return(info, nil).Times(1)

	st, err := fsstat.StatSync(ctx, mfs, "foo")
	require.NoError(t, err)
	assert.Equal(t, fsstat.Some[uint64](1234), st.Ino())
	assert.Equal(t, fsstat.Some[uint32](0o100600), st.Mode())
	assert.Equal(t, fsstat.Some[uint32](501), st.Uid())
	assert.False(t, st.Gid().Valid())
	assert.Equal(t, int64(3), st.Size())
	assert.Equal(t, fsstat.Some(int64(1_500_000)), st.BirthtimeMs())
	assert.Equal(t, fsstat.Some(int64(1_501_000)), st.AtimeMs())
	assert.False(t, st.Mtime().Valid())
	assert.True(t, st.IsFile())
}
