package fsstat_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/gwangyi/fsstat"
)

func fullRecord() fsstat.Record {
	return fsstat.Record{
		Dev:         fsstat.Some[uint64](1),
		Ino:         fsstat.Some[uint64](2),
		Mode:        fsstat.Some[uint32](0o100644),
		Nlink:       fsstat.Some[uint64](3),
		Uid:         fsstat.Some[uint32](4),
		Gid:         fsstat.Some[uint32](5),
		Rdev:        fsstat.Some[uint64](6),
		Size:        7,
		Blksize:     fsstat.Some[int64](4096),
		Blocks:      fsstat.Some[int64](8),
		Atime:       fsstat.Some(time.UnixMilli(1_000_001)),
		Mtime:       fsstat.Some(time.UnixMilli(2_000_002)),
		Birthtime:   fsstat.Some(time.UnixMilli(3_000_003)),
		IsFile:      true,
		IsDirectory: false,
		IsSymlink:   false,
	}
}

func TestNewStats(t *testing.T) {
	st := fsstat.NewStats(fullRecord())

	assert.Equal(t, fsstat.Some[uint64](1), st.Dev())
	assert.Equal(t, fsstat.Some[uint64](2), st.Ino())
	assert.Equal(t, fsstat.Some[uint32](0o100644), st.Mode())
	assert.Equal(t, fsstat.Some[uint64](3), st.Nlink())
	assert.Equal(t, fsstat.Some[uint32](4), st.Uid())
	assert.Equal(t, fsstat.Some[uint32](5), st.Gid())
	assert.Equal(t, fsstat.Some[uint64](6), st.Rdev())
	assert.Equal(t, int64(7), st.Size())
	assert.Equal(t, fsstat.Some[int64](4096), st.Blksize())
	assert.Equal(t, fsstat.Some[int64](8), st.Blocks())

	assert.Equal(t, fsstat.Some[int64](1_000_001), st.AtimeMs())
	assert.Equal(t, fsstat.Some[int64](2_000_002), st.MtimeMs())
	assert.Equal(t, fsstat.Some[int64](3_000_003), st.BirthtimeMs())

	assert.True(t, st.IsFile())
	assert.False(t, st.IsDirectory())
	assert.False(t, st.IsSymbolicLink())
}

// TestNewStats_Empty verifies that a record with every optional field absent
// still produces a valid Stats.
func TestNewStats_Empty(t *testing.T) {
	st := fsstat.NewStats(fsstat.Record{IsDirectory: true})

	assert.False(t, st.Dev().Valid())
	assert.False(t, st.Ino().Valid())
	assert.False(t, st.Mode().Valid())
	assert.False(t, st.Nlink().Valid())
	assert.False(t, st.Uid().Valid())
	assert.False(t, st.Gid().Valid())
	assert.False(t, st.Rdev().Valid())
	assert.False(t, st.Blksize().Valid())
	assert.False(t, st.Blocks().Valid())
	assert.False(t, st.AtimeMs().Valid())
	assert.False(t, st.MtimeMs().Valid())
	assert.False(t, st.BirthtimeMs().Valid())
	assert.False(t, st.Atime().Valid())
	assert.False(t, st.Mtime().Valid())
	assert.False(t, st.Birthtime().Valid())
	assert.Equal(t, int64(0), st.Size())
	assert.True(t, st.IsDirectory())
}

func TestStats_ChangeTimeAlwaysNull(t *testing.T) {
	for name, rec := range map[string]fsstat.Record{
		"full":  fullRecord(),
		"empty": {},
	} {
		t.Run(name, func(t *testing.T) {
			st := fsstat.NewStats(rec)
			assert.False(t, st.Ctime().Valid())
			assert.False(t, st.CtimeMs().Valid())
		})
	}
}

// TestStats_MillisecondsFollowTimestamps checks that each *Ms field is the
// millisecond value of its timestamp, and both are null together.
func TestStats_MillisecondsFollowTimestamps(t *testing.T) {
	records := []fsstat.Record{
		fullRecord(),
		{},
		{Atime: fsstat.Some(time.Unix(0, 0))},
		{Mtime: fsstat.Some(time.Date(2020, 1, 2, 3, 4, 5, 678_900_000, time.UTC))},
	}

	for _, rec := range records {
		st := fsstat.NewStats(rec)
		pairs := []struct {
			ms fsstat.Null[int64]
			ts fsstat.Null[time.Time]
		}{
			{st.AtimeMs(), st.Atime()},
			{st.MtimeMs(), st.Mtime()},
			{st.BirthtimeMs(), st.Birthtime()},
		}
		for _, p := range pairs {
			ts, tsOK := p.ts.Get()
			ms, msOK := p.ms.Get()
			require.Equal(t, tsOK, msOK)
			if tsOK {
				assert.Equal(t, ts.UnixMilli(), ms)
			}
		}
	}
}

func TestStats_UnsupportedPredicates(t *testing.T) {
	st := fsstat.NewStats(fullRecord())

	for name, pred := range map[string]func() (bool, error){
		"IsBlockDevice":     st.IsBlockDevice,
		"IsCharacterDevice": st.IsCharacterDevice,
		"IsFIFO":            st.IsFIFO,
		"IsSocket":          st.IsSocket,
	} {
		t.Run(name, func(t *testing.T) {
			ok, err := pred()
			assert.False(t, ok)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrUnsupported))

			var nie *fsstat.NotImplementedError
			require.ErrorAs(t, err, &nie)
			assert.Equal(t, "stats."+name+"()", nie.Feature)
		})
	}
}

func TestStats_MarshalJSON(t *testing.T) {
	rec := fullRecord()
	rec.Birthtime = fsstat.None[time.Time]()
	rec.Uid = fsstat.None[uint32]()

	data, err := json.Marshal(fsstat.NewStats(rec))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))

	assert.EqualValues(t, 7, got["size"])
	assert.EqualValues(t, 2, got["ino"])
	assert.EqualValues(t, 1_000_001, got["atimeMs"])
	assert.Contains(t, got, "ctime")
	assert.Nil(t, got["ctime"])
	assert.Nil(t, got["ctimeMs"])
	assert.Nil(t, got["birthtime"])
	assert.Nil(t, got["birthtimeMs"])
	assert.Nil(t, got["uid"])
	assert.NotNil(t, got["mtime"])
}

func TestStats_MarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(fsstat.NewStats(fsstat.Record{Size: 3}))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(out, &got))
	assert.Equal(t, 3, got["size"])
	assert.Contains(t, got, "ctimeMs")
	assert.Nil(t, got["ctimeMs"])
	assert.Nil(t, got["dev"])
}
