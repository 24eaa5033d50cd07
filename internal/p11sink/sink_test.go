package p11sink

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"
)

type memFile struct {
	mtx    sync.Mutex
	buf    bytes.Buffer
	opens  int
	closes int
}

func (f *memFile) open(path string) (io.WriteCloser, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	f.opens++
	return &memHandle{f}, nil
}

func (f *memFile) String() string {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return f.buf.String()
}

type memHandle struct{ f *memFile }

func (h *memHandle) Write(p []byte) (int, error) {
	h.f.mtx.Lock()
	defer h.f.mtx.Unlock()
	return h.f.buf.Write(p)
}

func (h *memHandle) Close() error {
	h.f.mtx.Lock()
	defer h.f.mtx.Unlock()
	h.f.closes++
	return nil
}

func newTestSink(file *memFile) (*Sink, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	s := NewSink(Config{
		Stdout:   &stdout,
		Stderr:   &stderr,
		OpenFile: file.open,
		Pid:      func() int { return 0x1234 },
		Tid:      func() uint64 { return 0xABCD },
	})
	return s, &stdout, &stderr
}

func TestUnconfiguredGoesToStderr(t *testing.T) {
	t.Parallel()

	file := &memFile{}
	s, stdout, stderr := newTestSink(file)

	s.Emit("hello")

	require.Equal(t, "0x00001234 : 0x000000000000abcd : hello\n", stderr.String())
	require.Empty(t, stdout.String())
	require.Equal(t, 0, file.opens)
	require.False(t, s.Configured())
}

func TestFileDestination(t *testing.T) {
	t.Parallel()

	file := &memFile{}
	s, stdout, stderr := newTestSink(file)
	s.Configure(Destinations{FilePath: "trace.log"})

	s.Emit("one", "two")
	s.Emit("three")

	want := strings.Join([]string{
		"0x00001234 : 0x000000000000abcd : one",
		"0x00001234 : 0x000000000000abcd : two",
		"0x00001234 : 0x000000000000abcd : three",
	}, "\n") + "\n"
	require.Equal(t, want, file.String())
	require.Equal(t, 1, file.opens)
	require.Empty(t, stdout.String())
	require.Empty(t, stderr.String())

	require.NoError(t, s.Close())
	require.Equal(t, 1, file.closes)
}

func TestPrefixes(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		dst  Destinations
		want string
	}{
		{"both", Destinations{Stdout: true}, "0x00001234 : 0x000000000000abcd : x\n"},
		{"no pid", Destinations{Stdout: true, DisablePid: true}, "0x000000000000abcd : x\n"},
		{"no tid", Destinations{Stdout: true, DisableTid: true}, "0x00001234 : x\n"},
		{"neither", Destinations{Stdout: true, DisablePid: true, DisableTid: true}, "x\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s, stdout, _ := newTestSink(&memFile{})
			s.Configure(tc.dst)
			s.Emit("x")
			require.Equal(t, tc.want, stdout.String())
		})
	}
}

func TestMirrors(t *testing.T) {
	t.Parallel()

	file := &memFile{}
	s, stdout, stderr := newTestSink(file)
	s.Configure(Destinations{
		FilePath:   "trace.log",
		Stdout:     true,
		Stderr:     true,
		DisablePid: true,
		DisableTid: true,
	})

	s.Emit("a")

	require.Equal(t, "a\n", file.String())
	require.Equal(t, "a\n", stdout.String())
	require.Equal(t, "a\n", stderr.String())
}

func TestEmitFallback(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name       string
		configured bool
		dst        Destinations
		want       string
	}{
		{"unconfigured", false, Destinations{}, ""},
		{"file only", true, Destinations{FilePath: "trace.log", DisablePid: true}, "0x000000000000abcd : failed\n"},
		{"file disabled", true, Destinations{DisableFile: true, DisablePid: true, DisableTid: true}, "failed\n"},
		{"stderr mirrored", true, Destinations{Stderr: true, DisablePid: true, DisableTid: true}, ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			file := &memFile{}
			s, stdout, stderr := newTestSink(file)
			if tc.configured {
				s.Configure(tc.dst)
			}
			s.EmitFallback("failed")
			require.Equal(t, tc.want, stderr.String())
			require.Empty(t, stdout.String())
			require.Empty(t, file.String())
		})
	}
}

func TestDisableFile(t *testing.T) {
	t.Parallel()

	file := &memFile{}
	s, _, _ := newTestSink(file)
	s.Configure(Destinations{FilePath: "trace.log", DisableFile: true})

	s.Emit("a")

	require.Equal(t, 0, file.opens)
	require.Empty(t, file.String())
}

func TestCloseAfterWrite(t *testing.T) {
	t.Parallel()

	file := &memFile{}
	s, _, _ := newTestSink(file)
	s.Configure(Destinations{FilePath: "trace.log", CloseAfterWrite: true, DisablePid: true, DisableTid: true})

	s.Emit("a")
	s.Emit("b")
	s.Emit("c")

	require.Equal(t, 3, file.opens)
	require.Equal(t, 3, file.closes)
	require.Equal(t, "a\nb\nc\n", file.String())
}

func TestOpenFailureReportedOnce(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	var stderr bytes.Buffer
	s := NewSink(Config{
		Stderr:   &stderr,
		OpenFile: func(string) (io.WriteCloser, error) { return nil, errors.New("permission denied") },
		Logger:   zap.New(core),
	})
	s.Configure(Destinations{FilePath: "/nope/trace.log"})

	s.Emit("a")
	s.Emit("b")

	require.Equal(t, 1, logs.FilterMessage("open trace file").Len())
	require.Empty(t, stderr.String())
}

func TestConcurrentBlocksAreContiguous(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "trace.log")
	s := NewSink(Config{})
	s.Configure(Destinations{FilePath: path, DisablePid: true, DisableTid: true})

	const (
		writers   = 8
		blocks    = 50
		blockSize = 10
	)

	var g errgroup.Group
	for w := 0; w < writers; w++ {
		w := w
		g.Go(func() error {
			for b := 0; b < blocks; b++ {
				lines := []string{"BEGIN"}
				for i := 0; i < blockSize; i++ {
					lines = append(lines, fmt.Sprintf("writer %d block %d line %d", w, b, i))
				}
				lines = append(lines, "END")
				s.Emit(lines...)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, writers*blocks*(blockSize+2))

	for i := 0; i < len(lines); i += blockSize + 2 {
		require.Equal(t, "BEGIN", lines[i])
		owner := strings.Join(strings.Fields(lines[i+1])[:4], " ")
		for j := 1; j <= blockSize; j++ {
			require.True(t, strings.HasPrefix(lines[i+j], owner+" "), "interleaved block at line %d", i+j)
		}
		require.Equal(t, "END", lines[i+blockSize+1])
	}
}

func TestSeparator(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 3, 9, 7, 5, 3, 123456000, time.Local)
	require.Equal(t, "****************************** 2024-03-09 07:05:03 ***", Separator(ts, false))
	require.Equal(t, "****************************** 2024-03-09 07:05:03.123456 ***", Separator(ts, true))
	require.Equal(t, "2024-03-09 07:05:03", Timestamp(ts, false))
}
