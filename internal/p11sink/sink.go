// Package p11sink writes trace blocks to a log file, stdout, and stderr.
//
// A sink serializes writers with a single lock, so that every block passed to
// Emit appears contiguously in every destination, even when many goroutines
// emit concurrently.
package p11sink

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/peterbourgon/p11trc/internal/p11sys"
)

// Destinations says where trace lines go, and how they are decorated.
type Destinations struct {
	// FilePath is the trace file. It is opened lazily, in append mode, on the
	// first emit. Empty means no file.
	FilePath string

	DisableFile     bool // never write FilePath
	DisablePid      bool // omit the process ID prefix
	DisableTid      bool // omit the thread ID prefix
	Stdout          bool // mirror to stdout
	Stderr          bool // mirror to stderr
	CloseAfterWrite bool // close the file after every block, instead of flushing it
	Microseconds    bool // include microseconds in timestamps
}

// Config for a sink. Zero values are replaced by reasonable defaults.
type Config struct {
	// Locker serializes emits. Default is a new sync.Mutex.
	Locker sync.Locker

	// Stdout and Stderr are the standard stream destinations. Defaults are
	// os.Stdout and os.Stderr.
	Stdout io.Writer
	Stderr io.Writer

	// OpenFile opens the trace file for appending. Default uses os.OpenFile.
	OpenFile func(path string) (io.WriteCloser, error)

	// Pid and Tid produce the line prefixes. Defaults are from p11sys.
	Pid func() int
	Tid func() uint64

	// Now is used for timestamps. Default is time.Now.
	Now func() time.Time

	// Logger receives diagnostics about the sink itself, such as a trace file
	// that can't be opened. Default is a no-op logger.
	Logger *zap.Logger
}

func (cfg *Config) sanitize() {
	if cfg.Locker == nil {
		cfg.Locker = &sync.Mutex{}
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}
	if cfg.OpenFile == nil {
		cfg.OpenFile = openAppend
	}
	if cfg.Pid == nil {
		cfg.Pid = p11sys.Pid
	}
	if cfg.Tid == nil {
		cfg.Tid = p11sys.Tid
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
}

func openAppend(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
}

// Sink is the destination for trace blocks.
type Sink struct {
	cfg Config

	// Guarded by cfg.Locker.
	dst        Destinations
	configured bool
	file       io.WriteCloser
	filebuf    *bufio.Writer
	openFailed bool
}

// NewSink returns an unconfigured sink. Until Configure is called, every
// emitted block is written to stderr, so that problems encountered before the
// destinations are known are never lost.
func NewSink(cfg Config) *Sink {
	cfg.sanitize()
	return &Sink{cfg: cfg}
}

// Configure sets the destinations. It's meant to be called once.
func (s *Sink) Configure(dst Destinations) {
	s.cfg.Locker.Lock()
	defer s.cfg.Locker.Unlock()

	s.closeFile()
	s.dst = dst
	s.configured = true
	s.openFailed = false
}

// Configured reports whether Configure has been called.
func (s *Sink) Configured() bool {
	s.cfg.Locker.Lock()
	defer s.cfg.Locker.Unlock()
	return s.configured
}

// Emit writes the lines as one contiguous block to every active destination.
// Write errors are reported to the diagnostic logger and otherwise ignored.
func (s *Sink) Emit(lines ...string) {
	if len(lines) <= 0 {
		return
	}

	s.cfg.Locker.Lock()
	defer s.cfg.Locker.Unlock()

	prefix := s.prefix()

	if w := s.fileWriter(); w != nil {
		if err := writeLines(w, prefix, lines); err != nil {
			s.cfg.Logger.Warn("write trace file", zap.String("path", s.dst.FilePath), zap.Error(err))
		}
	}

	if s.configured && s.dst.Stdout {
		writeLines(s.cfg.Stdout, prefix, lines)
	}

	if !s.configured || s.dst.Stderr {
		writeLines(s.cfg.Stderr, prefix, lines)
	}

	switch {
	case s.file == nil:
		// nothing to do
	case s.dst.CloseAfterWrite:
		s.closeFile()
	default:
		if err := s.filebuf.Flush(); err != nil {
			s.cfg.Logger.Warn("flush trace file", zap.String("path", s.dst.FilePath), zap.Error(err))
		}
	}
}

// EmitFallback writes the lines as one block to stderr, unless Emit already
// sends every block there. It's for failures that must be seen even when the
// configured destinations are disabled or broken.
func (s *Sink) EmitFallback(lines ...string) {
	if len(lines) <= 0 {
		return
	}

	s.cfg.Locker.Lock()
	defer s.cfg.Locker.Unlock()

	if !s.configured || s.dst.Stderr {
		return
	}

	writeLines(s.cfg.Stderr, s.prefix(), lines)
}

// Separator returns a separator line stamped with the current time.
func (s *Sink) Separator() string {
	s.cfg.Locker.Lock()
	usecs := s.dst.Microseconds
	s.cfg.Locker.Unlock()
	return Separator(s.cfg.Now(), usecs)
}

// Timestamped returns msg prefixed by the current time.
func (s *Sink) Timestamped(msg string) string {
	s.cfg.Locker.Lock()
	usecs := s.dst.Microseconds
	s.cfg.Locker.Unlock()
	return Timestamp(s.cfg.Now(), usecs) + " - " + msg
}

// Close closes the trace file, if it's open.
func (s *Sink) Close() error {
	s.cfg.Locker.Lock()
	defer s.cfg.Locker.Unlock()
	return s.closeFile()
}

func (s *Sink) prefix() string {
	var p string
	if !s.configured || !s.dst.DisablePid {
		p += fmt.Sprintf("0x%08x : ", uint32(s.cfg.Pid()))
	}
	if !s.configured || !s.dst.DisableTid {
		p += fmt.Sprintf("0x%016x : ", s.cfg.Tid())
	}
	return p
}

func (s *Sink) fileWriter() io.Writer {
	if !s.configured || s.dst.DisableFile || s.dst.FilePath == "" {
		return nil
	}

	if s.file == nil {
		f, err := s.cfg.OpenFile(s.dst.FilePath)
		if err != nil {
			if !s.openFailed {
				s.cfg.Logger.Warn("open trace file", zap.String("path", s.dst.FilePath), zap.Error(err))
				s.openFailed = true
			}
			return nil
		}
		s.file, s.filebuf, s.openFailed = f, bufio.NewWriter(f), false
	}

	return s.filebuf
}

func (s *Sink) closeFile() error {
	if s.file == nil {
		return nil
	}

	var err error
	if ferr := s.filebuf.Flush(); ferr != nil {
		err = ferr
	}
	if cerr := s.file.Close(); cerr != nil && err == nil {
		err = cerr
	}

	s.file, s.filebuf = nil, nil
	return err
}

func writeLines(w io.Writer, prefix string, lines []string) error {
	for _, line := range lines {
		if _, err := io.WriteString(w, prefix+line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

//
//
//

// Timestamp formats t in local time as YYYY-MM-DD HH:MM:SS, with a fractional
// microseconds suffix if usecs is true.
func Timestamp(t time.Time, usecs bool) string {
	if usecs {
		return t.Local().Format("2006-01-02 15:04:05.000000")
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

// Separator formats the separator line that starts every trace block.
func Separator(t time.Time, usecs bool) string {
	return "****************************** " + Timestamp(t, usecs) + " ***"
}
