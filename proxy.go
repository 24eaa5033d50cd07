package p11trc

import (
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/peterbourgon/p11trc/ck"
	"github.com/peterbourgon/p11trc/internal/p11render"
	"github.com/peterbourgon/p11trc/internal/p11sink"
	"github.com/peterbourgon/p11trc/p11dl"
)

// Config for a proxy. Zero values are replaced by reasonable defaults.
type Config struct {
	// Settings produces the proxy settings, once, on first use. Default is
	// SettingsFromEnv.
	Settings SettingsFunc

	// Loader opens the delegate module. Default is p11dl.Native.
	Loader p11dl.Loader

	// Stdout and Stderr are the standard stream destinations of the trace.
	// Defaults are os.Stdout and os.Stderr.
	Stdout io.Writer
	Stderr io.Writer

	// OpenFile opens the trace file for appending. Default creates the file if
	// necessary, with mode 0644.
	OpenFile func(path string) (io.WriteCloser, error)

	// Registerer receives the proxy's metrics. Default is no registration;
	// the metrics are still maintained.
	Registerer prometheus.Registerer

	// RecentCalls is the number of completed calls remembered per function.
	// Default is 100, minimum is 1, maximum is 10000.
	RecentCalls int

	// MaxTemplateDepth limits the expansion of nested attribute templates.
	// Default is 8.
	MaxTemplateDepth int

	// Now is used for timestamps and call durations. Default is time.Now.
	Now func() time.Time
}

const (
	recentCallsDefault = 100
	recentCallsMin     = 1
	recentCallsMax     = 10000
)

func (cfg *Config) sanitize() {
	if cfg.Settings == nil {
		cfg.Settings = SettingsFromEnv
	}
	if cfg.Loader == nil {
		cfg.Loader = p11dl.Native{}
	}
	switch {
	case cfg.RecentCalls == 0:
		cfg.RecentCalls = recentCallsDefault
	case cfg.RecentCalls < recentCallsMin:
		cfg.RecentCalls = recentCallsMin
	case cfg.RecentCalls > recentCallsMax:
		cfg.RecentCalls = recentCallsMax
	}
	if cfg.MaxTemplateDepth <= 0 {
		cfg.MaxTemplateDepth = p11render.DefaultMaxDepth
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
}

// ErrClosed is returned by EnsureLoaded after the proxy has been closed.
var ErrClosed = errors.New("proxy closed")

// Proxy presents the function table of a delegate PKCS#11 module, and traces
// every call made through it.
//
// The delegate is loaded on the first call through the table, or by an
// explicit call to EnsureLoaded. Until then, the table's version is 2.20.
type Proxy struct {
	cfg     Config
	sink    *p11sink.Sink
	table   ck.FunctionList
	metrics *metrics
	calls   *collector

	mtx   sync.Mutex
	state atomic.Pointer[loadState]
}

// loadState is the outcome of loading the delegate. It's published once, and
// never modified afterwards.
type loadState struct {
	settings Settings
	module   p11dl.Module
	delegate *ck.FunctionList
	err      error
}

// NewProxy returns a proxy that hasn't yet loaded its delegate.
func NewProxy(cfg Config) *Proxy {
	cfg.sanitize()

	p := &Proxy{
		cfg: cfg,
		sink: p11sink.NewSink(p11sink.Config{
			Stdout:   cfg.Stdout,
			Stderr:   cfg.Stderr,
			OpenFile: cfg.OpenFile,
			Now:      cfg.Now,
			Logger:   Logger().Named("sink"),
		}),
		metrics: newMetrics(cfg.Registerer),
		calls:   newCollector(cfg.RecentCalls),
	}
	p.table = p.functionList()

	return p
}

// FunctionList returns the proxy's function table. The pointer is stable for
// the lifetime of the proxy.
//
// The table's Version field is set to the delegate's version while loading,
// so it may only be read after EnsureLoaded or C_GetFunctionList has
// returned. Use the Version method to read it at any time.
func (p *Proxy) FunctionList() *ck.FunctionList {
	return &p.table
}

// Version returns the version of the function table: the delegate's version
// once it's loaded, and DefaultVersion before then or if loading failed.
func (p *Proxy) Version() ck.Version {
	if st := p.state.Load(); st != nil && st.delegate != nil {
		return st.delegate.Version
	}
	return DefaultVersion
}

// EnsureLoaded loads the delegate if that hasn't happened yet, and returns the
// outcome. Only the first call does any work: concurrent first callers wait
// for it, and every later call returns the same result without blocking.
// Failures are permanent.
func (p *Proxy) EnsureLoaded() error {
	return p.loaded().err
}

// Settings returns the settings in effect, if the delegate has been loaded.
func (p *Proxy) Settings() (Settings, bool) {
	st := p.state.Load()
	if st == nil || st.err != nil {
		return Settings{}, false
	}
	return st.settings, true
}

func (p *Proxy) loaded() *loadState {
	if st := p.state.Load(); st != nil {
		return st
	}

	p.mtx.Lock()
	defer p.mtx.Unlock()

	if st := p.state.Load(); st != nil {
		return st
	}

	st := p.load()
	p.state.Store(st)
	return st
}

// Close unloads the delegate and closes the trace file. Subsequent calls
// through the table fail with CKR_GENERAL_ERROR. Close must not be called
// while calls are in flight, and it doesn't call C_Finalize.
func (p *Proxy) Close() error {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	prev := p.state.Swap(&loadState{err: ErrClosed})
	if prev != nil && prev.err == ErrClosed {
		return nil
	}

	var err error
	if prev != nil && prev.module != nil {
		if cerr := prev.module.Close(); cerr != nil {
			err = cerr
			Logger().Warn("close delegate module", zap.Error(cerr))
		}
	}
	if serr := p.sink.Close(); serr != nil && err == nil {
		err = serr
	}
	return err
}
