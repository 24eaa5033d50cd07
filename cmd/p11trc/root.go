package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffval"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/peterbourgon/p11trc"
	"github.com/peterbourgon/p11trc/internal/p11fake"
	"github.com/peterbourgon/p11trc/p11dl"
)

var (
	success = color.New(color.FgGreen, color.Bold)
	failure = color.New(color.FgRed, color.Bold)
	heading = color.New(color.FgCyan)
)

// fakeLibraryPath names the in-memory provider used by --fake.
const fakeLibraryPath = "p11fake"

type rootConfig struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	library     string
	traceFile   string
	traceFlags  uint64
	fake        bool
	fakePIN     string
	logLevel    string
	metricsFile string
	configFile  string
	recentCalls int

	logger   *zap.Logger
	registry *prometheus.Registry
	proxy    *p11trc.Proxy
}

func (cfg *rootConfig) register(fs *ff.FlagSet) {
	fs.AddFlag(ff.FlagConfig{
		ShortName:   'L',
		LongName:    "library",
		Value:       ffval.NewValue(&cfg.library),
		Usage:       "PKCS#11 module to trace (default from PKCS11_LOGGER_LIBRARY_PATH)",
		Placeholder: "PATH",
	})
	fs.AddFlag(ff.FlagConfig{
		ShortName:   't',
		LongName:    "trace-file",
		Value:       ffval.NewValue(&cfg.traceFile),
		Usage:       "append the trace to this file",
		Placeholder: "PATH",
	})
	fs.AddFlag(ff.FlagConfig{
		LongName:    "trace-flags",
		Value:       ffval.NewValue(&cfg.traceFlags),
		Usage:       "trace flags, as in PKCS11_LOGGER_FLAGS, e.g. 16 to mirror the trace to stdout",
		Placeholder: "N",
	})
	fs.AddFlag(ff.FlagConfig{
		LongName: "fake",
		Value:    ffval.NewValue(&cfg.fake),
		Usage:    "trace an in-memory test provider instead of a real module",
	})
	fs.AddFlag(ff.FlagConfig{
		LongName:    "fake-pin",
		Value:       ffval.NewValueDefault(&cfg.fakePIN, "1234"),
		Usage:       "user PIN of the in-memory test provider",
		Placeholder: "PIN",
	})
	fs.AddFlag(ff.FlagConfig{
		LongName:    "log",
		Value:       ffval.NewEnum(&cfg.logLevel, "none", "n", "info", "i", "debug", "d"),
		Usage:       "diagnostic log level: n/none, i/info, d/debug",
		Placeholder: "LEVEL",
	})
	fs.AddFlag(ff.FlagConfig{
		LongName:    "metrics",
		Value:       ffval.NewValue(&cfg.metricsFile),
		Usage:       "write call metrics to this file on exit, in Prometheus text format",
		Placeholder: "PATH",
	})
	fs.AddFlag(ff.FlagConfig{
		LongName:    "recent-calls",
		Value:       ffval.NewValueDefault(&cfg.recentCalls, 100),
		Usage:       "number of recent calls remembered per function",
		Placeholder: "N",
	})
	fs.AddFlag(ff.FlagConfig{
		LongName:    "config",
		Value:       ffval.NewValue(&cfg.configFile),
		Usage:       "TOML config file with flag values",
		Placeholder: "PATH",
	})
}

func (cfg *rootConfig) setup() error {
	var level zapcore.Level
	switch cfg.logLevel {
	case "n", "none":
		cfg.logger = zap.NewNop()
	case "i", "info":
		level = zapcore.InfoLevel
	case "d", "debug":
		level = zapcore.DebugLevel
	default:
		return fmt.Errorf("invalid log level %q", cfg.logLevel)
	}
	if cfg.logger == nil {
		cfg.logger = zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(cfg.stderr),
			level,
		))
	}
	p11trc.SetLogger(cfg.logger.Named("p11trc"))

	cfg.registry = prometheus.NewRegistry()

	settings, loader, err := cfg.settings()
	if err != nil {
		return err
	}

	cfg.proxy = p11trc.NewProxy(p11trc.Config{
		Settings:    settings,
		Loader:      loader,
		Stdout:      cfg.stdout,
		Stderr:      cfg.stderr,
		Registerer:  cfg.registry,
		RecentCalls: cfg.recentCalls,
	})

	return nil
}

// settings for the proxy. With neither --library nor --fake, the usual
// environment variables apply.
func (cfg *rootConfig) settings() (p11trc.SettingsFunc, p11dl.Loader, error) {
	if cfg.fake && cfg.library != "" {
		return nil, nil, fmt.Errorf("--fake and --library are mutually exclusive")
	}

	var (
		settings p11trc.SettingsFunc = p11trc.SettingsFromEnv
		loader   p11dl.Loader        = p11dl.Native{}
	)

	if cfg.fake || cfg.library != "" {
		s := p11trc.Settings{
			LibraryPath: cfg.library,
			LogFilePath: cfg.traceFile,
			Flags:       p11trc.Flag(cfg.traceFlags),
		}
		if cfg.traceFile == "" {
			s.Flags |= p11trc.FlagDisableLogFile
		}
		if cfg.fake {
			s.LibraryPath = fakeLibraryPath
			fake := p11fake.New(p11fake.Config{UserPIN: cfg.fakePIN})
			loader = p11dl.StaticLoader{fakeLibraryPath: p11dl.NewStaticModule(fake.FunctionList())}
		}
		if err := s.Validate(); err != nil {
			return nil, nil, err
		}
		settings = p11trc.StaticSettings(s)
	}

	return settings, loader, nil
}

// teardown closes the proxy, and writes the metrics file if one was asked for.
func (cfg *rootConfig) teardown() error {
	if cfg.proxy == nil {
		return nil
	}

	if err := cfg.proxy.Close(); err != nil {
		cfg.logger.Warn("close proxy", zap.Error(err))
	}

	if cfg.metricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.metricsFile, cfg.registry); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		cfg.logger.Info("wrote metrics", zap.String("path", cfg.metricsFile))
	}

	cfg.logger.Sync() // stderr often can't be synced
	return nil
}

// client returns a client for the proxy, with the module initialized. The
// returned func finalizes it.
func (cfg *rootConfig) client() (*client, func(), error) {
	if err := cfg.proxy.EnsureLoaded(); err != nil {
		return nil, nil, err
	}

	c := &client{fl: cfg.proxy.FunctionList()}
	if err := c.initialize(); err != nil {
		return nil, nil, err
	}

	return c, func() {
		if err := c.finalize(); err != nil {
			cfg.logger.Warn("finalize", zap.Error(err))
		}
	}, nil
}
