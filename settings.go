package p11trc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffval"

	"github.com/peterbourgon/p11trc/internal/p11sink"
)

// EnvVarPrefix is the prefix of every environment variable read by
// SettingsFromEnv.
const EnvVarPrefix = "PKCS11_LOGGER"

// Environment variables read by SettingsFromEnv.
const (
	EnvLibraryPath = EnvVarPrefix + "_LIBRARY_PATH"
	EnvLogFilePath = EnvVarPrefix + "_LOG_FILE_PATH"
	EnvFlags       = EnvVarPrefix + "_FLAGS"
)

// Flag is a bit in the Settings flags mask.
type Flag uint64

// Flags, with the same values as the PKCS11_LOGGER_FLAGS bits.
const (
	FlagDisableLogFile   Flag = 0x01 // don't write the log file
	FlagDisableProcessID Flag = 0x02 // omit the process ID from each line
	FlagDisableThreadID  Flag = 0x04 // omit the thread ID from each line
	FlagEnablePIN        Flag = 0x08 // write PINs to the trace
	FlagEnableStdout     Flag = 0x10 // mirror the trace to stdout
	FlagEnableStderr     Flag = 0x20 // mirror the trace to stderr
	FlagEnableFclose     Flag = 0x40 // close the log file after every block
	FlagEnableUsecs      Flag = 0x80 // add microseconds to timestamps
)

// Settings control how a proxy loads its delegate and where it writes the
// trace. They're read once, before the delegate is loaded, and never change.
type Settings struct {
	LibraryPath string
	LogFilePath string
	Flags       Flag
}

// Has reports whether f is set.
func (s Settings) Has(f Flag) bool { return s.Flags&f == f }

// Secret identifies a kind of sensitive argument.
type Secret int

// Kinds of secrets.
const (
	SecretPIN Secret = iota
)

// ShouldReveal reports whether secrets of the given kind may be written to
// the trace.
func (s Settings) ShouldReveal(kind Secret) bool {
	switch kind {
	case SecretPIN:
		return s.Has(FlagEnablePIN)
	default:
		return false
	}
}

func (s Settings) destinations() p11sink.Destinations {
	return p11sink.Destinations{
		FilePath:        s.LogFilePath,
		DisableFile:     s.Has(FlagDisableLogFile),
		DisablePid:      s.Has(FlagDisableProcessID),
		DisableTid:      s.Has(FlagDisableThreadID),
		Stdout:          s.Has(FlagEnableStdout),
		Stderr:          s.Has(FlagEnableStderr),
		CloseAfterWrite: s.Has(FlagEnableFclose),
		Microseconds:    s.Has(FlagEnableUsecs),
	}
}

//
//
//

var (
	// ErrNotDefined means a required setting is missing.
	ErrNotDefined = errors.New("not defined")

	// ErrQuoted means a path setting starts with a quote character.
	ErrQuoted = errors.New("enclosing quotes are not allowed")

	// ErrNotNumber means the flags setting isn't a decimal number.
	ErrNotNumber = errors.New("not a decimal number")
)

// SettingsError describes an invalid setting.
type SettingsError struct {
	Variable string
	Err      error
}

func (e *SettingsError) Error() string {
	switch {
	case errors.Is(e.Err, ErrNotDefined):
		return fmt.Sprintf("Environment variable %s is not defined", e.Variable)
	case errors.Is(e.Err, ErrQuoted):
		return fmt.Sprintf("Value of %s environment variable needs to be provided without enclosing quotes", e.Variable)
	case errors.Is(e.Err, ErrNotNumber):
		return fmt.Sprintf("Unable to read the value of %s environment variable as a number", e.Variable)
	default:
		return fmt.Sprintf("%s: %v", e.Variable, e.Err)
	}
}

func (e *SettingsError) Unwrap() error { return e.Err }

// ParseSettings validates the raw setting values. The library path is
// required. Neither path may start with a quote character, which usually
// means the quotes were copied into the environment by mistake. Flags must be
// empty, or a decimal number.
func ParseSettings(libraryPath, logFilePath, flags string) (Settings, error) {
	s := Settings{LibraryPath: libraryPath, LogFilePath: logFilePath}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	var mask uint64
	if flags != "" {
		n, err := strconv.ParseUint(flags, 10, 64)
		if err != nil {
			return Settings{}, &SettingsError{Variable: EnvFlags, Err: fmt.Errorf("%w: %v", ErrNotNumber, err)}
		}
		mask = n
	}

	s.Flags = Flag(mask)
	return s, nil
}

// Validate checks the paths: the library path is required, and neither path
// may start with a quote character.
func (s Settings) Validate() error {
	if s.LibraryPath == "" {
		return &SettingsError{Variable: EnvLibraryPath, Err: ErrNotDefined}
	}
	if isQuoted(s.LibraryPath) {
		return &SettingsError{Variable: EnvLibraryPath, Err: ErrQuoted}
	}
	if isQuoted(s.LogFilePath) {
		return &SettingsError{Variable: EnvLogFilePath, Err: ErrQuoted}
	}
	return nil
}

func isQuoted(s string) bool {
	return strings.HasPrefix(s, `"`) || strings.HasPrefix(s, `'`)
}

// SettingsFromEnv reads settings from the PKCS11_LOGGER_* environment
// variables.
func SettingsFromEnv() (Settings, error) {
	return parseSettings(nil, ff.WithEnvVarPrefix(EnvVarPrefix))
}

func parseSettings(args []string, options ...ff.Option) (Settings, error) {
	var libraryPath, logFilePath, flags string

	fs := ff.NewFlagSet("pkcs11-logger")
	fs.AddFlag(ff.FlagConfig{
		LongName: "library-path",
		Value:    ffval.NewValue(&libraryPath),
		Usage:    "path to the PKCS#11 library to trace",
	})
	fs.AddFlag(ff.FlagConfig{
		LongName: "log-file-path",
		Value:    ffval.NewValue(&logFilePath),
		Usage:    "trace file, opened in append mode",
	})
	fs.AddFlag(ff.FlagConfig{
		LongName: "flags",
		Value:    ffval.NewValue(&flags),
		Usage:    "decimal bitmask of trace flags",
	})

	if err := ff.Parse(fs, args, options...); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}

	return ParseSettings(libraryPath, logFilePath, flags)
}

// SettingsFunc produces settings for a proxy.
type SettingsFunc func() (Settings, error)

// StaticSettings returns a SettingsFunc that always returns s, or the error
// from validating it.
func StaticSettings(s Settings) SettingsFunc {
	return func() (Settings, error) {
		if err := s.Validate(); err != nil {
			return Settings{}, err
		}
		return s, nil
	}
}
