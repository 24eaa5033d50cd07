// Package p11dl loads PKCS#11 provider modules.
//
// A Loader opens a module by path, and a Module resolves entry points by
// symbol name. The native loader opens shared libraries without cgo. Static
// modules serve in-process providers, which is mostly useful for tests.
package p11dl

import (
	"errors"

	"github.com/peterbourgon/p11trc/ck"
)

// GetFunctionListSymbol is the only entry point a provider must export.
const GetFunctionListSymbol = "C_GetFunctionList"

var (
	// ErrSymbolNotFound is returned by Lookup for a symbol the module doesn't
	// export.
	ErrSymbolNotFound = errors.New("symbol not found")

	// ErrUnsupportedPlatform is returned by the native loader on platforms
	// where shared libraries can't be opened.
	ErrUnsupportedPlatform = errors.New("native module loading is not supported on this platform")
)

// EntryPoint is a resolved C_GetFunctionList.
type EntryPoint func() (*ck.FunctionList, ck.RV)

// Loader opens modules.
type Loader interface {
	Open(path string) (Module, error)
}

// Module is an opened provider module.
type Module interface {
	Lookup(symbol string) (EntryPoint, error)
	Close() error
}

// LoaderFunc adapts a function to a Loader.
type LoaderFunc func(path string) (Module, error)

// Open implements Loader.
func (f LoaderFunc) Open(path string) (Module, error) { return f(path) }

//
//
//

// StaticModule is a Module backed by in-process entry points.
type StaticModule struct {
	Symbols map[string]EntryPoint
	OnClose func() error
}

var _ Module = (*StaticModule)(nil)

// NewStaticModule returns a module that exports C_GetFunctionList, returning
// the given function list with CKR_OK.
func NewStaticModule(fl *ck.FunctionList) *StaticModule {
	return &StaticModule{
		Symbols: map[string]EntryPoint{
			GetFunctionListSymbol: func() (*ck.FunctionList, ck.RV) { return fl, ck.CKR_OK },
		},
	}
}

// Lookup implements Module.
func (m *StaticModule) Lookup(symbol string) (EntryPoint, error) {
	ep, ok := m.Symbols[symbol]
	if !ok || ep == nil {
		return nil, ErrSymbolNotFound
	}
	return ep, nil
}

// Close implements Module.
func (m *StaticModule) Close() error {
	if m.OnClose != nil {
		return m.OnClose()
	}
	return nil
}

// StaticLoader is a Loader that serves modules from a map keyed by path.
type StaticLoader map[string]Module

// Open implements Loader.
func (l StaticLoader) Open(path string) (Module, error) {
	m, ok := l[path]
	if !ok {
		return nil, &OpenError{Path: path, Err: errors.New("no such module")}
	}
	return m, nil
}

// OpenError describes a module that couldn't be opened.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string { return e.Path + ": " + e.Err.Error() }

func (e *OpenError) Unwrap() error { return e.Err }
