package p11trc

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/peterbourgon/p11trc/ck"
	"github.com/peterbourgon/p11trc/p11dl"
)

// Identification written to the banner at the top of every trace.
const (
	Name        = "PKCS11-LOGGER"
	Version     = "2.2.0"
	Description = "PKCS#11 logging proxy module"
)

// DefaultVersion is the function table version reported before the delegate
// is loaded.
var DefaultVersion = ck.Version{Major: 2, Minor: 20}

// load does the work of EnsureLoaded. Caller must hold p.mtx.
func (p *Proxy) load() *loadState {
	log := Logger().Named("loader")

	settings, err := p.cfg.Settings()
	if err != nil {
		// The sink isn't configured, so this goes to stderr.
		p.sink.Emit(err.Error())
		return p.fail(PhaseSettings, err, nil)
	}

	p.sink.Configure(settings.destinations())

	// Everything up to a failure is repeated on stderr if the load fails.
	var progress []string
	emit := func(lines ...string) {
		p.sink.Emit(lines...)
		progress = append(progress, lines...)
	}
	fail := func(phase Phase, cause error, module p11dl.Module) *loadState {
		p.sink.EmitFallback(progress...)
		return p.fail(phase, cause, module)
	}

	emit(p.banner()...)

	log.Debug("opening delegate", zap.String("path", settings.LibraryPath))
	emit(p.sink.Timestamped(fmt.Sprintf("Going to load PKCS#11 library \"%s\"", settings.LibraryPath)))

	module, err := p.cfg.Loader.Open(settings.LibraryPath)
	if err != nil {
		emit(p.sink.Timestamped(fmt.Sprintf("Unable to load PKCS#11 library. Error: %v", err)))
		return fail(PhaseOpen, err, nil)
	}
	emit(p.sink.Timestamped("Successfully loaded PKCS#11 library"))

	entry, err := module.Lookup(p11dl.GetFunctionListSymbol)
	if err != nil {
		emit(p.sink.Timestamped(fmt.Sprintf("Unable to find %s function in the original library", p11dl.GetFunctionListSymbol)))
		return fail(PhaseResolve, err, module)
	}

	emit(p.sink.Timestamped("Going to call C_GetFunctionList function from the original library"))
	table, rv := entry()
	emit(p.sink.Timestamped("Received response from C_GetFunctionList function"))
	if rv != ck.CKR_OK || table == nil {
		emit(fmt.Sprintf("C_GetFunctionList returned %d (%s)", rv, rv))
		return fail(PhaseEntry, &EntryError{RV: rv}, module)
	}

	// The table belongs to the module, so gaps are filled in a copy.
	delegate := new(ck.FunctionList)
	*delegate = *table
	if filled := ck.FillNotSupported(delegate); len(filled) > 0 {
		log.Debug("delegate is missing functions", zap.Strings("functions", filled))
	}

	p.table.Version = delegate.Version

	p.sink.Emit(
		p.sink.Separator(),
		"NOTE: Memory contents will be logged without the endianness conversion",
	)

	log.Debug("delegate loaded",
		zap.String("path", settings.LibraryPath),
		zap.Stringer("version", delegate.Version),
	)

	return &loadState{
		settings: settings,
		module:   module,
		delegate: delegate,
	}
}

func (p *Proxy) banner() []string {
	return []string{
		p.sink.Separator(),
		Name + " " + Version,
		Description,
		"Developed as a part of the Pkcs11Interop project",
		"Please visit www.pkcs11interop.net for more information",
		p.sink.Separator(),
	}
}

// fail records a load failure, closing the module if it was opened.
func (p *Proxy) fail(phase Phase, cause error, module p11dl.Module) *loadState {
	if module != nil {
		if err := module.Close(); err != nil {
			Logger().Warn("close delegate module", zap.Error(err))
		}
	}

	p.metrics.loadFailure(phase)
	Logger().Named("loader").Error("load failed", zap.String("phase", string(phase)), zap.Error(cause))

	return &loadState{err: &LoadError{Phase: phase, Cause: cause}}
}
