package p11trc

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// Logger returns the logger used for diagnostics about the proxy itself, as
// opposed to the trace it produces. The default discards everything.
func Logger() *zap.Logger {
	return logger.Load()
}

// SetLogger replaces the diagnostic logger. A nil logger restores the default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}
