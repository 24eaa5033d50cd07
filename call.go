package p11trc

import (
	"fmt"
	"runtime/debug"
	"time"
	"unsafe"

	"github.com/peterbourgon/p11trc/ck"
	"github.com/peterbourgon/p11trc/internal/p11render"
)

// Record is the text of one trace block, either the entry or the exit of a
// single call.
type Record struct {
	Lines []string
}

func (r *Record) printf(format string, args ...any) {
	r.Lines = append(r.Lines, fmt.Sprintf(format, args...))
}

func (r *Record) reset() {
	r.Lines = r.Lines[:0]
}

// call traces a single invocation of a function in the table. Trampolines
// describe the inputs, forward the call, describe the outputs, and finish.
type call struct {
	p        *Proxy
	name     string
	settings Settings
	rec      Record
	start    time.Time
	took     time.Duration
}

// begin starts tracing the named function. It returns a nil call and a nil
// delegate if the delegate isn't available, in which case the trampoline
// should return CKR_GENERAL_ERROR.
func (p *Proxy) begin(name string) (*call, *ck.FunctionList) {
	st := p.loaded()
	if st.err != nil {
		return nil, nil
	}

	c := &call{
		p:        p,
		name:     name,
		settings: st.settings,
	}
	c.rec.Lines = append(c.rec.Lines, p.sink.Separator(), "Calling "+name, "Input")

	return c, st.delegate
}

// forward writes the entry block, invokes fn, and starts the exit block. The
// sink lock is never held while fn runs.
func (c *call) forward(fn func() ck.RV) ck.RV {
	c.p.sink.Emit(c.rec.Lines...)
	c.rec.reset()

	c.start = c.p.cfg.Now()
	rv := fn()
	c.took = c.p.cfg.Now().Sub(c.start)

	c.rec.Lines = append(c.rec.Lines, c.p.sink.Separator(), "Returned from "+c.name)
	return rv
}

// finish writes the exit block, records the call, and returns rv.
func (c *call) finish(rv ck.RV) ck.RV {
	c.printf("Returning %d (%s)", rv, rv)
	c.p.sink.Emit(c.rec.Lines...)
	c.p.observe(c.name, rv, c.start, c.took)
	return rv
}

//
//
//

func (c *call) printf(format string, args ...any) {
	c.rec.printf(format, args...)
}

func (c *call) output() {
	c.rec.Lines = append(c.rec.Lines, "Output")
}

// value renders one value via fn. A fault or panic while rendering produces
// the unavailable marker instead of crashing the caller.
func (c *call) value(name string, fn func() (string, bool)) {
	if s, ok := safely(fn); ok {
		c.printf("%s: %s", name, s)
	} else {
		c.printf("%s: %s", name, p11render.Unavailable)
	}
}

func safely(fn func() (string, bool)) (s string, ok bool) {
	defer debug.SetPanicOnFault(debug.SetPanicOnFault(true))
	defer func() {
		if r := recover(); r != nil {
			s, ok = "", false
		}
	}()
	return fn()
}

// bytes renders n bytes at p as hex. Nothing is written for a nil p.
func (c *call) bytes(name string, p *byte, n ck.ULong) {
	if p == nil {
		return
	}
	c.value(name, func() (string, bool) {
		hex, ok := p11render.Bytes(unsafe.Pointer(p), n)
		return "HEX(" + hex + ")", ok
	})
}

// text renders n bytes at p as a string. Nothing is written for a nil p.
func (c *call) text(name string, p *byte, n ck.ULong) {
	if p == nil {
		return
	}
	c.value(name, func() (string, bool) {
		return p11render.FixedString(unsafe.Pointer(p), n)
	})
}

// pin renders a PIN, if the settings allow it.
func (c *call) pin(name string, p *byte, n ck.ULong) {
	if !c.settings.ShouldReveal(SecretPIN) {
		c.printf("%s: *** Intentionally hidden ***", name)
		return
	}
	c.text(name, p, n)
}

// flags renders one line per known flag, saying whether it's set.
func (c *call) flags(indent string, v ck.Flags, known []flagName) {
	for _, f := range known {
		if v&f.flag != 0 {
			c.printf("%s%s: TRUE", indent, f.name)
		} else {
			c.printf("%s%s: FALSE", indent, f.name)
		}
	}
}

// mechanism renders a mechanism and its parameter.
func (c *call) mechanism(m *ck.Mechanism) {
	c.printf(" pMechanism: %s", addr(m))
	if m == nil {
		return
	}
	c.printf("  mechanism: %d (%s)", m.Mechanism, m.Mechanism)
	c.printf("  pParameter: %s", p11render.Pointer(m.Parameter))
	c.bytes("  *pParameter", (*byte)(m.Parameter), m.ParameterLen)
	c.printf("  ulParameterLen: %d", m.ParameterLen)
}

// template renders an attribute template.
func (c *call) template(p *ck.Attribute, count ck.ULong) {
	lines, ok := safeLines(func() []p11render.Line {
		return p11render.Attributes(p, count, p11render.Options{MaxDepth: c.p.cfg.MaxTemplateDepth})
	})
	if !ok {
		c.printf("  %s", p11render.Unavailable)
		return
	}
	for _, l := range lines {
		c.rec.Lines = append(c.rec.Lines, l.String())
	}
}

func safeLines(fn func() []p11render.Line) (lines []p11render.Line, ok bool) {
	defer debug.SetPanicOnFault(debug.SetPanicOnFault(true))
	defer func() {
		if r := recover(); r != nil {
			lines, ok = nil, false
		}
	}()
	return fn(), true
}

// deref renders the value at p. Nothing is written for a nil p.
func deref[T ~uint](c *call, name string, p *T) {
	if p == nil {
		return
	}
	c.value(name, func() (string, bool) {
		return fmt.Sprint(uint(*p)), true
	})
}

// list renders n values starting at p, one per line, each labeled with its
// index. Nothing is written for a nil p.
func list[T ~uint](c *call, name string, p *T, n ck.ULong, names func(T) string) {
	if p == nil || n == 0 {
		return
	}
	if n > p11render.MaxRenderBytes/ck.ULong(unsafe.Sizeof(*p)) {
		c.printf("%s: %s", name, p11render.Unavailable)
		return
	}
	vals, ok := safeSlice(p, n)
	if !ok {
		c.printf("%s: %s", name, p11render.Unavailable)
		return
	}
	for i, v := range vals {
		if names != nil {
			c.printf("%s[%d]: %d (%s)", name, i, uint(v), names(v))
		} else {
			c.printf("%s[%d]: %d", name, i, uint(v))
		}
	}
}

func safeSlice[T any](p *T, n ck.ULong) (vals []T, ok bool) {
	defer debug.SetPanicOnFault(debug.SetPanicOnFault(true))
	defer func() {
		if r := recover(); r != nil {
			vals, ok = nil, false
		}
	}()
	return append([]T(nil), unsafe.Slice(p, n)...), true
}

func addr[T any](p *T) string {
	return p11render.Pointer(unsafe.Pointer(p))
}

//
//
//

type flagName struct {
	flag ck.Flags
	name string
}

var (
	initializeFlags = []flagName{
		{ck.CKF_LIBRARY_CANT_CREATE_OS_THREADS, "CKF_LIBRARY_CANT_CREATE_OS_THREADS"},
		{ck.CKF_OS_LOCKING_OK, "CKF_OS_LOCKING_OK"},
	}

	slotFlags = []flagName{
		{ck.CKF_TOKEN_PRESENT, "CKF_TOKEN_PRESENT"},
		{ck.CKF_REMOVABLE_DEVICE, "CKF_REMOVABLE_DEVICE"},
		{ck.CKF_HW_SLOT, "CKF_HW_SLOT"},
	}

	tokenFlags = []flagName{
		{ck.CKF_RNG, "CKF_RNG"},
		{ck.CKF_WRITE_PROTECTED, "CKF_WRITE_PROTECTED"},
		{ck.CKF_LOGIN_REQUIRED, "CKF_LOGIN_REQUIRED"},
		{ck.CKF_USER_PIN_INITIALIZED, "CKF_USER_PIN_INITIALIZED"},
		{ck.CKF_RESTORE_KEY_NOT_NEEDED, "CKF_RESTORE_KEY_NOT_NEEDED"},
		{ck.CKF_CLOCK_ON_TOKEN, "CKF_CLOCK_ON_TOKEN"},
		{ck.CKF_PROTECTED_AUTHENTICATION_PATH, "CKF_PROTECTED_AUTHENTICATION_PATH"},
		{ck.CKF_DUAL_CRYPTO_OPERATIONS, "CKF_DUAL_CRYPTO_OPERATIONS"},
		{ck.CKF_TOKEN_INITIALIZED, "CKF_TOKEN_INITIALIZED"},
		{ck.CKF_SECONDARY_AUTHENTICATION, "CKF_SECONDARY_AUTHENTICATION"},
		{ck.CKF_USER_PIN_COUNT_LOW, "CKF_USER_PIN_COUNT_LOW"},
		{ck.CKF_USER_PIN_FINAL_TRY, "CKF_USER_PIN_FINAL_TRY"},
		{ck.CKF_USER_PIN_LOCKED, "CKF_USER_PIN_LOCKED"},
		{ck.CKF_USER_PIN_TO_BE_CHANGED, "CKF_USER_PIN_TO_BE_CHANGED"},
		{ck.CKF_SO_PIN_COUNT_LOW, "CKF_SO_PIN_COUNT_LOW"},
		{ck.CKF_SO_PIN_FINAL_TRY, "CKF_SO_PIN_FINAL_TRY"},
		{ck.CKF_SO_PIN_LOCKED, "CKF_SO_PIN_LOCKED"},
		{ck.CKF_SO_PIN_TO_BE_CHANGED, "CKF_SO_PIN_TO_BE_CHANGED"},
	}

	sessionFlags = []flagName{
		{ck.CKF_RW_SESSION, "CKF_RW_SESSION"},
		{ck.CKF_SERIAL_SESSION, "CKF_SERIAL_SESSION"},
	}

	mechanismFlags = []flagName{
		{ck.CKF_HW, "CKF_HW"},
		{ck.CKF_ENCRYPT, "CKF_ENCRYPT"},
		{ck.CKF_DECRYPT, "CKF_DECRYPT"},
		{ck.CKF_DIGEST, "CKF_DIGEST"},
		{ck.CKF_SIGN, "CKF_SIGN"},
		{ck.CKF_SIGN_RECOVER, "CKF_SIGN_RECOVER"},
		{ck.CKF_VERIFY, "CKF_VERIFY"},
		{ck.CKF_VERIFY_RECOVER, "CKF_VERIFY_RECOVER"},
		{ck.CKF_GENERATE, "CKF_GENERATE"},
		{ck.CKF_GENERATE_KEY_PAIR, "CKF_GENERATE_KEY_PAIR"},
		{ck.CKF_WRAP, "CKF_WRAP"},
		{ck.CKF_UNWRAP, "CKF_UNWRAP"},
		{ck.CKF_DERIVE, "CKF_DERIVE"},
		{ck.CKF_EC_F_P, "CKF_EC_F_P"},
		{ck.CKF_EC_F_2M, "CKF_EC_F_2M"},
		{ck.CKF_EC_ECPARAMETERS, "CKF_EC_ECPARAMETERS"},
		{ck.CKF_EC_NAMEDCURVE, "CKF_EC_NAMEDCURVE"},
		{ck.CKF_EC_UNCOMPRESS, "CKF_EC_UNCOMPRESS"},
		{ck.CKF_EC_COMPRESS, "CKF_EC_COMPRESS"},
		{ck.CKF_EXTENSION, "CKF_EXTENSION"},
	}

	waitFlags = []flagName{
		{ck.CKF_DONT_BLOCK, "CKF_DONT_BLOCK"},
	}
)
