package p11trc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unsafe"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"golang.org/x/sync/errgroup"

	"github.com/peterbourgon/p11trc/ck"
	"github.com/peterbourgon/p11trc/internal/p11fake"
	"github.com/peterbourgon/p11trc/p11dl"
)

func assertEqual[T any](t *testing.T, have, want T) {
	t.Helper()
	if !cmp.Equal(have, want) {
		t.Fatal(cmp.Diff(have, want))
	}
}

func assertContains(t *testing.T, s, substr string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Fatalf("%q not found in output:\n%s", substr, s)
	}
}

func assertNotContains(t *testing.T, s, substr string) {
	t.Helper()
	if strings.Contains(s, substr) {
		t.Fatalf("%q unexpectedly found in output:\n%s", substr, s)
	}
}

const testLibraryPath = "/opt/test/libp11test.so"

var testTime = time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)

// testProxy is a proxy over the given delegate, writing its trace without
// prefixes to stdout.
type testProxy struct {
	*Proxy
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	opens    *atomic.Int64
	closes   *atomic.Int64
	registry *prometheus.Registry
}

func newTestProxy(t *testing.T, delegate *ck.FunctionList, flags Flag) *testProxy {
	t.Helper()

	var (
		stdout   = &bytes.Buffer{}
		stderr   = &bytes.Buffer{}
		opens    = &atomic.Int64{}
		closes   = &atomic.Int64{}
		registry = prometheus.NewRegistry()
	)

	module := p11dl.NewStaticModule(delegate)
	module.OnClose = func() error { closes.Add(1); return nil }

	p := NewProxy(Config{
		Settings: StaticSettings(Settings{
			LibraryPath: testLibraryPath,
			Flags:       FlagDisableLogFile | FlagDisableProcessID | FlagDisableThreadID | FlagEnableStdout | flags,
		}),
		Loader: p11dl.LoaderFunc(func(path string) (p11dl.Module, error) {
			opens.Add(1)
			return p11dl.StaticLoader{testLibraryPath: module}.Open(path)
		}),
		Stdout:     stdout,
		Stderr:     stderr,
		Registerer: registry,
		Now:        func() time.Time { return testTime },
	})

	return &testProxy{
		Proxy:    p,
		stdout:   stdout,
		stderr:   stderr,
		opens:    opens,
		closes:   closes,
		registry: registry,
	}
}

// calls returns the trace written since the delegate was loaded.
func (tp *testProxy) calls(t *testing.T) string {
	t.Helper()
	const marker = "NOTE: Memory contents will be logged without the endianness conversion\n"
	s := tp.stdout.String()
	idx := strings.Index(s, marker)
	if idx < 0 {
		t.Fatalf("delegate wasn't loaded:\n%s", s)
	}
	return s[idx+len(marker):]
}

func TestEnsureLoadedConcurrent(t *testing.T) {
	t.Parallel()

	fake := p11fake.New(p11fake.Config{}).FunctionList()
	tp := newTestProxy(t, fake, 0)

	var g errgroup.Group
	for i := 0; i < 32; i++ {
		g.Go(tp.EnsureLoaded)
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	assertEqual(t, tp.opens.Load(), int64(1))
	assertEqual(t, strings.Count(tp.stdout.String(), "PKCS11-LOGGER 2.2.0"), 1)
	assertEqual(t, tp.FunctionList().Version, fake.Version)

	before := tp.stdout.Len()
	if err := tp.EnsureLoaded(); err != nil {
		t.Fatal(err)
	}
	assertEqual(t, tp.opens.Load(), int64(1))
	assertEqual(t, tp.stdout.Len(), before)
}

func TestVersionBeforeLoad(t *testing.T) {
	t.Parallel()

	tp := newTestProxy(t, p11fake.New(p11fake.Config{}).FunctionList(), 0)
	assertEqual(t, tp.FunctionList().Version, ck.Version{Major: 2, Minor: 20})
	assertEqual(t, tp.opens.Load(), int64(0))
}

func TestBanner(t *testing.T) {
	t.Parallel()

	tp := newTestProxy(t, p11fake.New(p11fake.Config{}).FunctionList(), 0)
	if err := tp.EnsureLoaded(); err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"****************************** 2024-01-02 03:04:05 ***",
		"PKCS11-LOGGER 2.2.0",
		"PKCS#11 logging proxy module",
		"Developed as a part of the Pkcs11Interop project",
		"Please visit www.pkcs11interop.net for more information",
		"****************************** 2024-01-02 03:04:05 ***",
		`2024-01-02 03:04:05 - Going to load PKCS#11 library "/opt/test/libp11test.so"`,
		"2024-01-02 03:04:05 - Successfully loaded PKCS#11 library",
		"2024-01-02 03:04:05 - Going to call C_GetFunctionList function from the original library",
		"2024-01-02 03:04:05 - Received response from C_GetFunctionList function",
		"****************************** 2024-01-02 03:04:05 ***",
		"NOTE: Memory contents will be logged without the endianness conversion",
	}, "\n") + "\n"

	assertEqual(t, tp.stdout.String(), want)
}

func TestQuotedLibraryPath(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	p := NewProxy(Config{
		Settings: StaticSettings(Settings{LibraryPath: `"/opt/test/libp11test.so"`}),
		Loader: p11dl.LoaderFunc(func(path string) (p11dl.Module, error) {
			t.Errorf("unexpected load of %s", path)
			return nil, errors.New("unexpected")
		}),
		Stderr: &stderr,
	})

	err := p.EnsureLoaded()
	if !errors.Is(err, &LoadError{Phase: PhaseSettings}) {
		t.Fatalf("want settings error, have %v", err)
	}
	if !errors.Is(err, ErrQuoted) {
		t.Fatalf("want %v, have %v", ErrQuoted, err)
	}
	assertContains(t, stderr.String(), "Value of PKCS11_LOGGER_LIBRARY_PATH environment variable needs to be provided without enclosing quotes")
	assertNotContains(t, stderr.String(), "PKCS11-LOGGER 2.2.0")

	// Every function, including C_GetFunctionList, fails the same way.
	v := reflect.ValueOf(p.FunctionList()).Elem()
	for i := 1; i < v.NumField(); i++ {
		f := v.Field(i)
		args := make([]reflect.Value, f.Type().NumIn())
		for j := range args {
			args[j] = reflect.Zero(f.Type().In(j))
		}
		rv := f.Call(args)[0].Interface().(ck.RV)
		if rv != ck.CKR_GENERAL_ERROR {
			t.Errorf("%s: want CKR_GENERAL_ERROR, have %s", ck.FunctionNames[i-1], rv)
		}
	}

	if errors.Is(p.EnsureLoaded(), &LoadError{Phase: PhaseOpen}) {
		t.Fatal("load was retried")
	}
}

func TestLoadFailures(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		module p11dl.Module
		phase  Phase
		trace  string
		closed bool
	}{
		{
			name:   "open",
			module: nil,
			phase:  PhaseOpen,
			trace:  "Unable to load PKCS#11 library. Error: ",
		},
		{
			name:   "resolve",
			module: &p11dl.StaticModule{},
			phase:  PhaseResolve,
			trace:  "Unable to find C_GetFunctionList function in the original library",
			closed: true,
		},
		{
			name: "entry",
			module: &p11dl.StaticModule{Symbols: map[string]p11dl.EntryPoint{
				p11dl.GetFunctionListSymbol: func() (*ck.FunctionList, ck.RV) { return nil, ck.CKR_HOST_MEMORY },
			}},
			phase:  PhaseEntry,
			trace:  "C_GetFunctionList returned 2 (CKR_HOST_MEMORY)",
			closed: true,
		},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var (
				stdout   bytes.Buffer
				stderr   bytes.Buffer
				closed   bool
				registry = prometheus.NewRegistry()
				loader   = p11dl.StaticLoader{}
			)
			if sm, ok := tc.module.(*p11dl.StaticModule); ok {
				sm.OnClose = func() error { closed = true; return nil }
				loader[testLibraryPath] = sm
			}

			p := NewProxy(Config{
				Settings:   StaticSettings(Settings{LibraryPath: testLibraryPath, Flags: FlagDisableLogFile | FlagEnableStdout}),
				Loader:     loader,
				Stdout:     &stdout,
				Stderr:     &stderr,
				Registerer: registry,
			})

			err := p.EnsureLoaded()
			if !errors.Is(err, &LoadError{Phase: tc.phase}) {
				t.Fatalf("want %s error, have %v", tc.phase, err)
			}

			assertContains(t, stdout.String(), "PKCS11-LOGGER 2.2.0")
			assertContains(t, stdout.String(), tc.trace)
			assertNotContains(t, stdout.String(), "NOTE: Memory contents")
			assertContains(t, stderr.String(), "PKCS11-LOGGER 2.2.0")
			assertContains(t, stderr.String(), tc.trace)
			assertEqual(t, closed, tc.closed)

			var fl *ck.FunctionList
			assertEqual(t, p.FunctionList().GetFunctionList(&fl), ck.CKR_GENERAL_ERROR)
			assertEqual(t, p.FunctionList().Finalize(nil), ck.CKR_GENERAL_ERROR)

			assertEqual(t, testutil.ToFloat64(p.metrics.loadFailures.WithLabelValues(string(tc.phase))), 1.0)
		})
	}
}

func TestLoadFailureNeverSilent(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name  string
		flags Flag
	}{
		{name: "no destinations", flags: FlagDisableLogFile},
		{name: "stderr enabled", flags: FlagDisableLogFile | FlagEnableStderr},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			p := NewProxy(Config{
				Settings: StaticSettings(Settings{LibraryPath: "/nonexistent.so", Flags: tc.flags}),
				Loader:   p11dl.StaticLoader{},
				Stdout:   &stdout,
				Stderr:   &stderr,
			})

			if err := p.EnsureLoaded(); !errors.Is(err, &LoadError{Phase: PhaseOpen}) {
				t.Fatalf("want open error, have %v", err)
			}

			assertEqual(t, stdout.Len(), 0)
			assertEqual(t, strings.Count(stderr.String(), "PKCS11-LOGGER 2.2.0"), 1)
			assertEqual(t, strings.Count(stderr.String(), "Unable to load PKCS#11 library. Error: "), 1)
		})
	}
}

func TestVersionDuringLoad(t *testing.T) {
	t.Parallel()

	fake := p11fake.New(p11fake.Config{}).FunctionList()
	tp := newTestProxy(t, fake, 0)

	var g errgroup.Group
	g.Go(tp.EnsureLoaded)
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			if v := tp.Version(); v != DefaultVersion && v != fake.Version {
				return fmt.Errorf("unexpected version %s", v)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	assertEqual(t, tp.Version(), fake.Version)
	assertEqual(t, tp.FunctionList().Version, fake.Version)

	if err := tp.Close(); err != nil {
		t.Fatal(err)
	}
	assertEqual(t, tp.Version(), DefaultVersion)
}

func TestDelegateTableUntouched(t *testing.T) {
	t.Parallel()

	delegate := &ck.FunctionList{
		Version:    ck.Version{Major: 2, Minor: 20},
		Initialize: func(unsafe.Pointer) ck.RV { return ck.CKR_OK },
	}
	tp := newTestProxy(t, delegate, 0)

	assertEqual(t, tp.FunctionList().Initialize(nil), ck.CKR_OK)
	assertEqual(t, tp.FunctionList().Finalize(nil), ck.CKR_FUNCTION_NOT_SUPPORTED)
	assertEqual(t, delegate.Finalize == nil, true)
	assertEqual(t, delegate.GetInfo == nil, true)
}

func TestEntryError(t *testing.T) {
	t.Parallel()

	err := &LoadError{Phase: PhaseEntry, Cause: &EntryError{RV: ck.CKR_HOST_MEMORY}}
	assertEqual(t, err.Error(), "load delegate: entry: C_GetFunctionList returned 2 (CKR_HOST_MEMORY)")

	var ee *EntryError
	if !errors.As(err, &ee) {
		t.Fatal("EntryError not found")
	}
	assertEqual(t, ee.RV, ck.CKR_HOST_MEMORY)
	assertEqual(t, errors.Is(err, &LoadError{Phase: PhaseOpen}), false)
}

func TestCallFormat(t *testing.T) {
	t.Parallel()

	tp := newTestProxy(t, p11fake.New(p11fake.Config{}).FunctionList(), 0)

	assertEqual(t, tp.FunctionList().CloseSession(42), ck.CKR_SESSION_HANDLE_INVALID)

	want := strings.Join([]string{
		"****************************** 2024-01-02 03:04:05 ***",
		"Calling C_CloseSession",
		"Input",
		" hSession: 42",
		"****************************** 2024-01-02 03:04:05 ***",
		"Returned from C_CloseSession",
		"Returning 179 (CKR_SESSION_HANDLE_INVALID)",
	}, "\n") + "\n"

	assertEqual(t, tp.calls(t), want)
}

func TestDigestPassThrough(t *testing.T) {
	t.Parallel()

	fixed := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	var seen struct {
		data    *byte
		dataLen ck.ULong
	}

	delegate := &ck.FunctionList{
		Version: ck.Version{Major: 2, Minor: 40},
		Digest: func(h ck.SessionHandle, data *byte, dataLen ck.ULong, digest *byte, digestLen *ck.ULong) ck.RV {
			seen.data, seen.dataLen = data, dataLen
			copy(unsafe.Slice(digest, *digestLen), fixed)
			*digestLen = ck.ULong(len(fixed))
			return ck.CKR_OK
		},
	}

	tp := newTestProxy(t, delegate, 0)

	out := make([]byte, 16)
	outLen := ck.ULong(len(out))
	rv := tp.FunctionList().Digest(7, nil, 0, &out[0], &outLen)

	assertEqual(t, rv, ck.CKR_OK)
	assertEqual(t, out[:outLen], fixed)
	assertEqual(t, seen.data, (*byte)(nil))
	assertEqual(t, seen.dataLen, ck.ULong(0))

	trace := tp.calls(t)
	assertContains(t, trace, " pData: (nil)\n ulDataLen: 0\n")
	assertContains(t, trace, " *pulDigestLen: 16\n")
	assertContains(t, trace, "Output\n")
	assertContains(t, trace, " *pDigest: HEX(DEADBEEF)\n *pulDigestLen: 4\n")
	assertContains(t, trace, "Returning 0 (CKR_OK)")

	// Functions the delegate doesn't provide are answered as unsupported.
	assertEqual(t, tp.FunctionList().DigestInit(7, nil), ck.CKR_FUNCTION_NOT_SUPPORTED)
}

func TestStatusPassThrough(t *testing.T) {
	t.Parallel()

	delegate := &ck.FunctionList{
		Digest: func(ck.SessionHandle, *byte, ck.ULong, *byte, *ck.ULong) ck.RV {
			return ck.CKR_DEVICE_ERROR
		},
	}

	tp := newTestProxy(t, delegate, 0)

	data := []byte("abc")
	var n ck.ULong
	assertEqual(t, tp.FunctionList().Digest(1, &data[0], 3, nil, &n), ck.CKR_DEVICE_ERROR)

	trace := tp.calls(t)
	assertContains(t, trace, " *pData: HEX(616263)\n")
	assertNotContains(t, trace, "Output")
	assertContains(t, trace, "Returning 48 (CKR_DEVICE_ERROR)")
}

func TestGetFunctionListReturnsProxy(t *testing.T) {
	t.Parallel()

	tp := newTestProxy(t, p11fake.New(p11fake.Config{}).FunctionList(), 0)

	var fl *ck.FunctionList
	assertEqual(t, tp.FunctionList().GetFunctionList(&fl), ck.CKR_OK)
	if fl != tp.FunctionList() {
		t.Fatal("C_GetFunctionList didn't return the proxy's table")
	}
	assertContains(t, tp.calls(t), "Output\n Note: Returning function list of PKCS11-LOGGER\n")

	assertEqual(t, tp.FunctionList().GetFunctionList(nil), ck.CKR_ARGUMENTS_BAD)
}

func TestPIN(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name  string
		flags Flag
		want  string
	}{
		{"hidden", 0, " *pPin: *** Intentionally hidden ***\n"},
		{"revealed", FlagEnablePIN, " *pPin: 1234\n"},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tp := newTestProxy(t, p11fake.New(p11fake.Config{UserPIN: "1234"}).FunctionList(), tc.flags)
			fl := tp.FunctionList()

			var h ck.SessionHandle
			assertEqual(t, fl.Initialize(nil), ck.CKR_OK)
			assertEqual(t, fl.OpenSession(0, ck.CKF_SERIAL_SESSION, nil, nil, &h), ck.CKR_OK)

			pin := []byte("1234")
			assertEqual(t, fl.Login(h, ck.CKU_USER, &pin[0], ck.ULong(len(pin))), ck.CKR_OK)

			trace := tp.calls(t)
			assertContains(t, trace, " userType: 1 (CKU_USER)\n")
			assertContains(t, trace, tc.want)
			assertContains(t, trace, " ulPinLen: 4\n")
			if tc.flags&FlagEnablePIN == 0 {
				assertNotContains(t, trace, "1234")
			}
		})
	}
}

func TestInfoStructs(t *testing.T) {
	t.Parallel()

	tp := newTestProxy(t, p11fake.New(p11fake.Config{Slots: []ck.SlotID{5}}).FunctionList(), 0)
	fl := tp.FunctionList()

	assertEqual(t, fl.Initialize(nil), ck.CKR_OK)

	var info ck.Info
	assertEqual(t, fl.GetInfo(&info), ck.CKR_OK)

	var n ck.ULong
	assertEqual(t, fl.GetSlotList(ck.CK_TRUE, nil, &n), ck.CKR_OK)
	slots := make([]ck.SlotID, n)
	assertEqual(t, fl.GetSlotList(ck.CK_TRUE, &slots[0], &n), ck.CKR_OK)

	var token ck.TokenInfo
	assertEqual(t, fl.GetTokenInfo(5, &token), ck.CKR_OK)

	var mi ck.MechanismInfo
	assertEqual(t, fl.GetMechanismInfo(5, ck.CKM_SHA256, &mi), ck.CKR_OK)

	trace := tp.calls(t)
	assertContains(t, trace, "  cryptokiVersion:\n   major: 2\n   minor: 40\n")
	assertContains(t, trace, " pSlotList[0]: 5\n")
	assertContains(t, trace, "  label: p11fake")
	assertContains(t, trace, "   CKF_TOKEN_INITIALIZED: TRUE\n")
	assertContains(t, trace, " type: 592 (CKM_SHA256)\n")
	assertContains(t, trace, "   CKF_DIGEST: TRUE\n   CKF_SIGN: FALSE\n")
}

func TestGetAttributeValueOutputs(t *testing.T) {
	t.Parallel()

	tp := newTestProxy(t, p11fake.New(p11fake.Config{}).FunctionList(), 0)
	fl := tp.FunctionList()

	var h ck.SessionHandle
	assertEqual(t, fl.Initialize(nil), ck.CKR_OK)
	assertEqual(t, fl.OpenSession(0, ck.CKF_SERIAL_SESSION|ck.CKF_RW_SESSION, nil, nil, &h), ck.CKR_OK)

	label := []byte("k")
	template := []ck.Attribute{{Type: ck.CKA_LABEL, Value: unsafe.Pointer(&label[0]), ValueLen: 1}}
	var oh ck.ObjectHandle
	assertEqual(t, fl.CreateObject(h, &template[0], 1, &oh), ck.CKR_OK)

	query := []ck.Attribute{{Type: ck.CKA_LABEL}, {Type: ck.CKA_ID}}
	assertEqual(t, fl.GetAttributeValue(h, oh, &query[0], 2), ck.CKR_ATTRIBUTE_TYPE_INVALID)

	trace := tp.calls(t)
	idx := strings.Index(trace, "Returned from C_GetAttributeValue")
	if idx < 0 {
		t.Fatal("no exit block")
	}
	exit := trace[idx:]
	assertContains(t, exit, "Output\n")
	assertContains(t, exit, "   Attribute: 3 (CKA_LABEL)\n")
	assertContains(t, exit, "   ulValueLen: 1\n")
	assertContains(t, exit, "   Attribute: 258 (CKA_ID)\n")
	assertContains(t, exit, "Returning 18 (CKR_ATTRIBUTE_TYPE_INVALID)")
}

func TestBlocksNotInterleaved(t *testing.T) {
	t.Parallel()

	tp := newTestProxy(t, p11fake.New(p11fake.Config{}).FunctionList(), 0)
	fl := tp.FunctionList()
	assertEqual(t, fl.Initialize(nil), ck.CKR_OK)

	var g errgroup.Group
	for i := 0; i < 2; i++ {
		g.Go(func() error {
			var h ck.SessionHandle
			if rv := fl.OpenSession(0, ck.CKF_SERIAL_SESSION, nil, nil, &h); rv != ck.CKR_OK {
				return rv.Err()
			}
			for j := 0; j < 50; j++ {
				buf := make([]byte, 8)
				if rv := fl.GenerateRandom(h, &buf[0], 8); rv != ck.CKR_OK {
					return rv.Err()
				}
				mech := ck.Mechanism{Mechanism: ck.CKM_SHA_1}
				if rv := fl.DigestInit(h, &mech); rv != ck.CKR_OK {
					return rv.Err()
				}
				sum := make([]byte, 20)
				n := ck.ULong(len(sum))
				if rv := fl.Digest(h, &buf[0], 8, &sum[0], &n); rv != ck.CKR_OK {
					return rv.Err()
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	const separator = "****************************** 2024-01-02 03:04:05 ***"
	var blocks [][]string
	for _, line := range strings.Split(strings.TrimSuffix(tp.calls(t), "\n"), "\n") {
		if line == separator {
			blocks = append(blocks, nil)
			continue
		}
		if len(blocks) == 0 {
			t.Fatalf("line outside of a block: %q", line)
		}
		blocks[len(blocks)-1] = append(blocks[len(blocks)-1], line)
	}

	assertEqual(t, len(blocks), 2*(1+2*(1+50*3)))

	for i, b := range blocks {
		switch {
		case strings.HasPrefix(b[0], "Calling "):
			assertEqual(t, b[1], "Input")
			for _, line := range b[2:] {
				if !strings.HasPrefix(line, " ") {
					t.Fatalf("block %d: unexpected line %q in entry block", i, line)
				}
			}
		case strings.HasPrefix(b[0], "Returned from "):
			if !strings.HasPrefix(b[len(b)-1], "Returning ") {
				t.Fatalf("block %d: exit block doesn't end with status: %q", i, b)
			}
			for _, line := range b[1 : len(b)-1] {
				if line != "Output" && !strings.HasPrefix(line, " ") {
					t.Fatalf("block %d: unexpected line %q in exit block", i, line)
				}
			}
		default:
			t.Fatalf("block %d: unexpected first line %q", i, b[0])
		}
	}
}

func TestRecentCalls(t *testing.T) {
	t.Parallel()

	tp := newTestProxy(t, p11fake.New(p11fake.Config{}).FunctionList(), 0)
	fl := tp.FunctionList()

	assertEqual(t, fl.Initialize(nil), ck.CKR_OK)
	assertEqual(t, fl.Initialize(nil), ck.CKR_CRYPTOKI_ALREADY_INITIALIZED)
	assertEqual(t, fl.CloseSession(99), ck.CKR_SESSION_HANDLE_INVALID)

	calls := tp.RecentCalls("C_Initialize", -1)
	assertEqual(t, len(calls), 2)
	assertEqual(t, calls[0].RV, ck.CKR_CRYPTOKI_ALREADY_INITIALIZED)
	assertEqual(t, calls[1].RV, ck.CKR_OK)

	all := tp.RecentCalls("", 2)
	assertEqual(t, len(all), 2)

	assertEqual(t, len(tp.RecentCalls("C_Sign", 10)), 0)

	stats := tp.CallStats()
	assertEqual(t, len(stats), 2)
	assertEqual(t, stats[0].Function, "C_CloseSession")
	assertEqual(t, stats[0].Errors, uint64(1))
	assertEqual(t, stats[1].Function, "C_Initialize")
	assertEqual(t, stats[1].Calls, uint64(2))
	assertEqual(t, stats[1].Errors, uint64(1))
	assertEqual(t, stats[1].LastRV, ck.CKR_CRYPTOKI_ALREADY_INITIALIZED)

	assertEqual(t, testutil.ToFloat64(tp.metrics.calls.WithLabelValues("C_Initialize", "CKR_OK")), 1.0)
	if n := testutil.CollectAndCount(tp.metrics.duration); n != 2 {
		t.Fatalf("want 2 duration series, have %d", n)
	}

	families, err := tp.registry.Gather()
	if err != nil {
		t.Fatal(err)
	}
	var registered []string
	for _, mf := range families {
		registered = append(registered, mf.GetName())
	}
	assertEqual(t, registered, []string{"p11trc_call_duration_seconds", "p11trc_calls_total"})
}

func TestRecentCallsBounded(t *testing.T) {
	t.Parallel()

	tp := newTestProxy(t, p11fake.New(p11fake.Config{}).FunctionList(), 0)
	tp.SetRecentCalls(3)

	for i := 0; i < 10; i++ {
		tp.FunctionList().CloseSession(ck.SessionHandle(i))
	}

	assertEqual(t, len(tp.RecentCalls("C_CloseSession", -1)), 3)
	assertEqual(t, tp.CallStats()[0].Calls, uint64(10))
}

func TestClose(t *testing.T) {
	t.Parallel()

	tp := newTestProxy(t, p11fake.New(p11fake.Config{}).FunctionList(), 0)
	if err := tp.EnsureLoaded(); err != nil {
		t.Fatal(err)
	}

	if err := tp.Close(); err != nil {
		t.Fatal(err)
	}
	assertEqual(t, tp.closes.Load(), int64(1))

	if err := tp.EnsureLoaded(); !errors.Is(err, ErrClosed) {
		t.Fatalf("want %v, have %v", ErrClosed, err)
	}
	assertEqual(t, tp.FunctionList().Finalize(nil), ck.CKR_GENERAL_ERROR)

	if err := tp.Close(); err != nil {
		t.Fatal(err)
	}
	assertEqual(t, tp.closes.Load(), int64(1))
}

type countingFile struct {
	buf    *bytes.Buffer
	closes *int
}

func (f countingFile) Write(p []byte) (int, error) { return f.buf.Write(p) }
func (f countingFile) Close() error                { *f.closes++; return nil }

func TestTraceFile(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name       string
		flags      Flag
		wantOpens  int
		wantCloses int
		separator  string
	}{
		{
			name:       "kept open",
			flags:      0,
			wantOpens:  1,
			wantCloses: 0,
			separator:  "****************************** 2024-01-02 03:04:05 ***",
		},
		{
			name:       "fclose",
			flags:      FlagEnableFclose,
			wantOpens:  8, // 6 load blocks, 2 call blocks
			wantCloses: 8,
			separator:  "****************************** 2024-01-02 03:04:05 ***",
		},
		{
			name:       "usecs",
			flags:      FlagEnableUsecs,
			wantOpens:  1,
			wantCloses: 0,
			separator:  "****************************** 2024-01-02 03:04:05.000000 ***",
		},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var (
				file   bytes.Buffer
				opens  int
				closes int
				paths  []string
			)

			p := NewProxy(Config{
				Settings: StaticSettings(Settings{
					LibraryPath: testLibraryPath,
					LogFilePath: "/var/log/p11trc.log",
					Flags:       FlagDisableProcessID | FlagDisableThreadID | tc.flags,
				}),
				Loader: p11dl.StaticLoader{testLibraryPath: p11dl.NewStaticModule(p11fake.New(p11fake.Config{}).FunctionList())},
				OpenFile: func(path string) (io.WriteCloser, error) {
					opens++
					paths = append(paths, path)
					return countingFile{buf: &file, closes: &closes}, nil
				},
				Now: func() time.Time { return testTime },
			})

			assertEqual(t, p.FunctionList().Initialize(nil), ck.CKR_OK)

			assertEqual(t, opens, tc.wantOpens)
			assertEqual(t, closes, tc.wantCloses)
			assertEqual(t, paths[0], "/var/log/p11trc.log")
			assertContains(t, file.String(), tc.separator+"\nCalling C_Initialize\nInput\n pInitArgs: (nil)\n")
			assertContains(t, file.String(), "Returning 0 (CKR_OK)\n")

			if err := p.Close(); err != nil {
				t.Fatal(err)
			}
			if tc.flags&FlagEnableFclose == 0 {
				assertEqual(t, closes, 1)
			}
		})
	}
}

func TestProcessAndThreadPrefix(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	p := NewProxy(Config{
		Settings: StaticSettings(Settings{
			LibraryPath: testLibraryPath,
			Flags:       FlagDisableLogFile | FlagEnableStdout,
		}),
		Loader: p11dl.StaticLoader{testLibraryPath: p11dl.NewStaticModule(p11fake.New(p11fake.Config{}).FunctionList())},
		Stdout: &stdout,
	})
	if err := p.EnsureLoaded(); err != nil {
		t.Fatal(err)
	}

	for _, line := range strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n") {
		fields := strings.SplitN(line, " : ", 3)
		if len(fields) != 3 {
			t.Fatalf("line without pid and tid prefix: %q", line)
		}
		assertEqual(t, len(fields[0]), len("0x00000000"))
		assertEqual(t, len(fields[1]), len("0x0000000000000000"))
	}
}
