package p11dl

import (
	"errors"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/peterbourgon/p11trc/ck"
)

func assertEqual[T any](t *testing.T, have, want T) {
	t.Helper()
	if !cmp.Equal(have, want) {
		t.Fatal(cmp.Diff(have, want))
	}
}

func TestStaticModule(t *testing.T) {
	t.Parallel()

	var closed int
	fl := &ck.FunctionList{Version: ck.Version{Major: 2, Minor: 40}}
	mod := NewStaticModule(fl)
	mod.OnClose = func() error { closed++; return nil }

	loader := StaticLoader{"/lib/fake.so": mod}

	m, err := loader.Open("/lib/fake.so")
	if err != nil {
		t.Fatal(err)
	}

	ep, err := m.Lookup(GetFunctionListSymbol)
	if err != nil {
		t.Fatal(err)
	}

	have, rv := ep()
	assertEqual(t, rv, ck.CKR_OK)
	assertEqual(t, have == fl, true)

	_, err = m.Lookup("C_Nope")
	assertEqual(t, errors.Is(err, ErrSymbolNotFound), true)

	assertEqual(t, m.Close(), nil)
	assertEqual(t, closed, 1)
}

func TestStaticLoaderMissing(t *testing.T) {
	t.Parallel()

	_, err := StaticLoader{}.Open("/lib/missing.so")

	var oe *OpenError
	assertEqual(t, errors.As(err, &oe), true)
	assertEqual(t, oe.Path, "/lib/missing.so")
}

func TestLoaderFunc(t *testing.T) {
	t.Parallel()

	var opened []string
	loader := LoaderFunc(func(path string) (Module, error) {
		opened = append(opened, path)
		return NewStaticModule(&ck.FunctionList{}), nil
	})

	if _, err := loader.Open("a"); err != nil {
		t.Fatal(err)
	}
	assertEqual(t, opened, []string{"a"})
}

func TestNativeOpenMissing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "does-not-exist.so")
	_, err := Native{}.Open(path)

	var oe *OpenError
	assertEqual(t, errors.As(err, &oe), true)
	assertEqual(t, oe.Path, path)

	switch runtime.GOOS {
	case "linux", "darwin", "freebsd":
		assertEqual(t, errors.Is(err, ErrUnsupportedPlatform), false)
	default:
		assertEqual(t, errors.Is(err, ErrUnsupportedPlatform), true)
	}
}
