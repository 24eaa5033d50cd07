//go:build linux || darwin || freebsd

package p11dl

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/peterbourgon/p11trc/ck"
)

// Native opens shared libraries with dlopen.
type Native struct{}

var _ Loader = Native{}

// Open implements Loader. The library is opened with RTLD_NOW|RTLD_LOCAL.
func (Native) Open(path string) (Module, error) {
	h, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	return &nativeModule{path: path, handle: h}, nil
}

type nativeModule struct {
	path   string
	handle uintptr

	once  sync.Once
	close error
}

func (m *nativeModule) Lookup(symbol string) (EntryPoint, error) {
	addr, err := purego.Dlsym(m.handle, symbol)
	if err != nil || addr == 0 {
		return nil, fmt.Errorf("%s: %s: %w", m.path, symbol, ErrSymbolNotFound)
	}

	var getFunctionList func(list *uintptr) ck.RV
	purego.RegisterFunc(&getFunctionList, addr)

	return func() (*ck.FunctionList, ck.RV) {
		var list uintptr
		rv := getFunctionList(&list)
		if rv != ck.CKR_OK || list == 0 {
			return nil, rv
		}
		return bind((*cFunctionList)(unsafe.Pointer(list))), rv
	}, nil
}

func (m *nativeModule) Close() error {
	m.once.Do(func() { m.close = purego.Dlclose(m.handle) })
	return m.close
}

// cFunctionList is CK_FUNCTION_LIST as laid out in C memory.
type cFunctionList struct {
	Version ck.Version
	Fns     [ck.FunctionCount]uintptr
}

// getFunctionListIndex is skipped during binding: the proxy answers
// C_GetFunctionList itself, and the C signature returns a C table.
const getFunctionListIndex = 3

// bind builds a Go function list whose fields call through to the C table.
func bind(c *cFunctionList) *ck.FunctionList {
	fl := &ck.FunctionList{Version: c.Version}
	v := reflect.ValueOf(fl).Elem()
	for i, fn := range c.Fns {
		if fn == 0 || i == getFunctionListIndex {
			continue
		}
		purego.RegisterFunc(v.Field(i+1).Addr().Interface(), fn)
	}
	return fl
}
