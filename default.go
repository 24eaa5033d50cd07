package p11trc

import (
	"sync"

	"github.com/peterbourgon/p11trc/ck"
)

var defaultProxy = sync.OnceValue(func() *Proxy {
	return NewProxy(Config{})
})

// Default returns the process-wide proxy. It reads its settings from the
// environment and loads the delegate with the native loader, on first use.
func Default() *Proxy {
	return defaultProxy()
}

// GetFunctionList is C_GetFunctionList for the default proxy. It loads the
// delegate, and fails with CKR_GENERAL_ERROR if that isn't possible.
func GetFunctionList(list **ck.FunctionList) ck.RV {
	return Default().FunctionList().GetFunctionList(list)
}
