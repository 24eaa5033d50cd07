package p11trc

import (
	"fmt"

	"github.com/peterbourgon/p11trc/ck"
)

// Phase identifies the step of loading the delegate that failed.
type Phase string

// Load phases, in order.
const (
	PhaseSettings Phase = "settings" // reading and validating settings
	PhaseOpen     Phase = "open"     // opening the delegate module
	PhaseResolve  Phase = "resolve"  // finding C_GetFunctionList in the module
	PhaseEntry    Phase = "entry"    // calling C_GetFunctionList
)

// LoadError is returned by EnsureLoaded when the delegate can't be loaded.
// It matches another LoadError with errors.Is when the phases are the same.
type LoadError struct {
	Phase Phase
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load delegate: %s: %v", e.Phase, e.Cause)
}

func (e *LoadError) Unwrap() error { return e.Cause }

// Is implements the errors.Is interface.
func (e *LoadError) Is(target error) bool {
	le, ok := target.(*LoadError)
	return ok && le.Phase == e.Phase
}

// EntryError is the cause of a LoadError in PhaseEntry.
type EntryError struct {
	RV ck.RV
}

func (e *EntryError) Error() string {
	if e.RV == ck.CKR_OK {
		return "C_GetFunctionList returned no function list"
	}
	return fmt.Sprintf("C_GetFunctionList returned %d (%s)", e.RV, e.RV)
}
