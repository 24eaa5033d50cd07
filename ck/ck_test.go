package ck

import (
	"reflect"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
)

func assertEqual[T any](t *testing.T, have, want T) {
	t.Helper()
	if !cmp.Equal(have, want) {
		t.Fatal(cmp.Diff(have, want))
	}
}

func TestFunctionListOrder(t *testing.T) {
	t.Parallel()

	typ := reflect.TypeOf(FunctionList{})
	assertEqual(t, typ.NumField(), FunctionCount+1)
	assertEqual(t, typ.Field(0).Name, "Version")

	for i := 0; i < FunctionCount; i++ {
		f := typ.Field(i + 1)
		assertEqual(t, "C_"+f.Name, FunctionNames[i])
		assertEqual(t, f.Type.Kind(), reflect.Func)
		assertEqual(t, f.Type.NumOut(), 1)
		assertEqual(t, f.Type.Out(0) == reflect.TypeOf(RV(0)), true)
	}
}

func TestLayout(t *testing.T) {
	t.Parallel()

	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("layout checks assume a 64-bit platform")
	}

	assertEqual(t, SizeofAttribute, ULong(24))
	assertEqual(t, unsafe.Sizeof(Mechanism{}), uintptr(24))
	assertEqual(t, unsafe.Sizeof(Version{}), uintptr(2))
	assertEqual(t, unsafe.Offsetof(Info{}.Flags), uintptr(40))
	assertEqual(t, unsafe.Sizeof(Info{}), uintptr(88))
	assertEqual(t, unsafe.Offsetof(TokenInfo{}.Flags), uintptr(96))
	assertEqual(t, unsafe.Sizeof(TokenInfo{}), uintptr(208))
	assertEqual(t, unsafe.Sizeof(InitializeArgs{}), uintptr(48))
}

func TestNames(t *testing.T) {
	t.Parallel()

	assertEqual(t, CKR_OK.String(), "CKR_OK")
	assertEqual(t, CKR_BUFFER_TOO_SMALL.String(), "CKR_BUFFER_TOO_SMALL")
	assertEqual(t, RV(0x7777).String(), "Unknown")
	assertEqual(t, CKM_SHA256.String(), "CKM_SHA256")
	assertEqual(t, CKA_WRAP_TEMPLATE.String(), "CKA_WRAP_TEMPLATE")
	assertEqual(t, CKA_WRAP_TEMPLATE&CKF_ARRAY_ATTRIBUTE, CKF_ARRAY_ATTRIBUTE)
	assertEqual(t, CKU_CONTEXT_SPECIFIC.String(), "CKU_CONTEXT_SPECIFIC")
	assertEqual(t, CKS_RW_SO_FUNCTIONS.String(), "CKS_RW_SO_FUNCTIONS")
	assertEqual(t, State(99).String(), "Unknown")
}

func TestParseMechanism(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		input string
		want  MechanismType
		ok    bool
	}{
		{"CKM_SHA256", CKM_SHA256, true},
		{"sha256", CKM_SHA256, true},
		{"SHA_1", CKM_SHA_1, true},
		{"0x250", CKM_SHA256, true},
		{"592", CKM_SHA256, true},
		{"NOPE", 0, false},
		{"0xZZ", 0, false},
	} {
		t.Run(tc.input, func(t *testing.T) {
			have, ok := ParseMechanism(tc.input)
			assertEqual(t, ok, tc.ok)
			assertEqual(t, have, tc.want)
		})
	}
}

func TestErr(t *testing.T) {
	t.Parallel()

	assertEqual(t, CKR_OK.Err() == nil, true)
	assertEqual(t, CKR_PIN_INCORRECT.Err().Error(), "CKR_PIN_INCORRECT (160)")
}

func TestBlank(t *testing.T) {
	t.Parallel()

	var label [32]byte
	PadBlank(label[:], "my token")
	assertEqual(t, string(label[:10]), "my token  ")
	assertEqual(t, TrimBlank(label[:]), "my token")
}

func TestFillNotSupported(t *testing.T) {
	t.Parallel()

	fl := &FunctionList{
		Finalize: func(unsafe.Pointer) RV { return CKR_OK },
	}
	filled := FillNotSupported(fl)
	assertEqual(t, len(filled), FunctionCount-1)
	assertEqual(t, filled[0], "C_Initialize")

	assertEqual(t, fl.Finalize(nil), CKR_OK)
	assertEqual(t, fl.Initialize(nil), CKR_FUNCTION_NOT_SUPPORTED)
	assertEqual(t, fl.DigestInit(1, nil), CKR_FUNCTION_NOT_SUPPORTED)
	assertEqual(t, fl.WaitForSlotEvent(0, nil, nil), CKR_FUNCTION_NOT_SUPPORTED)

	assertEqual(t, len(FillNotSupported(fl)), 0)
}
