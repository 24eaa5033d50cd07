// Package ck defines the PKCS#11 (Cryptoki) v2.20 data model as it crosses a
// provider's function table: scalar types, structures, status codes, and the
// function list itself.
//
// Every structure mirrors the C ABI on 64-bit Unix platforms, where CK_ULONG is
// an unsigned long. Values of these types can be handed to a native provider
// without conversion, and pointers received from a native provider can be read
// through them.
package ck

import (
	"fmt"
	"unsafe"
)

// ULong is CK_ULONG.
type ULong = uint

// Bool is CK_BBOOL.
type Bool byte

// CK_TRUE and CK_FALSE are the two valid Bool values.
const (
	CK_FALSE Bool = 0
	CK_TRUE  Bool = 1
)

// Scalar handle and identifier types.
type (
	RV            ULong
	SlotID        ULong
	SessionHandle ULong
	ObjectHandle  ULong
	MechanismType ULong
	AttributeType ULong
	ObjectClass   ULong
	KeyType       ULong
	UserType      ULong
	State         ULong
	Flags         ULong
)

// Special values.
const (
	CK_INVALID_HANDLE          ULong = 0
	CK_EFFECTIVELY_INFINITE    ULong = 0
	CK_UNAVAILABLE_INFORMATION ULong = ^ULong(0)
)

// Version is CK_VERSION.
type Version struct {
	Major byte
	Minor byte
}

func (v Version) String() string { return fmt.Sprintf("%d.%d", v.Major, v.Minor) }

// Info is CK_INFO.
type Info struct {
	CryptokiVersion    Version
	ManufacturerID     [32]byte
	Flags              Flags
	LibraryDescription [32]byte
	LibraryVersion     Version
}

// SlotInfo is CK_SLOT_INFO.
type SlotInfo struct {
	SlotDescription [64]byte
	ManufacturerID  [32]byte
	Flags           Flags
	HardwareVersion Version
	FirmwareVersion Version
}

// TokenInfo is CK_TOKEN_INFO.
type TokenInfo struct {
	Label              [32]byte
	ManufacturerID     [32]byte
	Model              [16]byte
	SerialNumber       [16]byte
	Flags              Flags
	MaxSessionCount    ULong
	SessionCount       ULong
	MaxRwSessionCount  ULong
	RwSessionCount     ULong
	MaxPinLen          ULong
	MinPinLen          ULong
	TotalPublicMemory  ULong
	FreePublicMemory   ULong
	TotalPrivateMemory ULong
	FreePrivateMemory  ULong
	HardwareVersion    Version
	FirmwareVersion    Version
	UTCTime            [16]byte
}

// SessionInfo is CK_SESSION_INFO.
type SessionInfo struct {
	SlotID      SlotID
	State       State
	Flags       Flags
	DeviceError ULong
}

// MechanismInfo is CK_MECHANISM_INFO.
type MechanismInfo struct {
	MinKeySize ULong
	MaxKeySize ULong
	Flags      Flags
}

// Mechanism is CK_MECHANISM.
type Mechanism struct {
	Mechanism    MechanismType
	Parameter    unsafe.Pointer
	ParameterLen ULong
}

// Attribute is CK_ATTRIBUTE. When Type carries CKF_ARRAY_ATTRIBUTE and
// ValueLen is a whole multiple of SizeofAttribute, Value points to a nested
// array of attributes.
type Attribute struct {
	Type     AttributeType
	Value    unsafe.Pointer
	ValueLen ULong
}

// SizeofAttribute is the in-memory size of one Attribute.
const SizeofAttribute = ULong(unsafe.Sizeof(Attribute{}))

// InitializeArgs is CK_C_INITIALIZE_ARGS. The mutex callbacks are opaque
// function pointers; they are passed through and never called from Go.
type InitializeArgs struct {
	CreateMutex  unsafe.Pointer
	DestroyMutex unsafe.Pointer
	LockMutex    unsafe.Pointer
	UnlockMutex  unsafe.Pointer
	Flags        Flags
	Reserved     unsafe.Pointer
}

// Error adapts a non-OK status to the error interface.
type Error RV

func (e Error) Error() string {
	return fmt.Sprintf("%s (%d)", RV(e), ULong(e))
}

// Err returns nil for CKR_OK and an Error otherwise.
func (rv RV) Err() error {
	if rv == CKR_OK {
		return nil
	}
	return Error(rv)
}

// AttributeSlice views count attributes starting at p. It returns nil when p
// is nil or count is zero.
func AttributeSlice(p *Attribute, count ULong) []Attribute {
	if p == nil || count == 0 {
		return nil
	}
	return unsafe.Slice(p, count)
}

// TrimBlank returns the fixed-size, blank-padded field b as a string with
// trailing spaces and NULs removed.
func TrimBlank(b []byte) string {
	n := len(b)
	for n > 0 && (b[n-1] == ' ' || b[n-1] == 0) {
		n--
	}
	return string(b[:n])
}

// PadBlank copies s into the fixed-size field b, padding with spaces.
func PadBlank(b []byte, s string) {
	n := copy(b, s)
	for i := n; i < len(b); i++ {
		b[i] = ' '
	}
}
