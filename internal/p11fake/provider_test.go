package p11fake

import (
	"crypto/sha256"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/peterbourgon/p11trc/ck"
)

func openSession(t *testing.T, fl *ck.FunctionList) ck.SessionHandle {
	t.Helper()
	require.Equal(t, ck.CKR_OK, fl.Initialize(nil))
	var h ck.SessionHandle
	require.Equal(t, ck.CKR_OK, fl.OpenSession(0, ck.CKF_SERIAL_SESSION|ck.CKF_RW_SESSION, nil, nil, &h))
	return h
}

func TestDigest(t *testing.T) {
	t.Parallel()

	fl := New(Config{}).FunctionList()
	h := openSession(t, fl)

	mech := ck.Mechanism{Mechanism: ck.CKM_SHA256}
	require.Equal(t, ck.CKR_OK, fl.DigestInit(h, &mech))

	data := []byte("abc")

	var n ck.ULong
	require.Equal(t, ck.CKR_OK, fl.Digest(h, &data[0], ck.ULong(len(data)), nil, &n))
	require.Equal(t, ck.ULong(32), n)

	short := make([]byte, 8)
	n = ck.ULong(len(short))
	require.Equal(t, ck.CKR_BUFFER_TOO_SMALL, fl.Digest(h, &data[0], ck.ULong(len(data)), &short[0], &n))
	require.Equal(t, ck.ULong(32), n)

	out := make([]byte, 32)
	require.Equal(t, ck.CKR_OK, fl.Digest(h, &data[0], ck.ULong(len(data)), &out[0], &n))
	want := sha256.Sum256(data)
	require.Equal(t, want[:], out)

	require.Equal(t, ck.CKR_OPERATION_NOT_INITIALIZED, fl.Digest(h, &data[0], ck.ULong(len(data)), &out[0], &n))
}

func TestDigestMultipart(t *testing.T) {
	t.Parallel()

	fl := New(Config{}).FunctionList()
	h := openSession(t, fl)

	mech := ck.Mechanism{Mechanism: ck.CKM_SHA256}
	require.Equal(t, ck.CKR_OK, fl.DigestInit(h, &mech))

	for _, part := range []string{"hello, ", "world"} {
		b := []byte(part)
		require.Equal(t, ck.CKR_OK, fl.DigestUpdate(h, &b[0], ck.ULong(len(b))))
	}

	out := make([]byte, 32)
	n := ck.ULong(len(out))
	require.Equal(t, ck.CKR_OK, fl.DigestFinal(h, &out[0], &n))
	want := sha256.Sum256([]byte("hello, world"))
	require.Equal(t, want[:], out)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	fl := New(Config{UserPIN: "0000"}).FunctionList()
	h := openSession(t, fl)

	bad := []byte("1111")
	require.Equal(t, ck.CKR_PIN_INCORRECT, fl.Login(h, ck.CKU_USER, &bad[0], ck.ULong(len(bad))))

	good := []byte("0000")
	require.Equal(t, ck.CKR_OK, fl.Login(h, ck.CKU_USER, &good[0], ck.ULong(len(good))))
	require.Equal(t, ck.CKR_USER_ALREADY_LOGGED_IN, fl.Login(h, ck.CKU_USER, &good[0], ck.ULong(len(good))))

	var info ck.SessionInfo
	require.Equal(t, ck.CKR_OK, fl.GetSessionInfo(h, &info))
	require.Equal(t, ck.CKS_RW_USER_FUNCTIONS, info.State)

	require.Equal(t, ck.CKR_OK, fl.Logout(h))
	require.Equal(t, ck.CKR_OK, fl.GetSessionInfo(h, &info))
	require.Equal(t, ck.CKS_RW_PUBLIC_SESSION, info.State)
}

func TestObjects(t *testing.T) {
	t.Parallel()

	fl := New(Config{}).FunctionList()
	h := openSession(t, fl)

	label := []byte("secret")
	value := []byte{1, 2, 3, 4}
	yes := []byte{1}
	template := []ck.Attribute{
		{Type: ck.CKA_LABEL, Value: unsafe.Pointer(&label[0]), ValueLen: ck.ULong(len(label))},
		{Type: ck.CKA_VALUE, Value: unsafe.Pointer(&value[0]), ValueLen: ck.ULong(len(value))},
		{Type: ck.CKA_SENSITIVE, Value: unsafe.Pointer(&yes[0]), ValueLen: 1},
	}

	var oh ck.ObjectHandle
	require.Equal(t, ck.CKR_OK, fl.CreateObject(h, &template[0], ck.ULong(len(template)), &oh))

	// Sizes only.
	query := []ck.Attribute{{Type: ck.CKA_LABEL}, {Type: ck.CKA_ID}}
	require.Equal(t, ck.CKR_ATTRIBUTE_TYPE_INVALID, fl.GetAttributeValue(h, oh, &query[0], 2))
	require.Equal(t, ck.ULong(len(label)), query[0].ValueLen)
	require.Equal(t, ck.CK_UNAVAILABLE_INFORMATION, query[1].ValueLen)

	// Sensitive value.
	buf := make([]byte, 16)
	query = []ck.Attribute{{Type: ck.CKA_VALUE, Value: unsafe.Pointer(&buf[0]), ValueLen: 16}}
	require.Equal(t, ck.CKR_ATTRIBUTE_SENSITIVE, fl.GetAttributeValue(h, oh, &query[0], 1))

	// Short buffer.
	query = []ck.Attribute{{Type: ck.CKA_LABEL, Value: unsafe.Pointer(&buf[0]), ValueLen: 2}}
	require.Equal(t, ck.CKR_BUFFER_TOO_SMALL, fl.GetAttributeValue(h, oh, &query[0], 1))

	// Find by label.
	find := template[:1]
	require.Equal(t, ck.CKR_OK, fl.FindObjectsInit(h, &find[0], 1))
	found := make([]ck.ObjectHandle, 4)
	var count ck.ULong
	require.Equal(t, ck.CKR_OK, fl.FindObjects(h, &found[0], 4, &count))
	require.Equal(t, ck.ULong(1), count)
	require.Equal(t, oh, found[0])
	require.Equal(t, ck.CKR_OK, fl.FindObjectsFinal(h))

	require.Equal(t, ck.CKR_OK, fl.DestroyObject(h, oh))
	require.Equal(t, ck.CKR_OBJECT_HANDLE_INVALID, fl.DestroyObject(h, oh))
}

func TestUnsupported(t *testing.T) {
	t.Parallel()

	fl := New(Config{}).FunctionList()
	require.Equal(t, ck.CKR_FUNCTION_NOT_SUPPORTED, fl.EncryptInit(1, nil, 0))
	require.Equal(t, ck.CKR_FUNCTION_NOT_SUPPORTED, fl.WaitForSlotEvent(0, nil, nil))
}

func TestSlotsAndMechanisms(t *testing.T) {
	t.Parallel()

	fl := New(Config{Slots: []ck.SlotID{3, 7}}).FunctionList()

	var n ck.ULong
	require.Equal(t, ck.CKR_OK, fl.GetSlotList(ck.CK_TRUE, nil, &n))
	require.Equal(t, ck.ULong(2), n)

	slots := make([]ck.SlotID, n)
	require.Equal(t, ck.CKR_OK, fl.GetSlotList(ck.CK_TRUE, &slots[0], &n))
	require.Equal(t, []ck.SlotID{3, 7}, slots)

	var token ck.TokenInfo
	require.Equal(t, ck.CKR_OK, fl.GetTokenInfo(7, &token))
	require.Equal(t, "p11fake", ck.TrimBlank(token.Label[:]))
	require.Equal(t, ck.CKR_SLOT_ID_INVALID, fl.GetTokenInfo(1, &token))

	require.Equal(t, ck.CKR_OK, fl.GetMechanismList(3, nil, &n))
	require.Equal(t, ck.ULong(len(Mechanisms)), n)

	var mi ck.MechanismInfo
	require.Equal(t, ck.CKR_OK, fl.GetMechanismInfo(3, ck.CKM_SHA512, &mi))
	require.Equal(t, ck.CKF_DIGEST, mi.Flags)
	require.Equal(t, ck.CKR_MECHANISM_INVALID, fl.GetMechanismInfo(3, ck.CKM_AES_CBC, &mi))
}
