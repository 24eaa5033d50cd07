package ck

import (
	"reflect"
	"unsafe"
)

// FunctionList is CK_FUNCTION_LIST: a version followed by one function per
// Cryptoki entry point, in the order fixed by PKCS#11 v2.20. A nil field means
// the provider did not supply the function.
//
// Pointer arguments follow the C conventions. Buffers are passed as a pointer
// to their first byte plus a length, and length pointers are in/out.
type FunctionList struct {
	Version Version

	Initialize       func(initArgs unsafe.Pointer) RV
	Finalize         func(reserved unsafe.Pointer) RV
	GetInfo          func(info *Info) RV
	GetFunctionList  func(list **FunctionList) RV
	GetSlotList      func(tokenPresent Bool, slotList *SlotID, count *ULong) RV
	GetSlotInfo      func(slot SlotID, info *SlotInfo) RV
	GetTokenInfo     func(slot SlotID, info *TokenInfo) RV
	GetMechanismList func(slot SlotID, mechanismList *MechanismType, count *ULong) RV
	GetMechanismInfo func(slot SlotID, mechanism MechanismType, info *MechanismInfo) RV
	InitToken        func(slot SlotID, pin *byte, pinLen ULong, label *byte) RV
	InitPIN          func(session SessionHandle, pin *byte, pinLen ULong) RV
	SetPIN           func(session SessionHandle, oldPin *byte, oldLen ULong, newPin *byte, newLen ULong) RV

	OpenSession       func(slot SlotID, flags Flags, application unsafe.Pointer, notify unsafe.Pointer, session *SessionHandle) RV
	CloseSession      func(session SessionHandle) RV
	CloseAllSessions  func(slot SlotID) RV
	GetSessionInfo    func(session SessionHandle, info *SessionInfo) RV
	GetOperationState func(session SessionHandle, state *byte, stateLen *ULong) RV
	SetOperationState func(session SessionHandle, state *byte, stateLen ULong, encryptionKey, authenticationKey ObjectHandle) RV
	Login             func(session SessionHandle, userType UserType, pin *byte, pinLen ULong) RV
	Logout            func(session SessionHandle) RV

	CreateObject      func(session SessionHandle, template *Attribute, count ULong, object *ObjectHandle) RV
	CopyObject        func(session SessionHandle, object ObjectHandle, template *Attribute, count ULong, newObject *ObjectHandle) RV
	DestroyObject     func(session SessionHandle, object ObjectHandle) RV
	GetObjectSize     func(session SessionHandle, object ObjectHandle, size *ULong) RV
	GetAttributeValue func(session SessionHandle, object ObjectHandle, template *Attribute, count ULong) RV
	SetAttributeValue func(session SessionHandle, object ObjectHandle, template *Attribute, count ULong) RV
	FindObjectsInit   func(session SessionHandle, template *Attribute, count ULong) RV
	FindObjects       func(session SessionHandle, objects *ObjectHandle, maxCount ULong, count *ULong) RV
	FindObjectsFinal  func(session SessionHandle) RV

	EncryptInit   func(session SessionHandle, mechanism *Mechanism, key ObjectHandle) RV
	Encrypt       func(session SessionHandle, data *byte, dataLen ULong, encryptedData *byte, encryptedDataLen *ULong) RV
	EncryptUpdate func(session SessionHandle, part *byte, partLen ULong, encryptedPart *byte, encryptedPartLen *ULong) RV
	EncryptFinal  func(session SessionHandle, lastEncryptedPart *byte, lastEncryptedPartLen *ULong) RV
	DecryptInit   func(session SessionHandle, mechanism *Mechanism, key ObjectHandle) RV
	Decrypt       func(session SessionHandle, encryptedData *byte, encryptedDataLen ULong, data *byte, dataLen *ULong) RV
	DecryptUpdate func(session SessionHandle, encryptedPart *byte, encryptedPartLen ULong, part *byte, partLen *ULong) RV
	DecryptFinal  func(session SessionHandle, lastPart *byte, lastPartLen *ULong) RV

	DigestInit   func(session SessionHandle, mechanism *Mechanism) RV
	Digest       func(session SessionHandle, data *byte, dataLen ULong, digest *byte, digestLen *ULong) RV
	DigestUpdate func(session SessionHandle, part *byte, partLen ULong) RV
	DigestKey    func(session SessionHandle, key ObjectHandle) RV
	DigestFinal  func(session SessionHandle, digest *byte, digestLen *ULong) RV

	SignInit          func(session SessionHandle, mechanism *Mechanism, key ObjectHandle) RV
	Sign              func(session SessionHandle, data *byte, dataLen ULong, signature *byte, signatureLen *ULong) RV
	SignUpdate        func(session SessionHandle, part *byte, partLen ULong) RV
	SignFinal         func(session SessionHandle, signature *byte, signatureLen *ULong) RV
	SignRecoverInit   func(session SessionHandle, mechanism *Mechanism, key ObjectHandle) RV
	SignRecover       func(session SessionHandle, data *byte, dataLen ULong, signature *byte, signatureLen *ULong) RV
	VerifyInit        func(session SessionHandle, mechanism *Mechanism, key ObjectHandle) RV
	Verify            func(session SessionHandle, data *byte, dataLen ULong, signature *byte, signatureLen ULong) RV
	VerifyUpdate      func(session SessionHandle, part *byte, partLen ULong) RV
	VerifyFinal       func(session SessionHandle, signature *byte, signatureLen ULong) RV
	VerifyRecoverInit func(session SessionHandle, mechanism *Mechanism, key ObjectHandle) RV
	VerifyRecover     func(session SessionHandle, signature *byte, signatureLen ULong, data *byte, dataLen *ULong) RV

	DigestEncryptUpdate func(session SessionHandle, part *byte, partLen ULong, encryptedPart *byte, encryptedPartLen *ULong) RV
	DecryptDigestUpdate func(session SessionHandle, encryptedPart *byte, encryptedPartLen ULong, part *byte, partLen *ULong) RV
	SignEncryptUpdate   func(session SessionHandle, part *byte, partLen ULong, encryptedPart *byte, encryptedPartLen *ULong) RV
	DecryptVerifyUpdate func(session SessionHandle, encryptedPart *byte, encryptedPartLen ULong, part *byte, partLen *ULong) RV

	GenerateKey     func(session SessionHandle, mechanism *Mechanism, template *Attribute, count ULong, key *ObjectHandle) RV
	GenerateKeyPair func(session SessionHandle, mechanism *Mechanism, publicKeyTemplate *Attribute, publicKeyAttributeCount ULong, privateKeyTemplate *Attribute, privateKeyAttributeCount ULong, publicKey, privateKey *ObjectHandle) RV
	WrapKey         func(session SessionHandle, mechanism *Mechanism, wrappingKey, key ObjectHandle, wrappedKey *byte, wrappedKeyLen *ULong) RV
	UnwrapKey       func(session SessionHandle, mechanism *Mechanism, unwrappingKey ObjectHandle, wrappedKey *byte, wrappedKeyLen ULong, template *Attribute, attributeCount ULong, key *ObjectHandle) RV
	DeriveKey       func(session SessionHandle, mechanism *Mechanism, baseKey ObjectHandle, template *Attribute, attributeCount ULong, key *ObjectHandle) RV

	SeedRandom     func(session SessionHandle, seed *byte, seedLen ULong) RV
	GenerateRandom func(session SessionHandle, randomData *byte, randomLen ULong) RV

	GetFunctionStatus func(session SessionHandle) RV
	CancelFunction    func(session SessionHandle) RV
	WaitForSlotEvent  func(flags Flags, slot *SlotID, reserved unsafe.Pointer) RV
}

// FunctionCount is the number of entry points in a FunctionList.
const FunctionCount = 68

// FunctionNames lists the C names of the FunctionList fields, in order.
var FunctionNames = [FunctionCount]string{
	"C_Initialize",
	"C_Finalize",
	"C_GetInfo",
	"C_GetFunctionList",
	"C_GetSlotList",
	"C_GetSlotInfo",
	"C_GetTokenInfo",
	"C_GetMechanismList",
	"C_GetMechanismInfo",
	"C_InitToken",
	"C_InitPIN",
	"C_SetPIN",
	"C_OpenSession",
	"C_CloseSession",
	"C_CloseAllSessions",
	"C_GetSessionInfo",
	"C_GetOperationState",
	"C_SetOperationState",
	"C_Login",
	"C_Logout",
	"C_CreateObject",
	"C_CopyObject",
	"C_DestroyObject",
	"C_GetObjectSize",
	"C_GetAttributeValue",
	"C_SetAttributeValue",
	"C_FindObjectsInit",
	"C_FindObjects",
	"C_FindObjectsFinal",
	"C_EncryptInit",
	"C_Encrypt",
	"C_EncryptUpdate",
	"C_EncryptFinal",
	"C_DecryptInit",
	"C_Decrypt",
	"C_DecryptUpdate",
	"C_DecryptFinal",
	"C_DigestInit",
	"C_Digest",
	"C_DigestUpdate",
	"C_DigestKey",
	"C_DigestFinal",
	"C_SignInit",
	"C_Sign",
	"C_SignUpdate",
	"C_SignFinal",
	"C_SignRecoverInit",
	"C_SignRecover",
	"C_VerifyInit",
	"C_Verify",
	"C_VerifyUpdate",
	"C_VerifyFinal",
	"C_VerifyRecoverInit",
	"C_VerifyRecover",
	"C_DigestEncryptUpdate",
	"C_DecryptDigestUpdate",
	"C_SignEncryptUpdate",
	"C_DecryptVerifyUpdate",
	"C_GenerateKey",
	"C_GenerateKeyPair",
	"C_WrapKey",
	"C_UnwrapKey",
	"C_DeriveKey",
	"C_SeedRandom",
	"C_GenerateRandom",
	"C_GetFunctionStatus",
	"C_CancelFunction",
	"C_WaitForSlotEvent",
}

var notSupported = []reflect.Value{reflect.ValueOf(CKR_FUNCTION_NOT_SUPPORTED)}

// FillNotSupported sets every nil function in fl to one that returns
// CKR_FUNCTION_NOT_SUPPORTED. It returns the names of the functions it filled.
func FillNotSupported(fl *FunctionList) (filled []string) {
	v := reflect.ValueOf(fl).Elem()
	for i := 1; i < v.NumField(); i++ {
		f := v.Field(i)
		if !f.IsNil() {
			continue
		}
		f.Set(reflect.MakeFunc(f.Type(), func([]reflect.Value) []reflect.Value { return notSupported }))
		filled = append(filled, FunctionNames[i-1])
	}
	return filled
}
