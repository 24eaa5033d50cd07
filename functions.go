package p11trc

import (
	"github.com/peterbourgon/p11trc/ck"
)

// functionList builds the proxy's table. Every function is a trampoline that
// loads the delegate if necessary, traces the call, and forwards it.
func (p *Proxy) functionList() ck.FunctionList {
	return ck.FunctionList{
		Version: DefaultVersion,

		Initialize:       p.initialize,
		Finalize:         p.finalize,
		GetInfo:          p.getInfo,
		GetFunctionList:  p.getFunctionList,
		GetSlotList:      p.getSlotList,
		GetSlotInfo:      p.getSlotInfo,
		GetTokenInfo:     p.getTokenInfo,
		GetMechanismList: p.getMechanismList,
		GetMechanismInfo: p.getMechanismInfo,
		InitToken:        p.initToken,
		InitPIN:          p.initPIN,
		SetPIN:           p.setPIN,

		OpenSession:       p.openSession,
		CloseSession:      p.sessionOnly("C_CloseSession", func(fl *ck.FunctionList) sessionFunc { return fl.CloseSession }),
		CloseAllSessions:  p.closeAllSessions,
		GetSessionInfo:    p.getSessionInfo,
		GetOperationState: p.final("C_GetOperationState", names{out: "pOperationState", outLen: "pulOperationStateLen"}, func(fl *ck.FunctionList) finalFunc { return fl.GetOperationState }),
		SetOperationState: p.setOperationState,
		Login:             p.login,
		Logout:            p.sessionOnly("C_Logout", func(fl *ck.FunctionList) sessionFunc { return fl.Logout }),

		CreateObject:      p.createObject,
		CopyObject:        p.copyObject,
		DestroyObject:     p.destroyObject,
		GetObjectSize:     p.getObjectSize,
		GetAttributeValue: p.getAttributeValue,
		SetAttributeValue: p.setAttributeValue,
		FindObjectsInit:   p.findObjectsInit,
		FindObjects:       p.findObjects,
		FindObjectsFinal:  p.sessionOnly("C_FindObjectsFinal", func(fl *ck.FunctionList) sessionFunc { return fl.FindObjectsFinal }),

		EncryptInit:   p.cryptInit("C_EncryptInit", func(fl *ck.FunctionList) initFunc { return fl.EncryptInit }),
		Encrypt:       p.transform("C_Encrypt", names{in: "pData", inLen: "ulDataLen", out: "pEncryptedData", outLen: "pulEncryptedDataLen"}, func(fl *ck.FunctionList) transformFunc { return fl.Encrypt }),
		EncryptUpdate: p.transform("C_EncryptUpdate", names{in: "pPart", inLen: "ulPartLen", out: "pEncryptedPart", outLen: "pulEncryptedPartLen"}, func(fl *ck.FunctionList) transformFunc { return fl.EncryptUpdate }),
		EncryptFinal:  p.final("C_EncryptFinal", names{out: "pLastEncryptedPart", outLen: "pulLastEncryptedPartLen"}, func(fl *ck.FunctionList) finalFunc { return fl.EncryptFinal }),
		DecryptInit:   p.cryptInit("C_DecryptInit", func(fl *ck.FunctionList) initFunc { return fl.DecryptInit }),
		Decrypt:       p.transform("C_Decrypt", names{in: "pEncryptedData", inLen: "ulEncryptedDataLen", out: "pData", outLen: "pulDataLen"}, func(fl *ck.FunctionList) transformFunc { return fl.Decrypt }),
		DecryptUpdate: p.transform("C_DecryptUpdate", names{in: "pEncryptedPart", inLen: "ulEncryptedPartLen", out: "pPart", outLen: "pulPartLen"}, func(fl *ck.FunctionList) transformFunc { return fl.DecryptUpdate }),
		DecryptFinal:  p.final("C_DecryptFinal", names{out: "pLastPart", outLen: "pulLastPartLen"}, func(fl *ck.FunctionList) finalFunc { return fl.DecryptFinal }),

		DigestInit:   p.digestInit,
		Digest:       p.transform("C_Digest", names{in: "pData", inLen: "ulDataLen", out: "pDigest", outLen: "pulDigestLen"}, func(fl *ck.FunctionList) transformFunc { return fl.Digest }),
		DigestUpdate: p.update("C_DigestUpdate", names{in: "pPart", inLen: "ulPartLen"}, func(fl *ck.FunctionList) updateFunc { return fl.DigestUpdate }),
		DigestKey:    p.digestKey,
		DigestFinal:  p.final("C_DigestFinal", names{out: "pDigest", outLen: "pulDigestLen"}, func(fl *ck.FunctionList) finalFunc { return fl.DigestFinal }),

		SignInit:          p.cryptInit("C_SignInit", func(fl *ck.FunctionList) initFunc { return fl.SignInit }),
		Sign:              p.transform("C_Sign", names{in: "pData", inLen: "ulDataLen", out: "pSignature", outLen: "pulSignatureLen"}, func(fl *ck.FunctionList) transformFunc { return fl.Sign }),
		SignUpdate:        p.update("C_SignUpdate", names{in: "pPart", inLen: "ulPartLen"}, func(fl *ck.FunctionList) updateFunc { return fl.SignUpdate }),
		SignFinal:         p.final("C_SignFinal", names{out: "pSignature", outLen: "pulSignatureLen"}, func(fl *ck.FunctionList) finalFunc { return fl.SignFinal }),
		SignRecoverInit:   p.cryptInit("C_SignRecoverInit", func(fl *ck.FunctionList) initFunc { return fl.SignRecoverInit }),
		SignRecover:       p.transform("C_SignRecover", names{in: "pData", inLen: "ulDataLen", out: "pSignature", outLen: "pulSignatureLen"}, func(fl *ck.FunctionList) transformFunc { return fl.SignRecover }),
		VerifyInit:        p.cryptInit("C_VerifyInit", func(fl *ck.FunctionList) initFunc { return fl.VerifyInit }),
		Verify:            p.verify,
		VerifyUpdate:      p.update("C_VerifyUpdate", names{in: "pPart", inLen: "ulPartLen"}, func(fl *ck.FunctionList) updateFunc { return fl.VerifyUpdate }),
		VerifyFinal:       p.update("C_VerifyFinal", names{in: "pSignature", inLen: "ulSignatureLen"}, func(fl *ck.FunctionList) updateFunc { return fl.VerifyFinal }),
		VerifyRecoverInit: p.cryptInit("C_VerifyRecoverInit", func(fl *ck.FunctionList) initFunc { return fl.VerifyRecoverInit }),
		VerifyRecover:     p.transform("C_VerifyRecover", names{in: "pSignature", inLen: "ulSignatureLen", out: "pData", outLen: "pulDataLen"}, func(fl *ck.FunctionList) transformFunc { return fl.VerifyRecover }),

		DigestEncryptUpdate: p.transform("C_DigestEncryptUpdate", names{in: "pPart", inLen: "ulPartLen", out: "pEncryptedPart", outLen: "pulEncryptedPartLen"}, func(fl *ck.FunctionList) transformFunc { return fl.DigestEncryptUpdate }),
		DecryptDigestUpdate: p.transform("C_DecryptDigestUpdate", names{in: "pEncryptedPart", inLen: "ulEncryptedPartLen", out: "pPart", outLen: "pulPartLen"}, func(fl *ck.FunctionList) transformFunc { return fl.DecryptDigestUpdate }),
		SignEncryptUpdate:   p.transform("C_SignEncryptUpdate", names{in: "pPart", inLen: "ulPartLen", out: "pEncryptedPart", outLen: "pulEncryptedPartLen"}, func(fl *ck.FunctionList) transformFunc { return fl.SignEncryptUpdate }),
		DecryptVerifyUpdate: p.transform("C_DecryptVerifyUpdate", names{in: "pEncryptedPart", inLen: "ulEncryptedPartLen", out: "pPart", outLen: "pulPartLen"}, func(fl *ck.FunctionList) transformFunc { return fl.DecryptVerifyUpdate }),

		GenerateKey:     p.generateKey,
		GenerateKeyPair: p.generateKeyPair,
		WrapKey:         p.wrapKey,
		UnwrapKey:       p.unwrapKey,
		DeriveKey:       p.deriveKey,

		SeedRandom:     p.update("C_SeedRandom", names{in: "pSeed", inLen: "ulSeedLen"}, func(fl *ck.FunctionList) updateFunc { return fl.SeedRandom }),
		GenerateRandom: p.generateRandom,

		GetFunctionStatus: p.sessionOnly("C_GetFunctionStatus", func(fl *ck.FunctionList) sessionFunc { return fl.GetFunctionStatus }),
		CancelFunction:    p.sessionOnly("C_CancelFunction", func(fl *ck.FunctionList) sessionFunc { return fl.CancelFunction }),
		WaitForSlotEvent:  p.waitForSlotEvent,
	}
}

//
//
//

// Many functions share a signature and a trace format, differing only in
// their names. Each shape below produces trampolines for one such family.

type (
	sessionFunc   func(session ck.SessionHandle) ck.RV
	initFunc      func(session ck.SessionHandle, mechanism *ck.Mechanism, key ck.ObjectHandle) ck.RV
	updateFunc    func(session ck.SessionHandle, in *byte, inLen ck.ULong) ck.RV
	finalFunc     func(session ck.SessionHandle, out *byte, outLen *ck.ULong) ck.RV
	transformFunc func(session ck.SessionHandle, in *byte, inLen ck.ULong, out *byte, outLen *ck.ULong) ck.RV
)

// names of the buffer arguments of a function.
type names struct {
	in, inLen   string // input buffer and its length
	out, outLen string // output buffer and the pointer to its length
}

func (p *Proxy) sessionOnly(name string, pick func(*ck.FunctionList) sessionFunc) sessionFunc {
	return func(h ck.SessionHandle) ck.RV {
		c, fl := p.begin(name)
		if c == nil {
			return ck.CKR_GENERAL_ERROR
		}

		c.printf(" hSession: %d", h)

		rv := c.forward(func() ck.RV { return pick(fl)(h) })
		return c.finish(rv)
	}
}

func (p *Proxy) cryptInit(name string, pick func(*ck.FunctionList) initFunc) initFunc {
	return func(h ck.SessionHandle, mech *ck.Mechanism, key ck.ObjectHandle) ck.RV {
		c, fl := p.begin(name)
		if c == nil {
			return ck.CKR_GENERAL_ERROR
		}

		c.printf(" hSession: %d", h)
		c.mechanism(mech)
		c.printf(" hKey: %d", key)

		rv := c.forward(func() ck.RV { return pick(fl)(h, mech, key) })
		return c.finish(rv)
	}
}

func (p *Proxy) update(name string, n names, pick func(*ck.FunctionList) updateFunc) updateFunc {
	return func(h ck.SessionHandle, in *byte, inLen ck.ULong) ck.RV {
		c, fl := p.begin(name)
		if c == nil {
			return ck.CKR_GENERAL_ERROR
		}

		c.printf(" hSession: %d", h)
		c.input(n, in, inLen)

		rv := c.forward(func() ck.RV { return pick(fl)(h, in, inLen) })
		return c.finish(rv)
	}
}

func (p *Proxy) final(name string, n names, pick func(*ck.FunctionList) finalFunc) finalFunc {
	return func(h ck.SessionHandle, out *byte, outLen *ck.ULong) ck.RV {
		c, fl := p.begin(name)
		if c == nil {
			return ck.CKR_GENERAL_ERROR
		}

		c.printf(" hSession: %d", h)
		c.outputBuffer(n, out, outLen, false)

		rv := c.forward(func() ck.RV { return pick(fl)(h, out, outLen) })
		if rv == ck.CKR_OK {
			c.output()
			c.outputBuffer(n, out, outLen, true)
		}
		return c.finish(rv)
	}
}

func (p *Proxy) transform(name string, n names, pick func(*ck.FunctionList) transformFunc) transformFunc {
	return func(h ck.SessionHandle, in *byte, inLen ck.ULong, out *byte, outLen *ck.ULong) ck.RV {
		c, fl := p.begin(name)
		if c == nil {
			return ck.CKR_GENERAL_ERROR
		}

		c.printf(" hSession: %d", h)
		c.input(n, in, inLen)
		c.outputBuffer(n, out, outLen, false)

		rv := c.forward(func() ck.RV { return pick(fl)(h, in, inLen, out, outLen) })
		if rv == ck.CKR_OK {
			c.output()
			c.outputBuffer(n, out, outLen, true)
		}
		return c.finish(rv)
	}
}

// input renders an input buffer: its address, contents, and length.
func (c *call) input(n names, in *byte, inLen ck.ULong) {
	c.printf(" %s: %s", n.in, addr(in))
	c.bytes(" *"+n.in, in, inLen)
	c.printf(" %s: %d", n.inLen, inLen)
}

// outputBuffer renders an output buffer and its length pointer. Before the
// call only the length is meaningful; after it, the contents are too.
func (c *call) outputBuffer(n names, out *byte, outLen *ck.ULong, contents bool) {
	c.printf(" %s: %s", n.out, addr(out))
	c.printf(" %s: %s", n.outLen, addr(outLen))
	if contents && outLen != nil {
		c.bytes(" *"+n.out, out, *outLen)
	}
	deref(c, " *"+n.outLen, outLen)
}
