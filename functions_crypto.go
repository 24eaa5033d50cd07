package p11trc

import (
	"github.com/peterbourgon/p11trc/ck"
)

func (p *Proxy) digestInit(h ck.SessionHandle, mech *ck.Mechanism) ck.RV {
	c, fl := p.begin("C_DigestInit")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	c.printf(" hSession: %d", h)
	c.mechanism(mech)

	rv := c.forward(func() ck.RV { return fl.DigestInit(h, mech) })
	return c.finish(rv)
}

func (p *Proxy) digestKey(h ck.SessionHandle, key ck.ObjectHandle) ck.RV {
	c, fl := p.begin("C_DigestKey")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	c.printf(" hSession: %d", h)
	c.printf(" hKey: %d", key)

	rv := c.forward(func() ck.RV { return fl.DigestKey(h, key) })
	return c.finish(rv)
}

func (p *Proxy) verify(h ck.SessionHandle, data *byte, dataLen ck.ULong, signature *byte, signatureLen ck.ULong) ck.RV {
	c, fl := p.begin("C_Verify")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	c.printf(" hSession: %d", h)
	c.input(names{in: "pData", inLen: "ulDataLen"}, data, dataLen)
	c.input(names{in: "pSignature", inLen: "ulSignatureLen"}, signature, signatureLen)

	rv := c.forward(func() ck.RV { return fl.Verify(h, data, dataLen, signature, signatureLen) })
	return c.finish(rv)
}

func (p *Proxy) generateKey(h ck.SessionHandle, mech *ck.Mechanism, template *ck.Attribute, count ck.ULong, key *ck.ObjectHandle) ck.RV {
	c, fl := p.begin("C_GenerateKey")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	c.printf(" hSession: %d", h)
	c.mechanism(mech)
	c.printf(" pTemplate: %s", addr(template))
	c.printf(" ulCount: %d", count)
	c.template(template, count)
	c.handle(" phKey", key)

	rv := c.forward(func() ck.RV { return fl.GenerateKey(h, mech, template, count, key) })
	if rv == ck.CKR_OK {
		c.output()
		c.handle(" phKey", key)
	}
	return c.finish(rv)
}

func (p *Proxy) generateKeyPair(
	h ck.SessionHandle,
	mech *ck.Mechanism,
	publicKeyTemplate *ck.Attribute, publicKeyAttributeCount ck.ULong,
	privateKeyTemplate *ck.Attribute, privateKeyAttributeCount ck.ULong,
	publicKey, privateKey *ck.ObjectHandle,
) ck.RV {
	c, fl := p.begin("C_GenerateKeyPair")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	c.printf(" hSession: %d", h)
	c.mechanism(mech)
	c.printf(" pPublicKeyTemplate: %s", addr(publicKeyTemplate))
	c.printf(" ulPublicKeyAttributeCount: %d", publicKeyAttributeCount)
	c.template(publicKeyTemplate, publicKeyAttributeCount)
	c.printf(" pPrivateKeyTemplate: %s", addr(privateKeyTemplate))
	c.printf(" ulPrivateKeyAttributeCount: %d", privateKeyAttributeCount)
	c.template(privateKeyTemplate, privateKeyAttributeCount)
	c.handle(" phPublicKey", publicKey)
	c.handle(" phPrivateKey", privateKey)

	rv := c.forward(func() ck.RV {
		return fl.GenerateKeyPair(h, mech, publicKeyTemplate, publicKeyAttributeCount, privateKeyTemplate, privateKeyAttributeCount, publicKey, privateKey)
	})
	if rv == ck.CKR_OK {
		c.output()
		c.handle(" phPublicKey", publicKey)
		c.handle(" phPrivateKey", privateKey)
	}
	return c.finish(rv)
}

func (p *Proxy) wrapKey(h ck.SessionHandle, mech *ck.Mechanism, wrappingKey, key ck.ObjectHandle, wrappedKey *byte, wrappedKeyLen *ck.ULong) ck.RV {
	c, fl := p.begin("C_WrapKey")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	n := names{out: "pWrappedKey", outLen: "pulWrappedKeyLen"}

	c.printf(" hSession: %d", h)
	c.mechanism(mech)
	c.printf(" hWrappingKey: %d", wrappingKey)
	c.printf(" hKey: %d", key)
	c.outputBuffer(n, wrappedKey, wrappedKeyLen, false)

	rv := c.forward(func() ck.RV { return fl.WrapKey(h, mech, wrappingKey, key, wrappedKey, wrappedKeyLen) })
	if rv == ck.CKR_OK {
		c.output()
		c.outputBuffer(n, wrappedKey, wrappedKeyLen, true)
	}
	return c.finish(rv)
}

func (p *Proxy) unwrapKey(h ck.SessionHandle, mech *ck.Mechanism, unwrappingKey ck.ObjectHandle, wrappedKey *byte, wrappedKeyLen ck.ULong, template *ck.Attribute, count ck.ULong, key *ck.ObjectHandle) ck.RV {
	c, fl := p.begin("C_UnwrapKey")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	c.printf(" hSession: %d", h)
	c.mechanism(mech)
	c.printf(" hUnwrappingKey: %d", unwrappingKey)
	c.input(names{in: "pWrappedKey", inLen: "ulWrappedKeyLen"}, wrappedKey, wrappedKeyLen)
	c.printf(" pTemplate: %s", addr(template))
	c.printf(" ulAttributeCount: %d", count)
	c.template(template, count)
	c.handle(" phKey", key)

	rv := c.forward(func() ck.RV {
		return fl.UnwrapKey(h, mech, unwrappingKey, wrappedKey, wrappedKeyLen, template, count, key)
	})
	if rv == ck.CKR_OK {
		c.output()
		c.handle(" phKey", key)
	}
	return c.finish(rv)
}

func (p *Proxy) deriveKey(h ck.SessionHandle, mech *ck.Mechanism, baseKey ck.ObjectHandle, template *ck.Attribute, count ck.ULong, key *ck.ObjectHandle) ck.RV {
	c, fl := p.begin("C_DeriveKey")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	c.printf(" hSession: %d", h)
	c.mechanism(mech)
	c.printf(" hBaseKey: %d", baseKey)
	c.printf(" pTemplate: %s", addr(template))
	c.printf(" ulAttributeCount: %d", count)
	c.template(template, count)
	c.handle(" phKey", key)

	rv := c.forward(func() ck.RV { return fl.DeriveKey(h, mech, baseKey, template, count, key) })
	if rv == ck.CKR_OK {
		c.output()
		c.handle(" phKey", key)
	}
	return c.finish(rv)
}

func (p *Proxy) generateRandom(h ck.SessionHandle, data *byte, n ck.ULong) ck.RV {
	c, fl := p.begin("C_GenerateRandom")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	buf := names{in: "RandomData", inLen: "ulRandomLen"}

	c.printf(" hSession: %d", h)
	c.input(buf, data, n)

	rv := c.forward(func() ck.RV { return fl.GenerateRandom(h, data, n) })
	if rv == ck.CKR_OK {
		c.output()
		c.input(buf, data, n)
	}
	return c.finish(rv)
}
