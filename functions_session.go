package p11trc

import (
	"unsafe"

	"github.com/peterbourgon/p11trc/ck"
	"github.com/peterbourgon/p11trc/internal/p11render"
)

func (p *Proxy) openSession(slot ck.SlotID, flags ck.Flags, application, notify unsafe.Pointer, session *ck.SessionHandle) ck.RV {
	c, fl := p.begin("C_OpenSession")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	c.printf(" slotID: %d", slot)
	c.printf(" flags: %d", flags)
	c.flags("  ", flags, sessionFlags)
	c.printf(" pApplication: %s", p11render.Pointer(application))
	c.printf(" Notify: %s", p11render.Pointer(notify))
	c.printf(" phSession: %s", addr(session))
	deref(c, " *phSession", session)

	rv := c.forward(func() ck.RV { return fl.OpenSession(slot, flags, application, notify, session) })
	if rv == ck.CKR_OK {
		c.output()
		c.printf(" phSession: %s", addr(session))
		deref(c, " *phSession", session)
	}
	return c.finish(rv)
}

func (p *Proxy) closeAllSessions(slot ck.SlotID) ck.RV {
	c, fl := p.begin("C_CloseAllSessions")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	c.printf(" slotID: %d", slot)

	rv := c.forward(func() ck.RV { return fl.CloseAllSessions(slot) })
	return c.finish(rv)
}

func (p *Proxy) getSessionInfo(h ck.SessionHandle, info *ck.SessionInfo) ck.RV {
	c, fl := p.begin("C_GetSessionInfo")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	c.printf(" hSession: %d", h)
	c.printf(" pInfo: %s", addr(info))

	rv := c.forward(func() ck.RV { return fl.GetSessionInfo(h, info) })
	if rv == ck.CKR_OK {
		c.output()
		c.printf(" pInfo: %s", addr(info))
		if info != nil {
			c.printf("  slotID: %d", info.SlotID)
			c.printf("  state: %d (%s)", info.State, info.State)
			c.printf("  flags: %d", info.Flags)
			c.flags("   ", info.Flags, sessionFlags)
			c.printf("  ulDeviceError: %d", info.DeviceError)
		}
	}
	return c.finish(rv)
}

func (p *Proxy) setOperationState(h ck.SessionHandle, state *byte, stateLen ck.ULong, encryptionKey, authenticationKey ck.ObjectHandle) ck.RV {
	c, fl := p.begin("C_SetOperationState")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	c.printf(" hSession: %d", h)
	c.input(names{in: "pOperationState", inLen: "ulOperationStateLen"}, state, stateLen)
	c.printf(" hEncryptionKey: %d", encryptionKey)
	c.printf(" hAuthenticationKey: %d", authenticationKey)

	rv := c.forward(func() ck.RV { return fl.SetOperationState(h, state, stateLen, encryptionKey, authenticationKey) })
	return c.finish(rv)
}

func (p *Proxy) login(h ck.SessionHandle, userType ck.UserType, pin *byte, pinLen ck.ULong) ck.RV {
	c, fl := p.begin("C_Login")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	c.printf(" hSession: %d", h)
	c.printf(" userType: %d (%s)", userType, userType)
	c.printf(" pPin: %s", addr(pin))
	c.pin(" *pPin", pin, pinLen)
	c.printf(" ulPinLen: %d", pinLen)

	rv := c.forward(func() ck.RV { return fl.Login(h, userType, pin, pinLen) })
	return c.finish(rv)
}
