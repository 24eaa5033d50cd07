package p11trc

import (
	"unsafe"

	"github.com/peterbourgon/p11trc/ck"
	"github.com/peterbourgon/p11trc/internal/p11render"
)

func (p *Proxy) initialize(initArgs unsafe.Pointer) ck.RV {
	c, fl := p.begin("C_Initialize")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	c.printf(" pInitArgs: %s", p11render.Pointer(initArgs))
	if initArgs != nil {
		args := (*ck.InitializeArgs)(initArgs)
		c.printf("  CreateMutex: %s", p11render.Pointer(args.CreateMutex))
		c.printf("  DestroyMutex: %s", p11render.Pointer(args.DestroyMutex))
		c.printf("  LockMutex: %s", p11render.Pointer(args.LockMutex))
		c.printf("  UnlockMutex: %s", p11render.Pointer(args.UnlockMutex))
		c.printf("  Flags: %d", args.Flags)
		c.flags("   ", args.Flags, initializeFlags)
		c.printf("  pReserved: %s", p11render.Pointer(args.Reserved))
	}

	rv := c.forward(func() ck.RV { return fl.Initialize(initArgs) })
	return c.finish(rv)
}

func (p *Proxy) finalize(reserved unsafe.Pointer) ck.RV {
	c, fl := p.begin("C_Finalize")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	c.printf(" pReserved: %s", p11render.Pointer(reserved))

	rv := c.forward(func() ck.RV { return fl.Finalize(reserved) })
	return c.finish(rv)
}

func (p *Proxy) getInfo(info *ck.Info) ck.RV {
	c, fl := p.begin("C_GetInfo")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	c.printf(" pInfo: %s", addr(info))

	rv := c.forward(func() ck.RV { return fl.GetInfo(info) })
	if rv == ck.CKR_OK {
		c.output()
		c.printf(" pInfo: %s", addr(info))
		if info != nil {
			c.version("  cryptokiVersion", info.CryptokiVersion)
			c.printf("  manufacturerID: %s", p11render.Field(info.ManufacturerID[:]))
			c.printf("  flags: %d", info.Flags)
			c.printf("  libraryDescription: %s", p11render.Field(info.LibraryDescription[:]))
			c.version("  libraryVersion", info.LibraryVersion)
		}
	}
	return c.finish(rv)
}

// getFunctionList is answered by the proxy itself, so that a caller who asks
// for the table through the table keeps using the proxy.
func (p *Proxy) getFunctionList(list **ck.FunctionList) ck.RV {
	c, _ := p.begin("C_GetFunctionList")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	c.printf(" ppFunctionList: %s", addr(list))

	rv := c.forward(func() ck.RV {
		if list == nil {
			return ck.CKR_ARGUMENTS_BAD
		}
		*list = &p.table
		return ck.CKR_OK
	})
	if rv == ck.CKR_OK {
		c.output()
		c.printf(" Note: Returning function list of %s", Name)
	}
	return c.finish(rv)
}

func (p *Proxy) getSlotList(tokenPresent ck.Bool, slotList *ck.SlotID, count *ck.ULong) ck.RV {
	c, fl := p.begin("C_GetSlotList")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	c.printf(" tokenPresent: %d", tokenPresent)
	c.printf(" pSlotList: %s", addr(slotList))
	c.printf(" pulCount: %s", addr(count))
	deref(c, " *pulCount", count)

	rv := c.forward(func() ck.RV { return fl.GetSlotList(tokenPresent, slotList, count) })
	if rv == ck.CKR_OK {
		c.output()
		c.printf(" pSlotList: %s", addr(slotList))
		if count != nil {
			list(c, " pSlotList", slotList, *count, nil)
		}
		c.printf(" pulCount: %s", addr(count))
		deref(c, " *pulCount", count)
	}
	return c.finish(rv)
}

func (p *Proxy) getSlotInfo(slot ck.SlotID, info *ck.SlotInfo) ck.RV {
	c, fl := p.begin("C_GetSlotInfo")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	c.printf(" slotID: %d", slot)
	c.printf(" pInfo: %s", addr(info))

	rv := c.forward(func() ck.RV { return fl.GetSlotInfo(slot, info) })
	if rv == ck.CKR_OK {
		c.output()
		c.printf(" pInfo: %s", addr(info))
		if info != nil {
			c.printf("  slotDescription: %s", p11render.Field(info.SlotDescription[:]))
			c.printf("  manufacturerID: %s", p11render.Field(info.ManufacturerID[:]))
			c.printf("  flags: %d", info.Flags)
			c.flags("   ", info.Flags, slotFlags)
			c.version("  hardwareVersion", info.HardwareVersion)
			c.version("  firmwareVersion", info.FirmwareVersion)
		}
	}
	return c.finish(rv)
}

func (p *Proxy) getTokenInfo(slot ck.SlotID, info *ck.TokenInfo) ck.RV {
	c, fl := p.begin("C_GetTokenInfo")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	c.printf(" slotID: %d", slot)
	c.printf(" pInfo: %s", addr(info))

	rv := c.forward(func() ck.RV { return fl.GetTokenInfo(slot, info) })
	if rv == ck.CKR_OK {
		c.output()
		c.printf(" pInfo: %s", addr(info))
		if info != nil {
			c.printf("  label: %s", p11render.Field(info.Label[:]))
			c.printf("  manufacturerID: %s", p11render.Field(info.ManufacturerID[:]))
			c.printf("  model: %s", p11render.Field(info.Model[:]))
			c.printf("  serialNumber: %s", p11render.Field(info.SerialNumber[:]))
			c.printf("  flags: %d", info.Flags)
			c.flags("   ", info.Flags, tokenFlags)
			c.printf("  ulMaxSessionCount: %d", info.MaxSessionCount)
			c.printf("  ulSessionCount: %d", info.SessionCount)
			c.printf("  ulMaxRwSessionCount: %d", info.MaxRwSessionCount)
			c.printf("  ulRwSessionCount: %d", info.RwSessionCount)
			c.printf("  ulMaxPinLen: %d", info.MaxPinLen)
			c.printf("  ulMinPinLen: %d", info.MinPinLen)
			c.printf("  ulTotalPublicMemory: %d", info.TotalPublicMemory)
			c.printf("  ulFreePublicMemory: %d", info.FreePublicMemory)
			c.printf("  ulTotalPrivateMemory: %d", info.TotalPrivateMemory)
			c.printf("  ulFreePrivateMemory: %d", info.FreePrivateMemory)
			c.version("  hardwareVersion", info.HardwareVersion)
			c.version("  firmwareVersion", info.FirmwareVersion)
			c.printf("  utcTime: %s", p11render.Field(info.UTCTime[:]))
		}
	}
	return c.finish(rv)
}

func (p *Proxy) getMechanismList(slot ck.SlotID, mechanismList *ck.MechanismType, count *ck.ULong) ck.RV {
	c, fl := p.begin("C_GetMechanismList")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	c.printf(" slotID: %d", slot)
	c.printf(" pMechanismList: %s", addr(mechanismList))
	c.printf(" pulCount: %s", addr(count))
	deref(c, " *pulCount", count)

	rv := c.forward(func() ck.RV { return fl.GetMechanismList(slot, mechanismList, count) })
	if rv == ck.CKR_OK {
		c.output()
		c.printf(" pMechanismList: %s", addr(mechanismList))
		if count != nil {
			list(c, "  pMechanismList", mechanismList, *count, ck.MechanismType.String)
		}
		c.printf(" pulCount: %s", addr(count))
		deref(c, " *pulCount", count)
	}
	return c.finish(rv)
}

func (p *Proxy) getMechanismInfo(slot ck.SlotID, mechanism ck.MechanismType, info *ck.MechanismInfo) ck.RV {
	c, fl := p.begin("C_GetMechanismInfo")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	c.printf(" slotID: %d", slot)
	c.printf(" type: %d (%s)", mechanism, mechanism)
	c.printf(" pInfo: %s", addr(info))

	rv := c.forward(func() ck.RV { return fl.GetMechanismInfo(slot, mechanism, info) })
	if rv == ck.CKR_OK {
		c.output()
		c.printf(" pInfo: %s", addr(info))
		if info != nil {
			c.printf("  ulMinKeySize: %d", info.MinKeySize)
			c.printf("  ulMaxKeySize: %d", info.MaxKeySize)
			c.printf("  flags: %d", info.Flags)
			c.flags("   ", info.Flags, mechanismFlags)
		}
	}
	return c.finish(rv)
}

// labelSize is the size of a token label, which is blank padded rather than
// NUL terminated.
const labelSize = 32

func (p *Proxy) initToken(slot ck.SlotID, pin *byte, pinLen ck.ULong, label *byte) ck.RV {
	c, fl := p.begin("C_InitToken")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	c.printf(" slotID: %d", slot)
	c.printf(" pPin: %s", addr(pin))
	c.pin(" *pPin", pin, pinLen)
	c.printf(" ulPinLen: %d", pinLen)
	c.printf(" pLabel: %s", addr(label))
	c.text(" *pLabel", label, labelSize)

	rv := c.forward(func() ck.RV { return fl.InitToken(slot, pin, pinLen, label) })
	return c.finish(rv)
}

func (p *Proxy) initPIN(h ck.SessionHandle, pin *byte, pinLen ck.ULong) ck.RV {
	c, fl := p.begin("C_InitPIN")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	c.printf(" hSession: %d", h)
	c.printf(" pPin: %s", addr(pin))
	c.pin(" *pPin", pin, pinLen)
	c.printf(" ulPinLen: %d", pinLen)

	rv := c.forward(func() ck.RV { return fl.InitPIN(h, pin, pinLen) })
	return c.finish(rv)
}

func (p *Proxy) setPIN(h ck.SessionHandle, oldPin *byte, oldLen ck.ULong, newPin *byte, newLen ck.ULong) ck.RV {
	c, fl := p.begin("C_SetPIN")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	c.printf(" hSession: %d", h)
	c.printf(" pOldPin: %s", addr(oldPin))
	c.pin(" *pOldPin", oldPin, oldLen)
	c.printf(" ulOldLen: %d", oldLen)
	c.printf(" pNewPin: %s", addr(newPin))
	c.pin(" *pNewPin", newPin, newLen)
	c.printf(" ulNewLen: %d", newLen)

	rv := c.forward(func() ck.RV { return fl.SetPIN(h, oldPin, oldLen, newPin, newLen) })
	return c.finish(rv)
}

func (p *Proxy) waitForSlotEvent(flags ck.Flags, slot *ck.SlotID, reserved unsafe.Pointer) ck.RV {
	c, fl := p.begin("C_WaitForSlotEvent")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	c.printf(" flags: %d", flags)
	c.flags("  ", flags, waitFlags)
	c.printf(" pSlot: %s", addr(slot))
	c.printf(" pReserved: %s", p11render.Pointer(reserved))

	rv := c.forward(func() ck.RV { return fl.WaitForSlotEvent(flags, slot, reserved) })
	if rv == ck.CKR_OK {
		c.output()
		c.printf(" pSlot: %s", addr(slot))
		deref(c, " *pSlot", slot)
	}
	return c.finish(rv)
}

func (c *call) version(name string, v ck.Version) {
	c.printf("%s:", name)
	c.printf("   major: %d", v.Major)
	c.printf("   minor: %d", v.Minor)
}
