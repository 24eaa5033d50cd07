package p11trc

import (
	"github.com/peterbourgon/p11trc/ck"
)

func (p *Proxy) createObject(h ck.SessionHandle, template *ck.Attribute, count ck.ULong, object *ck.ObjectHandle) ck.RV {
	c, fl := p.begin("C_CreateObject")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	c.printf(" hSession: %d", h)
	c.printf(" pTemplate: %s", addr(template))
	c.printf(" ulCount: %d", count)
	c.template(template, count)
	c.handle(" phObject", object)

	rv := c.forward(func() ck.RV { return fl.CreateObject(h, template, count, object) })
	if rv == ck.CKR_OK {
		c.output()
		c.handle(" phObject", object)
	}
	return c.finish(rv)
}

func (p *Proxy) copyObject(h ck.SessionHandle, object ck.ObjectHandle, template *ck.Attribute, count ck.ULong, newObject *ck.ObjectHandle) ck.RV {
	c, fl := p.begin("C_CopyObject")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	c.printf(" hSession: %d", h)
	c.printf(" hObject: %d", object)
	c.printf(" pTemplate: %s", addr(template))
	c.printf(" ulCount: %d", count)
	c.template(template, count)
	c.handle(" phNewObject", newObject)

	rv := c.forward(func() ck.RV { return fl.CopyObject(h, object, template, count, newObject) })
	if rv == ck.CKR_OK {
		c.output()
		c.handle(" phNewObject", newObject)
	}
	return c.finish(rv)
}

func (p *Proxy) destroyObject(h ck.SessionHandle, object ck.ObjectHandle) ck.RV {
	c, fl := p.begin("C_DestroyObject")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	c.printf(" hSession: %d", h)
	c.printf(" hObject: %d", object)

	rv := c.forward(func() ck.RV { return fl.DestroyObject(h, object) })
	return c.finish(rv)
}

func (p *Proxy) getObjectSize(h ck.SessionHandle, object ck.ObjectHandle, size *ck.ULong) ck.RV {
	c, fl := p.begin("C_GetObjectSize")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	c.printf(" hSession: %d", h)
	c.printf(" hObject: %d", object)
	c.printf(" pulSize: %s", addr(size))
	deref(c, " *pulSize", size)

	rv := c.forward(func() ck.RV { return fl.GetObjectSize(h, object, size) })
	if rv == ck.CKR_OK {
		c.output()
		c.printf(" pulSize: %s", addr(size))
		deref(c, " *pulSize", size)
	}
	return c.finish(rv)
}

// getAttributeValue describes its outputs for several failure statuses as
// well as success, because the provider fills in every attribute it can even
// when some of them fail.
func (p *Proxy) getAttributeValue(h ck.SessionHandle, object ck.ObjectHandle, template *ck.Attribute, count ck.ULong) ck.RV {
	c, fl := p.begin("C_GetAttributeValue")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	c.printf(" hSession: %d", h)
	c.printf(" hObject: %d", object)
	c.printf(" pTemplate: %s", addr(template))
	c.printf(" ulCount: %d", count)
	c.template(template, count)

	rv := c.forward(func() ck.RV { return fl.GetAttributeValue(h, object, template, count) })
	switch rv {
	case ck.CKR_OK, ck.CKR_ATTRIBUTE_SENSITIVE, ck.CKR_ATTRIBUTE_TYPE_INVALID, ck.CKR_BUFFER_TOO_SMALL:
		c.output()
		c.printf(" pTemplate: %s", addr(template))
		c.printf(" ulCount: %d", count)
		c.template(template, count)
	}
	return c.finish(rv)
}

func (p *Proxy) setAttributeValue(h ck.SessionHandle, object ck.ObjectHandle, template *ck.Attribute, count ck.ULong) ck.RV {
	c, fl := p.begin("C_SetAttributeValue")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	c.printf(" hSession: %d", h)
	c.printf(" hObject: %d", object)
	c.printf(" pTemplate: %s", addr(template))
	c.printf(" ulCount: %d", count)
	c.template(template, count)

	rv := c.forward(func() ck.RV { return fl.SetAttributeValue(h, object, template, count) })
	return c.finish(rv)
}

func (p *Proxy) findObjectsInit(h ck.SessionHandle, template *ck.Attribute, count ck.ULong) ck.RV {
	c, fl := p.begin("C_FindObjectsInit")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	c.printf(" hSession: %d", h)
	c.printf(" pTemplate: %s", addr(template))
	c.printf(" ulCount: %d", count)
	c.template(template, count)

	rv := c.forward(func() ck.RV { return fl.FindObjectsInit(h, template, count) })
	return c.finish(rv)
}

func (p *Proxy) findObjects(h ck.SessionHandle, objects *ck.ObjectHandle, maxCount ck.ULong, count *ck.ULong) ck.RV {
	c, fl := p.begin("C_FindObjects")
	if c == nil {
		return ck.CKR_GENERAL_ERROR
	}

	c.printf(" hSession: %d", h)
	c.printf(" phObject: %s", addr(objects))
	c.printf(" ulMaxObjectCount: %d", maxCount)
	c.printf(" pulObjectCount: %s", addr(count))
	deref(c, " *pulObjectCount", count)

	rv := c.forward(func() ck.RV { return fl.FindObjects(h, objects, maxCount, count) })
	if rv == ck.CKR_OK {
		c.output()
		c.printf(" phObject: %s", addr(objects))
		c.printf(" ulMaxObjectCount: %d", maxCount)
		c.printf(" pulObjectCount: %s", addr(count))
		deref(c, " *pulObjectCount", count)
		if count != nil && *count <= maxCount {
			list(c, "  *phObject", objects, *count, nil)
		}
	}
	return c.finish(rv)
}

// handle renders an object handle output argument.
func (c *call) handle(name string, p *ck.ObjectHandle) {
	c.printf("%s: %s", name, addr(p))
	deref(c, " *"+name[1:], p)
}
