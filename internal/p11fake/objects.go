package p11fake

import (
	"bytes"
	"unsafe"

	"github.com/peterbourgon/p11trc/ck"
)

func (p *Provider) createObject(h ck.SessionHandle, template *ck.Attribute, count ck.ULong, handle *ck.ObjectHandle) ck.RV {
	if handle == nil || (template == nil && count > 0) {
		return ck.CKR_ARGUMENTS_BAD
	}

	obj := &object{attrs: map[ck.AttributeType][]byte{}}
	for _, a := range ck.AttributeSlice(template, count) {
		if a.Value == nil && a.ValueLen > 0 {
			return ck.CKR_ATTRIBUTE_VALUE_INVALID
		}
		obj.attrs[a.Type] = valueOf(a)
	}

	p.mtx.Lock()
	defer p.mtx.Unlock()

	if _, ok := p.sessions[h]; !ok {
		return ck.CKR_SESSION_HANDLE_INVALID
	}

	oh := p.nextObject
	p.nextObject++
	p.objects[oh] = obj
	*handle = oh
	return ck.CKR_OK
}

func (p *Provider) destroyObject(h ck.SessionHandle, oh ck.ObjectHandle) ck.RV {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if _, ok := p.sessions[h]; !ok {
		return ck.CKR_SESSION_HANDLE_INVALID
	}
	if _, ok := p.objects[oh]; !ok {
		return ck.CKR_OBJECT_HANDLE_INVALID
	}
	delete(p.objects, oh)
	return ck.CKR_OK
}

// getAttributeValue follows the PKCS#11 rules: every attribute in the
// template is processed, and the returned status reflects the last problem.
// Attributes whose values are sensitive, missing, or too large for the
// supplied buffer get CK_UNAVAILABLE_INFORMATION as their length.
func (p *Provider) getAttributeValue(h ck.SessionHandle, oh ck.ObjectHandle, template *ck.Attribute, count ck.ULong) ck.RV {
	if template == nil && count > 0 {
		return ck.CKR_ARGUMENTS_BAD
	}

	p.mtx.Lock()
	defer p.mtx.Unlock()

	if _, ok := p.sessions[h]; !ok {
		return ck.CKR_SESSION_HANDLE_INVALID
	}
	obj, ok := p.objects[oh]
	if !ok {
		return ck.CKR_OBJECT_HANDLE_INVALID
	}

	rv := ck.CKR_OK
	attrs := ck.AttributeSlice(template, count)
	for i := range attrs {
		a := &attrs[i]

		val, ok := obj.attrs[a.Type]
		switch {
		case !ok:
			a.ValueLen = ck.CK_UNAVAILABLE_INFORMATION
			rv = ck.CKR_ATTRIBUTE_TYPE_INVALID
		case obj.sensitive(a.Type):
			a.ValueLen = ck.CK_UNAVAILABLE_INFORMATION
			rv = ck.CKR_ATTRIBUTE_SENSITIVE
		case a.Value == nil:
			a.ValueLen = ck.ULong(len(val))
		case a.ValueLen < ck.ULong(len(val)):
			a.ValueLen = ck.CK_UNAVAILABLE_INFORMATION
			rv = ck.CKR_BUFFER_TOO_SMALL
		default:
			if len(val) > 0 {
				copy(unsafe.Slice((*byte)(a.Value), len(val)), val)
			}
			a.ValueLen = ck.ULong(len(val))
		}
	}
	return rv
}

func (o *object) sensitive(t ck.AttributeType) bool {
	if t != ck.CKA_VALUE {
		return false
	}
	v, ok := o.attrs[ck.CKA_SENSITIVE]
	return ok && len(v) == 1 && v[0] != 0
}

func (p *Provider) findObjectsInit(h ck.SessionHandle, template *ck.Attribute, count ck.ULong) ck.RV {
	if template == nil && count > 0 {
		return ck.CKR_ARGUMENTS_BAD
	}

	p.mtx.Lock()
	defer p.mtx.Unlock()

	s, ok := p.sessions[h]
	if !ok {
		return ck.CKR_SESSION_HANDLE_INVALID
	}
	if s.finding {
		return ck.CKR_OPERATION_ACTIVE
	}

	match := ck.AttributeSlice(template, count)
	s.finding, s.found = true, nil
	for oh, obj := range p.objects {
		if obj.matches(match) {
			s.found = append(s.found, oh)
		}
	}
	return ck.CKR_OK
}

func (o *object) matches(template []ck.Attribute) bool {
	for _, a := range template {
		v, ok := o.attrs[a.Type]
		if !ok || !bytes.Equal(v, valueOf(a)) {
			return false
		}
	}
	return true
}

func (p *Provider) findObjects(h ck.SessionHandle, objects *ck.ObjectHandle, max ck.ULong, count *ck.ULong) ck.RV {
	if count == nil || (objects == nil && max > 0) {
		return ck.CKR_ARGUMENTS_BAD
	}

	p.mtx.Lock()
	defer p.mtx.Unlock()

	s, ok := p.sessions[h]
	if !ok {
		return ck.CKR_SESSION_HANDLE_INVALID
	}
	if !s.finding {
		return ck.CKR_OPERATION_NOT_INITIALIZED
	}

	n := ck.ULong(len(s.found))
	if n > max {
		n = max
	}
	if n > 0 {
		copy(unsafe.Slice(objects, n), s.found[:n])
	}
	s.found = s.found[n:]
	*count = n
	return ck.CKR_OK
}

func (p *Provider) findObjectsFinal(h ck.SessionHandle) ck.RV {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	s, ok := p.sessions[h]
	if !ok {
		return ck.CKR_SESSION_HANDLE_INVALID
	}
	if !s.finding {
		return ck.CKR_OPERATION_NOT_INITIALIZED
	}
	s.finding, s.found = false, nil
	return ck.CKR_OK
}

func valueOf(a ck.Attribute) []byte {
	if a.Value == nil || a.ValueLen == 0 {
		return []byte{}
	}
	return bytes.Clone(unsafe.Slice((*byte)(a.Value), a.ValueLen))
}

//
//
//

func (p *Provider) digestInit(h ck.SessionHandle, mech *ck.Mechanism) ck.RV {
	if mech == nil {
		return ck.CKR_ARGUMENTS_BAD
	}

	p.mtx.Lock()
	defer p.mtx.Unlock()

	s, ok := p.sessions[h]
	if !ok {
		return ck.CKR_SESSION_HANDLE_INVALID
	}
	if s.digest != nil {
		return ck.CKR_OPERATION_ACTIVE
	}

	d := newHash(mech.Mechanism)
	if d == nil {
		return ck.CKR_MECHANISM_INVALID
	}
	s.digest = d
	return ck.CKR_OK
}

func (p *Provider) digest(h ck.SessionHandle, data *byte, dataLen ck.ULong, out *byte, outLen *ck.ULong) ck.RV {
	if data == nil && dataLen > 0 {
		return ck.CKR_ARGUMENTS_BAD
	}

	p.mtx.Lock()
	defer p.mtx.Unlock()

	s, rv := p.digestSession(h)
	if rv != ck.CKR_OK {
		return rv
	}

	if rv := checkOutput(s.digest.Size(), out, outLen); rv != ck.CKR_OK || out == nil {
		return rv
	}

	if dataLen > 0 {
		s.digest.Write(unsafe.Slice(data, dataLen))
	}
	return s.finish(out, outLen)
}

func (p *Provider) digestUpdate(h ck.SessionHandle, part *byte, partLen ck.ULong) ck.RV {
	if part == nil && partLen > 0 {
		return ck.CKR_ARGUMENTS_BAD
	}

	p.mtx.Lock()
	defer p.mtx.Unlock()

	s, rv := p.digestSession(h)
	if rv != ck.CKR_OK {
		return rv
	}

	if partLen > 0 {
		s.digest.Write(unsafe.Slice(part, partLen))
	}
	return ck.CKR_OK
}

func (p *Provider) digestFinal(h ck.SessionHandle, out *byte, outLen *ck.ULong) ck.RV {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	s, rv := p.digestSession(h)
	if rv != ck.CKR_OK {
		return rv
	}

	if rv := checkOutput(s.digest.Size(), out, outLen); rv != ck.CKR_OK || out == nil {
		return rv
	}

	return s.finish(out, outLen)
}

// digestSession returns a session with an active digest. Caller must hold the
// lock.
func (p *Provider) digestSession(h ck.SessionHandle) (*session, ck.RV) {
	s, ok := p.sessions[h]
	if !ok {
		return nil, ck.CKR_SESSION_HANDLE_INVALID
	}
	if s.digest == nil {
		return nil, ck.CKR_OPERATION_NOT_INITIALIZED
	}
	return s, ck.CKR_OK
}

func (s *session) finish(out *byte, outLen *ck.ULong) ck.RV {
	sum := s.digest.Sum(nil)
	copy(unsafe.Slice(out, len(sum)), sum)
	*outLen = ck.ULong(len(sum))
	s.digest = nil
	return ck.CKR_OK
}

// checkOutput implements the length-query convention for output buffers: a
// nil buffer asks for the required size, and a short buffer is an error.
func checkOutput(size int, out *byte, outLen *ck.ULong) ck.RV {
	switch {
	case outLen == nil:
		return ck.CKR_ARGUMENTS_BAD
	case out == nil:
		*outLen = ck.ULong(size)
		return ck.CKR_OK
	case *outLen < ck.ULong(size):
		*outLen = ck.ULong(size)
		return ck.CKR_BUFFER_TOO_SMALL
	default:
		return ck.CKR_OK
	}
}
