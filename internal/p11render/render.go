// Package p11render turns raw PKCS#11 argument memory into trace text.
//
// Every function here takes a pointer and an explicit length, reads exactly
// that many bytes, and never dereferences a nil pointer. Nothing is retained
// after a function returns.
package p11render

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/peterbourgon/p11trc/ck"
)

// Unavailable is rendered in place of a value that could not be rendered.
const Unavailable = "*** cannot be displayed ***"

// MaxRenderBytes is the largest buffer that will be rendered. Larger buffers
// render as Unavailable.
const MaxRenderBytes = 64 << 20

// DefaultMaxDepth is the default limit on nested attribute templates.
const DefaultMaxDepth = 8

const hexdigits = "0123456789ABCDEF"

// Bytes renders n bytes starting at p as uppercase hex, two characters per
// byte. It returns false if p is nil, or if n exceeds MaxRenderBytes.
func Bytes(p unsafe.Pointer, n uint) (string, bool) {
	if p == nil || n > MaxRenderBytes {
		return "", false
	}
	if n == 0 {
		return "", true
	}

	src := unsafe.Slice((*byte)(p), n)
	dst := make([]byte, 2*n)
	for i, b := range src {
		dst[2*i+0] = hexdigits[b>>4]
		dst[2*i+1] = hexdigits[b&0x0F]
	}

	return string(dst), true
}

// FixedString renders the n-byte field at p as text. The field need not be
// NUL-terminated, and the text stops at the first NUL if there is one. It
// returns false if p is nil, or if n exceeds MaxRenderBytes.
func FixedString(p unsafe.Pointer, n uint) (string, bool) {
	if p == nil || n > MaxRenderBytes {
		return "", false
	}
	if n == 0 {
		return "", true
	}

	src := unsafe.Slice((*byte)(p), n)
	for i, b := range src {
		if b == 0 {
			src = src[:i]
			break
		}
	}

	return string(src), true
}

// Field renders a fixed-size byte array field.
func Field(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	s, _ := FixedString(unsafe.Pointer(&b[0]), uint(len(b)))
	return s
}

//
//
//

// Line is one line of rendered output. Depth counts the nested attribute
// templates that enclose it.
type Line struct {
	Depth int
	Text  string
}

// String returns the line text, indented by two spaces per level of depth.
func (l Line) String() string {
	if l.Depth <= 0 {
		return l.Text
	}
	return strings.Repeat("  ", l.Depth) + l.Text
}

// Options control attribute template rendering.
type Options struct {
	// MaxDepth is the number of nested templates that will be expanded. Array
	// attributes beyond it are rendered as flat bytes. Zero means
	// DefaultMaxDepth.
	MaxDepth int
}

func (o *Options) sanitize() {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
}

// Attributes renders count attributes starting at p. Each entry produces its
// type, pointer, length, and value. An array attribute whose length is a whole
// multiple of the attribute size has its value rendered as a nested template.
// A nil p or zero count produces no lines.
func Attributes(p *ck.Attribute, count ck.ULong, opts Options) []Line {
	opts.sanitize()
	return appendTemplate(nil, p, count, 0, opts)
}

func appendTemplate(dst []Line, p *ck.Attribute, count ck.ULong, depth int, opts Options) []Line {
	attrs := ck.AttributeSlice(p, count)
	if len(attrs) == 0 {
		return dst
	}

	emit := func(format string, args ...any) {
		dst = append(dst, Line{Depth: depth, Text: fmt.Sprintf(format, args...)})
	}

	emit("  *** Begin attribute template ***")

	for i, a := range attrs {
		emit("  Attribute %d", i)
		emit("   Attribute: %d (%s)", a.Type, a.Type)
		emit("   pValue: %s", Pointer(a.Value))
		emit("   ulValueLen: %d", a.ValueLen)

		if a.Value == nil {
			continue
		}

		if isNestedTemplate(a) && depth+1 < opts.MaxDepth {
			dst = appendTemplate(dst, (*ck.Attribute)(a.Value), a.ValueLen/ck.SizeofAttribute, depth+1, opts)
			continue
		}

		if hex, ok := Bytes(a.Value, a.ValueLen); ok {
			emit("   *pValue: HEX(%s)", hex)
		} else {
			emit("   *pValue: %s", Unavailable)
		}
	}

	emit("  *** End attribute template ***")

	return dst
}

func isNestedTemplate(a ck.Attribute) bool {
	return a.Type&ck.CKF_ARRAY_ATTRIBUTE == ck.CKF_ARRAY_ATTRIBUTE && a.ValueLen%ck.SizeofAttribute == 0
}

// Pointer renders an address the way C's %p does on glibc.
func Pointer(p unsafe.Pointer) string {
	if p == nil {
		return "(nil)"
	}
	return fmt.Sprintf("%p", p)
}
