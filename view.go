package strview

import (
	"math"
	"unsafe"
)

// NPos is the not-found sentinel returned by the search methods. It is the
// maximum representable index, so Substr(NPos) and SubstrFrom(NPos) yield the
// empty view positioned at End(), which keeps chains like
// v.SubstrFrom(v.Index(needle)) well-defined when nothing matches.
const NPos = math.MaxInt

// View is a non-owning reference to a contiguous run of bytes, defined by a
// base pointer and a length. The zero value is the default view: nil base,
// length 0.
type View struct {
	ptr *byte
	n   int
}

// New creates a view of n bytes starting at ptr. The pointer and length are
// stored verbatim; the caller guarantees n readable bytes from ptr. A
// negative n is treated as 0.
func New(ptr *byte, n int) View {
	if n < 0 {
		n = 0
	}
	return View{ptr: ptr, n: n}
}

// Terminated creates a view of the NUL-terminated sequence starting at ptr.
// The length is the number of bytes before the first 0x00 byte. A nil ptr
// yields the default view.
func Terminated(ptr *byte) View {
	if ptr == nil {
		return View{}
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(ptr), n)) != 0 {
		n++
	}
	return View{ptr: ptr, n: n}
}

// Between creates a view spanning [first, last). The caller guarantees both
// pointers denote positions within, or one past the end of, the same
// storage, with last >= first.
func Between(first, last *byte) View {
	n := int(uintptr(unsafe.Pointer(last)) - uintptr(unsafe.Pointer(first)))
	if n < 0 {
		n = 0
	}
	return View{ptr: first, n: n}
}

// Of creates a view aliasing the bytes of b. No copy is made; the view is
// only valid while b's backing array is unmodified.
func Of(b []byte) View {
	return View{ptr: unsafe.SliceData(b), n: len(b)}
}

// OfString creates a view aliasing the bytes of s. No copy is made. This is
// the literal shorthand: strview.OfString("hello") views the literal's bytes
// directly.
func OfString(s string) View {
	return View{ptr: unsafe.StringData(s), n: len(s)}
}

// Data returns the base address of the view. It is nil for the default view
// and may be a one-past-the-end position for an empty view derived by
// Substr.
func (v View) Data() *byte {
	return v.ptr
}

// Len returns the number of bytes in the view.
func (v View) Len() int {
	return v.n
}

// IsEmpty reports whether the view has length 0.
func (v View) IsEmpty() bool {
	return v.n == 0
}

// Begin returns the address of the first byte of the view. It equals Data().
func (v View) Begin() *byte {
	return v.ptr
}

// End returns the address one past the last byte of the view. Reading
// through it is undefined.
func (v View) End() *byte {
	if v.ptr == nil {
		return nil
	}
	return (*byte)(unsafe.Add(unsafe.Pointer(v.ptr), v.n))
}

// Front returns the first byte of the view without a bounds check.
// Precondition: Len() > 0.
func (v View) Front() byte {
	return *v.ptr
}

// Back returns the last byte of the view without a bounds check.
// Precondition: Len() > 0.
func (v View) Back() byte {
	return v.AtUnchecked(v.n - 1)
}

// At returns the byte at index i. It panics if i is out of range, with the
// same semantics as indexing a slice.
func (v View) At(i int) byte {
	return v.Bytes()[i]
}

// AtUnchecked returns the byte at index i without a bounds check.
// Precondition: i >= 0 && i < Len(). Violating it reads memory outside the
// view.
func (v View) AtUnchecked(i int) byte {
	return *(*byte)(unsafe.Add(unsafe.Pointer(v.ptr), i))
}

// Bytes returns a slice aliasing the view's bytes. The slice must not be
// modified.
func (v View) Bytes() []byte {
	return unsafe.Slice(v.ptr, v.n)
}

// String returns a copy of the view's bytes as a string.
func (v View) String() string {
	return string(v.Bytes())
}

// UnsafeString returns a string aliasing the view's bytes without copying.
// The result is only valid while the underlying storage is unmodified; the
// usual string immutability guarantee is the caller's to uphold.
func (v View) UnsafeString() string {
	return unsafe.String(v.ptr, v.n)
}
