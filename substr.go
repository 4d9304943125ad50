package strview

import "unsafe"

// Substr returns a view of count bytes starting at pos, aliasing the same
// storage. Out-of-range inputs clamp instead of failing:
//
//   - pos >= Len() yields an empty view positioned at End(), so
//     result.Begin() == v.End()
//   - count is limited to the bytes remaining after pos; pass NPos for the
//     rest of the view
//   - negative pos or count are treated as 0
func (v View) Substr(pos, count int) View {
	if pos < 0 {
		pos = 0
	}
	if pos >= v.n {
		return View{ptr: v.End(), n: 0}
	}
	rest := v.n - pos
	if count < 0 {
		count = 0
	}
	if count > rest {
		count = rest
	}
	return View{ptr: (*byte)(unsafe.Add(unsafe.Pointer(v.ptr), pos)), n: count}
}

// SubstrFrom returns the suffix of the view starting at pos, with the same
// clamping as Substr.
func (v View) SubstrFrom(pos int) View {
	return v.Substr(pos, NPos)
}

// RemovePrefix advances the start of the view n bytes forward, in place, and
// returns a view of the removed portion. If n > Len() the whole view is
// removed and v becomes the empty view positioned at its original End().
// Well-defined for any n.
func (v *View) RemovePrefix(n int) View {
	removed := v.Substr(0, n)
	*v = v.SubstrFrom(n)
	return removed
}

// RemoveSuffix moves the end of the view n bytes backward, in place, and
// returns a view of the removed portion. The base address never changes; if
// n > Len() the whole view is removed and v becomes empty at its original
// Begin(). Well-defined for any n.
func (v *View) RemoveSuffix(n int) View {
	if n < 0 {
		n = 0
	}
	if n > v.n {
		n = v.n
	}
	removed := v.SubstrFrom(v.n - n)
	v.n -= n
	return removed
}

// StartsWith reports whether the view begins with needle. The empty needle
// is a prefix of every view.
func (v View) StartsWith(needle View) bool {
	return v.Substr(0, needle.n).Equal(needle)
}

// EndsWith reports whether the view ends with needle. The empty needle is a
// suffix of every view; a needle longer than the view is never a suffix.
func (v View) EndsWith(needle View) bool {
	if v.n >= needle.n {
		return v.SubstrFrom(v.n - needle.n).Equal(needle)
	}
	return false
}

// StartingWith returns the suffix of the view beginning at the first
// occurrence of needle, equivalent to v.SubstrFrom(v.Index(needle)). If
// needle does not occur, the result is the empty view positioned at End().
func (v View) StartingWith(needle View) View {
	return v.SubstrFrom(v.Index(needle))
}
