package strview

import "bytes"

// Compare orders two views lexicographically, byte by byte. It returns 0 if
// the views are equal, a negative value if v sorts before o, and a positive
// value otherwise. When one view is a prefix of the other, the shorter view
// sorts first.
func (v View) Compare(o View) int {
	return bytes.Compare(v.Bytes(), o.Bytes())
}

// Equal reports whether two views have the same length and content. Views of
// different lengths are never equal. Note that the == operator on View
// compares identity, not content.
func (v View) Equal(o View) bool {
	if v.n != o.n {
		return false
	}
	return v.Compare(o) == 0
}

// EqualString reports whether the view's content equals s.
func (v View) EqualString(s string) bool {
	return v.Equal(OfString(s))
}
