package strview

import "bytes"

// IndexByte returns the index of the first occurrence of c, or NPos if c is
// not present.
func (v View) IndexByte(c byte) int {
	if i := bytes.IndexByte(v.Bytes(), c); i >= 0 {
		return i
	}
	return NPos
}

// Index returns the index of the first occurrence of needle, or NPos if
// needle is not present. The empty needle matches at index 0. The returned
// index k satisfies v.SubstrFrom(k).StartsWith(needle).
func (v View) Index(needle View) int {
	switch {
	case needle.IsEmpty():
		return 0
	case v.n == needle.n:
		if v.Equal(needle) {
			return 0
		}
	case v.n > needle.n:
		// Compare the first byte before the full prefix check so most
		// candidate positions are rejected with a single load.
		first := needle.Front()
		limit := v.n - needle.n + 1
		for i := 0; i < limit; i++ {
			if v.AtUnchecked(i) == first && v.SubstrFrom(i).StartsWith(needle) {
				return i
			}
		}
	}
	return NPos
}

// LastIndexByte returns the index of the last occurrence of c, or NPos if c
// is not present.
func (v View) LastIndexByte(c byte) int {
	if i := bytes.LastIndexByte(v.Bytes(), c); i >= 0 {
		return i
	}
	return NPos
}

// LastIndex returns the index of the last occurrence of needle, or NPos if
// needle is not present. The empty needle matches at index Len(), the end of
// the view.
func (v View) LastIndex(needle View) int {
	switch {
	case needle.IsEmpty():
		return v.n
	case v.n == needle.n:
		if v.Equal(needle) {
			return 0
		}
	case v.n > needle.n:
		first := needle.Front()
		for i := v.n - needle.n + 1; i > 0; i-- {
			if v.AtUnchecked(i-1) == first && v.SubstrFrom(i-1).StartsWith(needle) {
				return i - 1
			}
		}
	}
	return NPos
}

// IndexNth returns the index of the nth occurrence of needle, 0-based, or
// NPos if there are fewer than n+1 occurrences. IndexNth(needle, 0) equals
// Index(needle).
//
// Each step resumes one byte past the start of the previous match, so
// overlapping occurrences count separately: IndexNth of "aa" in "aaa" at
// n=1 is 1, not NPos.
func (v View) IndexNth(needle View, n int) int {
	haystack := v
	for i := 0; i <= n && haystack.n >= needle.n; i++ {
		found := haystack.Index(needle)
		if found == NPos {
			return NPos
		}
		if i == n {
			return v.n - haystack.n + found
		}
		haystack.RemovePrefix(found + 1)
	}
	return NPos
}

// Contains reports whether needle occurs within the view.
func (v View) Contains(needle View) bool {
	return v.Index(needle) != NPos
}

// ContainsByte reports whether c occurs within the view.
func (v View) ContainsByte(c byte) bool {
	return v.IndexByte(c) != NPos
}
