// Package strview provides a non-owning view over a contiguous run of bytes.
//
// A View is a pointer and length pair referencing externally owned storage.
// It never allocates, never copies character data, and never mutates the
// bytes it references. Operations that derive new views (Substr, RemovePrefix,
// RemoveSuffix, StartingWith) alias the same underlying storage.
//
// Key properties:
//
//   - Substring extraction clamps out-of-range positions instead of failing:
//     Substr past the end returns an empty view positioned at End()
//   - RemovePrefix and RemoveSuffix return the removed portion and are
//     well-defined for any count, including counts larger than the view
//   - Searches return NPos when nothing matches
//   - IndexNth counts overlapping occurrences: each step resumes one byte
//     past the start of the previous match
//
// Basic usage:
//
//	v := strview.OfString("hello world")
//	v.SubstrFrom(6)                  // "world"
//	head := v.RemovePrefix(6)        // head == "hello ", v == "world"
//	v.Index(strview.OfString("or"))  // 1
//
// Views are plain values; copying one is cheap and copies share storage.
// The == operator compares identity (same base pointer and length), not
// content. Use Equal or Compare for content comparison.
//
// Lifetime:
//
// The caller guarantees that the referenced storage outlives every View (and
// every view derived from it) that aliases it, and that the bytes are not
// modified in the meantime. The package has no way to detect violations. A
// View holds a live pointer into the storage, so Go-managed backing memory
// is kept alive for as long as the view exists; "unmodified" remains the
// caller's obligation.
package strview
