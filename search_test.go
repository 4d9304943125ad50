package strview

import "testing"

func TestIndexByte(t *testing.T) {
	data := OfString("hello world")

	tests := []struct {
		c    byte
		want int
	}{
		{'h', 0},
		{'o', 4},
		{'d', 10},
		{'z', NPos},
	}

	for _, tt := range tests {
		if got := data.IndexByte(tt.c); got != tt.want {
			t.Errorf("IndexByte(%q) = %d, want %d", tt.c, got, tt.want)
		}
	}

	var zero View
	if zero.IndexByte('a') != NPos {
		t.Error("IndexByte on the zero view should be NPos")
	}
}

func TestIndex(t *testing.T) {
	data := OfString("hello world")

	tests := []struct {
		name   string
		needle string
		want   int
	}{
		{"empty needle", "", 0},
		{"prefix", "hello", 0},
		{"suffix", "world", 6},
		{"missing", "abc", NPos},
		{"equal length match", "hello world", 0},
		{"equal length mismatch", "hello-world", NPos},
		{"needle longer than haystack", "hello world and more", NPos},
		{"single byte", "o", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := data.Index(OfString(tt.needle)); got != tt.want {
				t.Errorf("Index(%q) = %d, want %d", tt.needle, got, tt.want)
			}
		})
	}
}

func TestIndexMatchProperty(t *testing.T) {
	// Every found index k satisfies SubstrFrom(k).StartsWith(needle).
	haystack := OfString("the quick brown fox jumps over the lazy dog")
	for _, needle := range []string{"the", "fox", " ", "dog", "q"} {
		k := haystack.Index(OfString(needle))
		if k == NPos {
			t.Fatalf("Index(%q) unexpectedly NPos", needle)
		}
		if !haystack.SubstrFrom(k).StartsWith(OfString(needle)) {
			t.Errorf("SubstrFrom(%d) does not start with %q", k, needle)
		}
	}
}

func TestContains(t *testing.T) {
	data := OfString("hello world")

	if !data.Contains(OfString("hello")) {
		t.Error("should contain \"hello\"")
	}
	if !data.Contains(OfString("world")) {
		t.Error("should contain \"world\"")
	}
	if data.Contains(OfString("helloworld")) {
		t.Error("should not contain \"helloworld\"")
	}
	if !data.ContainsByte(' ') {
		t.Error("should contain ' '")
	}
	if data.ContainsByte('z') {
		t.Error("should not contain 'z'")
	}
}

func TestLastIndexByte(t *testing.T) {
	data := OfString("hello world")

	tests := []struct {
		c    byte
		want int
	}{
		{'d', 10},
		{'z', NPos},
		{'l', 9},
		{'h', 0},
	}

	for _, tt := range tests {
		if got := data.LastIndexByte(tt.c); got != tt.want {
			t.Errorf("LastIndexByte(%q) = %d, want %d", tt.c, got, tt.want)
		}
	}
}

func TestLastIndex(t *testing.T) {
	data := OfString("hello world")

	tests := []struct {
		name   string
		needle string
		want   int
	}{
		{"suffix", "world", 6},
		{"prefix", "hello", 0},
		{"missing", "abc", NPos},
		{"single byte", "d", 10},
		{"empty needle matches at the end", "", 11},
		{"equal length match", "hello world", 0},
		{"needle longer than haystack", "hello world and more", NPos},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := data.LastIndex(OfString(tt.needle)); got != tt.want {
				t.Errorf("LastIndex(%q) = %d, want %d", tt.needle, got, tt.want)
			}
		})
	}
}

func TestLastIndexFindsRightmost(t *testing.T) {
	data := OfString("ab ab ab")
	needle := OfString("ab")

	first := data.Index(needle)
	last := data.LastIndex(needle)
	if first != 0 {
		t.Errorf("Index = %d, want 0", first)
	}
	if last != 6 {
		t.Errorf("LastIndex = %d, want 6", last)
	}
	if first == last {
		t.Error("Index and LastIndex should differ with repeated occurrences")
	}
}

func TestIndexNth(t *testing.T) {
	data := OfString("ab ab ab ab ab")

	tests := []struct {
		name   string
		needle string
		n      int
		want   int
	}{
		{"first", "ab", 0, 0},
		{"second", "ab", 1, 3},
		{"fifth", "ab", 4, 12},
		{"past the last occurrence", "ab", 5, NPos},
		{"missing needle", "abc", 0, NPos},
		{"negative n", "ab", -1, NPos},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := data.IndexNth(OfString(tt.needle), tt.n); got != tt.want {
				t.Errorf("IndexNth(%q, %d) = %d, want %d", tt.needle, tt.n, got, tt.want)
			}
		})
	}
}

func TestIndexNthOverlapping(t *testing.T) {
	// The search resumes one byte past the start of the previous match, so
	// overlapping occurrences count separately.
	if got := OfString("aaaaaaaaaa").IndexNth(OfString("a"), 5); got != 5 {
		t.Errorf("IndexNth(\"a\", 5) = %d, want 5", got)
	}
	if got := OfString("aaa").IndexNth(OfString("aa"), 1); got != 1 {
		t.Errorf("IndexNth(\"aa\", 1) = %d, want 1", got)
	}
	if got := OfString("aaa").IndexNth(OfString("aa"), 2); got != NPos {
		t.Errorf("IndexNth(\"aa\", 2) = %d, want NPos", got)
	}
}

func TestIndexNthZeroEqualsIndex(t *testing.T) {
	haystack := OfString("the quick brown fox")
	for _, needle := range []string{"", "the", "fox", "q", "missing"} {
		nv := OfString(needle)
		if got, want := haystack.IndexNth(nv, 0), haystack.Index(nv); got != want {
			t.Errorf("IndexNth(%q, 0) = %d, Index = %d", needle, got, want)
		}
	}
}
