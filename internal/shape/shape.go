// Package shape bounds the size of tool results before they are returned
// to the caller: numeric limits are clamped into an allowed range, free
// text is cut at a character budget, and lists are capped with the number
// of dropped items reported back.
package shape

// TruncationMarker is appended to text cut by TruncateText.
const TruncationMarker = "\n...TRUNCATED..."

// Clamp returns n bounded into [lo, hi]. Callers must supply lo <= hi.
func Clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// TruncateText cuts s to at most maxChars characters and appends
// TruncationMarker when a cut happened. The budget counts decoded
// characters, not bytes, so multibyte text is never split mid-rune.
func TruncateText(s string, maxChars int) (string, bool) {
	if maxChars < 0 {
		maxChars = 0
	}
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s, false
	}
	return string(runes[:maxChars]) + TruncationMarker, true
}

// CapList returns at most max items from the front of items, preserving
// order, together with the count of items dropped.
func CapList[T any](items []T, max int) ([]T, int) {
	if max < 0 {
		max = 0
	}
	if len(items) <= max {
		return items, 0
	}
	return items[:max], len(items) - max
}
