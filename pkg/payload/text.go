package payload

// binaryScanWindow bounds the control-character scan on large blobs.
const binaryScanWindow = 4000

// IsProbablyBinary reports whether fetched bytes look like binary content
// the size/extension rules could not catch: a NUL byte, or a high ratio of
// non-text control characters in the leading window.
func IsProbablyBinary(b []byte) bool {
	if len(b) == 0 {
		return false
	}

	window := b
	if len(window) > binaryScanWindow {
		window = window[:binaryScanWindow]
	}

	ctrl := 0
	for _, c := range window {
		if c == 0 {
			return true
		}
		if c < 9 || (c > 13 && c < 32) {
			ctrl++
		}
	}
	return float64(ctrl)/float64(len(window)) > 0.08
}

// Truncate cuts text to at most maxChars. The cut is a straight prefix; no
// attempt is made to break at a line or syntactic boundary.
func Truncate(text string, maxChars int) string {
	if maxChars <= 0 {
		return ""
	}
	if len(text) <= maxChars {
		return text
	}
	return text[:maxChars]
}
