package hangul

import "github.com/npillmayer/hangul/transducer"

// Compose composes sequences of conjoining jamo in s into precomposed
// syllables. Everything else in s is copied unchanged.
func Compose(s string) string {
	return transducer.ComposeString(s)
}

// Decompose replaces every precomposed syllable in s by its conjoining jamo.
func Decompose(s string) string {
	return transducer.DecomposeString(s)
}

// ComposeCompat composes text made of compatibility jamo (U+3131…U+318E),
// as produced by Korean keyboard layouts. Conjoining jamo are accepted as well.
// Letters which do not end up in a syllable are returned as compatibility jamo.
func ComposeCompat(s string) string {
	return transducer.ComposeCompatString(s)
}

// DecomposeCompat decomposes syllables in s into compatibility jamo.
// Compound finals are kept as one letter, e.g. "닭" → "ㄷㅏㄺ".
func DecomposeCompat(s string) string {
	return transducer.DecomposeCompatString(s)
}

// Convert is a dispatcher for the functions above: it decomposes s if
// decompose is set and composes it otherwise. With compat set, the
// compatibility variants are used.
func Convert(s string, decompose, compat bool) string {
	switch {
	case decompose && compat:
		return DecomposeCompat(s)
	case decompose:
		return Decompose(s)
	case compat:
		return ComposeCompat(s)
	}
	return Compose(s)
}
