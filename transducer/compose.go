package transducer

import "github.com/npillmayer/hangul/jamo"

// Compose composes conjoining jamo into precomposed syllables.
// The input may be any mix of jamo, syllables and other code-points;
// see the package documentation for the rules. Compose never fails and
// does not modify its input.
func Compose(in []rune) []rune {
	a := borrowAutomaton()
	defer a.release()
	a.out = make([]rune, 0, len(in))
	for _, r := range in {
		a.step(r)
	}
	a.finish()
	return a.out
}

// ComposeString is Compose for Go strings. Invalid UTF-8 sequences are
// replaced by U+FFFD.
func ComposeString(s string) string {
	return string(Compose([]rune(s)))
}

// Decompose replaces every precomposed syllable by its lead, its vowel and,
// if present, its trail jamo. All other code-points are copied unchanged.
func Decompose(in []rune) []rune {
	out := make([]rune, 0, len(in)*2)
	for _, r := range in {
		out = appendDecomposed(out, r)
	}
	return out
}

// DecomposeString is Decompose for Go strings. Invalid UTF-8 sequences are
// replaced by U+FFFD.
func DecomposeString(s string) string {
	return string(Decompose([]rune(s)))
}

func appendDecomposed(out []rune, r rune) []rune {
	l, v, t, ok := jamo.Decompose(r)
	if !ok {
		return append(out, r)
	}
	out = append(out, jamo.Lead(l), jamo.Vowel(v))
	if t != 0 {
		out = append(out, jamo.Trail(t))
	}
	return out
}
