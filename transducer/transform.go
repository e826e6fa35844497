package transducer

import (
	"unicode/utf8"

	"github.com/npillmayer/hangul/jamo"
	"golang.org/x/text/transform"
)

// Composer is a transform.Transformer which composes jamo into syllables.
// It produces the same output as Compose for any chunking of the input.
// Invalid UTF-8 is copied to the output unchanged.
//
// A pending syllable is never kept between calls of Transform: if the input
// ends in the middle of a syllable and more input may follow, Transform
// reports transform.ErrShortSrc and leaves the syllable's bytes unconsumed.
type Composer struct {
	transform.NopResetter
}

// NewComposer creates a transformer for composing syllables.
//
// Usage:
//
//   s, _, err := transform.String(transducer.NewComposer(), "가")
//
func NewComposer() Composer {
	return Composer{}
}

// Transform is part of interface transform.Transformer.
func (Composer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	a := borrowAutomaton()
	defer a.release()
	var scratch [2]rune
	groupStart := 0 // start of the pending syllable within src
	for nSrc < len(src) {
		r, size := rune(src[nSrc]), 1
		if r >= utf8.RuneSelf {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, resumeAt(a, nSrc, groupStart), transform.ErrShortSrc
			}
			r, size = utf8.DecodeRune(src[nSrc:])
		}
		resume := resumeAt(a, nSrc, groupStart)
		a.out = scratch[:0]
		a.step(r)
		var raw []byte
		if r == utf8.RuneError && size == 1 {
			raw = src[nSrc : nSrc+1] // invalid byte, emitted as last rune
		}
		n, ok := writeRunes(dst[nDst:], a.out, raw)
		if !ok {
			return nDst, resume, transform.ErrShortDst
		}
		nDst += n
		if jamo.ClassOf(r) == jamo.LeadJamo { // r opened a new syllable
			groupStart = nSrc
		}
		nSrc += size
	}
	if !a.idle() {
		if !atEOF {
			return nDst, groupStart, transform.ErrShortSrc
		}
		a.out = scratch[:0]
		a.finish()
		n, ok := writeRunes(dst[nDst:], a.out, nil)
		if !ok {
			return nDst, groupStart, transform.ErrShortDst
		}
		nDst += n
	}
	return nDst, nSrc, nil
}

// resumeAt returns the position in src to restart from if the current
// call to Transform has to stop at position pos.
func resumeAt(a *automaton, pos, groupStart int) int {
	if a.idle() {
		return pos
	}
	return groupStart
}

// writeRunes encodes runes into dst. If raw is non-empty, it replaces the
// encoding of the last rune. ok is false if dst is too short, in which case
// nothing is written.
func writeRunes(dst []byte, runes []rune, raw []byte) (int, bool) {
	need := 0
	for i, r := range runes {
		if raw != nil && i == len(runes)-1 {
			need += len(raw)
		} else {
			need += utf8.RuneLen(r)
		}
	}
	if need > len(dst) {
		return 0, false
	}
	n := 0
	for i, r := range runes {
		if raw != nil && i == len(runes)-1 {
			n += copy(dst[n:], raw)
		} else {
			n += utf8.EncodeRune(dst[n:], r)
		}
	}
	return n, true
}

// Decomposer is a transform.Transformer which decomposes syllables into jamo.
// Invalid UTF-8 is copied to the output unchanged.
type Decomposer struct {
	transform.NopResetter
}

// NewDecomposer creates a transformer for decomposing syllables.
func NewDecomposer() Decomposer {
	return Decomposer{}
}

// Transform is part of interface transform.Transformer.
func (Decomposer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	var scratch [3]rune
	for nSrc < len(src) {
		r, size := rune(src[nSrc]), 1
		if r >= utf8.RuneSelf {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			r, size = utf8.DecodeRune(src[nSrc:])
		}
		var raw []byte
		if r == utf8.RuneError && size == 1 {
			raw = src[nSrc : nSrc+1]
		}
		n, ok := writeRunes(dst[nDst:], appendDecomposed(scratch[:0], r), raw)
		if !ok {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += n
		nSrc += size
	}
	return nDst, nSrc, nil
}
