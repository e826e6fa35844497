package jamo

import (
	"errors"
	"fmt"
)

// Class is the class of a code-point with respect to the Hangul syllable
// algorithm.
type Class int8

// Code-point classes. Everything not part of the conjoining jamo ranges or the
// syllables block is of class Other.
const (
	Other Class = iota
	LeadJamo
	VowelJamo
	TrailJamo
	ComposedSyllable
)

func (c Class) String() string {
	switch c {
	case LeadJamo:
		return "LeadJamo"
	case VowelJamo:
		return "VowelJamo"
	case TrailJamo:
		return "TrailJamo"
	case ComposedSyllable:
		return "ComposedSyllable"
	}
	return "Other"
}

// Constants of the syllable algorithm, as given in the Unicode Standard.
const (
	SBase rune = 0xAC00
	LBase rune = 0x1100
	VBase rune = 0x1161
	TBase rune = 0x11A7 // TBase+0 is not a trail, TBase+1 is the first one

	LCount = 19
	VCount = 21
	TCount = 28
	NCount = VCount * TCount // 588
	SCount = LCount * NCount // 11172
)

// Last code-points of each range.
const (
	LLast rune = LBase + LCount - 1
	VLast rune = VBase + VCount - 1
	TLast rune = TBase + TCount - 1
	SLast rune = SBase + SCount - 1
)

// ErrInvalidIndex is returned if a jamo index is outside the range of its
// position.
var ErrInvalidIndex = errors.New("jamo: invalid index")

// ClassOf returns the class of a code-point. It never fails; code-points
// outside the Hangul ranges are of class Other.
func ClassOf(r rune) Class {
	switch {
	case r >= LBase && r <= LLast:
		return LeadJamo
	case r >= VBase && r <= VLast:
		return VowelJamo
	case r > TBase && r <= TLast:
		return TrailJamo
	case r >= SBase && r <= SLast:
		return ComposedSyllable
	}
	return Other
}

// LeadIndex returns the index 0…18 of a lead jamo.
func LeadIndex(r rune) (int, bool) {
	if ClassOf(r) != LeadJamo {
		return 0, false
	}
	return int(r - LBase), true
}

// VowelIndex returns the index 0…20 of a vowel jamo.
func VowelIndex(r rune) (int, bool) {
	if ClassOf(r) != VowelJamo {
		return 0, false
	}
	return int(r - VBase), true
}

// TrailIndex returns the index 1…27 of a trail jamo. Index 0 ("no trail") is
// never returned: a rune which is not a trail jamo reports ok == false.
func TrailIndex(r rune) (int, bool) {
	if ClassOf(r) != TrailJamo {
		return 0, false
	}
	return int(r - TBase), true
}

// Lead returns the conjoining lead jamo for index i, or 0 if i is out of range.
func Lead(i int) rune {
	if i < 0 || i >= LCount {
		return 0
	}
	return LBase + rune(i)
}

// Vowel returns the conjoining vowel jamo for index i, or 0 if i is out of range.
func Vowel(i int) rune {
	if i < 0 || i >= VCount {
		return 0
	}
	return VBase + rune(i)
}

// Trail returns the conjoining trail jamo for index i. Index 0 and indices
// out of range yield 0.
func Trail(i int) rune {
	if i <= 0 || i >= TCount {
		return 0
	}
	return TBase + rune(i)
}

// Compose calculates the syllable for a triple of indices.
// Indices out of range result in an error wrapping ErrInvalidIndex; they are
// never wrapped around.
func Compose(lead, vowel, trail int) (rune, error) {
	if lead < 0 || lead >= LCount {
		return 0, fmt.Errorf("%w: lead %d not in 0…%d", ErrInvalidIndex, lead, LCount-1)
	}
	if vowel < 0 || vowel >= VCount {
		return 0, fmt.Errorf("%w: vowel %d not in 0…%d", ErrInvalidIndex, vowel, VCount-1)
	}
	if trail < 0 || trail >= TCount {
		return 0, fmt.Errorf("%w: trail %d not in 0…%d", ErrInvalidIndex, trail, TCount-1)
	}
	return SBase + rune((lead*VCount+vowel)*TCount+trail), nil
}

// Decompose splits a precomposed syllable into its lead, vowel and trail
// indices. Trail index 0 means there is no trailing consonant.
// ok is false if s is not a precomposed syllable.
func Decompose(s rune) (lead, vowel, trail int, ok bool) {
	if ClassOf(s) != ComposedSyllable {
		return 0, 0, 0, false
	}
	sindex := int(s - SBase)
	lead = sindex / NCount
	vowel = (sindex % NCount) / TCount
	trail = sindex % TCount
	return lead, vowel, trail, true
}

// IsJamo is true for conjoining jamo of any position.
func IsJamo(r rune) bool {
	c := ClassOf(r)
	return c == LeadJamo || c == VowelJamo || c == TrailJamo
}
