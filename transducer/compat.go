package transducer

import (
	"github.com/npillmayer/hangul/internal/tracing"
	"github.com/npillmayer/hangul/jamo"
)

// ResolveCompat replaces compatibility jamo by conjoining jamo, deciding the
// position of every consonant with one code-point of lookahead:
//
//   - a consonant followed by a vowel becomes a lead
//   - a consonant after a lead and a vowel becomes a trail, joining a
//     previous trail to a final cluster if possible (ㄹ+ㄱ → ㄺ)
//   - a final cluster followed by a vowel is split (ㄺ+ㅏ → ㄹ / ㄱㅏ)
//   - a vowel after a lead and a vowel joins it to a compound vowel if
//     possible (ㅗ+ㅏ → ㅘ)
//
// Letters which fit nowhere are copied unchanged, as are all other code-points.
// Feeding the result to Compose yields the syllables a reader expects.
func ResolveCompat(in []rune) []rune {
	res := &compatResolver{out: make([]rune, 0, len(in)+2)}
	for i, r := range in {
		var next rune
		if i+1 < len(in) {
			next = in[i+1]
		}
		res.resolve(r, next)
	}
	return res.out
}

// compatResolver tracks the positions of the syllable currently being built,
// mirroring the states of the compose automaton.
type compatResolver struct {
	out                         []rune
	hasLead, hasVowel, hasTrail bool
	lastVowel, lastTrail        rune // compatibility letters, for compounds
}

func (res *compatResolver) resolve(r, next rune) {
	switch {
	case jamo.IsCompatVowel(r):
		res.vowel(r)
	case jamo.IsCompatConsonant(r):
		res.consonant(r, next)
	default:
		res.conjoining(r)
	}
}

func (res *compatResolver) reset() {
	res.hasLead, res.hasVowel, res.hasTrail = false, false, false
}

func (res *compatResolver) startSyllable() {
	res.hasLead, res.hasVowel, res.hasTrail = true, false, false
}

func (res *compatResolver) vowel(r rune) {
	if res.hasVowel && !res.hasTrail {
		if c, ok := jamo.CompoundVowel(res.lastVowel, r); ok {
			v, _ := jamo.CompatToVowel(c)
			res.out[len(res.out)-1] = v
			res.lastVowel = c
			return
		}
	}
	v, _ := jamo.CompatToVowel(r)
	res.out = append(res.out, v)
	if res.hasLead && !res.hasVowel {
		res.hasVowel = true
		res.lastVowel = r
		return
	}
	res.reset()
}

func (res *compatResolver) consonant(r, next rune) {
	open := res.hasLead && res.hasVowel
	if open && !isVowel(next) {
		if !res.hasTrail {
			if t, ok := jamo.CompatToTrail(r); ok {
				res.out = append(res.out, t)
				res.hasTrail = true
				res.lastTrail = r
				return
			}
		} else if c, ok := jamo.CompoundTrail(res.lastTrail, r); ok {
			t, _ := jamo.CompatToTrail(c)
			res.out[len(res.out)-1] = t
			res.lastTrail = c
			return
		}
	}
	if l, ok := jamo.CompatToLead(r); ok {
		res.out = append(res.out, l)
		res.startSyllable()
		return
	}
	if first, second, ok := jamo.SplitCompoundTrail(r); ok && open && !res.hasTrail {
		t, _ := jamo.CompatToTrail(first)
		l, _ := jamo.CompatToLead(second)
		tracing.Debugf("split cluster %c before vowel %#U", r, next)
		res.out = append(res.out, t, l)
		res.startSyllable()
		return
	}
	res.out = append(res.out, r)
	res.reset()
}

func (res *compatResolver) conjoining(r rune) {
	res.out = append(res.out, r)
	switch jamo.ClassOf(r) {
	case jamo.LeadJamo:
		res.startSyllable()
	case jamo.VowelJamo:
		if res.hasLead && !res.hasVowel {
			res.hasVowel = true
			res.lastVowel, _ = jamo.ToCompat(r)
		} else {
			res.reset()
		}
	case jamo.TrailJamo:
		if res.hasLead && res.hasVowel && !res.hasTrail {
			res.hasTrail = true
			res.lastTrail, _ = jamo.ToCompat(r)
		} else {
			res.reset()
		}
	default:
		res.reset()
	}
}

func isVowel(r rune) bool {
	return jamo.IsCompatVowel(r) || jamo.ClassOf(r) == jamo.VowelJamo
}

// ComposeCompat composes text made of compatibility jamo, as typed on a
// keyboard. Jamo which do not end up in a syllable are returned as
// compatibility letters, including conjoining jamo of the input.
func ComposeCompat(in []rune) []rune {
	return toCompat(Compose(ResolveCompat(in)))
}

// ComposeCompatString is ComposeCompat for Go strings.
func ComposeCompatString(s string) string {
	return string(ComposeCompat([]rune(s)))
}

// DecomposeCompat decomposes syllables and returns all jamo as compatibility
// letters, e.g. "값" → "ㄱㅏㅄ".
func DecomposeCompat(in []rune) []rune {
	return toCompat(Decompose(in))
}

// DecomposeCompatString is DecomposeCompat for Go strings.
func DecomposeCompatString(s string) string {
	return string(DecomposeCompat([]rune(s)))
}

// toCompat replaces conjoining jamo by compatibility letters, in place.
func toCompat(runes []rune) []rune {
	for i, r := range runes {
		if c, ok := jamo.ToCompat(r); ok {
			runes[i] = c
		}
	}
	return runes
}
