package jamo

import (
	"github.com/emirpasic/gods/maps/hashbidimap"
)

// Range of the Hangul Compatibility Jamo block.
const (
	CompatBase rune = 0x3131
	CompatLast rune = 0x318E
)

// Compatibility letters in index order of the conjoining positions.
// Position 0 of trailLetters stands for "no trail".
var (
	leadLetters  = []rune{'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
	vowelLetters = []rune{'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ', 'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ', 'ㅣ'}
	trailLetters = []rune{0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ', 'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
)

// Compound vowels and compound finals, keyed by their compatibility parts.
var (
	compoundVowels = map[[2]rune]rune{
		{'ㅗ', 'ㅏ'}: 'ㅘ',
		{'ㅗ', 'ㅐ'}: 'ㅙ',
		{'ㅗ', 'ㅣ'}: 'ㅚ',
		{'ㅜ', 'ㅓ'}: 'ㅝ',
		{'ㅜ', 'ㅔ'}: 'ㅞ',
		{'ㅜ', 'ㅣ'}: 'ㅟ',
		{'ㅡ', 'ㅣ'}: 'ㅢ',
	}
	compoundTrails = map[[2]rune]rune{
		{'ㄱ', 'ㄱ'}: 'ㄲ',
		{'ㄱ', 'ㅅ'}: 'ㄳ',
		{'ㄴ', 'ㅈ'}: 'ㄵ',
		{'ㄴ', 'ㅎ'}: 'ㄶ',
		{'ㄹ', 'ㄱ'}: 'ㄺ',
		{'ㄹ', 'ㅁ'}: 'ㄻ',
		{'ㄹ', 'ㅂ'}: 'ㄼ',
		{'ㄹ', 'ㅅ'}: 'ㄽ',
		{'ㄹ', 'ㅌ'}: 'ㄾ',
		{'ㄹ', 'ㅍ'}: 'ㄿ',
		{'ㄹ', 'ㅎ'}: 'ㅀ',
		{'ㅂ', 'ㅅ'}: 'ㅄ',
		{'ㅅ', 'ㅅ'}: 'ㅆ',
	}
)

// splitTrails is the inverse of compoundTrails for real consonant clusters,
// i.e. for finals without a lead form ('ㄲ' and 'ㅆ' are single letters).
var splitTrails map[rune][2]rune

// Bidirectional maps compatibility letter ⇄ conjoining jamo, one per position.
// They are filled once during package initialization and read-only afterwards.
var leadMap, vowelMap, trailMap *hashbidimap.Map

func init() {
	leadMap = bimapOf(leadLetters, Lead)
	vowelMap = bimapOf(vowelLetters, Vowel)
	trailMap = bimapOf(trailLetters, Trail)
	splitTrails = make(map[rune][2]rune)
	for pair, cluster := range compoundTrails {
		if _, isLead := leadMap.Get(cluster); !isLead {
			splitTrails[cluster] = pair
		}
	}
}

func bimapOf(letters []rune, jamo func(int) rune) *hashbidimap.Map {
	m := hashbidimap.New()
	for i, l := range letters {
		if l == 0 {
			continue
		}
		m.Put(l, jamo(i))
	}
	return m
}

func lookup(m *hashbidimap.Map, r rune) (rune, bool) {
	v, found := m.Get(r)
	if !found {
		return 0, false
	}
	return v.(rune), true
}

// CompatToLead maps a compatibility consonant to its conjoining lead jamo.
// Consonant clusters like 'ㄳ' have no lead form.
func CompatToLead(r rune) (rune, bool) {
	return lookup(leadMap, r)
}

// CompatToVowel maps a compatibility vowel to its conjoining vowel jamo.
func CompatToVowel(r rune) (rune, bool) {
	return lookup(vowelMap, r)
}

// CompatToTrail maps a compatibility consonant to its conjoining trail jamo.
// 'ㄸ', 'ㅃ' and 'ㅉ' have no trail form.
func CompatToTrail(r rune) (rune, bool) {
	return lookup(trailMap, r)
}

// ToCompat maps a conjoining jamo of any position to its compatibility letter.
func ToCompat(r rune) (rune, bool) {
	var m *hashbidimap.Map
	switch ClassOf(r) {
	case LeadJamo:
		m = leadMap
	case VowelJamo:
		m = vowelMap
	case TrailJamo:
		m = trailMap
	default:
		return 0, false
	}
	k, found := m.GetKey(r)
	if !found {
		return 0, false
	}
	return k.(rune), true
}

// IsCompatConsonant is true for the modern compatibility consonants ㄱ…ㅎ.
func IsCompatConsonant(r rune) bool {
	_, lead := leadMap.Get(r)
	_, trail := trailMap.Get(r)
	return lead || trail
}

// IsCompatVowel is true for the modern compatibility vowels ㅏ…ㅣ.
func IsCompatVowel(r rune) bool {
	_, found := vowelMap.Get(r)
	return found
}

// CompoundVowel combines two compatibility vowels, e.g. 'ㅗ'+'ㅏ' → 'ㅘ'.
func CompoundVowel(first, second rune) (rune, bool) {
	v, ok := compoundVowels[[2]rune{first, second}]
	return v, ok
}

// CompoundTrail combines two compatibility consonants to a final cluster,
// e.g. 'ㄹ'+'ㄱ' → 'ㄺ'.
func CompoundTrail(first, second rune) (rune, bool) {
	t, ok := compoundTrails[[2]rune{first, second}]
	return t, ok
}

// SplitCompoundTrail splits a final consonant cluster into its parts,
// e.g. 'ㄺ' → 'ㄹ', 'ㄱ'. ok is false for single consonants.
func SplitCompoundTrail(cluster rune) (first, second rune, ok bool) {
	pair, ok := splitTrails[cluster]
	return pair[0], pair[1], ok
}
