package jamo

import "strings"

// Short names of the conjoining jamo, as listed in the UCD file Jamo.txt.
// The lead ㅇ has an empty short name.
var (
	leadNames = [LCount]string{
		"G", "GG", "N", "D", "DD", "R", "M", "B", "BB",
		"S", "SS", "", "J", "JJ", "C", "K", "T", "P", "H",
	}
	vowelNames = [VCount]string{
		"A", "AE", "YA", "YAE", "EO", "E", "YEO", "YE", "O",
		"WA", "WAE", "OE", "YO", "U", "WEO", "WE", "WI", "YU",
		"EU", "YI", "I",
	}
	trailNames = [TCount]string{
		"", "G", "GG", "GS", "N", "NJ", "NH", "D", "L", "LG",
		"LM", "LB", "LS", "LT", "LP", "LH", "M", "B", "BS",
		"S", "SS", "NG", "J", "C", "K", "T", "P", "H",
	}
)

// ShortName returns the Jamo.txt short name of a conjoining jamo.
// ok is false for runes which are not conjoining jamo.
func ShortName(r rune) (name string, ok bool) {
	switch ClassOf(r) {
	case LeadJamo:
		return leadNames[r-LBase], true
	case VowelJamo:
		return vowelNames[r-VBase], true
	case TrailJamo:
		return trailNames[r-TBase], true
	}
	return "", false
}

// SyllableName returns the Unicode character name of a precomposed syllable,
// e.g. "HANGUL SYLLABLE GAG" for U+AC01. It returns an empty string for runes
// outside the syllables block.
func SyllableName(s rune) string {
	l, v, t, ok := Decompose(s)
	if !ok {
		return ""
	}
	var b strings.Builder
	b.WriteString("HANGUL SYLLABLE ")
	b.WriteString(leadNames[l])
	b.WriteString(vowelNames[v])
	b.WriteString(trailNames[t])
	return b.String()
}
