package jamo

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Range tables for the code-point classes, for use with unicode.Is and
// unicode.In.
var (
	LeadTable     = rangeOf(LBase, LLast)
	VowelTable    = rangeOf(VBase, VLast)
	TrailTable    = rangeOf(TBase+1, TLast)
	SyllableTable = rangeOf(SBase, SLast)
	CompatTable   = rangeOf(CompatBase, CompatLast)
)

// ConjoiningTable is the union of LeadTable, VowelTable and TrailTable.
var ConjoiningTable = rangetable.Merge(LeadTable, VowelTable, TrailTable)

func rangeOf(from, to rune) *unicode.RangeTable {
	runes := make([]rune, 0, to-from+1)
	for r := from; r <= to; r++ {
		runes = append(runes, r)
	}
	return rangetable.New(runes...)
}
