/*
Package jamo holds the tables and the arithmetic of the Unicode Hangul
syllable algorithm.

Description

Modern Korean is written in syllable blocks. Every block consists of a
leading consonant (choseong), a vowel (jungseong) and an optional trailing
consonant (jongseong). Unicode encodes the letters (jamo) as conjoining
characters and the 11172 possible blocks as precomposed syllables:

   Leads      U+1100 … U+1112   19 characters
   Vowels     U+1161 … U+1175   21 characters
   Trails     U+11A8 … U+11C2   27 characters (plus "no trail")
   Syllables  U+AC00 … U+D7A3   19 × 21 × 28 = 11172 characters

From The Unicode Standard, section 3.12 “Conjoining Jamo Behavior”:

   SIndex = (LIndex * VCount + VIndex) * TCount + TIndex
   S      = SBase + SIndex

Every function of this package is a total function over immutable data.
Clients may call them concurrently without any locking.

Index 0 of the trail position denotes the absence of a trailing consonant.
This is different from a rune not being a trail jamo at all: TrailIndex
never returns 0, but reports ok == false for non-trail runes.

Compatibility Jamo

Keyboards and most legacy text produce compatibility jamo (U+3131 …
U+318E) instead of conjoining jamo. Compatibility letters carry no
position: 'ㄱ' (U+3131) may become a lead (U+1100) or a trail (U+11A8).
This package offers the mapping tables; deciding the position is up to
package transducer.

Names

Syllable names are derived algorithmically from the short names in the UCD
file Jamo.txt, e.g. U+AC01 is “HANGUL SYLLABLE GAG”.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package jamo
