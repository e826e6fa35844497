/*
Package transducer composes conjoining Hangul jamo into precomposed syllables
and decomposes syllables into jamo.

Composing

Composing is a single left-to-right pass over a sequence of code-points.
At most one syllable is pending at any time. A lead jamo opens a pending
syllable, a vowel completes it and a trail jamo may be appended. As soon as
a code-point cannot extend the pending syllable, the syllable is flushed:

   lead + vowel (+ trail)   →  one precomposed syllable
   lead only                →  the bare lead jamo

Code-points which cannot be placed are never rejected. Stray vowels, trails
without a syllable, precomposed syllables and text of other scripts are
copied to the output unchanged.

   ᄀ ᅡ ᄂ ᅡ ᄃ ᅡ   →  가나다
   ᄀ ᄂ ᅡ         →  ᄀ 나
   ᅡ               →  ᅡ
   ᄀ ᅡ ᆨ ᅡ        →  각 ᅡ   (a trail is never re-interpreted as lead)

Decomposing is local to every code-point: a syllable is replaced by its lead,
its vowel and, if present, its trail.

Compatibility Jamo

Text typed on a keyboard usually consists of compatibility jamo ("ㄱㅏ"),
which do not carry a position. ComposeCompat resolves them into conjoining jamo
first, with one code-point of lookahead: a consonant followed by a vowel starts
a new syllable, otherwise it closes the pending one. Compound vowels (ㅗ+ㅏ)
and compound finals (ㄹ+ㄱ) are joined.

   ㄱㅏㄴㅏㄷㅏ   →  가나다
   ㄷㅏㄹㄱ       →  닭

Streaming

Composer and Decomposer implement transform.Transformer from
golang.org/x/text/transform and may be used with transform.NewReader,
transform.String and friends. They hold no state between calls of Transform.

Concurrency

All functions are safe for concurrent use. The jamo tables are read-only
and the automata for composing are borrowed from a pool.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package transducer
