/*
Package hangul composes and decomposes Korean Hangul syllables.

Description

From the Unicode Standard, section 3.12:

Korean Hangul may be encoded either in precomposed form or in decomposed
form as conjoining jamo. In the decomposed form a syllable is made up of a
sequence of a leading consonant (L), a vowel (V) and, optionally, a trailing
consonant (T). Hangul syllables have an algorithmic composition and
decomposition, which is why the 11172 precomposed syllables of the
Unicode character database are not listed with their decompositions.

[...]

This module implements the algorithm in a non-normalizing way: sequences of
conjoining jamo are grouped into syllable blocks by a small automaton, and
anything which cannot be part of a block is copied to the output untouched.
Malformed sequences (a vowel without a lead, a trail without a vowel,
two leads in a row) never produce an error.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Contents

The tables and the arithmetic of the syllable algorithm live in sub-package
jamo. Sub-package transducer holds the compose automaton, decomposition,
the handling of compatibility jamo (the letters produced by Korean keyboard
layouts) and streaming transformers for use with golang.org/x/text/transform.

Base package hangul provides string-level entry points for the most common
use cases:

   hangul.Compose("\u1100\u1161\u11A8")  // "각"
   hangul.Decompose("각")                  // "\u1100\u1161\u11A8"
   hangul.ComposeCompat("ㄷㅏㄹㄱ")           // "닭"
   hangul.DecomposeCompat("닭")              // "ㄷㅏㄺ"

Command hangul (in cmd/hangul) is a small command line driver for these
functions.

Tracing

All packages trace to schuko's core tracer (see package
github.com/npillmayer/schuko/gtrace). Clients set the core tracer and its
level; the default is to trace errors only.
*/
package hangul
