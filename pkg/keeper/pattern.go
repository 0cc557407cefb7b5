// Copyright 2026 Benoit Pereira da Silva
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package keeper

import (
	"strings"
	"unicode/utf8"
)

// Match is one occurrence of a Pattern. Start and End are byte offsets into
// the searched text and Text is text[Start:End].
type Match struct {
	Start int
	End   int
	Text  string
}

// Pattern is what the keeper searches for.
//
// First and Last locate the first and the last occurrence in s. UnitLen
// reports how many characters of the text one occurrence consumes; the
// encoding is only meaningful for patterns whose length is derived from
// byte offsets (regular expressions).
//
// Implementations must be safe for concurrent use: the keeper never mutates
// a Pattern.
type Pattern interface {
	First(s string) (Match, bool)
	Last(s string) (Match, bool)
	UnitLen(m Match, enc Encoding) int
}

// Literal matches a fixed piece of text.
type Literal string

// First returns the leftmost occurrence of l.
func (l Literal) First(s string) (Match, bool) {
	return literalAt(s, strings.Index(s, string(l)), len(l))
}

// Last returns the rightmost occurrence of l.
func (l Literal) Last(s string) (Match, bool) {
	return literalAt(s, strings.LastIndex(s, string(l)), len(l))
}

// UnitLen is the character count of the literal.
func (l Literal) UnitLen(Match, Encoding) int {
	return utf8.RuneCountInString(string(l))
}

// Char matches a single character. An invalid rune (negative, a surrogate
// half or above utf8.MaxRune) never matches, not even U+FFFD.
type Char rune

// First returns the leftmost occurrence of c.
func (c Char) First(s string) (Match, bool) {
	if !utf8.ValidRune(rune(c)) {
		return Match{}, false
	}
	i := strings.IndexRune(s, rune(c))
	if i < 0 {
		return Match{}, false
	}
	_, size := utf8.DecodeRuneInString(s[i:])
	return literalAt(s, i, size)
}

// Last returns the rightmost occurrence of c.
func (c Char) Last(s string) (Match, bool) {
	if !utf8.ValidRune(rune(c)) {
		return Match{}, false
	}
	needle := string(rune(c))
	return literalAt(s, strings.LastIndex(s, needle), len(needle))
}

// UnitLen is always one character.
func (c Char) UnitLen(Match, Encoding) int {
	return 1
}

func literalAt(s string, i, size int) (Match, bool) {
	if i < 0 {
		return Match{}, false
	}
	return Match{Start: i, End: i + size, Text: s[i : i+size]}, true
}
