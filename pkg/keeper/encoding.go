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
	"unicode/utf8"
)

// Encoding selects the code unit used to measure the last character of a
// regular expression match. The measure is realigned on a character boundary,
// so valid UTF-8 text gives the same unit length with either encoding.
type Encoding int

const (
	EncodingUTF8 Encoding = iota
	EncodingUTF16
)

// defaultWidth is the walk-back used when a match has no last character.
const defaultWidth = 2

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8:
		return "utf8"
	case EncodingUTF16:
		return "utf16"
	default:
		return "unknown"
	}
}

// Width returns the encoded width of r: bytes for EncodingUTF8, 16-bit code
// units for EncodingUTF16. Invalid runes report defaultWidth.
func (e Encoding) Width(r rune) int {
	var n int
	switch e {
	case EncodingUTF16:
		n = utf16RuneLen(r)
	default:
		n = utf8.RuneLen(r)
	}
	if n < 1 {
		return defaultWidth
	}
	return n
}

// encodedUnitLen derives the character length of a match from its byte
// boundaries.
//
// The end of the match is walked back by the encoded width of its last
// character and aligned down to a character boundary: that is where the
// last character starts. The characters before it, plus the last character
// itself, make the unit length. An empty match walks back by defaultWidth,
// which is clamped to the match start, so its unit length is 0.
//
// The alignment makes the result independent of enc: for valid UTF-8 it is
// the character count of m.Text.
func encodedUnitLen(m Match, enc Encoding) int {
	w := defaultWidth
	if last, size := utf8.DecodeLastRuneInString(m.Text); size > 0 {
		// An undecodable byte decodes to U+FFFD but only spans one byte.
		w = min(enc.Width(last), size)
	}
	boundary := max(len(m.Text)-w, 0)
	for boundary > 0 && !utf8.RuneStart(m.Text[boundary]) {
		boundary--
	}
	n := utf8.RuneCountInString(m.Text[:boundary])
	if boundary < len(m.Text) {
		n++
	}
	return n
}
