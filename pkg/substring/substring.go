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

package substring

import (
	"strings"
	"unicode/utf8"
)

// Substring returns the part of s covered by r, counting characters (Unicode
// code points), not bytes.
//
// Out-of-range positions are clamped to the text and an inverted or empty
// range yields "". Substring never panics.
//
//	Substring("Mozilla", Span(2, 5)) // "zil"
//	Substring("Mozilla", To(10))     // "Mozilla"
//	Substring("ã", Span(1, 2))       // "̃" when "ã" is decomposed
func Substring(s string, r Range) string {
	from, to := Offsets(s, r)
	return s[from:to]
}

// TrySubstring is the fallible flavour of Substring.
//
// The only failure it could report is a negative character count, and the
// empty-range guard that runs first makes that impossible: for every Range
// TrySubstring returns Substring(s, r), true. It is kept for callers that
// want to treat slicing as an optional result.
func TrySubstring(s string, r Range) (string, bool) {
	start, end := r.Normalize()
	if end <= start {
		return "", true
	}
	if end-start < 0 {
		return "", false
	}
	from, to := offsets(s, start, end)
	return s[from:to], true
}

// Offsets returns the byte offsets [from, to) of the characters covered by r.
// The result always satisfies 0 <= from <= to <= len(s).
func Offsets(s string, r Range) (from, to int) {
	start, end := r.Normalize()
	if end <= start {
		from, _ = offsets(s, start, Infinity)
		return from, from
	}
	return offsets(s, start, end)
}

// Remove returns s without the characters covered by r.
func Remove(s string, r Range) string {
	from, to := Offsets(s, r)
	if from == to {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) - (to - from))
	b.WriteString(s[:from])
	b.WriteString(s[to:])
	return b.String()
}

// Len returns the number of characters in s.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// offsets walks s once and converts the character positions start < end into
// byte offsets. Positions past the end of s map to len(s).
func offsets(s string, start, end int) (from, to int) {
	from, to = len(s), len(s)
	n := 0
	for i := range s {
		if n == start {
			from = i
		}
		if n == end {
			to = i
			break
		}
		n++
	}
	return from, to
}
