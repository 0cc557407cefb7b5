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
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Graphemes is Substring counting user-perceived characters (extended
// grapheme clusters) instead of code points.
//
// A decomposed "ã" is one grapheme, so Graphemes("ã!", To(1)) keeps the
// combining tilde that Substring would cut off.
func Graphemes(s string, r Range) string {
	start, end := r.Normalize()
	if end <= start {
		return ""
	}
	from, to := len(s), len(s)
	n, pos, state := 0, 0, -1
	for pos < len(s) {
		if n == start {
			from = pos
		}
		if n == end {
			to = pos
			break
		}
		var cluster string
		cluster, _, _, state = uniseg.FirstGraphemeClusterInString(s[pos:], state)
		pos += len(cluster)
		n++
	}
	return s[from:to]
}

// GraphemeLen returns the number of grapheme clusters in s.
func GraphemeLen(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Columns is Substring over monospace display columns. A wide cluster that
// straddles either bound of the range is left out.
func Columns(s string, r Range) string {
	start, end := r.Normalize()
	if end <= start {
		return ""
	}
	from, to := -1, -1
	col, pos, state := 0, 0, -1
	for pos < len(s) {
		var cluster string
		cluster, _, _, state = uniseg.FirstGraphemeClusterInString(s[pos:], state)
		w := runewidth.StringWidth(cluster)
		if col+w > end {
			break
		}
		if col >= start {
			if from < 0 {
				from = pos
			}
			to = pos + len(cluster)
		}
		col += w
		pos += len(cluster)
	}
	if from < 0 {
		return ""
	}
	return s[from:to]
}

// Width returns the monospace display width of s.
func Width(s string) int {
	return runewidth.StringWidth(s)
}
