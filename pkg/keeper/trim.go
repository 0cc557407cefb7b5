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

// TrimTrailing removes the run of r that ends s.
//
//	TrimTrailing("42.1415926509912342000", '0') // "42.1415926509912342"
func TrimTrailing(s string, r rune) string {
	if last, size := utf8.DecodeLastRuneInString(s); size == 0 || last != r {
		return s
	}
	return Cut(s, Char(r)).End().Before().Excluding().UntilNoMatch(r).String()
}

// TrimLeading removes the run of r that starts s.
func TrimLeading(s string, r rune) string {
	if first, size := utf8.DecodeRuneInString(s); size == 0 || first != r {
		return s
	}
	return Cut(s, Char(r)).Start().After().Excluding().UntilNoMatch(r).String()
}

// TrimTrailingZeros drops the trailing zeros of a decimal fraction, then the
// decimal point if nothing is left after it. A number with no digit left,
// such as ".0", becomes "0". Integers and numbers with an exponent are
// returned unchanged.
//
//	TrimTrailingZeros("1.2500") // "1.25"
//	TrimTrailingZeros("3.000")  // "3"
//	TrimTrailingZeros("100")    // "100"
//	TrimTrailingZeros("-.0")    // "-0"
func TrimTrailingZeros(s string) string {
	dot := strings.LastIndexByte(s, '.')
	if dot < 0 || strings.ContainsAny(s[dot:], "eEpP") {
		return s
	}
	out := strings.TrimSuffix(TrimTrailing(s, '0'), ".")
	switch out {
	case "", "+", "-":
		return out + "0"
	}
	return out
}
