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

import "github.com/benoit-pereira-da-silva/textkeeper/pkg/substring"

// scan runs the secondary run-scan over kept, the slice produced by the
// primary match, and returns the part of kept lying between the match and
// the secondary boundary.
//
// The match sits at one edge of kept: at its start for CutoffAfter, at its
// end for CutoffBefore, and it is only present when cfg includes it. The
// scan origin is the edge of the match facing away from it:
//
//	After:  origin = unit (Including) or 0 (Excluding), scanning forward
//	Before: origin = len-unit (Including) or len (Excluding), scanning backward
//
// The narrowed range always spans from the match to the boundary ([0,b) for
// After, [b,len) for Before), not from the boundary onwards. Keep returns
// that span and Cut removes it, so cutting the zeros after the last '0' of
// "42.1415926509912342000" (End, Before, Excluding, UntilNoMatch '0') leaves
// "42.1415926509912342". Starting the range at the boundary would keep the
// zeros in Cut mode instead.
//
// ok is false when no boundary exists: the secondary character never shows
// up (UntilFirstMatch) or no run starts at the origin (UntilNoMatch).
func scan(kept string, unit int, cfg Config) (narrowed substring.Range, ok bool) {
	runes := []rune(kept)
	n := len(runes)
	sec := cfg.Secondary

	if cfg.Cutoff == CutoffBefore {
		origin := n
		if cfg.Inclusivity == Including {
			origin = max(n-unit, 0)
		}
		b := -1
		switch cfg.Until {
		case UntilFirstMatch:
			for i := origin - 1; i >= 0; i-- {
				if runes[i] == sec {
					b = i + 1
					break
				}
			}
		case UntilNoMatch:
			i := origin
			for i > 0 && runes[i-1] == sec {
				i--
			}
			if i < origin {
				b = i
			}
		}
		if b < 0 {
			return substring.Range{}, false
		}
		return substring.From(b), true
	}

	origin := 0
	if cfg.Inclusivity == Including {
		origin = min(unit, n)
	}
	b := -1
	switch cfg.Until {
	case UntilFirstMatch:
		for i := origin; i < n; i++ {
			if runes[i] == sec {
				b = i
				break
			}
		}
	case UntilNoMatch:
		i := origin
		for i < n && runes[i] == sec {
			i++
		}
		if i > origin {
			b = i
		}
	}
	if b < 0 {
		return substring.Range{}, false
	}
	return substring.To(b), true
}
