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

/*
Package keeper extracts or removes the part of a text that lies before or
after a located pattern.

A pattern is a Literal, a single Char, a standard library Regexp or a
backtracking Regexp2. One extraction is described by a Config (or built
fluently with Keep / Cut):

  - Anchor: search the first (AnchorStart) or the last (AnchorEnd) occurrence.
  - Cutoff: the region lies after (CutoffAfter) or before (CutoffBefore) it.
  - Inclusivity: the matched text is part of the region or not.
  - Mode: return the region (ModeKeep) or the text without it (ModeCut).
  - Until: optionally stop the region at a secondary character, either at its
    first occurrence or at the end of a run of it.

All positions are counted in characters, so multi-byte text is never split
inside a character:

	keeper.Keep("this is karøbα it was", keeper.Literal("karøbα")).
		After().Excluding().String() // " it was"

	keeper.Cut("42.1415926509912342000", keeper.Char('0')).
		End().UntilNoMatch('0').Before().Excluding().String() // "42.1415926509912342"

A pattern that is not found never produces an error: Keep yields "" and Cut
yields the text unchanged. Every function is pure and safe for concurrent
use.
*/
package keeper
