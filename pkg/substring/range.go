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
	"fmt"
	"math"
)

// Infinity is the normalized end of an unbounded range. It is larger than the
// length of any string.
const Infinity = math.MaxInt

// BoundKind tells how a Bound value must be read.
type BoundKind int

const (
	Unbounded BoundKind = iota // no limit on that side
	Included                   // the position belongs to the range
	Excluded                   // the position does not belong to the range
)

// Bound is one side of a Range, expressed in characters.
type Bound struct {
	Kind  BoundKind
	Value int
}

// Range is a character range with independently bounded sides.
//
// The zero Range is unbounded on both sides and selects the whole text.
type Range struct {
	Start Bound
	End   Bound
}

// Span is the half-open range start..end.
func Span(start, end int) Range {
	return Range{Start: Bound{Included, start}, End: Bound{Excluded, end}}
}

// SpanInclusive is the closed range start..=end.
func SpanInclusive(start, end int) Range {
	return Range{Start: Bound{Included, start}, End: Bound{Included, end}}
}

// From is the range start.. (up to the end of the text).
func From(start int) Range {
	return Range{Start: Bound{Included, start}}
}

// To is the range ..end (end excluded).
func To(end int) Range {
	return Range{End: Bound{Excluded, end}}
}

// Through is the range ..=end (end included).
func Through(end int) Range {
	return Range{End: Bound{Included, end}}
}

// Full selects the whole text.
func Full() Range {
	return Range{}
}

// Between builds a range from two explicit bounds.
func Between(start, end Bound) Range {
	return Range{Start: start, End: end}
}

// Normalize converts the range into a half-open [start, end) pair of
// character positions.
//
//   - an unbounded start is 0, an excluded start v is v+1;
//   - an unbounded end is Infinity, an included end v is v+1;
//   - negative values are clamped to 0.
//
// Additions saturate at Infinity.
func (r Range) Normalize() (start, end int) {
	switch r.Start.Kind {
	case Included:
		start = clamp(r.Start.Value)
	case Excluded:
		start = saturatingInc(clamp(r.Start.Value))
	default:
		start = 0
	}
	switch r.End.Kind {
	case Included:
		end = saturatingInc(clamp(r.End.Value))
	case Excluded:
		end = clamp(r.End.Value)
	default:
		end = Infinity
	}
	return start, end
}

// Empty reports whether the normalized range selects nothing, whatever the
// text is.
func (r Range) Empty() bool {
	start, end := r.Normalize()
	return end <= start
}

func (r Range) String() string {
	start, end := r.Normalize()
	if end == Infinity {
		return fmt.Sprintf("[%d,∞)", start)
	}
	return fmt.Sprintf("[%d,%d)", start, end)
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func saturatingInc(v int) int {
	if v == Infinity {
		return v
	}
	return v + 1
}
