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
	"testing"
)

// decomposed is "ã" written as 'a' followed by U+0303 COMBINING TILDE.
const decomposed = "a\u0303"

func TestSubstring_MozillaCases(t *testing.T) {
	const s = "Mozilla"
	tests := []struct {
		name string
		r    Range
		want string
	}{
		{"..1", To(1), "M"},
		{"1..", From(1), "ozilla"},
		{"..6", To(6), "Mozill"},
		{"4..", From(4), "lla"},
		{"4..7", Span(4, 7), "lla"},
		{"..7", To(7), "Mozilla"},
		{"..10", To(10), "Mozilla"},
		{"len-4..", From(len(s) - 4), "illa"},
		{"len-5..", From(len(s) - 5), "zilla"},
		{"2..5", Span(2, 5), "zil"},
		{"..2", To(2), "Mo"},
		{"..", Full(), "Mozilla"},
		{"..=2", Through(2), "Moz"},
		{"1..=3", SpanInclusive(1, 3), "ozi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Substring(s, tt.r); got != tt.want {
				t.Fatalf("Substring(%q, %s): got %q want %q", s, tt.r, got, tt.want)
			}
		})
	}
}

func TestSubstring_OutOfBoundsAndEmpty(t *testing.T) {
	tests := []struct {
		s    string
		r    Range
		want string
	}{
		{"foobar", To(3), "foo"},
		{"foobar", To(10), "foobar"},
		{"foobar", Span(6, 10), ""},
		{"foobar", Span(3, 3), ""},
		{"foobar", Span(5, 2), ""},
		{"foobar", Span(-3, 2), "fo"},
		{"foobar", Span(2, -1), ""},
		{"", Full(), ""},
		{"", Span(0, 4), ""},
		{"hello, world!", Span(7, 12), "world"},
		{"42Hello, world!", Span(2, 7), "Hello"},
		{"42Hello, world!", Span(2, 424242), "Hello, world!"},
	}
	for _, tt := range tests {
		if got := Substring(tt.s, tt.r); got != tt.want {
			t.Errorf("Substring(%q, %s): got %q want %q", tt.s, tt.r, got, tt.want)
		}
	}
}

func TestSubstring_MultiByteCharacters(t *testing.T) {
	if got, want := Substring(decomposed, To(1)), "a"; got != want {
		t.Fatalf("unexpected base letter: got %q want %q", got, want)
	}
	if got, want := Substring(decomposed, Span(1, 2)), "\u0303"; got != want {
		t.Fatalf("unexpected combining mark: got %q want %q", got, want)
	}
	if got, want := Substring("fõøbα®", Span(2, 5)), "øbα"; got != want {
		t.Fatalf("unexpected slice: got %q want %q", got, want)
	}
}

func TestSubstring_LengthAndIdempotence(t *testing.T) {
	texts := []string{"Mozilla", "fõøbα®", "karøbα", decomposed + "bc", "日本語テキスト"}
	for _, s := range texts {
		n := Len(s)
		for start := 0; start <= n; start++ {
			for end := start; end <= n; end++ {
				r := Span(start, end)
				got := Substring(s, r)
				if Len(got) != end-start {
					t.Fatalf("Substring(%q, %s) has %d characters, want %d", s, r, Len(got), end-start)
				}
				if again := Substring(s, r); again != got {
					t.Fatalf("Substring(%q, %s) is not stable: %q then %q", s, r, got, again)
				}
			}
		}
	}
}

func TestTrySubstring_AgreesWithSubstring(t *testing.T) {
	ranges := []Range{
		Full(), To(3), From(2), Span(1, 4), Span(4, 1), Span(3, 3),
		SpanInclusive(0, 0), Through(Infinity), From(Infinity),
		Between(Bound{Excluded, 0}, Bound{Included, 2}),
	}
	for _, s := range []string{"", "foobar", "fõøbα®"} {
		for _, r := range ranges {
			got, ok := TrySubstring(s, r)
			if !ok {
				t.Fatalf("TrySubstring(%q, %s) reported a failure", s, r)
			}
			if want := Substring(s, r); got != want {
				t.Fatalf("TrySubstring(%q, %s): got %q want %q", s, r, got, want)
			}
		}
	}
}

func TestRange_Normalize(t *testing.T) {
	tests := []struct {
		name       string
		r          Range
		start, end int
	}{
		{"full", Full(), 0, Infinity},
		{"span", Span(2, 5), 2, 5},
		{"inclusive end", SpanInclusive(2, 5), 2, 6},
		{"excluded start", Between(Bound{Excluded, 2}, Bound{Excluded, 5}), 3, 5},
		{"saturating end", Through(Infinity), 0, Infinity},
		{"saturating start", Between(Bound{Excluded, Infinity}, Bound{}), Infinity, Infinity},
		{"negative", Span(-4, -1), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.r.Normalize()
			if start != tt.start || end != tt.end {
				t.Fatalf("Normalize: got [%d,%d) want [%d,%d)", start, end, tt.start, tt.end)
			}
		})
	}
	if !Span(3, 3).Empty() || Span(3, 4).Empty() {
		t.Fatalf("Empty does not follow the normalized bounds")
	}
}

func TestOffsetsAndRemove(t *testing.T) {
	from, to := Offsets("karøbα", Span(3, 5))
	if from != 3 || to != 6 {
		t.Fatalf("Offsets: got [%d,%d) want [3,6)", from, to)
	}
	from, to = Offsets("karøbα", Span(9, 2))
	if from != to || from != len("karøbα") {
		t.Fatalf("Offsets of an empty range past the end: got [%d,%d)", from, to)
	}

	tests := []struct {
		s    string
		r    Range
		want string
	}{
		{"karøbα", Span(3, 5), "karα"},
		{"karøbα", From(3), "kar"},
		{"karøbα", To(0), "karøbα"},
		{"karøbα", Span(4, 2), "karøbα"},
		{"karøbα", Full(), ""},
	}
	for _, tt := range tests {
		if got := Remove(tt.s, tt.r); got != tt.want {
			t.Errorf("Remove(%q, %s): got %q want %q", tt.s, tt.r, got, tt.want)
		}
	}
}
