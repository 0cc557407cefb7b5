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
	"fmt"
	"log/slog"
	"regexp"

	"github.com/dlclark/regexp2"
)

// Regexp is a Pattern backed by the standard RE2 engine.
//
// Its matches are byte ranges, so the unit length is derived from the matched
// text with the configured Encoding (see Config.Encoding).
type Regexp struct {
	re *regexp.Regexp
}

// NewRegexp wraps a compiled expression. A nil expression never matches.
func NewRegexp(re *regexp.Regexp) Regexp {
	return Regexp{re: re}
}

// CompileRegexp compiles expr with regexp.Compile.
func CompileRegexp(expr string) (Regexp, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Regexp{}, fmt.Errorf("keeper: compile %q: %w", expr, err)
	}
	return Regexp{re: re}, nil
}

// MustRegexp is CompileRegexp that panics on an invalid expression. It is
// meant for package-level pattern variables.
func MustRegexp(expr string) Regexp {
	return Regexp{re: regexp.MustCompile(expr)}
}

// First returns the leftmost match.
func (p Regexp) First(s string) (Match, bool) {
	if p.re == nil {
		return Match{}, false
	}
	loc := p.re.FindStringIndex(s)
	if loc == nil {
		return Match{}, false
	}
	return Match{Start: loc[0], End: loc[1], Text: s[loc[0]:loc[1]]}, true
}

// Last returns the last of the non-overlapping matches.
func (p Regexp) Last(s string) (Match, bool) {
	if p.re == nil {
		return Match{}, false
	}
	all := p.re.FindAllStringIndex(s, -1)
	if len(all) == 0 {
		return Match{}, false
	}
	loc := all[len(all)-1]
	return Match{Start: loc[0], End: loc[1], Text: s[loc[0]:loc[1]]}, true
}

// UnitLen is the character length of m, measured with enc.
func (p Regexp) UnitLen(m Match, enc Encoding) int {
	return encodedUnitLen(m, enc)
}

// String returns the source of the expression.
func (p Regexp) String() string {
	if p.re == nil {
		return ""
	}
	return p.re.String()
}

// Regexp2 is a Pattern backed by github.com/dlclark/regexp2, a backtracking
// engine with lookaround and backreferences.
//
// regexp2 reports rune positions; they are converted to byte offsets so that
// Regexp2 and Regexp behave the same way downstream. A matching error (for
// instance a MatchTimeout) is treated as "no match" and logged when a logger
// is attached.
type Regexp2 struct {
	re     *regexp2.Regexp
	logger *slog.Logger
}

// NewRegexp2 wraps a compiled expression. A nil expression never matches.
func NewRegexp2(re *regexp2.Regexp) Regexp2 {
	return Regexp2{re: re}
}

// CompileRegexp2 compiles expr with the given regexp2 options.
func CompileRegexp2(expr string, opts regexp2.RegexOptions) (Regexp2, error) {
	re, err := regexp2.Compile(expr, opts)
	if err != nil {
		return Regexp2{}, fmt.Errorf("keeper: compile %q: %w", expr, err)
	}
	return Regexp2{re: re}, nil
}

// MustRegexp2 is CompileRegexp2 with regexp2.None that panics on an invalid
// expression.
func MustRegexp2(expr string) Regexp2 {
	return Regexp2{re: regexp2.MustCompile(expr, regexp2.None)}
}

// WithLogger returns a copy of p that reports engine errors to l.
func (p Regexp2) WithLogger(l *slog.Logger) Regexp2 {
	p.logger = l
	return p
}

// First returns the leftmost match. A RightToLeft expression reports its
// matches from the right, so the walk is reversed for it.
func (p Regexp2) First(s string) (Match, bool) {
	if p.re == nil {
		return Match{}, false
	}
	if p.re.RightToLeft() {
		return p.final(s)
	}
	return p.initial(s)
}

// Last returns the rightmost match.
func (p Regexp2) Last(s string) (Match, bool) {
	if p.re == nil {
		return Match{}, false
	}
	if p.re.RightToLeft() {
		return p.initial(s)
	}
	return p.final(s)
}

// initial is the first match reported by the engine.
func (p Regexp2) initial(s string) (Match, bool) {
	m, err := p.re.FindStringMatch(s)
	if err != nil {
		p.report(err)
		return Match{}, false
	}
	if m == nil {
		return Match{}, false
	}
	return p.toMatch(s, m), true
}

// final is the last match reported by the engine.
func (p Regexp2) final(s string) (Match, bool) {
	m, err := p.re.FindStringMatch(s)
	var last *regexp2.Match
	for m != nil && err == nil {
		last = m
		m, err = p.re.FindNextMatch(m)
	}
	if err != nil {
		p.report(err)
		return Match{}, false
	}
	if last == nil {
		return Match{}, false
	}
	return p.toMatch(s, last), true
}

// UnitLen is the character length of m, measured with enc.
func (p Regexp2) UnitLen(m Match, enc Encoding) int {
	return encodedUnitLen(m, enc)
}

// String returns the source of the expression.
func (p Regexp2) String() string {
	if p.re == nil {
		return ""
	}
	return p.re.String()
}

func (p Regexp2) toMatch(s string, m *regexp2.Match) Match {
	start := runeOffset(s, m.Index)
	end := start + runeOffset(s[start:], m.Length)
	return Match{Start: start, End: end, Text: s[start:end]}
}

func (p Regexp2) report(err error) {
	if p.logger == nil {
		return
	}
	p.logger.Warn("keeper: regexp2 match failed",
		"err", fmt.Errorf("keeper: regexp2 %q: %w", p.re.String(), err))
}

// runeOffset returns the byte offset of the n-th character of s, or len(s)
// when s is shorter.
func runeOffset(s string, n int) int {
	for i := range s {
		if n == 0 {
			return i
		}
		n--
	}
	return len(s)
}
