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

import "log/slog"

// Anchor selects which occurrence of the pattern is used.
type Anchor int

const (
	AnchorStart Anchor = iota // first occurrence
	AnchorEnd                 // last occurrence
)

func (a Anchor) String() string {
	switch a {
	case AnchorStart:
		return "start"
	case AnchorEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Cutoff selects the side of the match the region lies on.
type Cutoff int

const (
	CutoffAfter Cutoff = iota
	CutoffBefore
)

func (c Cutoff) String() string {
	switch c {
	case CutoffAfter:
		return "after"
	case CutoffBefore:
		return "before"
	default:
		return "unknown"
	}
}

// Inclusivity tells whether the matched text belongs to the region.
type Inclusivity int

const (
	Including Inclusivity = iota
	Excluding
)

func (i Inclusivity) String() string {
	switch i {
	case Including:
		return "including"
	case Excluding:
		return "excluding"
	default:
		return "unknown"
	}
}

// Mode selects between returning the region and removing it.
type Mode int

const (
	ModeKeep Mode = iota
	ModeCut
)

func (m Mode) String() string {
	switch m {
	case ModeKeep:
		return "keep"
	case ModeCut:
		return "cut"
	default:
		return "unknown"
	}
}

// Until is the rule of the secondary run-scan.
type Until int

const (
	// UntilNone disables the run-scan.
	UntilNone Until = iota
	// UntilFirstMatch stops at the first secondary character met when moving
	// away from the match.
	UntilFirstMatch
	// UntilNoMatch consumes a contiguous run of the secondary character next to
	// the match and stops at the first different character.
	UntilNoMatch
)

func (u Until) String() string {
	switch u {
	case UntilNone:
		return "none"
	case UntilFirstMatch:
		return "first-match"
	case UntilNoMatch:
		return "no-match"
	default:
		return "unknown"
	}
}

// Config describes one extraction. The zero Config keeps everything from the
// first occurrence of the pattern on, match included.
//
// Config is a plain value: options and Keeper methods work on copies, so a
// Config handed to Extract can't be changed behind its back.
type Config struct {
	Anchor      Anchor
	Cutoff      Cutoff
	Inclusivity Inclusivity
	Mode        Mode

	// Secondary is the character scanned by the run-scan when Until is not
	// UntilNone.
	Secondary rune
	Until     Until

	// Encoding is only used by regular expression patterns. It has no effect
	// on valid UTF-8 text.
	Encoding Encoding

	// Logger receives a debug record when the pattern is not found. Nil
	// disables logging.
	Logger *slog.Logger
}

// Option sets one field of a Config.
type Option func(*Config)

// NewConfig returns the default Config with opts applied in order.
func NewConfig(opts ...Option) Config {
	return Config{}.With(opts...)
}

// With returns a copy of c with opts applied in order. Nil options are
// ignored.
func (c Config) With(opts ...Option) Config {
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// WithAnchor selects the first or the last occurrence.
func WithAnchor(a Anchor) Option {
	return func(c *Config) { c.Anchor = a }
}

// WithCutoff selects the side of the match.
func WithCutoff(co Cutoff) Option {
	return func(c *Config) { c.Cutoff = co }
}

// WithInclusivity tells whether the match belongs to the region.
func WithInclusivity(i Inclusivity) Option {
	return func(c *Config) { c.Inclusivity = i }
}

// WithMode selects between keeping and cutting the region.
func WithMode(m Mode) Option {
	return func(c *Config) { c.Mode = m }
}

// WithSecondary enables the run-scan on r with the given rule. UntilNone
// disables it.
func WithSecondary(r rune, until Until) Option {
	return func(c *Config) {
		c.Secondary = r
		c.Until = until
	}
}

// WithEncoding sets the code unit used to measure regular expression
// matches. Matches are realigned on character boundaries, so valid UTF-8
// text gives the same result with either encoding.
func WithEncoding(e Encoding) Option {
	return func(c *Config) { c.Encoding = e }
}

// WithLogger sets the logger receiving debug records. Nil disables logging.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}
