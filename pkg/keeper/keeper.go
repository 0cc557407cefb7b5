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

// Keeper is a fluent, immutable extraction request.
//
// Every method returns a new Keeper; the receiver is never modified, so a
// partially configured Keeper can be shared and specialised freely:
//
//	base := keeper.Keep(text, keeper.Char(','))
//	head := base.Before().Excluding().String()
//	tail := base.After().Excluding().String()
//
// String runs the extraction.
type Keeper struct {
	text    string
	pattern Pattern
	cfg     Config
}

// Keep starts a request that returns the selected region of text.
// Defaults: first occurrence, after the match, match included.
func Keep(text string, p Pattern) Keeper {
	return Keeper{text: text, pattern: p}
}

// Cut starts a request that returns text with the selected region removed.
func Cut(text string, p Pattern) Keeper {
	return Keeper{text: text, pattern: p, cfg: Config{Mode: ModeCut}}
}

// New starts a request with an explicit configuration.
func New(text string, p Pattern, cfg Config) Keeper {
	return Keeper{text: text, pattern: p, cfg: cfg}
}

// Start anchors the search on the first occurrence of the pattern.
func (k Keeper) Start() Keeper {
	k.cfg.Anchor = AnchorStart
	return k
}

// End anchors the search on the last occurrence of the pattern.
func (k Keeper) End() Keeper {
	k.cfg.Anchor = AnchorEnd
	return k
}

// After selects the text following the match.
func (k Keeper) After() Keeper {
	k.cfg.Cutoff = CutoffAfter
	return k
}

// Before selects the text preceding the match.
func (k Keeper) Before() Keeper {
	k.cfg.Cutoff = CutoffBefore
	return k
}

// Including keeps the matched text in the selected region.
func (k Keeper) Including() Keeper {
	k.cfg.Inclusivity = Including
	return k
}

// Excluding leaves the matched text out of the selected region.
func (k Keeper) Excluding() Keeper {
	k.cfg.Inclusivity = Excluding
	return k
}

// UntilFirstMatch bounds the region at the first r met when moving away
// from the match.
func (k Keeper) UntilFirstMatch(r rune) Keeper {
	k.cfg.Secondary, k.cfg.Until = r, UntilFirstMatch
	return k
}

// UntilNoMatch bounds the region at the end of the run of r that touches the
// match.
func (k Keeper) UntilNoMatch(r rune) Keeper {
	k.cfg.Secondary, k.cfg.Until = r, UntilNoMatch
	return k
}

// Encoding sets the code unit used to walk back over the last character of a
// regular expression match. The walk-back is realigned on a character
// boundary, so for valid UTF-8 text both encodings give the same result.
func (k Keeper) Encoding(e Encoding) Keeper {
	k.cfg.Encoding = e
	return k
}

// Logger sets the logger receiving debug records on misses. Nil disables it.
func (k Keeper) Logger(l *slog.Logger) Keeper {
	k.cfg.Logger = l
	return k
}

// With applies options on a copy of the configuration.
func (k Keeper) With(opts ...Option) Keeper {
	k.cfg = k.cfg.With(opts...)
	return k
}

// Config returns a copy of the configuration.
func (k Keeper) Config() Config {
	return k.cfg
}

// Result runs the extraction and reports whether the pattern was found.
func (k Keeper) Result() (string, bool) {
	return extract(k.text, k.pattern, k.cfg)
}

// String runs the extraction and returns its result, "" or the unchanged text
// when the pattern is not found.
func (k Keeper) String() string {
	return Extract(k.text, k.pattern, k.cfg)
}
