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
	"context"
	"log/slog"
	"unicode/utf8"

	"github.com/benoit-pereira-da-silva/textkeeper/pkg/substring"
)

// Extract runs one extraction of p over text.
//
// The pattern is located (first or last occurrence), a character range is
// derived from the match:
//
//	Including + After   [start, ∞)
//	Including + Before  [0, start+unit)
//	Excluding + After   [start+unit, ∞)
//	Excluding + Before  [0, start)
//
// and the text is sliced with substring.Substring. When a run-scan is
// configured, the slice is narrowed to the part between the match and the
// secondary boundary (see Until).
//
// In ModeKeep the (narrowed) slice is returned. In ModeCut the range is
// removed instead: from text when no run-scan is configured, from the slice
// otherwise, so that the result starts or ends at the secondary boundary.
//
// A pattern that is not found is not an error: ModeKeep returns "" and
// ModeCut returns text unchanged.
func Extract(text string, p Pattern, cfg Config) string {
	out, _ := extract(text, p, cfg)
	return out
}

func extract(text string, p Pattern, cfg Config) (string, bool) {
	m, ok := locate(text, p, cfg.Anchor)
	if !ok {
		cfg.debug("keeper: pattern not found",
			slog.String("anchor", cfg.Anchor.String()),
			slog.Int("text_len", len(text)))
		if cfg.Mode == ModeCut {
			return text, false
		}
		return "", false
	}

	start := utf8.RuneCountInString(text[:m.Start])
	unit := p.UnitLen(m, cfg.Encoding)
	r := window(start, unit, cfg)
	kept := substring.Substring(text, r)

	if cfg.Until == UntilNone {
		if cfg.Mode == ModeCut {
			return substring.Remove(text, r), true
		}
		return kept, true
	}

	narrowed, ok := scan(kept, unit, cfg)
	if !ok {
		cfg.debug("keeper: no secondary boundary",
			slog.String("until", cfg.Until.String()),
			slog.String("secondary", string(cfg.Secondary)))
		return kept, true
	}
	if cfg.Mode == ModeCut {
		return substring.Remove(kept, narrowed), true
	}
	return substring.Substring(kept, narrowed), true
}

func locate(text string, p Pattern, a Anchor) (Match, bool) {
	if p == nil {
		return Match{}, false
	}
	if a == AnchorEnd {
		return p.Last(text)
	}
	return p.First(text)
}

// window maps a match starting at character start and spanning unit
// characters to the range selected by cfg.
func window(start, unit int, cfg Config) substring.Range {
	switch {
	case cfg.Inclusivity == Excluding && cfg.Cutoff == CutoffAfter:
		return substring.From(start + unit)
	case cfg.Inclusivity == Excluding:
		return substring.To(start)
	case cfg.Cutoff == CutoffBefore:
		return substring.To(start + unit)
	default:
		return substring.From(start)
	}
}

func (c Config) debug(msg string, attrs ...slog.Attr) {
	if c.Logger == nil {
		return
	}
	c.Logger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}
