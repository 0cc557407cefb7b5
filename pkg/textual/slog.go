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

package textual

import (
	"context"
	"log/slog"
)

// Slog logs every item with slog.Default and forwards it unchanged.
func Slog[S Carrier[S]](label string) ProcessorFunc[S] {
	return SlogTo[S](nil, label)
}

// SlogTo is Slog with an explicit logger. Items carrying an error are logged
// at error level, the others at info level.
func SlogTo[S Carrier[S]](logger *slog.Logger, label string) ProcessorFunc[S] {
	return func(ctx context.Context, in <-chan S) <-chan S {
		l := logger
		if l == nil {
			l = slog.Default()
		}
		return Async(ctx, in, func(item S) S {
			if err := item.GetError(); err != nil {
				l.Error(label, "err", err, "index", item.GetIndex(), "text", item.UTF8String())
			} else {
				l.Info(label, "index", item.GetIndex(), "text", item.UTF8String())
			}
			return item
		})
	}
}
