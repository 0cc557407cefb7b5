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

	"github.com/benoit-pereira-da-silva/textkeeper/pkg/keeper"
)

// MapText returns a processor replacing the text of every item with f(text).
// Index and error are carried over.
func MapText[S Carrier[S]](f func(string) string) ProcessorFunc[S] {
	return func(ctx context.Context, in <-chan S) <-chan S {
		return Async(ctx, in, func(item S) S {
			return rewrap(item, f(item.UTF8String()))
		})
	}
}

// KeepProcessor runs keeper.Extract with p and cfg on the text of every item.
//
//	values := KeepProcessor[carrier.String](keeper.Char('='), keeper.NewConfig(
//		keeper.WithInclusivity(keeper.Excluding),
//	))
func KeepProcessor[S Carrier[S]](p keeper.Pattern, cfg keeper.Config) ProcessorFunc[S] {
	return MapText[S](func(text string) string {
		return keeper.Extract(text, p, cfg)
	})
}

// TrimTrailingProcessor removes the run of r ending the text of every item.
func TrimTrailingProcessor[S Carrier[S]](r rune) ProcessorFunc[S] {
	return MapText[S](func(text string) string {
		return keeper.TrimTrailing(text, r)
	})
}

// TrimTrailingZerosProcessor applies keeper.TrimTrailingZeros to every item.
func TrimTrailingZerosProcessor[S Carrier[S]]() ProcessorFunc[S] {
	return MapText[S](keeper.TrimTrailingZeros)
}
