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
	"runtime/debug"
)

// Async starts a single goroutine applying f to every value of in and sending
// the results, in order, on the returned unbuffered channel.
//
// Contract:
//
//   - in is never closed by Async;
//   - the output is closed exactly once, when in is closed, when ctx is
//     canceled, or when f panics;
//   - every receive and every send also watches ctx.Done(), so a consumer
//     that stops reading must cancel ctx to release the goroutine.
//
// A panic in f is recovered and recorded in the PanicStore of ctx (one is
// attached when ctx has none, in which case the panic is only visible as an
// early close). It is not rethrown.
//
// f does not receive ctx; capture it in the closure if the mapping needs it.
func Async[T1 any, T2 any](ctx context.Context, in <-chan T1, f func(t T1) T2) <-chan T2 {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, ps := EnsurePanicStore(ctx)
	ctx, cancel := context.WithCancel(ctx)

	out := make(chan T2)
	go func() {
		defer close(out)
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				ps.Store(r, debug.Stack())
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-in:
				if !ok {
					return
				}
				res := f(v)
				select {
				case <-ctx.Done():
					return
				case out <- res:
				}
			}
		}
	}()
	return out
}
