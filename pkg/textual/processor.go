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

// Processor is one stage of a pipeline.
//
// Apply reads items from in and returns the channel it writes results to.
// Implementations must:
//
//   - return a non-nil channel and close it when done;
//   - stop promptly when ctx is canceled;
//   - never close in, which belongs to the upstream stage.
type Processor[S Carrier[S]] interface {
	Apply(ctx context.Context, in <-chan S) <-chan S
}

// ProcessorFunc adapts a function to Processor.
//
//	upper := ProcessorFunc[carrier.String](func(ctx context.Context, in <-chan carrier.String) <-chan carrier.String {
//		return Async(ctx, in, func(s carrier.String) carrier.String {
//			s.Value = strings.ToUpper(s.Value)
//			return s
//		})
//	})
type ProcessorFunc[S Carrier[S]] func(ctx context.Context, in <-chan S) <-chan S

// Apply calls f(ctx, in).
//
// A panic raised while building the stage (a nil f included) is recorded in
// the PanicStore of ctx and a closed channel is returned. So is a nil output
// channel.
func (f ProcessorFunc[S]) Apply(ctx context.Context, in <-chan S) (out <-chan S) {
	ctx, ps := EnsurePanicStore(ctx)
	defer func() {
		if r := recover(); r != nil {
			ps.Store(r, debug.Stack())
			out = closedChan[S]()
		}
	}()

	out = f(ctx, in)
	if out == nil {
		ps.Store("textual: ProcessorFunc returned a nil channel", debug.Stack())
		out = closedChan[S]()
	}
	return out
}

// Chain returns a processor running f then each of p in order. Nil processors
// are skipped.
func (f ProcessorFunc[S]) Chain(p ...Processor[S]) ProcessorFunc[S] {
	if len(p) == 0 {
		return f
	}
	return NewChain[S](append([]Processor[S]{f}, p...)...).Apply
}

func closedChan[T any]() <-chan T {
	ch := make(chan T)
	close(ch)
	return ch
}
