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

import "context"

// Chain runs processors one after the other.
//
//	chain := NewChain[carrier.String](
//		KeepProcessor[carrier.String](keeper.Char('='), keeper.NewConfig(keeper.WithInclusivity(keeper.Excluding))),
//		TrimTrailingProcessor[carrier.String](' '),
//	)
//	for item := range chain.Apply(ctx, Lines[carrier.String](ctx, r, nil)) {
//		fmt.Println(item.Value)
//	}
type Chain[S Carrier[S]] struct {
	processors []Processor[S]
}

// NewChain returns a Chain of processors. Nil processors are skipped.
func NewChain[S Carrier[S]](processors ...Processor[S]) *Chain[S] {
	return &Chain[S]{processors: processors}
}

// Apply wires the stages together and returns the output of the last one.
// An empty chain returns in.
func (c *Chain[S]) Apply(ctx context.Context, in <-chan S) <-chan S {
	out := in
	for _, p := range c.processors {
		if p == nil {
			continue
		}
		out = p.Apply(ctx, out)
	}
	return out
}
