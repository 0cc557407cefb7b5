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

// SyncApply runs p on the single item in and waits for its output.
//
// No output returns in unchanged, one output is returned as is and several
// outputs are merged with Aggregate.
func SyncApply[S Carrier[S]](ctx context.Context, p Processor[S], in S) S {
	if ctx == nil {
		ctx = context.Background()
	}
	if p == nil {
		return in
	}
	ch := make(chan S, 1)
	ch <- in
	close(ch)

	var results []S
	for res := range p.Apply(ctx, ch) {
		results = append(results, res)
	}
	switch len(results) {
	case 0:
		return in
	case 1:
		return results[0]
	default:
		return (*new(S)).Aggregate(results)
	}
}
