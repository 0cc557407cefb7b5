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

// Package textual streams text through keeper extractions.
//
// A pipeline is a chain of Processor stages connected by channels. Lines
// splits an io.Reader into indexed items, stages such as KeepProcessor and
// TrimTrailingProcessor rewrite the text of each item, and the caller ranges
// over the output:
//
//	ctx, ps := textual.WithPanicStore(ctx)
//	chain := textual.NewChain[carrier.String](
//		textual.KeepProcessor[carrier.String](keeper.Char('='), cfg),
//		textual.TrimTrailingZerosProcessor[carrier.String](),
//	)
//	for item := range textual.Run[carrier.String](ctx, r, nil, chain) {
//		fmt.Print(item.Value)
//	}
//	if info, ok := ps.Load(); ok {
//		// a stage panicked
//	}
//
// The keeper and substring packages stay synchronous; goroutines only live
// here.
package textual
