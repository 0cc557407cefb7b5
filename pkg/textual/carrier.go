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

// Carrier is the value flowing through a pipeline.
//
// The processors of this package only need to read the text of an item, build
// a new item from a piece of text, and keep the ordering index and the
// per-item error of the item they came from:
//
//   - UTF8String returns the text carried by the item.
//   - FromUTF8String builds a fresh item. It is called on the zero value of S
//     and must not depend on receiver state.
//   - WithIndex / GetIndex set and read the sequence number assigned by Lines.
//   - Aggregate merges several items into one (see SyncApply).
//   - WithError / GetError attach and read a non-fatal error.
//
// Errors carried by S are data: no stage stops because GetError() != nil.
//
// See carrier.String for the minimal implementation.
type Carrier[S any] interface {
	UTF8String() string
	FromUTF8String(s string) S
	WithIndex(index int) S
	GetIndex() int
	Aggregate(items []S) S
	WithError(err error) S
	GetError() error
}

// rewrap builds a new item holding text and carrying the index and the error
// of from.
func rewrap[S Carrier[S]](from S, text string) S {
	proto := *new(S)
	out := proto.FromUTF8String(text).WithIndex(from.GetIndex())
	if err := from.GetError(); err != nil {
		out = out.WithError(err)
	}
	return out
}
