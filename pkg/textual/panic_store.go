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
	"sync"
)

// PanicInfo is a panic recovered inside a pipeline stage.
type PanicInfo struct {
	Value any
	Stack []byte
}

// PanicStore keeps the first panic recovered by the stages sharing a
// context. Stages run in goroutines and have no error return, so the caller
// checks the store once the output has been drained:
//
//	ctx, ps := WithPanicStore(ctx)
//	for range chain.Apply(ctx, in) {
//	}
//	if info, ok := ps.Load(); ok {
//		return fmt.Errorf("pipeline: %v", info.Value)
//	}
//
// A nil *PanicStore is valid and records nothing.
type PanicStore struct {
	mu   sync.Mutex
	info PanicInfo
	set  bool
}

// Store records value and stack unless a panic is already stored.
func (ps *PanicStore) Store(value any, stack []byte) {
	if ps == nil {
		return
	}
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.set {
		return
	}
	ps.info = PanicInfo{Value: value, Stack: append([]byte(nil), stack...)}
	ps.set = true
}

// Load returns a copy of the stored panic.
func (ps *PanicStore) Load() (PanicInfo, bool) {
	if ps == nil {
		return PanicInfo{}, false
	}
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if !ps.set {
		return PanicInfo{}, false
	}
	return PanicInfo{Value: ps.info.Value, Stack: append([]byte(nil), ps.info.Stack...)}, true
}

type panicStoreKey struct{}

// WithPanicStore returns a child of parent carrying a new PanicStore.
func WithPanicStore(parent context.Context) (context.Context, *PanicStore) {
	if parent == nil {
		parent = context.Background()
	}
	ps := &PanicStore{}
	return context.WithValue(parent, panicStoreKey{}, ps), ps
}

// PanicStoreFromContext returns the store carried by ctx, or nil.
func PanicStoreFromContext(ctx context.Context) *PanicStore {
	if ctx == nil {
		return nil
	}
	ps, _ := ctx.Value(panicStoreKey{}).(*PanicStore)
	return ps
}

// EnsurePanicStore returns ctx and its store, attaching a new store when ctx
// has none.
func EnsurePanicStore(ctx context.Context) (context.Context, *PanicStore) {
	if ps := PanicStoreFromContext(ctx); ps != nil {
		return ctx, ps
	}
	return WithPanicStore(ctx)
}
