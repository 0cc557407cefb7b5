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
	"strings"
	"testing"

	"github.com/benoit-pereira-da-silva/textkeeper/pkg/carrier"
	"github.com/google/go-cmp/cmp"
)

func suffix(s string) ProcessorFunc[carrier.String] {
	return MapText[carrier.String](func(text string) string { return text + s })
}

func TestChain_RunsStagesInOrder(t *testing.T) {
	ctx := testContext(t)

	chain := NewChain[carrier.String](suffix("1"), nil, suffix("2"))
	items, err := collectWithContext(ctx, chain.Apply(ctx, feed("a", "b")))
	if err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	if diff := cmp.Diff([]string{"a12", "b12"}, values(items)); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}

	items, err = collectWithContext(ctx, suffix("x").Chain(suffix("y"), suffix("z")).Apply(ctx, feed("a")))
	if err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	if diff := cmp.Diff([]string{"axyz"}, values(items)); diff != "" {
		t.Fatalf("unexpected output of ProcessorFunc.Chain (-want +got):\n%s", diff)
	}
}

func TestChain_EmptyReturnsInput(t *testing.T) {
	in := feed("a")
	if got := NewChain[carrier.String]().Apply(context.Background(), in); got != in {
		t.Fatalf("an empty chain must return its input channel")
	}
}

func TestProcessorFunc_NilAndPanickingStages(t *testing.T) {
	ctx, ps := WithPanicStore(testContext(t))

	var nilFunc ProcessorFunc[carrier.String]
	items, err := collectWithContext(ctx, nilFunc.Apply(ctx, feed("a")))
	if err != nil || len(items) != 0 {
		t.Fatalf("nil ProcessorFunc: got %#v, %v", items, err)
	}
	if _, ok := ps.Load(); !ok {
		t.Fatalf("the nil ProcessorFunc panic was not stored")
	}

	ctx, ps = WithPanicStore(testContext(t))
	nilChannel := ProcessorFunc[carrier.String](func(context.Context, <-chan carrier.String) <-chan carrier.String {
		return nil
	})
	items, err = collectWithContext(ctx, nilChannel.Apply(ctx, feed("a")))
	if err != nil || len(items) != 0 {
		t.Fatalf("nil channel: got %#v, %v", items, err)
	}
	info, ok := ps.Load()
	if !ok || !strings.Contains(info.Value.(string), "nil channel") {
		t.Fatalf("the nil channel was not reported: %#v", info)
	}
}

func TestPanicStore_KeepsFirstPanic(t *testing.T) {
	_, ps := WithPanicStore(context.Background())
	stack := []byte("stack")
	ps.Store("first", stack)
	ps.Store("second", nil)
	stack[0] = 'X'

	info, ok := ps.Load()
	if !ok || info.Value != "first" || string(info.Stack) != "stack" {
		t.Fatalf("unexpected panic info: %#v (ok=%v)", info, ok)
	}

	var none *PanicStore
	none.Store("ignored", nil)
	if _, ok := none.Load(); ok {
		t.Fatalf("a nil store reported a panic")
	}

	ctx, ps := EnsurePanicStore(context.Background())
	if again, same := EnsurePanicStore(ctx); again != ctx || same != ps {
		t.Fatalf("EnsurePanicStore replaced an existing store")
	}
}

func TestSyncApply(t *testing.T) {
	ctx := testContext(t)
	in := carrier.String{Value: "1.2500", Index: 4}

	got := SyncApply[carrier.String](ctx, TrimTrailingZerosProcessor[carrier.String](), in)
	if got.Value != "1.25" || got.Index != 4 {
		t.Fatalf("single output: got %#v", got)
	}

	drop := ProcessorFunc[carrier.String](func(ctx context.Context, in <-chan carrier.String) <-chan carrier.String {
		out := make(chan carrier.String)
		go func() {
			defer close(out)
			for range in {
			}
		}()
		return out
	})
	if got := SyncApply[carrier.String](ctx, drop, in); got != in {
		t.Fatalf("no output must return the input: got %#v", got)
	}

	split := ProcessorFunc[carrier.String](func(ctx context.Context, in <-chan carrier.String) <-chan carrier.String {
		out := make(chan carrier.String, 8)
		go func() {
			defer close(out)
			for item := range in {
				for i, part := range strings.Split(item.Value, ".") {
					out <- carrier.String{Value: part, Index: 1 - i}
				}
			}
		}()
		return out
	})
	if got := SyncApply[carrier.String](ctx, split, in); got.Value != "25001" {
		t.Fatalf("several outputs must be aggregated by index: got %q", got.Value)
	}
}
