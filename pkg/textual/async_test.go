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
	"fmt"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

func TestAsync_MapsValuesInOrder(t *testing.T) {
	ctx := testContext(t)

	in := make(chan string, 3)
	in <- "karøbα"
	in <- ""
	in <- "日本"
	close(in)

	got, err := collectWithContext(ctx, Async(ctx, in, utf8.RuneCountInString))
	if err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	if diff := cmp.Diff([]int{6, 0, 2}, got); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestAsync_StopsOnContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	in := make(chan int)
	out := Async(ctx, in, func(v int) int { return v })
	cancel()

	// in is never closed: only the cancellation can close out.
	items, err := collectWithContext(testContext(t), out)
	if err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no output values, got %#v", items)
	}
}

func TestAsync_RecoversPanic(t *testing.T) {
	ctx, ps := WithPanicStore(testContext(t))

	in := make(chan int, 2)
	in <- 1
	in <- 2
	close(in)

	out := Async(ctx, in, func(v int) int {
		if v == 2 {
			panic("boom")
		}
		return v
	})
	items, err := collectWithContext(ctx, out)
	if err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	if diff := cmp.Diff([]int{1}, items); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}

	info, ok := ps.Load()
	if !ok {
		t.Fatalf("expected the panic to be stored")
	}
	if info.Value != "boom" {
		t.Fatalf("unexpected panic value: got %#v want %q", info.Value, "boom")
	}
	if len(info.Stack) == 0 {
		t.Fatalf("expected a stack trace")
	}
}

func ExampleAsync_withPanicStore() {
	ctx, ps := WithPanicStore(context.Background())

	in := make(chan int, 1)
	in <- 1
	close(in)

	for range Async(ctx, in, func(v int) int { panic("boom") }) {
	}

	info, ok := ps.Load()
	fmt.Println(ok, info.Value)
	// Output: true boom
}
