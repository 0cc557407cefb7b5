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
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// ScanLines is a bufio.SplitFunc returning each line with its end-of-line
// marker. Unlike bufio.ScanLines it keeps "\r\n" and "\n", so that joining
// the tokens gives back the input.
func ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i+1], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Lines scans r with split (ScanLines when nil) and sends one item per token,
// indexed from 0, on the returned channel.
//
// The bytes of r are assumed to be UTF-8. When the scanner fails, one last
// empty item carrying the error is sent before the channel is closed.
// Canceling ctx stops the scan.
func Lines[S Carrier[S]](ctx context.Context, r io.Reader, split bufio.SplitFunc) <-chan S {
	if ctx == nil {
		ctx = context.Background()
	}
	if split == nil {
		split = ScanLines
	}
	scanner := bufio.NewScanner(r)
	scanner.Split(split)

	out := make(chan S)
	go func() {
		defer close(out)
		proto := *new(S)
		send := func(item S) bool {
			select {
			case <-ctx.Done():
				return false
			case out <- item:
				return true
			}
		}

		index := 0
		for ctx.Err() == nil && scanner.Scan() {
			if !send(proto.FromUTF8String(scanner.Text()).WithIndex(index)) {
				return
			}
			index++
		}
		if err := scanner.Err(); err != nil {
			send(proto.FromUTF8String("").WithIndex(index).WithError(fmt.Errorf("textual: scan token %d: %w", index, err)))
		}
	}()
	return out
}

// Run feeds the tokens of r to p and returns its output.
func Run[S Carrier[S]](ctx context.Context, r io.Reader, split bufio.SplitFunc, p Processor[S]) <-chan S {
	in := Lines[S](ctx, r, split)
	if p == nil {
		return in
	}
	return p.Apply(ctx, in)
}
