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

// Package carrier holds the item types streamed by the textual pipeline.
package carrier

import (
	"cmp"
	"errors"
	"slices"
	"strings"
)

// String is a line (or any token) of text with its sequence index and an
// optional non-fatal error. It implements textual.Carrier[String].
type String struct {
	Value string
	Index int
	Error error
}

func (s String) UTF8String() string {
	return s.Value
}

// FromUTF8String returns a new String holding str. The receiver is ignored.
func (s String) FromUTF8String(str string) String {
	return String{Value: str}
}

func (s String) WithIndex(idx int) String {
	s.Index = idx
	return s
}

func (s String) GetIndex() int {
	return s.Index
}

// Aggregate concatenates items in Index order. Items sharing an index keep
// their relative order. Errors are joined.
func (s String) Aggregate(items []String) String {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b String) int {
		return cmp.Compare(a.Index, b.Index)
	})

	var b strings.Builder
	var errs []error
	for _, it := range sorted {
		b.WriteString(it.Value)
		if it.Error != nil {
			errs = append(errs, it.Error)
		}
	}
	out := String{Value: b.String(), Error: errors.Join(errs...)}
	if len(sorted) > 0 {
		out.Index = sorted[0].Index
	}
	return out
}

// WithError attaches err, joining it with any error already carried. A nil
// err is ignored.
func (s String) WithError(err error) String {
	if err == nil {
		return s
	}
	s.Error = errors.Join(s.Error, err)
	return s
}

func (s String) GetError() error {
	return s.Error
}
