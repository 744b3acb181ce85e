// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package org

import "fmt"

// Span is a range of bytes within a document's source,
// identified by a half-open interval [Start, End).
type Span struct {
	Start int
	End   int
}

// NullSpan returns an invalid span.
func NullSpan() Span {
	return Span{-1, -1}
}

// IsValid reports whether the span is valid.
func (s Span) IsValid() bool {
	return s.Start >= 0 && s.End >= s.Start
}

// Len returns the length of the span
// or zero if the span is invalid.
func (s Span) Len() int {
	if !s.IsValid() {
		return 0
	}
	return s.End - s.Start
}

// Contains reports whether other lies entirely within s.
func (s Span) Contains(other Span) bool {
	return s.IsValid() && other.IsValid() &&
		s.Start <= other.Start && other.End <= s.End
}

// String formats the span in the form "[start,end)".
func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// spanSlice returns the bytes of b that the span refers to.
func spanSlice(b []byte, span Span) []byte {
	if !span.IsValid() {
		return nil
	}
	return b[span.Start:span.End]
}
