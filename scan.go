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

import "bytes"

// tabWidth is the column multiple a tab character advances to
// when comparing list indentation.
const tabWidth = 8

// findFirst returns the offset of the nearest byte at or after i
// that is in set, or len(src) if no such byte exists.
func findFirst(src []byte, i int, set string) int {
	if i >= len(src) {
		return len(src)
	}
	j := bytes.IndexAny(src[i:], set)
	if j < 0 {
		return len(src)
	}
	return i + j
}

// hasKeywordFold reports whether src[i:] begins with keyword,
// comparing ASCII letters case-insensitively.
func hasKeywordFold(src []byte, i int, keyword string) bool {
	if i < 0 || len(src)-i < len(keyword) {
		return false
	}
	for j := 0; j < len(keyword); j++ {
		a := src[i+j]
		b := keyword[j]
		if 'A' <= a && a <= 'Z' {
			a += 'a' - 'A'
		}
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}
		if a != b {
			return false
		}
	}
	return true
}

// lineEnd returns the offset of the newline terminating the line
// containing i, or len(src): the buffer end acts as an implicit
// terminator.
func lineEnd(src []byte, i int) int {
	if i >= len(src) {
		return len(src)
	}
	j := bytes.IndexByte(src[i:], '\n')
	if j < 0 {
		return len(src)
	}
	return i + j
}

// nextLineStart returns the offset of the first byte of the line
// after the one containing i, or len(src).
func nextLineStart(src []byte, i int) int {
	end := lineEnd(src, i)
	if end < len(src) {
		return end + 1
	}
	return end
}

// countLeading returns the length of the run of b starting at i.
func countLeading(src []byte, i int, b byte) int {
	n := 0
	for i+n < len(src) && src[i+n] == b {
		n++
	}
	return n
}

// isBlankLine reports whether the line contains only whitespace.
func isBlankLine(line []byte) bool {
	for _, b := range line {
		if !(b == '\r' || b == '\n' || b == ' ' || b == '\t') {
			return false
		}
	}
	return true
}

// lineIndent returns the column width of the line's leading
// whitespace, counting tabs as advancing to the next tab stop.
func lineIndent(line []byte) int {
	indent := 0
	for _, b := range line {
		switch b {
		case ' ':
			indent++
		case '\t':
			indent += tabWidth - indent%tabWidth
		default:
			return indent
		}
	}
	return indent
}

// isWordByte reports whether b can appear in a drawer or footnote
// label: ASCII letters, digits, '-', and '_'.
func isWordByte(b byte) bool {
	return 'a' <= b && b <= 'z' ||
		'A' <= b && b <= 'Z' ||
		'0' <= b && b <= '9' ||
		b == '-' || b == '_'
}

// isDigit reports whether b is an ASCII digit.
func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// isLetter reports whether b is an ASCII letter.
func isLetter(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}
