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

// This file holds the leaf-construct recognizers. Each one inspects a
// single line (without its trailing newline) and either claims it or
// declines; pairing with end markers and extent decisions happen in
// greater.go. All returned spans are relative to the start of the
// line; callers rebase them against the line's document offset.

// rebase shifts a line-relative span by the line's document offset.
func rebase(s Span, lineStart int) Span {
	if !s.IsValid() {
		return s
	}
	return Span{s.Start + lineStart, s.End + lineStart}
}

// trimSpan narrows [start, end) to exclude surrounding spaces and tabs.
func trimSpan(line []byte, start, end int) Span {
	for start < end && (line[start] == ' ' || line[start] == '\t') {
		start++
	}
	for end > start && (line[end-1] == ' ' || line[end-1] == '\t') {
		end--
	}
	return Span{start, end}
}

// parseHeadlineStars reports the level of a headline line, or zero.
// A headline is a line starting with stars in column zero followed by
// a space or tab.
func parseHeadlineStars(line []byte) int {
	stars := countLeading(line, 0, '*')
	if stars == 0 || stars >= len(line) {
		return 0
	}
	if b := line[stars]; b != ' ' && b != '\t' {
		return 0
	}
	return stars
}

// parseKeywordLine attempts to parse "#+KEY: value".
// The key may not be empty and may not contain whitespace.
func parseKeywordLine(line []byte) (key, value Span, ok bool) {
	i := lineIndentEnd(line)
	if !bytes.HasPrefix(line[i:], []byte("#+")) {
		return NullSpan(), NullSpan(), false
	}
	keyStart := i + 2
	j := keyStart
	for j < len(line) && line[j] != ':' && line[j] != ' ' && line[j] != '\t' {
		j++
	}
	if j == keyStart || j >= len(line) || line[j] != ':' {
		return NullSpan(), NullSpan(), false
	}
	return Span{keyStart, j}, trimSpan(line, j+1, len(line)), true
}

// parseComment attempts to parse a comment line:
// "#" alone or "#" followed by a space or tab.
func parseComment(line []byte) bool {
	i := lineIndentEnd(line)
	if i >= len(line) || line[i] != '#' {
		return false
	}
	if i+1 == len(line) {
		return true
	}
	return line[i+1] == ' ' || line[i+1] == '\t'
}

// parseHorizontalRule attempts to parse a rule line:
// five or more dashes with nothing but whitespace around them.
func parseHorizontalRule(line []byte) bool {
	i := lineIndentEnd(line)
	n := countLeading(line, i, '-')
	if n < 5 {
		return false
	}
	return isBlankLine(line[i+n:])
}

// parseFixedWidth attempts to parse a fixed-width line:
// ":" alone or ": " after optional indentation.
func parseFixedWidth(line []byte) bool {
	i := lineIndentEnd(line)
	if i >= len(line) || line[i] != ':' {
		return false
	}
	if i+1 == len(line) {
		return true
	}
	return line[i+1] == ' ' || line[i+1] == '\t'
}

// parseBlockDelimiter attempts to parse "#+BEGIN_name parameters" or
// "#+END_name". The name match is ASCII case-insensitive.
func parseBlockDelimiter(line []byte) (name, parameters Span, begin, ok bool) {
	i := lineIndentEnd(line)
	var nameStart int
	switch {
	case hasKeywordFold(line, i, "#+BEGIN_"):
		begin = true
		nameStart = i + len("#+BEGIN_")
	case hasKeywordFold(line, i, "#+END_"):
		nameStart = i + len("#+END_")
	default:
		return NullSpan(), NullSpan(), false, false
	}
	j := nameStart
	for j < len(line) && line[j] != ' ' && line[j] != '\t' {
		j++
	}
	if j == nameStart {
		return NullSpan(), NullSpan(), false, false
	}
	name = Span{nameStart, j}
	parameters = NullSpan()
	if begin {
		if p := trimSpan(line, j, len(line)); p.Len() > 0 {
			parameters = p
		}
	} else if !isBlankLine(line[j:]) {
		// Trailing text invalidates an end marker.
		return NullSpan(), NullSpan(), false, false
	}
	return name, parameters, begin, true
}

// parseDynamicBlockDelimiter attempts to parse "#+BEGIN: name params"
// or "#+END:".
func parseDynamicBlockDelimiter(line []byte) (name, parameters Span, begin, ok bool) {
	i := lineIndentEnd(line)
	switch {
	case hasKeywordFold(line, i, "#+BEGIN:"):
		rest := i + len("#+BEGIN:")
		nameSpan := firstWord(line, rest)
		if !nameSpan.IsValid() {
			return NullSpan(), NullSpan(), false, false
		}
		parameters = NullSpan()
		if p := trimSpan(line, nameSpan.End, len(line)); p.Len() > 0 {
			parameters = p
		}
		return nameSpan, parameters, true, true
	case hasKeywordFold(line, i, "#+END:"):
		if !isBlankLine(line[i+len("#+END:"):]) {
			return NullSpan(), NullSpan(), false, false
		}
		return NullSpan(), NullSpan(), false, true
	default:
		return NullSpan(), NullSpan(), false, false
	}
}

// parseDrawerDelimiter attempts to parse ":NAME:" with nothing else on
// the line. Names are runs of letters, digits, '-', and '_'.
func parseDrawerDelimiter(line []byte) (name Span, ok bool) {
	i := lineIndentEnd(line)
	if i >= len(line) || line[i] != ':' {
		return NullSpan(), false
	}
	j := i + 1
	for j < len(line) && isWordByte(line[j]) {
		j++
	}
	if j == i+1 || j >= len(line) || line[j] != ':' {
		return NullSpan(), false
	}
	if !isBlankLine(line[j+1:]) {
		return NullSpan(), false
	}
	return Span{i + 1, j}, true
}

// isDrawerEnd reports whether the line is a ":END:" drawer terminator.
func isDrawerEnd(line []byte) bool {
	name, ok := parseDrawerDelimiter(line)
	return ok && hasKeywordFold(line, name.Start, "end") && name.Len() == 3
}

// parseLatexEnvironmentBegin attempts to parse "\begin{name}".
func parseLatexEnvironmentBegin(line []byte) (name Span, ok bool) {
	i := lineIndentEnd(line)
	if !bytes.HasPrefix(line[i:], []byte(`\begin{`)) {
		return NullSpan(), false
	}
	nameStart := i + len(`\begin{`)
	j := nameStart
	for j < len(line) && (isWordByte(line[j]) || line[j] == '*') {
		j++
	}
	if j == nameStart || j >= len(line) || line[j] != '}' {
		return NullSpan(), false
	}
	return Span{nameStart, j}, true
}

// isLatexEnvironmentEnd reports whether the line closes the named
// environment with "\end{name}".
func isLatexEnvironmentEnd(line, name []byte) bool {
	i := lineIndentEnd(line)
	if !bytes.HasPrefix(line[i:], []byte(`\end{`)) {
		return false
	}
	rest := line[i+len(`\end{`):]
	if !bytes.HasPrefix(rest, name) {
		return false
	}
	rest = rest[len(name):]
	return len(rest) > 0 && rest[0] == '}' && isBlankLine(rest[1:])
}

// parseTableRowStart reports whether the line begins a table row.
func parseTableRowStart(line []byte) bool {
	i := lineIndentEnd(line)
	return i < len(line) && line[i] == '|'
}

// isTableSeparatorRow reports whether the row consists solely of '|',
// '-', and '+' (a horizontal rule row inside a table).
func isTableSeparatorRow(line []byte) bool {
	i := lineIndentEnd(line)
	if i >= len(line) || line[i] != '|' {
		return false
	}
	sawDash := false
	for _, b := range line[i:] {
		switch b {
		case '|', '+':
		case '-':
			sawDash = true
		case ' ', '\t':
		default:
			return false
		}
	}
	return sawDash
}

// parseClockLine attempts to parse a "CLOCK:" line. Value spans the
// timestamp text; duration spans the total after "=>", if present.
func parseClockLine(line []byte) (value, duration Span, ok bool) {
	i := lineIndentEnd(line)
	if !hasKeywordFold(line, i, "CLOCK:") {
		return NullSpan(), NullSpan(), false
	}
	rest := i + len("CLOCK:")
	duration = NullSpan()
	if arrow := bytes.Index(line[rest:], []byte("=>")); arrow >= 0 {
		value = trimSpan(line, rest, rest+arrow)
		duration = trimSpan(line, rest+arrow+2, len(line))
	} else {
		value = trimSpan(line, rest, len(line))
	}
	if value.Len() == 0 {
		return NullSpan(), NullSpan(), false
	}
	return value, duration, true
}

// parseFootnoteDefinitionStart attempts to parse "[fn:label]" in
// column zero. contentStart is the line offset just past the marker.
func parseFootnoteDefinitionStart(line []byte) (label Span, contentStart int, ok bool) {
	if !bytes.HasPrefix(line, []byte("[fn:")) {
		return NullSpan(), 0, false
	}
	j := len("[fn:")
	for j < len(line) && isWordByte(line[j]) {
		j++
	}
	if j == len("[fn:") || j >= len(line) || line[j] != ']' {
		return NullSpan(), 0, false
	}
	return Span{len("[fn:"), j}, j + 1, true
}

// listBullet describes a recognized list item bullet.
type listBullet struct {
	indent int  // column of the bullet
	bullet Span // the bullet characters, excluding trailing space
	end    int  // offset just past the bullet and its trailing space
	kind   ListKind
}

// parseListBullet attempts to parse an item bullet: "-", "+", an
// indented "*", or "N." / "N)". The bullet must be followed by
// whitespace or end the line.
func parseListBullet(line []byte) (listBullet, bool) {
	i := lineIndentEnd(line)
	if i >= len(line) {
		return listBullet{}, false
	}
	indent := lineIndent(line)
	var b listBullet
	switch c := line[i]; {
	case c == '-' || c == '+':
		b = listBullet{indent: indent, bullet: Span{i, i + 1}, end: i + 1, kind: ListUnordered}
	case c == '*' && i > 0:
		// An unindented star run is a headline, never a bullet.
		b = listBullet{indent: indent, bullet: Span{i, i + 1}, end: i + 1, kind: ListUnordered}
	case isDigit(c):
		j := i
		for j < len(line) && isDigit(line[j]) {
			j++
		}
		if j >= len(line) || (line[j] != '.' && line[j] != ')') {
			return listBullet{}, false
		}
		b = listBullet{indent: indent, bullet: Span{i, j + 1}, end: j + 1, kind: ListOrdered}
	default:
		return listBullet{}, false
	}
	if b.end < len(line) && line[b.end] != ' ' && line[b.end] != '\t' {
		return listBullet{}, false
	}
	if b.end < len(line) {
		b.end++
	}
	return b, true
}

// lineIndentEnd returns the offset of the first non-whitespace byte,
// or len(line).
func lineIndentEnd(line []byte) int {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return i
}

// firstWord returns the span of the first whitespace-delimited word at
// or after i, or an invalid span.
func firstWord(line []byte, i int) Span {
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	if i >= len(line) {
		return NullSpan()
	}
	j := i
	for j < len(line) && line[j] != ' ' && line[j] != '\t' {
		j++
	}
	return Span{i, j}
}

// classifyBlockName maps a block name to its variant tag.
func classifyBlockName(name []byte) BlockVariant {
	switch {
	case hasKeywordFold(name, 0, "center") && len(name) == 6:
		return BlockCenter
	case hasKeywordFold(name, 0, "quote") && len(name) == 5:
		return BlockQuote
	case hasKeywordFold(name, 0, "verse") && len(name) == 5:
		return BlockVerse
	case hasKeywordFold(name, 0, "comment") && len(name) == 7:
		return BlockComment
	case hasKeywordFold(name, 0, "example") && len(name) == 7:
		return BlockExample
	case hasKeywordFold(name, 0, "export") && len(name) == 6:
		return BlockExport
	case hasKeywordFold(name, 0, "src") && len(name) == 3:
		return BlockSrc
	default:
		return BlockSpecial
	}
}
