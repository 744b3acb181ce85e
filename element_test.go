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

import "testing"

func TestParseHeadlineStars(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"* x", 1},
		{"** x", 2},
		{"*** ", 3},
		{"*\tx", 1},
		{"*x", 0},
		{"*", 0},
		{"**", 0},
		{" * x", 0},
		{"x", 0},
		{"", 0},
	}
	for _, test := range tests {
		if got := parseHeadlineStars([]byte(test.line)); got != test.want {
			t.Errorf("parseHeadlineStars(%q) = %d; want %d", test.line, got, test.want)
		}
	}
}

func TestParseKeywordLine(t *testing.T) {
	tests := []struct {
		line      string
		key       string
		value     string
		ok        bool
	}{
		{"#+TITLE: My Doc", "TITLE", "My Doc", true},
		{"#+title: lower", "title", "lower", true},
		{"  #+KEY: v", "KEY", "v", true},
		{"#+KEY:", "KEY", "", true},
		{"#+: nothing", "", "", false},
		{"#+KEY value", "", "", false},
		{"# comment", "", "", false},
		{"text", "", "", false},
	}
	for _, test := range tests {
		line := []byte(test.line)
		key, value, ok := parseKeywordLine(line)
		if ok != test.ok {
			t.Errorf("parseKeywordLine(%q) ok = %t; want %t", test.line, ok, test.ok)
			continue
		}
		if !ok {
			continue
		}
		if got := string(spanSlice(line, key)); got != test.key {
			t.Errorf("parseKeywordLine(%q) key = %q; want %q", test.line, got, test.key)
		}
		if got := string(spanSlice(line, value)); got != test.value {
			t.Errorf("parseKeywordLine(%q) value = %q; want %q", test.line, got, test.value)
		}
	}
}

func TestParseBlockDelimiter(t *testing.T) {
	tests := []struct {
		line   string
		name   string
		params string
		begin  bool
		ok     bool
	}{
		{"#+BEGIN_SRC python", "SRC", "python", true, true},
		{"#+begin_src", "src", "", true, true},
		{"#+END_SRC", "SRC", "", false, true},
		{"#+END_SRC trailing", "", "", false, false},
		{"#+BEGIN_", "", "", false, false},
		{"#+BEGIN: dyn", "", "", false, false},
		{"plain", "", "", false, false},
	}
	for _, test := range tests {
		line := []byte(test.line)
		name, params, begin, ok := parseBlockDelimiter(line)
		if ok != test.ok || begin != test.begin {
			t.Errorf("parseBlockDelimiter(%q) = (begin=%t, ok=%t); want (begin=%t, ok=%t)",
				test.line, begin, ok, test.begin, test.ok)
			continue
		}
		if !ok {
			continue
		}
		if got := string(spanSlice(line, name)); got != test.name {
			t.Errorf("parseBlockDelimiter(%q) name = %q; want %q", test.line, got, test.name)
		}
		if test.params != "" {
			if got := string(spanSlice(line, params)); got != test.params {
				t.Errorf("parseBlockDelimiter(%q) params = %q; want %q", test.line, got, test.params)
			}
		} else if params.IsValid() {
			t.Errorf("parseBlockDelimiter(%q) params = %v; want invalid", test.line, params)
		}
	}
}

func TestParseDrawerDelimiter(t *testing.T) {
	tests := []struct {
		line string
		name string
		ok   bool
	}{
		{":PROPERTIES:", "PROPERTIES", true},
		{":LOG-BOOK_2:", "LOG-BOOK_2", true},
		{"  :NOTES:  ", "NOTES", true},
		{":END:", "END", true},
		{"::", "", false},
		{":NAME: trailing", "", false},
		{":NA ME:", "", false},
		{"NAME:", "", false},
	}
	for _, test := range tests {
		line := []byte(test.line)
		name, ok := parseDrawerDelimiter(line)
		if ok != test.ok {
			t.Errorf("parseDrawerDelimiter(%q) ok = %t; want %t", test.line, ok, test.ok)
			continue
		}
		if ok {
			if got := string(spanSlice(line, name)); got != test.name {
				t.Errorf("parseDrawerDelimiter(%q) name = %q; want %q", test.line, got, test.name)
			}
		}
	}
	if !isDrawerEnd([]byte(":END:")) || !isDrawerEnd([]byte(":end:")) {
		t.Error("isDrawerEnd should accept :END: case-insensitively")
	}
	if isDrawerEnd([]byte(":ENDING:")) {
		t.Error("isDrawerEnd accepted :ENDING:")
	}
}

func TestParseListBullet(t *testing.T) {
	tests := []struct {
		line   string
		kind   ListKind
		indent int
		ok     bool
	}{
		{"- a", ListUnordered, 0, true},
		{"+ a", ListUnordered, 0, true},
		{"  * a", ListUnordered, 2, true},
		{"* a", 0, 0, false}, // headline, never a bullet
		{"3. x", ListOrdered, 0, true},
		{"12) x", ListOrdered, 0, true},
		{"-", ListUnordered, 0, true},
		{"-next", 0, 0, false},
		{"3x", 0, 0, false},
		{"word", 0, 0, false},
	}
	for _, test := range tests {
		b, ok := parseListBullet([]byte(test.line))
		if ok != test.ok {
			t.Errorf("parseListBullet(%q) ok = %t; want %t", test.line, ok, test.ok)
			continue
		}
		if !ok {
			continue
		}
		if b.kind != test.kind || b.indent != test.indent {
			t.Errorf("parseListBullet(%q) = kind %v indent %d; want kind %v indent %d",
				test.line, b.kind, b.indent, test.kind, test.indent)
		}
	}
}

func TestLineRecognizers(t *testing.T) {
	if !parseComment([]byte("# note")) || !parseComment([]byte("#")) || parseComment([]byte("#+KEY: v")) || parseComment([]byte("#hash")) {
		t.Error("parseComment misclassified a line")
	}
	if !parseHorizontalRule([]byte("-----")) || !parseHorizontalRule([]byte("  ------  ")) || parseHorizontalRule([]byte("----")) || parseHorizontalRule([]byte("----- x")) {
		t.Error("parseHorizontalRule misclassified a line")
	}
	if !parseFixedWidth([]byte(": text")) || !parseFixedWidth([]byte(":")) || parseFixedWidth([]byte(":text")) {
		t.Error("parseFixedWidth misclassified a line")
	}
	if !parseTableRowStart([]byte("| a |")) || parseTableRowStart([]byte("a | b")) {
		t.Error("parseTableRowStart misclassified a line")
	}
	if !isTableSeparatorRow([]byte("|---+---|")) || isTableSeparatorRow([]byte("| a |")) || isTableSeparatorRow([]byte("|||")) {
		t.Error("isTableSeparatorRow misclassified a row")
	}
}

func TestParseClockLine(t *testing.T) {
	line := []byte("CLOCK: [2024-01-15 Mon 09:00]--[2024-01-15 Mon 10:30] =>  1:30")
	value, duration, ok := parseClockLine(line)
	if !ok {
		t.Fatal("parseClockLine declined")
	}
	if got := string(spanSlice(line, value)); got != "[2024-01-15 Mon 09:00]--[2024-01-15 Mon 10:30]" {
		t.Errorf("value = %q", got)
	}
	if got := string(spanSlice(line, duration)); got != "1:30" {
		t.Errorf("duration = %q", got)
	}
	if _, _, ok := parseClockLine([]byte("CLOCK:")); ok {
		t.Error("parseClockLine accepted an empty clock")
	}
	if _, _, ok := parseClockLine([]byte("clock: [2024-01-15]")); !ok {
		t.Error("parseClockLine rejected lowercase keyword")
	}
}

func TestParseFootnoteDefinitionStart(t *testing.T) {
	line := []byte("[fn:ref-1] Definition text")
	label, contentStart, ok := parseFootnoteDefinitionStart(line)
	if !ok {
		t.Fatal("parseFootnoteDefinitionStart declined")
	}
	if got := string(spanSlice(line, label)); got != "ref-1" {
		t.Errorf("label = %q; want %q", got, "ref-1")
	}
	if got := string(line[contentStart:]); got != " Definition text" {
		t.Errorf("content = %q", got)
	}
	for _, bad := range []string{"[fn:]", "[fn:a b]", " [fn:a]", "[fn:a"} {
		if _, _, ok := parseFootnoteDefinitionStart([]byte(bad)); ok {
			t.Errorf("parseFootnoteDefinitionStart(%q) accepted", bad)
		}
	}
}

func TestClassifyBlockName(t *testing.T) {
	tests := []struct {
		name string
		want BlockVariant
	}{
		{"SRC", BlockSrc},
		{"src", BlockSrc},
		{"QUOTE", BlockQuote},
		{"CENTER", BlockCenter},
		{"VERSE", BlockVerse},
		{"COMMENT", BlockComment},
		{"EXAMPLE", BlockExample},
		{"EXPORT", BlockExport},
		{"proof", BlockSpecial},
	}
	for _, test := range tests {
		if got := classifyBlockName([]byte(test.name)); got != test.want {
			t.Errorf("classifyBlockName(%q) = %v; want %v", test.name, got, test.want)
		}
	}
	for _, v := range []BlockVariant{BlockComment, BlockExample, BlockExport, BlockSrc} {
		if !v.IsVerbatim() {
			t.Errorf("%v.IsVerbatim() = false; want true", v)
		}
	}
	for _, v := range []BlockVariant{BlockSpecial, BlockCenter, BlockQuote, BlockVerse} {
		if v.IsVerbatim() {
			t.Errorf("%v.IsVerbatim() = true; want false", v)
		}
	}
}
