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

import (
	"bytes"
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"zombiezen.com/go/org/internal/suite"
)

func mustParse(tb testing.TB, source string) *Document {
	tb.Helper()
	doc, err := Parse([]byte(source), nil)
	if err != nil {
		tb.Fatalf("Parse(%q): %v", source, err)
	}
	return doc
}

func TestParseHeadline(t *testing.T) {
	doc := mustParse(t, "* TODO Buy milk\n")
	tree := doc.Tree()
	root := doc.Root()
	if got := tree.Kind(root); got != KindDocument {
		t.Errorf("root kind = %v; want %v", got, KindDocument)
	}
	if got, want := tree.Span(root), (Span{0, 16}); got != want {
		t.Errorf("root span = %v; want %v", got, want)
	}
	h := tree.FirstChild(root)
	if got := tree.Kind(h); got != KindHeadline {
		t.Fatalf("first child kind = %v; want %v", got, KindHeadline)
	}
	if got, want := tree.Span(h), (Span{0, 16}); got != want {
		t.Errorf("headline span = %v; want %v", got, want)
	}
	f := tree.Fields(h).(*HeadlineFields)
	want := &HeadlineFields{
		Level:   1,
		Keyword: "TODO",
		Title:   Span{7, 15},
	}
	if diff := cmp.Diff(want, f); diff != "" {
		t.Errorf("headline fields (-want +got):\n%s", diff)
	}
	if got := string(spanSlice(doc.Source, f.Title)); got != "Buy milk" {
		t.Errorf("title text = %q; want %q", got, "Buy milk")
	}
	// No planning, drawer, or section: only the title text child.
	if got := tree.ChildCount(h); got != 1 {
		t.Errorf("headline child count = %d; want 1", got)
	}
	if got := tree.Kind(tree.FirstChild(h)); got != KindRawText {
		t.Errorf("title child kind = %v; want %v", got, KindRawText)
	}
}

func TestParseList(t *testing.T) {
	doc := mustParse(t, "- a\n- b\n")
	tree := doc.Tree()
	section := tree.FirstChild(doc.Root())
	if got := tree.Kind(section); got != KindSection {
		t.Fatalf("first child kind = %v; want %v", got, KindSection)
	}
	list := tree.FirstChild(section)
	if got := tree.Kind(list); got != KindPlainList {
		t.Fatalf("list kind = %v; want %v", got, KindPlainList)
	}
	if got := tree.Fields(list).(*PlainListFields).Kind; got != ListUnordered {
		t.Errorf("list style = %v; want %v", got, ListUnordered)
	}
	items := tree.Children(list)
	if len(items) != 2 {
		t.Fatalf("item count = %d; want 2", len(items))
	}
	wantContent := []string{"a\n", "b\n"}
	for i, item := range items {
		if got := tree.Kind(item); got != KindListItem {
			t.Errorf("items[%d] kind = %v; want %v", i, got, KindListItem)
		}
		para := tree.FirstChild(item)
		if got := string(doc.Text(para)); got != wantContent[i] {
			t.Errorf("items[%d] content = %q; want %q", i, got, wantContent[i])
		}
	}
}

func TestParseSrcBlock(t *testing.T) {
	doc := mustParse(t, "#+BEGIN_SRC python\nx = 1\n#+END_SRC\n")
	tree := doc.Tree()
	block := tree.FirstChild(tree.FirstChild(doc.Root()))
	if got := tree.Kind(block); got != KindBlock {
		t.Fatalf("block kind = %v; want %v", got, KindBlock)
	}
	f := tree.Fields(block).(*BlockFields)
	if f.Variant != BlockSrc {
		t.Errorf("variant = %v; want %v", f.Variant, BlockSrc)
	}
	if got := string(spanSlice(doc.Source, f.Parameters)); got != "python" {
		t.Errorf("parameters = %q; want %q", got, "python")
	}
	if got := tree.ChildCount(block); got != 1 {
		t.Fatalf("block child count = %d; want 1", got)
	}
	raw := tree.FirstChild(block)
	if got := tree.Kind(raw); got != KindRawText {
		t.Errorf("content kind = %v; want %v", got, KindRawText)
	}
	if got := string(doc.Text(raw)); got != "x = 1\n" {
		t.Errorf("content = %q; want %q", got, "x = 1\n")
	}
}

func TestParseInlineEmphasis(t *testing.T) {
	doc := mustParse(t, "*bold* and /italic/")
	tree := doc.Tree()
	para := tree.FirstChild(tree.FirstChild(doc.Root()))
	if got := tree.Kind(para); got != KindParagraph {
		t.Fatalf("paragraph kind = %v; want %v", got, KindParagraph)
	}
	children := tree.Children(para)
	wantKinds := []Kind{KindBold, KindRawText, KindItalic}
	wantText := []string{"*bold*", " and ", "/italic/"}
	if len(children) != len(wantKinds) {
		t.Fatalf("child count = %d; want %d", len(children), len(wantKinds))
	}
	for i, c := range children {
		if got := tree.Kind(c); got != wantKinds[i] {
			t.Errorf("children[%d] kind = %v; want %v", i, got, wantKinds[i])
		}
		if got := string(doc.Text(c)); got != wantText[i] {
			t.Errorf("children[%d] text = %q; want %q", i, got, wantText[i])
		}
	}
	if got := string(doc.Text(tree.FirstChild(children[0]))); got != "bold" {
		t.Errorf("bold interior = %q; want %q", got, "bold")
	}
}

func TestParseUnterminatedBlock(t *testing.T) {
	doc := mustParse(t, "* no closer\n#+BEGIN_QUOTE\nunterminated\n")
	tree := doc.Tree()
	h := tree.FirstChild(doc.Root())
	if got := tree.Kind(h); got != KindHeadline {
		t.Fatalf("first child kind = %v; want %v", got, KindHeadline)
	}
	section := tree.LastChild(h)
	if got := tree.Kind(section); got != KindSection {
		t.Fatalf("section kind = %v; want %v", got, KindSection)
	}
	para := tree.FirstChild(section)
	if got := tree.Kind(para); got != KindParagraph {
		t.Fatalf("degraded kind = %v; want %v", got, KindParagraph)
	}
	if got := string(doc.Text(para)); got != "#+BEGIN_QUOTE\nunterminated\n" {
		t.Errorf("degraded text = %q", got)
	}
}

func TestParseEmpty(t *testing.T) {
	doc := mustParse(t, "")
	tree := doc.Tree()
	if got, want := tree.Span(doc.Root()), (Span{0, 0}); got != want {
		t.Errorf("root span = %v; want %v", got, want)
	}
	if got := tree.ChildCount(doc.Root()); got != 0 {
		t.Errorf("root child count = %d; want 0", got)
	}
	if got := doc.Render(); len(got) != 0 {
		t.Errorf("Render() = %q; want empty", got)
	}
}

func TestParseInvalidUTF8(t *testing.T) {
	_, err := Parse([]byte{0xff, 0xfe, 0xfd}, nil)
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("Parse error = %v; want %v", err, ErrInvalidUTF8)
	}
}

// TestElementPriority pins the dispatch order for prefix-ambiguous
// lines: the first recognized element for each input is part of the
// package's compatibility contract.
func TestElementPriority(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"#+NAME: value\n", KindKeyword},
		{"# remark\n", KindComment},
		{"#+BEGIN_SRC\n#+END_SRC\n", KindBlock},
		{"#+BEGIN: columnview\n#+END:\n", KindDynamicBlock},
		{":LOGBOOK:\n:END:\n", KindDrawer},
		{"-----\n", KindHorizontalRule},
		{"- item\n", KindPlainList},
		{": verbatim\n", KindFixedWidth},
		{"| cell |\n", KindTable},
		{"CLOCK: [2024-01-15 Mon 09:00]\n", KindClock},
		{"\\begin{equation}\nx\n\\end{equation}\n", KindLatexEnvironment},
		{"[fn:note] text\n", KindFootnoteDefinition},
		{"plain text\n", KindParagraph},
		// Start markers without terminators degrade in place.
		{"#+BEGIN_QUOTE\n", KindParagraph},
		{":LOGBOOK:\n", KindParagraph},
		{":END:\n", KindParagraph},
	}
	for _, test := range tests {
		doc := mustParse(t, test.input)
		tree := doc.Tree()
		section := tree.FirstChild(doc.Root())
		if got := tree.Kind(section); got != KindSection {
			t.Errorf("Parse(%q): top kind = %v; want %v", test.input, got, KindSection)
			continue
		}
		if got := tree.Kind(tree.FirstChild(section)); got != test.want {
			t.Errorf("Parse(%q): element kind = %v; want %v", test.input, got, test.want)
		}
	}
}

func TestHeadlineMonotonicity(t *testing.T) {
	doc := mustParse(t, "* A\n*** B\ntext\n** C\n* D\n** E\n")
	tree := doc.Tree()
	doc.Walk(&WalkOptions{
		Pre: func(c *Cursor) bool {
			if c.Kind() != KindHeadline {
				return true
			}
			level := c.Fields().(*HeadlineFields).Level
			for p := c.Parent(); p != NoNode; p = tree.Parent(p) {
				if tree.Kind(p) != KindHeadline {
					continue
				}
				if pl := tree.Fields(p).(*HeadlineFields).Level; pl >= level {
					t.Errorf("headline at %v: ancestor level %d >= %d", c.Span(), pl, level)
				}
			}
			return true
		},
	})
}

func TestPlanningFields(t *testing.T) {
	doc := mustParse(t, "* H\nDEADLINE: <2024-02-01 Thu> SCHEDULED: <2024-01-15 Mon>\n")
	tree := doc.Tree()
	h := tree.FirstChild(doc.Root())
	planning := tree.LastChild(h)
	if got := tree.Kind(planning); got != KindPlanning {
		t.Fatalf("planning kind = %v; want %v", got, KindPlanning)
	}
	f := tree.Fields(planning).(*PlanningFields)
	if f.Deadline == NoNode || f.Scheduled == NoNode {
		t.Fatalf("planning fields = %+v; want deadline and scheduled set", f)
	}
	if f.Closed != NoNode {
		t.Errorf("Closed = %v; want NoNode", f.Closed)
	}
	if got := string(doc.Text(f.Deadline)); got != "<2024-02-01 Thu>" {
		t.Errorf("deadline text = %q", got)
	}
	if got := tree.Fields(f.Scheduled).(*TimestampFields); !got.Active {
		t.Errorf("scheduled timestamp not active: %+v", got)
	}
}

func TestPropertyDrawer(t *testing.T) {
	doc := mustParse(t, "* H\n:PROPERTIES:\n:ID: abc-123\n:CATEGORY+: extra\n:END:\nbody\n")
	tree := doc.Tree()
	h := tree.FirstChild(doc.Root())
	var drawer NodeID = NoNode
	for _, c := range tree.Children(h) {
		if tree.Kind(c) == KindPropertyDrawer {
			drawer = c
		}
	}
	if drawer == NoNode {
		t.Fatal("no property drawer found")
	}
	f := tree.Fields(drawer).(*PropertyDrawerFields)
	if len(f.Properties) != 2 {
		t.Fatalf("property count = %d; want 2", len(f.Properties))
	}
	if got := string(spanSlice(doc.Source, f.Properties[0].Key)); got != "ID" {
		t.Errorf("properties[0] key = %q; want %q", got, "ID")
	}
	if got := string(spanSlice(doc.Source, f.Properties[0].Value)); got != "abc-123" {
		t.Errorf("properties[0] value = %q; want %q", got, "abc-123")
	}
	// "+"-suffixed keys keep the suffix out of the key span.
	if got := string(spanSlice(doc.Source, f.Properties[1].Key)); got != "CATEGORY" {
		t.Errorf("properties[1] key = %q; want %q", got, "CATEGORY")
	}
	if got := tree.ChildCount(drawer); got != 0 {
		t.Errorf("drawer child count = %d; want 0", got)
	}
}

func TestHeadlineTags(t *testing.T) {
	doc := mustParse(t, "** DONE [#A] COMMENT Ship it :work:ARCHIVE:\n")
	tree := doc.Tree()
	f := tree.Fields(tree.FirstChild(doc.Root())).(*HeadlineFields)
	if f.Level != 2 || f.Keyword != "DONE" || !f.Done {
		t.Errorf("fields = %+v; want level 2, keyword DONE, done", f)
	}
	if f.Priority != 'A' {
		t.Errorf("priority = %q; want 'A'", f.Priority)
	}
	if diff := cmp.Diff([]string{"work", "ARCHIVE"}, f.Tags); diff != "" {
		t.Errorf("tags (-want +got):\n%s", diff)
	}
	if !f.Commented {
		t.Error("Commented = false; want true")
	}
	if !f.IsArchived() {
		t.Error("IsArchived() = false; want true")
	}
	if got := string(spanSlice(doc.Source, f.Title)); got != "COMMENT Ship it" {
		t.Errorf("title = %q; want %q", got, "COMMENT Ship it")
	}
}

// Headline lines split the document even inside unterminated pairs:
// outline structure dominates block structure.
func TestHeadlineSplitsUnterminatedBlock(t *testing.T) {
	doc := mustParse(t, "#+BEGIN_QUOTE\n* Surprise\ntext\n")
	tree := doc.Tree()
	children := tree.Children(doc.Root())
	if len(children) != 2 {
		t.Fatalf("root child count = %d; want 2", len(children))
	}
	if got := tree.Kind(children[0]); got != KindSection {
		t.Errorf("children[0] kind = %v; want %v", got, KindSection)
	}
	if got := tree.Kind(children[1]); got != KindHeadline {
		t.Errorf("children[1] kind = %v; want %v", got, KindHeadline)
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"\n",
		"   \n",
		"no newline at end",
		"*",
		"* \n",
		"*** deep\n\n\n** shallow",
		"| a | b\n|---\n",
		"- one\n\n  continued\n- two\n",
		"text with *unclosed and [[broken\n",
		":D:\nbody\n:END:\nafter\n",
		"* H\nSCHEDULED: <2024-01-15>\n:PROPERTIES:\n:A: b\n:END:\ntext\n",
		"#+TODO: WAIT | FIN\n* WAIT x\n",
	}
	for _, input := range inputs {
		doc := mustParse(t, input)
		if got := doc.Render(); !bytes.Equal(got, []byte(input)) {
			t.Errorf("Render() = %q; want %q", got, input)
		}
		verifyTreeInvariants(t, doc)
	}
}

// verifyTreeInvariants checks the structural laws every parse must
// satisfy: child spans nest inside their parent's span, and siblings
// are ordered and non-overlapping.
func verifyTreeInvariants(tb testing.TB, doc *Document) {
	tb.Helper()
	tree := doc.Tree()
	doc.Walk(&WalkOptions{
		Pre: func(c *Cursor) bool {
			parentSpan := c.Span()
			if !parentSpan.IsValid() {
				tb.Errorf("node %d (%v) has invalid span", c.Node(), c.Kind())
				return false
			}
			pos := parentSpan.Start
			for _, child := range tree.Children(c.Node()) {
				cs := tree.Span(child)
				if cs.Start < pos || cs.End > parentSpan.End {
					tb.Errorf("node %d (%v) span %v escapes parent %d (%v) span %v after offset %d",
						child, tree.Kind(child), cs, c.Node(), c.Kind(), parentSpan, pos)
				}
				pos = cs.End
			}
			return true
		},
	})
}

func TestReparseIdempotence(t *testing.T) {
	cases, err := suite.Load()
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range cases {
		t.Run(test.Name, func(t *testing.T) {
			first := mustParse(t, test.Input)
			second := mustParse(t, string(first.Render()))
			if diff := cmp.Diff(dumpOutline(first), dumpOutline(second)); diff != "" {
				t.Errorf("tree changed across re-parse (-first +second):\n%s", diff)
			}
		})
	}
}

func FuzzRoundTrip(f *testing.F) {
	cases, err := suite.Load()
	if err != nil {
		f.Fatal(err)
	}
	for _, test := range cases {
		f.Add(test.Input)
	}
	f.Add("* H\n** DONE [#B] x :a:\nSCHEDULED: <2024-01-15 Mon +1w>\n")
	f.Add("| a | *b* |\n|---|\n")
	f.Fuzz(func(t *testing.T, input string) {
		if !utf8.ValidString(input) {
			t.Skip("not UTF-8")
		}
		doc, err := Parse([]byte(input), nil)
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if got := doc.Render(); !bytes.Equal(got, []byte(input)) {
			t.Errorf("Render() = %q; want %q", got, input)
		}
		verifyTreeInvariants(t, doc)
	})
}
