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

func TestTreeAppendChild(t *testing.T) {
	tree := new(Tree)
	root := tree.New(KindDocument, Span{0, 10}, nil)
	a := tree.New(KindParagraph, Span{0, 4}, nil)
	b := tree.New(KindParagraph, Span{5, 10}, nil)
	tree.AppendChild(root, a)
	tree.AppendChild(root, b)

	if got := tree.Len(); got != 3 {
		t.Errorf("Len() = %d; want 3", got)
	}
	if got := tree.FirstChild(root); got != a {
		t.Errorf("FirstChild(root) = %v; want %v", got, a)
	}
	if got := tree.LastChild(root); got != b {
		t.Errorf("LastChild(root) = %v; want %v", got, b)
	}
	if got := tree.NextSibling(a); got != b {
		t.Errorf("NextSibling(a) = %v; want %v", got, b)
	}
	if got := tree.PrevSibling(b); got != a {
		t.Errorf("PrevSibling(b) = %v; want %v", got, a)
	}
	if got := tree.Parent(a); got != root {
		t.Errorf("Parent(a) = %v; want %v", got, root)
	}
	if got := tree.ChildCount(root); got != 2 {
		t.Errorf("ChildCount(root) = %d; want 2", got)
	}
}

func TestTreeUnknownNode(t *testing.T) {
	tree := new(Tree)
	tree.New(KindDocument, Span{0, 0}, nil)
	for _, id := range []NodeID{NoNode, 99} {
		if got := tree.Kind(id); got != 0 {
			t.Errorf("Kind(%v) = %v; want 0", id, got)
		}
		if got := tree.Span(id); got.IsValid() {
			t.Errorf("Span(%v) = %v; want invalid", id, got)
		}
		if got := tree.Parent(id); got != NoNode {
			t.Errorf("Parent(%v) = %v; want NoNode", id, got)
		}
		if got := tree.FirstChild(id); got != NoNode {
			t.Errorf("FirstChild(%v) = %v; want NoNode", id, got)
		}
		if got := tree.Fields(id); got != nil {
			t.Errorf("Fields(%v) = %v; want nil", id, got)
		}
	}
}

func TestTreeAppendChildPanics(t *testing.T) {
	tree := new(Tree)
	root := tree.New(KindDocument, Span{0, 5}, nil)
	child := tree.New(KindParagraph, Span{0, 5}, nil)
	tree.AppendChild(root, child)

	mustPanic := func(name string, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s did not panic", name)
			}
		}()
		f()
	}
	mustPanic("reattach", func() { tree.AppendChild(root, child) })
	mustPanic("unknown parent", func() { tree.AppendChild(42, child) })
	mustPanic("unknown child", func() { tree.AppendChild(root, 42) })
}

func TestKindString(t *testing.T) {
	if got := KindHeadline.String(); got != "Headline" {
		t.Errorf("KindHeadline.String() = %q; want %q", got, "Headline")
	}
	if got := Kind(999).String(); got != "Kind(999)" {
		t.Errorf("Kind(999).String() = %q; want %q", got, "Kind(999)")
	}
	if KindHeadline.IsObject() {
		t.Error("KindHeadline.IsObject() = true")
	}
	if !KindBold.IsObject() || !KindRawText.IsObject() {
		t.Error("object kinds misclassified")
	}
}

func TestSpan(t *testing.T) {
	s := Span{3, 7}
	if !s.IsValid() || s.Len() != 4 {
		t.Errorf("Span{3,7}: IsValid=%t Len=%d", s.IsValid(), s.Len())
	}
	if !s.Contains(Span{3, 7}) || !s.Contains(Span{4, 6}) || s.Contains(Span{2, 7}) || s.Contains(Span{3, 8}) {
		t.Error("Contains misjudged a range")
	}
	if got := s.String(); got != "[3,7)" {
		t.Errorf("String() = %q; want %q", got, "[3,7)")
	}
	if NullSpan().IsValid() {
		t.Error("NullSpan().IsValid() = true")
	}
	if (Span{5, 5}).Len() != 0 {
		t.Error("empty span should have length 0")
	}
}
