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

// Package org parses Org-mode-style outline markup into a lossless
// concrete syntax tree. Every node records the half-open byte range
// it covers in the original buffer, no text is copied or normalized,
// and [Document.Render] reconstructs the input exactly.
//
// Parsing is total: malformed markup degrades locally into paragraphs
// or plain text, never into a parse error. The only input Parse
// rejects is a buffer that is not valid UTF-8.
package org

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// ErrInvalidUTF8 is returned by [Parse] when the source buffer is not
// valid UTF-8.
var ErrInvalidUTF8 = errors.New("org: source is not valid UTF-8")

// Config adjusts parsing. The zero value (and a nil *Config) uses the
// defaults: TODO/DONE keywords and the built-in entity table.
type Config struct {
	// TodoKeywords and DoneKeywords are the headline keyword sets.
	// In-buffer "#+TODO:" lines take precedence over both.
	TodoKeywords []string
	DoneKeywords []string

	// Entities supplements the built-in "\name" entity table.
	// Entries here shadow built-in names.
	Entities map[string]string

	// Logger, if set, receives warnings about degraded constructs
	// such as unterminated blocks and drawers.
	Logger *log.Logger
}

// A Document is the result of [Parse]. The tree's spans index into
// Source, which callers must not mutate while the document is in use.
type Document struct {
	// Source is the buffer passed to Parse.
	Source []byte

	tree *Tree
	root NodeID
}

// Parse builds the syntax tree for source. The returned error is
// non-nil only for [ErrInvalidUTF8]; all markup, however malformed,
// produces a tree covering every byte of the input.
func Parse(source []byte, config *Config) (*Document, error) {
	if i := invalidUTF8Offset(source); i >= 0 {
		return nil, fmt.Errorf("%w (offset %d)", ErrInvalidUTF8, i)
	}
	if config == nil {
		config = new(Config)
	}
	todo, done := collectBufferSettings(source, config)
	p := &parser{
		source: source,
		tree:   new(Tree),
		config: config,
		todo:   todo,
		done:   done,
	}
	root := p.parseDocument()
	return &Document{Source: source, tree: p.tree, root: root}, nil
}

// invalidUTF8Offset returns the offset of the first invalid byte,
// or -1 if source is valid UTF-8.
func invalidUTF8Offset(source []byte) int {
	for i := 0; i < len(source); {
		r, size := utf8.DecodeRune(source[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// Tree returns the document's node arena.
func (d *Document) Tree() *Tree {
	return d.tree
}

// Root returns the document's root node, which is always of
// [KindDocument] and spans the entire source.
func (d *Document) Root() NodeID {
	return d.root
}

// Text returns the source bytes covered by the node's span. The slice
// aliases Source; callers must not modify it.
func (d *Document) Text(id NodeID) []byte {
	span := d.tree.Span(id)
	if !span.IsValid() {
		return nil
	}
	return spanSlice(d.Source, span)
}

// Walk traverses the document's tree starting at the root.
func (d *Document) Walk(opts *WalkOptions) {
	Walk(d.tree, d.root, opts)
}
