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

// Render reconstructs the exact source bytes from the tree: for each
// node it emits the gap bytes before every child, the child's own
// rendering, and the tail after the last child. Leaves emit their
// span verbatim. The traversal uses an explicit stack, so node depth
// is not limited by the goroutine stack.
func (d *Document) Render() []byte {
	t := d.tree
	buf := make([]byte, 0, len(d.Source))
	type frame struct {
		id    NodeID
		child NodeID
		pos   int
	}
	stack := []frame{{d.root, t.FirstChild(d.root), t.Span(d.root).Start}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		if f.child == NoNode {
			buf = append(buf, d.Source[f.pos:t.Span(f.id).End]...)
			stack = stack[:len(stack)-1]
			continue
		}
		cs := t.Span(f.child)
		buf = append(buf, d.Source[f.pos:cs.Start]...)
		stack[len(stack)-1].child = t.NextSibling(f.child)
		stack[len(stack)-1].pos = cs.End
		stack = append(stack, frame{f.child, t.FirstChild(f.child), cs.Start})
	}
	return buf
}
