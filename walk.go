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

// A Cursor describes a node encountered during [Walk].
type Cursor struct {
	tree *Tree
	node NodeID
}

// Tree returns the tree being walked.
func (c *Cursor) Tree() *Tree {
	return c.tree
}

// Node returns the identifier of the current node.
func (c *Cursor) Node() NodeID {
	return c.node
}

// Kind returns the current node's kind.
func (c *Cursor) Kind() Kind {
	return c.tree.Kind(c.node)
}

// Span returns the current node's source span.
func (c *Cursor) Span() Span {
	return c.tree.Span(c.node)
}

// Fields returns the current node's parsed data.
func (c *Cursor) Fields() Fields {
	return c.tree.Fields(c.node)
}

// Parent returns the current node's parent, or NoNode.
func (c *Cursor) Parent() NodeID {
	return c.tree.Parent(c.node)
}

// WalkOptions is the set of parameters to [Walk].
type WalkOptions struct {
	// If Pre is not nil, it is called for each node before the node's
	// children are traversed (pre-order). If Pre returns false, no
	// children are traversed, and Post is not called for that node.
	Pre func(c *Cursor) bool
	// If Post is not nil, it is called for each node after the node's
	// children are traversed (post-order). If Post returns false,
	// traversal is terminated and Walk returns immediately.
	Post func(c *Cursor) bool
}

// Walk traverses the subtree rooted at root, calling
// [WalkOptions.Pre] and [WalkOptions.Post]. The traversal keeps its
// own stack, so deeply nested documents cannot overflow the goroutine
// stack.
func Walk(tree *Tree, root NodeID, opts *WalkOptions) {
	if tree == nil || !tree.contains(root) {
		return
	}
	if opts == nil {
		opts = new(WalkOptions)
	}
	type walkFrame struct {
		node NodeID
		post bool
	}
	c := new(Cursor)
	c.tree = tree
	stack := []walkFrame{{node: root}}
	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		c.node = frame.node
		if frame.post {
			if opts.Post != nil && !opts.Post(c) {
				return
			}
			continue
		}
		if opts.Pre != nil && !opts.Pre(c) {
			continue
		}
		stack = append(stack, walkFrame{node: frame.node, post: true})
		for child := tree.LastChild(frame.node); child != NoNode; child = tree.PrevSibling(child) {
			stack = append(stack, walkFrame{node: child})
		}
	}
}
