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

// NodeID identifies a node within a [Tree].
// The zero value is the first node allocated in a tree,
// which is always the document root for trees built by [Parse].
type NodeID int32

// NoNode is the sentinel returned by navigation methods
// when the requested node does not exist.
const NoNode NodeID = -1

// node is the arena's storage unit. Structural relations are arena
// indices; the arena is the sole owner of node storage.
type node struct {
	kind   Kind
	span   Span
	fields Fields

	parent     NodeID
	firstChild NodeID
	lastChild  NodeID
	next       NodeID
	prev       NodeID
}

// Tree is an append-only arena of nodes.
// Navigation methods accept any NodeID and return NoNode
// (or zero values) for identifiers the tree does not contain.
type Tree struct {
	nodes []node
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

func (t *Tree) contains(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// New allocates a node with no parent and no children.
func (t *Tree) New(kind Kind, span Span, fields Fields) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{
		kind:       kind,
		span:       span,
		fields:     fields,
		parent:     NoNode,
		firstChild: NoNode,
		lastChild:  NoNode,
		next:       NoNode,
		prev:       NoNode,
	})
	return id
}

// AppendChild attaches child as the last child of parent.
// It panics if either node does not exist
// or if child is already attached.
func (t *Tree) AppendChild(parent, child NodeID) {
	if !t.contains(parent) || !t.contains(child) {
		panic("org: AppendChild on unknown node")
	}
	if t.nodes[child].parent != NoNode {
		panic("org: AppendChild on attached child")
	}
	t.nodes[child].parent = parent
	last := t.nodes[parent].lastChild
	if last == NoNode {
		t.nodes[parent].firstChild = child
	} else {
		t.nodes[last].next = child
		t.nodes[child].prev = last
	}
	t.nodes[parent].lastChild = child
}

// Kind returns the node's kind, or zero if the node does not exist.
func (t *Tree) Kind(id NodeID) Kind {
	if !t.contains(id) {
		return 0
	}
	return t.nodes[id].kind
}

// Span returns the node's source span,
// or an invalid span if the node does not exist.
func (t *Tree) Span(id NodeID) Span {
	if !t.contains(id) {
		return NullSpan()
	}
	return t.nodes[id].span
}

// Fields returns the node's kind-specific parsed data, which may be
// nil. Callers type-assert on the variant struct for the node's kind.
func (t *Tree) Fields(id NodeID) Fields {
	if !t.contains(id) {
		return nil
	}
	return t.nodes[id].fields
}

// Parent returns the node's parent, or NoNode.
func (t *Tree) Parent(id NodeID) NodeID {
	if !t.contains(id) {
		return NoNode
	}
	return t.nodes[id].parent
}

// FirstChild returns the node's first child, or NoNode.
func (t *Tree) FirstChild(id NodeID) NodeID {
	if !t.contains(id) {
		return NoNode
	}
	return t.nodes[id].firstChild
}

// LastChild returns the node's last child, or NoNode.
func (t *Tree) LastChild(id NodeID) NodeID {
	if !t.contains(id) {
		return NoNode
	}
	return t.nodes[id].lastChild
}

// NextSibling returns the node's next sibling, or NoNode.
func (t *Tree) NextSibling(id NodeID) NodeID {
	if !t.contains(id) {
		return NoNode
	}
	return t.nodes[id].next
}

// PrevSibling returns the node's previous sibling, or NoNode.
func (t *Tree) PrevSibling(id NodeID) NodeID {
	if !t.contains(id) {
		return NoNode
	}
	return t.nodes[id].prev
}

// ChildCount returns the number of children the node has.
func (t *Tree) ChildCount(id NodeID) int {
	n := 0
	for c := t.FirstChild(id); c != NoNode; c = t.NextSibling(c) {
		n++
	}
	return n
}

// Children returns the node's children in sibling order.
func (t *Tree) Children(id NodeID) []NodeID {
	var children []NodeID
	for c := t.FirstChild(id); c != NoNode; c = t.NextSibling(c) {
		children = append(children, c)
	}
	return children
}

// setSpanEnd closes a node whose extent was unknown at allocation.
func (t *Tree) setSpanEnd(id NodeID, end int) {
	t.nodes[id].span.End = end
}
