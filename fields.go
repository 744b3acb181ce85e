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

// Fields carries the construct-specific parsed data of a node.
// The dynamic type is determined by the node's [Kind];
// kinds without parsed data have nil fields.
// Spans within fields always refer to the document source,
// never to copied text, so reconstruction stays exact.
type Fields interface {
	isFields()
}

// HeadlineFields is the parsed data of a [KindHeadline] node.
type HeadlineFields struct {
	// Level is the number of leading stars.
	Level int
	// Keyword is the TODO keyword, or "" if none matched.
	Keyword string
	// Done reports whether Keyword came from the done set.
	Done bool
	// Priority is the cookie letter from "[#A]", or 0 if absent.
	Priority byte
	// Title is the raw title text with keyword, priority, and tags
	// stripped.
	Title Span
	// Tags holds the trailing ":tag1:tag2:" names, colons removed.
	Tags []string
	// Commented reports whether the title starts with the COMMENT
	// keyword.
	Commented bool
}

func (*HeadlineFields) isFields() {}

// IsArchived reports whether the headline carries the ARCHIVE tag.
func (f *HeadlineFields) IsArchived() bool {
	for _, tag := range f.Tags {
		if tag == "ARCHIVE" {
			return true
		}
	}
	return false
}

// KeywordFields is the parsed data of a [KindKeyword] node.
type KeywordFields struct {
	Key   Span
	Value Span
}

func (*KeywordFields) isFields() {}

// BlockVariant distinguishes the block types introduced by
// "#+BEGIN_name" lines.
type BlockVariant uint8

const (
	// BlockSpecial is any block whose name is not otherwise listed.
	BlockSpecial BlockVariant = 1 + iota
	BlockCenter
	BlockQuote
	BlockVerse
	BlockComment
	BlockExample
	BlockExport
	BlockSrc
)

// IsVerbatim reports whether the block's content is opaque raw text
// in which no markup is recognized.
func (v BlockVariant) IsVerbatim() bool {
	return v == BlockComment || v == BlockExample || v == BlockExport || v == BlockSrc
}

// BlockFields is the parsed data of a [KindBlock] node.
type BlockFields struct {
	// Name is the identifier after "#+BEGIN_".
	Name Span
	// Variant classifies Name; see [BlockVariant].
	Variant BlockVariant
	// Parameters is the rest of the begin line, or an invalid span.
	Parameters Span
}

func (*BlockFields) isFields() {}

// DynamicBlockFields is the parsed data of a [KindDynamicBlock] node.
type DynamicBlockFields struct {
	Name       Span
	Parameters Span
}

func (*DynamicBlockFields) isFields() {}

// DrawerFields is the parsed data of a [KindDrawer] node.
type DrawerFields struct {
	Name Span
}

func (*DrawerFields) isFields() {}

// Property is a single ":KEY: value" pair in a property drawer.
// A "+"-suffixed key has the suffix excluded from Key.
type Property struct {
	Key   Span
	Value Span
}

// PropertyDrawerFields is the parsed data of a [KindPropertyDrawer]
// node. The node is a leaf; the drawer's lines are covered by its span.
type PropertyDrawerFields struct {
	Properties []Property
}

func (*PropertyDrawerFields) isFields() {}

// ListKind distinguishes the three plain-list styles.
type ListKind uint8

const (
	ListUnordered ListKind = 1 + iota
	ListOrdered
	ListDescriptive
)

// PlainListFields is the parsed data of a [KindPlainList] node.
type PlainListFields struct {
	Kind   ListKind
	Indent int
}

func (*PlainListFields) isFields() {}

// ListItemFields is the parsed data of a [KindListItem] node.
type ListItemFields struct {
	// Bullet spans the bullet characters, e.g. "-" or "3)".
	Bullet Span
	Indent int
	// Checkbox is ' ', 'X', 'x', or '-' when a "[ ]"-style cookie
	// follows the bullet, and 0 otherwise.
	Checkbox byte
	// Term is the description-list term before " :: ",
	// or an invalid span.
	Term Span
}

func (*ListItemFields) isFields() {}

// TableRowFields is the parsed data of a [KindTableRow] node.
type TableRowFields struct {
	// Separator reports whether the row is a "|---+---|" rule row.
	Separator bool
}

func (*TableRowFields) isFields() {}

// FootnoteDefinitionFields is the parsed data of a
// [KindFootnoteDefinition] node.
type FootnoteDefinitionFields struct {
	Label Span
}

func (*FootnoteDefinitionFields) isFields() {}

// LatexEnvironmentFields is the parsed data of a
// [KindLatexEnvironment] node.
type LatexEnvironmentFields struct {
	Name Span
}

func (*LatexEnvironmentFields) isFields() {}

// PlanningFields is the parsed data of a [KindPlanning] node.
// Each field refers to one of the node's [KindTimestamp] children,
// or NoNode if the keyword is absent from the line.
type PlanningFields struct {
	Scheduled NodeID
	Deadline  NodeID
	Closed    NodeID
}

func (*PlanningFields) isFields() {}

// ClockFields is the parsed data of a [KindClock] node.
type ClockFields struct {
	// Value spans the timestamp (or timestamp range) after "CLOCK:".
	Value Span
	// Duration spans the "H:MM" total after "=>", or an invalid span.
	Duration Span
}

func (*ClockFields) isFields() {}

// LinkFields is the parsed data of a [KindLink] node.
type LinkFields struct {
	Path Span
	// Description is the "[desc]" part of a regular link,
	// or an invalid span. Its objects are the node's children.
	Description Span
}

func (*LinkFields) isFields() {}

// FootnoteReferenceFields is the parsed data of a
// [KindFootnoteReference] node.
type FootnoteReferenceFields struct {
	// Label is the footnote name; invalid for anonymous references.
	Label Span
	// Definition is the inline definition text, or an invalid span.
	// Its objects are the node's children.
	Definition Span
}

func (*FootnoteReferenceFields) isFields() {}

// Datetime is the date-time portion of a timestamp. Components are
// recorded as written, without calendar validation. Hour and Minute
// are -1 when the timestamp has no time part.
type Datetime struct {
	Year    int
	Month   int
	Day     int
	Dayname Span
	Hour    int
	Minute  int
}

// HasTime reports whether the datetime includes a time of day.
func (dt Datetime) HasTime() bool {
	return dt.Hour >= 0
}

// TimestampFields is the parsed data of a [KindTimestamp] node.
type TimestampFields struct {
	// Active reports angle-bracket ("<...>") syntax;
	// false means square-bracket ("[...]") syntax.
	Active bool
	Start  Datetime
	// Range reports a two-part timestamp; End is then the second
	// datetime (either "<a>--<b>" or an "HH:MM-HH:MM" time range).
	Range bool
	End   Datetime
	// Repeater spans a "+1w"-style repeater, or an invalid span.
	Repeater Span
	// Delay spans a "-2d"-style warning delay, or an invalid span.
	Delay Span
}

func (*TimestampFields) isFields() {}

// MacroFields is the parsed data of a [KindMacro] node.
type MacroFields struct {
	Name Span
	// Arguments spans the text inside "(...)", or an invalid span.
	Arguments Span
}

func (*MacroFields) isFields() {}

// EntityFields is the parsed data of a [KindEntity] node.
type EntityFields struct {
	Name Span
	// Text is the replacement text from the entity table. It is the
	// only decoded string the parser stores; the raw bytes remain
	// covered by the node's span.
	Text string
}

func (*EntityFields) isFields() {}

// StatisticsCookieFields is the parsed data of a
// [KindStatisticsCookie] node. Unused components are -1;
// an empty cookie like "[/]" has all components -1.
type StatisticsCookieFields struct {
	Done    int
	Total   int
	Percent int
}

func (*StatisticsCookieFields) isFields() {}

// TargetFields is the parsed data of [KindTarget] and
// [KindRadioTarget] nodes.
type TargetFields struct {
	Name Span
}

func (*TargetFields) isFields() {}
