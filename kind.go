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

import "fmt"

// Kind is an enumeration of the constructs a [Tree] node can represent.
type Kind uint16

const (
	// KindDocument is the root node of every tree.
	KindDocument Kind = 1 + iota

	// Greater elements and elements.
	KindHeadline
	KindSection
	KindParagraph
	KindPlainList
	KindListItem
	KindTable
	KindTableRow
	KindTableCell
	KindDrawer
	KindPropertyDrawer
	KindBlock
	KindDynamicBlock
	KindFootnoteDefinition
	KindComment
	KindKeyword
	KindFixedWidth
	KindHorizontalRule
	KindLatexEnvironment
	KindPlanning
	KindClock

	// Objects.
	KindBold
	KindItalic
	KindUnderline
	KindStrikeThrough
	KindCode
	KindVerbatim
	KindLink
	KindFootnoteReference
	KindTimestamp
	KindMacro
	KindEntity
	KindLineBreak
	KindTarget
	KindRadioTarget
	KindStatisticsCookie
	KindSuperscript
	KindSubscript
	KindRawText
)

// IsObject reports whether the kind is an inline object
// (including [KindRawText]) rather than an element.
func (k Kind) IsObject() bool {
	return k >= KindBold && k <= KindRawText
}

var kindNames = map[Kind]string{
	KindDocument:           "Document",
	KindHeadline:           "Headline",
	KindSection:            "Section",
	KindParagraph:          "Paragraph",
	KindPlainList:          "PlainList",
	KindListItem:           "ListItem",
	KindTable:              "Table",
	KindTableRow:           "TableRow",
	KindTableCell:          "TableCell",
	KindDrawer:             "Drawer",
	KindPropertyDrawer:     "PropertyDrawer",
	KindBlock:              "Block",
	KindDynamicBlock:       "DynamicBlock",
	KindFootnoteDefinition: "FootnoteDefinition",
	KindComment:            "Comment",
	KindKeyword:            "Keyword",
	KindFixedWidth:         "FixedWidth",
	KindHorizontalRule:     "HorizontalRule",
	KindLatexEnvironment:   "LatexEnvironment",
	KindPlanning:           "Planning",
	KindClock:              "Clock",
	KindBold:               "Bold",
	KindItalic:             "Italic",
	KindUnderline:          "Underline",
	KindStrikeThrough:      "StrikeThrough",
	KindCode:               "Code",
	KindVerbatim:           "Verbatim",
	KindLink:               "Link",
	KindFootnoteReference:  "FootnoteReference",
	KindTimestamp:          "Timestamp",
	KindMacro:              "Macro",
	KindEntity:             "Entity",
	KindLineBreak:          "LineBreak",
	KindTarget:             "Target",
	KindRadioTarget:        "RadioTarget",
	KindStatisticsCookie:   "StatisticsCookie",
	KindSuperscript:        "Superscript",
	KindSubscript:          "Subscript",
	KindRawText:            "RawText",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint16(k))
}
