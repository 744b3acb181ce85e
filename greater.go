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

// region is a pending parse job: a byte range whose constructs become
// children of parent. Regions are processed from explicit work lists
// rather than by call recursion, so nesting depth is bounded by input
// size, not by the goroutine stack.
type region struct {
	parent NodeID
	span   Span
}

type parser struct {
	source []byte
	tree   *Tree
	config *Config
	todo   []string
	done   []string

	content []region // element-content regions still to parse
	inlines []region // object-content regions still to parse
}

func (p *parser) warn(msg string, keyvals ...any) {
	if p.config.Logger != nil {
		p.config.Logger.Warn(msg, keyvals...)
	}
}

// parseDocument runs the single top-to-bottom pass:
// headline skeleton first, then element content, then objects.
func (p *parser) parseDocument() NodeID {
	root := p.tree.New(KindDocument, Span{0, len(p.source)}, nil)
	p.parseSkeleton(root)
	for len(p.content) > 0 {
		r := p.content[len(p.content)-1]
		p.content = p.content[:len(p.content)-1]
		p.parseContent(r.parent, r.span)
	}
	for len(p.inlines) > 0 {
		r := p.inlines[len(p.inlines)-1]
		p.inlines = p.inlines[:len(p.inlines)-1]
		p.parseObjects(r.parent, r.span)
	}
	return root
}

// openHeadline is a stack entry during skeleton parsing.
type openHeadline struct {
	id        NodeID
	level     int
	bodyStart int
}

// parseSkeleton splits the buffer on headline lines. Headlines own
// everything up to the next line whose star count is not deeper;
// non-headline content between them becomes a pending Section region.
// Outline structure dominates: a headline line splits the document
// even when it appears inside an unterminated block or drawer.
func (p *parser) parseSkeleton(root NodeID) {
	stack := []openHeadline{{id: root, level: 0}}
	i := 0
	for i < len(p.source) {
		le := lineEnd(p.source, i)
		level := parseHeadlineStars(p.source[i:le])
		if level == 0 {
			i = nextLineStart(p.source, i)
			continue
		}
		p.finishBody(stack[len(stack)-1], i)
		for len(stack) > 1 && stack[len(stack)-1].level >= level {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			p.tree.setSpanEnd(top.id, i)
		}
		id := p.parseHeadlineLine(i, le, level)
		p.tree.AppendChild(stack[len(stack)-1].id, id)
		bodyStart := p.parseHeadlineHead(id, nextLineStart(p.source, i))
		stack = append(stack, openHeadline{id: id, level: level, bodyStart: bodyStart})
		i = bodyStart
	}
	p.finishBody(stack[len(stack)-1], len(p.source))
	for len(stack) > 1 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		p.tree.setSpanEnd(top.id, len(p.source))
	}
}

// finishBody closes the pending body region of the deepest open
// headline (or the document's zeroth section). Blank-only regions
// produce no Section node; the bytes stay as a gap of the parent.
func (p *parser) finishBody(h openHeadline, end int) {
	if h.bodyStart >= end {
		return
	}
	body := Span{h.bodyStart, end}
	if isBlankLine(spanSlice(p.source, body)) {
		return
	}
	section := p.tree.New(KindSection, body, nil)
	p.tree.AppendChild(h.id, section)
	p.content = append(p.content, region{section, body})
}

// parseHeadlineLine parses the stars, optional TODO keyword, optional
// priority cookie, title, and trailing tags of a headline line.
// The returned node's span end stays open until the headline closes.
func (p *parser) parseHeadlineLine(start, le, level int) NodeID {
	src := p.source
	f := &HeadlineFields{Level: level}
	pos := start + level
	pos = skipLineSpace(src, pos, le)

	// TODO keyword: the next word, matched exactly against the
	// configured sets.
	if w := wordAt(src, pos, le); w.Len() > 0 {
		word := string(spanSlice(src, w))
		if containsString(p.todo, word) {
			f.Keyword = word
			pos = skipLineSpace(src, w.End, le)
		} else if containsString(p.done, word) {
			f.Keyword = word
			f.Done = true
			pos = skipLineSpace(src, w.End, le)
		}
	}

	// Priority cookie: "[#A]" with a single uppercase letter.
	if w := wordAt(src, pos, le); w.Len() == 4 &&
		src[w.Start] == '[' && src[w.Start+1] == '#' &&
		'A' <= src[w.Start+2] && src[w.Start+2] <= 'Z' &&
		src[w.Start+3] == ']' {
		f.Priority = src[w.Start+2]
		pos = skipLineSpace(src, w.End, le)
	}

	// Title with the trailing ":tag:tag2:" word split off.
	title := trimSpanBytes(src, pos, le)
	if sp := lastLineSpace(src, title); sp >= 0 {
		cand := Span{sp + 1, title.End}
		if cand.Len() > 2 && src[cand.Start] == ':' && src[cand.End-1] == ':' {
			for _, part := range bytes.Split(spanSlice(src, Span{cand.Start + 1, cand.End - 1}), []byte{':'}) {
				if len(part) > 0 {
					f.Tags = append(f.Tags, string(part))
				}
			}
			title = trimSpanBytes(src, title.Start, sp)
		}
	}
	f.Title = title
	if t := spanSlice(src, title); bytes.HasPrefix(t, []byte("COMMENT")) &&
		(len(t) == len("COMMENT") || t[len("COMMENT")] == ' ' || t[len("COMMENT")] == '\t') {
		f.Commented = true
	}

	id := p.tree.New(KindHeadline, Span{start, -1}, f)
	// Title objects are parsed eagerly so that they precede the
	// planning, drawer, and section children in sibling order;
	// children must stay span-ordered for reconstruction.
	if title.Len() > 0 {
		p.parseObjects(id, title)
	}
	return id
}

// parseHeadlineHead consumes the optional planning line and property
// drawer immediately after a headline's title line. It returns the
// offset where the headline's section content starts.
func (p *parser) parseHeadlineHead(id NodeID, i int) int {
	if i < len(p.source) {
		if next, ok := p.parsePlanningLine(id, i); ok {
			i = next
		}
	}
	if i < len(p.source) {
		if next, ok := p.parsePropertyDrawer(id, i); ok {
			i = next
		}
	}
	return i
}

var planningKeywords = []string{"SCHEDULED:", "DEADLINE:", "CLOSED:"}

// parsePlanningLine parses a line of KEYWORD/timestamp pairs.
// At least one pair must parse for the line to be claimed.
func (p *parser) parsePlanningLine(parent NodeID, start int) (next int, ok bool) {
	src := p.source
	le := lineEnd(src, start)

	type pair struct {
		keyword string
		fields  *TimestampFields
		span    Span
	}
	var pairs []pair
	pos := skipLineSpace(src, start, le)
	for pos < le {
		keyword := ""
		for _, kw := range planningKeywords {
			if pos+len(kw) <= le && string(src[pos:pos+len(kw)]) == kw {
				keyword = kw
				break
			}
		}
		if keyword == "" {
			break
		}
		pos = skipLineSpace(src, pos+len(keyword), le)
		tf, end, tok := parseTimestamp(src, pos, le)
		if !tok {
			break
		}
		pairs = append(pairs, pair{keyword, tf, Span{pos, end}})
		pos = skipLineSpace(src, end, le)
	}
	if len(pairs) == 0 {
		return start, false
	}

	f := &PlanningFields{Scheduled: NoNode, Deadline: NoNode, Closed: NoNode}
	planning := p.tree.New(KindPlanning, Span{start, nextLineStart(src, start)}, f)
	p.tree.AppendChild(parent, planning)
	for _, pr := range pairs {
		ts := p.tree.New(KindTimestamp, pr.span, pr.fields)
		p.tree.AppendChild(planning, ts)
		switch pr.keyword {
		case "SCHEDULED:":
			f.Scheduled = ts
		case "DEADLINE:":
			f.Deadline = ts
		case "CLOSED:":
			f.Closed = ts
		}
	}
	return nextLineStart(src, start), true
}

// parsePropertyDrawer parses ":PROPERTIES:" through ":END:" as a leaf
// node carrying decoded key/value pairs. Without a terminator the
// opening line is left for ordinary content parsing.
func (p *parser) parsePropertyDrawer(parent NodeID, start int) (next int, ok bool) {
	src := p.source
	le := lineEnd(src, start)
	name, ok := parseDrawerDelimiter(src[start:le])
	if !ok || !bytes.EqualFold(spanSlice(src[start:le], name), []byte("PROPERTIES")) {
		return start, false
	}

	var properties []Property
	j := nextLineStart(src, start)
	for j < len(src) {
		jle := lineEnd(src, j)
		line := src[j:jle]
		if parseHeadlineStars(line) > 0 {
			break
		}
		if isDrawerEnd(line) {
			after := nextLineStart(src, j)
			drawer := p.tree.New(KindPropertyDrawer, Span{start, after}, &PropertyDrawerFields{Properties: properties})
			p.tree.AppendChild(parent, drawer)
			return after, true
		}
		if key, value, pok := parseNodeProperty(line); pok {
			properties = append(properties, Property{rebase(key, j), rebase(value, j)})
		}
		j = nextLineStart(src, j)
	}
	p.warn("property drawer without :END:", "offset", start)
	return start, false
}

// parseNodeProperty parses ":KEY: value"; a trailing "+" on the key is
// excluded from the span.
func parseNodeProperty(line []byte) (key, value Span, ok bool) {
	i := lineIndentEnd(line)
	if i >= len(line) || line[i] != ':' {
		return NullSpan(), NullSpan(), false
	}
	j := bytes.IndexByte(line[i+1:], ':')
	if j < 0 {
		return NullSpan(), NullSpan(), false
	}
	keyEnd := i + 1 + j
	keyStart := i + 1
	if keyEnd == keyStart {
		return NullSpan(), NullSpan(), false
	}
	for keyEnd > keyStart && line[keyEnd-1] == '+' {
		keyEnd--
	}
	return Span{keyStart, keyEnd}, trimSpan(line, i+2+j, len(line)), true
}

// parseContent recognizes the elements of one content region,
// appending them as children of parent and queueing interior regions.
func (p *parser) parseContent(parent NodeID, content Span) {
	src := p.source
	i := content.Start
	for i < content.End {
		le := min(lineEnd(src, i), content.End)
		line := src[i:le]
		if isBlankLine(line) {
			i = p.nextLine(i, content.End)
			continue
		}

		if next, ok := p.parseBlock(parent, i, content.End, line); ok {
			i = next
			continue
		}
		if next, ok := p.parseDynamicBlock(parent, i, content.End, line); ok {
			i = next
			continue
		}
		if next, ok := p.parseDrawer(parent, i, content.End, line); ok {
			i = next
			continue
		}
		if key, value, ok := parseKeywordLine(line); ok {
			next := p.nextLine(i, content.End)
			kw := p.tree.New(KindKeyword, Span{i, next}, &KeywordFields{Key: rebase(key, i), Value: rebase(value, i)})
			p.tree.AppendChild(parent, kw)
			i = next
			continue
		}
		if parseComment(line) {
			i = p.parseLineRun(parent, KindComment, i, content.End, parseComment)
			continue
		}
		if parseHorizontalRule(line) {
			next := p.nextLine(i, content.End)
			p.tree.AppendChild(parent, p.tree.New(KindHorizontalRule, Span{i, next}, nil))
			i = next
			continue
		}
		if parseFixedWidth(line) {
			i = p.parseLineRun(parent, KindFixedWidth, i, content.End, parseFixedWidth)
			continue
		}
		if parseTableRowStart(line) {
			i = p.parseTable(parent, i, content.End)
			continue
		}
		if value, duration, ok := parseClockLine(line); ok {
			next := p.nextLine(i, content.End)
			clock := p.tree.New(KindClock, Span{i, next}, &ClockFields{Value: rebase(value, i), Duration: rebase(duration, i)})
			p.tree.AppendChild(parent, clock)
			i = next
			continue
		}
		if next, ok := p.parseLatexEnvironment(parent, i, content.End, line); ok {
			i = next
			continue
		}
		if next, ok := p.parseFootnoteDefinition(parent, i, content.End, line); ok {
			i = next
			continue
		}
		if _, ok := parseListBullet(line); ok {
			i = p.parseList(parent, i, content.End)
			continue
		}
		i = p.parseParagraph(parent, i, content.End)
	}
}

// nextLine advances to the following line start, clamped to end.
func (p *parser) nextLine(i, end int) int {
	return min(nextLineStart(p.source, i), end)
}

// parseBlock handles "#+BEGIN_name" ... "#+END_name". Verbatim
// variants keep a single opaque RawText child; other variants queue
// their interior for element parsing. Without a matching end marker
// the begin line is left to degrade into paragraph text.
func (p *parser) parseBlock(parent NodeID, start, end int, line []byte) (next int, ok bool) {
	name, params, begin, ok := parseBlockDelimiter(line)
	if !ok || !begin {
		return start, false
	}
	nameBytes := spanSlice(line, name)
	src := p.source
	j := p.nextLine(start, end)
	for j < end {
		jle := min(lineEnd(src, j), end)
		if n2, _, b2, ok2 := parseBlockDelimiter(src[j:jle]); ok2 && !b2 && bytes.EqualFold(spanSlice(src[j:jle], n2), nameBytes) {
			after := p.nextLine(j, end)
			variant := classifyBlockName(nameBytes)
			block := p.tree.New(KindBlock, Span{start, after}, &BlockFields{
				Name:       rebase(name, start),
				Variant:    variant,
				Parameters: rebase(params, start),
			})
			p.tree.AppendChild(parent, block)
			if interior := (Span{p.nextLine(start, end), j}); interior.Len() > 0 {
				if variant.IsVerbatim() {
					p.tree.AppendChild(block, p.tree.New(KindRawText, interior, nil))
				} else {
					p.content = append(p.content, region{block, interior})
				}
			}
			return after, true
		}
		j = p.nextLine(j, end)
	}
	p.warn("block without #+END_ terminator", "name", string(nameBytes), "offset", start)
	return start, false
}

// parseDynamicBlock handles "#+BEGIN: name" ... "#+END:".
func (p *parser) parseDynamicBlock(parent NodeID, start, end int, line []byte) (next int, ok bool) {
	name, params, begin, ok := parseDynamicBlockDelimiter(line)
	if !ok || !begin {
		return start, false
	}
	src := p.source
	j := p.nextLine(start, end)
	for j < end {
		jle := min(lineEnd(src, j), end)
		if _, _, b2, ok2 := parseDynamicBlockDelimiter(src[j:jle]); ok2 && !b2 {
			after := p.nextLine(j, end)
			block := p.tree.New(KindDynamicBlock, Span{start, after}, &DynamicBlockFields{
				Name:       rebase(name, start),
				Parameters: rebase(params, start),
			})
			p.tree.AppendChild(parent, block)
			if interior := (Span{p.nextLine(start, end), j}); interior.Len() > 0 {
				p.content = append(p.content, region{block, interior})
			}
			return after, true
		}
		j = p.nextLine(j, end)
	}
	p.warn("dynamic block without #+END: terminator", "offset", start)
	return start, false
}

// parseDrawer handles ":NAME:" ... ":END:". A ":PROPERTIES:" drawer in
// ordinary content is a plain drawer; property drawers are positional
// and handled by parseHeadlineHead.
func (p *parser) parseDrawer(parent NodeID, start, end int, line []byte) (next int, ok bool) {
	name, ok := parseDrawerDelimiter(line)
	if !ok || isDrawerEnd(line) {
		return start, false
	}
	src := p.source
	j := p.nextLine(start, end)
	for j < end {
		jle := min(lineEnd(src, j), end)
		if isDrawerEnd(src[j:jle]) {
			after := p.nextLine(j, end)
			drawer := p.tree.New(KindDrawer, Span{start, after}, &DrawerFields{Name: rebase(name, start)})
			p.tree.AppendChild(parent, drawer)
			if interior := (Span{p.nextLine(start, end), j}); interior.Len() > 0 {
				p.content = append(p.content, region{drawer, interior})
			}
			return after, true
		}
		j = p.nextLine(j, end)
	}
	p.warn("drawer without :END: terminator", "offset", start)
	return start, false
}

// parseLatexEnvironment handles "\begin{name}" ... "\end{name}" as an
// opaque leaf element.
func (p *parser) parseLatexEnvironment(parent NodeID, start, end int, line []byte) (next int, ok bool) {
	name, ok := parseLatexEnvironmentBegin(line)
	if !ok {
		return start, false
	}
	nameBytes := spanSlice(line, name)
	src := p.source
	j := start
	for j < end {
		jle := min(lineEnd(src, j), end)
		if isLatexEnvironmentEnd(src[j:jle], nameBytes) {
			after := p.nextLine(j, end)
			env := p.tree.New(KindLatexEnvironment, Span{start, after}, &LatexEnvironmentFields{Name: rebase(name, start)})
			p.tree.AppendChild(parent, env)
			return after, true
		}
		j = p.nextLine(j, end)
	}
	return start, false
}

// parseFootnoteDefinition handles "[fn:label]" in column zero; the
// definition extends to the next definition or the end of the region
// (headlines can never occur inside a region).
func (p *parser) parseFootnoteDefinition(parent NodeID, start, end int, line []byte) (next int, ok bool) {
	label, contentStart, ok := parseFootnoteDefinitionStart(line)
	if !ok {
		return start, false
	}
	src := p.source
	defEnd := p.nextLine(start, end)
	for defEnd < end {
		jle := min(lineEnd(src, defEnd), end)
		if _, _, ok2 := parseFootnoteDefinitionStart(src[defEnd:jle]); ok2 {
			break
		}
		defEnd = p.nextLine(defEnd, end)
	}
	def := p.tree.New(KindFootnoteDefinition, Span{start, defEnd}, &FootnoteDefinitionFields{Label: rebase(label, start)})
	p.tree.AppendChild(parent, def)
	if interior := (Span{start + contentStart, defEnd}); interior.Len() > 0 {
		p.content = append(p.content, region{def, interior})
	}
	return defEnd, true
}

// parseLineRun merges a maximal run of lines matched by accept into a
// single leaf element (comments and fixed-width areas).
func (p *parser) parseLineRun(parent NodeID, kind Kind, start, end int, accept func([]byte) bool) int {
	src := p.source
	i := p.nextLine(start, end)
	for i < end {
		le := min(lineEnd(src, i), end)
		if !accept(src[i:le]) {
			break
		}
		i = p.nextLine(i, end)
	}
	p.tree.AppendChild(parent, p.tree.New(kind, Span{start, i}, nil))
	return i
}

// parseTable consumes a maximal run of '|' lines. Separator rows are
// leaf rows; data rows split into cells on '|', with the pipes left as
// gaps inside the row.
func (p *parser) parseTable(parent NodeID, start, end int) int {
	src := p.source
	table := p.tree.New(KindTable, Span{start, -1}, nil)
	p.tree.AppendChild(parent, table)
	i := start
	for i < end {
		le := min(lineEnd(src, i), end)
		line := src[i:le]
		if !parseTableRowStart(line) {
			break
		}
		next := p.nextLine(i, end)
		if isTableSeparatorRow(line) {
			p.tree.AppendChild(table, p.tree.New(KindTableRow, Span{i, next}, &TableRowFields{Separator: true}))
			i = next
			continue
		}
		row := p.tree.New(KindTableRow, Span{i, next}, &TableRowFields{})
		p.tree.AppendChild(table, row)
		p.parseTableCells(row, i, le)
		i = next
	}
	p.tree.setSpanEnd(table, i)
	return i
}

// parseTableCells splits a data row into cells. Cell spans exclude the
// pipes and surrounding padding. A trailing fragment after the last
// pipe is also a cell (rows need not end with '|').
func (p *parser) parseTableCells(row NodeID, start, le int) {
	src := p.source
	i := start + lineIndentEnd(src[start:le]) + 1 // just past the leading '|'
	for i <= le {
		j := i
		for j < le && src[j] != '|' {
			j++
		}
		if j == le && isBlankLine(src[i:le]) {
			// Nothing after the final pipe.
			break
		}
		cs := trimSpanBytes(src, i, j)
		cell := p.tree.New(KindTableCell, cs, nil)
		p.tree.AppendChild(row, cell)
		if cs.Len() > 0 {
			p.inlines = append(p.inlines, region{cell, cs})
		}
		if j >= le {
			break
		}
		i = j + 1
	}
}

// parseList consumes a run of items sharing the first bullet's indent
// and style. An item owns its bullet line plus any deeper-indented
// lines; two consecutive blank lines end the whole list.
func (p *parser) parseList(parent NodeID, start, end int) int {
	src := p.source
	first, _ := parseListBullet(src[start:min(lineEnd(src, start), end)])
	listFields := &PlainListFields{Kind: first.kind, Indent: first.indent}
	list := p.tree.New(KindPlainList, Span{start, -1}, listFields)
	p.tree.AppendChild(parent, list)

	i := start
	listEnd := start
	for i < end {
		le := min(lineEnd(src, i), end)
		b, ok := parseListBullet(src[i:le])
		if !ok || b.indent != first.indent || !compatibleBullets(first.kind, b.kind) {
			break
		}
		itemEnd, nextLine := p.parseListItem(list, i, end, b, listFields)
		listEnd = itemEnd
		if nextLine < 0 {
			break
		}
		i = nextLine
	}
	p.tree.setSpanEnd(list, listEnd)
	return listEnd
}

// parseListItem parses one item starting at the bullet line.
// It returns the item's end offset and the offset of the line that
// follows the item within the list, or -1 when the list is over.
func (p *parser) parseListItem(list NodeID, start, end int, b listBullet, listFields *PlainListFields) (itemEnd, next int) {
	src := p.source
	le := min(lineEnd(src, start), end)
	f := &ListItemFields{
		Bullet: rebase(b.bullet, start),
		Indent: b.indent,
		Term:   NullSpan(),
	}

	contentStart := start + b.end
	// Checkbox cookie directly after the bullet.
	if contentStart+2 < le && src[contentStart] == '[' && src[contentStart+2] == ']' {
		if c := src[contentStart+1]; c == ' ' || c == 'X' || c == 'x' || c == '-' {
			after := contentStart + 3
			if after == le || src[after] == ' ' || src[after] == '\t' {
				f.Checkbox = c
				contentStart = min(after+1, le)
			}
		}
	}
	// Description-list term before " :: ".
	if b.kind == ListUnordered {
		if sep := bytes.Index(src[contentStart:le], []byte(" :: ")); sep >= 0 {
			f.Term = trimSpanBytes(src, contentStart, contentStart+sep)
			if p.tree.FirstChild(list) == NoNode {
				listFields.Kind = ListDescriptive
			}
		}
	}

	itemEnd = p.nextLine(start, end)
	k := itemEnd
	blanks := 0
	for k < end {
		kle := min(lineEnd(src, k), end)
		line := src[k:kle]
		if isBlankLine(line) {
			blanks++
			if blanks >= 2 {
				break
			}
			k = p.nextLine(k, end)
			continue
		}
		if lineIndent(line) <= b.indent {
			break
		}
		blanks = 0
		k = p.nextLine(k, end)
		itemEnd = k
	}

	item := p.tree.New(KindListItem, Span{start, itemEnd}, f)
	p.tree.AppendChild(list, item)
	if interior := (Span{contentStart, itemEnd}); interior.Len() > 0 {
		p.content = append(p.content, region{item, interior})
	}

	if blanks >= 2 || k >= end {
		return itemEnd, -1
	}
	return itemEnd, k
}

func compatibleBullets(listKind, itemKind ListKind) bool {
	if listKind == ListOrdered || itemKind == ListOrdered {
		return listKind == itemKind
	}
	// Unordered and descriptive items mix freely.
	return true
}

// parseParagraph is the fallback element: it absorbs lines until a
// blank line or the start of any other recognized element.
func (p *parser) parseParagraph(parent NodeID, start, end int) int {
	src := p.source
	i := p.nextLine(start, end)
	for i < end {
		le := min(lineEnd(src, i), end)
		line := src[i:le]
		if isBlankLine(line) || p.startsElement(line) {
			break
		}
		i = p.nextLine(i, end)
	}
	para := p.tree.New(KindParagraph, Span{start, i}, nil)
	p.tree.AppendChild(parent, para)
	p.inlines = append(p.inlines, region{para, Span{start, i}})
	return i
}

// startsElement reports whether a line interrupts a paragraph.
// Terminator searches are deliberately not performed here: a begin
// marker always separates paragraphs, and degrades on its own if its
// end marker never appears.
func (p *parser) startsElement(line []byte) bool {
	if _, _, _, ok := parseBlockDelimiter(line); ok {
		return true
	}
	if _, _, _, ok := parseDynamicBlockDelimiter(line); ok {
		return true
	}
	if _, ok := parseDrawerDelimiter(line); ok {
		return true
	}
	if _, _, ok := parseKeywordLine(line); ok {
		return true
	}
	if parseComment(line) || parseHorizontalRule(line) || parseFixedWidth(line) || parseTableRowStart(line) {
		return true
	}
	if _, _, ok := parseClockLine(line); ok {
		return true
	}
	if _, ok := parseLatexEnvironmentBegin(line); ok {
		return true
	}
	if _, _, ok := parseFootnoteDefinitionStart(line); ok {
		return true
	}
	if _, ok := parseListBullet(line); ok {
		return true
	}
	return false
}

// skipLineSpace advances past spaces and tabs, staying within the line.
func skipLineSpace(src []byte, i, le int) int {
	for i < le && (src[i] == ' ' || src[i] == '\t') {
		i++
	}
	return i
}

// wordAt returns the span of the whitespace-delimited word at i,
// which may be empty.
func wordAt(src []byte, i, le int) Span {
	j := i
	for j < le && src[j] != ' ' && src[j] != '\t' {
		j++
	}
	return Span{i, j}
}

// trimSpanBytes narrows an absolute range to exclude surrounding
// spaces and tabs.
func trimSpanBytes(src []byte, start, end int) Span {
	for start < end && (src[start] == ' ' || src[start] == '\t') {
		start++
	}
	for end > start && (src[end-1] == ' ' || src[end-1] == '\t') {
		end--
	}
	return Span{start, end}
}

// lastLineSpace returns the absolute offset of the last space or tab
// within the span, or -1.
func lastLineSpace(src []byte, s Span) int {
	for i := s.End - 1; i >= s.Start; i-- {
		if src[i] == ' ' || src[i] == '\t' {
			return i
		}
	}
	return -1
}

func containsString(set []string, s string) bool {
	for _, x := range set {
		if x == s {
			return true
		}
	}
	return false
}
