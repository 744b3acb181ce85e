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

// parseObjects scans one object region, accumulating plain text
// between recognized objects and emitting it as RawText nodes so that
// a parent's children tile its span exactly.
// objectMarkers are the bytes an object's syntax can start with;
// everything between them is plain text the scanner skips over.
const objectMarkers = "*/+=~_^[<{\\hfm"

func (p *parser) parseObjects(parent NodeID, content Span) {
	src := p.source
	plainStart := content.Start
	i := content.Start
	for i < content.End {
		i = findFirst(src[:content.End], i, objectMarkers)
		if i >= content.End {
			break
		}
		id, next, ok := p.parseObjectAt(i, content)
		if !ok {
			i++
			continue
		}
		p.flushRaw(parent, plainStart, i)
		p.tree.AppendChild(parent, id)
		plainStart = next
		i = next
	}
	p.flushRaw(parent, plainStart, content.End)
}

// flushRaw emits the pending plain text as a RawText leaf.
func (p *parser) flushRaw(parent NodeID, start, end int) {
	if start < end {
		p.tree.AppendChild(parent, p.tree.New(KindRawText, Span{start, end}, nil))
	}
}

// parseObjectAt attempts every object whose syntax can start at i,
// in fixed order per marker byte. The returned node is not yet
// attached; interior regions are queued for later passes.
func (p *parser) parseObjectAt(i int, content Span) (id NodeID, next int, ok bool) {
	src := p.source
	switch src[i] {
	case '*':
		return p.parseEmphasis(i, content, KindBold)
	case '/':
		return p.parseEmphasis(i, content, KindItalic)
	case '+':
		return p.parseEmphasis(i, content, KindStrikeThrough)
	case '=':
		return p.parseEmphasis(i, content, KindVerbatim)
	case '~':
		return p.parseEmphasis(i, content, KindCode)
	case '_':
		if id, next, ok = p.parseSubscript(i, content, KindSubscript); ok {
			return id, next, true
		}
		return p.parseEmphasis(i, content, KindUnderline)
	case '^':
		return p.parseSubscript(i, content, KindSuperscript)
	case '[':
		if id, next, ok = p.parseFootnoteReference(i, content); ok {
			return id, next, true
		}
		if id, next, ok = p.parseStatisticsCookie(i, content); ok {
			return id, next, true
		}
		if id, next, ok = p.parseTimestampObject(i, content); ok {
			return id, next, true
		}
		return p.parseRegularLink(i, content)
	case '<':
		if id, next, ok = p.parseTargetObject(i, content); ok {
			return id, next, true
		}
		if id, next, ok = p.parseTimestampObject(i, content); ok {
			return id, next, true
		}
		return p.parseAngleLink(i, content)
	case '{':
		return p.parseMacro(i, content)
	case '\\':
		if id, next, ok = p.parseLineBreak(i, content); ok {
			return id, next, true
		}
		return p.parseEntity(i, content)
	case 'h', 'f', 'm':
		return p.parsePlainLink(i, content)
	}
	return NoNode, 0, false
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// isPreByte reports whether b may precede an emphasis opener.
func isPreByte(b byte) bool {
	return isSpaceByte(b) || bytes.IndexByte([]byte("-({'\"["), b) >= 0
}

// isPostByte reports whether b may follow an emphasis closer.
func isPostByte(b byte) bool {
	return isSpaceByte(b) || bytes.IndexByte([]byte("-.,;:!?')}\"[]"), b) >= 0
}

// parseEmphasis matches marker...marker pairs. The opener must sit
// after a permissive character, borders must not be whitespace, and
// the pair may span at most one newline. Code and verbatim interiors
// stay opaque; the rest queue their interior for object parsing.
func (p *parser) parseEmphasis(i int, content Span, kind Kind) (NodeID, int, bool) {
	src := p.source
	marker := src[i]
	if i > content.Start && !isPreByte(src[i-1]) {
		return NoNode, 0, false
	}
	if i+1 >= content.End || isSpaceByte(src[i+1]) || src[i+1] == marker {
		return NoNode, 0, false
	}
	newlines := 0
	for j := i + 2; j < content.End; j++ {
		if src[j] == '\n' {
			newlines++
			if newlines > 1 {
				break
			}
			continue
		}
		if src[j] != marker || isSpaceByte(src[j-1]) {
			continue
		}
		if j+1 < content.End && !isPostByte(src[j+1]) {
			continue
		}
		id := p.tree.New(kind, Span{i, j + 1}, nil)
		interior := Span{i + 1, j}
		if kind == KindCode || kind == KindVerbatim {
			p.tree.AppendChild(id, p.tree.New(KindRawText, interior, nil))
		} else {
			p.inlines = append(p.inlines, region{id, interior})
		}
		return id, j + 1, true
	}
	return NoNode, 0, false
}

// parseSubscript matches "_{...}" and "^{...}" with balanced braces.
// Only the braced form is recognized.
func (p *parser) parseSubscript(i int, content Span, kind Kind) (NodeID, int, bool) {
	src := p.source
	if i == content.Start || isSpaceByte(src[i-1]) {
		return NoNode, 0, false
	}
	if i+1 >= content.End || src[i+1] != '{' {
		return NoNode, 0, false
	}
	depth := 1
	for j := i + 2; j < content.End; j++ {
		switch src[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				id := p.tree.New(kind, Span{i, j + 1}, nil)
				if interior := (Span{i + 2, j}); interior.Len() > 0 {
					p.inlines = append(p.inlines, region{id, interior})
				}
				return id, j + 1, true
			}
		case '\n':
			return NoNode, 0, false
		}
	}
	return NoNode, 0, false
}

// parseFootnoteReference matches "[fn:label]", "[fn:label:text]", and
// the anonymous "[fn::text]". The inline text may contain balanced
// square brackets.
func (p *parser) parseFootnoteReference(i int, content Span) (NodeID, int, bool) {
	src := p.source
	if !bytes.HasPrefix(src[i:content.End], []byte("[fn:")) {
		return NoNode, 0, false
	}
	labelStart := i + len("[fn:")
	j := labelStart
	for j < content.End && isWordByte(src[j]) {
		j++
	}
	f := &FootnoteReferenceFields{Label: NullSpan(), Definition: NullSpan()}
	if j > labelStart {
		f.Label = Span{labelStart, j}
	}
	if j >= content.End {
		return NoNode, 0, false
	}
	switch src[j] {
	case ']':
		if !f.Label.IsValid() {
			return NoNode, 0, false
		}
		id := p.tree.New(KindFootnoteReference, Span{i, j + 1}, f)
		return id, j + 1, true
	case ':':
		defStart := j + 1
		depth := 1
		for k := defStart; k < content.End; k++ {
			switch src[k] {
			case '[':
				depth++
			case ']':
				depth--
				if depth == 0 {
					f.Definition = Span{defStart, k}
					id := p.tree.New(KindFootnoteReference, Span{i, k + 1}, f)
					if f.Definition.Len() > 0 {
						p.inlines = append(p.inlines, region{id, f.Definition})
					}
					return id, k + 1, true
				}
			case '\n':
				return NoNode, 0, false
			}
		}
	}
	return NoNode, 0, false
}

// parseStatisticsCookie matches "[3/7]", "[40%]", and the empty forms
// "[/]" and "[%]".
func (p *parser) parseStatisticsCookie(i int, content Span) (NodeID, int, bool) {
	src := p.source
	f := &StatisticsCookieFields{Done: -1, Total: -1, Percent: -1}
	j := i + 1
	first := -1
	for j < content.End && isDigit(src[j]) {
		if first < 0 {
			first = 0
		}
		first = first*10 + int(src[j]-'0')
		j++
	}
	if j >= content.End {
		return NoNode, 0, false
	}
	switch src[j] {
	case '%':
		if j+1 >= content.End || src[j+1] != ']' {
			return NoNode, 0, false
		}
		f.Percent = first
		id := p.tree.New(KindStatisticsCookie, Span{i, j + 2}, f)
		return id, j + 2, true
	case '/':
		f.Done = first
		j++
		second := -1
		for j < content.End && isDigit(src[j]) {
			if second < 0 {
				second = 0
			}
			second = second*10 + int(src[j]-'0')
			j++
		}
		if j >= content.End || src[j] != ']' {
			return NoNode, 0, false
		}
		f.Total = second
		id := p.tree.New(KindStatisticsCookie, Span{i, j + 1}, f)
		return id, j + 1, true
	}
	return NoNode, 0, false
}

// parseTimestampObject wraps parseTimestamp for paragraph context.
func (p *parser) parseTimestampObject(i int, content Span) (NodeID, int, bool) {
	f, next, ok := parseTimestamp(p.source, i, content.End)
	if !ok {
		return NoNode, 0, false
	}
	id := p.tree.New(KindTimestamp, Span{i, next}, f)
	return id, next, true
}

// parseRegularLink matches "[[path]]" and "[[path][description]]".
// The description's objects become the node's children.
func (p *parser) parseRegularLink(i int, content Span) (NodeID, int, bool) {
	src := p.source
	if i+1 >= content.End || src[i+1] != '[' {
		return NoNode, 0, false
	}
	pathStart := i + 2
	j := pathStart
	for j < content.End && src[j] != ']' && src[j] != '\n' {
		j++
	}
	if j <= pathStart || j >= content.End || src[j] != ']' {
		return NoNode, 0, false
	}
	f := &LinkFields{Path: Span{pathStart, j}, Description: NullSpan()}
	switch {
	case j+1 < content.End && src[j+1] == ']':
		id := p.tree.New(KindLink, Span{i, j + 2}, f)
		return id, j + 2, true
	case j+1 < content.End && src[j+1] == '[':
		descStart := j + 2
		rel := bytes.Index(src[descStart:content.End], []byte("]]"))
		if rel < 0 {
			return NoNode, 0, false
		}
		descEnd := descStart + rel
		if bytes.Contains(src[descStart:descEnd], []byte("\n\n")) {
			return NoNode, 0, false
		}
		f.Description = Span{descStart, descEnd}
		id := p.tree.New(KindLink, Span{i, descEnd + 2}, f)
		if f.Description.Len() > 0 {
			p.inlines = append(p.inlines, region{id, f.Description})
		}
		return id, descEnd + 2, true
	}
	return NoNode, 0, false
}

// parseTargetObject matches "<<target>>" and radio targets
// "<<<target>>>". The name may not contain angle brackets or newlines
// and may not start or end with a space.
func (p *parser) parseTargetObject(i int, content Span) (NodeID, int, bool) {
	src := p.source
	open := countLeading(src[:content.End], i, '<')
	if open != 2 && open != 3 {
		return NoNode, 0, false
	}
	nameStart := i + open
	j := nameStart
	for j < content.End && src[j] != '<' && src[j] != '>' && src[j] != '\n' {
		j++
	}
	if j == nameStart || src[nameStart] == ' ' || src[j-1] == ' ' {
		return NoNode, 0, false
	}
	if countLeading(src[:content.End], j, '>') < open {
		return NoNode, 0, false
	}
	kind := KindTarget
	if open == 3 {
		kind = KindRadioTarget
	}
	id := p.tree.New(kind, Span{i, j + open}, &TargetFields{Name: Span{nameStart, j}})
	return id, j + open, true
}

// parseAngleLink matches "<scheme:path>".
func (p *parser) parseAngleLink(i int, content Span) (NodeID, int, bool) {
	src := p.source
	j := i + 1
	for j < content.End && isLetter(src[j]) {
		j++
	}
	if j == i+1 || j >= content.End || src[j] != ':' {
		return NoNode, 0, false
	}
	k := j + 1
	for k < content.End && src[k] != '>' && src[k] != '<' && src[k] != '\n' {
		k++
	}
	if k == j+1 || k >= content.End || src[k] != '>' {
		return NoNode, 0, false
	}
	f := &LinkFields{Path: Span{i + 1, k}, Description: NullSpan()}
	id := p.tree.New(KindLink, Span{i, k + 1}, f)
	return id, k + 1, true
}

// plainLinkSchemes are matched at word boundaries in running text.
var plainLinkSchemes = []string{"https://", "http://", "ftp://", "mailto:"}

// parsePlainLink matches bare URLs. Trailing punctuation that usually
// belongs to the sentence is excluded from the link.
func (p *parser) parsePlainLink(i int, content Span) (NodeID, int, bool) {
	src := p.source
	if i > content.Start && (isWordByte(src[i-1]) || src[i-1] == '/') {
		return NoNode, 0, false
	}
	scheme := ""
	for _, s := range plainLinkSchemes {
		if bytes.HasPrefix(src[i:content.End], []byte(s)) {
			scheme = s
			break
		}
	}
	if scheme == "" {
		return NoNode, 0, false
	}
	j := i + len(scheme)
	for j < content.End && !isSpaceByte(src[j]) &&
		src[j] != '<' && src[j] != '>' && src[j] != '[' && src[j] != ']' {
		j++
	}
	for j > i+len(scheme) && bytes.IndexByte([]byte(".,;:!?)'\""), src[j-1]) >= 0 {
		j--
	}
	if j == i+len(scheme) {
		return NoNode, 0, false
	}
	f := &LinkFields{Path: Span{i, j}, Description: NullSpan()}
	id := p.tree.New(KindLink, Span{i, j}, f)
	return id, j, true
}

// parseMacro matches "{{{name}}}" and "{{{name(args)}}}".
func (p *parser) parseMacro(i int, content Span) (NodeID, int, bool) {
	src := p.source
	if !bytes.HasPrefix(src[i:content.End], []byte("{{{")) {
		return NoNode, 0, false
	}
	nameStart := i + 3
	if nameStart >= content.End || !isLetter(src[nameStart]) {
		return NoNode, 0, false
	}
	j := nameStart
	for j < content.End && isWordByte(src[j]) {
		j++
	}
	f := &MacroFields{Name: Span{nameStart, j}, Arguments: NullSpan()}
	if j < content.End && src[j] == '(' {
		rel := bytes.Index(src[j:content.End], []byte(")}}}"))
		if rel < 0 {
			return NoNode, 0, false
		}
		f.Arguments = Span{j + 1, j + rel}
		end := j + rel + len(")}}}")
		id := p.tree.New(KindMacro, Span{i, end}, f)
		return id, end, true
	}
	if !bytes.HasPrefix(src[j:content.End], []byte("}}}")) {
		return NoNode, 0, false
	}
	id := p.tree.New(KindMacro, Span{i, j + 3}, f)
	return id, j + 3, true
}

// parseLineBreak matches "\\" at the end of a line, possibly with
// trailing whitespace. The node's span includes the newline.
func (p *parser) parseLineBreak(i int, content Span) (NodeID, int, bool) {
	src := p.source
	if i+1 >= content.End || src[i+1] != '\\' {
		return NoNode, 0, false
	}
	j := i + 2
	for j < content.End && (src[j] == ' ' || src[j] == '\t') {
		j++
	}
	if j >= content.End || src[j] != '\n' {
		return NoNode, 0, false
	}
	id := p.tree.New(KindLineBreak, Span{i, j + 1}, nil)
	return id, j + 1, true
}

// parseEntity matches "\name" and "\name{}" against the entity table.
// Unknown names stay plain text.
func (p *parser) parseEntity(i int, content Span) (NodeID, int, bool) {
	src := p.source
	j := i + 1
	for j < content.End && isLetter(src[j]) {
		j++
	}
	if j == i+1 {
		return NoNode, 0, false
	}
	name := Span{i + 1, j}
	text, ok := p.entityText(string(spanSlice(src, name)))
	if !ok {
		return NoNode, 0, false
	}
	end := j
	if bytes.HasPrefix(src[j:content.End], []byte("{}")) {
		end = j + 2
	}
	id := p.tree.New(KindEntity, Span{i, end}, &EntityFields{Name: name, Text: text})
	return id, end, true
}

// entityText resolves an entity name, preferring configured entries
// over the built-in table.
func (p *parser) entityText(name string) (string, bool) {
	if p.config != nil && p.config.Entities != nil {
		if text, ok := p.config.Entities[name]; ok {
			return text, true
		}
	}
	text, ok := defaultEntities[name]
	return text, ok
}
