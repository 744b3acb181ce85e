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

// todoSettingKeys are the in-buffer keywords that redefine the TODO
// keyword sets for the whole buffer.
var todoSettingKeys = []string{"TODO", "SEQ_TODO", "TYP_TODO"}

// collectBufferSettings makes a cheap prepass over the buffer for
// "#+TODO:"-style lines. In-buffer definitions replace the configured
// sets; multiple lines accumulate. The prepass runs before headline
// parsing so that keywords defined anywhere in the buffer apply to
// every headline.
func collectBufferSettings(src []byte, config *Config) (todo, done []string) {
	for i := 0; i < len(src); i = nextLineStart(src, i) {
		line := src[i:lineEnd(src, i)]
		key, value, ok := parseKeywordLine(line)
		if !ok {
			continue
		}
		for _, want := range todoSettingKeys {
			if key.Len() == len(want) && hasKeywordFold(line, key.Start, want) {
				t, d := parseTodoSequence(spanSlice(line, value))
				todo = append(todo, t...)
				done = append(done, d...)
				break
			}
		}
	}
	if len(todo) > 0 || len(done) > 0 {
		return todo, done
	}
	todo = config.TodoKeywords
	done = config.DoneKeywords
	if len(todo) == 0 && len(done) == 0 {
		todo = []string{"TODO"}
		done = []string{"DONE"}
	}
	return todo, done
}

// parseTodoSequence splits a keyword sequence like
// "TODO NEXT(n) | DONE CANCELED(c@)". Words before "|" are active
// keywords and words after it are done keywords; without a "|" the
// last word alone is done. Fast-selection suffixes in parentheses are
// stripped.
func parseTodoSequence(value []byte) (todo, done []string) {
	words := bytes.Fields(value)
	bar := -1
	for i, w := range words {
		if len(w) == 1 && w[0] == '|' {
			bar = i
			break
		}
	}
	keyword := func(w []byte) string {
		if p := bytes.IndexByte(w, '('); p >= 0 {
			w = w[:p]
		}
		return string(w)
	}
	if bar < 0 {
		for i, w := range words {
			k := keyword(w)
			if k == "" {
				continue
			}
			if i == len(words)-1 {
				done = append(done, k)
			} else {
				todo = append(todo, k)
			}
		}
		return todo, done
	}
	for _, w := range words[:bar] {
		if k := keyword(w); k != "" {
			todo = append(todo, k)
		}
	}
	for _, w := range words[bar+1:] {
		if k := keyword(w); k != "" {
			done = append(done, k)
		}
	}
	return todo, done
}
