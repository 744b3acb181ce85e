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

package org_test

import (
	"bytes"
	"fmt"

	"zombiezen.com/go/org"
)

func ExampleParse() {
	doc, err := org.Parse([]byte("* TODO Call dentist :health:\n"), nil)
	if err != nil {
		panic(err)
	}
	tree := doc.Tree()
	headline := tree.FirstChild(doc.Root())
	fields := tree.Fields(headline).(*org.HeadlineFields)
	fmt.Println(fields.Keyword)
	fmt.Println(string(doc.Source[fields.Title.Start:fields.Title.End]))
	fmt.Println(fields.Tags)
	// Output:
	// TODO
	// Call dentist
	// [health]
}

func ExampleDocument_Render() {
	source := []byte("Text with *markup* and [[https://example.com][a link]].\n")
	doc, err := org.Parse(source, nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(bytes.Equal(doc.Render(), source))
	// Output:
	// true
}

func ExampleWalk() {
	doc, err := org.Parse([]byte("- item\n"), nil)
	if err != nil {
		panic(err)
	}
	doc.Walk(&org.WalkOptions{
		Pre: func(c *org.Cursor) bool {
			fmt.Println(c.Kind())
			return true
		},
	})
	// Output:
	// Document
	// Section
	// PlainList
	// ListItem
	// Paragraph
	// RawText
}
