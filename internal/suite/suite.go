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

// Package suite provides access to the embedded parser acceptance
// corpus.
package suite

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

// Case is a single corpus document. Every case is round-tripped; Tree,
// when present, is the expected node outline in depth-first order, one
// kind name per line with two spaces of indent per nesting level
// (the document root is omitted).
type Case struct {
	Name  string   `yaml:"name"`
	Input string   `yaml:"input"`
	Tree  []string `yaml:"tree,omitempty"`
}

//go:embed corpus.yaml
var corpusData []byte

// Load returns the corpus cases.
func Load() ([]Case, error) {
	var cases []Case
	if err := yaml.Unmarshal(corpusData, &cases); err != nil {
		return nil, err
	}
	return cases, nil
}
