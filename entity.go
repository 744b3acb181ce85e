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

// defaultEntities maps "\name" escapes to their replacement text.
// The set covers the common Greek letters, arrows, common symbols,
// and spacing entities. [Config.Entities] entries take precedence.
var defaultEntities = map[string]string{
	"alpha":   "α",
	"beta":    "β",
	"gamma":   "γ",
	"delta":   "δ",
	"epsilon": "ε",
	"zeta":    "ζ",
	"eta":     "η",
	"theta":   "θ",
	"iota":    "ι",
	"kappa":   "κ",
	"lambda":  "λ",
	"mu":      "μ",
	"nu":      "ν",
	"xi":      "ξ",
	"pi":      "π",
	"rho":     "ρ",
	"sigma":   "σ",
	"tau":     "τ",
	"upsilon": "υ",
	"phi":     "φ",
	"chi":     "χ",
	"psi":     "ψ",
	"omega":   "ω",
	"Alpha":   "Α",
	"Beta":    "Β",
	"Gamma":   "Γ",
	"Delta":   "Δ",
	"Theta":   "Θ",
	"Lambda":  "Λ",
	"Pi":      "Π",
	"Sigma":   "Σ",
	"Phi":     "Φ",
	"Psi":     "Ψ",
	"Omega":   "Ω",

	"larr":      "←",
	"rarr":      "→",
	"uarr":      "↑",
	"darr":      "↓",
	"harr":      "↔",
	"lArr":      "⇐",
	"rArr":      "⇒",
	"hArr":      "⇔",
	"to":        "→",
	"leftarrow": "←",
	"imply":     "⇒",

	"le":      "≤",
	"ge":      "≥",
	"ne":      "≠",
	"neq":     "≠",
	"equiv":   "≡",
	"approx":  "≈",
	"pm":      "±",
	"plusmn":  "±",
	"times":   "×",
	"div":     "÷",
	"frac12":  "½",
	"frac14":  "¼",
	"frac34":  "¾",
	"infin":   "∞",
	"infty":   "∞",
	"sum":     "∑",
	"prod":    "∏",
	"int":     "∫",
	"nabla":   "∇",
	"partial": "∂",
	"forall":  "∀",
	"exist":   "∃",
	"exists":  "∃",
	"empty":   "∅",
	"isin":    "∈",
	"notin":   "∉",
	"cup":     "∪",
	"cap":     "∩",
	"sub":     "⊂",
	"sup":     "⊃",
	"radic":   "√",
	"sqrt":    "√",
	"prop":    "∝",
	"sim":     "∼",
	"perp":    "⊥",

	"deg":    "°",
	"bull":   "•",
	"bullet": "•",
	"star":   "⋆",
	"amp":    "&",
	"lt":     "<",
	"gt":     ">",
	"copy":   "©",
	"reg":    "®",
	"trade":  "™",
	"sect":   "§",
	"para":   "¶",
	"dagger": "†",
	"Dagger": "‡",
	"middot": "·",
	"cdot":   "⋅",
	"hellip": "…",
	"dots":   "…",
	"mdash":  "—",
	"ndash":  "–",
	"laquo":  "«",
	"raquo":  "»",
	"euro":   "€",
	"pound":  "£",
	"yen":    "¥",
	"cent":   "¢",
	"check":  "✓",
	"cross":  "✗",
	"smiley": "☺",
	"heart":  "♥",

	"nbsp":  " ",
	"ensp":  " ",
	"emsp":  " ",
	"shy":   "­",
	"zwsp":  "​",
	"minus": "−",
	"prime": "′",
	"Prime": "″",
}
