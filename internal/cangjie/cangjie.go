// Package cangjie provides the static tables of the Cangjie (倉頡, 5th generation)
// input method: the radical keymap, common characters and punctuation symbols.
package cangjie

import (
	"strings"
	"unicode/utf8"
)

// Category groups radical keys the way Cangjie keyboards print them.
type Category string

const (
	CategoryElements   Category = "五行" // A–G: sun, moon and the five elements
	CategoryStrokes    Category = "筆劃" // H–N: basic strokes
	CategoryBody       Category = "人體" // O–R: body parts
	CategoryShapes     Category = "字型" // S–W: character shapes
	CategoryCollective Category = "特殊" // X–Z: difficult, collision and auxiliary keys
)

// Radical is a single input-method letter key and the glyph it stands for.
type Radical struct {
	Key      rune     `yaml:"key" json:"key"`
	Glyph    string   `yaml:"glyph" json:"glyph"`
	Category Category `yaml:"category" json:"category"`
}

// Result is the encoding of one character.
type Result struct {
	Char     string   `json:"char"`
	Code     string   `json:"code"`
	Radicals []string `json:"radicals"`
}

// Symbol is a punctuation mark with a known code and a human-readable name.
type Symbol struct {
	Char  string `yaml:"char" json:"char"`
	Code  string `yaml:"code" json:"code"`
	Label string `yaml:"label" json:"label"`
}

// MaxCodeLen is the longest code the scheme produces.
const MaxCodeLen = 5

var keymap = [...]Radical{
	{'A', "日", CategoryElements},
	{'B', "月", CategoryElements},
	{'C', "金", CategoryElements},
	{'D', "木", CategoryElements},
	{'E', "水", CategoryElements},
	{'F', "火", CategoryElements},
	{'G', "土", CategoryElements},
	{'H', "竹", CategoryStrokes},
	{'I', "戈", CategoryStrokes},
	{'J', "十", CategoryStrokes},
	{'K', "大", CategoryStrokes},
	{'L', "中", CategoryStrokes},
	{'M', "一", CategoryStrokes},
	{'N', "弓", CategoryStrokes},
	{'O', "人", CategoryBody},
	{'P', "心", CategoryBody},
	{'Q', "手", CategoryBody},
	{'R', "口", CategoryBody},
	{'S', "尸", CategoryShapes},
	{'T', "廿", CategoryShapes},
	{'U', "山", CategoryShapes},
	{'V', "女", CategoryShapes},
	{'W', "田", CategoryShapes},
	{'X', "難", CategoryCollective},
	{'Y', "卜", CategoryCollective},
	{'Z', "重", CategoryCollective},
}

// RadicalFor returns the radical bound to an upper-case letter key.
func RadicalFor(key rune) (Radical, bool) {
	if key < 'A' || key > 'Z' {
		return Radical{}, false
	}
	return keymap[key-'A'], true
}

// RadicalsFor maps every letter of code to its radical glyph. Letters without a
// mapping are kept as themselves, so the result always has one entry per rune.
func RadicalsFor(code string) []string {
	radicals := make([]string, 0, utf8.RuneCountInString(code))
	for _, k := range code {
		if r, ok := RadicalFor(k); ok {
			radicals = append(radicals, r.Glyph)
			continue
		}
		radicals = append(radicals, string(k))
	}
	return radicals
}

// ValidCode reports whether code is 1 to MaxCodeLen upper-case letters.
func ValidCode(code string) bool {
	if code == "" || len(code) > MaxCodeLen {
		return false
	}
	for _, k := range code {
		if k < 'A' || k > 'Z' {
			return false
		}
	}
	return true
}

// NormalizeCode trims and upper-cases a code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NewResult builds a result for char from a known code.
func NewResult(char, code string) *Result {
	return &Result{
		Char:     char,
		Code:     code,
		Radicals: RadicalsFor(code),
	}
}
