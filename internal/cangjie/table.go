package cangjie

import (
	"fmt"
	"maps"
)

// Table holds the symbol and common-character lookups. It is built once and is
// read-only afterwards, so it can be shared without locking.
type Table struct {
	symbols     map[string]Symbol
	symbolOrder []Symbol
	common      map[string]string
}

// Option customizes a Table at construction time.
type Option func(*Table) error

// WithCommon adds extra common characters. Codes are normalized and must be valid.
func WithCommon(extra map[string]string) Option {
	return func(t *Table) error {
		for char, code := range extra {
			code = NormalizeCode(code)
			if !ValidCode(code) {
				return fmt.Errorf("invalid code %q for %q", code, char)
			}
			t.common[char] = code
		}
		return nil
	}
}

// defaultSymbols is ordered the way the reference list is shown.
var defaultSymbols = []Symbol{
	{"、", "ZXAC", "頓號"},
	{"：", "ZXAH", "冒號"},
	{"—", "ZXAY", "破折號"},
	{"「", "ZXCD", "左引號"},
	{"」", "ZXCE", "右引號"},
	{"！", "ZXAJ", "驚嘆號"},
	{"《", "ZXBU", "左書名號"},
	{"》", "ZXBV", "右書名號"},
	{"（", "ZXBE", "左括號"},
	{"）", "ZXBH", "右括號"},
}

var defaultCommon = map[string]string{
	"我": "HQI",
	"你": "ONF",
	"他": "OPD",
	"的": "HAILM",
	"是": "AMYO",
	"不": "MF",
	"在": "KLG",
	"有": "KB",
	"一": "M",
	"這": "YPRX",
	"中": "L",
	"國": "WMGR",
	"人": "O",
	"學": "HBNID",
	"倉": "OIR",
	"頡": "GRHMC",
}

// NewTable creates the built-in table and applies opts.
func NewTable(opts ...Option) (*Table, error) {
	t := &Table{
		symbols:     make(map[string]Symbol, len(defaultSymbols)),
		symbolOrder: defaultSymbols,
		common:      maps.Clone(defaultCommon),
	}
	for _, s := range defaultSymbols {
		t.symbols[s.Char] = s
	}

	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, fmt.Errorf("building table: %w", err)
		}
	}

	return t, nil
}

// Default returns the built-in table without extensions.
func Default() *Table {
	t, _ := NewTable()
	return t
}

// LookupSymbol returns the symbol entry for char.
func (t *Table) LookupSymbol(char string) (Symbol, bool) {
	s, ok := t.symbols[char]
	return s, ok
}

// LookupCommon returns the code of a common character.
func (t *Table) LookupCommon(char string) (string, bool) {
	code, ok := t.common[char]
	return code, ok
}

// Symbols returns the reference list in display order.
func (t *Table) Symbols() []Symbol {
	out := make([]Symbol, len(t.symbolOrder))
	copy(out, t.symbolOrder)
	return out
}

// CommonSize returns the number of common characters.
func (t *Table) CommonSize() int {
	return len(t.common)
}

// Keys returns the radical keymap from A to Z.
func Keys() []Radical {
	out := make([]Radical, len(keymap))
	copy(out, keymap[:])
	return out
}

// KeyGroup is a category and its keys.
type KeyGroup struct {
	Category Category
	Keys     []Radical
}

// Categories groups the keymap by category in keyboard order.
func Categories() []KeyGroup {
	var groups []KeyGroup
	for _, r := range keymap {
		n := len(groups)
		if n == 0 || groups[n-1].Category != r.Category {
			groups = append(groups, KeyGroup{Category: r.Category})
			n++
		}
		groups[n-1].Keys = append(groups[n-1].Keys, r)
	}
	return groups
}
