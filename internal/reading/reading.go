// Package reading supplies Mandarin pinyin readings shown next to a lookup result.
package reading

import (
	"strings"

	gopinyin "github.com/mozillazg/go-pinyin"
)

// Parser converts characters to pinyin.
type Parser struct {
	marks    gopinyin.Args
	numbered gopinyin.Args
}

// NewParser creates a new pinyin parser.
func NewParser() *Parser {
	marks := gopinyin.NewArgs()
	marks.Style = gopinyin.Tone // zhōng
	marks.Heteronym = true

	numbered := gopinyin.NewArgs()
	numbered.Style = gopinyin.Tone3 // zhong1
	numbered.Heteronym = true

	return &Parser{marks: marks, numbered: numbered}
}

// Readings returns every reading of char with tone marks, or nil for characters
// without one (punctuation, Latin letters).
func (p *Parser) Readings(char string) []string {
	return first(gopinyin.Pinyin(char, p.marks))
}

// Numbered returns every reading of char with tone numbers.
func (p *Parser) Numbered(char string) []string {
	return first(gopinyin.Pinyin(char, p.numbered))
}

// Hint joins the readings of char for display, e.g. "zhōng / zhòng".
func (p *Parser) Hint(char string) string {
	return strings.Join(p.Readings(char), " / ")
}

func first(result [][]string) []string {
	if len(result) == 0 || len(result[0]) == 0 {
		return nil
	}
	return result[0]
}
