package reading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadings(t *testing.T) {
	p := NewParser()

	assert.Equal(t, []string{"wǒ"}, p.Readings("我"))
	assert.Contains(t, p.Readings("中"), "zhōng")
	assert.Contains(t, p.Numbered("中"), "zhong1")
}

func TestReadingsNonHan(t *testing.T) {
	p := NewParser()

	assert.Nil(t, p.Readings("、"))
	assert.Nil(t, p.Readings("X"))
	assert.Equal(t, "", p.Hint("X"))
}

func TestHint(t *testing.T) {
	p := NewParser()

	assert.Equal(t, "wǒ", p.Hint("我"))
	assert.Contains(t, p.Hint("中"), " / ")
}
