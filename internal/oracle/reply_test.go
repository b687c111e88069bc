package oracle

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeReply(t *testing.T) {
	r, err := DecodeReply(`{"char":"X","code":"abc","radicals":["a","b","c"]}`)
	require.NoError(t, err)
	assert.Equal(t, "X", r.Char)
	assert.Equal(t, "abc", r.Code)
	assert.Equal(t, []string{"a", "b", "c"}, r.Radicals)
}

func TestDecodeReplyRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"empty":            "",
		"not json":         "WMGR",
		"truncated":        `{"char":"國","code":"WMGR"`,
		"null":             "null",
		"array":            `["國"]`,
		"missing char":     `{"code":"WMGR","radicals":["田"]}`,
		"missing code":     `{"char":"國","radicals":["田"]}`,
		"missing radicals": `{"char":"國","code":"WMGR"}`,
		"empty radicals":   `{"char":"國","code":"WMGR","radicals":[]}`,
		"code not letters": `{"char":"國","code":"W-GR","radicals":["田"]}`,
		"code too long":    `{"char":"國","code":"WMGRRR","radicals":["田"]}`,
		"code wrong type":  `{"char":"國","code":7,"radicals":["田"]}`,
		"radicals string":  `{"char":"國","code":"WMGR","radicals":"田一土口"}`,
	}

	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := DecodeReply(text)
			require.ErrorIs(t, err, ErrMalformedReply)
			assert.Nil(t, r)
		})
	}
}

func TestStripFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFence(`  {"a":1} `))
}

func TestPrompts(t *testing.T) {
	p := buildPrompt("X")
	assert.Contains(t, p, "「X」")
	assert.Contains(t, p, "倉頡五代")

	jp := buildJSONPrompt("X")
	assert.Contains(t, jp, p)
	assert.Contains(t, jp, `"char": "X"`)
}

func TestJSONPromptEscapesCharacter(t *testing.T) {
	for _, char := range []string{`"`, `\`, "好"} {
		jp := buildJSONPrompt(char)
		example := jp[strings.LastIndex(jp, "\n")+1:]
		require.True(t, json.Valid([]byte(example)), example)

		var shape struct {
			Char string `json:"char"`
		}
		require.NoError(t, json.Unmarshal([]byte(example), &shape))
		assert.Equal(t, char, shape.Char)
	}
}
