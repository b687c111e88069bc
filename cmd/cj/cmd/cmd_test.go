package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/cj/internal/cangjie"
	"github.com/f3rmion/cj/internal/reading"
	"github.com/f3rmion/cj/internal/resolver"
)

func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	for _, name := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY", "API_KEY", "ANTHROPIC_API_KEY", "CJ_ORACLE_API_KEY"} {
		t.Setenv(name, "")
	}
	t.Cleanup(func() { lookupJSON = false })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append(args, "--config", dir))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestLookupCommand(t *testing.T) {
	out, err := execute(t, t.TempDir(), "lookup", "我")
	require.NoError(t, err)
	assert.Contains(t, out, "Code:     HQI")
	assert.Contains(t, out, "Radicals: 竹 手 戈")
	assert.Contains(t, out, "Source:   common")
}

func TestLookupCommandJSON(t *testing.T) {
	out, err := execute(t, t.TempDir(), "lookup", "、", "--json")
	require.NoError(t, err)

	var res cangjie.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, cangjie.Result{Char: "、", Code: "ZXAC", Radicals: []string{"重", "難", "日", "金"}}, res)
}

func TestLookupCommandWithoutOracle(t *testing.T) {
	_, err := execute(t, t.TempDir(), "lookup", "好")
	require.ErrorIs(t, err, resolver.ErrOracleResolution)
}

func TestInitThenLookupUsesCommonFile(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created config.yaml")

	_, err = execute(t, dir, "init")
	require.Error(t, err)

	out, err = execute(t, dir, "lookup", "好")
	require.NoError(t, err)
	assert.Contains(t, out, "Code:     VND")
}

func TestPrintSymbols(t *testing.T) {
	var buf bytes.Buffer
	printSymbols(&buf, cangjie.Default().Symbols())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 10)
	assert.True(t, strings.HasPrefix(lines[0], "、"))
	assert.Contains(t, lines[0], "ZXAC")
	assert.Contains(t, lines[0], "頓號")
}

func TestPrintKeys(t *testing.T) {
	var buf bytes.Buffer
	printKeys(&buf, cangjie.Categories())

	out := buf.String()
	assert.Contains(t, out, "五行\n  A  日\n")
	assert.Contains(t, out, "  Z  重\n")
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	res := &cangjie.Result{Char: "X", Code: "ABC", Radicals: []string{"a", "b", "c"}}
	printResult(&buf, res, resolver.SourceOracle, reading.NewParser())

	out := buf.String()
	assert.Contains(t, out, "Character: X")
	assert.Contains(t, out, "Radicals: a b c")
	assert.NotContains(t, out, "Pinyin")
	assert.NotContains(t, out, "Tones")
	assert.Contains(t, out, "Source:   oracle")
}

func TestPrintResultReadings(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, cangjie.NewResult("我", "HQI"), resolver.SourceCommon, reading.NewParser())

	out := buf.String()
	assert.Contains(t, out, "Pinyin:   wǒ\n")
	assert.Contains(t, out, "Tones:    wo3\n")
	assert.Contains(t, out, "Source:   common")
}
