package oracle

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// buildPrompt asks for the full 5th generation code of char and its radicals.
func buildPrompt(char string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("提供中文字「%s」的倉頡五代編碼。\n", char))
	sb.WriteString("請給出完整的字母碼（例如：WMGR）和對應的字根（例如：田 一 土 口）。")

	return sb.String()
}

// buildJSONPrompt is buildPrompt for backends without a response schema. It spells
// out the JSON shape the reply must have.
func buildJSONPrompt(char string) string {
	var sb strings.Builder

	sb.WriteString(buildPrompt(char))
	sb.WriteString("\n\n")
	sb.WriteString("只輸出一個 JSON 物件，不要其他文字，格式如下：\n")
	quoted, _ := json.Marshal(char)
	sb.WriteString(fmt.Sprintf(`{"char": %s, "code": "全碼，例如 WMGR", "radicals": ["對應字根，例如 田", "一", "土", "口"]}`, quoted))

	return sb.String()
}
