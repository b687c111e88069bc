package oracle

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/f3rmion/cj/internal/cangjie"
)

// reply is the JSON object every backend must produce.
type reply struct {
	Char     string   `json:"char" validate:"required"`
	Code     string   `json:"code" validate:"required,alpha,max=5"`
	Radicals []string `json:"radicals" validate:"required,min=1"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeReply parses and validates a reply. It never returns a partially filled
// result: any problem yields ErrMalformedReply.
func DecodeReply(text string) (*cangjie.Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty reply", ErrMalformedReply)
	}

	var r reply
	if err := json.Unmarshal([]byte(text), &r); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedReply, err)
	}
	if err := validate.Struct(&r); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedReply, err)
	}

	return &cangjie.Result{
		Char:     r.Char,
		Code:     r.Code,
		Radicals: r.Radicals,
	}, nil
}

// stripFence removes a markdown code fence some models wrap JSON in.
func stripFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimPrefix(text, "json")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
