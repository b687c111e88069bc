package oracle

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/f3rmion/cj/internal/cangjie"
)

const defaultGeminiModel = "gemini-3-flash-preview"

// Gemini asks the Gemini API, constraining the reply with a response schema.
type Gemini struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// NewGemini creates a Gemini client.
func NewGemini(ctx context.Context, cfg Config) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(context.WithoutCancel(ctx), &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: cfg.BaseURL,
			Timeout: genai.Ptr(cfg.Timeout),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Gemini{client: client, model: model, logger: logger}, nil
}

// Explain asks for the code and radicals of char.
func (g *Gemini) Explain(ctx context.Context, char string) (*cangjie.Result, error) {
	g.logger.Debug("oracle_request", "backend", BackendGemini, "model", g.model, "char", char)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(buildPrompt(char)), generateConfig())
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	return DecodeReply(resp.Text())
}

func generateConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   replySchema(),
	}
}

// replySchema mirrors the reply struct.
func replySchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"char": {Type: genai.TypeString},
			"code": {
				Type:        genai.TypeString,
				Description: "全碼，例如 'WMGR'",
			},
			"radicals": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "對應字根，例如 ['田', '一', '土', '口']",
			},
		},
		Required:         []string{"char", "code", "radicals"},
		PropertyOrdering: []string{"char", "code", "radicals"},
	}
}
