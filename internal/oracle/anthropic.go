package oracle

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/f3rmion/cj/internal/cangjie"
)

const (
	anthropicAPIURL       = "https://api.anthropic.com/v1/messages"
	defaultAnthropicModel = "claude-sonnet-4-20250514"
)

// Anthropic is a Messages API client. The API has no response schema, so the
// prompt spells out the JSON shape and the reply goes through DecodeReply.
type Anthropic struct {
	apiKey     string
	url        string
	httpClient *http.Client
	model      string
	logger     *slog.Logger
}

// message represents an Anthropic API message.
type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// request represents an Anthropic API request.
type request struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

// response represents an Anthropic API response.
type response struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewAnthropic creates an Anthropic client.
func NewAnthropic(cfg Config) (*Anthropic, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	a := &Anthropic{
		apiKey:     cfg.APIKey,
		url:        anthropicAPIURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		model:      defaultAnthropicModel,
		logger:     cfg.Logger,
	}
	if cfg.BaseURL != "" {
		a.url = cfg.BaseURL
	}
	if cfg.Model != "" {
		a.model = cfg.Model
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	if a.httpClient.Timeout <= 0 {
		a.httpClient.Timeout = defaultTimeout
	}

	return a, nil
}

// Explain asks for the code and radicals of char.
func (a *Anthropic) Explain(ctx context.Context, char string) (*cangjie.Result, error) {
	a.logger.Debug("oracle_request", "backend", BackendAnthropic, "model", a.model, "char", char)

	req := request{
		Model:     a.model,
		MaxTokens: 300,
		Messages: []message{
			{Role: "user", Content: buildJSONPrompt(char)},
		},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", a.apiKey)
	httpReq.Header.Set("anthropic-version", "2023-06-01")

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var apiResp response
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}

	if apiResp.Error != nil {
		return nil, fmt.Errorf("API error: %s", apiResp.Error.Message)
	}

	if len(apiResp.Content) == 0 {
		return nil, fmt.Errorf("%w: empty response from API", ErrMalformedReply)
	}

	return DecodeReply(stripFence(apiResp.Content[0].Text))
}
