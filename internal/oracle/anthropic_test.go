package oracle

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnthropic(t *testing.T, handler http.HandlerFunc) *Anthropic {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewAnthropic(Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)
	return a
}

func textResponse(text string) string {
	body, _ := json.Marshal(map[string]any{
		"content": []map[string]string{{"type": "text", "text": text}},
	})
	return string(body)
}

func TestAnthropicExplain(t *testing.T) {
	a := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		raw, _ := io.ReadAll(r.Body)
		var req request
		assert.NoError(t, json.Unmarshal(raw, &req))
		assert.Equal(t, defaultAnthropicModel, req.Model)
		if assert.Len(t, req.Messages, 1) {
			assert.Contains(t, req.Messages[0].Content, "「好」")
		}

		io.WriteString(w, textResponse("```json\n{\"char\":\"好\",\"code\":\"vnd\",\"radicals\":[\"女\",\"弓\",\"木\"]}\n```"))
	})

	r, err := a.Explain(context.Background(), "好")
	require.NoError(t, err)
	assert.Equal(t, "好", r.Char)
	assert.Equal(t, "vnd", r.Code)
	assert.Equal(t, []string{"女", "弓", "木"}, r.Radicals)
}

func TestAnthropicExplainAPIError(t *testing.T) {
	a := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"error":{"type":"authentication_error","message":"invalid x-api-key"}}`)
	})

	r, err := a.Explain(context.Background(), "好")
	require.Error(t, err)
	assert.Nil(t, r)
	assert.True(t, strings.Contains(err.Error(), "invalid x-api-key"))
}

func TestAnthropicExplainMalformed(t *testing.T) {
	a := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, textResponse("好 is VND"))
	})

	r, err := a.Explain(context.Background(), "好")
	require.ErrorIs(t, err, ErrMalformedReply)
	assert.Nil(t, r)
}

func TestAnthropicExplainEmptyContent(t *testing.T) {
	a := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"content":[]}`)
	})

	_, err := a.Explain(context.Background(), "好")
	require.ErrorIs(t, err, ErrMalformedReply)
}

func TestNewRequiresKey(t *testing.T) {
	_, err := New(context.Background(), Config{Backend: BackendGemini, APIKey: "  "})
	require.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = New(context.Background(), Config{Backend: BackendAnthropic})
	require.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = New(context.Background(), Config{Backend: "openai", APIKey: "k"})
	require.ErrorIs(t, err, ErrUnknownBackend)
}

func TestNewAnthropicDefaults(t *testing.T) {
	c, err := New(context.Background(), Config{Backend: "Anthropic", APIKey: "k", Model: "claude-x"})
	require.NoError(t, err)

	a, ok := c.(*Anthropic)
	require.True(t, ok)
	assert.Equal(t, anthropicAPIURL, a.url)
	assert.Equal(t, "claude-x", a.model)
	assert.Equal(t, defaultTimeout, a.httpClient.Timeout)
}

func TestReplySchema(t *testing.T) {
	s := replySchema()
	assert.ElementsMatch(t, []string{"char", "code", "radicals"}, s.Required)
	require.Contains(t, s.Properties, "radicals")
	require.NotNil(t, s.Properties["radicals"].Items)

	cfg := generateConfig()
	assert.Equal(t, "application/json", cfg.ResponseMIMEType)
}

func TestAnthropicLogsThroughConfiguredLogger(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, textResponse(`{"char":"好","code":"VND","radicals":["女","弓","木"]}`))
	}))
	t.Cleanup(srv.Close)

	var logs bytes.Buffer
	c, err := New(context.Background(), Config{
		Backend: BackendAnthropic,
		APIKey:  "k",
		BaseURL: srv.URL,
		Logger:  slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
	})
	require.NoError(t, err)

	_, err = c.Explain(context.Background(), "好")
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "oracle_request")
	assert.Contains(t, logs.String(), "backend=anthropic")
}
