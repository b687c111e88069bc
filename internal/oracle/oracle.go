// Package oracle asks a generative-language API for the Cangjie code of characters
// that are not in the local tables.
package oracle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/f3rmion/cj/internal/cangjie"
)

var (
	// ErrMissingAPIKey is returned when the selected backend has no API key.
	ErrMissingAPIKey = errors.New("missing oracle api key")
	// ErrUnknownBackend is returned for a backend name that is not supported.
	ErrUnknownBackend = errors.New("unknown oracle backend")
	// ErrMalformedReply is returned when the reply is not the expected JSON object.
	ErrMalformedReply = errors.New("malformed oracle reply")
)

// Backend names.
const (
	BackendGemini    = "gemini"
	BackendAnthropic = "anthropic"
)

const defaultTimeout = 30 * time.Second

// Config selects and configures a backend.
type Config struct {
	Backend string
	Model   string
	APIKey  string
	Timeout time.Duration
	BaseURL string // empty means the public endpoint
	Logger  *slog.Logger
}

// Client explains one character at a time.
type Client interface {
	Explain(ctx context.Context, char string) (*cangjie.Result, error)
}

// New returns the client for cfg.Backend.
func New(ctx context.Context, cfg Config) (Client, error) {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	var (
		client Client
		err    error
	)
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case BackendGemini, "":
		client, err = NewGemini(ctx, cfg)
	case BackendAnthropic:
		client, err = NewAnthropic(cfg)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, cfg.Backend)
	}
	if err != nil {
		return nil, err
	}
	return client, nil
}
